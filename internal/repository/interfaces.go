package repository

import (
	"context"

	"github.com/alexanderramin/kbtrack/internal/domain"
)

// SlotRepo is a durable key/value store of whole documents.
type SlotRepo interface {
	Get(ctx context.Context, key string) (string, error)
	Put(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

// SessionPersister reads and rewrites the full session history.
// Load returns nil, nil when nothing has been stored yet.
type SessionPersister interface {
	Load(ctx context.Context) ([]domain.StoredSession, error)
	Persist(ctx context.Context, sessions []domain.StoredSession) error
}

// DraftPersister keeps the in-progress session between CLI invocations.
// LoadDraft returns nil, nil when there is no draft.
type DraftPersister interface {
	LoadDraft(ctx context.Context) (*domain.Session, error)
	SaveDraft(ctx context.Context, s domain.Session) error
	ClearDraft(ctx context.Context) error
}

// CommitPersister writes the history and the next draft as one unit.
type CommitPersister interface {
	PersistCommit(ctx context.Context, sessions []domain.StoredSession, draft domain.Session) error
}
