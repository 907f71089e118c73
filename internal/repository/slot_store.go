package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/kbtrack/internal/db"
	"github.com/alexanderramin/kbtrack/internal/domain"
)

// Slot keys. The history key matches the localStorage key of the browser
// tracker so its exported documents line up.
const (
	SessionsKey = "kettlebellSessions"
	DraftKey    = "kettlebellDraft"
)

// SlotStore persists the session history and the draft as whole JSON
// documents in two slots.
type SlotStore struct {
	slots SlotRepo
	uow   db.UnitOfWork
}

var (
	_ SessionPersister = (*SlotStore)(nil)
	_ DraftPersister   = (*SlotStore)(nil)
	_ CommitPersister  = (*SlotStore)(nil)
)

// NewSlotStore builds a store over any SlotRepo. A nil uow makes
// PersistCommit write the two slots one after the other.
func NewSlotStore(slots SlotRepo, uow db.UnitOfWork) *SlotStore {
	return &SlotStore{slots: slots, uow: uow}
}

// NewSQLiteSlotStore wires a SlotStore to an open database.
func NewSQLiteSlotStore(conn *sql.DB) *SlotStore {
	return NewSlotStore(NewSQLiteSlotRepo(conn), db.NewSQLiteUnitOfWork(conn))
}

func (s *SlotStore) Load(ctx context.Context) ([]domain.StoredSession, error) {
	raw, err := s.slots.Get(ctx, SessionsKey)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	sessions, err := DecodeSessions([]byte(raw))
	if err != nil {
		return nil, fmt.Errorf("slot %q: %w", SessionsKey, err)
	}
	return sessions, nil
}

func (s *SlotStore) Persist(ctx context.Context, sessions []domain.StoredSession) error {
	return writeSessions(ctx, s.slots, sessions)
}

func (s *SlotStore) LoadDraft(ctx context.Context) (*domain.Session, error) {
	raw, err := s.slots.Get(ctx, DraftKey)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	draft, err := decodeDraft([]byte(raw))
	if err != nil {
		return nil, fmt.Errorf("slot %q: %w", DraftKey, err)
	}
	return draft, nil
}

func (s *SlotStore) SaveDraft(ctx context.Context, draft domain.Session) error {
	return writeDraft(ctx, s.slots, draft)
}

func (s *SlotStore) ClearDraft(ctx context.Context) error {
	return s.slots.Delete(ctx, DraftKey)
}

func (s *SlotStore) PersistCommit(ctx context.Context, sessions []domain.StoredSession, draft domain.Session) error {
	if s.uow == nil {
		if err := writeSessions(ctx, s.slots, sessions); err != nil {
			return err
		}
		return writeDraft(ctx, s.slots, draft)
	}
	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txSlots := NewSQLiteSlotRepo(tx)
		if err := writeSessions(ctx, txSlots, sessions); err != nil {
			return err
		}
		return writeDraft(ctx, txSlots, draft)
	})
}

func writeSessions(ctx context.Context, slots SlotRepo, sessions []domain.StoredSession) error {
	data, err := EncodeSessions(sessions)
	if err != nil {
		return err
	}
	return slots.Put(ctx, SessionsKey, string(data))
}

func writeDraft(ctx context.Context, slots SlotRepo, draft domain.Session) error {
	data, err := encodeDraft(draft)
	if err != nil {
		return err
	}
	return slots.Put(ctx, DraftKey, string(data))
}
