package service

import (
	"context"
	"database/sql"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/alexanderramin/kbtrack/internal/domain"
	"github.com/alexanderramin/kbtrack/internal/repository"
	"github.com/alexanderramin/kbtrack/internal/template"
	"github.com/alexanderramin/kbtrack/internal/testutil"
	"github.com/stretchr/testify/require"
)

var testDay = time.Date(2024, 1, 1, 9, 30, 0, 0, time.UTC)

// fixedClock returns a clock that advances one second per call.
func fixedClock(start time.Time) func() time.Time {
	var mu sync.Mutex
	now := start
	return func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		t := now
		now = now.Add(time.Second)
		return t
	}
}

func setupTracker(t *testing.T, opts ...TrackerOption) (*Tracker, *sql.DB) {
	t.Helper()
	database := testutil.NewTestDB(t)
	tr := newTrackerOn(t, database, opts...)
	return tr, database
}

func newTrackerOn(t *testing.T, database *sql.DB, opts ...TrackerOption) *Tracker {
	t.Helper()
	store := repository.NewSQLiteSlotStore(database)
	opts = append([]TrackerOption{WithClock(fixedClock(testDay))}, opts...)
	tr, err := NewTracker(context.Background(), TrackerDeps{
		Store:     store,
		Drafts:    store,
		Templates: template.Default(),
	}, opts...)
	require.NoError(t, err)
	return tr
}

// memoryStore is an in-memory SessionPersister that can be told to fail.
type memoryStore struct {
	sessions []domain.StoredSession
	loadErr  error
	failErr  error
	writes   int
}

func (m *memoryStore) Load(context.Context) ([]domain.StoredSession, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	return m.sessions, nil
}

func (m *memoryStore) Persist(_ context.Context, sessions []domain.StoredSession) error {
	m.writes++
	if m.failErr != nil {
		return m.failErr
	}
	m.sessions = make([]domain.StoredSession, len(sessions))
	for i, s := range sessions {
		m.sessions[i] = s.Clone()
	}
	return nil
}

var errDiskFull = errors.New("disk full")

// recordingObserver keeps every event it sees.
type recordingObserver struct {
	events []UseCaseEvent
}

func (r *recordingObserver) ObserveUseCase(_ context.Context, e UseCaseEvent) {
	r.events = append(r.events, e)
}

func (r *recordingObserver) find(name string) (UseCaseEvent, bool) {
	for _, e := range r.events {
		if e.Name == name {
			return e, true
		}
	}
	return UseCaseEvent{}, false
}
