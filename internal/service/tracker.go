package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/kbtrack/internal/domain"
	"github.com/alexanderramin/kbtrack/internal/repository"
	"github.com/alexanderramin/kbtrack/internal/template"
)

// DateLayout is the ISO-8601 calendar date format used for session dates.
const DateLayout = "2006-01-02"

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrDuplicateID     = errors.New("duplicate session id")
	ErrMissingID       = errors.New("session id is required")
)

// TrackerDeps are the collaborators a Tracker is built from. Drafts is
// optional; without it the in-progress session lives only in memory.
type TrackerDeps struct {
	Store     repository.SessionPersister
	Drafts    repository.DraftPersister
	Templates template.Source
}

type TrackerOption func(*Tracker)

// WithClock replaces time.Now for ids and the default session date.
func WithClock(now func() time.Time) TrackerOption {
	return func(t *Tracker) { t.now = now }
}

func WithObserver(obs UseCaseObserver) TrackerOption {
	return func(t *Tracker) { t.observer = useCaseObserverOrNoop([]UseCaseObserver{obs}) }
}

// WithFirstWorkout sets the workout of a fresh editor when no draft exists.
func WithFirstWorkout(w domain.WorkoutType) TrackerOption {
	return func(t *Tracker) { t.firstWorkout = w }
}

// Tracker is the application state: the committed history (newest first)
// and the editor for the session being recorded. It is owned by a single
// caller and is not safe for concurrent use.
type Tracker struct {
	store     repository.SessionPersister
	drafts    repository.DraftPersister
	templates template.Source

	editor   *Editor
	sessions []domain.StoredSession

	ids          *idSource
	now          func() time.Time
	observer     UseCaseObserver
	firstWorkout domain.WorkoutType
}

// NewTracker loads the history once. Unreadable stored data is reported to
// the observer and replaced by an empty history; only storage failures are
// returned.
func NewTracker(ctx context.Context, deps TrackerDeps, opts ...TrackerOption) (tr *Tracker, err error) {
	if deps.Store == nil {
		return nil, fmt.Errorf("tracker: session store is required")
	}
	if deps.Templates == nil {
		deps.Templates = template.Default()
	}

	t := &Tracker{
		store:        deps.Store,
		drafts:       deps.Drafts,
		templates:    deps.Templates,
		now:          time.Now,
		observer:     NoopUseCaseObserver{},
		firstWorkout: domain.WorkoutA,
	}
	for _, opt := range opts {
		opt(t)
	}
	t.ids = newIDSource(t.now)

	fields := map[string]any{}
	var warnings []string
	defer observe(ctx, t.observer, "tracker.load", time.Now().UTC(), fields, &warnings, &err)()

	sessions, err := t.store.Load(ctx)
	switch {
	case errors.Is(err, repository.ErrMalformed):
		warnings = append(warnings, err.Error())
		sessions, err = nil, nil
	case err != nil:
		return nil, fmt.Errorf("loading sessions: %w", err)
	}
	t.sessions = sessions
	t.ids.observe(sessions)
	fields["sessions"] = len(sessions)

	if t.drafts != nil {
		draft, derr := t.drafts.LoadDraft(ctx)
		switch {
		case errors.Is(derr, repository.ErrMalformed):
			warnings = append(warnings, derr.Error())
			if cerr := t.drafts.ClearDraft(ctx); cerr != nil {
				warnings = append(warnings, fmt.Sprintf("clearing draft: %v", cerr))
			}
		case derr != nil:
			err = fmt.Errorf("loading draft: %w", derr)
			return nil, err
		case draft != nil:
			t.editor = RestoreEditor(t.templates, *draft)
			fields["draft"] = true
		}
	}
	if t.editor == nil {
		t.editor = NewEditor(t.templates, t.Today(), t.firstWorkout)
	}

	return t, nil
}

// Today is the default date for a new session.
func (t *Tracker) Today() string {
	return t.now().Format(DateLayout)
}

// Editor returns the live editor. Mutations through it are visible to the
// next Commit and to Editor().Session().
func (t *Tracker) Editor() *Editor {
	return t.editor
}

// Commit stores a copy of the in-progress session under a fresh id, then
// reseeds the editor with the other workout. The in-memory transition happens
// even when writing to storage fails; that error is returned.
func (t *Tracker) Commit(ctx context.Context) (stored domain.StoredSession, err error) {
	fields := map[string]any{}
	defer observe(ctx, t.observer, "tracker.commit", time.Now().UTC(), fields, nil, &err)()

	stored = domain.StoredSession{ID: t.ids.next(), Session: t.editor.Session()}
	t.sessions = append([]domain.StoredSession{stored}, t.sessions...)
	t.editor.SwitchWorkoutType(stored.WorkoutType.Opposite())

	fields["id"] = stored.ID
	fields["workout"] = string(stored.WorkoutType)
	fields["sessions"] = len(t.sessions)

	if err = t.persistCommit(ctx); err != nil {
		err = fmt.Errorf("saving session %s: %w", stored.ID, err)
	}
	return stored.Clone(), err
}

func (t *Tracker) persistCommit(ctx context.Context) error {
	if t.drafts == nil {
		return t.store.Persist(ctx, t.sessions)
	}
	if cp, ok := t.store.(repository.CommitPersister); ok {
		return cp.PersistCommit(ctx, t.sessions, t.editor.session)
	}
	if err := t.store.Persist(ctx, t.sessions); err != nil {
		return err
	}
	return t.drafts.SaveDraft(ctx, t.editor.session)
}

// DeleteSession removes the session with id. An unknown id is a no-op and
// writes nothing; the bool reports whether a session was removed.
func (t *Tracker) DeleteSession(ctx context.Context, id string) (removed bool, err error) {
	fields := map[string]any{"id": id}
	defer observe(ctx, t.observer, "tracker.delete", time.Now().UTC(), fields, nil, &err)()

	idx := t.indexOf(id)
	fields["removed"] = idx >= 0
	if idx < 0 {
		return false, nil
	}

	kept := make([]domain.StoredSession, 0, len(t.sessions)-1)
	kept = append(kept, t.sessions[:idx]...)
	kept = append(kept, t.sessions[idx+1:]...)
	t.sessions = kept

	if err = t.store.Persist(ctx, t.sessions); err != nil {
		return true, fmt.Errorf("saving sessions: %w", err)
	}
	return true, nil
}

// ReplaceAll swaps the whole history for sessions, in the given order.
// Ids must be present and unique.
func (t *Tracker) ReplaceAll(ctx context.Context, sessions []domain.StoredSession) (err error) {
	fields := map[string]any{"sessions": len(sessions)}
	defer observe(ctx, t.observer, "tracker.import", time.Now().UTC(), fields, nil, &err)()

	seen := make(map[string]bool, len(sessions))
	next := make([]domain.StoredSession, 0, len(sessions))
	for i, s := range sessions {
		if s.ID == "" {
			return fmt.Errorf("session %d: %w", i, ErrMissingID)
		}
		if seen[s.ID] {
			return fmt.Errorf("session %d: %w %q", i, ErrDuplicateID, s.ID)
		}
		seen[s.ID] = true
		next = append(next, s.Clone())
	}

	t.sessions = next
	t.ids.observe(next)
	if err = t.store.Persist(ctx, t.sessions); err != nil {
		return fmt.Errorf("saving sessions: %w", err)
	}
	return nil
}

// SaveDraft writes the in-progress session so a later process resumes it.
// Without a draft persister it does nothing.
func (t *Tracker) SaveDraft(ctx context.Context) (err error) {
	if t.drafts == nil {
		return nil
	}
	defer observe(ctx, t.observer, "draft.save", time.Now().UTC(), nil, nil, &err)()
	return t.drafts.SaveDraft(ctx, t.editor.session)
}

// Sessions returns a copy of the history, newest first.
func (t *Tracker) Sessions() []domain.StoredSession {
	out := make([]domain.StoredSession, len(t.sessions))
	for i, s := range t.sessions {
		out[i] = s.Clone()
	}
	return out
}

func (t *Tracker) Session(id string) (domain.StoredSession, error) {
	idx := t.indexOf(id)
	if idx < 0 {
		return domain.StoredSession{}, fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}
	return t.sessions[idx].Clone(), nil
}

// Summary projects the history. ok is false when there are no sessions.
func (t *Tracker) Summary() (summary domain.Summary, ok bool) {
	return domain.Summarize(t.sessions)
}

func (t *Tracker) indexOf(id string) int {
	for i, s := range t.sessions {
		if s.ID == id {
			return i
		}
	}
	return -1
}
