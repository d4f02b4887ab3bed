package services

import (
	"context"
	"errors"
	"log"
	"sync"

	"lumina/internal/events"
	"lumina/internal/models"
)

// Step names the active view.
type Step string

const (
	StepHome    Step = "home"
	StepBuilder Step = "builder"
	StepResult  Step = "result"
)

var (
	// ErrGenerationInFlight gates repeated submissions while a request is
	// pending.
	ErrGenerationInFlight = errors.New("a generation request is already in flight")

	// ErrGenerationSuperseded reports a completion that arrived after the
	// user moved on; its outcome is discarded.
	ErrGenerationSuperseded = errors.New("generation request superseded")

	ErrNothingToSave       = errors.New("no generated prompt to save")
	ErrSavedPromptNotFound = errors.New("saved prompt not found")
)

// SessionSnapshot is the render-ready view of the session for the frontend.
type SessionSnapshot struct {
	Step             Step                    `json:"step"`
	IsLoading        bool                    `json:"isLoading"`
	SavedListVisible bool                    `json:"savedListVisible"`
	Preferences      *models.Preferences     `json:"preferences,omitempty"`
	Result           *models.GeneratedResult `json:"result,omitempty"`
	SavedCount       int                     `json:"savedCount"`
}

// SavedPromptRepository is the store surface the session needs.
type SavedPromptRepository interface {
	List() []models.SavedPrompt
	Get(id string) (models.SavedPrompt, bool)
	Insert(entry models.SavedPrompt) (models.SavedPrompt, error)
	Delete(id string) error
}

type SessionService interface {
	Startup(ctx context.Context)
	Snapshot() SessionSnapshot
	Start() SessionSnapshot
	StartOver() SessionSnapshot
	Generate(prefs models.Preferences) (*models.GeneratedResult, error)
	SavePrompt(finalText string) (models.SavedPrompt, error)
	LoadSaved(id string) (SessionSnapshot, error)
	DeleteSaved(id string) SessionSnapshot
	SavedPrompts() []models.SavedPrompt
	OpenSavedList() SessionSnapshot
	CloseSavedList() SessionSnapshot
	ToggleSavedList() SessionSnapshot
}

// sessionService drives the Home → Builder → Result step machine. Bound
// methods are called from frontend goroutines, so a mutex serializes every
// transition; the seq counter identifies the latest accepted generation and
// lets stale completions be dropped.
type sessionService struct {
	generator GenerationService
	store     SavedPromptRepository

	mu       sync.Mutex
	ctx      context.Context
	step     Step
	loading  bool
	listOpen bool
	prefs    *models.Preferences
	result   *models.GeneratedResult
	seq      uint64
}

func NewSessionService(generator GenerationService, store SavedPromptRepository) SessionService {
	return &sessionService{
		generator: generator,
		store:     store,
		ctx:       context.Background(),
		step:      StepHome,
	}
}

func (s *sessionService) Startup(ctx context.Context) {
	s.mu.Lock()
	s.ctx = ctx
	s.mu.Unlock()
}

func (s *sessionService) Snapshot() SessionSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// Start moves from the home view to the builder form.
func (s *sessionService) Start() SessionSnapshot {
	s.mu.Lock()
	if s.step == StepHome {
		s.step = StepBuilder
	}
	snap := s.snapshotLocked()
	s.mu.Unlock()

	s.emitChanged(events.EventInfo, "")
	return snap
}

// StartOver discards the current result and returns to the builder. It also
// supersedes any in-flight generation so a late completion cannot reapply a
// discarded state.
func (s *sessionService) StartOver() SessionSnapshot {
	s.mu.Lock()
	s.seq++
	s.loading = false
	s.result = nil
	s.step = StepBuilder
	snap := s.snapshotLocked()
	s.mu.Unlock()

	s.emitChanged(events.EventInfo, "")
	return snap
}

// Generate validates the preferences, performs the single model round trip
// and, on success, stores the result and moves to the result view. On failure
// the session stays in the builder so the user can retry. Only one request
// may be in flight at a time.
func (s *sessionService) Generate(prefs models.Preferences) (*models.GeneratedResult, error) {
	if err := prefs.Validate(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	if s.loading {
		s.mu.Unlock()
		return nil, ErrGenerationInFlight
	}
	s.loading = true
	s.step = StepBuilder
	s.seq++
	seq := s.seq
	s.prefs = &prefs
	ctx := s.ctx
	s.mu.Unlock()

	s.emitChanged(events.EventInfo, "")

	result, err := s.generator.Generate(ctx, prefs)

	s.mu.Lock()
	if seq != s.seq {
		// The user started over or loaded a saved prompt while this request
		// was pending; its outcome no longer applies.
		s.mu.Unlock()
		return nil, ErrGenerationSuperseded
	}
	s.loading = false
	if err != nil {
		s.mu.Unlock()
		s.emitChanged(events.EventError, ErrGenerationFailed.Error())
		events.Emit(ctx, events.GenerationFailed, events.SessionEvent{
			Type:    events.EventError,
			Step:    string(StepBuilder),
			Message: ErrGenerationFailed.Error(),
		})
		return nil, err
	}
	s.result = result
	s.step = StepResult
	s.mu.Unlock()

	s.emitChanged(events.EventSuccess, "")
	return result, nil
}

// SavePrompt freezes the current preferences together with the (possibly
// edited) text and prepends the entry to the saved list. Persistence is
// best-effort: a failed write keeps the in-memory entry and is reported as a
// non-blocking diagnostic. Saving opens the saved-list overlay.
func (s *sessionService) SavePrompt(finalText string) (models.SavedPrompt, error) {
	s.mu.Lock()
	prefs := s.prefs
	ctx := s.ctx
	s.mu.Unlock()

	if prefs == nil {
		return models.SavedPrompt{}, ErrNothingToSave
	}

	entry, err := s.store.Insert(models.SavedPrompt{
		OriginalInput: *prefs,
		FinalPrompt:   finalText,
	})
	if err != nil {
		log.Printf("session: persisting saved prompt: %v", err)
		events.Emit(ctx, events.StoreWriteFailed, events.SessionEvent{
			Type:    events.EventWarn,
			Step:    string(s.Snapshot().Step),
			Message: "saved prompt could not be written to disk",
		})
	}

	s.mu.Lock()
	s.listOpen = true
	s.mu.Unlock()

	s.emitChanged(events.EventSuccess, "")
	return entry, nil
}

// LoadSaved reconstructs a result from a saved entry and jumps straight to
// the result view, bypassing the network. Any in-flight generation is
// superseded and the overlay closes.
func (s *sessionService) LoadSaved(id string) (SessionSnapshot, error) {
	entry, ok := s.store.Get(id)
	if !ok {
		return s.Snapshot(), ErrSavedPromptNotFound
	}

	s.mu.Lock()
	s.seq++
	s.loading = false
	prefs := entry.OriginalInput
	s.prefs = &prefs
	s.result = &models.GeneratedResult{
		Prompt:         entry.FinalPrompt,
		ModelSuggested: models.ModelLoadedFromSave,
	}
	s.step = StepResult
	s.listOpen = false
	snap := s.snapshotLocked()
	s.mu.Unlock()

	s.emitChanged(events.EventInfo, "")
	return snap, nil
}

// DeleteSaved removes an entry; unknown ids are a no-op. A failed rewrite is
// logged and reported as a diagnostic, never as an action failure.
func (s *sessionService) DeleteSaved(id string) SessionSnapshot {
	if err := s.store.Delete(id); err != nil {
		log.Printf("session: deleting saved prompt %s: %v", id, err)
		s.mu.Lock()
		ctx := s.ctx
		s.mu.Unlock()
		events.Emit(ctx, events.StoreWriteFailed, events.SessionEvent{
			Type:    events.EventWarn,
			Message: "saved prompt list could not be rewritten on disk",
		})
	}

	s.emitChanged(events.EventInfo, "")
	return s.Snapshot()
}

func (s *sessionService) SavedPrompts() []models.SavedPrompt {
	return s.store.List()
}

func (s *sessionService) OpenSavedList() SessionSnapshot {
	return s.setListOpen(true)
}

func (s *sessionService) CloseSavedList() SessionSnapshot {
	return s.setListOpen(false)
}

func (s *sessionService) ToggleSavedList() SessionSnapshot {
	s.mu.Lock()
	s.listOpen = !s.listOpen
	snap := s.snapshotLocked()
	s.mu.Unlock()

	s.emitChanged(events.EventInfo, "")
	return snap
}

func (s *sessionService) setListOpen(open bool) SessionSnapshot {
	s.mu.Lock()
	s.listOpen = open
	snap := s.snapshotLocked()
	s.mu.Unlock()

	s.emitChanged(events.EventInfo, "")
	return snap
}

// snapshotLocked assumes s.mu is held.
func (s *sessionService) snapshotLocked() SessionSnapshot {
	return SessionSnapshot{
		Step:             s.step,
		IsLoading:        s.loading,
		SavedListVisible: s.listOpen,
		Preferences:      s.prefs,
		Result:           s.result,
		SavedCount:       len(s.store.List()),
	}
}

func (s *sessionService) emitChanged(kind events.EventType, message string) {
	s.mu.Lock()
	ctx := s.ctx
	evt := events.SessionEvent{
		Type:    kind,
		Step:    string(s.step),
		Loading: s.loading,
		Message: message,
	}
	s.mu.Unlock()

	events.Emit(ctx, events.SessionChanged, evt)
}
