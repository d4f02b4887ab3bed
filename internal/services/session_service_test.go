package services_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lumina/internal/models"
	"lumina/internal/services"
	"lumina/internal/store"
	"lumina/internal/tests/mocks"
)

func newSession(t *testing.T, gen services.GenerationService) (services.SessionService, *store.SavedPromptStore) {
	t.Helper()
	st := store.Open(filepath.Join(t.TempDir(), "saved_prompts.json"))
	svc := services.NewSessionService(gen, st)
	svc.Startup(context.Background())
	return svc, st
}

func TestSessionStartsAtHomeAndMovesToBuilder(t *testing.T) {
	svc, _ := newSession(t, &mocks.GenerationServiceMock{})

	assert.Equal(t, services.StepHome, svc.Snapshot().Step)
	assert.Equal(t, services.StepBuilder, svc.Start().Step)

	// Start is only meaningful from home.
	assert.Equal(t, services.StepBuilder, svc.Start().Step)
}

func TestGenerateRejectsShortSubjectWithoutAnyCall(t *testing.T) {
	calls := 0
	gen := &mocks.GenerationServiceMock{
		GenerateFunc: func(ctx context.Context, prefs models.Preferences) (*models.GeneratedResult, error) {
			calls++
			return &models.GeneratedResult{Prompt: "x --ar 1:1", ModelSuggested: "mock-model"}, nil
		},
	}
	svc, _ := newSession(t, gen)
	svc.Start()

	prefs := validPrefs()
	prefs.Subject = " ab "
	_, err := svc.Generate(prefs)
	require.Error(t, err)
	assert.NotErrorIs(t, err, services.ErrGenerationFailed)
	assert.Equal(t, 0, calls)

	snap := svc.Snapshot()
	assert.Equal(t, services.StepBuilder, snap.Step)
	assert.False(t, snap.IsLoading)
}

func TestGenerateSuccessMovesToResult(t *testing.T) {
	svc, _ := newSession(t, &mocks.GenerationServiceMock{})
	svc.Start()

	result, err := svc.Generate(validPrefs())
	require.NoError(t, err)
	require.NotNil(t, result)

	snap := svc.Snapshot()
	assert.Equal(t, services.StepResult, snap.Step)
	assert.False(t, snap.IsLoading)
	require.NotNil(t, snap.Result)
	assert.Equal(t, result.Prompt, snap.Result.Prompt)
	require.NotNil(t, snap.Preferences)
	assert.Equal(t, validPrefs(), *snap.Preferences)
}

func TestGenerateFailureStaysInBuilder(t *testing.T) {
	gen := &mocks.GenerationServiceMock{
		GenerateFunc: func(ctx context.Context, prefs models.Preferences) (*models.GeneratedResult, error) {
			return nil, services.ErrGenerationFailed
		},
	}
	svc, _ := newSession(t, gen)
	svc.Start()

	_, err := svc.Generate(validPrefs())
	assert.ErrorIs(t, err, services.ErrGenerationFailed)

	snap := svc.Snapshot()
	assert.Equal(t, services.StepBuilder, snap.Step)
	assert.False(t, snap.IsLoading)
	assert.Nil(t, snap.Result)
}

func TestGenerateGatesConcurrentRequests(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	gen := &mocks.GenerationServiceMock{
		GenerateFunc: func(ctx context.Context, prefs models.Preferences) (*models.GeneratedResult, error) {
			close(started)
			<-release
			return &models.GeneratedResult{Prompt: "done --ar 1:1", ModelSuggested: "mock-model"}, nil
		},
	}
	svc, _ := newSession(t, gen)
	svc.Start()

	done := make(chan error, 1)
	go func() {
		_, err := svc.Generate(validPrefs())
		done <- err
	}()
	<-started

	assert.True(t, svc.Snapshot().IsLoading)
	_, err := svc.Generate(validPrefs())
	assert.ErrorIs(t, err, services.ErrGenerationInFlight)

	close(release)
	require.NoError(t, <-done)
	assert.Equal(t, services.StepResult, svc.Snapshot().Step)
}

func TestStartOverSupersedesInFlightGeneration(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	gen := &mocks.GenerationServiceMock{
		GenerateFunc: func(ctx context.Context, prefs models.Preferences) (*models.GeneratedResult, error) {
			close(started)
			<-release
			return &models.GeneratedResult{Prompt: "too late --ar 1:1", ModelSuggested: "mock-model"}, nil
		},
	}
	svc, _ := newSession(t, gen)
	svc.Start()

	done := make(chan error, 1)
	go func() {
		_, err := svc.Generate(validPrefs())
		done <- err
	}()
	<-started

	svc.StartOver()
	close(release)

	assert.ErrorIs(t, <-done, services.ErrGenerationSuperseded)

	snap := svc.Snapshot()
	assert.Equal(t, services.StepBuilder, snap.Step)
	assert.False(t, snap.IsLoading)
	assert.Nil(t, snap.Result, "a superseded completion must not be applied")
}

func TestSavePromptPersistsSnapshotAndOpensOverlay(t *testing.T) {
	svc, st := newSession(t, &mocks.GenerationServiceMock{})
	svc.Start()
	_, err := svc.Generate(validPrefs())
	require.NoError(t, err)

	entry, err := svc.SavePrompt("an edited lighthouse prompt --ar 1:1")
	require.NoError(t, err)
	assert.NotEmpty(t, entry.ID)
	assert.Equal(t, "an edited lighthouse prompt --ar 1:1", entry.FinalPrompt)
	assert.Equal(t, validPrefs(), entry.OriginalInput)

	snap := svc.Snapshot()
	assert.True(t, snap.SavedListVisible)
	assert.Equal(t, 1, snap.SavedCount)
	require.Len(t, st.List(), 1)
}

func TestSavePromptWithoutPreferencesFails(t *testing.T) {
	svc, _ := newSession(t, &mocks.GenerationServiceMock{})

	_, err := svc.SavePrompt("orphan text")
	assert.ErrorIs(t, err, services.ErrNothingToSave)
}

func TestLoadSavedReconstructsResultWithoutNetwork(t *testing.T) {
	calls := 0
	gen := &mocks.GenerationServiceMock{
		GenerateFunc: func(ctx context.Context, prefs models.Preferences) (*models.GeneratedResult, error) {
			calls++
			return &models.GeneratedResult{Prompt: "live result --ar 1:1", ModelSuggested: "mock-model"}, nil
		},
	}
	svc, _ := newSession(t, gen)
	svc.Start()
	_, err := svc.Generate(validPrefs())
	require.NoError(t, err)
	entry, err := svc.SavePrompt("a saved lighthouse prompt --ar 1:1")
	require.NoError(t, err)

	snap, err := svc.LoadSaved(entry.ID)
	require.NoError(t, err)
	assert.Equal(t, services.StepResult, snap.Step)
	require.NotNil(t, snap.Result)
	assert.Equal(t, models.ModelLoadedFromSave, snap.Result.ModelSuggested)
	assert.Equal(t, entry.FinalPrompt, snap.Result.Prompt)
	assert.False(t, snap.SavedListVisible, "selecting an entry closes the overlay")
	require.NotNil(t, snap.Preferences)
	assert.Equal(t, validPrefs(), *snap.Preferences)
	assert.Equal(t, 1, calls, "loading a saved prompt must not call the model")
}

func TestLoadSavedUnknownID(t *testing.T) {
	svc, _ := newSession(t, &mocks.GenerationServiceMock{})

	_, err := svc.LoadSaved("no-such-id")
	assert.ErrorIs(t, err, services.ErrSavedPromptNotFound)
}

func TestDeleteSavedIsIdempotentThroughService(t *testing.T) {
	svc, _ := newSession(t, &mocks.GenerationServiceMock{})
	svc.Start()
	_, err := svc.Generate(validPrefs())
	require.NoError(t, err)

	first, err := svc.SavePrompt("first --ar 1:1")
	require.NoError(t, err)
	_, err = svc.SavePrompt("second --ar 1:1")
	require.NoError(t, err)

	assert.Equal(t, 1, svc.DeleteSaved(first.ID).SavedCount)
	assert.Equal(t, 1, svc.DeleteSaved(first.ID).SavedCount)
	assert.Len(t, svc.SavedPrompts(), 1)
}

func TestSavedListOverlayToggles(t *testing.T) {
	svc, _ := newSession(t, &mocks.GenerationServiceMock{})

	assert.True(t, svc.ToggleSavedList().SavedListVisible)
	assert.False(t, svc.ToggleSavedList().SavedListVisible)
	assert.True(t, svc.OpenSavedList().SavedListVisible)
	assert.False(t, svc.CloseSavedList().SavedListVisible)
}
