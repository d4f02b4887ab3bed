package services

import (
	"context"
	"errors"
	"log"
	"strings"
	"sync"
	"time"

	"lumina/internal/llm/client"
	"lumina/internal/models"
	"lumina/internal/prompt"
	"lumina/internal/utils"
)

// ErrGenerationFailed is the single failure surfaced for any transport error,
// API error, or empty completion. The underlying cause is logged only and
// never shown to the user.
var ErrGenerationFailed = errors.New("failed to generate prompt")

// DefaultGenerationTimeout bounds one model round trip.
const DefaultGenerationTimeout = 60 * time.Second

// TextGenerator is the outbound surface of the LLM client.
type TextGenerator interface {
	Generate(ctx context.Context, instruction string) (string, error)
	Model() string
}

type GenerationService interface {
	Startup(ctx context.Context) error
	Generate(ctx context.Context, prefs models.Preferences) (*models.GeneratedResult, error)
	UseGenerator(g TextGenerator)
}

type generationService struct {
	keys     *KeyringService
	settings AppSettingsService
	timeout  time.Duration

	mu        sync.Mutex
	generator TextGenerator
}

// NewGenerationService builds the service; the model client itself is
// constructed during Startup once the runtime context exists. A zero timeout
// selects the default.
func NewGenerationService(keys *KeyringService, settings AppSettingsService, timeout time.Duration) GenerationService {
	if timeout <= 0 {
		timeout = DefaultGenerationTimeout
	}
	return &generationService{keys: keys, settings: settings, timeout: timeout}
}

// Startup resolves the API key (env first, then OS keyring) and the model
// name (env first, then app settings) and constructs the Gemini client. The
// key is not validated; a missing or bad key surfaces as a call failure.
func (s *generationService) Startup(ctx context.Context) error {
	apiKey := utils.Getenv("GEMINI_API_KEY", "")
	if apiKey == "" && s.keys != nil {
		if k, err := s.keys.GetApiKey(GeminiProvider); err == nil {
			apiKey = k
		}
	}

	modelName := utils.Getenv("LUMINA_MODEL", "")
	if modelName == "" && s.settings != nil {
		if settings, err := s.settings.Get(); err == nil {
			modelName = settings.Model
		}
	}

	generator, err := client.NewGeminiClient(ctx, apiKey, modelName)
	if err != nil {
		return err
	}

	s.UseGenerator(generator)
	return nil
}

// UseGenerator swaps the injected client. Tests use this to substitute a
// mock; the app uses it after a key change.
func (s *generationService) UseGenerator(g TextGenerator) {
	s.mu.Lock()
	s.generator = g
	s.mu.Unlock()
}

// Generate performs exactly one model round trip: build the instruction,
// await the completion under the configured timeout, trim the text. No
// retries and no caching; each call is independent.
func (s *generationService) Generate(ctx context.Context, prefs models.Preferences) (*models.GeneratedResult, error) {
	s.mu.Lock()
	generator := s.generator
	s.mu.Unlock()

	if generator == nil {
		log.Printf("generation: no model client configured (missing API key?)")
		return nil, ErrGenerationFailed
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	text, err := generator.Generate(ctx, prompt.BuildInstruction(prefs))
	if err != nil {
		log.Printf("generation: model call failed: %v", err)
		return nil, ErrGenerationFailed
	}

	text = strings.TrimSpace(text)
	if text == "" {
		log.Printf("generation: model returned empty text")
		return nil, ErrGenerationFailed
	}

	return &models.GeneratedResult{
		Prompt:         text,
		ModelSuggested: generator.Model(),
	}, nil
}
