package mocks

import (
	"context"

	"lumina/internal/models"
	"lumina/internal/services"
)

type GenerationServiceMock struct {
	StartupFunc  func(ctx context.Context) error
	GenerateFunc func(ctx context.Context, prefs models.Preferences) (*models.GeneratedResult, error)
}

func (m *GenerationServiceMock) Startup(ctx context.Context) error {
	if m.StartupFunc != nil {
		return m.StartupFunc(ctx)
	}
	return nil
}

func (m *GenerationServiceMock) Generate(ctx context.Context, prefs models.Preferences) (*models.GeneratedResult, error) {
	if m.GenerateFunc != nil {
		return m.GenerateFunc(ctx, prefs)
	}
	return &models.GeneratedResult{Prompt: "a generated prompt --ar 1:1", ModelSuggested: "mock-model"}, nil
}

func (m *GenerationServiceMock) UseGenerator(g services.TextGenerator) {}
