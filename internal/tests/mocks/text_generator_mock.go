package mocks

import "context"

type TextGeneratorMock struct {
	GenerateFunc func(ctx context.Context, instruction string) (string, error)
	ModelName    string
}

func (m *TextGeneratorMock) Generate(ctx context.Context, instruction string) (string, error) {
	if m.GenerateFunc != nil {
		return m.GenerateFunc(ctx, instruction)
	}
	return "a generated prompt --ar 1:1", nil
}

func (m *TextGeneratorMock) Model() string {
	if m.ModelName != "" {
		return m.ModelName
	}
	return "mock-model"
}
