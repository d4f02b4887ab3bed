// Package client wraps the Gemini chat model behind the narrow surface the
// generation service needs: one non-streaming completion per call.
package client

import (
	"context"
	"log"

	"github.com/cloudwego/eino-ext/components/model/gemini"
	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
	"google.golang.org/genai"

	"lumina/internal/models"
)

type GeminiClient struct {
	chatModel model.BaseChatModel
	modelName string
}

// NewGeminiClient builds a Gemini-backed client. The key is not validated
// here; a missing or invalid key surfaces when the first call fails.
func NewGeminiClient(ctx context.Context, apiKey, modelName string) (*GeminiClient, error) {
	if modelName == "" {
		modelName = models.DefaultGenerationModel
	}

	genaiClient, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		log.Printf("Error creating genai client: %v", err)
		return nil, err
	}

	chatModel, err := gemini.NewChatModel(ctx, &gemini.Config{
		Client: genaiClient,
		Model:  modelName,
	})
	if err != nil {
		log.Printf("Error creating Gemini chat model: %v", err)
		return nil, err
	}

	return &GeminiClient{chatModel: chatModel, modelName: modelName}, nil
}

// Model returns the configured model identifier.
func (c *GeminiClient) Model() string {
	return c.modelName
}

// Generate sends one instruction and returns the raw response text. No
// retries, no streaming, no conversation history.
func (c *GeminiClient) Generate(ctx context.Context, instruction string) (string, error) {
	msg, err := c.chatModel.Generate(ctx, []*schema.Message{schema.UserMessage(instruction)})
	if err != nil {
		return "", err
	}
	return msg.Content, nil
}
