package services

import (
	"errors"

	"github.com/zalando/go-keyring"
)

const serviceName = "lumina"

// GeminiProvider is the keyring account name for the Gemini API key.
const GeminiProvider = "gemini"

// KeyringService stores provider API keys in the OS keyring. The environment
// variable takes precedence at startup; the keyring is the fallback so the
// key survives between sessions without a .env file.
type KeyringService struct {
}

func NewKeyringService() *KeyringService {
	return &KeyringService{}
}

func (s *KeyringService) StoreApiKey(provider string, apiKey string) error {
	if provider == "" {
		return errors.New("provider is required")
	}
	if apiKey == "" {
		return errors.New("API key is empty")
	}
	return keyring.Set(serviceName, provider, apiKey)
}

func (s *KeyringService) GetApiKey(provider string) (string, error) {
	if provider == "" {
		return "", errors.New("provider is required")
	}
	return keyring.Get(serviceName, provider)
}

func (s *KeyringService) DeleteApiKey(provider string) error {
	if provider == "" {
		return errors.New("provider is required")
	}
	return keyring.Delete(serviceName, provider)
}

// HasApiKey reports whether a key is stored for the provider, without
// exposing it to the frontend.
func (s *KeyringService) HasApiKey(provider string) bool {
	_, err := keyring.Get(serviceName, provider)
	return err == nil
}
