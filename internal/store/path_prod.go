//go:build prod

package store

import (
	"log"
	"os"
	"path/filepath"
)

// DefaultPath returns the saved-prompts location for production mode: the
// user's config directory, falling back to the working directory.
func DefaultPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		log.Printf("Warning: Failed to get user config dir: %v. Using fallback.", err)
		return "saved_prompts.json"
	}

	appDir := filepath.Join(configDir, "lumina")
	if err := os.MkdirAll(appDir, 0755); err != nil {
		log.Printf("Warning: Failed to create app config dir: %v. Using fallback.", err)
		return "saved_prompts.json"
	}

	return filepath.Join(appDir, "saved_prompts.json")
}
