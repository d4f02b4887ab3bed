//go:build !prod

package store

// DefaultPath returns the saved-prompts location for development mode: the
// project root, for easy inspection while debugging.
func DefaultPath() string {
	return "saved_prompts.json"
}
