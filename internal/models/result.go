package models

const (
	// DefaultGenerationModel is the model used when no preference or env
	// override is configured.
	DefaultGenerationModel = "gemini-2.5-flash"

	// ModelLoadedFromSave marks a result reconstructed from a saved prompt
	// instead of a live generation call.
	ModelLoadedFromSave = "loaded-from-save"
)

// GeneratedResult is the normalized outcome of one successful generation
// call. NegativePrompt is reserved; nothing populates it yet, and the pointer
// keeps "not supported" distinguishable from an explicitly empty string.
type GeneratedResult struct {
	Prompt         string  `json:"prompt"`
	NegativePrompt *string `json:"negativePrompt,omitempty"`
	ModelSuggested string  `json:"modelSuggested"`
}
