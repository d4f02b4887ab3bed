package models

// SavedPrompt is a frozen snapshot of one preference set and the (possibly
// user-edited) prompt text at the moment it was saved. Entries are immutable
// once created.
type SavedPrompt struct {
	ID            string      `json:"id"`
	Timestamp     int64       `json:"timestamp"` // milliseconds since epoch
	OriginalInput Preferences `json:"originalInput"`
	FinalPrompt   string      `json:"finalPrompt"`
}
