package events

type EventType string

const (
	EventInfo    EventType = "info"
	EventWarn    EventType = "warn"
	EventError   EventType = "error"
	EventSuccess EventType = "success"
)

// Event names published to the frontend.
const (
	SessionChanged   = "session:changed"
	GenerationFailed = "generation:failed"
	StoreWriteFailed = "store:write-failed"
)

// SessionEvent is the payload published when session state changes or a
// generation settles.
type SessionEvent struct {
	Type    EventType `json:"type"`
	Step    string    `json:"step"`
	Loading bool      `json:"loading"`
	Message string    `json:"message,omitempty"`
}
