package events

import (
	"context"

	"github.com/wailsapp/wails/v2/pkg/runtime"
)

// Emit publishes an event to the frontend. The default is a no-op so services
// stay silent in tests; main enables the runtime emitter once the Wails
// context exists.
var Emit = func(ctx context.Context, name string, evt SessionEvent) {}

func EnableRuntimeEmitter() {
	Emit = func(ctx context.Context, name string, evt SessionEvent) {
		runtime.EventsEmit(ctx, name, evt)
		logRuntimeEvent(ctx, name, evt)
	}
}

func SetCustomEmitter(f func(ctx context.Context, name string, evt SessionEvent)) {
	if f == nil {
		Emit = func(context.Context, string, SessionEvent) {}
		return
	}
	Emit = f
}
