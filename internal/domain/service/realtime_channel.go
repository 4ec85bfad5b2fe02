// Package service defines ports for infrastructure the use cases depend on
// but do not implement.
package service

import (
	"context"
	"encoding/json"

	"curator/internal/domain/entity"
)

// RealtimeEvent is one frame pushed by the server over the realtime channel.
type RealtimeEvent struct {
	Type entity.NotificationType `json:"type"`
	Data json.RawMessage         `json:"data"`
}

// RealtimeHandler handles one event. Handlers run on the channel's read loop
// and must not block.
type RealtimeHandler func(event RealtimeEvent)

// RealtimeChannel is the authenticated server push channel.
type RealtimeChannel interface {
	// Connect opens the channel with the given access token. Connecting an
	// open channel replaces the connection.
	Connect(ctx context.Context, accessToken string) error

	// On registers a handler for an event type and returns its unsubscribe func.
	On(eventType entity.NotificationType, handler RealtimeHandler) func()

	// Disconnect closes the channel. Safe to call when not connected.
	Disconnect() error

	// Connected reports whether the channel is open.
	Connected() bool
}
