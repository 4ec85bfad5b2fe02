package service

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// AnalyticsEventName names a tracked user action.
type AnalyticsEventName string

const (
	EventUserRegistered      AnalyticsEventName = "user_registered"
	EventPostCreated         AnalyticsEventName = "post_created"
	EventVisualSearch        AnalyticsEventName = "visual_search"
	EventRecommendationsView AnalyticsEventName = "recommendations_viewed"
	EventWardrobeItemAdded   AnalyticsEventName = "wardrobe_item_added"
)

// AnalyticsEvent is a usage event published after a successful use case.
type AnalyticsEvent struct {
	RequestID  string             `json:"request_id,omitempty"` // For distributed tracing
	EventID    string             `json:"event_id"`
	Name       AnalyticsEventName `json:"name"`
	TrackingID string             `json:"tracking_id"`
	UserID     string             `json:"user_id,omitempty"`
	Properties map[string]string  `json:"properties,omitempty"`
	OccurredAt time.Time          `json:"occurred_at"`
}

// NewAnalyticsEvent fills in the event ID and timestamp.
func NewAnalyticsEvent(name AnalyticsEventName, trackingID, userID string, props map[string]string) *AnalyticsEvent {
	return &AnalyticsEvent{
		EventID:    uuid.NewString(),
		Name:       name,
		TrackingID: trackingID,
		UserID:     userID,
		Properties: props,
		OccurredAt: time.Now().UTC(),
	}
}

// EventPublisher defines the interface for publishing analytics events
type EventPublisher interface {
	// PublishAnalyticsEvent publishes one event
	PublishAnalyticsEvent(ctx context.Context, event *AnalyticsEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
