// Package entity contains the core business objects of the project.
package entity

import "time"

// NotificationType mirrors the event types pushed over the realtime channel.
type NotificationType string

const (
	NotificationTypeGeneral            NotificationType = "notification"
	NotificationTypeNewRecommendation  NotificationType = "new_recommendation"
	NotificationTypePostLiked          NotificationType = "post_liked"
	NotificationTypeNewComment         NotificationType = "new_comment"
	NotificationTypeNewFollower        NotificationType = "new_follower"
	NotificationTypeProcessingComplete NotificationType = "processing_complete"
)

// IsValid checks if the NotificationType is a known value.
func (t NotificationType) IsValid() bool {
	switch t {
	case NotificationTypeGeneral, NotificationTypeNewRecommendation, NotificationTypePostLiked,
		NotificationTypeNewComment, NotificationTypeNewFollower, NotificationTypeProcessingComplete:
		return true
	default:
		return false
	}
}

// Notification is a message shown in the user's notification center.
type Notification struct {
	ID        string           `json:"id"`
	Type      NotificationType `json:"type"`
	Title     string           `json:"title"`
	Message   string           `json:"message"`
	Link      string           `json:"link,omitempty"`
	ActorID   string           `json:"actor_id,omitempty"`
	IsRead    bool             `json:"is_read"`
	CreatedAt time.Time        `json:"created_at"`
}
