// Package repository defines the interfaces for the remote data layer.
package repository

import (
	"context"

	"curator/internal/domain/entity"
)

// NotificationRepository defines the /notifications endpoints.
type NotificationRepository interface {
	// GetNotifications lists notifications, newest first.
	GetNotifications(ctx context.Context, unreadOnly bool, page entity.Pagination) (*entity.Page[entity.Notification], error)

	// MarkRead marks a single notification as read.
	MarkRead(ctx context.Context, id string) error

	// MarkAllRead marks every notification as read.
	MarkAllRead(ctx context.Context) error

	// Delete removes a notification.
	Delete(ctx context.Context, id string) error

	// GetUnreadCount returns the number of unread notifications.
	GetUnreadCount(ctx context.Context) (int, error)
}
