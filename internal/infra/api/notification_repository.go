package api

import (
	"context"
	"net/url"

	"curator/internal/domain/entity"
	"curator/internal/domain/repository"
)

type notificationRepository struct {
	client *Client
}

// NewNotificationRepository creates the /notifications repository.
func NewNotificationRepository(client *Client) repository.NotificationRepository {
	return &notificationRepository{client: client}
}

func (r *notificationRepository) GetNotifications(ctx context.Context, unreadOnly bool, page entity.Pagination) (*entity.Page[entity.Notification], error) {
	q := url.Values{}
	if unreadOnly {
		q.Set("unread", "true")
	}

	return getPage[entity.Notification](ctx, r.client, "/notifications/", q, page)
}

func (r *notificationRepository) MarkRead(ctx context.Context, id string) error {
	return r.client.post(ctx, "/notifications/"+seg(id)+"/read/", nil, nil)
}

func (r *notificationRepository) MarkAllRead(ctx context.Context) error {
	return r.client.post(ctx, "/notifications/read-all/", nil, nil)
}

func (r *notificationRepository) Delete(ctx context.Context, id string) error {
	return r.client.delete(ctx, "/notifications/"+seg(id)+"/", nil)
}

func (r *notificationRepository) GetUnreadCount(ctx context.Context) (int, error) {
	var resp struct {
		Count       *int `json:"count"`
		UnreadCount *int `json:"unread_count"`
	}
	if err := r.client.get(ctx, "/notifications/unread-count/", nil, &resp); err != nil {
		return 0, err
	}

	switch {
	case resp.UnreadCount != nil:
		return *resp.UnreadCount, nil
	case resp.Count != nil:
		return *resp.Count, nil
	default:
		return 0, nil
	}
}
