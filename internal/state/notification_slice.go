package state

import (
	"context"

	"curator/internal/domain/entity"
	"curator/internal/domain/repository"
)

// NotificationState holds loaded notifications and the unread badge count.
type NotificationState struct {
	Status
	Pager
	Notifications []entity.Notification `json:"notifications"`
	UnreadCount   int                   `json:"unread_count"`
	UnreadOnly    bool                  `json:"unread_only"`
}

func initialNotificationState() NotificationState {
	return NotificationState{Notifications: []entity.Notification{}}
}

// NotificationSlice owns notification state and the unread badge.
type NotificationSlice struct {
	*Slice[NotificationState]

	repo repository.NotificationRepository
}

// NewNotificationSlice returns an empty notification slice.
func NewNotificationSlice(repo repository.NotificationRepository) *NotificationSlice {
	return &NotificationSlice{
		Slice: NewSlice("notification", initialNotificationState, func(s *NotificationState) *Status {
			return &s.Status
		}),
		repo: repo,
	}
}

// FetchNotifications loads a page, newest first.
func (s *NotificationSlice) FetchNotifications(ctx context.Context, unreadOnly bool, page entity.Pagination) (*entity.Page[entity.Notification], error) {
	return Run(ctx, s.Slice, Reducers[NotificationState, *entity.Page[entity.Notification]]{
		Pending: func(st *NotificationState) {
			st.UnreadOnly = unreadOnly
		},
		Fulfilled: func(st *NotificationState, p *entity.Page[entity.Notification]) {
			st.Notifications = MergePage(st.Notifications, p, notificationID)
			st.Pager.apply(p.Page, p.Total, p.HasMore)
		},
		Fallback: "Failed to load notifications",
	}, func(ctx context.Context) (*entity.Page[entity.Notification], error) {
		return s.repo.GetNotifications(ctx, unreadOnly, page.Normalize())
	})
}

// MarkRead marks one notification read and lowers the unread count.
func (s *NotificationSlice) MarkRead(ctx context.Context, id string) error {
	return Exec(ctx, s.Slice, Reducers[NotificationState, none]{
		Fulfilled: func(st *NotificationState, _ none) {
			var wasUnread bool
			st.Notifications, _ = updateByID(st.Notifications, id, notificationID, func(n *entity.Notification) {
				wasUnread = wasUnread || !n.IsRead
				n.IsRead = true
			})
			if wasUnread && st.UnreadCount > 0 {
				st.UnreadCount--
			}
		},
		Fallback: "Failed to mark notification as read",
	}, func(ctx context.Context) error {
		return s.repo.MarkRead(ctx, id)
	})
}

// MarkAllRead marks everything read.
func (s *NotificationSlice) MarkAllRead(ctx context.Context) error {
	return Exec(ctx, s.Slice, Reducers[NotificationState, none]{
		Fulfilled: func(st *NotificationState, _ none) {
			read := make([]entity.Notification, len(st.Notifications))
			for i, n := range st.Notifications {
				n.IsRead = true
				read[i] = n
			}
			st.Notifications = read
			st.UnreadCount = 0
		},
		Fallback: "Failed to mark notifications as read",
	}, s.repo.MarkAllRead)
}

// DeleteNotification removes a notification once the backend confirms.
func (s *NotificationSlice) DeleteNotification(ctx context.Context, id string) error {
	return Exec(ctx, s.Slice, Reducers[NotificationState, none]{
		Fulfilled: func(st *NotificationState, _ none) {
			for _, n := range st.Notifications {
				if n.ID == id && !n.IsRead && st.UnreadCount > 0 {
					st.UnreadCount--
				}
			}
			before := len(st.Notifications)
			st.Notifications = removeByID(st.Notifications, id, notificationID)
			if len(st.Notifications) < before && st.Total > 0 {
				st.Total--
			}
		},
		Fallback: "Failed to delete notification",
	}, func(ctx context.Context) error {
		return s.repo.Delete(ctx, id)
	})
}

// FetchUnreadCount refreshes the unread badge.
func (s *NotificationSlice) FetchUnreadCount(ctx context.Context) (int, error) {
	return Run(ctx, s.Slice, Reducers[NotificationState, int]{
		Fulfilled: func(st *NotificationState, count int) {
			st.UnreadCount = count
		},
		Fallback: "Failed to load unread count",
	}, s.repo.GetUnreadCount)
}

// Receive prepends a pushed notification. Duplicates are ignored.
func (s *NotificationSlice) Receive(n entity.Notification) bool {
	var added bool
	s.Update(func(st *NotificationState) {
		st.Notifications, added = prependUnique(st.Notifications, n, notificationID)
		if !added {
			return
		}
		st.Total++
		if !n.IsRead {
			st.UnreadCount++
		}
	})

	return added
}
