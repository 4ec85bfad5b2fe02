package handler

import (
	"curator/internal/delivery/http/response"
	"curator/internal/state"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

type NotificationHandler struct {
	notifications *state.NotificationSlice
}

func NewNotificationHandler(store *state.Store) *NotificationHandler {
	return &NotificationHandler{notifications: store.Notification}
}

type notificationsRequest struct {
	pageQuery
	UnreadOnly bool `query:"unread_only"`
}

func (h *NotificationHandler) List(c echo.Context) error {
	var req notificationsRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	return h.respond(c, ignore(h.notifications.FetchNotifications(c.Request().Context(), req.UnreadOnly, req.pagination())))
}

func (h *NotificationHandler) UnreadCount(c echo.Context) error {
	count, err := h.notifications.FetchUnreadCount(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, map[string]int{"unread_count": count})
}

func (h *NotificationHandler) MarkRead(c echo.Context) error {
	return h.respond(c, h.notifications.MarkRead(c.Request().Context(), c.Param("id")))
}

func (h *NotificationHandler) MarkAllRead(c echo.Context) error {
	return h.respond(c, h.notifications.MarkAllRead(c.Request().Context()))
}

func (h *NotificationHandler) Delete(c echo.Context) error {
	return h.respond(c, h.notifications.DeleteNotification(c.Request().Context(), c.Param("id")))
}

func (h *NotificationHandler) respond(c echo.Context, err error) error {
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, h.notifications.State())
}
