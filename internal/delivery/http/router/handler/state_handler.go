package handler

import (
	"curator/internal/delivery/http/response"
	domainerrors "curator/internal/domain/errors"
	"curator/internal/state"

	"github.com/labstack/echo/v4"
)

// StateHandler exposes read-only slice snapshots.
type StateHandler struct {
	store *state.Store
}

func NewStateHandler(store *state.Store) *StateHandler {
	return &StateHandler{store: store}
}

// List returns the slice names.
func (h *StateHandler) List(c echo.Context) error {
	return response.OK(c, h.store.Names())
}

// Get returns the current state of one slice.
func (h *StateHandler) Get(c echo.Context) error {
	name := c.Param("slice")
	snapshot, ok := h.store.Snapshot(name)
	if !ok {
		return domainerrors.ErrNotFound.WithDetails("unknown slice " + name)
	}

	return response.OK(c, snapshot)
}
