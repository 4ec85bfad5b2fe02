package handler

import (
	"net/http"

	"curator/internal/delivery/http/response"
	"curator/internal/domain/entity"
	"curator/internal/domain/repository"
	"curator/internal/state"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

type WardrobeHandler struct {
	wardrobe *state.WardrobeSlice
}

func NewWardrobeHandler(store *state.Store) *WardrobeHandler {
	return &WardrobeHandler{wardrobe: store.Wardrobe}
}

type wardrobeItemsRequest struct {
	pageQuery
	Category entity.Category `query:"category"`
	Color    string          `query:"color"`
	Brand    string          `query:"brand"`
	Search   string          `query:"search"`
	Tags     []string        `query:"tag"`
}

func (h *WardrobeHandler) Get(c echo.Context) error {
	if _, err := h.wardrobe.FetchWardrobe(c.Request().Context()); err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, h.wardrobe.State())
}

// Items sets the filter from the query and loads the requested page.
func (h *WardrobeHandler) Items(c echo.Context) error {
	var req wardrobeItemsRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	h.wardrobe.SetFilter(entity.WardrobeFilter{
		Category: req.Category,
		Color:    req.Color,
		Brand:    req.Brand,
		Search:   req.Search,
		Tags:     req.Tags,
	})
	if _, err := h.wardrobe.FetchItems(c.Request().Context(), req.pagination()); err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, h.wardrobe.State())
}

func (h *WardrobeHandler) NextItems(c echo.Context) error {
	if _, err := h.wardrobe.FetchNextItems(c.Request().Context()); err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, h.wardrobe.State())
}

func (h *WardrobeHandler) Item(c echo.Context) error {
	if _, err := h.wardrobe.FetchItem(c.Request().Context(), c.Param("id")); err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, h.wardrobe.State())
}

func (h *WardrobeHandler) AddItem(c echo.Context) error {
	var item entity.WardrobeItem
	if err := bind(c, &item); err != nil {
		return err
	}
	if _, err := h.wardrobe.AddItem(c.Request().Context(), item); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, h.wardrobe.State(), "Item added")
}

func (h *WardrobeHandler) UpdateItem(c echo.Context) error {
	var params repository.UpdateWardrobeItemParams
	if err := bind(c, &params); err != nil {
		return err
	}
	if _, err := h.wardrobe.UpdateItem(c.Request().Context(), c.Param("id"), params); err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, h.wardrobe.State())
}

func (h *WardrobeHandler) MarkWorn(c echo.Context) error {
	if _, err := h.wardrobe.MarkWorn(c.Request().Context(), c.Param("id")); err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, h.wardrobe.State())
}

func (h *WardrobeHandler) DeleteItem(c echo.Context) error {
	if err := h.wardrobe.DeleteItem(c.Request().Context(), c.Param("id")); err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, h.wardrobe.State())
}
