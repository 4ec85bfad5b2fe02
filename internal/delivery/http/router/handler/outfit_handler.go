package handler

import (
	"net/http"

	"curator/internal/delivery/http/response"
	"curator/internal/domain/entity"
	"curator/internal/domain/service"
	"curator/internal/state"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// OutfitHandlerParams holds dependencies for OutfitHandler, injected by Fx.
type OutfitHandlerParams struct {
	fx.In

	Store  *state.Store
	QRCode service.QRCodeService
}

type OutfitHandler struct {
	outfits *state.OutfitSlice
	qrcode  service.QRCodeService
}

func NewOutfitHandler(params OutfitHandlerParams) *OutfitHandler {
	return &OutfitHandler{outfits: params.Store.Outfit, qrcode: params.QRCode}
}

type recommendationsRequest struct {
	pageQuery
	Occasion string   `query:"occasion"`
	Season   string   `query:"season"`
	Styles   []string `query:"style"`
}

func (h *OutfitHandler) Recommendations(c echo.Context) error {
	var req recommendationsRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	if _, err := h.outfits.FetchRecommendations(c.Request().Context(), entity.RecommendationFilters{
		Occasion: req.Occasion,
		Season:   req.Season,
		Styles:   req.Styles,
		Page:     req.Page,
		Limit:    req.Limit,
	}); err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, h.outfits.State())
}

func (h *OutfitHandler) Saved(c echo.Context) error {
	var req pageQuery
	if err := bind(c, &req); err != nil {
		return err
	}
	if _, err := h.outfits.FetchSaved(c.Request().Context(), req.pagination()); err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, h.outfits.State())
}

func (h *OutfitHandler) Get(c echo.Context) error {
	if _, err := h.outfits.FetchOutfit(c.Request().Context(), c.Param("id")); err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, h.outfits.State())
}

func (h *OutfitHandler) Like(c echo.Context) error {
	return h.respond(c, h.outfits.LikeOutfit(c.Request().Context(), c.Param("id")))
}

func (h *OutfitHandler) Unlike(c echo.Context) error {
	return h.respond(c, h.outfits.UnlikeOutfit(c.Request().Context(), c.Param("id")))
}

func (h *OutfitHandler) Save(c echo.Context) error {
	return h.respond(c, h.outfits.SaveOutfit(c.Request().Context(), c.Param("id")))
}

func (h *OutfitHandler) Unsave(c echo.Context) error {
	return h.respond(c, h.outfits.UnsaveOutfit(c.Request().Context(), c.Param("id")))
}

func (h *OutfitHandler) respond(c echo.Context, err error) error {
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, h.outfits.State())
}

// ShareQR renders a PNG QR code linking to the outfit.
func (h *OutfitHandler) ShareQR(c echo.Context) error {
	png, err := h.qrcode.GenerateShareQR(service.ShareKindOutfit, c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
