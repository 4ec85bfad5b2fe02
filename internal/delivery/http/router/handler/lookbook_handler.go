package handler

import (
	"net/http"

	"curator/internal/delivery/http/response"
	"curator/internal/domain/entity"
	"curator/internal/domain/repository"
	"curator/internal/domain/service"
	"curator/internal/state"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// LookbookHandlerParams holds dependencies for LookbookHandler, injected by Fx.
type LookbookHandlerParams struct {
	fx.In

	Store  *state.Store
	QRCode service.QRCodeService
}

type LookbookHandler struct {
	lookbooks *state.LookbookSlice
	qrcode    service.QRCodeService
}

func NewLookbookHandler(params LookbookHandlerParams) *LookbookHandler {
	return &LookbookHandler{lookbooks: params.Store.Lookbook, qrcode: params.QRCode}
}

type lookbooksRequest struct {
	pageQuery
	AuthorID string `query:"author_id"`
	Tag      string `query:"tag"`
	Featured bool   `query:"featured"`
}

type createLookbookRequest struct {
	Title       string   `json:"title" validate:"required,max=200"`
	Description string   `json:"description"`
	CoverImage  string   `json:"cover_image" validate:"omitempty,url"`
	Tags        []string `json:"tags"`
	IsPublic    bool     `json:"is_public"`
	OutfitIDs   []string `json:"outfit_ids"`
}

type lookbookOutfitRequest struct {
	ID       string `param:"id" json:"-"`
	OutfitID string `json:"outfit_id" validate:"required"`
}

func (h *LookbookHandler) List(c echo.Context) error {
	var req lookbooksRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	filter := entity.LookbookFilter{AuthorID: req.AuthorID, Tag: req.Tag, Featured: req.Featured}

	return h.respond(c, ignore(h.lookbooks.FetchLookbooks(c.Request().Context(), filter, req.pagination())))
}

func (h *LookbookHandler) Get(c echo.Context) error {
	return h.respond(c, ignore(h.lookbooks.FetchLookbook(c.Request().Context(), c.Param("id"))))
}

func (h *LookbookHandler) Create(c echo.Context) error {
	var req createLookbookRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	_, err := h.lookbooks.CreateLookbook(c.Request().Context(), repository.CreateLookbookParams{
		Title:       req.Title,
		Description: req.Description,
		CoverImage:  req.CoverImage,
		Tags:        req.Tags,
		IsPublic:    req.IsPublic,
		OutfitIDs:   req.OutfitIDs,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, h.lookbooks.State(), "Lookbook created")
}

func (h *LookbookHandler) Delete(c echo.Context) error {
	return h.respond(c, h.lookbooks.DeleteLookbook(c.Request().Context(), c.Param("id")))
}

func (h *LookbookHandler) AddOutfit(c echo.Context) error {
	var req lookbookOutfitRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	return h.respond(c, ignore(h.lookbooks.AddOutfit(c.Request().Context(), req.ID, req.OutfitID)))
}

func (h *LookbookHandler) RemoveOutfit(c echo.Context) error {
	return h.respond(c, ignore(h.lookbooks.RemoveOutfit(c.Request().Context(), c.Param("id"), c.Param("outfitId"))))
}

func (h *LookbookHandler) Like(c echo.Context) error {
	return h.respond(c, h.lookbooks.LikeLookbook(c.Request().Context(), c.Param("id")))
}

func (h *LookbookHandler) Unlike(c echo.Context) error {
	return h.respond(c, h.lookbooks.UnlikeLookbook(c.Request().Context(), c.Param("id")))
}

// ShareQR renders a PNG QR code linking to the lookbook.
func (h *LookbookHandler) ShareQR(c echo.Context) error {
	png, err := h.qrcode.GenerateShareQR(service.ShareKindLookbook, c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

func (h *LookbookHandler) respond(c echo.Context, err error) error {
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, h.lookbooks.State())
}
