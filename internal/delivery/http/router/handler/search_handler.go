package handler

import (
	"io"
	"strconv"

	"curator/internal/delivery/http/response"
	"curator/internal/domain/entity"
	domainerrors "curator/internal/domain/errors"
	"curator/internal/state"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

type SearchHandler struct {
	search *state.SearchSlice
}

func NewSearchHandler(store *state.Store) *SearchHandler {
	return &SearchHandler{search: store.Search}
}

type textSearchRequest struct {
	pageQuery
	Query    string          `query:"q" validate:"required"`
	Category entity.Category `query:"category"`
	Brand    string          `query:"brand"`
	Color    string          `query:"color"`
	MinPrice string          `query:"min_price" validate:"omitempty,numeric"`
	MaxPrice string          `query:"max_price" validate:"omitempty,numeric"`
	SortBy   string          `query:"sort_by"`
}

func (r textSearchRequest) filters() entity.SearchFilters {
	return entity.SearchFilters{
		Category: r.Category,
		Brand:    r.Brand,
		Color:    r.Color,
		MinPrice: parsePrice(r.MinPrice),
		MaxPrice: parsePrice(r.MaxPrice),
		SortBy:   r.SortBy,
	}
}

func parsePrice(s string) *decimal.Decimal {
	if s == "" {
		return nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return nil
	}

	return &d
}

func (h *SearchHandler) Text(c echo.Context) error {
	var req textSearchRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	if _, err := h.search.TextSearch(c.Request().Context(), req.Query, req.filters(), req.pagination()); err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, h.search.State())
}

// Visual expects a multipart form with the image under "image". Options are
// optional form fields.
func (h *SearchHandler) Visual(c echo.Context) error {
	header, err := c.FormFile("image")
	if err != nil {
		return domainerrors.NewValidationError("Image is required").WithDetails(err.Error())
	}
	file, err := header.Open()
	if err != nil {
		return errors.Wrap(err, "open uploaded image")
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return errors.Wrap(err, "read uploaded image")
	}

	opts, err := visualOptions(c)
	if err != nil {
		return err
	}

	image := entity.ImageUpload{
		Filename:    header.Filename,
		ContentType: header.Header.Get(echo.HeaderContentType),
		Data:        data,
	}
	if _, err := h.search.VisualSearch(c.Request().Context(), image, opts); err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, h.search.State())
}

func visualOptions(c echo.Context) (entity.VisualSearchOptions, error) {
	var opts entity.VisualSearchOptions

	if v := c.FormValue("similarity_threshold"); v != "" {
		threshold, err := strconv.ParseFloat(v, 64)
		if err != nil || threshold < 0 || threshold > 1 {
			return opts, domainerrors.NewValidationError("similarity_threshold must be between 0 and 1")
		}
		opts.SimilarityThreshold = &threshold
	}
	if v := c.FormValue("deduplicate"); v != "" {
		dedup, err := strconv.ParseBool(v)
		if err != nil {
			return opts, domainerrors.NewValidationError("deduplicate must be a boolean")
		}
		opts.Deduplicate = &dedup
	}
	if v := c.FormValue("limit"); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil || limit < 1 {
			return opts, domainerrors.NewValidationError("limit must be at least 1")
		}
		opts.Limit = limit
	}
	opts.Category = entity.Category(c.FormValue("category"))

	return opts, nil
}

func (h *SearchHandler) History(c echo.Context) error {
	if _, err := h.search.FetchHistory(c.Request().Context()); err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, h.search.State())
}

func (h *SearchHandler) ClearHistory(c echo.Context) error {
	if err := h.search.ClearHistory(c.Request().Context()); err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, h.search.State())
}

func (h *SearchHandler) ClearResults(c echo.Context) error {
	h.search.ClearResults()

	return response.OK(c, h.search.State())
}
