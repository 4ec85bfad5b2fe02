// Package handler contains the gateway's HTTP handlers. Every handler runs a
// slice operation with the request context and replies with the slice state.
package handler

import (
	"net/http"

	"curator/internal/delivery/http/response"
	"curator/internal/domain/entity"
	domainerrors "curator/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// pageQuery is the common page/limit query.
type pageQuery struct {
	Page  int `query:"page" validate:"omitempty,min=1"`
	Limit int `query:"limit" validate:"omitempty,min=1,max=100"`
}

func (q pageQuery) pagination() entity.Pagination {
	return entity.Pagination{Page: q.Page, Limit: q.Limit}.Normalize()
}

// bind decodes path, query and body into req and validates it.
func bind(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return domainerrors.NewValidationError("Invalid request").WithDetails(err.Error())
	}
	if err := c.Validate(req); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

// HealthCheck reports that the gateway is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "")
}

// Module provides every handler.
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(
		NewStateHandler,
		NewAuthHandler,
		NewUserHandler,
		NewWardrobeHandler,
		NewOutfitHandler,
		NewSocialHandler,
		NewSearchHandler,
		NewCartHandler,
		NewNotificationHandler,
		NewLookbookHandler,
		NewUIHandler,
	),
)
