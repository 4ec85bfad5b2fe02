package middleware

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	deliverycontext "curator/internal/delivery/context"
	"curator/internal/delivery/http/response"
	domainerrors "curator/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ErrorMiddleware renders every handler error as the response envelope.
type ErrorMiddleware struct {
	logger *slog.Logger
}

func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{logger: logger}
}

// HandleHTTPError is installed as echo's HTTPErrorHandler.
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status, code, message, details := m.classify(err, c)
	if writeErr := response.Error(c, status, code, message, details); writeErr != nil {
		m.logger.Error("Failed to write error response", slog.Any("error", writeErr))
	}
}

func (m *ErrorMiddleware) classify(err error, c echo.Context) (status int, code, message, details string) {
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		msg := fmt.Sprint(httpErr.Message)

		return httpErr.Code, "HTTP_ERROR", msg, msg
	}

	// Backend errors keep the backend status; the message follows the
	// envelope extraction order.
	var apiErr *domainerrors.APIError
	if errors.As(err, &apiErr) {
		return apiErr.HTTPCode(), apiErr.ErrorCode(), domainerrors.ExtractMessage(err, ""), apiErr.Details()
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details()
	}

	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return http.StatusGatewayTimeout, "REQUEST_ABORTED", "Request was cancelled", err.Error()
	}

	deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger).Error("Unhandled error",
		slog.Any("error", err),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	)

	return http.StatusInternalServerError, domainerrors.ErrInternalError.ErrorCode(), "Internal server error", ""
}
