package errors

import (
	"strings"

	"github.com/pkg/errors"
)

// DefaultMessage is shown when nothing more specific can be extracted.
const DefaultMessage = "An unexpected error occurred"

// ExtractMessage turns any error into a display-ready string. State never
// holds raw error values; every rejection goes through here.
//
// Backend errors use the envelope order (see ErrorEnvelope.UserMessage),
// application errors use their user-facing message, anything else is
// coerced to its string form. fallback (or DefaultMessage when empty) is
// returned when all of those are blank.
func ExtractMessage(err error, fallback string) string {
	if fallback == "" {
		fallback = DefaultMessage
	}
	if err == nil {
		return ""
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message()
	}

	var appErr AppError
	if errors.As(err, &appErr) {
		if msg := strings.TrimSpace(appErr.Message()); msg != "" {
			return msg
		}
	}

	if msg := strings.TrimSpace(err.Error()); msg != "" {
		return msg
	}

	return fallback
}
