package errors

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/pkg/errors"
)

// FieldErrors is an ordered list of field-level validation messages, in the
// order the backend emitted them.
type FieldErrors []FieldError

// FieldError holds the messages reported for one input field.
type FieldError struct {
	Field    string
	Messages []string
}

// First returns the first message of the first field that has one.
func (fe FieldErrors) First() string {
	for _, f := range fe {
		for _, msg := range f.Messages {
			if msg != "" {
				return msg
			}
		}
	}

	return ""
}

// ErrorEnvelope is the decoded error body of a failed backend call. The
// backend speaks two dialects: a structured {"error":{...}} object and the
// legacy detail/non_field_errors/message shapes with top-level field arrays.
type ErrorEnvelope struct {
	ErrorMessage   string      // error.message
	ErrorCode      string      // error.code
	ErrorDetails   FieldErrors // error.details
	Detail         string      // detail
	NonFieldErrors []string    // non_field_errors
	Message        string      // message
	Fields         FieldErrors // any other top-level key holding messages
}

// legacyKeys are top-level keys that are never treated as field errors.
var legacyKeys = map[string]struct{}{
	"error":            {},
	"detail":           {},
	"non_field_errors": {},
	"message":          {},
	"success":          {},
	"code":             {},
	"status":           {},
}

// ParseErrorEnvelope decodes an error body. Bodies that are not JSON objects
// produce an empty envelope.
func ParseErrorEnvelope(body []byte) ErrorEnvelope {
	var env ErrorEnvelope

	fields, err := orderedObject(body)
	if err != nil {
		return env
	}

	for _, f := range fields {
		switch f.key {
		case "error":
			env.parseStructured(f.raw)
		case "detail":
			env.Detail = decodeString(f.raw)
		case "non_field_errors":
			env.NonFieldErrors = decodeMessages(f.raw)
		case "message":
			env.Message = decodeString(f.raw)
		default:
			if _, skip := legacyKeys[f.key]; skip {
				continue
			}
			if msgs := decodeMessages(f.raw); len(msgs) > 0 {
				env.Fields = append(env.Fields, FieldError{Field: f.key, Messages: msgs})
			}
		}
	}

	return env
}

func (env *ErrorEnvelope) parseStructured(raw json.RawMessage) {
	// Some endpoints send "error": "text".
	if s := decodeString(raw); s != "" {
		env.ErrorMessage = s

		return
	}

	fields, err := orderedObject(raw)
	if err != nil {
		return
	}
	for _, f := range fields {
		switch f.key {
		case "message":
			env.ErrorMessage = decodeString(f.raw)
		case "code":
			env.ErrorCode = decodeString(f.raw)
		case "details":
			env.ErrorDetails = decodeFieldErrors(f.raw)
		}
	}
}

// UserMessage applies the extraction order: structured error message, legacy
// detail, first non-field error, legacy message, first structured field
// error, first top-level field error.
func (env ErrorEnvelope) UserMessage() string {
	if env.ErrorMessage != "" {
		return env.ErrorMessage
	}
	if env.Detail != "" {
		return env.Detail
	}
	for _, msg := range env.NonFieldErrors {
		if msg != "" {
			return msg
		}
	}
	if env.Message != "" {
		return env.Message
	}
	if msg := env.ErrorDetails.First(); msg != "" {
		return msg
	}

	return env.Fields.First()
}

// APIError is a non-2xx response from the backend. It implements AppError so
// the gateway can relay it unchanged.
type APIError struct {
	StatusCode int
	Envelope   ErrorEnvelope
	Body       []byte
}

// NewAPIError builds an APIError from a status code and raw response body.
func NewAPIError(statusCode int, body []byte) *APIError {
	return &APIError{
		StatusCode: statusCode,
		Envelope:   ParseErrorEnvelope(body),
		Body:       body,
	}
}

// Error implements the error interface
func (e *APIError) Error() string {
	if msg := e.Envelope.UserMessage(); msg != "" {
		return fmt.Sprintf("request failed with status code %d: %s", e.StatusCode, msg)
	}

	return fmt.Sprintf("request failed with status code %d", e.StatusCode)
}

// HTTPCode returns the backend status code
func (e *APIError) HTTPCode() int {
	return e.StatusCode
}

// ErrorCode returns the backend error code, or one derived from the status
func (e *APIError) ErrorCode() string {
	if e.Envelope.ErrorCode != "" {
		return e.Envelope.ErrorCode
	}

	return "API_" + strings.ToUpper(strings.ReplaceAll(http.StatusText(e.StatusCode), " ", "_"))
}

// Message returns the user-friendly error message
func (e *APIError) Message() string {
	if msg := e.Envelope.UserMessage(); msg != "" {
		return msg
	}

	return fmt.Sprintf("Request failed with status code %d", e.StatusCode)
}

// Details returns the raw backend body
func (e *APIError) Details() string {
	return string(e.Body)
}

// IsUnauthorized reports whether err is a 401 from the backend.
func IsUnauthorized(err error) bool {
	var apiErr *APIError

	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusUnauthorized
}

// IsNotFound reports whether err is a 404 from the backend.
func IsNotFound(err error) bool {
	var apiErr *APIError

	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}

type objectField struct {
	key string
	raw json.RawMessage
}

// orderedObject splits a JSON object into its members, preserving order.
func orderedObject(data []byte) ([]objectField, error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return nil, errors.WithStack(err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, errors.New("not a JSON object")
	}

	var fields []objectField
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, errors.WithStack(err)
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, errors.New("object key is not a string")
		}

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return nil, errors.WithStack(err)
		}
		fields = append(fields, objectField{key: key, raw: raw})
	}

	return fields, nil
}

func decodeString(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return ""
	}

	return s
}

// decodeMessages accepts "msg" or ["msg", ...].
func decodeMessages(raw json.RawMessage) []string {
	if s := decodeString(raw); s != "" {
		return []string{s}
	}

	var list []string
	if err := json.Unmarshal(raw, &list); err != nil {
		return nil
	}

	return list
}

// decodeFieldErrors accepts {"field": ["msg"]}, {"field": "msg"} or
// [{"field": "f", "message": "msg"}].
func decodeFieldErrors(raw json.RawMessage) FieldErrors {
	if fields, err := orderedObject(raw); err == nil {
		var out FieldErrors
		for _, f := range fields {
			if msgs := decodeMessages(f.raw); len(msgs) > 0 {
				out = append(out, FieldError{Field: f.key, Messages: msgs})
			}
		}

		return out
	}

	var list []struct {
		Field   string `json:"field"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &list); err != nil {
		return nil
	}

	out := make(FieldErrors, 0, len(list))
	for _, item := range list {
		out = append(out, FieldError{Field: item.Field, Messages: []string{item.Message}})
	}

	return out
}
