// Package api talks to the CuratorAI REST backend. Every repository method
// maps to exactly one HTTP round-trip: no retry, no caching, no batching.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"strconv"
	"strings"
	"time"

	deliverycontext "curator/internal/delivery/context"
	"curator/internal/domain/entity"
	domainerrors "curator/internal/domain/errors"
	"curator/internal/domain/repository"

	"github.com/pkg/errors"
)

const maxResponseBytes = 16 << 20

// Client is the shared HTTP transport of all repositories.
type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     repository.TokenStorage
	logger     *slog.Logger
}

// NewClient creates a backend client. tokens may be nil for unauthenticated use.
func NewClient(baseURL string, timeout time.Duration, tokens repository.TokenStorage, logger *slog.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		tokens: tokens,
		logger: logger,
	}
}

func (c *Client) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, c.logger)
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	return c.do(ctx, http.MethodGet, path, query, nil, out)
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, nil, body, out)
}

func (c *Client) patch(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPatch, path, nil, body, out)
}

func (c *Client) delete(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil, out)
}

// do sends a JSON request and decodes the response into out (nil to discard).
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return errors.Wrap(err, "encode request body")
		}
		reader = bytes.NewReader(data)
	}

	req, err := c.newRequest(ctx, method, path, query, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return c.send(req, out)
}

// upload sends a multipart form with one file part.
func (c *Client) upload(ctx context.Context, path, field string, file entity.ImageUpload, fields map[string]string, out any) error {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	for key, value := range fields {
		if err := mw.WriteField(key, value); err != nil {
			return errors.WithStack(err)
		}
	}

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", `form-data; name="`+field+`"; filename="`+escapeQuotes(file.Filename)+`"`)
	header.Set("Content-Type", file.ContentType)
	part, err := mw.CreatePart(header)
	if err != nil {
		return errors.WithStack(err)
	}
	if _, err := part.Write(file.Data); err != nil {
		return errors.WithStack(err)
	}
	if err := mw.Close(); err != nil {
		return errors.WithStack(err)
	}

	req, err := c.newRequest(ctx, http.MethodPost, path, nil, &buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	return c.send(req, out)
}

func (c *Client) newRequest(ctx context.Context, method, path string, query url.Values, body io.Reader) (*http.Request, error) {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	req.Header.Set("Accept", "application/json")

	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		req.Header.Set(deliverycontext.HeaderXRequestID, requestID)
	}

	if c.tokens != nil {
		tokens, err := c.tokens.LoadTokens(ctx)
		if err != nil {
			c.log(ctx).Warn("Could not load access token", slog.Any("error", err))
		} else if tokens.AccessToken != "" {
			req.Header.Set("Authorization", "Bearer "+tokens.AccessToken)
		}
	}

	return req, nil
}

func (c *Client) send(req *http.Request, out any) error {
	ctx := req.Context()
	start := time.Now()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return errors.WithStack(ctxErr)
		}

		return errors.Wrapf(domainerrors.ErrNetwork.WithDetails(err.Error()), "%s %s", req.Method, req.URL.Path)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return errors.Wrap(domainerrors.ErrNetwork.WithDetails(err.Error()), "read response body")
	}

	c.log(ctx).Debug("Backend call",
		slog.String("method", req.Method),
		slog.String("path", req.URL.Path),
		slog.Int("status", resp.StatusCode),
		slog.Duration("latency", time.Since(start)),
	)

	if resp.StatusCode >= http.StatusBadRequest {
		return domainerrors.NewAPIError(resp.StatusCode, data)
	}

	if out == nil || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}

	if err := json.Unmarshal(unwrapData(data), out); err != nil {
		return errors.Wrapf(err, "decode %s %s response", req.Method, req.URL.Path)
	}

	return nil
}

// unwrapData returns the "data" member of a {"success":..,"data":..} wrapper,
// or the body itself when it is not wrapped.
func unwrapData(body []byte) []byte {
	var wrapper struct {
		Success *bool           `json:"success"`
		Data    json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(body, &wrapper); err != nil {
		return body
	}
	if wrapper.Success == nil || len(wrapper.Data) == 0 {
		return body
	}

	return wrapper.Data
}

// drfPage is the Django REST Framework pagination shape.
type drfPage[T any] struct {
	Count    int     `json:"count"`
	Next     *string `json:"next"`
	Previous *string `json:"previous"`
	Results  []T     `json:"results"`
}

// pageResult collects a paginated response, accepting a bare array too.
type pageResult[T any] struct {
	page drfPage[T]
}

func (p *pageResult[T]) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var items []T
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return errors.WithStack(err)
		}
		p.page = drfPage[T]{Count: len(items), Results: items}

		return nil
	}

	return errors.WithStack(json.Unmarshal(trimmed, &p.page))
}

func (p *pageResult[T]) toPage(requested entity.Pagination) *entity.Page[T] {
	items := p.page.Results
	if items == nil {
		items = []T{}
	}

	return &entity.Page[T]{
		Items:   items,
		Page:    requested.Page,
		Total:   p.page.Count,
		HasMore: p.page.Next != nil && *p.page.Next != "",
	}
}

// getPage fetches one page of a listing.
func getPage[T any](ctx context.Context, c *Client, path string, query url.Values, pagination entity.Pagination) (*entity.Page[T], error) {
	pagination = pagination.Normalize()
	if query == nil {
		query = url.Values{}
	}
	query.Set("page", strconv.Itoa(pagination.Page))
	query.Set("page_size", strconv.Itoa(pagination.Limit))

	var result pageResult[T]
	if err := c.get(ctx, path, query, &result); err != nil {
		return nil, err
	}

	return result.toPage(pagination), nil
}

func escapeQuotes(s string) string {
	return strings.NewReplacer(`\`, `\\`, `"`, `\"`).Replace(s)
}

// seg escapes a path segment.
func seg(id string) string {
	return url.PathEscape(id)
}

func setIf(q url.Values, key, value string) {
	if value != "" {
		q.Set(key, value)
	}
}
