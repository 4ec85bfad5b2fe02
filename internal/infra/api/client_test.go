package api

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"curator/internal/domain/entity"
	domainerrors "curator/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memoryTokens is an in-memory TokenStorage.
type memoryTokens struct {
	mu     sync.Mutex
	tokens entity.TokenPair
}

func (m *memoryTokens) LoadTokens(context.Context) (entity.TokenPair, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.tokens, nil
}

func (m *memoryTokens) SaveTokens(_ context.Context, tokens entity.TokenPair) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tokens = tokens

	return nil
}

func (m *memoryTokens) ClearTokens(context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tokens = entity.TokenPair{}

	return nil
}

// recorder keeps the last request the test server saw.
type recorder struct {
	mu   sync.Mutex
	last recorded
}

func (r *recorder) get() recorded {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.last
}

type recorded struct {
	Method        string
	Path          string
	Query         map[string][]string
	Authorization string
	ContentType   string
	Body          []byte
}

// newTestServer answers every request with status and body, recording the request.
func newTestServer(t *testing.T, status int, body string) (*httptest.Server, *recorder) {
	t.Helper()

	rec := &recorder{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data, _ := io.ReadAll(r.Body)
		rec.mu.Lock()
		rec.last = recorded{
			Method:        r.Method,
			Path:          r.URL.Path,
			Query:         r.URL.Query(),
			Authorization: r.Header.Get("Authorization"),
			ContentType:   r.Header.Get("Content-Type"),
			Body:          data,
		}
		rec.mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)

	return server, rec
}

func newTestClient(baseURL string, tokens *memoryTokens) *Client {
	return NewClient(baseURL, 5*time.Second, tokens, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func decodeBody(t *testing.T, rec *recorder) map[string]any {
	t.Helper()

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.get().Body, &body))

	return body
}

func TestClient_AttachesBearerToken(t *testing.T) {
	server, rec := newTestServer(t, http.StatusOK, `{"id":"u1","email":"a@b.c","username":"ann"}`)
	tokens := &memoryTokens{tokens: entity.TokenPair{AccessToken: "acc", RefreshToken: "ref"}}

	user, err := NewAuthRepository(newTestClient(server.URL, tokens)).GetCurrentUser(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "u1", user.ID)
	assert.Equal(t, "Bearer acc", rec.get().Authorization)
	assert.Equal(t, "/auth/me/", rec.get().Path)
}

func TestClient_NoTokenNoHeader(t *testing.T) {
	server, rec := newTestServer(t, http.StatusOK, `{"id":"u1"}`)

	_, err := NewAuthRepository(newTestClient(server.URL, &memoryTokens{})).GetCurrentUser(context.Background())

	require.NoError(t, err)
	assert.Empty(t, rec.get().Authorization)
}

func TestClient_UnwrapsSuccessEnvelope(t *testing.T) {
	server, _ := newTestServer(t, http.StatusOK, `{"success":true,"data":{"id":"u9","username":"wrapped"}}`)

	user, err := NewUserRepository(newTestClient(server.URL, &memoryTokens{})).GetUser(context.Background(), "u9")

	require.NoError(t, err)
	assert.Equal(t, "wrapped", user.Username)
}

func TestClient_ErrorStatusBecomesAPIError(t *testing.T) {
	server, _ := newTestServer(t, http.StatusUnauthorized, `{"error":{"code":"INVALID_CREDENTIALS","message":"Invalid credentials"}}`)

	_, err := NewAuthRepository(newTestClient(server.URL, &memoryTokens{})).Login(context.Background(), loginParams())

	require.Error(t, err)
	var apiErr *domainerrors.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	assert.Equal(t, "INVALID_CREDENTIALS", apiErr.ErrorCode())
	assert.Equal(t, "Invalid credentials", domainerrors.ExtractMessage(err, ""))
}

func TestClient_NetworkError(t *testing.T) {
	server, _ := newTestServer(t, http.StatusOK, `{}`)
	url := server.URL
	server.Close()

	_, err := NewCartRepository(newTestClient(url, &memoryTokens{})).GetCart(context.Background())

	assert.ErrorIs(t, err, domainerrors.ErrNetwork)
}

func TestClient_CanceledContext(t *testing.T) {
	server, _ := newTestServer(t, http.StatusOK, `{}`)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewCartRepository(newTestClient(server.URL, &memoryTokens{})).GetCart(ctx)

	assert.ErrorIs(t, err, context.Canceled)
}

func TestGetPage_DRFPagination(t *testing.T) {
	server, rec := newTestServer(t, http.StatusOK, `{
		"count": 45,
		"next": "http://api/social/posts/?page=3",
		"previous": "http://api/social/posts/?page=1",
		"results": [{"id":"p1","caption":"one"},{"id":"p2","caption":"two"}]
	}`)

	page, err := NewSocialRepository(newTestClient(server.URL, &memoryTokens{})).
		GetFeed(context.Background(), entity.Pagination{Page: 2, Limit: 2})

	require.NoError(t, err)
	assert.Len(t, page.Items, 2)
	assert.Equal(t, 2, page.Page)
	assert.Equal(t, 45, page.Total)
	assert.True(t, page.HasMore)
	assert.Equal(t, []string{"2"}, rec.get().Query["page"])
	assert.Equal(t, []string{"2"}, rec.get().Query["page_size"])
}

func TestGetPage_LastPageAndBareArray(t *testing.T) {
	server, _ := newTestServer(t, http.StatusOK, `{"count":1,"next":null,"previous":null,"results":[{"id":"n1","type":"notification"}]}`)
	page, err := NewNotificationRepository(newTestClient(server.URL, &memoryTokens{})).
		GetNotifications(context.Background(), false, entity.Pagination{})
	require.NoError(t, err)
	assert.False(t, page.HasMore)
	assert.Equal(t, 1, page.Page)

	server2, _ := newTestServer(t, http.StatusOK, `[{"id":"n1"},{"id":"n2"}]`)
	page, err = NewNotificationRepository(newTestClient(server2.URL, &memoryTokens{})).
		GetNotifications(context.Background(), true, entity.Pagination{})
	require.NoError(t, err)
	assert.Len(t, page.Items, 2)
	assert.Equal(t, 2, page.Total)
	assert.False(t, page.HasMore)
}

func TestGetPage_EmptyResultsNeverNil(t *testing.T) {
	server, _ := newTestServer(t, http.StatusOK, `{"count":0,"next":null,"results":null}`)

	page, err := NewWardrobeRepository(newTestClient(server.URL, &memoryTokens{})).
		GetItems(context.Background(), entity.WardrobeFilter{}, entity.Pagination{})

	require.NoError(t, err)
	assert.NotNil(t, page.Items)
	assert.Empty(t, page.Items)
}
