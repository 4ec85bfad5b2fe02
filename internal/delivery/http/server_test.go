package http

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"curator/config"
	deliverycontext "curator/internal/delivery/context"
	"curator/internal/delivery/http/middleware"
	"curator/internal/delivery/http/router"
	"curator/internal/delivery/http/router/handler"
	"curator/internal/domain/entity"
	domainerrors "curator/internal/domain/errors"
	"curator/internal/domain/repository"
	"curator/internal/infra/qrcode"
	mockRepo "curator/internal/mocks/repository"
	"curator/internal/state"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type fakeSession struct {
	refreshErr error
}

func (f *fakeSession) Start(context.Context) error        { return nil }
func (f *fakeSession) Stop()                              {}
func (f *fakeSession) Recover(context.Context) error      { return nil }
func (f *fakeSession) CheckSession(context.Context) error { return nil }
func (f *fakeSession) Refresh(context.Context) error      { return f.refreshErr }
func (f *fakeSession) Logout(context.Context) error       { return nil }

type gateway struct {
	echo     *echo.Echo
	store    *state.Store
	authRepo *mockRepo.MockAuthRepository
	cartRepo *mockRepo.MockCartRepository
	session  *fakeSession
}

type envelope struct {
	Success bool            `json:"success"`
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string `json:"code"`
		Details string `json:"details"`
	} `json:"error"`
}

func newTestConfig() *config.Config {
	cfg := &config.Config{
		Features: config.FeatureFlags{
			VisualSearch: true,
			Social:       true,
			Lookbooks:    true,
		},
		Gateway: config.GatewayConfig{MaxRequestBodySize: "1M"},
		QRCode:  &config.QRCodeConfig{Size: 128, ErrorCorrectionLevel: "L", BaseURL: "https://curator.test/share"},
	}
	cfg.Env.Debug = true

	return cfg
}

func newGateway(t *testing.T, cfg *config.Config) *gateway {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	gw := &gateway{
		authRepo: mockRepo.NewMockAuthRepository(t),
		cartRepo: mockRepo.NewMockCartRepository(t),
		session:  &fakeSession{},
	}
	gw.store = state.NewStore(state.StoreParams{
		AuthRepo:         gw.authRepo,
		UserRepo:         mockRepo.NewMockUserRepository(t),
		WardrobeRepo:     mockRepo.NewMockWardrobeRepository(t),
		OutfitRepo:       mockRepo.NewMockOutfitRepository(t),
		SocialRepo:       mockRepo.NewMockSocialRepository(t),
		SearchRepo:       mockRepo.NewMockSearchRepository(t),
		LookbookRepo:     mockRepo.NewMockLookbookRepository(t),
		CartRepo:         gw.cartRepo,
		NotificationRepo: mockRepo.NewMockNotificationRepository(t),
		Tokens:           mockRepo.NewMockTokenStorage(t),
		Preferences:      mockRepo.NewMockPreferenceStorage(t),
		Logger:           logger,
	})

	qr := qrcode.New(cfg)
	gw.echo = NewEcho(ServerParams{
		Cfg:                 cfg,
		Logger:              logger,
		RequestIDMiddleware: middleware.NewRequestIDMiddleware(logger),
		ErrorMiddleware:     middleware.NewErrorMiddleware(logger),
		RouterParams: router.RouterParams{
			Config:              cfg,
			SessionMiddleware:   middleware.NewSessionMiddleware(gw.store),
			StateHandler:        handler.NewStateHandler(gw.store),
			AuthHandler:         handler.NewAuthHandler(handler.AuthHandlerParams{Store: gw.store, Session: gw.session}),
			UserHandler:         handler.NewUserHandler(gw.store),
			WardrobeHandler:     handler.NewWardrobeHandler(gw.store),
			OutfitHandler:       handler.NewOutfitHandler(handler.OutfitHandlerParams{Store: gw.store, QRCode: qr}),
			SocialHandler:       handler.NewSocialHandler(gw.store),
			SearchHandler:       handler.NewSearchHandler(gw.store),
			CartHandler:         handler.NewCartHandler(gw.store),
			NotificationHandler: handler.NewNotificationHandler(gw.store),
			LookbookHandler:     handler.NewLookbookHandler(handler.LookbookHandlerParams{Store: gw.store, QRCode: qr}),
			UIHandler:           handler.NewUIHandler(gw.store),
		},
	})

	return gw
}

func (gw *gateway) signIn(role entity.Role) {
	gw.store.Auth.Update(func(st *state.AuthState) {
		st.User = &entity.User{ID: "u1", Email: "ada@example.com", Role: role}
		st.IsAuthenticated = true
		st.SessionStatus = entity.AuthStatusAuthenticated
	})
}

func (gw *gateway) do(t *testing.T, method, path, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	gw.echo.ServeHTTP(rec, req)

	var env envelope
	if strings.HasPrefix(rec.Header().Get(echo.HeaderContentType), echo.MIMEApplicationJSON) {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	}

	return rec, env
}

func TestGateway_Health(t *testing.T) {
	gw := newGateway(t, newTestConfig())

	rec, env := gw.do(t, http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, env.Success)
	assert.JSONEq(t, `{"status":"ok"}`, string(env.Data))
}

func TestGateway_RequestID(t *testing.T) {
	gw := newGateway(t, newTestConfig())

	t.Run("caller ID is echoed", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		req.Header.Set(deliverycontext.HeaderXRequestID, "req-42")
		rec := httptest.NewRecorder()
		gw.echo.ServeHTTP(rec, req)

		assert.Equal(t, "req-42", rec.Header().Get(deliverycontext.HeaderXRequestID))
	})

	t.Run("missing ID is generated", func(t *testing.T) {
		rec, _ := gw.do(t, http.MethodGet, "/health", "")

		assert.NotEmpty(t, rec.Header().Get(deliverycontext.HeaderXRequestID))
	})
}

func TestGateway_StateSnapshot(t *testing.T) {
	gw := newGateway(t, newTestConfig())

	t.Run("known slice", func(t *testing.T) {
		rec, env := gw.do(t, http.MethodGet, "/state/ui", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, string(env.Data), `"sidebar_collapsed"`)
	})

	t.Run("unknown slice", func(t *testing.T) {
		rec, env := gw.do(t, http.MethodGet, "/state/bogus", "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.False(t, env.Success)
		require.NotNil(t, env.Error)
		assert.Equal(t, "NOT_FOUND", env.Error.Code)
		assert.Equal(t, "unknown slice bogus", env.Error.Details)
	})
}

func TestGateway_StateRequiresAdminOutsideDebug(t *testing.T) {
	cfg := newTestConfig()
	cfg.Env.Debug = false
	gw := newGateway(t, cfg)

	rec, _ := gw.do(t, http.MethodGet, "/state", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	gw.signIn(entity.RoleUser)
	rec, env := gw.do(t, http.MethodGet, "/state", "")
	assert.Equal(t, http.StatusForbidden, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "FORBIDDEN", env.Error.Code)

	gw.signIn(entity.RoleAdmin)
	rec, _ = gw.do(t, http.MethodGet, "/state", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGateway_LoginFailure(t *testing.T) {
	gw := newGateway(t, newTestConfig())
	gw.authRepo.On("Login", mock.Anything, repository.LoginParams{Email: "ada@example.com", Password: "wrong"}).
		Return(nil, domainerrors.NewAPIError(http.StatusUnauthorized, []byte(`{"detail":"Invalid credentials"}`)))

	rec, env := gw.do(t, http.MethodPost, "/auth/login", `{"email":"ada@example.com","password":"wrong"}`)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Invalid credentials", env.Message)
	require.NotNil(t, env.Error)
	assert.Equal(t, "API_UNAUTHORIZED", env.Error.Code)

	st := gw.store.Auth.State()
	assert.False(t, st.IsAuthenticated)
	assert.Equal(t, "Invalid credentials", st.Error)
}

func TestGateway_LoginValidation(t *testing.T) {
	gw := newGateway(t, newTestConfig())

	tests := []struct {
		name string
		body string
		want string
	}{
		{"missing email", `{"password":"secret"}`, "email is required"},
		{"bad email", `{"email":"nope","password":"secret"}`, "email must be a valid email address"},
		{"missing password", `{"email":"ada@example.com"}`, "password is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, env := gw.do(t, http.MethodPost, "/auth/login", tt.body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, tt.want, env.Message)
		})
	}
}

func TestGateway_RefreshFailureExpiresSession(t *testing.T) {
	gw := newGateway(t, newTestConfig())
	gw.signIn(entity.RoleUser)
	gw.session.refreshErr = domainerrors.NewAPIError(http.StatusUnauthorized, []byte(`{"detail":"Token is invalid or expired"}`))

	rec, env := gw.do(t, http.MethodPost, "/auth/refresh", "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "Token is invalid or expired", env.Error.Details)
	assert.False(t, gw.store.Auth.State().IsAuthenticated)
}

func TestGateway_SessionGuard(t *testing.T) {
	gw := newGateway(t, newTestConfig())

	rec, env := gw.do(t, http.MethodGet, "/cart", "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "NOT_AUTHENTICATED", env.Error.Code)
}

func TestGateway_AddToCart(t *testing.T) {
	gw := newGateway(t, newTestConfig())
	gw.signIn(entity.RoleUser)

	price := decimal.RequireFromString("10.00")
	cart := &entity.Cart{
		ID:       "c1",
		Items:    []entity.CartItem{{ID: "i1", ProductID: "p1", Price: price, Quantity: 2}},
		Subtotal: decimal.RequireFromString("20.00"),
		Total:    decimal.RequireFromString("20.00"),
	}
	gw.cartRepo.On("AddItem", mock.Anything, repository.AddToCartParams{ProductID: "p1", Quantity: 2, Size: "M"}).
		Return(cart, nil)

	rec, env := gw.do(t, http.MethodPost, "/cart/items", `{"product_id":"p1","quantity":2,"size":"M"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	var data struct {
		ItemCount int `json:"item_count"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, 2, data.ItemCount)
	assert.Same(t, cart, gw.store.Cart.State().Cart)
}

func TestGateway_AddToCartValidation(t *testing.T) {
	gw := newGateway(t, newTestConfig())
	gw.signIn(entity.RoleUser)

	rec, env := gw.do(t, http.MethodPost, "/cart/items", `{"product_id":"p1","quantity":0}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "quantity is required", env.Message)
	gw.cartRepo.AssertNotCalled(t, "AddItem", mock.Anything, mock.Anything)
}

func TestGateway_VisualSearchNeedsImage(t *testing.T) {
	gw := newGateway(t, newTestConfig())
	gw.signIn(entity.RoleUser)

	rec, env := gw.do(t, http.MethodPost, "/search/visual", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Image is required", env.Message)
}

func TestGateway_FeatureGating(t *testing.T) {
	cfg := newTestConfig()
	cfg.Features.Social = false
	cfg.Features.Lookbooks = false
	gw := newGateway(t, cfg)
	gw.signIn(entity.RoleUser)

	rec, _ := gw.do(t, http.MethodGet, "/social/feed", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec, _ = gw.do(t, http.MethodGet, "/lookbooks", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGateway_ShareQR(t *testing.T) {
	gw := newGateway(t, newTestConfig())

	rec, _ := gw.do(t, http.MethodGet, "/lookbooks/lb-1/qr", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, []byte("\x89PNG"), rec.Body.Bytes()[:4])
}

func TestGateway_Toasts(t *testing.T) {
	gw := newGateway(t, newTestConfig())

	rec, env := gw.do(t, http.MethodPost, "/ui/toasts", `{"kind":"success","message":"Saved"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var created struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &created))
	require.Len(t, gw.store.UI.State().Toasts, 1)
	assert.Equal(t, state.ToastSuccess, gw.store.UI.State().Toasts[0].Kind)

	rec, _ = gw.do(t, http.MethodDelete, "/ui/toasts/"+created.ID, "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, gw.store.UI.State().Toasts)

	rec, env = gw.do(t, http.MethodPost, "/ui/toasts", `{"kind":"loud","message":"x"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "kind must be one of: info success error", env.Message)
}
