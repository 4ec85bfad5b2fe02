package impl

import (
	"context"
	"net/http"
	"testing"
	"time"

	"curator/internal/domain/entity"
	domainerrors "curator/internal/domain/errors"
	"curator/internal/usecase"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestSessionService(f storeFixture, inspector *stubInspector) usecase.SessionUsecase {
	return NewSessionService(SessionServiceParams{
		Store:     f.store,
		AuthRepo:  f.authRepo,
		Tokens:    f.tokens,
		Inspector: inspector,
		Config:    newTestConfig(),
		Logger:    newDiscardLogger(),
	})
}

func TestSessionService_Recover_NoTokens(t *testing.T) {
	f := newStoreFixture(t)
	srv := newTestSessionService(f, newStubInspector())

	f.tokens.On("LoadTokens", context.Background()).Return(entity.TokenPair{}, nil)

	require.NoError(t, srv.Recover(context.Background()))

	st := f.store.Auth.State()
	assert.False(t, st.IsAuthenticated)
	assert.Equal(t, entity.AuthStatusAnonymous, st.SessionStatus)
}

func TestSessionService_Recover_ValidToken(t *testing.T) {
	f := newStoreFixture(t)
	srv := newTestSessionService(f, newStubInspector("access"))
	ctx := context.Background()

	user := &entity.User{ID: "u1"}
	f.tokens.On("LoadTokens", ctx).Return(entity.TokenPair{AccessToken: "access", RefreshToken: "refresh"}, nil)
	f.authRepo.On("GetCurrentUser", ctx).Return(user, nil)

	require.NoError(t, srv.Recover(ctx))

	st := f.store.Auth.State()
	assert.True(t, st.IsAuthenticated)
	assert.Same(t, user, st.User)
	assert.Equal(t, entity.AuthStatusAuthenticated, st.SessionStatus)
}

func TestSessionService_Recover_RefreshesExpiredToken(t *testing.T) {
	f := newStoreFixture(t)
	srv := newTestSessionService(f, newStubInspector())
	ctx := context.Background()

	f.tokens.On("LoadTokens", ctx).Return(entity.TokenPair{AccessToken: "expired", RefreshToken: "refresh"}, nil)
	f.authRepo.On("RefreshToken", ctx, "refresh").Return(&entity.TokenPair{AccessToken: "fresh"}, nil)
	f.tokens.On("SaveTokens", ctx, entity.TokenPair{AccessToken: "fresh", RefreshToken: "refresh"}).Return(nil)
	f.authRepo.On("GetCurrentUser", ctx).Return(&entity.User{ID: "u1"}, nil)

	require.NoError(t, srv.Recover(ctx))

	assert.True(t, f.store.Auth.State().IsAuthenticated)
}

func TestSessionService_Recover_RefreshRejected(t *testing.T) {
	f := newStoreFixture(t)
	srv := newTestSessionService(f, newStubInspector())
	ctx := context.Background()

	f.tokens.On("LoadTokens", ctx).Return(entity.TokenPair{AccessToken: "expired", RefreshToken: "revoked"}, nil)
	f.authRepo.On("RefreshToken", ctx, "revoked").
		Return(nil, domainerrors.NewAPIError(http.StatusUnauthorized, []byte(`{"detail":"Token is invalid or expired"}`)))
	f.tokens.On("ClearTokens", ctx).Return(nil)

	require.NoError(t, srv.Recover(ctx))

	st := f.store.Auth.State()
	assert.False(t, st.IsAuthenticated)
	assert.Empty(t, st.Error)
	f.authRepo.AssertNotCalled(t, "GetCurrentUser")
}

func TestSessionService_Recover_UserRejectedClearsTokens(t *testing.T) {
	f := newStoreFixture(t)
	srv := newTestSessionService(f, newStubInspector("access"))
	ctx := context.Background()

	f.tokens.On("LoadTokens", ctx).Return(entity.TokenPair{AccessToken: "access", RefreshToken: "refresh"}, nil)
	f.authRepo.On("GetCurrentUser", ctx).Return(nil, domainerrors.NewAPIError(http.StatusUnauthorized, nil))
	f.tokens.On("ClearTokens", ctx).Return(nil)

	require.NoError(t, srv.Recover(ctx))

	st := f.store.Auth.State()
	assert.False(t, st.IsAuthenticated)
	assert.Empty(t, st.Error, "recovery failures are silent")
}

func TestSessionService_CheckSession(t *testing.T) {
	t.Run("missing tokens expire an authenticated session", func(t *testing.T) {
		f := newStoreFixture(t)
		srv := newTestSessionService(f, newStubInspector())
		ctx := context.Background()
		signIn(f.store, &entity.User{ID: "u1"})

		f.tokens.On("LoadTokens", ctx).Return(entity.TokenPair{}, nil)

		require.NoError(t, srv.CheckSession(ctx))

		st := f.store.Auth.State()
		assert.False(t, st.IsAuthenticated)
		assert.Nil(t, st.User)
		assert.Equal(t, entity.AuthStatusExpired, st.SessionStatus)
	})

	t.Run("valid token keeps the session", func(t *testing.T) {
		f := newStoreFixture(t)
		srv := newTestSessionService(f, newStubInspector("access"))
		ctx := context.Background()
		signIn(f.store, &entity.User{ID: "u1"})

		f.tokens.On("LoadTokens", ctx).Return(entity.TokenPair{AccessToken: "access"}, nil)

		require.NoError(t, srv.CheckSession(ctx))
		assert.True(t, f.store.Auth.State().IsAuthenticated)
	})

	t.Run("expired token without refresh token expires the session", func(t *testing.T) {
		f := newStoreFixture(t)
		srv := newTestSessionService(f, newStubInspector())
		ctx := context.Background()
		signIn(f.store, &entity.User{ID: "u1"})

		f.tokens.On("LoadTokens", ctx).Return(entity.TokenPair{AccessToken: "expired"}, nil)
		f.tokens.On("ClearTokens", ctx).Return(nil)

		require.NoError(t, srv.CheckSession(ctx))
		assert.Equal(t, entity.AuthStatusExpired, f.store.Auth.State().SessionStatus)
	})
}

func TestSessionService_Refresh(t *testing.T) {
	t.Run("missing refresh token", func(t *testing.T) {
		f := newStoreFixture(t)
		srv := newTestSessionService(f, newStubInspector())
		ctx := context.Background()

		f.tokens.On("LoadTokens", ctx).Return(entity.TokenPair{AccessToken: "a"}, nil)
		f.tokens.On("ClearTokens", ctx).Return(nil)

		err := srv.Refresh(ctx)

		require.ErrorIs(t, err, domainerrors.ErrRefreshTokenMissing)
	})

	t.Run("rotated refresh token is stored", func(t *testing.T) {
		f := newStoreFixture(t)
		srv := newTestSessionService(f, newStubInspector())
		ctx := context.Background()

		f.tokens.On("LoadTokens", ctx).Return(entity.TokenPair{AccessToken: "a", RefreshToken: "r1"}, nil)
		f.authRepo.On("RefreshToken", ctx, "r1").Return(&entity.TokenPair{AccessToken: "b", RefreshToken: "r2"}, nil)
		f.tokens.On("SaveTokens", ctx, entity.TokenPair{AccessToken: "b", RefreshToken: "r2"}).Return(nil)

		require.NoError(t, srv.Refresh(ctx))
	})

	t.Run("cancelled refresh keeps tokens", func(t *testing.T) {
		f := newStoreFixture(t)
		srv := newTestSessionService(f, newStubInspector())
		ctx, cancel := context.WithCancel(context.Background())

		f.tokens.On("LoadTokens", ctx).Return(entity.TokenPair{RefreshToken: "r1"}, nil)
		f.authRepo.On("RefreshToken", ctx, "r1").
			Run(func(mock.Arguments) { cancel() }).
			Return(nil, context.Canceled)

		err := srv.Refresh(ctx)

		require.ErrorIs(t, err, context.Canceled)
		f.tokens.AssertNotCalled(t, "ClearTokens")
	})
}

func TestSessionService_Logout(t *testing.T) {
	f := newStoreFixture(t)
	srv := newTestSessionService(f, newStubInspector())
	ctx := context.Background()

	signIn(f.store, &entity.User{ID: "u1"})
	f.cartRepo.On("GetCart", ctx).Return(&entity.Cart{
		Items: []entity.CartItem{{ID: "i1", Quantity: 1}},
		Total: decimal.NewFromInt(15),
	}, nil)
	_, err := f.store.Cart.FetchCart(ctx)
	require.NoError(t, err)

	f.tokens.On("LoadTokens", ctx).Return(entity.TokenPair{AccessToken: "a", RefreshToken: "r"}, nil)
	f.authRepo.On("Logout", ctx, "r").Return(nil)
	f.tokens.On("ClearTokens", ctx).Return(nil)

	require.NoError(t, srv.Logout(ctx))

	assert.False(t, f.store.Auth.State().IsAuthenticated)
	assert.Empty(t, f.store.Cart.State().Items)
	assert.True(t, f.store.Cart.State().Total.IsZero())
}

func TestSessionService_StartRunsPeriodicChecks(t *testing.T) {
	f := newStoreFixture(t)
	inspector := newStubInspector("access")
	srv := newTestSessionService(f, inspector)

	f.tokens.On("LoadTokens", mock.Anything).Return(entity.TokenPair{AccessToken: "access"}, nil)
	f.authRepo.On("GetCurrentUser", mock.Anything).Return(&entity.User{ID: "u1"}, nil).Once()

	require.NoError(t, srv.Start(context.Background()))
	t.Cleanup(srv.Stop)

	assert.Eventually(t, func() bool {
		return inspector.calls.Load() >= 3
	}, time.Second, 5*time.Millisecond)

	srv.Stop()
	assert.True(t, f.store.Auth.State().IsAuthenticated)
}
