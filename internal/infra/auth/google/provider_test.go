package google

import (
	"context"
	"io"
	"log/slog"
	"net/url"
	"testing"

	"curator/internal/domain/entity"
	domainerrors "curator/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/idtoken"
)

type mockValidator struct {
	mock.Mock
}

func (m *mockValidator) Validate(ctx context.Context, idToken string, audience string) (*idtoken.Payload, error) {
	args := m.Called(ctx, idToken, audience)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*idtoken.Payload), args.Error(1)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestProvider_AuthCodeURL(t *testing.T) {
	p := newProvider("test_client_id", "http://localhost:8088/auth/google/callback", &mockValidator{}, discardLogger())

	raw := p.AuthCodeURL("state-123")

	parsed, err := url.Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, "accounts.google.com", parsed.Host)
	q := parsed.Query()
	assert.Equal(t, "test_client_id", q.Get("client_id"))
	assert.Equal(t, "http://localhost:8088/auth/google/callback", q.Get("redirect_uri"))
	assert.Equal(t, "code", q.Get("response_type"))
	assert.Equal(t, "openid email profile", q.Get("scope"))
	assert.Equal(t, "state-123", q.Get("state"))
	assert.Equal(t, entity.ProviderTypeGoogle, p.Provider())
}

func TestProvider_VerifyCredential(t *testing.T) {
	ctx := context.Background()

	t.Run("valid token", func(t *testing.T) {
		validator := &mockValidator{}
		validator.On("Validate", ctx, "id-token", "test_client_id").Return(&idtoken.Payload{
			Subject: "google-sub",
			Claims: map[string]any{
				"email":          "jane@example.com",
				"name":           "Jane",
				"picture":        "https://example.com/jane.png",
				"email_verified": true,
			},
		}, nil)
		p := newProvider("test_client_id", "", validator, discardLogger())

		user, err := p.VerifyCredential(ctx, "id-token")

		require.NoError(t, err)
		assert.Equal(t, "google-sub", user.ID)
		assert.Equal(t, "jane@example.com", user.Email)
		assert.True(t, user.EmailVerified)
		assert.Equal(t, entity.ProviderTypeGoogle, user.Provider)
		validator.AssertExpectations(t)
	})

	t.Run("rejected token", func(t *testing.T) {
		validator := &mockValidator{}
		validator.On("Validate", ctx, "bad", "test_client_id").Return(nil, errors.New("audience mismatch"))
		p := newProvider("test_client_id", "", validator, discardLogger())

		user, err := p.VerifyCredential(ctx, "bad")

		assert.Nil(t, user)
		assert.ErrorIs(t, err, domainerrors.ErrOAuthTokenInvalid)
	})

	t.Run("empty token never reaches validator", func(t *testing.T) {
		validator := &mockValidator{}
		p := newProvider("test_client_id", "", validator, discardLogger())

		_, err := p.VerifyCredential(ctx, "")

		assert.ErrorIs(t, err, domainerrors.ErrOAuthTokenInvalid)
		validator.AssertNotCalled(t, "Validate", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestNewProvider_RequiresClientID(t *testing.T) {
	_, err := NewProvider(context.Background(), "", "", nil, discardLogger())

	assert.Error(t, err)
}
