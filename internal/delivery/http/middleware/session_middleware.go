package middleware

import (
	"curator/internal/domain/entity"
	domainerrors "curator/internal/domain/errors"
	"curator/internal/state"

	"github.com/labstack/echo/v4"
)

// SessionMiddleware guards routes that only make sense with a signed-in user.
// The auth slice is the source of truth; tokens are managed by the session
// manager.
type SessionMiddleware struct {
	store *state.Store
}

func NewSessionMiddleware(store *state.Store) *SessionMiddleware {
	return &SessionMiddleware{store: store}
}

// RequireSession rejects the request unless the auth slice is authenticated.
func (m *SessionMiddleware) RequireSession(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !m.store.Auth.State().IsAuthenticated {
			return domainerrors.ErrNotAuthenticated
		}

		return next(c)
	}
}

// RequireRole must run after RequireSession.
func (m *SessionMiddleware) RequireRole(roles ...entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user := m.store.Auth.State().User
			if user == nil || !entity.Roles(roles).Contains(user.Role) {
				return domainerrors.ErrForbidden.WithDetails("requires role " + string(roles[0]))
			}

			return next(c)
		}
	}
}
