package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/CollabR18X/CollabR18X/internal/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const SessionCookieName = "session_id"

// SessionResolver maps an opaque session token to a user identity.
type SessionResolver interface {
	Resolve(ctx context.Context, token string) (uuid.UUID, error)
}

// AuthMiddleware resolves the session cookie into a caller identity.
// Resolution is separate from policy: WithAuth lets anonymous requests
// through and each route decides whether that is acceptable.
type AuthMiddleware struct {
	Sessions SessionResolver
}

// WithAuth attaches the resolved identity to the context when the session
// cookie is present and valid. An unknown or expired session proceeds
// anonymously; a resolver failure is a server error, not an anonymous
// request.
func (m AuthMiddleware) WithAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if token := readSessionCookie(c); token != "" && m.Sessions != nil {
			userID, err := m.Sessions.Resolve(c.Request().Context(), token)
			switch {
			case err == nil:
				SetAuthContext(c, userID)
			case errors.Is(err, service.ErrSessionNotFound):
				// stale cookie
			default:
				return echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
			}
		}
		return next(c)
	}
}

// RequireAuth rejects requests that did not resolve to an identity.
func (m AuthMiddleware) RequireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return m.WithAuth(func(c echo.Context) error {
		if _, ok := UserIDFromContext(c); !ok {
			return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
		}
		return next(c)
	})
}

func readSessionCookie(c echo.Context) string {
	cookie, err := c.Cookie(SessionCookieName)
	if err != nil {
		return ""
	}
	return cookie.Value
}
