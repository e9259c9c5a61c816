package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/CollabR18X/CollabR18X/internal/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

type stubResolver struct {
	userID uuid.UUID
	err    error
}

func (s stubResolver) Resolve(_ context.Context, _ string) (uuid.UUID, error) {
	return s.userID, s.err
}

func doRequest(t *testing.T, mw echo.MiddlewareFunc, cookie string) (*httptest.ResponseRecorder, echo.Context) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if cookie != "" {
		req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: cookie})
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := mw(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	return rec, c
}

func TestWithAuthResolvesCookie(t *testing.T) {
	userID := uuid.New()
	m := AuthMiddleware{Sessions: stubResolver{userID: userID}}

	rec, c := doRequest(t, m.WithAuth, "some-token")

	assert.Equal(t, http.StatusOK, rec.Code)
	got, ok := UserIDFromContext(c)
	assert.True(t, ok)
	assert.Equal(t, userID, got)
}

func TestWithAuthAnonymousPassthrough(t *testing.T) {
	m := AuthMiddleware{Sessions: stubResolver{userID: uuid.New()}}

	rec, c := doRequest(t, m.WithAuth, "")

	assert.Equal(t, http.StatusOK, rec.Code)
	_, ok := UserIDFromContext(c)
	assert.False(t, ok)
}

func TestWithAuthInvalidSessionIsAnonymous(t *testing.T) {
	m := AuthMiddleware{Sessions: stubResolver{err: service.ErrSessionNotFound}}

	rec, c := doRequest(t, m.WithAuth, "stale-token")

	assert.Equal(t, http.StatusOK, rec.Code)
	_, ok := UserIDFromContext(c)
	assert.False(t, ok)
}

// A resolver failure is a server fault; it must not masquerade as an
// anonymous request and turn into a 401 downstream.
func TestWithAuthResolverFailureIsServerError(t *testing.T) {
	m := AuthMiddleware{Sessions: stubResolver{err: errors.New("connection refused")}}

	rec, _ := doRequest(t, m.WithAuth, "some-token")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	rec, _ = doRequest(t, m.RequireAuth, "some-token")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestRequireAuthRejectsAnonymous(t *testing.T) {
	m := AuthMiddleware{Sessions: stubResolver{err: service.ErrSessionNotFound}}

	rec, _ := doRequest(t, m.RequireAuth, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec, _ = doRequest(t, m.RequireAuth, "stale-token")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireAuthAcceptsValidSession(t *testing.T) {
	m := AuthMiddleware{Sessions: stubResolver{userID: uuid.New()}}

	rec, _ := doRequest(t, m.RequireAuth, "some-token")

	assert.Equal(t, http.StatusOK, rec.Code)
}
