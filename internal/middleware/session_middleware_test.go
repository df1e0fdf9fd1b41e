package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ThanhAnUp/ArtisanHaven/internal/middleware"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sessionHandler(t *testing.T, req *http.Request) (string, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var seen string
	h := middleware.Session("ah_session", 86400)(func(c echo.Context) error {
		seen = middleware.SessionID(c)
		return c.NoContent(http.StatusOK)
	})
	require.NoError(t, h(c))
	return seen, rec
}

func TestSessionIssuesCookieOnFirstContact(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/cart", nil)
	seen, rec := sessionHandler(t, req)

	_, err := uuid.Parse(seen)
	require.NoError(t, err, "session id %q is not a uuid", seen)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "ah_session", cookies[0].Name)
	assert.Equal(t, seen, cookies[0].Value)
	assert.True(t, cookies[0].HttpOnly)
	assert.Equal(t, http.SameSiteLaxMode, cookies[0].SameSite)
}

func TestSessionReusesExistingCookie(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/cart", nil)
	req.AddCookie(&http.Cookie{Name: "ah_session", Value: "existing-session"})
	seen, rec := sessionHandler(t, req)

	assert.Equal(t, "existing-session", seen)
	assert.Empty(t, rec.Result().Cookies())
}

func TestSessionIDWithoutMiddleware(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	assert.Equal(t, "", middleware.SessionID(c))
}
