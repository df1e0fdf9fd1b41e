package middleware

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const sessionContextKey = "sessionID"

// Session issues an opaque UUID session id in a cookie on first
// contact and puts it on the echo context for every request. Handlers
// pass the id explicitly into the services; nothing downstream reads
// request state.
func Session(cookieName string, maxAge int) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			var sid string
			if cookie, err := c.Cookie(cookieName); err == nil && cookie.Value != "" {
				sid = cookie.Value
			} else {
				sid = uuid.NewString()
				c.SetCookie(&http.Cookie{
					Name:     cookieName,
					Value:    sid,
					Path:     "/",
					MaxAge:   maxAge,
					HttpOnly: true,
					SameSite: http.SameSiteLaxMode,
				})
			}
			c.Set(sessionContextKey, sid)
			return next(c)
		}
	}
}

// SessionID returns the session id set by Session.
func SessionID(c echo.Context) string {
	if sid, ok := c.Get(sessionContextKey).(string); ok {
		return sid
	}
	return ""
}
