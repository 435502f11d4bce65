package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/openlance/marketplace-api/internal/api/middleware"
)

// setAuthCookie stores the bearer token in an HTTP-only cookie. Secure is
// enabled outside local development so the cookie only travels over TLS.
func setAuthCookie(c echo.Context, token string, ttl time.Duration, secure bool) {
	c.SetCookie(&http.Cookie{
		Name:     middleware.TokenCookie,
		Value:    token,
		Path:     "/",
		MaxAge:   int(ttl.Seconds()),
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// clearAuthCookie expires the auth cookie immediately.
func clearAuthCookie(c echo.Context, secure bool) {
	c.SetCookie(&http.Cookie{
		Name:     middleware.TokenCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
}
