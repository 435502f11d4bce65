package middleware

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// TokenCookie is the cookie the login handler stores the bearer token in.
const TokenCookie = "token"

// DenyList reports whether a token id has been revoked. A nil DenyList
// disables revocation checks.
type DenyList interface {
	IsRevoked(ctx context.Context, jti string) (bool, error)
}

// Auth validates the bearer token and injects the verified claims into the
// echo context. The token is taken from the auth cookie when present,
// falling back to the Authorization header. Claims are trusted for the
// token's lifetime; the credential store is never consulted here.
func Auth(jwtSecret string, denyList DenyList) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw := tokenFromRequest(c)
			if raw == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
			}

			claims := jwt.MapClaims{}
			tkn, err := jwt.ParseWithClaims(raw, claims, func(token *jwt.Token) (interface{}, error) {
				if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
					return nil, jwt.ErrTokenSignatureInvalid
				}
				return []byte(jwtSecret), nil
			})
			if err != nil || !tkn.Valid {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired token")
			}

			jti, _ := claims["jti"].(string)
			if denyList != nil && jti != "" {
				revoked, err := denyList.IsRevoked(c.Request().Context(), jti)
				if err == nil && revoked {
					return echo.NewHTTPError(http.StatusUnauthorized, "token revoked")
				}
			}

			c.Set("user_id", claims["sub"])
			c.Set("username", claims["username"])
			c.Set("role", claims["role"])
			c.Set("jti", jti)
			if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
				c.Set("token_exp", exp.Time)
			} else {
				c.Set("token_exp", time.Time{})
			}

			return next(c)
		}
	}
}

func tokenFromRequest(c echo.Context) string {
	if cookie, err := c.Cookie(TokenCookie); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return ""
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
		return parts[1]
	}
	return ""
}
