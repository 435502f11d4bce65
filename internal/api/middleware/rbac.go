package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/openlance/marketplace-api/internal/core/domain"
)

// RequireRole enforces role-based access control. The auth middleware stays
// role-agnostic; routes declare the roles they admit.
func RequireRole(allowedRoles ...domain.Role) echo.MiddlewareFunc {
	allowed := make(map[domain.Role]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get("role").(string)
			if _, ok := allowed[domain.Role(role)]; !ok {
				return echo.NewHTTPError(http.StatusForbidden, "insufficient role")
			}
			return next(c)
		}
	}
}
