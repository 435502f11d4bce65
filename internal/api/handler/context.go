package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/openlance/marketplace-api/internal/core/domain"
	"github.com/openlance/marketplace-api/internal/core/ports"
)

// ctxIdentity extracts the claims injected by the Auth middleware and
// performs a fast-fail check before any service call: a populated role and
// user id prove the middleware ran and the token carried a usable identity.
func ctxIdentity(c echo.Context) (ports.Identity, error) {
	role, _ := c.Get("role").(string)
	userID, _ := c.Get("user_id").(string)
	if role == "" || userID == "" {
		return ports.Identity{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}

	username, _ := c.Get("username").(string)
	return ports.Identity{
		UserID:   userID,
		Username: username,
		Role:     domain.Role(role),
	}, nil
}
