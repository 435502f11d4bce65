package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/openlance/marketplace-api/internal/core/domain"
	"github.com/openlance/marketplace-api/internal/core/ports"
)

// AuthHandler handles registration, login, and logout.
type AuthHandler struct {
	authService  ports.AuthService
	cookieTTL    time.Duration
	cookieSecure bool
}

func NewAuthHandler(authService ports.AuthService, cookieTTL time.Duration, cookieSecure bool) *AuthHandler {
	if cookieTTL <= 0 {
		cookieTTL = time.Hour
	}
	return &AuthHandler{authService: authService, cookieTTL: cookieTTL, cookieSecure: cookieSecure}
}

// Register creates a new user account.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Account details"
// @Success      201   {object}  authResponse
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.authService.Register(c.Request().Context(), req.Username, req.Password, domain.Role(req.Role))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, authResponse{User: toUserResponse(user)})
}

// Login authenticates a user, sets the auth cookie, and returns the token.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  authResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	token, user, err := h.authService.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		return err
	}

	setAuthCookie(c, token, h.cookieTTL, h.cookieSecure)
	return c.JSON(http.StatusOK, authResponse{Token: token, User: toUserResponse(user)})
}

// Logout revokes the current token and clears the auth cookie.
//
// @Summary      Logout
// @Tags         auth
// @Security     BearerAuth
// @Success      204
// @Failure      401  {object}  errorResponse
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	if _, err := ctxIdentity(c); err != nil {
		return err
	}

	jti, _ := c.Get("jti").(string)
	exp, _ := c.Get("token_exp").(time.Time)
	if err := h.authService.Logout(c.Request().Context(), jti, exp); err != nil {
		return err
	}

	clearAuthCookie(c, h.cookieSecure)
	return c.NoContent(http.StatusNoContent)
}
