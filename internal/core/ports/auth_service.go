package ports

import (
	"context"
	"time"

	"github.com/openlance/marketplace-api/internal/core/domain"
)

// Identity carries the verified claims of an authenticated request.
type Identity struct {
	UserID   string
	Username string
	Role     domain.Role
}

// AuthService defines registration, login, and token revocation.
type AuthService interface {
	Register(ctx context.Context, username, password string, role domain.Role) (*domain.User, error)
	// Login returns a signed bearer token and the authenticated user.
	Login(ctx context.Context, username, password string) (string, *domain.User, error)
	// Logout revokes the token identified by jti until its natural expiry.
	Logout(ctx context.Context, jti string, expiresAt time.Time) error
}
