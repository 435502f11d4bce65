package ports

import (
	"context"

	"github.com/openlance/marketplace-api/internal/core/domain"
)

// UserRepository defines persistence operations for user accounts.
// Username uniqueness is enforced by the store; Create returns
// domain.ErrUserExists on a duplicate.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	// FindByIDs returns the users for the given ids keyed by id. Missing ids
	// are simply absent from the result, not an error.
	FindByIDs(ctx context.Context, ids []string) (map[string]*domain.User, error)
}
