package domain

import "time"

// Role is the closed set of account roles. Kept as a dedicated type so role
// checks stay exhaustive instead of comparing loose strings.
type Role string

const (
	RoleClient     Role = "client"
	RoleFreelancer Role = "freelancer"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleClient || r == RoleFreelancer
}

// User models an authenticated actor in the marketplace.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}
