package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// TokenDenyList stores revoked token ids in Redis. Entries expire together
// with the token they revoke, so the list never grows beyond the set of
// still-valid-but-revoked tokens.
// Key format: denylist:<jti>
type TokenDenyList struct {
	client *redis.Client
}

// NewTokenDenyList creates a TokenDenyList wrapping the given Redis client.
func NewTokenDenyList(client *redis.Client) *TokenDenyList {
	return &TokenDenyList{client: client}
}

// Revoke marks the token id as revoked for ttl.
func (d *TokenDenyList) Revoke(ctx context.Context, jti string, ttl time.Duration) error {
	return d.client.Set(ctx, d.key(jti), "1", ttl).Err()
}

// IsRevoked reports whether the token id has been revoked.
func (d *TokenDenyList) IsRevoked(ctx context.Context, jti string) (bool, error) {
	n, err := d.client.Exists(ctx, d.key(jti)).Result()
	if err != nil {
		return false, fmt.Errorf("denylist check: %w", err)
	}
	return n > 0, nil
}

func (d *TokenDenyList) key(jti string) string {
	return "denylist:" + jti
}
