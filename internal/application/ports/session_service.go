package ports

import (
	"context"

	"fileshare-api/internal/domain/user"
)

type SessionService interface {
	// Create issues an opaque token and persists the session row.
	Create(ctx context.Context, u *user.User) (string, error)
	// Resolve exchanges a token for the owning user; nil when the token is
	// unknown or its user no longer exists.
	Resolve(ctx context.Context, token string) (*user.User, error)
	Destroy(ctx context.Context, token string) error
}
