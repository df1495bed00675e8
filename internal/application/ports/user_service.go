package ports

import (
	"context"

	"fileshare-api/internal/domain/user"
)

type UserService interface {
	Register(ctx context.Context, username, email, password string) (*user.User, error)
	// Authenticate matches username or email and verifies the password.
	// A missing user and a wrong password are indistinguishable to callers.
	Authenticate(ctx context.Context, usernameOrEmail, password string) (*user.User, error)
	UpdateProfile(ctx context.Context, id user.ID, username, email string) (*user.User, error)
	FindUserByID(ctx context.Context, id user.ID) (*user.User, error)
}
