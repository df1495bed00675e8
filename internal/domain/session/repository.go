package session

import (
	"context"
)

type Repository interface {
	CreateSession(ctx context.Context, token, username string) (*Session, error)
	FetchByToken(ctx context.Context, token string) (*Session, error)
	// DeleteByToken removes the row if present; deleting an unknown token is
	// not an error.
	DeleteByToken(ctx context.Context, token string) error
}
