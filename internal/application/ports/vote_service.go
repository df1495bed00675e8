package ports

import (
	"context"

	"fileshare-api/internal/domain/file"
	"fileshare-api/internal/domain/user"
)

type VoteService interface {
	Add(ctx context.Context, userID user.ID, fileID file.ID) error
	Remove(ctx context.Context, userID user.ID, fileID file.ID) error
}
