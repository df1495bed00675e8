package picture

import (
	"context"

	"fileshare-api/internal/domain/user"
)

type Repository interface {
	FetchPicture(ctx context.Context, id string) (*Picture, error)
	// AttachToUser inserts the picture and re-points the owner's
	// profile_picture_id in one transaction. The previous picture row is left
	// in place.
	AttachToUser(ctx context.Context, userID user.ID, req Picture) (*Picture, error)
}
