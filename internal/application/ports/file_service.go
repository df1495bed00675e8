package ports

import (
	"context"
	"mime/multipart"

	"fileshare-api/internal/domain/file"
	"fileshare-api/internal/domain/picture"
	"fileshare-api/internal/domain/user"
)

type FileService interface {
	// Upload stores the allowed files of the batch in one transaction and
	// reports which ones made it. Files failing the extension allow-list are
	// skipped, not fatal.
	Upload(ctx context.Context, ownerID user.ID, uploads []*multipart.FileHeader, infos []file.UploadInfo, defaultCategory string) ([]file.Uploaded, error)
	// Download returns the file including its blob, for attachment framing.
	Download(ctx context.Context, id file.ID) (*file.File, error)
	UserFiles(ctx context.Context, userID user.ID) ([]*file.CatalogEntry, error)
	SetProfilePicture(ctx context.Context, userID user.ID, data []byte, mimetype string) (*picture.Picture, error)
	Picture(ctx context.Context, id string) (*picture.Picture, error)
}
