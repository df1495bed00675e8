package ports

import (
	"context"

	"fileshare-api/internal/domain/file"
	"fileshare-api/internal/domain/user"
)

type CatalogService interface {
	List(ctx context.Context, q file.CatalogQuery) (*file.Page, error)
	Detail(ctx context.Context, id file.ID, caller *user.ID) (*file.Detail, error)
}
