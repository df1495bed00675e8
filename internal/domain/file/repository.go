package file

import (
	"context"

	"fileshare-api/internal/domain/user"
)

type (
	// Filter holds optional equality filters for catalog queries. Nil means
	// the filter is not applied.
	Filter struct {
		Filetype *string
		UserID   *user.ID
	}
)

type Repository interface {
	// CreateFiles inserts the whole batch in one transaction and returns the
	// stored rows with ids assigned. Any insert failure rolls back the batch.
	CreateFiles(ctx context.Context, files Files) (Files, error)
	// FetchFile returns file metadata without the blob.
	FetchFile(ctx context.Context, id ID) (*File, error)
	// FetchFileContent returns the file including its blob.
	FetchFileContent(ctx context.Context, id ID) (*File, error)
	FetchUserFiles(ctx context.Context, userID user.ID) (Files, error)
	// CountFiles counts the full filtered set, not a page.
	CountFiles(ctx context.Context, f Filter) (int, error)
	// FetchCatalogPage returns one page of file metadata joined with the
	// owner's username, in insertion order.
	FetchCatalogPage(ctx context.Context, f Filter, limit, offset int) ([]*CatalogEntry, error)
}
