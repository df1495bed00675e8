package file

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"fileshare-api/internal/domain/file"
	"fileshare-api/internal/domain/user"
	"fileshare-api/internal/infrastructure/db/postgres"
)

type Repository struct {
	db postgres.Querier
}

func NewRepository(db postgres.Querier) file.Repository {
	return &Repository{db: db}
}

// CreateFiles stores the batch in a single transaction; a failed insert rolls
// back every file of the request.
func (r *Repository) CreateFiles(ctx context.Context, files file.Files) (file.Files, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	for _, f := range files {
		if err = tx.QueryRow(
			ctx,
			InsertFile,
			f.Filename, f.Filetype, f.Category, f.Content, uint64(f.UserID),
		).Scan(&f.ID); err != nil {
			return nil, fmt.Errorf("insert file %q: %w", f.Filename, err)
		}
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, err
	}

	return files, nil
}

func (r *Repository) FetchFile(ctx context.Context, id file.ID) (*file.File, error) {
	f := new(File)
	err := r.db.QueryRow(ctx, SelectFileMeta, uint64(id)).Scan(
		&f.ID,
		&f.Filename,
		&f.Filetype,
		&f.Category,
		&f.UserID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(f), nil
}

func (r *Repository) FetchFileContent(ctx context.Context, id file.ID) (*file.File, error) {
	f := new(File)
	err := r.db.QueryRow(ctx, SelectFileContent, uint64(id)).Scan(
		&f.ID,
		&f.Filename,
		&f.Filetype,
		&f.Category,
		&f.Content,
		&f.UserID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(f), nil
}

func (r *Repository) FetchUserFiles(ctx context.Context, userID user.ID) (file.Files, error) {
	rows, err := r.db.Query(ctx, SelectUserFiles, uint64(userID))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var fs Files
	for rows.Next() {
		f := new(File)
		if err = rows.Scan(
			&f.ID,
			&f.Filename,
			&f.Filetype,
			&f.Category,
			&f.UserID,
		); err != nil {
			return nil, err
		}
		fs = append(fs, f)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return fromDBModels(fs), nil
}

func (r *Repository) CountFiles(ctx context.Context, f file.Filter) (int, error) {
	ft, uid := filterArgs(f)

	var total int
	if err := r.db.QueryRow(ctx, CountFiles, ft, uid).Scan(&total); err != nil {
		return 0, err
	}

	return total, nil
}

func (r *Repository) FetchCatalogPage(ctx context.Context, f file.Filter, limit, offset int) ([]*file.CatalogEntry, error) {
	ft, uid := filterArgs(f)

	rows, err := r.db.Query(ctx, SelectCatalogPage, ft, uid, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []*file.CatalogEntry
	for rows.Next() {
		row := new(CatalogRow)
		if err = rows.Scan(
			&row.ID,
			&row.Filename,
			&row.Filetype,
			&row.Category,
			&row.UserID,
			&row.Username,
		); err != nil {
			return nil, err
		}
		entries = append(entries, fromCatalogRow(row))
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}

// filterArgs turns optional filters into nullable query arguments.
func filterArgs(f file.Filter) (filetype, userID any) {
	if f.Filetype != nil {
		filetype = *f.Filetype
	}
	if f.UserID != nil {
		userID = uint64(*f.UserID)
	}
	return filetype, userID
}
