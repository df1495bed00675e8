package picture

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"fileshare-api/internal/domain/picture"
	"fileshare-api/internal/domain/user"
	"fileshare-api/internal/infrastructure/db/postgres"
)

type Repository struct {
	db postgres.Querier
}

func NewRepository(db postgres.Querier) picture.Repository {
	return &Repository{db: db}
}

func (r *Repository) FetchPicture(ctx context.Context, id string) (*picture.Picture, error) {
	p := new(picture.Picture)
	err := r.db.QueryRow(ctx, SelectPictureByID, id).Scan(
		&p.ID,
		&p.Data,
		&p.Filetype,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return p, nil
}

// AttachToUser commits the new row and the owner pointer atomically. The old
// picture row is deliberately not removed.
func (r *Repository) AttachToUser(ctx context.Context, userID user.ID, req picture.Picture) (*picture.Picture, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	if _, err = tx.Exec(ctx, InsertPicture, req.ID, req.Data, req.Filetype); err != nil {
		return nil, fmt.Errorf("insert picture: %w", err)
	}
	if _, err = tx.Exec(ctx, UpdateUserProfilePicture, req.ID, uint64(userID)); err != nil {
		return nil, fmt.Errorf("update profile picture ref: %w", err)
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, err
	}

	return &req, nil
}
