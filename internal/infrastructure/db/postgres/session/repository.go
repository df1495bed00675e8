package session

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"fileshare-api/internal/domain/session"
	"fileshare-api/internal/infrastructure/db/postgres"
)

type Repository struct {
	db postgres.Querier
}

func NewRepository(db postgres.Querier) session.Repository {
	return &Repository{db: db}
}

func (r *Repository) CreateSession(ctx context.Context, token, username string) (*session.Session, error) {
	s := new(session.Session)
	err := r.db.QueryRow(ctx, InsertSession, token, username).Scan(
		&s.ID,
		&s.Token,
		&s.Username,
	)
	if err != nil {
		return nil, err
	}

	return s, nil
}

func (r *Repository) FetchByToken(ctx context.Context, token string) (*session.Session, error) {
	s := new(session.Session)
	err := r.db.QueryRow(ctx, SelectSessionByToken, token).Scan(
		&s.ID,
		&s.Token,
		&s.Username,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return s, nil
}

func (r *Repository) DeleteByToken(ctx context.Context, token string) error {
	_, err := r.db.Exec(ctx, DeleteSessionByToken, token)
	return err
}
