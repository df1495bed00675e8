package user

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"

	"fileshare-api/internal/domain/user"
	"fileshare-api/internal/infrastructure/db/postgres"
)

type Repository struct {
	db postgres.Querier
}

func NewRepository(db postgres.Querier) user.Repository {
	return &Repository{db: db}
}

func (r *Repository) fetchOne(ctx context.Context, query string, arg any) (*user.User, error) {
	u := new(User)
	err := r.db.QueryRow(ctx, query, arg).Scan(
		&u.ID,
		&u.Username,
		&u.Email,
		&u.Salt,
		&u.HashedPassword,
		&u.ProfilePictureID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(u), nil
}

func (r *Repository) FetchUserByID(ctx context.Context, id user.ID) (*user.User, error) {
	return r.fetchOne(ctx, SelectUserByID, uint64(id))
}

func (r *Repository) FetchUserByUsername(ctx context.Context, username string) (*user.User, error) {
	return r.fetchOne(ctx, SelectUserByUsername, username)
}

func (r *Repository) FetchUserByLogin(ctx context.Context, usernameOrEmail string) (*user.User, error) {
	return r.fetchOne(ctx, SelectUserByLogin, usernameOrEmail)
}

func (r *Repository) CreateUser(ctx context.Context, req user.User) (*user.User, error) {
	u := new(User)

	err := r.db.QueryRow(
		ctx,
		InsertUser,
		req.Username, req.Email, req.Salt, req.HashedPassword,
	).Scan(
		&u.ID,
		&u.Username,
		&u.Email,
		&u.Salt,
		&u.HashedPassword,
		&u.ProfilePictureID,
	)
	if err != nil {
		return nil, mapUniqueViolation(err)
	}

	return fromDBModel(u), nil
}

func (r *Repository) UpdateUser(ctx context.Context, req user.User) (*user.User, error) {
	u := new(User)

	err := r.db.QueryRow(ctx, UpdateUserByID,
		req.Username, req.Email, uint64(req.ID),
	).Scan(
		&u.ID,
		&u.Username,
		&u.Email,
		&u.Salt,
		&u.HashedPassword,
		&u.ProfilePictureID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, mapUniqueViolation(err)
	}

	return fromDBModel(u), nil
}

// mapUniqueViolation inspects the violated constraint name so callers learn
// which field conflicted instead of guessing.
func mapUniqueViolation(err error) error {
	constraint, ok := postgres.UniqueViolation(err)
	if !ok {
		return err
	}
	switch {
	case strings.Contains(constraint, "username"):
		return ErrUsernameTaken
	case strings.Contains(constraint, "email"):
		return ErrEmailTaken
	}
	return err
}
