package vote

import (
	"context"

	"github.com/jackc/pgx/v5"

	"fileshare-api/internal/domain/file"
	"fileshare-api/internal/domain/user"
	"fileshare-api/internal/domain/vote"
	"fileshare-api/internal/infrastructure/db/postgres"
)

type Repository struct {
	db postgres.Querier
}

func NewRepository(db postgres.Querier) vote.Repository {
	return &Repository{db: db}
}

// AddVote runs the existence checks and the insert in one transaction. The
// file_vote primary key is the actual duplicate guard: two racing inserts for
// the same pair cannot both commit.
func (r *Repository) AddVote(ctx context.Context, userID user.ID, fileID file.ID) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if err = checkEndpoints(ctx, tx, userID, fileID); err != nil {
		return err
	}

	if _, err = tx.Exec(ctx, InsertVote, uint64(fileID), uint64(userID)); err != nil {
		if _, ok := postgres.UniqueViolation(err); ok {
			return ErrAlreadyVoted
		}
		if postgres.IsForeignKeyViolation(err) {
			return ErrUserOrFileNotFound
		}
		return err
	}

	return tx.Commit(ctx)
}

func (r *Repository) RemoveVote(ctx context.Context, userID user.ID, fileID file.ID) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if err = checkEndpoints(ctx, tx, userID, fileID); err != nil {
		return err
	}

	ct, err := tx.Exec(ctx, DeleteVote, uint64(fileID), uint64(userID))
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return ErrNotVoted
	}

	return tx.Commit(ctx)
}

func checkEndpoints(ctx context.Context, tx pgx.Tx, userID user.ID, fileID file.ID) error {
	var exists bool
	if err := tx.QueryRow(ctx, UserExists, uint64(userID)).Scan(&exists); err != nil {
		return err
	}
	if !exists {
		return ErrUserOrFileNotFound
	}
	if err := tx.QueryRow(ctx, FileExists, uint64(fileID)).Scan(&exists); err != nil {
		return err
	}
	if !exists {
		return ErrUserOrFileNotFound
	}
	return nil
}

func (r *Repository) CountVoters(ctx context.Context, fileID file.ID) (int, error) {
	var n int
	if err := r.db.QueryRow(ctx, CountVoters, uint64(fileID)).Scan(&n); err != nil {
		return 0, err
	}

	return n, nil
}

func (r *Repository) ListVoterIDs(ctx context.Context, fileID file.ID) ([]user.ID, error) {
	rows, err := r.db.Query(ctx, SelectVoterIDs, uint64(fileID))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ids := make([]user.ID, 0)
	for rows.Next() {
		var id uint64
		if err = rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, user.ID(id))
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return ids, nil
}

func (r *Repository) ListVoterNames(ctx context.Context, fileID file.ID) ([]string, error) {
	rows, err := r.db.Query(ctx, SelectVoterNames, uint64(fileID))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	names := make([]string, 0)
	for rows.Next() {
		var name string
		if err = rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return names, nil
}
