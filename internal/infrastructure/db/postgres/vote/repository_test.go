package vote

import (
	"context"
	"regexp"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMock(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return mock
}

func expectExistenceChecks(mock pgxmock.PgxPoolIface, userExists, fileExists bool) {
	mock.ExpectQuery(regexp.QuoteMeta(UserExists)).
		WithArgs(uint64(7)).
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(userExists))
	if userExists {
		mock.ExpectQuery(regexp.QuoteMeta(FileExists)).
			WithArgs(uint64(3)).
			WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(fileExists))
	}
}

func TestRepository_AddVote(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		mock := newMock(t)
		repo := NewRepository(mock)

		mock.ExpectBegin()
		expectExistenceChecks(mock, true, true)
		mock.ExpectExec(regexp.QuoteMeta(InsertVote)).
			WithArgs(uint64(3), uint64(7)).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))
		mock.ExpectCommit()

		require.NoError(t, repo.AddVote(context.Background(), 7, 3))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("duplicate pair -> ErrAlreadyVoted", func(t *testing.T) {
		mock := newMock(t)
		repo := NewRepository(mock)

		mock.ExpectBegin()
		expectExistenceChecks(mock, true, true)
		mock.ExpectExec(regexp.QuoteMeta(InsertVote)).
			WithArgs(uint64(3), uint64(7)).
			WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "file_vote_pkey"})
		mock.ExpectRollback()

		err := repo.AddVote(context.Background(), 7, 3)
		require.ErrorIs(t, err, ErrAlreadyVoted)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing user -> ErrUserOrFileNotFound", func(t *testing.T) {
		mock := newMock(t)
		repo := NewRepository(mock)

		mock.ExpectBegin()
		expectExistenceChecks(mock, false, false)
		mock.ExpectRollback()

		err := repo.AddVote(context.Background(), 7, 3)
		require.ErrorIs(t, err, ErrUserOrFileNotFound)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing file -> ErrUserOrFileNotFound", func(t *testing.T) {
		mock := newMock(t)
		repo := NewRepository(mock)

		mock.ExpectBegin()
		expectExistenceChecks(mock, true, false)
		mock.ExpectRollback()

		err := repo.AddVote(context.Background(), 7, 3)
		require.ErrorIs(t, err, ErrUserOrFileNotFound)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepository_RemoveVote(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		mock := newMock(t)
		repo := NewRepository(mock)

		mock.ExpectBegin()
		expectExistenceChecks(mock, true, true)
		mock.ExpectExec(regexp.QuoteMeta(DeleteVote)).
			WithArgs(uint64(3), uint64(7)).
			WillReturnResult(pgxmock.NewResult("DELETE", 1))
		mock.ExpectCommit()

		require.NoError(t, repo.RemoveVote(context.Background(), 7, 3))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("no vote row -> ErrNotVoted", func(t *testing.T) {
		mock := newMock(t)
		repo := NewRepository(mock)

		mock.ExpectBegin()
		expectExistenceChecks(mock, true, true)
		mock.ExpectExec(regexp.QuoteMeta(DeleteVote)).
			WithArgs(uint64(3), uint64(7)).
			WillReturnResult(pgxmock.NewResult("DELETE", 0))
		mock.ExpectRollback()

		err := repo.RemoveVote(context.Background(), 7, 3)
		require.ErrorIs(t, err, ErrNotVoted)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepository_Voters(t *testing.T) {
	mock := newMock(t)
	repo := NewRepository(mock)

	mock.ExpectQuery(regexp.QuoteMeta(CountVoters)).
		WithArgs(uint64(3)).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(2))
	mock.ExpectQuery(regexp.QuoteMeta(SelectVoterIDs)).
		WithArgs(uint64(3)).
		WillReturnRows(pgxmock.NewRows([]string{"user_id"}).AddRow(uint64(7)).AddRow(uint64(9)))
	mock.ExpectQuery(regexp.QuoteMeta(SelectVoterNames)).
		WithArgs(uint64(3)).
		WillReturnRows(pgxmock.NewRows([]string{"username"}).AddRow("alice").AddRow("bob"))

	n, err := repo.CountVoters(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	ids, err := repo.ListVoterIDs(context.Background(), 3)
	require.NoError(t, err)
	assert.Len(t, ids, 2)

	names, err := repo.ListVoterNames(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, []string{"alice", "bob"}, names)

	require.NoError(t, mock.ExpectationsWereMet())
}
