package file

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "fileshare-api/internal/domain/file"
)

func newMock(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return mock
}

func TestRepository_CreateFiles(t *testing.T) {
	t.Run("batch in one transaction", func(t *testing.T) {
		mock := newMock(t)
		repo := NewRepository(mock)

		batch := domain.Files{
			{Filename: "cat.png", Filetype: "png", Category: "pets", Content: []byte("a"), UserID: 7},
			{Filename: "dog.gif", Filetype: "gif", Category: "pets", Content: []byte("b"), UserID: 7},
		}

		mock.ExpectBegin()
		mock.ExpectQuery(regexp.QuoteMeta(InsertFile)).
			WithArgs("cat.png", "png", "pets", []byte("a"), uint64(7)).
			WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(domain.ID(11)))
		mock.ExpectQuery(regexp.QuoteMeta(InsertFile)).
			WithArgs("dog.gif", "gif", "pets", []byte("b"), uint64(7)).
			WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(domain.ID(12)))
		mock.ExpectCommit()

		stored, err := repo.CreateFiles(context.Background(), batch)
		require.NoError(t, err)
		require.Len(t, stored, 2)
		assert.Equal(t, domain.ID(11), stored[0].ID)
		assert.Equal(t, domain.ID(12), stored[1].ID)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("failed insert rolls back the batch", func(t *testing.T) {
		mock := newMock(t)
		repo := NewRepository(mock)

		batch := domain.Files{
			{Filename: "cat.png", Filetype: "png", Category: "pets", Content: []byte("a"), UserID: 7},
			{Filename: "dog.gif", Filetype: "gif", Category: "pets", Content: []byte("b"), UserID: 7},
		}

		mock.ExpectBegin()
		mock.ExpectQuery(regexp.QuoteMeta(InsertFile)).
			WithArgs("cat.png", "png", "pets", []byte("a"), uint64(7)).
			WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(domain.ID(11)))
		mock.ExpectQuery(regexp.QuoteMeta(InsertFile)).
			WithArgs("dog.gif", "gif", "pets", []byte("b"), uint64(7)).
			WillReturnError(errors.New("disk full"))
		mock.ExpectRollback()

		_, err := repo.CreateFiles(context.Background(), batch)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "dog.gif")
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepository_FetchFile(t *testing.T) {
	mock := newMock(t)
	repo := NewRepository(mock)

	mock.ExpectQuery(regexp.QuoteMeta(SelectFileMeta)).
		WithArgs(uint64(99)).
		WillReturnRows(pgxmock.NewRows([]string{"id", "filename", "filetype", "category", "user_id"}))

	f, err := repo.FetchFile(context.Background(), 99)
	require.NoError(t, err)
	assert.Nil(t, f)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_CountFiles(t *testing.T) {
	t.Run("no filters pass NULL arguments", func(t *testing.T) {
		mock := newMock(t)
		repo := NewRepository(mock)

		mock.ExpectQuery(regexp.QuoteMeta(CountFiles)).
			WithArgs(nil, nil).
			WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(25))

		total, err := repo.CountFiles(context.Background(), domain.Filter{})
		require.NoError(t, err)
		assert.Equal(t, 25, total)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("filetype filter", func(t *testing.T) {
		mock := newMock(t)
		repo := NewRepository(mock)

		ft := "png"
		mock.ExpectQuery(regexp.QuoteMeta(CountFiles)).
			WithArgs("png", nil).
			WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(4))

		total, err := repo.CountFiles(context.Background(), domain.Filter{Filetype: &ft})
		require.NoError(t, err)
		assert.Equal(t, 4, total)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepository_FetchCatalogPage(t *testing.T) {
	mock := newMock(t)
	repo := NewRepository(mock)

	mock.ExpectQuery(regexp.QuoteMeta(SelectCatalogPage)).
		WithArgs(nil, nil, 10, 10).
		WillReturnRows(pgxmock.NewRows([]string{"id", "filename", "filetype", "category", "user_id", "username"}).
			AddRow(uint64(11), "cat.png", "png", "pets", uint64(7), "alice").
			AddRow(uint64(12), "dog.gif", "gif", "pets", uint64(9), "bob"))

	entries, err := repo.FetchCatalogPage(context.Background(), domain.Filter{}, 10, 10)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "alice", entries[0].Username)
	assert.Equal(t, domain.ID(12), entries[1].ID)
	require.NoError(t, mock.ExpectationsWereMet())
}
