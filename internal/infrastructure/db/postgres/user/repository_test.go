package user

import (
	"context"
	"regexp"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "fileshare-api/internal/domain/user"
)

var userColumns = []string{"id", "username", "email", "salt", "hashed_password", "profile_picture_id"}

func newMock(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return mock
}

func TestRepository_CreateUser(t *testing.T) {
	tests := []struct {
		name       string
		returnErr  error
		wantErr    error
		wantStored bool
	}{
		{
			name:       "success",
			wantStored: true,
		},
		{
			name:      "username constraint -> ErrUsernameTaken",
			returnErr: &pgconn.PgError{Code: "23505", ConstraintName: "users_username_key"},
			wantErr:   ErrUsernameTaken,
		},
		{
			name:      "email constraint -> ErrEmailTaken",
			returnErr: &pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"},
			wantErr:   ErrEmailTaken,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			mock := newMock(t)
			repo := NewRepository(mock)

			exp := mock.ExpectQuery(regexp.QuoteMeta(InsertUser)).
				WithArgs("alice", "a@x.com", "somesalt", "somehash")
			if tt.returnErr != nil {
				exp.WillReturnError(tt.returnErr)
			} else {
				exp.WillReturnRows(pgxmock.NewRows(userColumns).
					AddRow(uint64(1), "alice", "a@x.com", "somesalt", "somehash", nil))
			}

			u, err := repo.CreateUser(context.Background(), domain.User{
				Username:       "alice",
				Email:          "a@x.com",
				Salt:           "somesalt",
				HashedPassword: "somehash",
			})

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, u)
			} else {
				require.NoError(t, err)
				require.NotNil(t, u)
				assert.Equal(t, domain.ID(1), u.ID)
				assert.Equal(t, "alice", u.Username)
				assert.Nil(t, u.ProfilePictureID)
			}

			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_FetchUserByLogin(t *testing.T) {
	t.Run("no rows -> nil, nil", func(t *testing.T) {
		mock := newMock(t)
		repo := NewRepository(mock)

		mock.ExpectQuery(regexp.QuoteMeta(SelectUserByLogin)).
			WithArgs("ghost").
			WillReturnRows(pgxmock.NewRows(userColumns))

		u, err := repo.FetchUserByLogin(context.Background(), "ghost")
		require.NoError(t, err)
		assert.Nil(t, u)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("matches by username or email with one argument", func(t *testing.T) {
		mock := newMock(t)
		repo := NewRepository(mock)

		pic := "pic-id"
		mock.ExpectQuery(regexp.QuoteMeta(SelectUserByLogin)).
			WithArgs("a@x.com").
			WillReturnRows(pgxmock.NewRows(userColumns).
				AddRow(uint64(2), "alice", "a@x.com", "s", "h", &pic))

		u, err := repo.FetchUserByLogin(context.Background(), "a@x.com")
		require.NoError(t, err)
		require.NotNil(t, u)
		assert.Equal(t, domain.ID(2), u.ID)
		require.NotNil(t, u.ProfilePictureID)
		assert.Equal(t, "pic-id", *u.ProfilePictureID)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepository_UpdateUser(t *testing.T) {
	t.Run("missing user -> nil, nil", func(t *testing.T) {
		mock := newMock(t)
		repo := NewRepository(mock)

		mock.ExpectQuery(regexp.QuoteMeta(UpdateUserByID)).
			WithArgs("bob", "b@x.com", uint64(9)).
			WillReturnRows(pgxmock.NewRows(userColumns))

		u, err := repo.UpdateUser(context.Background(), domain.User{ID: 9, Username: "bob", Email: "b@x.com"})
		require.NoError(t, err)
		assert.Nil(t, u)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("conflict on new email", func(t *testing.T) {
		mock := newMock(t)
		repo := NewRepository(mock)

		mock.ExpectQuery(regexp.QuoteMeta(UpdateUserByID)).
			WithArgs("bob", "taken@x.com", uint64(9)).
			WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"})

		_, err := repo.UpdateUser(context.Background(), domain.User{ID: 9, Username: "bob", Email: "taken@x.com"})
		require.ErrorIs(t, err, ErrEmailTaken)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}
