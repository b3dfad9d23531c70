package postgres

import (
	"context"
	"testing"
	"time"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var userColumns = []string{"id", "email", "name", "password_hash", "cart", "cart_version", "order_ids", "created_at", "updated_at"}

func TestUserRepository_FindByID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	userID := uuid.New()
	productID := uuid.New()
	now := time.Now()

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows(userColumns).AddRow(
			userID.String(), "a@x.com", "A", "hash",
			`[{"productId":"`+productID.String()+`","size":9,"quantity":3}]`,
			int64(4), `[]`, now, now,
		))

	user, err := repo.FindByID(context.Background(), userID)
	require.NoError(t, err)

	assert.Equal(t, userID, user.ID)
	assert.Equal(t, "a@x.com", user.Email)
	assert.Equal(t, int64(4), user.CartVersion)
	assert.Equal(t, entity.Cart{{ProductID: productID, Size: 9, Quantity: 3}}, user.Cart)
	assert.Empty(t, user.OrderIDs)
}

func TestUserRepository_FindByEmail_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE email = \$1`).
		WillReturnRows(sqlmock.NewRows(userColumns))

	user, err := repo.FindByEmail(context.Background(), "missing@x.com")
	assert.Nil(t, user)
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}

func TestUserRepository_Create(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectExec(`INSERT INTO "users"`).WillReturnResult(sqlmock.NewResult(0, 1))

	user := &entity.User{Email: "a@x.com", Name: "A", PasswordHash: "hash"}
	require.NoError(t, repo.Create(context.Background(), user))

	assert.NotEqual(t, uuid.Nil, user.ID)
	assert.False(t, user.CreatedAt.IsZero())
}

func TestUserRepository_Create_DuplicateEmail(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectExec(`INSERT INTO "users"`).WillReturnError(&pgconn.PgError{Code: "23505"})

	err := repo.Create(context.Background(), &entity.User{Email: "a@x.com", Name: "A", PasswordHash: "hash"})
	assert.ErrorIs(t, err, repository.ErrUserAlreadyExists)
}

func TestUserRepository_UpdateCart(t *testing.T) {
	userID := uuid.New()
	cart := entity.Cart{{ProductID: uuid.New(), Size: 9, Quantity: 1}}

	t.Run("version matches", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewUserRepository(db)

		mock.ExpectExec(`UPDATE "users" SET .*"cart_version"=.* WHERE \(?id = \$\d+ AND cart_version = \$\d+\)?`).
			WillReturnResult(sqlmock.NewResult(0, 1))

		version, err := repo.UpdateCart(context.Background(), userID, 2, cart)
		require.NoError(t, err)
		assert.Equal(t, int64(3), version)
	})

	t.Run("version moved on", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewUserRepository(db)

		mock.ExpectExec(`UPDATE "users" SET`).WillReturnResult(sqlmock.NewResult(0, 0))

		_, err := repo.UpdateCart(context.Background(), userID, 2, cart)
		assert.ErrorIs(t, err, repository.ErrCartVersionConflict)
	})
}

func TestUserRepository_AppendOrder(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	userID, orderID := uuid.New(), uuid.New()

	mock.ExpectExec(`UPDATE "users" SET "order_ids"=order_ids \|\| \$1::jsonb`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, repo.AppendOrder(context.Background(), userID, orderID))

	mock.ExpectExec(`UPDATE "users" SET "order_ids"`).WillReturnResult(sqlmock.NewResult(0, 0))
	assert.ErrorIs(t, repo.AppendOrder(context.Background(), userID, orderID), repository.ErrUserNotFound)
}
