package postgres

import (
	"context"
	"testing"
	"time"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOtpRepository_Create(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewOtpRepository(db)

	mock.ExpectExec(`INSERT INTO "otps"`).WillReturnResult(sqlmock.NewResult(0, 1))

	otp := &entity.Otp{Email: "a@x.com", Code: "123456", ExpiresAt: time.Now().Add(10 * time.Minute)}
	require.NoError(t, repo.Create(context.Background(), otp))
	assert.NotEqual(t, uuid.Nil, otp.ID)
}

func TestOtpRepository_FindLatestUnused(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewOtpRepository(db)

	id := uuid.New()
	expires := time.Now().Add(5 * time.Minute)
	now := time.Now()

	mock.ExpectQuery(`SELECT \* FROM "otps" WHERE email = \$1 AND code = \$2 AND used = \$3 ORDER BY created_at DESC`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "code", "expires_at", "used", "created_at", "updated_at"}).
			AddRow(id.String(), "a@x.com", "123456", expires, false, now, now))

	otp, err := repo.FindLatestUnused(context.Background(), "a@x.com", "123456")
	require.NoError(t, err)
	assert.Equal(t, id, otp.ID)
	assert.Equal(t, "123456", otp.Code)
	assert.False(t, otp.Used)
}

func TestOtpRepository_FindLatestUnused_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewOtpRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "otps"`).WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.FindLatestUnused(context.Background(), "a@x.com", "000000")
	assert.ErrorIs(t, err, repository.ErrOtpNotFound)
}

func TestOtpRepository_MarkUsed_OnlyOnce(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewOtpRepository(db)
	id := uuid.New()

	mock.ExpectExec(`UPDATE "otps" SET "used"=\$1`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`UPDATE "otps" SET "used"=\$1`).WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.MarkUsed(context.Background(), id))
	assert.ErrorIs(t, repo.MarkUsed(context.Background(), id), repository.ErrOtpNotFound)
}

func TestOtpRepository_Consume(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewOtpRepository(db)
	id := uuid.New()

	mock.ExpectExec(`DELETE FROM "otps" WHERE id = \$1 AND email = \$2 AND used = \$3`).
		WithArgs(id, "a@x.com", true).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`DELETE FROM "otps"`).WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.Consume(context.Background(), id, "a@x.com"))
	assert.ErrorIs(t, repo.Consume(context.Background(), id, "a@x.com"), repository.ErrOtpNotFound)
}

func TestOtpRepository_DeleteByEmail(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewOtpRepository(db)

	mock.ExpectExec(`DELETE FROM "otps" WHERE email = \$1 AND used = \$2`).
		WithArgs("a@x.com", false).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(`DELETE FROM "otps" WHERE email = \$1`).
		WithArgs("a@x.com").
		WillReturnResult(sqlmock.NewResult(0, 3))

	require.NoError(t, repo.DeleteUnusedByEmail(context.Background(), "a@x.com"))
	require.NoError(t, repo.DeleteByEmail(context.Background(), "a@x.com"))
}
