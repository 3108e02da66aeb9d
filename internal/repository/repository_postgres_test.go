package repository

import (
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
	"github.com/yukikurage/defect-tracker-api/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func setupPostgresMock(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		TranslateError:         true,
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	return db, mock
}

func TestUserRepository_Create_UniqueViolation(t *testing.T) {
	db, mock := setupPostgresMock(t)
	repo := NewUserRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "User"`)).
		WillReturnError(&pgconn.PgError{Code: pgUniqueViolation, Message: "duplicate key value violates unique constraint"})

	err := repo.Create(&models.User{Email: "taken@example.com", PasswordHash: "hashed", Role: models.RoleEngineer})
	require.ErrorIs(t, err, ErrDuplicateKey)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDefectRepository_Create_ForeignKeyViolation(t *testing.T) {
	db, mock := setupPostgresMock(t)
	repo := NewDefectRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "Defect"`)).
		WillReturnError(&pgconn.PgError{Code: pgForeignKeyViolation, Message: "violates foreign key constraint"})

	assigneeID := uint64(42)
	err := repo.Create(&models.Defect{
		Title:      "Orphan",
		Priority:   models.PriorityLow,
		Status:     models.DefectStatusNew,
		AssigneeID: &assigneeID,
	})
	require.ErrorIs(t, err, ErrForeignKey)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDefectRepository_Delete_NoRows(t *testing.T) {
	db, mock := setupPostgresMock(t)
	repo := NewDefectRepository(db)

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "Defect"`)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.ErrorIs(t, repo.Delete(7), ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDefectRepository_List_StoreFailure(t *testing.T) {
	db, mock := setupPostgresMock(t)
	repo := NewDefectRepository(db)

	storeErr := errors.New("connection reset by peer")
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT`)).WillReturnError(storeErr)

	_, err := repo.List()
	require.ErrorIs(t, err, storeErr)
	require.NotErrorIs(t, err, ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestTranslateError(t *testing.T) {
	require.NoError(t, translateError(nil))
	require.ErrorIs(t, translateError(gorm.ErrRecordNotFound), ErrNotFound)
	require.ErrorIs(t, translateError(gorm.ErrDuplicatedKey), ErrDuplicateKey)
	require.ErrorIs(t, translateError(gorm.ErrForeignKeyViolated), ErrForeignKey)
	require.ErrorIs(t, translateError(&pgconn.PgError{Code: pgUniqueViolation}), ErrDuplicateKey)

	other := errors.New("boom")
	require.Equal(t, other, translateError(other))
}
