package services

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/yukikurage/defect-tracker-api/internal/models"
	"github.com/yukikurage/defect-tracker-api/internal/repository"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type serviceTestEnv struct {
	db            *gorm.DB
	tokens        *TokenService
	authService   *AuthService
	userService   *UserService
	defectService *DefectService
}

func setupServiceTestEnv(t *testing.T) serviceTestEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?_foreign_keys=on"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Defect{}))

	tokens := newTestTokenService(t)
	userRepo := repository.NewUserRepository(db)

	return serviceTestEnv{
		db:            db,
		tokens:        tokens,
		authService:   NewAuthService(userRepo, tokens),
		userService:   NewUserService(userRepo, tokens),
		defectService: NewDefectService(repository.NewDefectRepository(db)),
	}
}

func (env serviceTestEnv) register(t *testing.T, email string, role models.Role) *models.User {
	t.Helper()

	user, err := env.authService.Register(RegisterInput{Email: email, Password: "password123", Role: role})
	require.NoError(t, err)
	return user
}

func stringPtr(s string) *string { return &s }

func uint64Ptr(v uint64) *uint64 { return &v }
