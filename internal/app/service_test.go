package app

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"eventbook/internal/model"
	"eventbook/internal/platform/sqlite"
	"eventbook/internal/repository"
)

const testSecret = "test-secret"

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := sqlite.New(context.Background(), filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	require.NoError(t, sqlite.Migrate(db))
	return db
}

func newAuthService(t *testing.T, db *gorm.DB) *AuthService {
	t.Helper()
	return NewAuthService(repository.NewUserRepository(db), testSecret, time.Hour)
}

func registerUser(t *testing.T, auth *AuthService, name, email, password string) *model.User {
	t.Helper()
	user, err := auth.Register(RegisterInput{Name: name, Email: email, Password: password})
	require.NoError(t, err)
	return user
}
