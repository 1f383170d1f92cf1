package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eventbook/internal/repository"
)

func strPtr(s string) *string { return &s }

func TestUserGetAndList(t *testing.T) {
	db := newTestDB(t)
	auth := newAuthService(t, db)
	users := NewUserService(repository.NewUserRepository(db))

	alice := registerUser(t, auth, "Alice", "alice@example.com", "password123")
	registerUser(t, auth, "Bob", "bob@example.com", "password123")

	profile, err := users.Get(alice.ID)
	require.NoError(t, err)
	assert.Equal(t, "Alice", profile.Name)
	assert.Equal(t, "alice@example.com", profile.Email)

	all, err := users.List()
	require.NoError(t, err)
	assert.Len(t, all, 2)

	_, err = users.Get(9999)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUserUpdatePartialMerge(t *testing.T) {
	db := newTestDB(t)
	auth := newAuthService(t, db)
	users := NewUserService(repository.NewUserRepository(db))

	alice := registerUser(t, auth, "Alice", "alice@example.com", "password123")

	// only the name changes; email stays
	require.NoError(t, users.Update(alice.ID, UpdateUserInput{Name: strPtr("Alicia")}))

	profile, err := users.Get(alice.ID)
	require.NoError(t, err)
	assert.Equal(t, "Alicia", profile.Name)
	assert.Equal(t, "alice@example.com", profile.Email)

	// login still works with the untouched password
	_, err = auth.Login(LoginInput{Email: "alice@example.com", Password: "password123"})
	assert.NoError(t, err)
}

func TestUserUpdateNoChanges(t *testing.T) {
	db := newTestDB(t)
	auth := newAuthService(t, db)
	users := NewUserService(repository.NewUserRepository(db))

	alice := registerUser(t, auth, "Alice", "alice@example.com", "password123")

	err := users.Update(alice.ID, UpdateUserInput{
		Name:  strPtr("Alice"),
		Email: strPtr("alice@example.com"),
	})
	assert.ErrorIs(t, err, ErrNoChanges)

	err = users.Update(alice.ID, UpdateUserInput{})
	assert.ErrorIs(t, err, ErrNoChanges)
}

func TestUserUpdateEmailConflict(t *testing.T) {
	db := newTestDB(t)
	auth := newAuthService(t, db)
	users := NewUserService(repository.NewUserRepository(db))

	alice := registerUser(t, auth, "Alice", "alice@example.com", "password123")
	registerUser(t, auth, "Bob", "bob@example.com", "password123")

	err := users.Update(alice.ID, UpdateUserInput{Email: strPtr("bob@example.com")})
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestUserUpdatePasswordRehash(t *testing.T) {
	db := newTestDB(t)
	auth := newAuthService(t, db)
	users := NewUserService(repository.NewUserRepository(db))

	alice := registerUser(t, auth, "Alice", "alice@example.com", "password123")

	require.NoError(t, users.Update(alice.ID, UpdateUserInput{Password: strPtr("newpassword")}))

	_, err := auth.Login(LoginInput{Email: "alice@example.com", Password: "newpassword"})
	assert.NoError(t, err)
	_, err = auth.Login(LoginInput{Email: "alice@example.com", Password: "password123"})
	assert.ErrorIs(t, err, ErrInvalidCredential)
}

func TestChangePassword(t *testing.T) {
	db := newTestDB(t)
	auth := newAuthService(t, db)
	users := NewUserService(repository.NewUserRepository(db))

	alice := registerUser(t, auth, "Alice", "alice@example.com", "password123")

	assert.ErrorIs(t, users.ChangePassword(alice.ID, "wrong", "newpassword"), ErrWrongPassword)
	assert.ErrorIs(t, users.ChangePassword(alice.ID, "", "newpassword"), ErrInvalidInput)
	assert.ErrorIs(t, users.ChangePassword(alice.ID, "password123", ""), ErrInvalidInput)

	require.NoError(t, users.ChangePassword(alice.ID, "password123", "newpassword"))

	_, err := auth.Login(LoginInput{Email: "alice@example.com", Password: "newpassword"})
	assert.NoError(t, err)
	_, err = auth.Login(LoginInput{Email: "alice@example.com", Password: "password123"})
	assert.ErrorIs(t, err, ErrInvalidCredential)
}

func TestUserDelete(t *testing.T) {
	db := newTestDB(t)
	auth := newAuthService(t, db)
	users := NewUserService(repository.NewUserRepository(db))

	alice := registerUser(t, auth, "Alice", "alice@example.com", "password123")

	require.NoError(t, users.Delete(alice.ID))
	_, err := users.Get(alice.ID)
	assert.ErrorIs(t, err, ErrUserNotFound)

	assert.ErrorIs(t, users.Delete(alice.ID), ErrUserNotFound)
	assert.ErrorIs(t, users.Delete(9999), ErrUserNotFound)
}
