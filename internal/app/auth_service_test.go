package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eventbook/internal/pkg/jwtutil"
)

func TestRegisterAndLogin(t *testing.T) {
	auth := newAuthService(t, newTestDB(t))

	user := registerUser(t, auth, "Alice", "alice@example.com", "password123")
	assert.NotZero(t, user.ID)
	assert.NotEqual(t, "password123", user.PasswordHash)

	result, err := auth.Login(LoginInput{Email: "alice@example.com", Password: "password123"})
	require.NoError(t, err)
	assert.NotEmpty(t, result.Token)
	assert.Equal(t, user.ID, result.User.ID)

	claims, err := jwtutil.ParseToken(testSecret, result.Token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, "alice@example.com", claims.Email)
}

func TestRegisterValidation(t *testing.T) {
	auth := newAuthService(t, newTestDB(t))

	tests := []struct {
		name  string
		input RegisterInput
	}{
		{"empty name", RegisterInput{Email: "a@b.com", Password: "pw"}},
		{"empty email", RegisterInput{Name: "A", Password: "pw"}},
		{"empty password", RegisterInput{Name: "A", Email: "a@b.com"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := auth.Register(tt.input)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	auth := newAuthService(t, newTestDB(t))

	registerUser(t, auth, "Alice", "alice@example.com", "password123")

	_, err := auth.Register(RegisterInput{Name: "Other", Email: "alice@example.com", Password: "different"})
	assert.ErrorIs(t, err, ErrEmailTaken)
}

// Unknown email and wrong password must be indistinguishable.
func TestLoginGenericFailure(t *testing.T) {
	auth := newAuthService(t, newTestDB(t))

	registerUser(t, auth, "Alice", "alice@example.com", "password123")

	_, wrongPw := auth.Login(LoginInput{Email: "alice@example.com", Password: "nope"})
	_, noUser := auth.Login(LoginInput{Email: "nobody@example.com", Password: "password123"})

	assert.ErrorIs(t, wrongPw, ErrInvalidCredential)
	assert.ErrorIs(t, noUser, ErrInvalidCredential)
	assert.Equal(t, wrongPw.Error(), noUser.Error())
}
