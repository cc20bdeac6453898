package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aleksej-tulko/drf-foodgram/internal/auth"
)

func TestRegisterValidation(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.users.Register(RegisterUserDTO{
		Email: "me@example.com", Username: "me",
		FirstName: "A", LastName: "B", Password: "pass",
	})
	assert.Error(t, err)

	_, err = env.users.Register(RegisterUserDTO{
		Email: "BAD@EXAMPLE.COM", Username: "gooduser",
		FirstName: "A", LastName: "B", Password: "pass",
	})
	assert.Error(t, err)

	_, err = env.users.Register(RegisterUserDTO{
		Email: "nonames@example.com", Username: "nonames", Password: "pass",
	})
	assert.Error(t, err)
}

func TestRegisterUniqueness(t *testing.T) {
	env := newTestEnv(t)
	env.registerUser(t, "chef")

	_, err := env.users.Register(RegisterUserDTO{
		Email: "chef@example.com", Username: "otherchef",
		FirstName: "A", LastName: "B", Password: "pass",
	})
	assert.ErrorIs(t, err, ErrEmailTaken)

	_, err = env.users.Register(RegisterUserDTO{
		Email: "other@example.com", Username: "chef",
		FirstName: "A", LastName: "B", Password: "pass",
	})
	assert.ErrorIs(t, err, ErrUsernameTaken)
}

func TestLoginAndLogout(t *testing.T) {
	env := newTestEnv(t)
	user := env.registerUser(t, "chef")

	_, err := env.auth.Login("chef@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = env.auth.Login("nobody@example.com", "Qwerty123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	token, err := env.auth.Login("chef@example.com", "Qwerty123")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	got, jti, err := env.auth.Authenticate(token)
	assert.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)

	assert.NoError(t, env.auth.Logout(jti))

	// a revoked token no longer authenticates even though the
	// signature is still valid
	_, _, err = env.auth.Authenticate(token)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestAuthenticateGarbageToken(t *testing.T) {
	env := newTestEnv(t)

	_, _, err := env.auth.Authenticate("not.a.token")
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestChangePassword(t *testing.T) {
	env := newTestEnv(t)
	user := env.registerUser(t, "chef")

	err := env.users.ChangePassword(user, ChangePasswordDTO{
		CurrentPassword: "wrong", NewPassword: "NewPass456",
	})
	assert.ErrorIs(t, err, ErrWrongPassword)

	err = env.users.ChangePassword(user, ChangePasswordDTO{
		CurrentPassword: "Qwerty123", NewPassword: "Qwerty123",
	})
	assert.ErrorIs(t, err, ErrSamePassword)

	err = env.users.ChangePassword(user, ChangePasswordDTO{
		CurrentPassword: "Qwerty123", NewPassword: "NewPass456",
	})
	assert.NoError(t, err)

	_, err = env.auth.Login("chef@example.com", "NewPass456")
	assert.NoError(t, err)
}
