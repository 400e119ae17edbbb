package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"feriavirtual/pkg/errors"
)

func TestRegisterRejectsDuplicateEmailCaseInsensitive(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	_, err := e.auth.Register(ctx, RegisterInput{Email: "A@x.com", Password: "secret", Role: "buyer"})
	require.NoError(t, err)

	_, err = e.auth.Register(ctx, RegisterInput{Email: "a@x.com", Password: "other", Role: "seller"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, "CONFLICT"))
}

func TestRegisterRejectsUnknownRole(t *testing.T) {
	e := newEnv(t)

	_, err := e.auth.Register(context.Background(), RegisterInput{Email: "x@x.com", Password: "secret", Role: "moderator"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, "VALIDATION_FAILED"))
}

func TestLoginWrongPasswordIsUnauthorized(t *testing.T) {
	e := newEnv(t)
	e.seedAccount(t, "buyer@x.com", "buyer")

	_, err := e.auth.Login(context.Background(), "buyer@x.com", "wrong")
	require.Error(t, err)
	assert.True(t, errors.Is(err, "UNAUTHORIZED"))
}

func TestLoginOverwritesPriorSession(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	e.seedAccount(t, "first@x.com", "buyer")
	e.seedAccount(t, "second@x.com", "seller")

	_, err := e.auth.Login(ctx, "first@x.com", "secret")
	require.NoError(t, err)
	_, err = e.auth.Login(ctx, "second@x.com", "secret")
	require.NoError(t, err)

	session, err := e.auth.CurrentSession(ctx)
	require.NoError(t, err)
	assert.Equal(t, "second@x.com", session.Email)
	assert.Equal(t, "seller", session.Role)
}

func TestLogoutClearsSession(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	e.seedAccount(t, "buyer@x.com", "buyer")

	_, err := e.auth.Login(ctx, "buyer@x.com", "secret")
	require.NoError(t, err)
	require.NoError(t, e.auth.Logout(ctx))

	_, err = e.auth.CurrentSession(ctx)
	assert.Error(t, err)
}

func TestBlockedAccountCannotLogin(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	e.seedAccount(t, "seller@x.com", "seller")

	_, err := e.admin.BlockAccount(ctx, "seller@x.com", "spam listings")
	require.NoError(t, err)

	_, err = e.auth.Login(ctx, "seller@x.com", "secret")
	require.Error(t, err)
	assert.True(t, errors.Is(err, "UNAUTHORIZED"))
	assert.Contains(t, err.Error(), "spam listings")
}

func TestPasswordResetFlow(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	e.seedAccount(t, "buyer@x.com", "buyer")

	token, err := e.auth.RequestPasswordReset(ctx, "buyer@x.com")
	require.NoError(t, err)
	require.NotEmpty(t, token.Token)

	require.NoError(t, e.auth.ConfirmPasswordReset(ctx, token.Token, "newpass"))

	_, err = e.auth.Login(ctx, "buyer@x.com", "secret")
	assert.Error(t, err)
	_, err = e.auth.Login(ctx, "buyer@x.com", "newpass")
	assert.NoError(t, err)

	// Consume-once: the same token cannot be replayed.
	err = e.auth.ConfirmPasswordReset(ctx, token.Token, "again")
	assert.Error(t, err)
}
