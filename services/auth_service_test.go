package services

import (
	"context"
	"testing"
	"time"

	"stayhub-backend/models"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterVerifyLogin(t *testing.T) {
	db := newTestDB(t)
	users := NewUserService(db, zerolog.Nop())
	auth := NewAuthService(db, "test-secret", time.Hour, zerolog.Nop())
	ctx := context.Background()

	user, code, err := users.Register(ctx, RegisterInput{
		FullName: "Mali S.",
		Email:    "Mali@Example.com",
		Password: "s3cretpass",
		Phone:    "0812345678",
	})
	require.NoError(t, err)
	require.Len(t, code, 6)
	assert.Equal(t, "mali@example.com", user.Email)
	assert.False(t, user.Active)

	// login before verification is rejected
	_, _, err = auth.Login(ctx, "mali@example.com", "s3cretpass")
	assert.True(t, IsConflict(err))

	require.NoError(t, users.Verify(ctx, "mali@example.com", code))

	// the code is single-use
	err = users.Verify(ctx, "mali@example.com", code)
	require.NoError(t, err) // already active, no-op

	token, got, err := auth.Login(ctx, "mali@example.com", "s3cretpass")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.Equal(t, user.ID, got.ID)

	claims, err := auth.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, models.RoleCustomer, claims.Role)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	users := NewUserService(db, zerolog.Nop())
	ctx := context.Background()

	in := RegisterInput{FullName: "First", Email: "dup@example.com", Password: "password1"}
	_, _, err := users.Register(ctx, in)
	require.NoError(t, err)

	in.FullName = "Second"
	_, _, err = users.Register(ctx, in)
	assert.True(t, IsConflict(err))
}

func TestRegisterValidation(t *testing.T) {
	db := newTestDB(t)
	users := NewUserService(db, zerolog.Nop())

	_, _, err := users.Register(context.Background(), RegisterInput{
		FullName: "",
		Email:    "not-an-email",
		Password: "short",
	})
	ve := AsValidationError(err)
	require.NotNil(t, ve)
	fields := ve.Fields()
	assert.Contains(t, fields, "email")
	assert.Contains(t, fields, "fullName")
	assert.Contains(t, fields, "password")
}

func TestVerifyWrongCode(t *testing.T) {
	db := newTestDB(t)
	users := NewUserService(db, zerolog.Nop())
	ctx := context.Background()

	_, _, err := users.Register(ctx, RegisterInput{
		FullName: "Pending", Email: "pending@example.com", Password: "password1",
	})
	require.NoError(t, err)

	err = users.Verify(ctx, "pending@example.com", "WRONG1")
	assert.True(t, IsConflict(err))

	err = users.Verify(ctx, "nobody@example.com", "AAAAAA")
	assert.True(t, IsNotFound(err))
}

func TestLoginBadPassword(t *testing.T) {
	db := newTestDB(t)
	auth := NewAuthService(db, "test-secret", time.Hour, zerolog.Nop())
	customer := seedCustomer(t, db, true)

	_, _, err := auth.Login(context.Background(), customer.Email, "wrong-password")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = auth.Login(context.Background(), "ghost@example.com", "whatever")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestParseTokenRejectsTampering(t *testing.T) {
	db := newTestDB(t)
	auth := NewAuthService(db, "test-secret", time.Hour, zerolog.Nop())
	other := NewAuthService(db, "other-secret", time.Hour, zerolog.Nop())
	customer := seedCustomer(t, db, true)

	token, err := auth.IssueToken(customer)
	require.NoError(t, err)

	_, err = other.ParseToken(token)
	assert.Error(t, err)

	_, err = auth.ParseToken(token + "x")
	assert.Error(t, err)
}

func TestExpiredToken(t *testing.T) {
	db := newTestDB(t)
	auth := NewAuthService(db, "test-secret", time.Hour, zerolog.Nop())
	auth.TokenTTL = -time.Minute
	customer := seedCustomer(t, db, true)

	token, err := auth.IssueToken(customer)
	require.NoError(t, err)

	_, err = auth.ParseToken(token)
	assert.Error(t, err)
}
