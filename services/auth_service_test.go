package services

import (
	"testing"

	"github.com/sitebeam/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterAndLogin(t *testing.T) {
	setupTestDB(t)
	t.Setenv("JWT_SECRET", "test-secret")

	name := "Dana Ricci"
	user, err := Register(dto.RegisterRequest{
		Email:    "pm@riccibuilders.com",
		Password: "correct horse battery",
		Name:     &name,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, user.ID)
	assert.NotEqual(t, "correct horse battery", user.Password, "password must be stored hashed")

	resp, err := Login(dto.LoginRequest{
		Email:    "pm@riccibuilders.com",
		Password: "correct horse battery",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Empty(t, resp.User.Password)

	claims, err := ValidateToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, "pm@riccibuilders.com", claims.Email)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	setupTestDB(t)
	t.Setenv("JWT_SECRET", "test-secret")

	name := "Dana"
	_, err := Register(dto.RegisterRequest{
		Email:    "pm@riccibuilders.com",
		Password: "pw-one-two-three",
		Name:     &name,
	})
	require.NoError(t, err)

	impostor := "Impostor"
	_, err = Register(dto.RegisterRequest{
		Email:    "pm@riccibuilders.com",
		Password: "another-password",
		Name:     &impostor,
	})
	assert.Error(t, err)
}

func TestLoginWrongPassword(t *testing.T) {
	setupTestDB(t)
	t.Setenv("JWT_SECRET", "test-secret")

	name := "Dana"
	_, err := Register(dto.RegisterRequest{
		Email:    "pm@riccibuilders.com",
		Password: "the-real-password",
		Name:     &name,
	})
	require.NoError(t, err)

	_, err = Login(dto.LoginRequest{Email: "pm@riccibuilders.com", Password: "wrong"})
	assert.Error(t, err)

	_, err = Login(dto.LoginRequest{Email: "nobody@example.com", Password: "whatever"})
	assert.Error(t, err)
}

func TestValidateTokenRejectsTampering(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, _, err := GenerateToken("user-1", "a@example.com", "user")
	require.NoError(t, err)

	_, err = ValidateToken(token + "x")
	assert.Error(t, err)

	t.Setenv("JWT_SECRET", "different-secret")
	_, err = ValidateToken(token)
	assert.Error(t, err)
}
