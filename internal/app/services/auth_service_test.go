package services

import (
	"context"
	"testing"
	"time"

	"github.com/campusconnect/placement-api/internal/app/models"
	"github.com/campusconnect/placement-api/internal/app/models/dto"
	"github.com/campusconnect/placement-api/internal/pkg/apperrors"
	"github.com/campusconnect/placement-api/internal/pkg/auth"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthService() (*AuthService, *auth.JWTService) {
	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: time.Hour,
		TokenIssuer:    "placement-api-test",
	})
	return NewAuthService(newRepos().Accounts, jwtService, zerolog.Nop()), jwtService
}

func TestAuthService_Register(t *testing.T) {
	svc, jwtService := newAuthService()

	resp, err := svc.Register(context.Background(), &dto.RegisterRequest{
		FullName: " Asha Verma ",
		RollNo:   "21CS042",
		Email:    "  Asha@College.EDU ",
		Password: "secret123",
	})
	require.NoError(t, err)

	assert.True(t, resp.Success)
	assert.Equal(t, "User registered successfully", resp.Message)
	assert.Equal(t, "Bearer", resp.TokenType)
	assert.Equal(t, 3600, resp.ExpiresIn)
	require.NotNil(t, resp.User)
	assert.Equal(t, "asha@college.edu", resp.User.Email)
	assert.Equal(t, "Asha Verma", resp.User.FullName)
	assert.Equal(t, models.RoleStudent, resp.User.Role)

	claims, err := jwtService.ValidateAndExtractClaims(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, claims.UserID)
	assert.Equal(t, models.RoleStudent, claims.Role)
}

func TestAuthService_RegisterDuplicateEmail(t *testing.T) {
	svc, _ := newAuthService()
	req := &dto.RegisterRequest{FullName: "A", RollNo: "1", Email: "dup@college.edu", Password: "secret123"}

	_, err := svc.Register(context.Background(), req)
	require.NoError(t, err)

	req.Email = "DUP@college.edu"
	_, err = svc.Register(context.Background(), req)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrConflict)
	assert.Equal(t, "User already exists", err.Error())
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()
	svc, _ := newAuthService()
	_, err := svc.Register(ctx, &dto.RegisterRequest{FullName: "A", RollNo: "1", Email: "login@college.edu", Password: "secret123"})
	require.NoError(t, err)

	t.Run("success", func(t *testing.T) {
		resp, err := svc.Login(ctx, &dto.LoginRequest{Email: "Login@College.edu", Password: "secret123"})
		require.NoError(t, err)
		assert.Equal(t, "Login successful", resp.Message)
		assert.NotEmpty(t, resp.Token)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login(ctx, &dto.LoginRequest{Email: "login@college.edu", Password: "nope"})
		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := svc.Login(ctx, &dto.LoginRequest{Email: "ghost@college.edu", Password: "secret123"})
		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	})
}

func TestAuthService_Me(t *testing.T) {
	ctx := context.Background()
	svc, _ := newAuthService()
	resp, err := svc.Register(ctx, &dto.RegisterRequest{FullName: "A", RollNo: "1", Email: "me@college.edu", Password: "secret123"})
	require.NoError(t, err)

	user, err := svc.Me(ctx, resp.User.ID)
	require.NoError(t, err)
	assert.Equal(t, "me@college.edu", user.Email)

	_, err = svc.Me(ctx, "missing")
	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
}
