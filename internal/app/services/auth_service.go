package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/campusconnect/placement-api/internal/app/models"
	"github.com/campusconnect/placement-api/internal/app/models/dto"
	"github.com/campusconnect/placement-api/internal/app/repositories"
	"github.com/campusconnect/placement-api/internal/pkg/apperrors"
	"github.com/campusconnect/placement-api/internal/pkg/auth"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// AuthService handles registration, login and token identity lookups
type AuthService struct {
	accounts   repositories.IAccountRepository
	jwtService *auth.JWTService
	logger     zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(
	accounts repositories.IAccountRepository,
	jwtService *auth.JWTService,
	logger zerolog.Logger,
) *AuthService {
	return &AuthService{
		accounts:   accounts,
		jwtService: jwtService,
		logger:     logger,
	}
}

// NormalizeEmail lower-cases and trims an address so lookups are case-insensitive
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register creates a student account and signs a token for it
func (s *AuthService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	email := NormalizeEmail(req.Email)

	// Check if email already exists
	exists, err := s.accounts.EmailExists(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("error checking if email exists: %w", err)
	}
	if exists {
		return nil, apperrors.ErrEmailAlreadyExists
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	account := &models.Account{
		ID:             uuid.NewString(),
		Email:          email,
		Password:       hashedPassword,
		Role:           models.RoleStudent,
		FullName:       strings.TrimSpace(req.FullName),
		RollNo:         strings.TrimSpace(req.RollNo),
		Certifications: []models.Certification{},
		Skills:         []string{},
		Experience:     []models.Experience{models.NoExperience()},
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	// a concurrent registration may still win the unique index
	if err := s.accounts.Create(ctx, account); err != nil {
		if errors.Is(err, apperrors.ErrConflict) {
			return nil, err
		}
		return nil, fmt.Errorf("account creation error: %w", err)
	}

	s.logger.Info().Str("userID", account.ID).Str("email", account.Email).Msg("Student registered")
	return s.tokenResponse(account, "User registered successfully")
}

// Login authenticates an account by email and password
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	account, err := s.accounts.GetByEmail(ctx, NormalizeEmail(req.Email))
	if err != nil {
		if errors.Is(err, apperrors.ErrResourceNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("error finding account: %w", err)
	}

	if !auth.CheckPassword(account.Password, req.Password) {
		s.logger.Debug().Str("userID", account.ID).Msg("Password mismatch")
		return nil, apperrors.ErrInvalidCredentials
	}

	return s.tokenResponse(account, "Login successful")
}

// Me returns the account summary behind a validated token
func (s *AuthService) Me(ctx context.Context, accountID string) (*dto.AuthUser, error) {
	account, err := s.accounts.GetByID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	return dto.NewAuthUser(account), nil
}

func (s *AuthService) tokenResponse(account *models.Account, message string) (*dto.AuthResponse, error) {
	token, expiresIn, err := s.jwtService.GenerateToken(account)
	if err != nil {
		return nil, fmt.Errorf("token generation error: %w", err)
	}

	return &dto.AuthResponse{
		Success:   true,
		Message:   message,
		Token:     token,
		TokenType: "Bearer",
		ExpiresIn: expiresIn,
		User:      dto.NewAuthUser(account),
	}, nil
}
