package seed

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	appModels "github.com/campusconnect/placement-api/internal/app/models"
	appRepos "github.com/campusconnect/placement-api/internal/app/repositories"
	"github.com/campusconnect/placement-api/internal/pkg/apperrors"
	"github.com/campusconnect/placement-api/internal/pkg/auth"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// AdminAccount describes the placement cell account created at startup
type AdminAccount struct {
	Email    string
	Password string
	FullName string
}

// CreateDefaultAdmin makes sure an admin account exists. Registration only creates
// students, so this is the way admins come into being.
func CreateDefaultAdmin(ctx context.Context, accounts appRepos.IAccountRepository, admin AdminAccount, lgr zerolog.Logger) error {
	email := strings.ToLower(strings.TrimSpace(admin.Email))
	if email == "" || admin.Password == "" {
		lgr.Warn().Msg("Seed admin email or password not configured, skipping admin creation")
		return nil
	}

	exists, err := accounts.EmailExists(ctx, email)
	if err != nil {
		return fmt.Errorf("error checking admin account: %w", err)
	}
	if exists {
		lgr.Debug().Str("email", email).Msg("Admin account already exists")
		return nil
	}

	hashed, err := auth.HashPassword(admin.Password)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	account := &appModels.Account{
		ID:             uuid.NewString(),
		Email:          email,
		Password:       hashed,
		Role:           appModels.RoleAdmin,
		FullName:       admin.FullName,
		Certifications: []appModels.Certification{},
		Skills:         []string{},
		Experience:     []appModels.Experience{appModels.NoExperience()},
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := accounts.Create(ctx, account); err != nil {
		// another instance seeded first
		if errors.Is(err, apperrors.ErrConflict) {
			return nil
		}
		return fmt.Errorf("error creating admin account: %w", err)
	}

	lgr.Info().Str("email", email).Msg("Default admin account created")
	return nil
}
