package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/campusconnect/placement-api/internal/app/models"
	"github.com/campusconnect/placement-api/internal/db"
	"github.com/campusconnect/placement-api/internal/pkg/apperrors"
	"github.com/campusconnect/placement-api/internal/pkg/dberrors"
	"github.com/campusconnect/placement-api/internal/pkg/helpers"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const accountEmailConstraint = "accounts_email_key"

const accountColumns = `id, email, password, role, roll_no, full_name, mobile_no, whatsapp_no, mail_id,
	father_name, father_number, school, existing_backlogs, area_of_interest, ready_to_relocate,
	education, certifications, skills, experience, profile_photo, resume, created_at, updated_at, version`

// AccountRepository stores accounts in PostgreSQL. Profile collections live in JSONB columns.
type AccountRepository struct {
	db *db.PostgresDB
}

// NewAccountRepository creates a new AccountRepository
func NewAccountRepository(database *db.PostgresDB) *AccountRepository {
	return &AccountRepository{db: database}
}

func scanAccount(row pgx.Row) (*models.Account, error) {
	a := &models.Account{}
	var role string
	err := row.Scan(
		&a.ID, &a.Email, &a.Password, &role, &a.RollNo, &a.FullName, &a.MobileNo, &a.WhatsappNo, &a.MailID,
		&a.FatherName, &a.FatherNumber, &a.School, &a.ExistingBacklogs, &a.AreaOfInterest, &a.ReadyToRelocate,
		&a.Education, &a.Certifications, &a.Skills, &a.Experience, &a.ProfilePhoto, &a.Resume,
		&a.CreatedAt, &a.UpdatedAt, &a.Version,
	)
	if err != nil {
		return nil, err
	}
	a.Role = models.RoleType(role)
	return a, nil
}

// Create inserts a new account
func (r *AccountRepository) Create(ctx context.Context, a *models.Account) error {
	_, err := r.db.Pool.Exec(ctx, `
		INSERT INTO accounts (id, email, password, role, roll_no, full_name, certifications, skills, experience,
			created_at, updated_at, version)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		a.ID, a.Email, a.Password, string(a.Role), a.RollNo, a.FullName,
		nonNil(a.Certifications), nonNil(a.Skills), nonNil(a.Experience),
		a.CreatedAt, a.UpdatedAt, a.Version)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, accountEmailConstraint) {
			return apperrors.ErrEmailAlreadyExists
		}
		return fmt.Errorf("error creating account: %w", err)
	}
	return nil
}

// GetByID retrieves an account by id
func (r *AccountRepository) GetByID(ctx context.Context, id string) (*models.Account, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, apperrors.ErrAccountNotFound
	}
	a, err := scanAccount(r.db.Pool.QueryRow(ctx, `SELECT `+accountColumns+` FROM accounts WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrAccountNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error finding account: %w", err)
	}
	return a, nil
}

// GetByEmail retrieves an account by its normalized email
func (r *AccountRepository) GetByEmail(ctx context.Context, email string) (*models.Account, error) {
	a, err := scanAccount(r.db.Pool.QueryRow(ctx, `SELECT `+accountColumns+` FROM accounts WHERE email = $1`, email))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrAccountNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error finding account by email: %w", err)
	}
	return a, nil
}

// EmailExists checks if an email already exists
func (r *AccountRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.db.Pool.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM accounts WHERE email = $1)`, email).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking email: %w", err)
	}
	return exists, nil
}

// GetByIDs loads several accounts keyed by id; unknown ids are skipped
func (r *AccountRepository) GetByIDs(ctx context.Context, ids []string) (map[string]*models.Account, error) {
	result := make(map[string]*models.Account, len(ids))
	valid := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, err := uuid.Parse(id); err == nil {
			valid = append(valid, id)
		}
	}
	if len(valid) == 0 {
		return result, nil
	}

	rows, err := r.db.Pool.Query(ctx, `SELECT `+accountColumns+` FROM accounts WHERE id = ANY($1::uuid[])`, valid)
	if err != nil {
		return nil, fmt.Errorf("error listing accounts: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		a, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning account: %w", err)
		}
		result[a.ID] = a
	}
	return result, rows.Err()
}

// ListByRole returns one page of accounts with the given role, newest first
func (r *AccountRepository) ListByRole(ctx context.Context, role models.RoleType, page helpers.Page) ([]*models.Account, int64, error) {
	var total int64
	if err := r.db.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM accounts WHERE role = $1`, string(role)).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("error counting accounts: %w", err)
	}

	rows, err := r.db.Pool.Query(ctx, `
		SELECT `+accountColumns+` FROM accounts
		WHERE role = $1
		ORDER BY created_at DESC, id
		LIMIT $2 OFFSET $3`,
		string(role), page.Size, page.Offset())
	if err != nil {
		return nil, 0, fmt.Errorf("error listing accounts: %w", err)
	}
	defer rows.Close()

	accounts := make([]*models.Account, 0, page.Size)
	for rows.Next() {
		a, err := scanAccount(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("error scanning account: %w", err)
		}
		accounts = append(accounts, a)
	}
	return accounts, total, rows.Err()
}

// UpdateProfile locks the row, applies mutate and writes the profile columns in one transaction.
// Identity columns are never touched by this statement.
func (r *AccountRepository) UpdateProfile(ctx context.Context, id string, mutate AccountMutator) (*models.Account, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, apperrors.ErrAccountNotFound
	}

	var updated *models.Account
	err := r.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		a, err := scanAccount(tx.QueryRow(ctx, `SELECT `+accountColumns+` FROM accounts WHERE id = $1 FOR UPDATE`, id))
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.ErrAccountNotFound
		}
		if err != nil {
			return fmt.Errorf("error locking account: %w", err)
		}

		if err := mutate(a); err != nil {
			return err
		}
		a.Version++
		a.UpdatedAt = time.Now().UTC()

		_, err = tx.Exec(ctx, `
			UPDATE accounts SET
				roll_no = $2, full_name = $3, mobile_no = $4, whatsapp_no = $5, mail_id = $6,
				father_name = $7, father_number = $8, school = $9, existing_backlogs = $10,
				area_of_interest = $11, ready_to_relocate = $12, education = $13, certifications = $14,
				skills = $15, experience = $16, profile_photo = $17, resume = $18,
				updated_at = $19, version = $20
			WHERE id = $1`,
			a.ID, a.RollNo, a.FullName, a.MobileNo, a.WhatsappNo, a.MailID,
			a.FatherName, a.FatherNumber, a.School, a.ExistingBacklogs,
			a.AreaOfInterest, a.ReadyToRelocate, a.Education, nonNil(a.Certifications),
			nonNil(a.Skills), nonNil(a.Experience), a.ProfilePhoto, a.Resume,
			a.UpdatedAt, a.Version)
		if err != nil {
			return fmt.Errorf("error updating profile: %w", err)
		}

		updated = a
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}
