package repositories

import (
	"context"
	"fmt"

	"github.com/campusconnect/placement-api/internal/app/models"
	"github.com/campusconnect/placement-api/internal/db"
	"github.com/campusconnect/placement-api/internal/pkg/apperrors"
	"github.com/campusconnect/placement-api/internal/pkg/dberrors"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const applicationUserJobConstraint = "applications_user_job_key"

const applicationColumns = `id, user_id, job_id, full_name, email, phone, resume, applied_at`

// ApplicationRepository stores applications in PostgreSQL
type ApplicationRepository struct {
	db *db.PostgresDB
}

// NewApplicationRepository creates a new ApplicationRepository
func NewApplicationRepository(database *db.PostgresDB) *ApplicationRepository {
	return &ApplicationRepository{db: database}
}

// Create inserts an application; the unique (user_id, job_id) constraint enforces one per job
func (r *ApplicationRepository) Create(ctx context.Context, a *models.Application) error {
	_, err := r.db.Pool.Exec(ctx, `
		INSERT INTO applications (`+applicationColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		a.ID, a.UserID, a.JobID, a.FullName, a.Email, a.Phone, a.Resume, a.AppliedAt)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, applicationUserJobConstraint) {
			return apperrors.ErrAlreadyApplied
		}
		return fmt.Errorf("error creating application: %w", err)
	}
	return nil
}

// Exists reports whether the user already applied to the job
func (r *ApplicationRepository) Exists(ctx context.Context, userID, jobID string) (bool, error) {
	if _, err := uuid.Parse(userID); err != nil {
		return false, nil
	}
	if _, err := uuid.Parse(jobID); err != nil {
		return false, nil
	}
	var exists bool
	err := r.db.Pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM applications WHERE user_id = $1 AND job_id = $2)`,
		userID, jobID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking application: %w", err)
	}
	return exists, nil
}

// ListByUser returns the user's applications, newest first
func (r *ApplicationRepository) ListByUser(ctx context.Context, userID string) ([]*models.Application, error) {
	if _, err := uuid.Parse(userID); err != nil {
		return []*models.Application{}, nil
	}
	return r.list(ctx, `SELECT `+applicationColumns+` FROM applications WHERE user_id = $1 ORDER BY applied_at DESC, id`, userID)
}

// ListByJob returns the applications for a job, newest first
func (r *ApplicationRepository) ListByJob(ctx context.Context, jobID string) ([]*models.Application, error) {
	if _, err := uuid.Parse(jobID); err != nil {
		return []*models.Application{}, nil
	}
	return r.list(ctx, `SELECT `+applicationColumns+` FROM applications WHERE job_id = $1 ORDER BY applied_at DESC, id`, jobID)
}

func (r *ApplicationRepository) list(ctx context.Context, query string, arg string) ([]*models.Application, error) {
	rows, err := r.db.Pool.Query(ctx, query, arg)
	if err != nil {
		return nil, fmt.Errorf("error listing applications: %w", err)
	}
	defer rows.Close()

	applications, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*models.Application, error) {
		a := &models.Application{}
		err := row.Scan(&a.ID, &a.UserID, &a.JobID, &a.FullName, &a.Email, &a.Phone, &a.Resume, &a.AppliedAt)
		return a, err
	})
	if err != nil {
		return nil, fmt.Errorf("error scanning applications: %w", err)
	}
	return applications, nil
}
