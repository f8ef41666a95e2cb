package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/campusconnect/placement-api/internal/app/models"
	"github.com/campusconnect/placement-api/internal/db"
	"github.com/campusconnect/placement-api/internal/pkg/apperrors"
	"github.com/campusconnect/placement-api/internal/pkg/helpers"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const jobColumns = `id, company_name, profiles, ctc_or_stipend, location, offer_type, description,
	status, expiry_date, created_by, created_at, updated_at`

// JobRepository stores job postings in PostgreSQL
type JobRepository struct {
	db *db.PostgresDB
}

// NewJobRepository creates a new JobRepository
func NewJobRepository(database *db.PostgresDB) *JobRepository {
	return &JobRepository{db: database}
}

func scanJob(row pgx.Row) (*models.JobPosting, error) {
	j := &models.JobPosting{}
	var status string
	err := row.Scan(
		&j.ID, &j.CompanyName, &j.Profiles, &j.CtcOrStipend, &j.Location, &j.OfferType, &j.Description,
		&status, &j.ExpiryDate, &j.CreatedBy, &j.CreatedAt, &j.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	j.Status = models.JobStatus(status)
	return j, nil
}

// Create inserts a new posting
func (r *JobRepository) Create(ctx context.Context, j *models.JobPosting) error {
	_, err := r.db.Pool.Exec(ctx, `
		INSERT INTO jobs (id, company_name, profiles, ctc_or_stipend, location, offer_type, description,
			status, expiry_date, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		j.ID, j.CompanyName, nonNil(j.Profiles), j.CtcOrStipend, j.Location, j.OfferType, j.Description,
		string(j.Status), j.ExpiryDate, j.CreatedBy, j.CreatedAt, j.UpdatedAt)
	if err != nil {
		return fmt.Errorf("error creating job: %w", err)
	}
	return nil
}

// GetByID retrieves a posting by id
func (r *JobRepository) GetByID(ctx context.Context, id string) (*models.JobPosting, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, apperrors.ErrJobNotFound
	}
	j, err := scanJob(r.db.Pool.QueryRow(ctx, `SELECT `+jobColumns+` FROM jobs WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrJobNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error finding job: %w", err)
	}
	return j, nil
}

// GetByIDs loads several postings keyed by id; unknown ids are skipped
func (r *JobRepository) GetByIDs(ctx context.Context, ids []string) (map[string]*models.JobPosting, error) {
	result := make(map[string]*models.JobPosting, len(ids))
	valid := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, err := uuid.Parse(id); err == nil {
			valid = append(valid, id)
		}
	}
	if len(valid) == 0 {
		return result, nil
	}

	rows, err := r.db.Pool.Query(ctx, `SELECT `+jobColumns+` FROM jobs WHERE id = ANY($1::uuid[])`, valid)
	if err != nil {
		return nil, fmt.Errorf("error listing jobs: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		j, err := scanJob(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning job: %w", err)
		}
		result[j.ID] = j
	}
	return result, rows.Err()
}

// List returns one page of postings matching the filter, newest first
func (r *JobRepository) List(ctx context.Context, filter models.JobFilter, page helpers.Page) ([]*models.JobPosting, int64, error) {
	var (
		conditions []string
		args       []interface{}
	)
	if filter.Status != nil {
		args = append(args, string(*filter.Status))
		conditions = append(conditions, fmt.Sprintf("status = $%d", len(args)))
	}
	if filter.ExcludeExpiry {
		args = append(args, filter.Now)
		conditions = append(conditions, fmt.Sprintf("(expiry_date IS NULL OR expiry_date >= $%d)", len(args)))
	}

	where := ""
	if len(conditions) > 0 {
		where = " WHERE " + strings.Join(conditions, " AND ")
	}

	var total int64
	if err := r.db.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM jobs`+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("error counting jobs: %w", err)
	}

	args = append(args, page.Size, page.Offset())
	query := fmt.Sprintf(`SELECT %s FROM jobs%s ORDER BY created_at DESC, id LIMIT $%d OFFSET $%d`,
		jobColumns, where, len(args)-1, len(args))

	rows, err := r.db.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("error listing jobs: %w", err)
	}
	defer rows.Close()

	jobs := make([]*models.JobPosting, 0, page.Size)
	for rows.Next() {
		j, err := scanJob(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("error scanning job: %w", err)
		}
		jobs = append(jobs, j)
	}
	return jobs, total, rows.Err()
}

// UpdateStatus sets the moderation status and returns the updated posting
func (r *JobRepository) UpdateStatus(ctx context.Context, id string, status models.JobStatus, at time.Time) (*models.JobPosting, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, apperrors.ErrJobNotFound
	}
	j, err := scanJob(r.db.Pool.QueryRow(ctx, `
		UPDATE jobs SET status = $2, updated_at = $3
		WHERE id = $1
		RETURNING `+jobColumns,
		id, string(status), at))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrJobNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error updating job status: %w", err)
	}
	return j, nil
}
