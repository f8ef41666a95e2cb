package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/campusconnect/placement-api/internal/app/models"
	"github.com/campusconnect/placement-api/internal/app/models/dto"
	"github.com/campusconnect/placement-api/internal/app/repositories"
	"github.com/campusconnect/placement-api/internal/pkg/apperrors"
	"github.com/campusconnect/placement-api/internal/pkg/events"
	"github.com/campusconnect/placement-api/internal/pkg/helpers"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// JobService defines the interface for job posting operations
type JobService interface {
	CreateJob(ctx context.Context, adminID string, req *dto.CreateJobRequest) (*models.JobPosting, error)
	UpdateJobStatus(ctx context.Context, adminID, jobID string, status models.JobStatus) (*models.JobPosting, error)
	GetJob(ctx context.Context, role models.RoleType, jobID string) (*models.JobPosting, error)
	ListJobs(ctx context.Context, role models.RoleType, status *models.JobStatus, page helpers.Page) ([]models.JobPosting, dto.PaginationInfo, error)
}

// jobServiceImpl implements JobService
type jobServiceImpl struct {
	jobs      repositories.IJobRepository
	publisher events.Publisher
	logger    zerolog.Logger
	now       func() time.Time
}

// NewJobService creates a new JobService
func NewJobService(jobs repositories.IJobRepository, publisher events.Publisher, logger zerolog.Logger) JobService {
	if publisher == nil {
		publisher = events.NoopPublisher{}
	}
	return &jobServiceImpl{
		jobs:      jobs,
		publisher: publisher,
		logger:    logger,
		now:       time.Now,
	}
}

// CreateJob stores a new posting awaiting moderation
func (s *jobServiceImpl) CreateJob(ctx context.Context, adminID string, req *dto.CreateJobRequest) (*models.JobPosting, error) {
	now := s.now().UTC()

	expiry, err := helpers.ParseOptionalTime(req.ExpiryDate)
	if err != nil {
		return nil, apperrors.NewValidationError("Invalid expiry date", map[string]string{
			"expiryDate": "expiryDate must be an RFC3339 timestamp or YYYY-MM-DD date",
		})
	}
	if expiry != nil && !expiry.After(now) {
		return nil, apperrors.NewValidationError("Invalid expiry date", map[string]string{
			"expiryDate": "expiryDate must be in the future",
		})
	}

	profiles := make([]string, 0, len(req.Profiles))
	for _, p := range req.Profiles {
		if p = strings.TrimSpace(p); p != "" {
			profiles = append(profiles, p)
		}
	}
	if len(profiles) == 0 {
		return nil, apperrors.NewValidationError("Validation failed", map[string]string{
			"profiles": "profiles must contain at least one role",
		})
	}

	job := &models.JobPosting{
		ID:           uuid.NewString(),
		CompanyName:  strings.TrimSpace(req.CompanyName),
		Profiles:     profiles,
		CtcOrStipend: strings.TrimSpace(req.CtcOrStipend),
		Location:     strings.TrimSpace(req.Location),
		OfferType:    strings.TrimSpace(req.OfferType),
		Description:  strings.TrimSpace(req.Description),
		Status:       models.JobStatusPending,
		ExpiryDate:   expiry,
		CreatedBy:    adminID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.jobs.Create(ctx, job); err != nil {
		return nil, fmt.Errorf("job creation error: %w", err)
	}

	s.logger.Info().Str("jobID", job.ID).Str("company", job.CompanyName).Str("createdBy", adminID).Msg("Job posting created")
	return job, nil
}

// UpdateJobStatus moves a posting to a new moderation status
func (s *jobServiceImpl) UpdateJobStatus(ctx context.Context, adminID, jobID string, status models.JobStatus) (*models.JobPosting, error) {
	if !status.Valid() {
		return nil, apperrors.NewValidationError("Validation failed", map[string]string{
			"status": "status must be one of: pending approved rejected",
		})
	}

	job, err := s.jobs.UpdateStatus(ctx, jobID, status, s.now().UTC())
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("jobID", job.ID).Str("status", string(status)).Str("changedBy", adminID).Msg("Job status changed")
	events.Emit(ctx, s.publisher, s.logger, events.JobStatusChanged, events.JobStatusChangedEvent{
		JobID:       job.ID,
		CompanyName: job.CompanyName,
		Status:      string(job.Status),
		ChangedBy:   adminID,
	})
	return job, nil
}

// GetJob returns one posting; students only see approved ones
func (s *jobServiceImpl) GetJob(ctx context.Context, role models.RoleType, jobID string) (*models.JobPosting, error) {
	job, err := s.jobs.GetByID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if role != models.RoleAdmin && job.Status != models.JobStatusApproved {
		return nil, apperrors.ErrJobNotFound
	}
	return job, nil
}

// ListJobs returns one page of postings. Students see approved postings that have
// not expired; admins see everything and may filter by status.
func (s *jobServiceImpl) ListJobs(ctx context.Context, role models.RoleType, status *models.JobStatus, page helpers.Page) ([]models.JobPosting, dto.PaginationInfo, error) {
	filter := models.JobFilter{Status: status, Now: s.now().UTC()}
	if role != models.RoleAdmin {
		approved := models.JobStatusApproved
		filter.Status = &approved
		filter.ExcludeExpiry = true
	}

	jobs, total, err := s.jobs.List(ctx, filter, page)
	if err != nil {
		return nil, dto.PaginationInfo{}, fmt.Errorf("error listing jobs: %w", err)
	}

	items := make([]models.JobPosting, 0, len(jobs))
	for _, j := range jobs {
		items = append(items, *j)
	}
	return items, helpers.NewPaginationInfo(total, page), nil
}
