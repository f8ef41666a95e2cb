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
	"github.com/campusconnect/placement-api/internal/pkg/events"
	"github.com/campusconnect/placement-api/internal/pkg/filestorage"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// ApplyInput holds the applicant snapshot submitted with an application
type ApplyInput struct {
	JobID    string
	FullName string
	Email    string
	Phone    string
}

// ApplicationService defines the interface for job application operations
type ApplicationService interface {
	Apply(ctx context.Context, userID string, role models.RoleType, input ApplyInput, resume *filestorage.StoredFile) (*models.Application, error)
	ListMine(ctx context.Context, userID string) ([]dto.MyApplicationItem, error)
	ListForJob(ctx context.Context, jobID string) ([]dto.JobApplicationItem, error)
}

// applicationServiceImpl implements ApplicationService
type applicationServiceImpl struct {
	repos     *repositories.Repositories
	publisher events.Publisher
	logger    zerolog.Logger
	now       func() time.Time
}

// NewApplicationService creates a new ApplicationService
func NewApplicationService(repos *repositories.Repositories, publisher events.Publisher, logger zerolog.Logger) ApplicationService {
	if publisher == nil {
		publisher = events.NoopPublisher{}
	}
	return &applicationServiceImpl{
		repos:     repos,
		publisher: publisher,
		logger:    logger,
		now:       time.Now,
	}
}

// Apply records a student's application to an approved, open posting
func (s *applicationServiceImpl) Apply(
	ctx context.Context,
	userID string,
	role models.RoleType,
	input ApplyInput,
	resume *filestorage.StoredFile,
) (*models.Application, error) {
	if role != models.RoleStudent {
		return nil, apperrors.NewForbiddenError("Only students can apply to jobs")
	}

	now := s.now().UTC()

	job, err := s.repos.Jobs.GetByID(ctx, input.JobID)
	if err != nil {
		return nil, err
	}
	if job.Status != models.JobStatusApproved {
		return nil, apperrors.ErrJobNotApproved
	}
	if job.IsExpired(now) {
		return nil, apperrors.ErrJobExpired
	}

	exists, err := s.repos.Applications.Exists(ctx, userID, job.ID)
	if err != nil {
		return nil, fmt.Errorf("error checking existing application: %w", err)
	}
	if exists {
		return nil, apperrors.ErrAlreadyApplied
	}

	if resume == nil || resume.Path == "" {
		return nil, apperrors.NewValidationError("Resume is required", map[string]string{
			FieldResume: "resume is required",
		})
	}

	applicant, err := s.repos.Accounts.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	application := &models.Application{
		ID:        uuid.NewString(),
		UserID:    userID,
		JobID:     job.ID,
		FullName:  firstNonBlank(input.FullName, applicant.FullName),
		Email:     firstNonBlank(input.Email, applicant.Email),
		Phone:     firstNonBlank(input.Phone, applicant.MobileNo),
		Resume:    resume.Path,
		AppliedAt: now,
	}

	if err := s.repos.Applications.Create(ctx, application); err != nil {
		if errors.Is(err, apperrors.ErrConflict) {
			return nil, err
		}
		return nil, fmt.Errorf("application creation error: %w", err)
	}

	s.logger.Info().Str("applicationID", application.ID).Str("userID", userID).Str("jobID", job.ID).Msg("Application submitted")
	events.Emit(ctx, s.publisher, s.logger, events.ApplicationSubmitted, events.ApplicationSubmittedEvent{
		ApplicationID: application.ID,
		UserID:        userID,
		JobID:         job.ID,
		CompanyName:   job.CompanyName,
		Email:         application.Email,
	})
	return application, nil
}

// ListMine returns the caller's applications with a summary of each job
func (s *applicationServiceImpl) ListMine(ctx context.Context, userID string) ([]dto.MyApplicationItem, error) {
	applications, err := s.repos.Applications.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error listing applications: %w", err)
	}

	jobIDs := make([]string, 0, len(applications))
	for _, a := range applications {
		jobIDs = append(jobIDs, a.JobID)
	}
	jobs, err := s.repos.Jobs.GetByIDs(ctx, jobIDs)
	if err != nil {
		return nil, fmt.Errorf("error loading jobs: %w", err)
	}

	items := make([]dto.MyApplicationItem, 0, len(applications))
	for _, a := range applications {
		items = append(items, dto.MyApplicationItem{
			ID:        a.ID,
			Job:       dto.NewJobSummary(jobs[a.JobID]),
			FullName:  a.FullName,
			Email:     a.Email,
			Phone:     a.Phone,
			Resume:    a.Resume,
			AppliedAt: a.AppliedAt,
		})
	}
	return items, nil
}

// ListForJob returns every application to a posting with a summary of each applicant
func (s *applicationServiceImpl) ListForJob(ctx context.Context, jobID string) ([]dto.JobApplicationItem, error) {
	if _, err := s.repos.Jobs.GetByID(ctx, jobID); err != nil {
		return nil, err
	}

	applications, err := s.repos.Applications.ListByJob(ctx, jobID)
	if err != nil {
		return nil, fmt.Errorf("error listing applications: %w", err)
	}

	userIDs := make([]string, 0, len(applications))
	for _, a := range applications {
		userIDs = append(userIDs, a.UserID)
	}
	applicants, err := s.repos.Accounts.GetByIDs(ctx, userIDs)
	if err != nil {
		return nil, fmt.Errorf("error loading applicants: %w", err)
	}

	items := make([]dto.JobApplicationItem, 0, len(applications))
	for _, a := range applications {
		var summary *dto.ApplicantSummary
		if u, ok := applicants[a.UserID]; ok {
			summary = &dto.ApplicantSummary{
				ID:       u.ID,
				FullName: u.FullName,
				Email:    u.Email,
				MobileNo: u.MobileNo,
			}
		}
		items = append(items, dto.JobApplicationItem{
			ID:        a.ID,
			Applicant: summary,
			FullName:  a.FullName,
			Email:     a.Email,
			Phone:     a.Phone,
			Resume:    a.Resume,
			AppliedAt: a.AppliedAt,
		})
	}
	return items, nil
}

func firstNonBlank(values ...string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}
