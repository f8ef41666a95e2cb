package services

import (
	"context"
	"testing"
	"time"

	"github.com/campusconnect/placement-api/internal/app/models"
	"github.com/campusconnect/placement-api/internal/pkg/apperrors"
	"github.com/campusconnect/placement-api/internal/pkg/events"
	"github.com/campusconnect/placement-api/internal/pkg/filestorage"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplicationService_Apply(t *testing.T) {
	ctx := context.Background()
	repos := newRepos()
	publisher := &recordingPublisher{}
	svc := NewApplicationService(repos, publisher, zerolog.Nop())

	student := createStudent(t, repos, "asha@college.edu", func(a *models.Account) {
		a.FullName = "Asha Verma"
		a.MobileNo = "9876543210"
	})
	job := createJob(t, repos, models.JobStatusApproved, nil)
	resume := &filestorage.StoredFile{Path: "/uploads/cv.pdf"}

	application, err := svc.Apply(ctx, student.ID, models.RoleStudent, ApplyInput{JobID: job.ID, Email: "alt@college.edu"}, resume)
	require.NoError(t, err)

	assert.Equal(t, student.ID, application.UserID)
	assert.Equal(t, job.ID, application.JobID)
	assert.Equal(t, "Asha Verma", application.FullName)
	assert.Equal(t, "alt@college.edu", application.Email)
	assert.Equal(t, "9876543210", application.Phone)
	assert.Equal(t, "/uploads/cv.pdf", application.Resume)
	assert.False(t, application.AppliedAt.IsZero())
	assert.Equal(t, []string{events.ApplicationSubmitted}, publisher.Keys())

	_, err = svc.Apply(ctx, student.ID, models.RoleStudent, ApplyInput{JobID: job.ID}, resume)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrConflict)
	assert.Equal(t, "Already applied to this job", err.Error())
}

func TestApplicationService_ApplyRejections(t *testing.T) {
	ctx := context.Background()
	repos := newRepos()
	svc := NewApplicationService(repos, nil, zerolog.Nop())

	student := createStudent(t, repos, "asha@college.edu")
	past := time.Now().Add(-time.Hour)
	approved := createJob(t, repos, models.JobStatusApproved, nil)
	pending := createJob(t, repos, models.JobStatusPending, nil)
	expired := createJob(t, repos, models.JobStatusApproved, &past)
	resume := &filestorage.StoredFile{Path: "/uploads/cv.pdf"}

	tests := []struct {
		name    string
		role    models.RoleType
		jobID   string
		resume  *filestorage.StoredFile
		wantErr error
		wantMsg string
	}{
		{"admins cannot apply", models.RoleAdmin, approved.ID, resume, apperrors.ErrPermissionDenied, "Only students can apply to jobs"},
		{"unknown job", models.RoleStudent, "missing", resume, apperrors.ErrResourceNotFound, "Job not found"},
		{"pending job", models.RoleStudent, pending.ID, resume, apperrors.ErrPermissionDenied, "Job not approved yet"},
		{"expired job", models.RoleStudent, expired.ID, resume, apperrors.ErrPermissionDenied, "Job has expired"},
		{"missing resume", models.RoleStudent, approved.ID, nil, apperrors.ErrValidationFailed, "Resume is required"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Apply(ctx, student.ID, tt.role, ApplyInput{JobID: tt.jobID}, tt.resume)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, tt.wantMsg, err.Error())
		})
	}

	mine, err := svc.ListMine(ctx, student.ID)
	require.NoError(t, err)
	assert.Empty(t, mine)
}

func TestApplicationService_Listings(t *testing.T) {
	ctx := context.Background()
	repos := newRepos()
	svc := NewApplicationService(repos, nil, zerolog.Nop())

	first := createStudent(t, repos, "first@college.edu", func(a *models.Account) { a.MobileNo = "9000000001" })
	second := createStudent(t, repos, "second@college.edu")
	jobA := createJob(t, repos, models.JobStatusApproved, nil)
	jobB := createJob(t, repos, models.JobStatusApproved, nil)
	resume := &filestorage.StoredFile{Path: "/uploads/cv.pdf"}

	for _, apply := range []struct {
		userID string
		jobID  string
	}{
		{first.ID, jobA.ID},
		{first.ID, jobB.ID},
		{second.ID, jobA.ID},
	} {
		_, err := svc.Apply(ctx, apply.userID, models.RoleStudent, ApplyInput{JobID: apply.jobID}, resume)
		require.NoError(t, err)
	}

	mine, err := svc.ListMine(ctx, first.ID)
	require.NoError(t, err)
	require.Len(t, mine, 2)
	for _, item := range mine {
		require.NotNil(t, item.Job)
		assert.Equal(t, "Acme Corp", item.Job.CompanyName)
	}

	forJob, err := svc.ListForJob(ctx, jobA.ID)
	require.NoError(t, err)
	require.Len(t, forJob, 2)
	applicants := map[string]string{}
	for _, item := range forJob {
		require.NotNil(t, item.Applicant)
		applicants[item.Applicant.Email] = item.Applicant.MobileNo
	}
	assert.Equal(t, map[string]string{"first@college.edu": "9000000001", "second@college.edu": ""}, applicants)

	_, err = svc.ListForJob(ctx, "missing")
	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
}
