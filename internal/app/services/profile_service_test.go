package services

import (
	"context"
	"testing"

	"github.com/campusconnect/placement-api/internal/app/models"
	"github.com/campusconnect/placement-api/internal/pkg/apperrors"
	"github.com/campusconnect/placement-api/internal/pkg/events"
	"github.com/campusconnect/placement-api/internal/pkg/filestorage"
	"github.com/campusconnect/placement-api/internal/pkg/helpers"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfileService_PartialUpdateKeepsOtherFields(t *testing.T) {
	ctx := context.Background()
	repos := newRepos()
	storage := &recordingStorage{}
	publisher := &recordingPublisher{}
	svc := NewProfileService(repos.Accounts, storage, publisher, ProfileOptions{MaxCertifications: 10}, zerolog.Nop())

	student := createStudent(t, repos, "asha@college.edu", func(a *models.Account) {
		a.School = "City School"
		a.Skills = []string{"Java"}
	})

	resp, err := svc.ApplyProfileUpdate(ctx, student.ID, ProfileUpdateInput{
		RawFields: map[string]string{
			"mobileNo":   "+91 98765 43210",
			FieldSkills: `["Go","SQL"]`,
		},
	}, ProfileModeUpdate)
	require.NoError(t, err)

	assert.Equal(t, "+91 98765 43210", resp.MobileNo)
	assert.Equal(t, []string{"Go", "SQL"}, resp.Skills)
	assert.Equal(t, "City School", resp.School)
	assert.Equal(t, "Test Student", resp.FullName)
	assert.Equal(t, student.Email, resp.Email)
	assert.Equal(t, models.RoleStudent, resp.Role)
	assert.Equal(t, []string{events.ProfileUpdated}, publisher.Keys())
}

func TestProfileService_ValidationFailureLeavesProfileUntouched(t *testing.T) {
	ctx := context.Background()
	repos := newRepos()
	svc := NewProfileService(repos.Accounts, &recordingStorage{}, nil, ProfileOptions{}, zerolog.Nop())
	student := createStudent(t, repos, "asha@college.edu")

	_, err := svc.ApplyProfileUpdate(ctx, student.ID, ProfileUpdateInput{
		RawFields: map[string]string{
			"fullName": "Changed",
			"mobileNo": "not-a-number",
		},
	}, ProfileModeComplete)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	ce, ok := apperrors.As(err)
	require.True(t, ok)
	assert.Contains(t, ce.Details, "mobileNo")

	stored, err := repos.Accounts.GetByID(ctx, student.ID)
	require.NoError(t, err)
	assert.Equal(t, "Test Student", stored.FullName)
}

func TestProfileService_MalformedFieldLeavesProfileUntouched(t *testing.T) {
	ctx := context.Background()
	repos := newRepos()
	svc := NewProfileService(repos.Accounts, &recordingStorage{}, nil, ProfileOptions{}, zerolog.Nop())
	student := createStudent(t, repos, "asha@college.edu")

	_, err := svc.ApplyProfileUpdate(ctx, student.ID, ProfileUpdateInput{
		RawFields: map[string]string{
			"fullName":     "Changed",
			FieldEducation: "{broken",
		},
	}, ProfileModeUpdate)
	require.ErrorIs(t, err, apperrors.ErrMalformedPayload)

	stored, err := repos.Accounts.GetByID(ctx, student.ID)
	require.NoError(t, err)
	assert.Equal(t, "Test Student", stored.FullName)
}

func TestProfileService_UnknownAccount(t *testing.T) {
	svc := NewProfileService(newRepos().Accounts, &recordingStorage{}, nil, ProfileOptions{}, zerolog.Nop())

	_, err := svc.GetProfile(context.Background(), "missing")
	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)

	_, err = svc.ApplyProfileUpdate(context.Background(), "missing", ProfileUpdateInput{}, ProfileModeUpdate)
	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
}

func TestProfileService_GetProfileDefaults(t *testing.T) {
	repos := newRepos()
	svc := NewProfileService(repos.Accounts, &recordingStorage{}, nil, ProfileOptions{}, zerolog.Nop())
	student := createStudent(t, repos, "asha@college.edu", func(a *models.Account) {
		a.Certifications = nil
		a.Skills = nil
		a.Experience = nil
		a.ProfilePhoto = strPtr("")
	})

	resp, err := svc.GetProfile(context.Background(), student.ID)
	require.NoError(t, err)
	assert.NotNil(t, resp.Certifications)
	assert.NotNil(t, resp.Skills)
	assert.Equal(t, []models.Experience{models.NoExperience()}, resp.Experience)
	assert.Nil(t, resp.ProfilePhoto)
	assert.Nil(t, resp.Resume)
}

func TestProfileService_ExperienceSentinel(t *testing.T) {
	ctx := context.Background()
	repos := newRepos()
	svc := NewProfileService(repos.Accounts, &recordingStorage{}, nil, ProfileOptions{}, zerolog.Nop())
	student := createStudent(t, repos, "asha@college.edu")

	resp, err := svc.ApplyProfileUpdate(ctx, student.ID, ProfileUpdateInput{
		RawFields: map[string]string{FieldExperience: `[{"hasExperience":false,"organizationName":"x"},{"hasExperience":true,"organizationName":"Acme"}]`},
	}, ProfileModeUpdate)
	require.NoError(t, err)
	require.Len(t, resp.Experience, 1)
	assert.Equal(t, "Acme", resp.Experience[0].OrganizationName)

	resp, err = svc.ApplyProfileUpdate(ctx, student.ID, ProfileUpdateInput{
		RawFields: map[string]string{FieldExperience: `[]`},
	}, ProfileModeUpdate)
	require.NoError(t, err)
	assert.Equal(t, []models.Experience{models.NoExperience()}, resp.Experience)
}

func TestProfileService_CertificationImagesKeepTheirPosition(t *testing.T) {
	ctx := context.Background()
	repos := newRepos()
	svc := NewProfileService(repos.Accounts, &recordingStorage{}, nil, ProfileOptions{MaxCertifications: 10}, zerolog.Nop())
	student := createStudent(t, repos, "asha@college.edu", func(a *models.Account) {
		a.Certifications = []models.Certification{
			{Name: "AWS", Image: "/uploads/aws.png"},
			{Name: "GCP", Image: "/uploads/gcp.png"},
		}
	})

	resp, err := svc.ApplyProfileUpdate(ctx, student.ID, ProfileUpdateInput{
		RawFields: map[string]string{FieldCertifications: `[{"name":"AWS Pro"},{"name":"GCP"}]`},
		Uploaded: map[string]filestorage.StoredFile{
			CertificationImageField(1): {Path: "/uploads/gcp-new.png"},
		},
	}, ProfileModeUpdate)
	require.NoError(t, err)

	assert.Equal(t, []models.Certification{
		{Name: "AWS Pro", Image: "/uploads/aws.png"},
		{Name: "GCP", Image: "/uploads/gcp-new.png"},
	}, resp.Certifications)
}

func TestProfileService_SupersededFilesAreDeleted(t *testing.T) {
	ctx := context.Background()
	repos := newRepos()
	storage := &recordingStorage{}
	svc := NewProfileService(repos.Accounts, storage, nil, ProfileOptions{CleanupSuperseded: true}, zerolog.Nop())
	student := createStudent(t, repos, "asha@college.edu", func(a *models.Account) {
		a.ProfilePhoto = strPtr("/uploads/old-photo.png")
		a.Resume = strPtr("https://cdn.example.com/cv.pdf")
	})

	_, err := svc.ApplyProfileUpdate(ctx, student.ID, ProfileUpdateInput{
		Uploaded: map[string]filestorage.StoredFile{
			FieldProfilePhoto: {Path: "/uploads/new-photo.png"},
			FieldResume:       {Path: "/uploads/new-cv.pdf"},
		},
	}, ProfileModeUpdate)
	require.NoError(t, err)

	// the external resume link is not ours to delete
	assert.Equal(t, []string{"/uploads/old-photo.png"}, storage.Deleted())
}

func TestProfileService_CleanupDisabled(t *testing.T) {
	ctx := context.Background()
	repos := newRepos()
	storage := &recordingStorage{}
	svc := NewProfileService(repos.Accounts, storage, nil, ProfileOptions{CleanupSuperseded: false}, zerolog.Nop())
	student := createStudent(t, repos, "asha@college.edu", func(a *models.Account) {
		a.ProfilePhoto = strPtr("/uploads/old-photo.png")
	})

	ref, err := svc.UploadProfilePhoto(ctx, student.ID, filestorage.StoredFile{Path: "/uploads/new-photo.png"})
	require.NoError(t, err)
	assert.Equal(t, "/uploads/new-photo.png", ref)
	assert.Empty(t, storage.Deleted())
}

func TestProfileService_UploadResume(t *testing.T) {
	ctx := context.Background()
	repos := newRepos()
	storage := &recordingStorage{}
	publisher := &recordingPublisher{}
	svc := NewProfileService(repos.Accounts, storage, publisher, ProfileOptions{CleanupSuperseded: true}, zerolog.Nop())
	student := createStudent(t, repos, "asha@college.edu", func(a *models.Account) {
		a.Resume = strPtr("/uploads/old-cv.pdf")
	})

	ref, err := svc.UploadResume(ctx, student.ID, filestorage.StoredFile{Path: "/uploads/new-cv.pdf"})
	require.NoError(t, err)
	assert.Equal(t, "/uploads/new-cv.pdf", ref)

	stored, err := repos.Accounts.GetByID(ctx, student.ID)
	require.NoError(t, err)
	require.NotNil(t, stored.Resume)
	assert.Equal(t, "/uploads/new-cv.pdf", *stored.Resume)
	assert.Equal(t, []string{"/uploads/old-cv.pdf"}, storage.Deleted())
	assert.Equal(t, []string{events.ProfileUpdated}, publisher.Keys())
}

func TestProfileService_ListStudents(t *testing.T) {
	ctx := context.Background()
	repos := newRepos()
	svc := NewProfileService(repos.Accounts, &recordingStorage{}, nil, ProfileOptions{}, zerolog.Nop())

	createStudent(t, repos, "one@college.edu")
	createStudent(t, repos, "two@college.edu", func(a *models.Account) { a.Resume = strPtr("/uploads/cv.pdf") })
	createStudent(t, repos, "admin@college.edu", func(a *models.Account) { a.Role = models.RoleAdmin })

	items, pagination, err := svc.ListStudents(ctx, helpers.NormalizePage(1, 20))
	require.NoError(t, err)
	assert.Len(t, items, 2)
	assert.Equal(t, int64(2), pagination.TotalItems)
	assert.Equal(t, 1, pagination.TotalPages)

	withResume := 0
	for _, s := range items {
		assert.NotEqual(t, "admin@college.edu", s.Email)
		if s.HasResume {
			withResume++
		}
	}
	assert.Equal(t, 1, withResume)
}

func TestProfileService_ApplyTwiceIsIdempotent(t *testing.T) {
	ctx := context.Background()
	repos := newRepos()
	storage := &recordingStorage{}
	svc := NewProfileService(repos.Accounts, storage, nil, ProfileOptions{MaxCertifications: 10, CleanupSuperseded: true}, zerolog.Nop())
	student := createStudent(t, repos, "asha@college.edu")

	input := ProfileUpdateInput{
		RawFields: map[string]string{
			"fullName":           "Asha Verma",
			FieldReadyToRelocate: "true",
			FieldExperience:      `{"hasExperience":true,"organizationName":"Acme","duration":"6 months"}`,
			FieldCertifications:  `[{"name":"AWS"},{"name":"GCP","image":""}]`,
			FieldSkills:          `["Go"," SQL ","Go"]`,
		},
		Uploaded: map[string]filestorage.StoredFile{
			FieldProfilePhoto:          {Path: "/uploads/photo.png"},
			CertificationImageField(0): {Path: "/uploads/aws.png"},
		},
	}

	_, err := svc.ApplyProfileUpdate(ctx, student.ID, input, ProfileModeComplete)
	require.NoError(t, err)
	once, err := repos.Accounts.GetByID(ctx, student.ID)
	require.NoError(t, err)

	_, err = svc.ApplyProfileUpdate(ctx, student.ID, input, ProfileModeComplete)
	require.NoError(t, err)
	twice, err := repos.Accounts.GetByID(ctx, student.ID)
	require.NoError(t, err)

	twice.UpdatedAt = once.UpdatedAt
	twice.Version = once.Version
	assert.Equal(t, once, twice)
	assert.Equal(t, []string{"Go", "SQL"}, twice.Skills)
	assert.Equal(t, []models.Certification{{Name: "AWS", Image: "/uploads/aws.png"}, {Name: "GCP"}}, twice.Certifications)
	assert.Empty(t, storage.Deleted())
}

func TestProfileService_RejectsFilesTheProfileDoesNotHold(t *testing.T) {
	ctx := context.Background()
	repos := newRepos()
	storage := &recordingStorage{}
	profiles := NewProfileService(repos.Accounts, storage, nil, ProfileOptions{
		MaxCertifications: 10,
		CleanupSuperseded: true,
		LegacyHostPrefix:  "http://localhost:3000",
	}, zerolog.Nop())
	applications := NewApplicationService(repos, nil, zerolog.Nop())

	student := createStudent(t, repos, "asha@college.edu", func(a *models.Account) {
		a.ProfilePhoto = strPtr("/uploads/current.png")
	})
	other := createStudent(t, repos, "ravi@college.edu", func(a *models.Account) {
		a.ProfilePhoto = strPtr("/uploads/ravi.png")
	})
	job := createJob(t, repos, models.JobStatusApproved, nil)

	resume, err := storage.Save(ctx, filestorage.Incoming{OriginalName: "cv.pdf"})
	require.NoError(t, err)
	_, err = applications.Apply(ctx, student.ID, models.RoleStudent, ApplyInput{JobID: job.ID}, &resume)
	require.NoError(t, err)
	mine, err := applications.ListMine(ctx, student.ID)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	applicationResume := mine[0].Resume

	tests := []struct {
		name   string
		fields map[string]string
		field  string
	}{
		{"application resume as photo", map[string]string{FieldProfilePhoto: applicationResume}, FieldProfilePhoto},
		{"another student's photo", map[string]string{FieldProfilePhoto: "http://localhost:3000" + *other.ProfilePhoto}, FieldProfilePhoto},
		{"certification image", map[string]string{FieldCertifications: `[{"name":"AWS","image":"` + applicationResume + `"}]`}, "certifications[0].image"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := profiles.ApplyProfileUpdate(ctx, student.ID, ProfileUpdateInput{RawFields: tt.fields}, ProfileModeUpdate)
			require.Error(t, err)
			assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
			ce, ok := apperrors.As(err)
			require.True(t, ok)
			assert.Contains(t, ce.Details, tt.field)
		})
	}

	// resubmitting the current photo and external links stay allowed
	_, err = profiles.ApplyProfileUpdate(ctx, student.ID, ProfileUpdateInput{RawFields: map[string]string{
		FieldProfilePhoto:   "http://localhost:3000/uploads/current.png",
		FieldCertifications: `[{"name":"AWS","image":"https://cdn.example.com/aws.png"}]`,
	}}, ProfileModeUpdate)
	require.NoError(t, err)

	_, err = profiles.ApplyProfileUpdate(ctx, student.ID, ProfileUpdateInput{
		Uploaded: map[string]filestorage.StoredFile{FieldProfilePhoto: {Path: "/uploads/new.png"}},
	}, ProfileModeUpdate)
	require.NoError(t, err)

	assert.Equal(t, []string{"/uploads/current.png"}, storage.Deleted())
	assert.NotContains(t, storage.Deleted(), applicationResume)
	assert.NotContains(t, storage.Deleted(), *other.ProfilePhoto)
}
