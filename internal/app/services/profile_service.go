package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/campusconnect/placement-api/internal/app/models"
	"github.com/campusconnect/placement-api/internal/app/models/dto"
	"github.com/campusconnect/placement-api/internal/app/repositories"
	"github.com/campusconnect/placement-api/internal/pkg/apperrors"
	"github.com/campusconnect/placement-api/internal/pkg/events"
	"github.com/campusconnect/placement-api/internal/pkg/filestorage"
	"github.com/campusconnect/placement-api/internal/pkg/helpers"
	"github.com/campusconnect/placement-api/internal/pkg/validation"
	"github.com/rs/zerolog"
)

// ProfileMode distinguishes the two profile write endpoints. Both share one code path.
type ProfileMode string

const (
	ProfileModeComplete ProfileMode = "complete"
	ProfileModeUpdate   ProfileMode = "update"
)

// SuccessMessage returns the confirmation shown to the caller
func (m ProfileMode) SuccessMessage() string {
	if m == ProfileModeComplete {
		return "Profile completed successfully"
	}
	return "Profile updated successfully"
}

// ProfileUpdateInput is a profile form after its files have been stored
type ProfileUpdateInput struct {
	RawFields map[string]string
	Uploaded  map[string]filestorage.StoredFile
}

// ProfileOptions configures profile writes
type ProfileOptions struct {
	LegacyHostPrefix  string
	MaxCertifications int
	// CleanupSuperseded deletes stored files no longer referenced after a write
	CleanupSuperseded bool
}

// ProfileService defines the interface for profile operations
type ProfileService interface {
	GetProfile(ctx context.Context, accountID string) (*dto.ProfileResponse, error)
	ApplyProfileUpdate(ctx context.Context, accountID string, input ProfileUpdateInput, mode ProfileMode) (*dto.ProfileResponse, error)
	UploadProfilePhoto(ctx context.Context, accountID string, file filestorage.StoredFile) (string, error)
	UploadResume(ctx context.Context, accountID string, file filestorage.StoredFile) (string, error)
	ListStudents(ctx context.Context, page helpers.Page) ([]dto.StudentSummary, dto.PaginationInfo, error)
}

// profileServiceImpl implements ProfileService
type profileServiceImpl struct {
	accounts  repositories.IAccountRepository
	storage   filestorage.FileStorage
	publisher events.Publisher
	options   ProfileOptions
	logger    zerolog.Logger
}

// NewProfileService creates a new ProfileService
func NewProfileService(
	accounts repositories.IAccountRepository,
	storage filestorage.FileStorage,
	publisher events.Publisher,
	options ProfileOptions,
	logger zerolog.Logger,
) ProfileService {
	if publisher == nil {
		publisher = events.NoopPublisher{}
	}
	return &profileServiceImpl{
		accounts:  accounts,
		storage:   storage,
		publisher: publisher,
		options:   options,
		logger:    logger,
	}
}

// GetProfile returns the caller's profile with read defaults applied
func (s *profileServiceImpl) GetProfile(ctx context.Context, accountID string) (*dto.ProfileResponse, error) {
	account, err := s.accounts.GetByID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	resp := dto.NewProfileResponse(account)
	return &resp, nil
}

// ApplyProfileUpdate normalizes the form, merges it into the stored profile and
// validates the result, all inside one atomic store update.
func (s *profileServiceImpl) ApplyProfileUpdate(ctx context.Context, accountID string, input ProfileUpdateInput, mode ProfileMode) (*dto.ProfileResponse, error) {
	var (
		patch      *ProfilePatch
		superseded []string
	)

	updated, err := s.accounts.UpdateProfile(ctx, accountID, func(account *models.Account) error {
		p, err := NormalizeProfile(NormalizeInput{
			RawFields:                   input.RawFields,
			Uploaded:                    input.Uploaded,
			ExistingCertificationImages: certificationImages(account),
			Options: NormalizeOptions{
				LegacyHostPrefix:  s.options.LegacyHostPrefix,
				MaxCertifications: s.options.MaxCertifications,
			},
		})
		if err != nil {
			return err
		}
		if p.Experience != nil {
			exp := NormalizeExperience(*p.Experience)
			p.Experience = &exp
		}

		before := fileRefs(account)
		p.ApplyTo(account)
		if err := s.checkSubmittedFiles(account, before, input.Uploaded); err != nil {
			return err
		}
		if err := validation.Struct(account); err != nil {
			return err
		}

		patch = p
		superseded = difference(before, fileRefs(account))
		return nil
	})
	if err != nil {
		if errors.Is(err, apperrors.ErrConflict) {
			s.logger.Warn().Err(err).Str("userID", accountID).Str("mode", string(mode)).Msg("Profile write lost a concurrent update")
		} else if isClientError(err) {
			s.logger.Debug().Err(err).Str("userID", accountID).Str("mode", string(mode)).Msg("Profile write rejected")
		} else if !errors.Is(err, apperrors.ErrResourceNotFound) {
			s.logger.Error().Err(err).Str("userID", accountID).Str("mode", string(mode)).Msg("Error updating profile")
			return nil, fmt.Errorf("error updating profile: %w", err)
		}
		return nil, err
	}

	fields := patch.Fields()
	s.logger.Info().Str("userID", accountID).Str("mode", string(mode)).Strs("fields", fields).Msg("Profile saved")

	s.removeSuperseded(ctx, superseded)
	events.Emit(ctx, s.publisher, s.logger, events.ProfileUpdated, events.ProfileUpdatedEvent{
		UserID: accountID,
		Mode:   string(mode),
		Fields: fields,
	})

	resp := dto.NewProfileResponse(updated)
	return &resp, nil
}

// UploadProfilePhoto points the profile photo at an already stored image
func (s *profileServiceImpl) UploadProfilePhoto(ctx context.Context, accountID string, file filestorage.StoredFile) (string, error) {
	return s.replaceFile(ctx, accountID, FieldProfilePhoto, file, func(a *models.Account, ref *string) {
		a.ProfilePhoto = ref
	})
}

// UploadResume points the profile resume at an already stored document
func (s *profileServiceImpl) UploadResume(ctx context.Context, accountID string, file filestorage.StoredFile) (string, error) {
	return s.replaceFile(ctx, accountID, FieldResume, file, func(a *models.Account, ref *string) {
		a.Resume = ref
	})
}

func (s *profileServiceImpl) replaceFile(
	ctx context.Context,
	accountID, field string,
	file filestorage.StoredFile,
	set func(*models.Account, *string),
) (string, error) {
	var superseded []string
	ref := file.Path

	_, err := s.accounts.UpdateProfile(ctx, accountID, func(account *models.Account) error {
		before := fileRefs(account)
		set(account, &ref)
		if err := validation.Struct(account); err != nil {
			return err
		}
		superseded = difference(before, fileRefs(account))
		return nil
	})
	if err != nil {
		return "", err
	}

	s.logger.Info().Str("userID", accountID).Str("field", field).Str("path", ref).Msg("Profile file replaced")
	s.removeSuperseded(ctx, superseded)
	events.Emit(ctx, s.publisher, s.logger, events.ProfileUpdated, events.ProfileUpdatedEvent{
		UserID: accountID,
		Mode:   string(ProfileModeUpdate),
		Fields: []string{field},
	})
	return ref, nil
}

// ListStudents returns one page of student accounts for admins
func (s *profileServiceImpl) ListStudents(ctx context.Context, page helpers.Page) ([]dto.StudentSummary, dto.PaginationInfo, error) {
	accounts, total, err := s.accounts.ListByRole(ctx, models.RoleStudent, page)
	if err != nil {
		return nil, dto.PaginationInfo{}, fmt.Errorf("error listing students: %w", err)
	}

	items := make([]dto.StudentSummary, 0, len(accounts))
	for _, a := range accounts {
		items = append(items, dto.NewStudentSummary(a))
	}
	return items, helpers.NewPaginationInfo(total, page), nil
}

// removeSuperseded deletes stored files that the committed profile no longer references
func (s *profileServiceImpl) removeSuperseded(ctx context.Context, refs []string) {
	if !s.options.CleanupSuperseded || s.storage == nil {
		return
	}
	for _, ref := range refs {
		if !s.storage.Owns(ref) {
			continue
		}
		if err := s.storage.Delete(context.WithoutCancel(ctx), ref); err != nil {
			s.logger.Warn().Err(err).Str("path", ref).Msg("Failed to delete superseded file")
		}
	}
}

// checkSubmittedFiles rejects managed file references the form names unless the
// account already holds them or they were uploaded with this request. Only such
// references may later reach removeSuperseded.
func (s *profileServiceImpl) checkSubmittedFiles(account *models.Account, held []string, uploaded map[string]filestorage.StoredFile) error {
	if s.storage == nil {
		return nil
	}

	allowed := make(map[string]struct{}, len(held)+len(uploaded))
	for _, ref := range held {
		allowed[ref] = struct{}{}
	}
	for _, file := range uploaded {
		allowed[file.Path] = struct{}{}
	}

	foreign := func(ref string) bool {
		if ref == "" || !s.storage.Owns(ref) {
			return false
		}
		_, ok := allowed[ref]
		return !ok
	}

	fields := map[string]string{}
	if account.ProfilePhoto != nil && foreign(*account.ProfilePhoto) {
		fields[FieldProfilePhoto] = "profilePhoto must be uploaded or keep the current photo"
	}
	for i, c := range account.Certifications {
		if foreign(c.Image) {
			fields[fmt.Sprintf("certifications[%d].image", i)] = "image must be uploaded or keep a current certification image"
		}
	}
	if len(fields) > 0 {
		return apperrors.NewValidationError("Profile references files that do not belong to it", fields)
	}
	return nil
}

func certificationImages(a *models.Account) []string {
	images := make([]string, len(a.Certifications))
	for i, c := range a.Certifications {
		images[i] = c.Image
	}
	return images
}

// fileRefs collects every stored file the account points at
func fileRefs(a *models.Account) []string {
	var refs []string
	if a.ProfilePhoto != nil && *a.ProfilePhoto != "" {
		refs = append(refs, *a.ProfilePhoto)
	}
	if a.Resume != nil && *a.Resume != "" {
		refs = append(refs, *a.Resume)
	}
	for _, c := range a.Certifications {
		if c.Image != "" {
			refs = append(refs, c.Image)
		}
	}
	return refs
}

// difference returns the members of before missing from after
func difference(before, after []string) []string {
	keep := make(map[string]struct{}, len(after))
	for _, ref := range after {
		keep[ref] = struct{}{}
	}
	var gone []string
	for _, ref := range before {
		if _, ok := keep[ref]; !ok {
			gone = append(gone, ref)
			keep[ref] = struct{}{}
		}
	}
	return gone
}

// isClientError reports errors caused by the request content
func isClientError(err error) bool {
	return errors.Is(err, apperrors.ErrValidationFailed) ||
		errors.Is(err, apperrors.ErrMalformedPayload) ||
		errors.Is(err, apperrors.ErrUploadRejected)
}
