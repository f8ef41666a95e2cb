package controllers

import (
	"context"
	"net/http"

	"github.com/campusconnect/placement-api/internal/app/models/dto"
	"github.com/campusconnect/placement-api/internal/app/services"
	"github.com/campusconnect/placement-api/internal/middleware"
	"github.com/campusconnect/placement-api/internal/pkg/apperrors"
	"github.com/campusconnect/placement-api/internal/pkg/filestorage"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// ProfileController handles the caller's own profile
type ProfileController struct {
	profileService services.ProfileService
	uploads        *uploadHandler
	logger         zerolog.Logger
}

// NewProfileController creates a new ProfileController
func NewProfileController(
	profileService services.ProfileService,
	storage filestorage.FileStorage,
	uploadConfig UploadConfig,
	logger zerolog.Logger,
) *ProfileController {
	return &ProfileController{
		profileService: profileService,
		uploads:        newUploadHandler(storage, uploadConfig, logger),
		logger:         logger,
	}
}

// GetMyProfile returns the caller's profile
// @Summary Get my profile
// @Description Returns the full profile of the authenticated caller with defaults for unset fields
// @Tags profile
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.ProfileResponse
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Router /profile/me [get]
func (c *ProfileController) GetMyProfile(ctx *gin.Context) {
	principal, ok := middleware.CurrentPrincipal(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.ErrUnauthorized)
		return
	}

	profile, err := c.profileService.GetProfile(ctx.Request.Context(), principal.UserID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, profile)
}

// CompleteProfile handles the first full profile submission
// @Summary Complete profile
// @Description Multipart profile form. Structured fields (education, experience, certifications, skills) are JSON text.
// @Tags profile
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param education formData string false "Education JSON"
// @Param experience formData string false "Experience JSON (object or array)"
// @Param certifications formData string false "Certifications JSON array"
// @Param skills formData string false "Skills JSON array"
// @Param profilePhoto formData file false "Profile photo"
// @Param resume formData file false "Resume (pdf, doc, docx)"
// @Success 200 {object} dto.ProfileWriteResponse
// @Failure 400 {object} dto.ErrorResponse "Validation, malformed payload or rejected upload"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /profile/complete [put]
func (c *ProfileController) CompleteProfile(ctx *gin.Context) {
	c.writeProfile(ctx, services.ProfileModeComplete)
}

// UpdateProfile handles later partial profile edits
// @Summary Update profile
// @Description Same form as complete; only the submitted fields change.
// @Tags profile
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param profilePhoto formData file false "Profile photo"
// @Param resume formData file false "Resume (pdf, doc, docx)"
// @Success 200 {object} dto.ProfileWriteResponse
// @Failure 400 {object} dto.ErrorResponse "Validation, malformed payload or rejected upload"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /profile/update [post]
func (c *ProfileController) UpdateProfile(ctx *gin.Context) {
	c.writeProfile(ctx, services.ProfileModeUpdate)
}

func (c *ProfileController) writeProfile(ctx *gin.Context, mode services.ProfileMode) {
	principal, ok := middleware.CurrentPrincipal(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.ErrUnauthorized)
		return
	}

	form, err := c.uploads.parseForm(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	uploaded, err := c.uploads.store(ctx.Request.Context(), form, c.uploads.profilePolicy())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	profile, err := c.profileService.ApplyProfileUpdate(ctx.Request.Context(), principal.UserID, services.ProfileUpdateInput{
		RawFields: rawFields(form),
		Uploaded:  uploaded,
	}, mode)
	if err != nil {
		c.uploads.discard(ctx.Request.Context(), uploaded)
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ProfileWriteResponse{
		Success: true,
		Message: mode.SuccessMessage(),
		User:    profile,
	})
}

// UploadPhoto replaces the profile photo
// @Summary Upload profile photo
// @Tags profile
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param profilePhoto formData file true "Image file"
// @Success 200 {object} dto.PhotoUploadResponse
// @Failure 400 {object} dto.ErrorResponse "Missing or rejected file"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Router /profile/upload-photo [post]
func (c *ProfileController) UploadPhoto(ctx *gin.Context) {
	ref, ok := c.uploadSingle(ctx, services.FieldProfilePhoto, filestorage.KindImage, c.profileService.UploadProfilePhoto)
	if !ok {
		return
	}
	ctx.JSON(http.StatusOK, dto.PhotoUploadResponse{
		Success:      true,
		Message:      "Profile photo uploaded successfully",
		ProfilePhoto: ref,
	})
}

// UploadResume replaces the profile resume
// @Summary Upload resume
// @Tags profile
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param resume formData file true "Resume (pdf, doc, docx)"
// @Success 200 {object} dto.ResumeUploadResponse
// @Failure 400 {object} dto.ErrorResponse "Missing or rejected file"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Router /profile/upload-resume [post]
func (c *ProfileController) UploadResume(ctx *gin.Context) {
	ref, ok := c.uploadSingle(ctx, services.FieldResume, filestorage.KindResume, c.profileService.UploadResume)
	if !ok {
		return
	}
	ctx.JSON(http.StatusOK, dto.ResumeUploadResponse{
		Success: true,
		Message: "Resume uploaded successfully",
		Resume:  ref,
	})
}

type attachFunc func(ctx context.Context, accountID string, file filestorage.StoredFile) (string, error)

func (c *ProfileController) uploadSingle(ctx *gin.Context, field string, kind filestorage.Kind, attach attachFunc) (string, bool) {
	principal, ok := middleware.CurrentPrincipal(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.ErrUnauthorized)
		return "", false
	}

	form, err := c.uploads.parseForm(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return "", false
	}

	uploaded, err := c.uploads.store(ctx.Request.Context(), form, singlePolicy(field, kind))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return "", false
	}
	file, ok := uploaded[field]
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.NewValidationError("No file uploaded", map[string]string{
			field: field + " is required",
		}))
		return "", false
	}

	ref, err := attach(ctx.Request.Context(), principal.UserID, file)
	if err != nil {
		c.uploads.discard(ctx.Request.Context(), uploaded)
		middleware.HandleAPIError(ctx, err)
		return "", false
	}
	return ref, true
}
