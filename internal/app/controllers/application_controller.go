package controllers

import (
	"net/http"

	"github.com/campusconnect/placement-api/internal/app/models/dto"
	"github.com/campusconnect/placement-api/internal/app/services"
	"github.com/campusconnect/placement-api/internal/middleware"
	"github.com/campusconnect/placement-api/internal/pkg/apperrors"
	"github.com/campusconnect/placement-api/internal/pkg/filestorage"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// ApplicationController handles job applications
type ApplicationController struct {
	applicationService services.ApplicationService
	uploads            *uploadHandler
	logger             zerolog.Logger
}

// NewApplicationController creates a new ApplicationController
func NewApplicationController(
	applicationService services.ApplicationService,
	storage filestorage.FileStorage,
	uploadConfig UploadConfig,
	logger zerolog.Logger,
) *ApplicationController {
	return &ApplicationController{
		applicationService: applicationService,
		uploads:            newUploadHandler(storage, uploadConfig, logger),
		logger:             logger,
	}
}

// Apply submits an application with a resume
// @Summary Apply to a job
// @Description Multipart form. Blank applicant fields default to the caller's profile.
// @Tags applications
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param jobId formData string true "Job ID"
// @Param fullName formData string false "Applicant name"
// @Param email formData string false "Contact email"
// @Param phone formData string false "Contact phone"
// @Param resume formData file true "Resume (pdf, doc, docx)"
// @Success 201 {object} dto.ApplicationResponse
// @Failure 400 {object} dto.ErrorResponse "Validation error or rejected upload"
// @Failure 403 {object} dto.ErrorResponse "Job not approved, expired, or caller is not a student"
// @Failure 404 {object} dto.ErrorResponse "Job not found"
// @Failure 409 {object} dto.ErrorResponse "Already applied to this job"
// @Router /applications [post]
func (c *ApplicationController) Apply(ctx *gin.Context) {
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

	var req dto.ApplyRequest
	if !middleware.BindForm(ctx, &req) {
		return
	}

	uploaded, err := c.uploads.store(ctx.Request.Context(), form, singlePolicy(services.FieldResume, filestorage.KindResume))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	var resume *filestorage.StoredFile
	if f, ok := uploaded[services.FieldResume]; ok {
		resume = &f
	}

	application, err := c.applicationService.Apply(ctx.Request.Context(), principal.UserID, principal.Role, services.ApplyInput{
		JobID:    req.JobID,
		FullName: req.FullName,
		Email:    req.Email,
		Phone:    req.Phone,
	}, resume)
	if err != nil {
		c.uploads.discard(ctx.Request.Context(), uploaded)
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ApplicationResponse{
		Success:     true,
		Message:     "Application submitted successfully",
		Application: application,
	})
}

// ListMine returns the caller's applications
// @Summary My applications
// @Tags applications
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.MyApplicationsResponse
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Router /applications/my-applications [get]
func (c *ApplicationController) ListMine(ctx *gin.Context) {
	principal, ok := middleware.CurrentPrincipal(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.ErrUnauthorized)
		return
	}

	items, err := c.applicationService.ListMine(ctx.Request.Context(), principal.UserID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MyApplicationsResponse{Success: true, Items: items})
}

// ListForJob returns every application to one posting
// @Summary Applications for a job
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param jobId path string true "Job ID"
// @Success 200 {object} dto.JobApplicationsResponse
// @Failure 403 {object} dto.ErrorResponse "Access denied"
// @Failure 404 {object} dto.ErrorResponse "Job not found"
// @Router /applications/job/{jobId} [get]
// @Router /applications/{jobId} [get]
func (c *ApplicationController) ListForJob(ctx *gin.Context) {
	items, err := c.applicationService.ListForJob(ctx.Request.Context(), ctx.Param("jobId"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.JobApplicationsResponse{Success: true, Items: items})
}
