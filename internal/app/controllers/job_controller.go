package controllers

import (
	"net/http"

	"github.com/campusconnect/placement-api/internal/app/models"
	"github.com/campusconnect/placement-api/internal/app/models/dto"
	"github.com/campusconnect/placement-api/internal/app/services"
	"github.com/campusconnect/placement-api/internal/middleware"
	"github.com/campusconnect/placement-api/internal/pkg/apperrors"
	"github.com/campusconnect/placement-api/internal/pkg/helpers"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// JobController handles job posting endpoints
type JobController struct {
	jobService services.JobService
	logger     zerolog.Logger
}

// NewJobController creates a new JobController
func NewJobController(jobService services.JobService, logger zerolog.Logger) *JobController {
	return &JobController{
		jobService: jobService,
		logger:     logger,
	}
}

// ListJobs returns a page of postings visible to the caller
// @Summary List jobs
// @Description Students see approved postings that have not expired. Admins see all postings and may filter by status.
// @Tags jobs
// @Produce json
// @Security BearerAuth
// @Param status query string false "Status filter (admins only)" Enums(pending, approved, rejected)
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Page size" default(20)
// @Success 200 {object} dto.JobListResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid status"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Router /jobs [get]
func (c *JobController) ListJobs(ctx *gin.Context) {
	principal, ok := middleware.CurrentPrincipal(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.ErrUnauthorized)
		return
	}

	var status *models.JobStatus
	if raw := ctx.Query("status"); raw != "" {
		s := models.JobStatus(raw)
		if !s.Valid() {
			middleware.HandleAPIError(ctx, apperrors.NewValidationError("Invalid status filter", map[string]string{
				"status": "status must be one of: pending approved rejected",
			}))
			return
		}
		status = &s
	}

	page := helpers.ParsePaginationParams(ctx)
	jobs, pagination, err := c.jobService.ListJobs(ctx.Request.Context(), principal.Role, status, page)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.JobListResponse{
		Success:    true,
		Items:      jobs,
		Pagination: pagination,
	})
}

// GetJob returns one posting
// @Summary Get job
// @Tags jobs
// @Produce json
// @Security BearerAuth
// @Param id path string true "Job ID"
// @Success 200 {object} dto.JobResponse
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Job not found"
// @Router /jobs/{id} [get]
func (c *JobController) GetJob(ctx *gin.Context) {
	principal, ok := middleware.CurrentPrincipal(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.ErrUnauthorized)
		return
	}

	job, err := c.jobService.GetJob(ctx.Request.Context(), principal.Role, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.JobResponse{Success: true, Job: job})
}

// CreateJob publishes a new posting awaiting moderation
// @Summary Create job
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateJobRequest true "Job posting"
// @Success 201 {object} dto.JobResponse
// @Failure 400 {object} dto.ErrorResponse "Validation error"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Access denied"
// @Router /admin/jobs [post]
func (c *JobController) CreateJob(ctx *gin.Context) {
	principal, ok := middleware.CurrentPrincipal(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.ErrUnauthorized)
		return
	}

	var req dto.CreateJobRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	job, err := c.jobService.CreateJob(ctx.Request.Context(), principal.UserID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.JobResponse{
		Success: true,
		Message: "Job created successfully",
		Job:     job,
	})
}

// UpdateJobStatus moderates a posting
// @Summary Update job status
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Job ID"
// @Param request body dto.UpdateJobStatusRequest true "New status"
// @Success 200 {object} dto.JobResponse
// @Failure 400 {object} dto.ErrorResponse "Validation error"
// @Failure 403 {object} dto.ErrorResponse "Access denied"
// @Failure 404 {object} dto.ErrorResponse "Job not found"
// @Router /admin/jobs/{id}/status [patch]
func (c *JobController) UpdateJobStatus(ctx *gin.Context) {
	principal, ok := middleware.CurrentPrincipal(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.ErrUnauthorized)
		return
	}

	var req dto.UpdateJobStatusRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	job, err := c.jobService.UpdateJobStatus(ctx.Request.Context(), principal.UserID, ctx.Param("id"), req.Status)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.JobResponse{
		Success: true,
		Message: "Job status updated successfully",
		Job:     job,
	})
}
