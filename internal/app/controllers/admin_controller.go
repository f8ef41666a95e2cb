package controllers

import (
	"net/http"

	"github.com/campusconnect/placement-api/internal/app/models/dto"
	"github.com/campusconnect/placement-api/internal/app/services"
	"github.com/campusconnect/placement-api/internal/middleware"
	"github.com/campusconnect/placement-api/internal/pkg/helpers"
	"github.com/gin-gonic/gin"
)

// AdminController serves placement cell listings
type AdminController struct {
	profileService services.ProfileService
}

// NewAdminController creates a new AdminController
func NewAdminController(profileService services.ProfileService) *AdminController {
	return &AdminController{profileService: profileService}
}

// ListStudents returns a page of registered students
// @Summary List students
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Page size" default(20)
// @Success 200 {object} dto.StudentListResponse
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Access denied"
// @Router /admin/students [get]
func (c *AdminController) ListStudents(ctx *gin.Context) {
	page := helpers.ParsePaginationParams(ctx)

	students, pagination, err := c.profileService.ListStudents(ctx.Request.Context(), page)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.StudentListResponse{
		Success:    true,
		Items:      students,
		Pagination: pagination,
	})
}
