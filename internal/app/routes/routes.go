package routes

import (
	"net/http"

	"github.com/campusconnect/placement-api/internal/app/controllers"
	"github.com/campusconnect/placement-api/internal/app/models"
	"github.com/campusconnect/placement-api/internal/middleware"
	"github.com/gin-gonic/gin"
)

// Controllers groups the handlers mounted by SetupRouter
type Controllers struct {
	Auth         *controllers.AuthController
	Profile      *controllers.ProfileController
	Jobs         *controllers.JobController
	Admin        *controllers.AdminController
	Applications *controllers.ApplicationController
	Files        *controllers.FileController
}

// SetupRouter configures all application routes
func SetupRouter(router *gin.Engine, c Controllers, authMiddleware *middleware.AuthMiddleware) {
	// Health check endpoint (public)
	router.GET("/ping", func(ctx *gin.Context) {
		ctx.String(http.StatusOK, "pong")
	})

	// Stored uploads are public, like the links embedded in profiles
	router.GET("/uploads/*filepath", c.Files.Serve)

	api := router.Group("/api")
	api.GET("/uploads/*filepath", c.Files.Serve)

	// --- Public Auth routes ---
	auth := api.Group("/auth")
	{
		auth.POST("/register", c.Auth.Register)
		auth.POST("/login", c.Auth.Login)
		auth.GET("/me", authMiddleware.JWTAuth(), c.Auth.Me)
	}

	// --- Authenticated Routes Group ---
	authenticated := api.Group("")
	authenticated.Use(authMiddleware.JWTAuth())

	profile := authenticated.Group("/profile")
	{
		profile.GET("/me", c.Profile.GetMyProfile)
		profile.PUT("/complete", c.Profile.CompleteProfile)
		profile.POST("/update", c.Profile.UpdateProfile)
		profile.POST("/upload-photo", c.Profile.UploadPhoto)
		profile.POST("/upload-resume", c.Profile.UploadResume)
	}

	jobs := authenticated.Group("/jobs")
	{
		jobs.GET("", c.Jobs.ListJobs)
		jobs.GET("/:id", c.Jobs.GetJob)
	}

	applications := authenticated.Group("/applications")
	{
		applications.POST("", authMiddleware.RoleRequired(models.RoleStudent), c.Applications.Apply)
		applications.GET("/my-applications", c.Applications.ListMine)
		applications.GET("/job/:jobId", authMiddleware.RoleRequired(models.RoleAdmin), c.Applications.ListForJob)
		// older admin dashboards call the listing without the /job segment
		applications.GET("/:jobId", authMiddleware.RoleRequired(models.RoleAdmin), c.Applications.ListForJob)
	}

	// Admin-only routes
	admin := authenticated.Group("/admin")
	admin.Use(authMiddleware.RoleRequired(models.RoleAdmin))
	{
		admin.POST("/jobs", c.Jobs.CreateJob)
		admin.PATCH("/jobs/:id/status", c.Jobs.UpdateJobStatus)
		admin.GET("/students", c.Admin.ListStudents)
	}
}
