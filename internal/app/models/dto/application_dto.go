package dto

import (
	"time"

	"github.com/campusconnect/placement-api/internal/app/models"
)

// ApplyRequest holds the text fields of the multipart application form
type ApplyRequest struct {
	JobID    string `form:"jobId" binding:"required" example:"7d4f..."`
	FullName string `form:"fullName" binding:"max=100"`
	Email    string `form:"email" binding:"omitempty,email"`
	Phone    string `form:"phone" binding:"omitempty,phone"`
}

// ApplicationResponse wraps a single application
type ApplicationResponse struct {
	Success     bool                `json:"success" example:"true"`
	Message     string              `json:"message" example:"Application submitted successfully"`
	Application *models.Application `json:"application"`
}

// ApplicantSummary is the student part of a per-job listing
type ApplicantSummary struct {
	ID       string `json:"id"`
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	MobileNo string `json:"mobileNo"`
}

// MyApplicationItem is one row of the student's own applications
type MyApplicationItem struct {
	ID        string      `json:"id"`
	Job       *JobSummary `json:"job"`
	FullName  string      `json:"fullName"`
	Email     string      `json:"email"`
	Phone     string      `json:"phone"`
	Resume    string      `json:"resume"`
	AppliedAt time.Time   `json:"appliedAt"`
}

// JobApplicationItem is one row of an admin's per-job listing
type JobApplicationItem struct {
	ID        string            `json:"id"`
	Applicant *ApplicantSummary `json:"applicant"`
	FullName  string            `json:"fullName"`
	Email     string            `json:"email"`
	Phone     string            `json:"phone"`
	Resume    string            `json:"resume"`
	AppliedAt time.Time         `json:"appliedAt"`
}

// MyApplicationsResponse lists the caller's applications
type MyApplicationsResponse struct {
	Success bool                `json:"success" example:"true"`
	Items   []MyApplicationItem `json:"items"`
}

// JobApplicationsResponse lists applications for one posting
type JobApplicationsResponse struct {
	Success bool                 `json:"success" example:"true"`
	Items   []JobApplicationItem `json:"items"`
}
