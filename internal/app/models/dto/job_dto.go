package dto

import "github.com/campusconnect/placement-api/internal/app/models"

// CreateJobRequest is the admin payload for a new posting
type CreateJobRequest struct {
	CompanyName  string   `json:"companyName" binding:"required,max=200" example:"Acme Corp"`
	Profiles     []string `json:"profiles" binding:"required,min=1,dive,required,max=100" example:"Software Engineer"`
	CtcOrStipend string   `json:"ctcOrStipend" binding:"max=100" example:"12 LPA"`
	Location     string   `json:"location" binding:"max=200" example:"Bengaluru"`
	OfferType    string   `json:"offerType" binding:"max=50" example:"Full Time"`
	Description  string   `json:"description" binding:"max=5000"`
	ExpiryDate   string   `json:"expiryDate" example:"2026-12-31"`
}

// UpdateJobStatusRequest moves a posting through moderation
type UpdateJobStatusRequest struct {
	Status models.JobStatus `json:"status" binding:"required,oneof=pending approved rejected" example:"approved"`
}

// JobResponse wraps a single posting
type JobResponse struct {
	Success bool               `json:"success" example:"true"`
	Message string             `json:"message,omitempty"`
	Job     *models.JobPosting `json:"job"`
}

// JobListResponse is a page of postings
type JobListResponse struct {
	Success    bool                `json:"success" example:"true"`
	Items      []models.JobPosting `json:"items"`
	Pagination PaginationInfo      `json:"pagination"`
}

// JobSummary is the job part of an application listing
type JobSummary struct {
	ID           string   `json:"id"`
	CompanyName  string   `json:"companyName"`
	Profiles     []string `json:"profiles"`
	CtcOrStipend string   `json:"ctcOrStipend"`
	Location     string   `json:"location"`
	OfferType    string   `json:"offerType"`
}

// NewJobSummary converts a posting to its summary
func NewJobSummary(j *models.JobPosting) *JobSummary {
	if j == nil {
		return nil
	}
	return &JobSummary{
		ID:           j.ID,
		CompanyName:  j.CompanyName,
		Profiles:     j.Profiles,
		CtcOrStipend: j.CtcOrStipend,
		Location:     j.Location,
		OfferType:    j.OfferType,
	}
}
