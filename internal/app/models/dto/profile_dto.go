package dto

import (
	"time"

	"github.com/campusconnect/placement-api/internal/app/models"
)

// ProfileResponse is the profile document with every optional field defaulted
type ProfileResponse struct {
	ID               string                 `json:"id"`
	Email            string                 `json:"email"`
	Role             models.RoleType        `json:"role"`
	RollNo           string                 `json:"rollNo"`
	FullName         string                 `json:"fullName"`
	MobileNo         string                 `json:"mobileNo"`
	WhatsappNo       string                 `json:"whatsappNo"`
	MailID           string                 `json:"mailId"`
	FatherName       string                 `json:"fatherName"`
	FatherNumber     string                 `json:"fatherNumber"`
	School           string                 `json:"school"`
	ExistingBacklogs string                 `json:"existingBacklogs"`
	AreaOfInterest   string                 `json:"areaOfInterest"`
	ReadyToRelocate  bool                   `json:"readyToRelocate"`
	Education        models.Education       `json:"education"`
	Certifications   []models.Certification `json:"certifications"`
	Skills           []string               `json:"skills"`
	Experience       []models.Experience    `json:"experience"`
	ProfilePhoto     *string                `json:"profilePhoto"`
	Resume           *string                `json:"resume"`
	CreatedAt        time.Time              `json:"createdAt"`
	UpdatedAt        time.Time              `json:"updatedAt"`
}

// NewProfileResponse shapes an account for the profile endpoints. Defaults are
// applied to the response only and are never written back.
func NewProfileResponse(a *models.Account) ProfileResponse {
	resp := ProfileResponse{
		ID:               a.ID,
		Email:            a.Email,
		Role:             a.Role,
		RollNo:           a.RollNo,
		FullName:         a.FullName,
		MobileNo:         a.MobileNo,
		WhatsappNo:       a.WhatsappNo,
		MailID:           a.MailID,
		FatherName:       a.FatherName,
		FatherNumber:     a.FatherNumber,
		School:           a.School,
		ExistingBacklogs: a.ExistingBacklogs,
		AreaOfInterest:   a.AreaOfInterest,
		ReadyToRelocate:  a.ReadyToRelocate,
		Certifications:   []models.Certification{},
		Skills:           []string{},
		Experience:       []models.Experience{models.NoExperience()},
		ProfilePhoto:     nonEmpty(a.ProfilePhoto),
		Resume:           nonEmpty(a.Resume),
		CreatedAt:        a.CreatedAt,
		UpdatedAt:        a.UpdatedAt,
	}

	if a.Education != nil {
		resp.Education = *a.Education
	}
	if len(a.Certifications) > 0 {
		resp.Certifications = append(resp.Certifications, a.Certifications...)
	}
	if len(a.Skills) > 0 {
		resp.Skills = append(resp.Skills, a.Skills...)
	}
	if len(a.Experience) > 0 {
		resp.Experience = append([]models.Experience(nil), a.Experience...)
	}

	return resp
}

func nonEmpty(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	v := *s
	return &v
}

// ProfileWriteResponse is returned by the complete and update endpoints
type ProfileWriteResponse struct {
	Success bool             `json:"success" example:"true"`
	Message string           `json:"message" example:"Profile updated successfully"`
	User    *ProfileResponse `json:"user"`
}

// PhotoUploadResponse is returned by the direct photo upload
type PhotoUploadResponse struct {
	Success      bool   `json:"success" example:"true"`
	Message      string `json:"message" example:"Profile photo uploaded successfully"`
	ProfilePhoto string `json:"profilePhoto" example:"/uploads/4f1c...jpg"`
}

// ResumeUploadResponse is returned by the direct resume upload
type ResumeUploadResponse struct {
	Success bool   `json:"success" example:"true"`
	Message string `json:"message" example:"Resume uploaded successfully"`
	Resume  string `json:"resume" example:"/uploads/9b2e...pdf"`
}

// StudentSummary is a row of the admin student listing
type StudentSummary struct {
	ID              string    `json:"id"`
	FullName        string    `json:"fullName"`
	Email           string    `json:"email"`
	RollNo          string    `json:"rollNo"`
	MobileNo        string    `json:"mobileNo"`
	AreaOfInterest  string    `json:"areaOfInterest"`
	ReadyToRelocate bool      `json:"readyToRelocate"`
	HasResume       bool      `json:"hasResume"`
	CreatedAt       time.Time `json:"createdAt"`
}

// NewStudentSummary converts an account to a listing row
func NewStudentSummary(a *models.Account) StudentSummary {
	return StudentSummary{
		ID:              a.ID,
		FullName:        a.FullName,
		Email:           a.Email,
		RollNo:          a.RollNo,
		MobileNo:        a.MobileNo,
		AreaOfInterest:  a.AreaOfInterest,
		ReadyToRelocate: a.ReadyToRelocate,
		HasResume:       a.Resume != nil && *a.Resume != "",
		CreatedAt:       a.CreatedAt,
	}
}

// StudentListResponse is a page of students
type StudentListResponse struct {
	Success    bool             `json:"success" example:"true"`
	Items      []StudentSummary `json:"items"`
	Pagination PaginationInfo   `json:"pagination"`
}
