package dto

import "github.com/campusconnect/placement-api/internal/app/models"

// LoginRequest represents login credentials
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"student@college.edu"`
	Password string `json:"password" binding:"required" example:"secret123"`
}

// RegisterRequest represents a student registration
type RegisterRequest struct {
	FullName string `json:"fullName" binding:"required,max=100" example:"Asha Verma"`
	RollNo   string `json:"rollNo" binding:"required,max=50" example:"21CS042"`
	Email    string `json:"email" binding:"required,email,max=255" example:"asha@college.edu"`
	Password string `json:"password" binding:"required,min=6,max=72" example:"secret123"`
}

// AuthUser is the account summary returned with tokens
type AuthUser struct {
	ID       string          `json:"id"`
	Email    string          `json:"email"`
	Role     models.RoleType `json:"role" enums:"student,admin"`
	FullName string          `json:"fullName"`
	RollNo   string          `json:"rollNo"`
}

// AuthResponse represents a successful registration or login
type AuthResponse struct {
	Success   bool      `json:"success" example:"true"`
	Message   string    `json:"message" example:"Login successful"`
	Token     string    `json:"token"`
	TokenType string    `json:"tokenType" example:"Bearer"`
	ExpiresIn int       `json:"expiresIn" example:"604800"`
	User      *AuthUser `json:"user,omitempty"`
}

// NewAuthUser converts an account to its token summary
func NewAuthUser(a *models.Account) *AuthUser {
	if a == nil {
		return nil
	}
	return &AuthUser{
		ID:       a.ID,
		Email:    a.Email,
		Role:     a.Role,
		FullName: a.FullName,
		RollNo:   a.RollNo,
	}
}
