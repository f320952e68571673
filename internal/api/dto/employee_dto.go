package dto

import (
	"time"

	"github.com/spec-kit/complaint-portal/internal/domain"
)

// RegisterRequest payload for new employee accounts.
type RegisterRequest struct {
	Phone        string `json:"phone"`
	Name         string `json:"name"`
	Password     string `json:"password"`
	Department   string `json:"department"`
	WorkLocation string `json:"work_location"`
}

// LoginRequest payload for employee login.
type LoginRequest struct {
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

// AdminLoginRequest payload for admin login.
type AdminLoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// AuthResponse standard response for auth endpoints.
type AuthResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// EmployeeResponse is the account projection returned to clients. The
// password hash is never part of it.
type EmployeeResponse struct {
	ID             string                `json:"id"`
	Phone          string                `json:"phone"`
	Name           string                `json:"name"`
	Email          string                `json:"email"`
	Department     string                `json:"department"`
	WorkLocation   string                `json:"work_location"`
	Role           domain.Role           `json:"role"`
	ApprovalStatus domain.ApprovalStatus `json:"approval_status"`
	CreatedAt      time.Time             `json:"created_at"`
	UpdatedAt      time.Time             `json:"updated_at"`
}

// UpdateApprovalRequest payload for admin approval transitions.
type UpdateApprovalRequest struct {
	Status domain.ApprovalStatus `json:"status"`
}

// EmployeeFromDomain maps a domain employee to its response shape.
func EmployeeFromDomain(e *domain.Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:             e.ID,
		Phone:          e.Phone,
		Name:           e.Name,
		Email:          e.Email,
		Department:     e.Department,
		WorkLocation:   e.WorkLocation,
		Role:           e.Role,
		ApprovalStatus: e.ApprovalStatus,
		CreatedAt:      e.CreatedAt,
		UpdatedAt:      e.UpdatedAt,
	}
}
