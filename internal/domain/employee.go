package domain

import "time"

// ApprovalStatus gates whether an employee account may obtain a session.
type ApprovalStatus string

const (
	ApprovalPending  ApprovalStatus = "pending"
	ApprovalApproved ApprovalStatus = "approved"
	ApprovalRejected ApprovalStatus = "rejected"
)

// ValidApprovalStatus reports whether s is one of the three known states.
func ValidApprovalStatus(s ApprovalStatus) bool {
	switch s {
	case ApprovalPending, ApprovalApproved, ApprovalRejected:
		return true
	}
	return false
}

// Employee is the domain model for registered employees. The phone number
// is the unique external identity; Email is a generated placeholder.
type Employee struct {
	ID             string
	Phone          string
	Name           string
	Email          string
	PasswordHash   string
	Department     string
	WorkLocation   string
	Role           Role
	ApprovalStatus ApprovalStatus
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
