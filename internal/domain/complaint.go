package domain

import "time"

// ComplaintStatus enumerates complaint lifecycle states. All transitions
// between the three states are permitted; an admin may reopen a resolved
// complaint.
type ComplaintStatus string

const (
	ComplaintPending  ComplaintStatus = "pending"
	ComplaintReceived ComplaintStatus = "received"
	ComplaintResolved ComplaintStatus = "resolved"
)

// ValidComplaintStatus reports whether s is one of the three known states.
func ValidComplaintStatus(s ComplaintStatus) bool {
	switch s {
	case ComplaintPending, ComplaintReceived, ComplaintResolved:
		return true
	}
	return false
}

// ComplaintPriority enumerates urgency levels.
type ComplaintPriority string

const (
	PriorityLow    ComplaintPriority = "low"
	PriorityMedium ComplaintPriority = "medium"
	PriorityHigh   ComplaintPriority = "high"
)

// ValidComplaintPriority reports whether p is a known priority.
func ValidComplaintPriority(p ComplaintPriority) bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// Complaint is the aggregate for employee complaints. Employee display
// fields are denormalized at creation time so the complaint renders
// stably even if the owning account later changes or is removed.
type Complaint struct {
	ID                 string
	Reference          string
	EmployeeID         string
	EmployeeName       string
	EmployeeEmail      string
	EmployeePhone      string
	EmployeeDepartment string
	Category           string
	Priority           ComplaintPriority
	Message            string
	Status             ComplaintStatus
	AdminReply         string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}
