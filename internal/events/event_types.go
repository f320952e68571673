package events

import (
	"time"

	"github.com/spec-kit/complaint-portal/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventEmployeeRegistered     EventType = "employee_registered"
	EventApprovalStatusChanged  EventType = "approval_status_changed"
	EventEmployeeDeleted        EventType = "employee_deleted"
	EventComplaintCreated       EventType = "complaint_created"
	EventComplaintStatusChanged EventType = "complaint_status_changed"
	EventComplaintDeleted       EventType = "complaint_deleted"
)

// Actor encapsulates actor metadata for an event. Admin actions carry
// the sentinel admin subject rather than an employee id.
type Actor struct {
	Role       domain.Role `json:"role"`
	EmployeeID *string     `json:"employee_id,omitempty"`
}

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	SubjectID string      `json:"subject_id"`
	Actor     Actor       `json:"actor"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// EmployeeRegisteredPayload payload.
type EmployeeRegisteredPayload struct {
	Phone      string `json:"phone"`
	Name       string `json:"name"`
	Department string `json:"department"`
}

// ApprovalStatusChangedPayload payload.
type ApprovalStatusChangedPayload struct {
	OldStatus domain.ApprovalStatus `json:"old_status"`
	NewStatus domain.ApprovalStatus `json:"new_status"`
}

// EmployeeDeletedPayload payload.
type EmployeeDeletedPayload struct {
	Phone             string `json:"phone"`
	ComplaintsRemoved int64  `json:"complaints_removed"`
}

// ComplaintCreatedPayload payload.
type ComplaintCreatedPayload struct {
	Reference string                   `json:"reference"`
	Category  string                   `json:"category"`
	Priority  domain.ComplaintPriority `json:"priority"`
}

// ComplaintStatusChangedPayload payload.
type ComplaintStatusChangedPayload struct {
	OldStatus  domain.ComplaintStatus `json:"old_status"`
	NewStatus  domain.ComplaintStatus `json:"new_status"`
	AdminReply string                 `json:"admin_reply,omitempty"`
}

// ComplaintDeletedPayload payload.
type ComplaintDeletedPayload struct {
	Reference string `json:"reference"`
	Cascade   bool   `json:"cascade"`
}
