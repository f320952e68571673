package dto

import (
	"time"

	"github.com/spec-kit/complaint-portal/internal/domain"
)

// CreateComplaintRequest payload.
type CreateComplaintRequest struct {
	Category string                   `json:"category"`
	Priority domain.ComplaintPriority `json:"priority"`
	Message  string                   `json:"message"`
}

// UpdateComplaintRequest payload for admin mutation. Omitted fields are
// left unchanged.
type UpdateComplaintRequest struct {
	Status     *domain.ComplaintStatus `json:"status"`
	AdminReply *string                 `json:"admin_reply"`
}

// ComplaintResponse is the complaint projection returned to clients.
type ComplaintResponse struct {
	ID                 string                   `json:"id"`
	Reference          string                   `json:"reference"`
	EmployeeID         string                   `json:"employee_id"`
	EmployeeName       string                   `json:"employee_name"`
	EmployeeEmail      string                   `json:"employee_email"`
	EmployeePhone      string                   `json:"employee_phone"`
	EmployeeDepartment string                   `json:"employee_department"`
	Category           string                   `json:"category"`
	Priority           domain.ComplaintPriority `json:"priority"`
	Message            string                   `json:"message"`
	Status             domain.ComplaintStatus   `json:"status"`
	AdminReply         string                   `json:"admin_reply"`
	CreatedAt          time.Time                `json:"created_at"`
	UpdatedAt          time.Time                `json:"updated_at"`
}

// ComplaintFromDomain maps a domain complaint to its response shape.
func ComplaintFromDomain(c *domain.Complaint) ComplaintResponse {
	return ComplaintResponse{
		ID:                 c.ID,
		Reference:          c.Reference,
		EmployeeID:         c.EmployeeID,
		EmployeeName:       c.EmployeeName,
		EmployeeEmail:      c.EmployeeEmail,
		EmployeePhone:      c.EmployeePhone,
		EmployeeDepartment: c.EmployeeDepartment,
		Category:           c.Category,
		Priority:           c.Priority,
		Message:            c.Message,
		Status:             c.Status,
		AdminReply:         c.AdminReply,
		CreatedAt:          c.CreatedAt,
		UpdatedAt:          c.UpdatedAt,
	}
}

// ComplaintsFromDomain maps a complaint slice.
func ComplaintsFromDomain(complaints []domain.Complaint) []ComplaintResponse {
	items := make([]ComplaintResponse, 0, len(complaints))
	for i := range complaints {
		items = append(items, ComplaintFromDomain(&complaints[i]))
	}
	return items
}
