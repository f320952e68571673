package service

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/complaint-portal/internal/domain"
	"github.com/spec-kit/complaint-portal/internal/events"
	"github.com/spec-kit/complaint-portal/internal/persistence"
	"github.com/spec-kit/complaint-portal/internal/repository"
	apperrors "github.com/spec-kit/complaint-portal/pkg/util"
)

const (
	complaintListCacheKey = "complaints:all"
	complaintListCacheTTL = 30 * time.Second
)

// ComplaintService coordinates complaint workflows and enforces the
// status lifecycle. All six directed transitions between the three
// states are permitted; an admin may reopen a resolved complaint.
type ComplaintService struct {
	complaints repository.ComplaintRepository
	cache      *persistence.Redis
	dispatcher events.Dispatcher
}

// ComplaintDependencies bundles requirements for the complaint service.
type ComplaintDependencies struct {
	ComplaintRepo repository.ComplaintRepository
	Cache         *persistence.Redis
	Dispatcher    events.Dispatcher
}

// ComplaintCreateInput describes the complaint creation payload.
type ComplaintCreateInput struct {
	Category string
	Priority domain.ComplaintPriority
	Message  string
}

// ComplaintUpdateInput describes admin mutation of a complaint.
type ComplaintUpdateInput struct {
	Status     *domain.ComplaintStatus
	AdminReply *string
}

// NewComplaintService constructs the service.
func NewComplaintService(deps ComplaintDependencies) *ComplaintService {
	return &ComplaintService{
		complaints: deps.ComplaintRepo,
		cache:      deps.Cache,
		dispatcher: deps.Dispatcher,
	}
}

// Create files a complaint for an approved employee. Employee display
// fields are denormalized onto the record at creation time.
func (s *ComplaintService) Create(ctx context.Context, employee *domain.Employee, input ComplaintCreateInput) (*domain.Complaint, error) {
	if strings.TrimSpace(input.Category) == "" || strings.TrimSpace(input.Message) == "" {
		return nil, apperrors.NewValidationError("category and message required", nil)
	}
	priority := input.Priority
	if priority == "" {
		priority = domain.PriorityMedium
	}
	if !domain.ValidComplaintPriority(priority) {
		return nil, apperrors.NewValidationError("priority must be one of low, medium, high", nil)
	}

	complaint := &domain.Complaint{
		Reference:          uuid.NewString()[:8],
		EmployeeID:         employee.ID,
		EmployeeName:       employee.Name,
		EmployeeEmail:      employee.Email,
		EmployeePhone:      employee.Phone,
		EmployeeDepartment: employee.Department,
		Category:           strings.TrimSpace(input.Category),
		Priority:           priority,
		Message:            strings.TrimSpace(input.Message),
		Status:             domain.ComplaintPending,
		AdminReply:         "",
	}
	if err := s.complaints.Create(ctx, complaint); err != nil {
		return nil, err
	}

	s.invalidateCache(ctx)
	s.publish(ctx, events.EventComplaintCreated, complaint.ID,
		events.Actor{Role: domain.RoleEmployee, EmployeeID: &complaint.EmployeeID},
		events.ComplaintCreatedPayload{
			Reference: complaint.Reference,
			Category:  complaint.Category,
			Priority:  complaint.Priority,
		})
	return complaint, nil
}

// List returns the full complaint set.
func (s *ComplaintService) List(ctx context.Context) ([]domain.Complaint, error) {
	return s.complaints.List(ctx)
}

// ListCached serves the admin listing through the short-lived Redis
// cache, falling back to the database on a miss or cache failure.
func (s *ComplaintService) ListCached(ctx context.Context) ([]domain.Complaint, error) {
	if cached, err := s.cache.GetString(ctx, complaintListCacheKey); err == nil {
		var complaints []domain.Complaint
		if jsonErr := json.Unmarshal([]byte(cached), &complaints); jsonErr == nil {
			return complaints, nil
		}
	}

	complaints, err := s.complaints.List(ctx)
	if err != nil {
		return nil, err
	}
	if encoded, jsonErr := json.Marshal(complaints); jsonErr == nil {
		_ = s.cache.SetString(ctx, complaintListCacheKey, string(encoded), complaintListCacheTTL)
	}
	return complaints, nil
}

// Update applies admin mutation: status and/or reply. Any of the three
// status literals is accepted from any current state; anything else is
// rejected before touching the store.
func (s *ComplaintService) Update(ctx context.Context, id string, input ComplaintUpdateInput) (*domain.Complaint, error) {
	if input.Status == nil && input.AdminReply == nil {
		return nil, apperrors.NewValidationError("nothing to update", nil)
	}
	if input.Status != nil && !domain.ValidComplaintStatus(*input.Status) {
		return nil, apperrors.NewValidationError("status must be one of pending, received, resolved", nil)
	}

	complaint, err := s.complaints.GetByID(ctx, id)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewNotFound("complaint")
		}
		return nil, err
	}

	oldStatus := complaint.Status
	if input.Status != nil {
		complaint.Status = *input.Status
	}
	if input.AdminReply != nil {
		complaint.AdminReply = *input.AdminReply
	}
	if err := s.complaints.Update(ctx, complaint); err != nil {
		return nil, err
	}

	s.invalidateCache(ctx)
	if input.Status != nil && oldStatus != complaint.Status {
		s.publish(ctx, events.EventComplaintStatusChanged, complaint.ID,
			events.Actor{Role: domain.RoleAdmin},
			events.ComplaintStatusChangedPayload{
				OldStatus:  oldStatus,
				NewStatus:  complaint.Status,
				AdminReply: complaint.AdminReply,
			})
	}
	return complaint, nil
}

// Delete removes a single complaint by id.
func (s *ComplaintService) Delete(ctx context.Context, id string) error {
	complaint, err := s.complaints.GetByID(ctx, id)
	if err != nil {
		if err == pgx.ErrNoRows {
			return apperrors.NewNotFound("complaint")
		}
		return err
	}
	if err := s.complaints.Delete(ctx, id); err != nil {
		if err == pgx.ErrNoRows {
			return apperrors.NewNotFound("complaint")
		}
		return err
	}

	s.invalidateCache(ctx)
	s.publish(ctx, events.EventComplaintDeleted, id,
		events.Actor{Role: domain.RoleAdmin},
		events.ComplaintDeletedPayload{Reference: complaint.Reference})
	return nil
}

func (s *ComplaintService) invalidateCache(ctx context.Context) {
	_ = s.cache.Invalidate(ctx, complaintListCacheKey)
}

func (s *ComplaintService) publish(ctx context.Context, eventType events.EventType, subjectID string, actor events.Actor, payload interface{}) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		SubjectID: subjectID,
		Actor:     actor,
		Timestamp: time.Now(),
		Payload:   payload,
	})
}
