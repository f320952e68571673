package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/complaint-portal/internal/domain"
	"github.com/spec-kit/complaint-portal/internal/events"
	"github.com/spec-kit/complaint-portal/internal/persistence"
	"github.com/spec-kit/complaint-portal/internal/repository"
	apperrors "github.com/spec-kit/complaint-portal/pkg/util"
)

// AccountService covers admin-side account management: listing,
// approval transitions and cascading deletion.
type AccountService struct {
	employees  repository.EmployeeRepository
	complaints repository.ComplaintRepository
	cache      *persistence.Redis
	dispatcher events.Dispatcher
}

// AccountDependencies bundles requirements for the account service.
type AccountDependencies struct {
	EmployeeRepo  repository.EmployeeRepository
	ComplaintRepo repository.ComplaintRepository
	Cache         *persistence.Redis
	Dispatcher    events.Dispatcher
}

// NewAccountService constructs the service.
func NewAccountService(deps AccountDependencies) *AccountService {
	return &AccountService{
		employees:  deps.EmployeeRepo,
		complaints: deps.ComplaintRepo,
		cache:      deps.Cache,
		dispatcher: deps.Dispatcher,
	}
}

// List returns all accounts. Repository listings never include the
// password hash.
func (s *AccountService) List(ctx context.Context) ([]domain.Employee, error) {
	return s.employees.List(ctx)
}

// ListPending returns accounts awaiting review.
func (s *AccountService) ListPending(ctx context.Context) ([]domain.Employee, error) {
	return s.employees.ListByApprovalStatus(ctx, domain.ApprovalPending)
}

// SetApprovalStatus moves an account to any of the three approval
// states. Transitions are unordered: an approved account may be
// rejected and vice versa, taking effect on the account's next request.
func (s *AccountService) SetApprovalStatus(ctx context.Context, id string, status domain.ApprovalStatus) (*domain.Employee, error) {
	if !domain.ValidApprovalStatus(status) {
		return nil, apperrors.NewValidationError("status must be one of pending, approved, rejected", nil)
	}

	employee, err := s.employees.GetByID(ctx, id)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewNotFound("employee")
		}
		return nil, err
	}

	oldStatus := employee.ApprovalStatus
	if err := s.employees.UpdateApprovalStatus(ctx, id, status); err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewNotFound("employee")
		}
		return nil, err
	}
	employee.ApprovalStatus = status

	if oldStatus != status {
		s.publish(ctx, events.EventApprovalStatusChanged, id, events.ApprovalStatusChangedPayload{
			OldStatus: oldStatus,
			NewStatus: status,
		})
	}
	return employee, nil
}

// DeleteCascade removes an account and then every complaint it owns.
// The two phases are not atomic: a crash between them leaves orphaned
// complaints, an accepted risk in this low-write-concurrency domain.
func (s *AccountService) DeleteCascade(ctx context.Context, id string) error {
	employee, err := s.employees.GetByID(ctx, id)
	if err != nil {
		if err == pgx.ErrNoRows {
			return apperrors.NewNotFound("employee")
		}
		return err
	}

	if err := s.employees.Delete(ctx, id); err != nil {
		if err == pgx.ErrNoRows {
			return apperrors.NewNotFound("employee")
		}
		return err
	}

	removed, err := s.complaints.DeleteByOwner(ctx, id)
	if err != nil {
		return err
	}

	_ = s.cache.Invalidate(ctx, complaintListCacheKey)
	s.publish(ctx, events.EventEmployeeDeleted, id, events.EmployeeDeletedPayload{
		Phone:             employee.Phone,
		ComplaintsRemoved: removed,
	})
	return nil
}

func (s *AccountService) publish(ctx context.Context, eventType events.EventType, subjectID string, payload interface{}) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		SubjectID: subjectID,
		Actor:     events.Actor{Role: domain.RoleAdmin},
		Timestamp: time.Now(),
		Payload:   payload,
	})
}
