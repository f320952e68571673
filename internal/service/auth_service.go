package service

import (
	"context"
	"crypto/subtle"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/complaint-portal/internal/auth"
	"github.com/spec-kit/complaint-portal/internal/config"
	"github.com/spec-kit/complaint-portal/internal/domain"
	"github.com/spec-kit/complaint-portal/internal/events"
	"github.com/spec-kit/complaint-portal/internal/repository"
	apperrors "github.com/spec-kit/complaint-portal/pkg/util"
)

// AuthService coordinates registration and login flows.
type AuthService struct {
	employees  repository.EmployeeRepository
	tokenMgr   *auth.TokenManager
	dispatcher events.Dispatcher
	bcryptCost int
	admin      config.AdminConfig
}

// AuthDependencies encapsulates requirements for the auth service.
type AuthDependencies struct {
	EmployeeRepo repository.EmployeeRepository
	Dispatcher   events.Dispatcher
}

// RegisterInput describes the registration payload.
type RegisterInput struct {
	Phone        string
	Name         string
	Password     string
	Department   string
	WorkLocation string
}

// NewAuthService builds the service.
func NewAuthService(cfg config.Config, deps AuthDependencies) *AuthService {
	return &AuthService{
		employees:  deps.EmployeeRepo,
		tokenMgr:   auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.EmployeeTokenTTLDays, cfg.Auth.AdminTokenTTLHours),
		dispatcher: deps.Dispatcher,
		bcryptCost: cfg.Auth.BcryptCost,
		admin:      cfg.Admin,
	}
}

// RegisterEmployee creates a new account in the pending approval state.
// The email is a generated placeholder derived from the phone identity.
func (s *AuthService) RegisterEmployee(ctx context.Context, input RegisterInput) (*domain.Employee, error) {
	if err := validateRegistration(input); err != nil {
		return nil, err
	}

	if _, err := s.employees.GetByPhone(ctx, input.Phone); err == nil {
		return nil, apperrors.NewDuplicateIdentity("phone number already registered")
	} else if err != pgx.ErrNoRows {
		return nil, err
	}

	hash, err := auth.HashPassword(input.Password, s.bcryptCost)
	if err != nil {
		return nil, err
	}

	employee := &domain.Employee{
		Phone:          input.Phone,
		Name:           input.Name,
		Email:          fmt.Sprintf("%s@portal.local", input.Phone),
		PasswordHash:   hash,
		Department:     input.Department,
		WorkLocation:   input.WorkLocation,
		Role:           domain.RoleEmployee,
		ApprovalStatus: domain.ApprovalPending,
	}
	if err := s.employees.Create(ctx, employee); err != nil {
		return nil, err
	}

	s.publish(ctx, events.EventEmployeeRegistered, employee.ID, events.EmployeeRegisteredPayload{
		Phone:      employee.Phone,
		Name:       employee.Name,
		Department: employee.Department,
	})
	return employee, nil
}

// LoginEmployee authenticates an employee. Unknown phone and wrong
// password produce the identical generic failure; approval gating only
// applies after the credential check passed.
func (s *AuthService) LoginEmployee(ctx context.Context, phone, password string) (*domain.Employee, string, time.Time, error) {
	employee, err := s.employees.GetByPhone(ctx, phone)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, "", time.Time{}, apperrors.NewInvalidCredentials()
		}
		return nil, "", time.Time{}, err
	}
	if err := auth.ComparePassword(employee.PasswordHash, password); err != nil {
		return nil, "", time.Time{}, apperrors.NewInvalidCredentials()
	}
	if employee.ApprovalStatus != domain.ApprovalApproved {
		return nil, "", time.Time{}, apperrors.NewNotApproved(string(employee.ApprovalStatus))
	}

	token, exp, err := s.tokenMgr.IssueEmployeeToken(employee.ID, employee.Email)
	if err != nil {
		return nil, "", time.Time{}, err
	}
	return employee, token, exp, nil
}

// LoginAdmin authenticates against the configured static credential
// pair. Both comparisons run unconditionally to keep the check free of
// username-dependent timing.
func (s *AuthService) LoginAdmin(_ context.Context, username, password string) (string, time.Time, error) {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(s.admin.Username)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(s.admin.Password)) == 1
	if !userOK || !passOK {
		return "", time.Time{}, apperrors.NewInvalidCredentials()
	}
	return s.tokenMgr.IssueAdminToken()
}

// TokenManager exposes the underlying token manager for middleware usage.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}

func (s *AuthService) publish(ctx context.Context, eventType events.EventType, subjectID string, payload interface{}) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		SubjectID: subjectID,
		Actor:     events.Actor{Role: domain.RoleEmployee, EmployeeID: &subjectID},
		Timestamp: time.Now(),
		Payload:   payload,
	})
}

func validateRegistration(input RegisterInput) error {
	if len(input.Phone) != 10 || !allDigits(input.Phone) {
		return apperrors.NewValidationError("phone must be exactly 10 digits", nil)
	}
	if len(input.Password) < 6 {
		return apperrors.NewValidationError("password must be at least 6 characters", nil)
	}
	if input.Name == "" || input.Department == "" || input.WorkLocation == "" {
		return apperrors.NewValidationError("name, department, work_location required", nil)
	}
	return nil
}

func allDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
