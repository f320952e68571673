package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/complaint-portal/internal/domain"
)

// In-memory repository fakes backing the service tests.

type fakeEmployeeRepo struct {
	mu   sync.Mutex
	byID map[string]*domain.Employee
}

func newFakeEmployeeRepo() *fakeEmployeeRepo {
	return &fakeEmployeeRepo{byID: make(map[string]*domain.Employee)}
}

func (r *fakeEmployeeRepo) Create(_ context.Context, employee *domain.Employee) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.byID {
		if existing.Phone == employee.Phone {
			return errors.New("duplicate key value violates unique constraint")
		}
	}
	employee.ID = uuid.NewString()
	employee.CreatedAt = time.Now()
	employee.UpdatedAt = employee.CreatedAt
	clone := *employee
	r.byID[employee.ID] = &clone
	return nil
}

func (r *fakeEmployeeRepo) GetByID(_ context.Context, id string) (*domain.Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	employee, ok := r.byID[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	clone := *employee
	return &clone, nil
}

func (r *fakeEmployeeRepo) GetByPhone(_ context.Context, phone string) (*domain.Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, employee := range r.byID {
		if employee.Phone == phone {
			clone := *employee
			return &clone, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (r *fakeEmployeeRepo) List(_ context.Context) ([]domain.Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	result := make([]domain.Employee, 0, len(r.byID))
	for _, employee := range r.byID {
		clone := *employee
		clone.PasswordHash = ""
		result = append(result, clone)
	}
	return result, nil
}

func (r *fakeEmployeeRepo) ListByApprovalStatus(_ context.Context, status domain.ApprovalStatus) ([]domain.Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var result []domain.Employee
	for _, employee := range r.byID {
		if employee.ApprovalStatus == status {
			clone := *employee
			clone.PasswordHash = ""
			result = append(result, clone)
		}
	}
	return result, nil
}

func (r *fakeEmployeeRepo) UpdateApprovalStatus(_ context.Context, id string, status domain.ApprovalStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	employee, ok := r.byID[id]
	if !ok {
		return pgx.ErrNoRows
	}
	employee.ApprovalStatus = status
	employee.UpdatedAt = time.Now()
	return nil
}

func (r *fakeEmployeeRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(r.byID, id)
	return nil
}

type fakeComplaintRepo struct {
	mu   sync.Mutex
	byID map[string]*domain.Complaint
}

func newFakeComplaintRepo() *fakeComplaintRepo {
	return &fakeComplaintRepo{byID: make(map[string]*domain.Complaint)}
}

func (r *fakeComplaintRepo) Create(_ context.Context, complaint *domain.Complaint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	complaint.ID = uuid.NewString()
	complaint.CreatedAt = time.Now()
	complaint.UpdatedAt = complaint.CreatedAt
	clone := *complaint
	r.byID[complaint.ID] = &clone
	return nil
}

func (r *fakeComplaintRepo) GetByID(_ context.Context, id string) (*domain.Complaint, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	complaint, ok := r.byID[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	clone := *complaint
	return &clone, nil
}

func (r *fakeComplaintRepo) List(_ context.Context) ([]domain.Complaint, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	result := make([]domain.Complaint, 0, len(r.byID))
	for _, complaint := range r.byID {
		result = append(result, *complaint)
	}
	return result, nil
}

func (r *fakeComplaintRepo) ListByOwner(_ context.Context, employeeID string) ([]domain.Complaint, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var result []domain.Complaint
	for _, complaint := range r.byID {
		if complaint.EmployeeID == employeeID {
			result = append(result, *complaint)
		}
	}
	return result, nil
}

func (r *fakeComplaintRepo) Update(_ context.Context, complaint *domain.Complaint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.byID[complaint.ID]
	if !ok {
		return pgx.ErrNoRows
	}
	stored.Status = complaint.Status
	stored.AdminReply = complaint.AdminReply
	stored.UpdatedAt = time.Now()
	return nil
}

func (r *fakeComplaintRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(r.byID, id)
	return nil
}

func (r *fakeComplaintRepo) DeleteByOwner(_ context.Context, employeeID string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var removed int64
	for id, complaint := range r.byID {
		if complaint.EmployeeID == employeeID {
			delete(r.byID, id)
			removed++
		}
	}
	return removed, nil
}
