package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/complaint-portal/internal/domain"
)

// EmployeeRepository defines persistence access for employee accounts.
// Read projections used for listings exclude the password hash.
type EmployeeRepository interface {
	Create(ctx context.Context, employee *domain.Employee) error
	GetByID(ctx context.Context, id string) (*domain.Employee, error)
	GetByPhone(ctx context.Context, phone string) (*domain.Employee, error)
	List(ctx context.Context) ([]domain.Employee, error)
	ListByApprovalStatus(ctx context.Context, status domain.ApprovalStatus) ([]domain.Employee, error)
	UpdateApprovalStatus(ctx context.Context, id string, status domain.ApprovalStatus) error
	Delete(ctx context.Context, id string) error
}

type employeeRepository struct {
	pool *pgxpool.Pool
}

// NewEmployeeRepository returns a Postgres-backed implementation.
func NewEmployeeRepository(pool *pgxpool.Pool) EmployeeRepository {
	return &employeeRepository{pool: pool}
}

func (r *employeeRepository) Create(ctx context.Context, employee *domain.Employee) error {
	const query = `
        INSERT INTO employees (phone, name, email, password_hash, department, work_location, role, approval_status)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
        RETURNING id, created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		employee.Phone,
		employee.Name,
		employee.Email,
		employee.PasswordHash,
		employee.Department,
		employee.WorkLocation,
		employee.Role,
		employee.ApprovalStatus,
	).Scan(&employee.ID, &employee.CreatedAt, &employee.UpdatedAt)
}

func (r *employeeRepository) GetByID(ctx context.Context, id string) (*domain.Employee, error) {
	const query = `
        SELECT id, phone, name, email, password_hash, department, work_location, role, approval_status, created_at, updated_at
        FROM employees WHERE id=$1`
	return r.fetchSingle(ctx, query, id)
}

func (r *employeeRepository) GetByPhone(ctx context.Context, phone string) (*domain.Employee, error) {
	const query = `
        SELECT id, phone, name, email, password_hash, department, work_location, role, approval_status, created_at, updated_at
        FROM employees WHERE phone=$1`
	return r.fetchSingle(ctx, query, phone)
}

func (r *employeeRepository) fetchSingle(ctx context.Context, query string, arg any) (*domain.Employee, error) {
	var employee domain.Employee
	if err := r.pool.QueryRow(ctx, query, arg).Scan(
		&employee.ID,
		&employee.Phone,
		&employee.Name,
		&employee.Email,
		&employee.PasswordHash,
		&employee.Department,
		&employee.WorkLocation,
		&employee.Role,
		&employee.ApprovalStatus,
		&employee.CreatedAt,
		&employee.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &employee, nil
}

func (r *employeeRepository) List(ctx context.Context) ([]domain.Employee, error) {
	const query = `
        SELECT id, phone, name, email, department, work_location, role, approval_status, created_at, updated_at
        FROM employees ORDER BY created_at DESC`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanEmployees(rows)
}

func (r *employeeRepository) ListByApprovalStatus(ctx context.Context, status domain.ApprovalStatus) ([]domain.Employee, error) {
	const query = `
        SELECT id, phone, name, email, department, work_location, role, approval_status, created_at, updated_at
        FROM employees WHERE approval_status=$1 ORDER BY created_at DESC`
	rows, err := r.pool.Query(ctx, query, status)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanEmployees(rows)
}

func (r *employeeRepository) UpdateApprovalStatus(ctx context.Context, id string, status domain.ApprovalStatus) error {
	const query = `UPDATE employees SET approval_status=$1, updated_at=NOW() WHERE id=$2`
	cmd, err := r.pool.Exec(ctx, query, status, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *employeeRepository) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM employees WHERE id=$1`
	cmd, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func scanEmployees(rows pgx.Rows) ([]domain.Employee, error) {
	var result []domain.Employee
	for rows.Next() {
		var employee domain.Employee
		if err := rows.Scan(
			&employee.ID,
			&employee.Phone,
			&employee.Name,
			&employee.Email,
			&employee.Department,
			&employee.WorkLocation,
			&employee.Role,
			&employee.ApprovalStatus,
			&employee.CreatedAt,
			&employee.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, employee)
	}
	return result, rows.Err()
}
