package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/complaint-portal/internal/domain"
)

// ComplaintRepository encapsulates complaint persistence.
type ComplaintRepository interface {
	Create(ctx context.Context, complaint *domain.Complaint) error
	GetByID(ctx context.Context, id string) (*domain.Complaint, error)
	List(ctx context.Context) ([]domain.Complaint, error)
	ListByOwner(ctx context.Context, employeeID string) ([]domain.Complaint, error)
	Update(ctx context.Context, complaint *domain.Complaint) error
	Delete(ctx context.Context, id string) error
	DeleteByOwner(ctx context.Context, employeeID string) (int64, error)
}

type complaintRepository struct {
	pool *pgxpool.Pool
}

// NewComplaintRepository instantiates the repository.
func NewComplaintRepository(pool *pgxpool.Pool) ComplaintRepository {
	return &complaintRepository{pool: pool}
}

const complaintColumns = `id, reference, employee_id, employee_name, employee_email, employee_phone, employee_department,
               category, priority, message, status, admin_reply, created_at, updated_at`

func (r *complaintRepository) Create(ctx context.Context, complaint *domain.Complaint) error {
	const query = `
        INSERT INTO complaints (reference, employee_id, employee_name, employee_email, employee_phone, employee_department,
                                category, priority, message, status, admin_reply)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
        RETURNING id, created_at, updated_at`
	return r.pool.QueryRow(ctx, query,
		complaint.Reference,
		complaint.EmployeeID,
		complaint.EmployeeName,
		complaint.EmployeeEmail,
		complaint.EmployeePhone,
		complaint.EmployeeDepartment,
		complaint.Category,
		complaint.Priority,
		complaint.Message,
		complaint.Status,
		complaint.AdminReply,
	).Scan(&complaint.ID, &complaint.CreatedAt, &complaint.UpdatedAt)
}

func (r *complaintRepository) GetByID(ctx context.Context, id string) (*domain.Complaint, error) {
	query := `SELECT ` + complaintColumns + ` FROM complaints WHERE id=$1`

	var complaint domain.Complaint
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&complaint.ID,
		&complaint.Reference,
		&complaint.EmployeeID,
		&complaint.EmployeeName,
		&complaint.EmployeeEmail,
		&complaint.EmployeePhone,
		&complaint.EmployeeDepartment,
		&complaint.Category,
		&complaint.Priority,
		&complaint.Message,
		&complaint.Status,
		&complaint.AdminReply,
		&complaint.CreatedAt,
		&complaint.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &complaint, nil
}

func (r *complaintRepository) List(ctx context.Context) ([]domain.Complaint, error) {
	query := `SELECT ` + complaintColumns + ` FROM complaints ORDER BY created_at DESC`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanComplaints(rows)
}

func (r *complaintRepository) ListByOwner(ctx context.Context, employeeID string) ([]domain.Complaint, error) {
	query := `SELECT ` + complaintColumns + ` FROM complaints WHERE employee_id=$1 ORDER BY created_at DESC`
	rows, err := r.pool.Query(ctx, query, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanComplaints(rows)
}

func (r *complaintRepository) Update(ctx context.Context, complaint *domain.Complaint) error {
	const query = `
        UPDATE complaints SET status=$1, admin_reply=$2, updated_at=NOW()
        WHERE id=$3`
	cmd, err := r.pool.Exec(ctx, query,
		complaint.Status,
		complaint.AdminReply,
		complaint.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *complaintRepository) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM complaints WHERE id=$1`
	cmd, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *complaintRepository) DeleteByOwner(ctx context.Context, employeeID string) (int64, error) {
	const query = `DELETE FROM complaints WHERE employee_id=$1`
	cmd, err := r.pool.Exec(ctx, query, employeeID)
	if err != nil {
		return 0, err
	}
	return cmd.RowsAffected(), nil
}

func scanComplaints(rows pgx.Rows) ([]domain.Complaint, error) {
	var result []domain.Complaint
	for rows.Next() {
		var complaint domain.Complaint
		if err := rows.Scan(
			&complaint.ID,
			&complaint.Reference,
			&complaint.EmployeeID,
			&complaint.EmployeeName,
			&complaint.EmployeeEmail,
			&complaint.EmployeePhone,
			&complaint.EmployeeDepartment,
			&complaint.Category,
			&complaint.Priority,
			&complaint.Message,
			&complaint.Status,
			&complaint.AdminReply,
			&complaint.CreatedAt,
			&complaint.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, complaint)
	}
	return result, rows.Err()
}
