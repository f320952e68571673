package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/complaint-portal/internal/api/dto"
	"github.com/spec-kit/complaint-portal/internal/service"
	apperrors "github.com/spec-kit/complaint-portal/pkg/util"
)

// AdminHandler manages admin-gated account and complaint endpoints.
type AdminHandler struct {
	accounts   *service.AccountService
	complaints *service.ComplaintService
}

// NewAdminHandler constructs handler.
func NewAdminHandler(accountService *service.AccountService, complaintService *service.ComplaintService) *AdminHandler {
	return &AdminHandler{accounts: accountService, complaints: complaintService}
}

// ListEmployees GET /admin/employees.
func (h *AdminHandler) ListEmployees(c *fiber.Ctx) error {
	employees, err := h.accounts.List(c.Context())
	if err != nil {
		return err
	}
	items := make([]dto.EmployeeResponse, 0, len(employees))
	for i := range employees {
		items = append(items, dto.EmployeeFromDomain(&employees[i]))
	}
	return c.JSON(fiber.Map{"success": true, "data": items})
}

// ListPendingEmployees GET /admin/employees/pending.
func (h *AdminHandler) ListPendingEmployees(c *fiber.Ctx) error {
	employees, err := h.accounts.ListPending(c.Context())
	if err != nil {
		return err
	}
	items := make([]dto.EmployeeResponse, 0, len(employees))
	for i := range employees {
		items = append(items, dto.EmployeeFromDomain(&employees[i]))
	}
	return c.JSON(fiber.Map{"success": true, "data": items})
}

// SetApprovalStatus PATCH /admin/employees/:id/status.
func (h *AdminHandler) SetApprovalStatus(c *fiber.Ctx) error {
	var req dto.UpdateApprovalRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	employee, err := h.accounts.SetApprovalStatus(c.Context(), c.Params("id"), req.Status)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "data": dto.EmployeeFromDomain(employee)})
}

// DeleteEmployee DELETE /admin/employees/:id. Cascades to the account's
// complaints.
func (h *AdminHandler) DeleteEmployee(c *fiber.Ctx) error {
	if err := h.accounts.DeleteCascade(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "data": fiber.Map{"deleted": true}})
}

// ListComplaints GET /admin/complaints.
func (h *AdminHandler) ListComplaints(c *fiber.Ctx) error {
	complaints, err := h.complaints.ListCached(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "data": dto.ComplaintsFromDomain(complaints)})
}

// UpdateComplaint PATCH /admin/complaints/:id.
func (h *AdminHandler) UpdateComplaint(c *fiber.Ctx) error {
	var req dto.UpdateComplaintRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	complaint, err := h.complaints.Update(c.Context(), c.Params("id"), service.ComplaintUpdateInput{
		Status:     req.Status,
		AdminReply: req.AdminReply,
	})
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "data": dto.ComplaintFromDomain(complaint)})
}

// DeleteComplaint DELETE /admin/complaints/:id.
func (h *AdminHandler) DeleteComplaint(c *fiber.Ctx) error {
	if err := h.complaints.Delete(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "data": fiber.Map{"deleted": true}})
}
