package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/spec-kit/complaint-portal/internal/domain"
	"github.com/spec-kit/complaint-portal/internal/events"
)

func testEmployee() *domain.Employee {
	return &domain.Employee{
		ID:             "emp-1",
		Phone:          "9876543210",
		Name:           "Asha Rao",
		Email:          "9876543210@portal.local",
		Department:     "Accounts",
		WorkLocation:   "Chennai",
		Role:           domain.RoleEmployee,
		ApprovalStatus: domain.ApprovalApproved,
	}
}

func newTestComplaintService() (*ComplaintService, *fakeComplaintRepo) {
	repo := newFakeComplaintRepo()
	svc := NewComplaintService(ComplaintDependencies{ComplaintRepo: repo})
	return svc, repo
}

func TestCreateComplaintDefaults(t *testing.T) {
	svc, _ := newTestComplaintService()

	complaint, err := svc.Create(context.Background(), testEmployee(), ComplaintCreateInput{
		Category: "PF",
		Message:  "PF not credited for July",
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if complaint.Status != domain.ComplaintPending {
		t.Errorf("Status = %q, want pending", complaint.Status)
	}
	if complaint.Priority != domain.PriorityMedium {
		t.Errorf("Priority = %q, want default medium", complaint.Priority)
	}
	if complaint.AdminReply != "" {
		t.Errorf("AdminReply = %q, want empty", complaint.AdminReply)
	}
	if complaint.Reference == "" {
		t.Error("Reference should be generated")
	}
}

func TestCreateComplaintDenormalizesOwner(t *testing.T) {
	svc, _ := newTestComplaintService()
	employee := testEmployee()

	complaint, err := svc.Create(context.Background(), employee, ComplaintCreateInput{
		Category: "PF",
		Priority: domain.PriorityHigh,
		Message:  "PF not credited for July",
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if complaint.EmployeeID != employee.ID ||
		complaint.EmployeeName != employee.Name ||
		complaint.EmployeeEmail != employee.Email ||
		complaint.EmployeePhone != employee.Phone ||
		complaint.EmployeeDepartment != employee.Department {
		t.Errorf("denormalized owner fields incomplete: %+v", complaint)
	}
}

func TestCreateComplaintValidation(t *testing.T) {
	svc, _ := newTestComplaintService()

	cases := []struct {
		name  string
		input ComplaintCreateInput
	}{
		{"missing category", ComplaintCreateInput{Message: "text"}},
		{"missing message", ComplaintCreateInput{Category: "PF"}},
		{"blank message", ComplaintCreateInput{Category: "PF", Message: "   "}},
		{"bad priority", ComplaintCreateInput{Category: "PF", Message: "text", Priority: "urgent"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), testEmployee(), tc.input)
			if err == nil {
				t.Fatal("Create() = nil error, want validation failure")
			}
			if de := domainErr(t, err); de.Code != "VALIDATION_FAILED" {
				t.Errorf("Code = %q, want VALIDATION_FAILED", de.Code)
			}
		})
	}
}

func TestUpdateComplaintStatusAllTransitions(t *testing.T) {
	svc, _ := newTestComplaintService()
	complaint, err := svc.Create(context.Background(), testEmployee(), ComplaintCreateInput{
		Category: "PF",
		Message:  "text",
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	// Every directed edge between the three states is permitted,
	// including reopening a resolved complaint.
	sequence := []domain.ComplaintStatus{
		domain.ComplaintReceived,
		domain.ComplaintResolved,
		domain.ComplaintReceived,
		domain.ComplaintPending,
		domain.ComplaintResolved,
		domain.ComplaintPending,
	}
	for _, status := range sequence {
		updated, err := svc.Update(context.Background(), complaint.ID, ComplaintUpdateInput{Status: &status})
		if err != nil {
			t.Fatalf("Update(status=%q) error = %v", status, err)
		}
		if updated.Status != status {
			t.Errorf("Status = %q, want %q", updated.Status, status)
		}
	}
}

func TestUpdateComplaintRejectsUnknownStatus(t *testing.T) {
	svc, _ := newTestComplaintService()
	complaint, err := svc.Create(context.Background(), testEmployee(), ComplaintCreateInput{
		Category: "PF",
		Message:  "text",
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	bad := domain.ComplaintStatus("closed")
	_, err = svc.Update(context.Background(), complaint.ID, ComplaintUpdateInput{Status: &bad})
	if err == nil {
		t.Fatal("Update() accepted unknown status literal")
	}
	if de := domainErr(t, err); de.Code != "VALIDATION_FAILED" {
		t.Errorf("Code = %q, want VALIDATION_FAILED", de.Code)
	}
}

func TestUpdateComplaintNotFound(t *testing.T) {
	svc, _ := newTestComplaintService()

	status := domain.ComplaintResolved
	_, err := svc.Update(context.Background(), "missing-id", ComplaintUpdateInput{Status: &status})
	if err == nil {
		t.Fatal("Update() = nil error, want not found")
	}
	if de := domainErr(t, err); de.HTTPStatus != http.StatusNotFound {
		t.Errorf("HTTPStatus = %d, want 404", de.HTTPStatus)
	}
}

func TestUpdateComplaintAdminReply(t *testing.T) {
	svc, _ := newTestComplaintService()
	complaint, err := svc.Create(context.Background(), testEmployee(), ComplaintCreateInput{
		Category: "PF",
		Message:  "text",
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	reply := "Escalated to payroll."
	updated, err := svc.Update(context.Background(), complaint.ID, ComplaintUpdateInput{AdminReply: &reply})
	if err != nil {
		t.Fatalf("Update(reply) error = %v", err)
	}
	if updated.AdminReply != reply {
		t.Errorf("AdminReply = %q, want %q", updated.AdminReply, reply)
	}
	if updated.Status != domain.ComplaintPending {
		t.Errorf("Status changed to %q on reply-only update", updated.Status)
	}
}

func TestComplaintStatusChangePublishesEvent(t *testing.T) {
	repo := newFakeComplaintRepo()
	dispatcher := events.NewInMemoryDispatcher()
	svc := NewComplaintService(ComplaintDependencies{ComplaintRepo: repo, Dispatcher: dispatcher})

	var received []events.Event
	dispatcher.Subscribe(events.EventComplaintStatusChanged, func(_ context.Context, event events.Event) error {
		received = append(received, event)
		return nil
	})

	complaint, err := svc.Create(context.Background(), testEmployee(), ComplaintCreateInput{
		Category: "PF",
		Message:  "text",
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	status := domain.ComplaintResolved
	if _, err := svc.Update(context.Background(), complaint.ID, ComplaintUpdateInput{Status: &status}); err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	if len(received) != 1 {
		t.Fatalf("got %d status-changed events, want 1", len(received))
	}
	payload, ok := received[0].Payload.(events.ComplaintStatusChangedPayload)
	if !ok {
		t.Fatalf("payload type = %T", received[0].Payload)
	}
	if payload.OldStatus != domain.ComplaintPending || payload.NewStatus != domain.ComplaintResolved {
		t.Errorf("payload = %+v, want pending -> resolved", payload)
	}
}

func TestDeleteComplaint(t *testing.T) {
	svc, repo := newTestComplaintService()
	complaint, err := svc.Create(context.Background(), testEmployee(), ComplaintCreateInput{
		Category: "PF",
		Message:  "text",
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if err := svc.Delete(context.Background(), complaint.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if remaining, _ := repo.List(context.Background()); len(remaining) != 0 {
		t.Errorf("complaint still present after delete")
	}

	err = svc.Delete(context.Background(), complaint.ID)
	if err == nil {
		t.Fatal("second Delete() = nil error, want not found")
	}
	if de := domainErr(t, err); de.HTTPStatus != http.StatusNotFound {
		t.Errorf("HTTPStatus = %d, want 404", de.HTTPStatus)
	}
}
