package service

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/spec-kit/complaint-portal/internal/config"
	"github.com/spec-kit/complaint-portal/internal/domain"
	apperrors "github.com/spec-kit/complaint-portal/pkg/util"
)

func testConfig() config.Config {
	return config.Config{
		Auth: config.AuthConfig{
			JWTSecret:            "test-secret",
			EmployeeTokenTTLDays: 7,
			AdminTokenTTLHours:   24,
			BcryptCost:           bcrypt.MinCost,
		},
		Admin: config.AdminConfig{Username: "admin", Password: "admin-secret"},
	}
}

func newTestAuthService() (*AuthService, *fakeEmployeeRepo) {
	repo := newFakeEmployeeRepo()
	svc := NewAuthService(testConfig(), AuthDependencies{EmployeeRepo: repo})
	return svc, repo
}

func validRegistration() RegisterInput {
	return RegisterInput{
		Phone:        "9876543210",
		Name:         "Asha Rao",
		Password:     "secret1",
		Department:   "Accounts",
		WorkLocation: "Chennai",
	}
}

func domainErr(t *testing.T, err error) *apperrors.DomainError {
	t.Helper()
	var de *apperrors.DomainError
	if !errors.As(err, &de) {
		t.Fatalf("error %v is not a DomainError", err)
	}
	return de
}

func TestRegisterEmployee(t *testing.T) {
	svc, _ := newTestAuthService()

	employee, err := svc.RegisterEmployee(context.Background(), validRegistration())
	if err != nil {
		t.Fatalf("RegisterEmployee() error = %v", err)
	}
	if employee.ApprovalStatus != domain.ApprovalPending {
		t.Errorf("ApprovalStatus = %q, want %q", employee.ApprovalStatus, domain.ApprovalPending)
	}
	if employee.Role != domain.RoleEmployee {
		t.Errorf("Role = %q, want %q", employee.Role, domain.RoleEmployee)
	}
	if employee.Email != "9876543210@portal.local" {
		t.Errorf("Email = %q, want generated placeholder", employee.Email)
	}
	if employee.PasswordHash == "" || employee.PasswordHash == "secret1" {
		t.Error("password must be stored as a hash")
	}
}

func TestRegisterEmployeeValidation(t *testing.T) {
	svc, _ := newTestAuthService()

	cases := []struct {
		name   string
		mutate func(*RegisterInput)
	}{
		{"short phone", func(in *RegisterInput) { in.Phone = "98765" }},
		{"long phone", func(in *RegisterInput) { in.Phone = "98765432101" }},
		{"non-digit phone", func(in *RegisterInput) { in.Phone = "98765abcde" }},
		{"short password", func(in *RegisterInput) { in.Password = "abc" }},
		{"missing name", func(in *RegisterInput) { in.Name = "" }},
		{"missing department", func(in *RegisterInput) { in.Department = "" }},
		{"missing work location", func(in *RegisterInput) { in.WorkLocation = "" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			input := validRegistration()
			tc.mutate(&input)
			_, err := svc.RegisterEmployee(context.Background(), input)
			if err == nil {
				t.Fatal("RegisterEmployee() = nil error, want validation failure")
			}
			if de := domainErr(t, err); de.Code != "VALIDATION_FAILED" {
				t.Errorf("Code = %q, want VALIDATION_FAILED", de.Code)
			}
		})
	}
}

func TestRegisterEmployeeDuplicatePhone(t *testing.T) {
	svc, _ := newTestAuthService()

	if _, err := svc.RegisterEmployee(context.Background(), validRegistration()); err != nil {
		t.Fatalf("first RegisterEmployee() error = %v", err)
	}
	_, err := svc.RegisterEmployee(context.Background(), validRegistration())
	if err == nil {
		t.Fatal("second RegisterEmployee() = nil error, want duplicate failure")
	}
	if de := domainErr(t, err); de.Code != "DUPLICATE_IDENTITY" || de.HTTPStatus != http.StatusBadRequest {
		t.Errorf("got code=%q status=%d, want DUPLICATE_IDENTITY 400", de.Code, de.HTTPStatus)
	}
}

func TestLoginEmployeeBlockedUntilApproved(t *testing.T) {
	svc, repo := newTestAuthService()
	employee, err := svc.RegisterEmployee(context.Background(), validRegistration())
	if err != nil {
		t.Fatalf("RegisterEmployee() error = %v", err)
	}

	for _, status := range []domain.ApprovalStatus{domain.ApprovalPending, domain.ApprovalRejected} {
		if err := repo.UpdateApprovalStatus(context.Background(), employee.ID, status); err != nil {
			t.Fatalf("UpdateApprovalStatus(%q) error = %v", status, err)
		}
		_, _, _, err := svc.LoginEmployee(context.Background(), "9876543210", "secret1")
		if err == nil {
			t.Fatalf("LoginEmployee() with %q account = nil error, want 403", status)
		}
		if de := domainErr(t, err); de.HTTPStatus != http.StatusForbidden {
			t.Errorf("status %q: HTTPStatus = %d, want 403", status, de.HTTPStatus)
		}
	}
}

func TestLoginEmployeeEnumerationResistance(t *testing.T) {
	svc, repo := newTestAuthService()
	employee, err := svc.RegisterEmployee(context.Background(), validRegistration())
	if err != nil {
		t.Fatalf("RegisterEmployee() error = %v", err)
	}
	if err := repo.UpdateApprovalStatus(context.Background(), employee.ID, domain.ApprovalApproved); err != nil {
		t.Fatalf("UpdateApprovalStatus() error = %v", err)
	}

	_, _, _, wrongPass := svc.LoginEmployee(context.Background(), "9876543210", "wrong-pass")
	_, _, _, unknownPhone := svc.LoginEmployee(context.Background(), "0000000000", "secret1")

	wrongDE := domainErr(t, wrongPass)
	unknownDE := domainErr(t, unknownPhone)
	if wrongDE.Code != unknownDE.Code || wrongDE.Message != unknownDE.Message || wrongDE.HTTPStatus != unknownDE.HTTPStatus {
		t.Errorf("wrong-password error %+v differs from unknown-identity error %+v", wrongDE, unknownDE)
	}
	if wrongDE.HTTPStatus != http.StatusUnauthorized {
		t.Errorf("HTTPStatus = %d, want 401", wrongDE.HTTPStatus)
	}
}

func TestLoginEmployeeApproved(t *testing.T) {
	svc, repo := newTestAuthService()
	employee, err := svc.RegisterEmployee(context.Background(), validRegistration())
	if err != nil {
		t.Fatalf("RegisterEmployee() error = %v", err)
	}
	if err := repo.UpdateApprovalStatus(context.Background(), employee.ID, domain.ApprovalApproved); err != nil {
		t.Fatalf("UpdateApprovalStatus() error = %v", err)
	}

	logged, token, exp, err := svc.LoginEmployee(context.Background(), "9876543210", "secret1")
	if err != nil {
		t.Fatalf("LoginEmployee() error = %v", err)
	}
	if logged.ID != employee.ID {
		t.Errorf("logged in employee id = %q, want %q", logged.ID, employee.ID)
	}
	if exp.IsZero() {
		t.Error("expiry should be set")
	}

	claims, err := svc.TokenManager().ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken() error = %v", err)
	}
	if claims.Subject != employee.ID || claims.Role != domain.RoleEmployee {
		t.Errorf("claims = subject %q role %q, want %q/%q", claims.Subject, claims.Role, employee.ID, domain.RoleEmployee)
	}
}

func TestLoginAdmin(t *testing.T) {
	svc, _ := newTestAuthService()

	token, _, err := svc.LoginAdmin(context.Background(), "admin", "admin-secret")
	if err != nil {
		t.Fatalf("LoginAdmin() error = %v", err)
	}
	claims, err := svc.TokenManager().ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken() error = %v", err)
	}
	if claims.Role != domain.RoleAdmin || claims.Subject != domain.AdminSubject {
		t.Errorf("claims = subject %q role %q, want admin sentinel", claims.Subject, claims.Role)
	}

	for _, tc := range [][2]string{{"admin", "nope"}, {"root", "admin-secret"}} {
		_, _, err := svc.LoginAdmin(context.Background(), tc[0], tc[1])
		if err == nil {
			t.Fatalf("LoginAdmin(%q, %q) = nil error, want 401", tc[0], tc[1])
		}
		if de := domainErr(t, err); de.HTTPStatus != http.StatusUnauthorized {
			t.Errorf("HTTPStatus = %d, want 401", de.HTTPStatus)
		}
	}
}
