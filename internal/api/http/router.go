package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/complaint-portal/internal/api/http/handlers"
	"github.com/spec-kit/complaint-portal/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health     *handlers.HealthHandler
	Auth       *handlers.AuthHandler
	Complaints *handlers.ComplaintsHandler
	Admin      *handlers.AdminHandler
	Guard      *auth.Guard
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	authGroup := app.Group("/auth")
	authGroup.Post("/register", cfg.Auth.Register)
	authGroup.Post("/login", cfg.Auth.Login)
	authGroup.Post("/admin/login", cfg.Auth.AdminLogin)

	complaints := app.Group("/complaints", cfg.Guard.RequireEmployee)
	complaints.Get("/", cfg.Complaints.List)
	complaints.Post("/", cfg.Complaints.Create)

	admin := app.Group("/admin", cfg.Guard.RequireAdmin)
	admin.Get("/employees", cfg.Admin.ListEmployees)
	admin.Get("/employees/pending", cfg.Admin.ListPendingEmployees)
	admin.Patch("/employees/:id/status", cfg.Admin.SetApprovalStatus)
	admin.Delete("/employees/:id", cfg.Admin.DeleteEmployee)
	admin.Get("/complaints", cfg.Admin.ListComplaints)
	admin.Patch("/complaints/:id", cfg.Admin.UpdateComplaint)
	admin.Delete("/complaints/:id", cfg.Admin.DeleteComplaint)
}
