package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/complaint-portal/internal/domain"
	"github.com/spec-kit/complaint-portal/internal/repository"
	apperrors "github.com/spec-kit/complaint-portal/pkg/util"
)

const principalKey = "auth_principal"

// Principal represents the authenticated caller. Employee is populated
// only by the employee gate; admin principals carry claims alone.
type Principal struct {
	Role     domain.Role
	Employee *domain.Employee
	Claims   *Claims
}

// Guard validates bearer tokens and enforces the two gate policies.
type Guard struct {
	tokens    *TokenManager
	employees repository.EmployeeRepository
}

// NewGuard constructs the access guard middleware.
func NewGuard(tokens *TokenManager, employees repository.EmployeeRepository) *Guard {
	return &Guard{tokens: tokens, employees: employees}
}

// RequireEmployee gates employee-only routes. The embedded subject is
// re-resolved against the credential store on every call, so an approval
// status change takes effect on the very next request rather than at
// token expiry.
func (g *Guard) RequireEmployee(c *fiber.Ctx) error {
	claims, err := g.parseBearer(c)
	if err != nil {
		return err
	}
	if claims.Role != domain.RoleEmployee {
		return apperrors.NewForbidden("employee token required")
	}

	employee, err := g.employees.GetByID(c.Context(), claims.Subject)
	if err != nil {
		if err == pgx.ErrNoRows {
			return apperrors.NewUnauthenticated("account no longer exists")
		}
		return apperrors.MapError(err)
	}
	if employee.ApprovalStatus != domain.ApprovalApproved {
		return apperrors.NewNotApproved(string(employee.ApprovalStatus))
	}

	c.Locals(principalKey, &Principal{
		Role:     domain.RoleEmployee,
		Employee: employee,
		Claims:   claims,
	})
	return c.Next()
}

// RequireAdmin gates admin-only routes. The admin principal is not
// stored, so the signed role claim is trusted directly with no store
// lookup.
func (g *Guard) RequireAdmin(c *fiber.Ctx) error {
	claims, err := g.parseBearer(c)
	if err != nil {
		return err
	}
	if claims.Role != domain.RoleAdmin {
		return apperrors.NewForbidden("admin token required")
	}

	c.Locals(principalKey, &Principal{Role: domain.RoleAdmin, Claims: claims})
	return c.Next()
}

func (g *Guard) parseBearer(c *fiber.Ctx) (*Claims, error) {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return nil, apperrors.NewUnauthenticated("missing authorization header")
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return nil, apperrors.NewUnauthenticated("invalid authorization header")
	}

	claims, err := g.tokens.ParseToken(parts[1])
	if err != nil {
		return nil, apperrors.NewUnauthenticated("invalid token")
	}
	return claims, nil
}

// PrincipalFromContext retrieves the authenticated entity.
func PrincipalFromContext(c *fiber.Ctx) (*Principal, bool) {
	val := c.Locals(principalKey)
	if val == nil {
		return nil, false
	}
	principal, ok := val.(*Principal)
	return principal, ok
}
