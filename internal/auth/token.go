package auth

import (
	"errors"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"

	"github.com/spec-kit/complaint-portal/internal/domain"
)

// TokenManager issues and validates signed bearer tokens. Tokens are
// stateless: expiry is the only end-of-life mechanism, there is no
// server-side revocation list.
type TokenManager struct {
	secret      []byte
	employeeTTL time.Duration
	adminTTL    time.Duration
}

// NewTokenManager builds a new manager.
func NewTokenManager(secret string, employeeTTLDays, adminTTLHours int) *TokenManager {
	if employeeTTLDays <= 0 {
		employeeTTLDays = 7
	}
	if adminTTLHours <= 0 {
		adminTTLHours = 24
	}
	return &TokenManager{
		secret:      []byte(secret),
		employeeTTL: time.Duration(employeeTTLDays) * 24 * time.Hour,
		adminTTL:    time.Duration(adminTTLHours) * time.Hour,
	}
}

// Claims describes the JWT payload.
type Claims struct {
	Email string      `json:"email,omitempty"`
	Role  domain.Role `json:"role"`
	jwt.RegisteredClaims
}

// IssueEmployeeToken signs a token for an employee account.
func (tm *TokenManager) IssueEmployeeToken(employeeID, email string) (string, time.Time, error) {
	return tm.issue(employeeID, email, domain.RoleEmployee, tm.employeeTTL)
}

// IssueAdminToken signs a token for the admin principal. The subject is
// a sentinel; admins have no stored identity.
func (tm *TokenManager) IssueAdminToken() (string, time.Time, error) {
	return tm.issue(domain.AdminSubject, "", domain.RoleAdmin, tm.adminTTL)
}

func (tm *TokenManager) issue(subject, email string, role domain.Role, ttl time.Duration) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(ttl)
	claims := &Claims{
		Email: email,
		Role:  role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(tm.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return tokenString, expiresAt, nil
}

// ParseToken validates signature and expiry and returns claims. Forged,
// malformed and expired tokens all fail the same way; callers must not
// distinguish them.
func (tm *TokenManager) ParseToken(tokenStr string) (*Claims, error) {
	parsed, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, errors.New("unexpected signing method")
		}
		return tm.secret, nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return nil, errors.New("invalid token claims")
	}
	return claims, nil
}
