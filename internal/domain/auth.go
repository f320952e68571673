package domain

// Role differentiates employee tokens from the single admin principal.
// There are exactly two roles; no hierarchy.
type Role string

const (
	RoleEmployee Role = "employee"
	RoleAdmin    Role = "admin"
)

// AdminSubject is the sentinel token subject for the admin principal,
// which is configured at process start and never persisted.
const AdminSubject = "admin"
