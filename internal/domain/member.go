package domain

import "time"

type Role string

const (
	RoleAdmin   Role = "Admin"
	RoleCoAdmin Role = "CoAdmin"
	RoleMember  Role = "Member"
)

// IsAdmin reports whether the role carries administrative privileges.
// Role is stored as plain text so that values added by newer schema
// versions round-trip untouched.
func (r Role) IsAdmin() bool {
	return r == RoleAdmin || r == RoleCoAdmin
}

type Member struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Role         Role   `json:"role"`
	Email        string `json:"email,omitempty"`
	PasswordHash string `json:"-"`
	// Identifier is the short public login code handed to non-admin
	// members. Empty for admins, who log in with email and password.
	Identifier           string    `json:"identifier,omitempty"`
	LifetimeContribution float64   `json:"lifetime_contribution"`
	CreatedOn            time.Time `json:"created_on"`
}
