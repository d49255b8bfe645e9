package models

// Role identifies which kind of account is acting
type Role string

const (
	RoleUser   Role = "user"
	RoleHelper Role = "helper"
	RoleAdmin  Role = "admin"
)

// Valid reports whether r is a known role
func (r Role) Valid() bool {
	switch r {
	case RoleUser, RoleHelper, RoleAdmin:
		return true
	}
	return false
}

// Actor is the identity on whose behalf an operation runs
type Actor struct {
	ID   string `json:"id"`
	Role Role   `json:"role"`
}

// Is reports whether the actor has the given role and id
func (a Actor) Is(role Role, id string) bool {
	return a.Role == role && a.ID != "" && a.ID == id
}

// IsAdmin reports whether the actor is an administrator
func (a Actor) IsAdmin() bool {
	return a.Role == RoleAdmin
}
