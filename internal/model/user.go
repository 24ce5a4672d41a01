package model

import (
	"time"

	"github.com/google/uuid"
)

// Role is an explicit capability level. Admins may manage any generator and
// mint session codes.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

type User struct {
	ID           uuid.UUID `json:"id" db:"id"`
	Email        string    `json:"email" db:"email"`
	Name         string    `json:"name" db:"name"`
	PasswordHash string    `json:"-" db:"password_hash"`
	Role         Role      `json:"role" db:"role"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
}

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}

// CanEdit reports whether the user may mutate a resource created by ownerID.
func (u *User) CanEdit(ownerID uuid.UUID) bool {
	if u == nil {
		return false
	}
	return u.ID == ownerID || u.IsAdmin()
}
