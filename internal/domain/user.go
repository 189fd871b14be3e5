package domain

import (
	"time"

	"github.com/google/uuid"
)

// User represents a registered account of the system.
type User struct {
	ID             uuid.UUID
	Email          string
	Username       string
	HashedPassword string
	IsActive       bool
	CreatedAt      time.Time
	UpdatedAt      *time.Time
}

// Activate marks the account as able to authenticate.
func (u *User) Activate() {
	u.IsActive = true
	now := time.Now().UTC()
	u.UpdatedAt = &now
}

// Deactivate blocks the account from authenticating.
func (u *User) Deactivate() {
	u.IsActive = false
	now := time.Now().UTC()
	u.UpdatedAt = &now
}

// Public returns a copy safe to hand to callers: the password hash is stripped.
func (u *User) Public() *User {
	if u == nil {
		return nil
	}
	return &User{
		ID:        u.ID,
		Email:     u.Email,
		Username:  u.Username,
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
