package model

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"taskman/internal/apperror"
)

type UserRole string

const (
	RoleBasic   UserRole = "Basic"
	RoleManager UserRole = "Manager"
)

func (r UserRole) Valid() bool {
	return r == RoleBasic || r == RoleManager
}

type User struct {
	ID         uint      `gorm:"primaryKey"`
	ExternalID uuid.UUID `gorm:"type:uuid;uniqueIndex;not null"`
	Name       string    `gorm:"size:100;not null"`
	Role       UserRole  `gorm:"size:20;not null;check:role IN ('Basic', 'Manager')"`
	CreatedAt  time.Time `gorm:"autoCreateTime"`
}

func NewUser(name string, role UserRole) (*User, error) {
	if strings.TrimSpace(name) == "" {
		return nil, apperror.Validation("user name must not be empty")
	}
	if !role.Valid() {
		return nil, apperror.Validation("invalid user role %q", role)
	}
	return &User{
		ExternalID: uuid.New(),
		Name:       name,
		Role:       role,
	}, nil
}

// Update replaces the user's name and role. Users have no deletion path;
// history rows carry their ids by value and outlive any rename.
func (u *User) Update(newName string, newRole UserRole) error {
	if strings.TrimSpace(newName) == "" {
		return apperror.Validation("user name must not be empty")
	}
	if !newRole.Valid() {
		return apperror.Validation("invalid user role %q", newRole)
	}
	u.Name = newName
	u.Role = newRole
	return nil
}
