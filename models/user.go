package models

import (
	"time"

	"gorm.io/gorm"
)

type UserRole string

const (
	RoleReader      UserRole = "Reader"
	RoleWriter      UserRole = "Writer"
	RoleCoordinator UserRole = "Coordinator"
	RoleModerator   UserRole = "Moderator"
)

func (r UserRole) Valid() bool {
	switch r {
	case RoleReader, RoleWriter, RoleCoordinator, RoleModerator:
		return true
	default:
		return false
	}
}

type User struct {
	ID        uint         `json:"id" gorm:"primarykey"`
	Username  string       `json:"username" gorm:"uniqueIndex;not null"`
	Email     string       `json:"email" gorm:"uniqueIndex;not null"`
	Password  string       `json:"-" gorm:"not null"`
	Profile   *UserProfile `json:"profile,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}

// UserProfile holds the single role tag of a user. Exactly one row exists per user.
type UserProfile struct {
	ID        uint      `json:"-" gorm:"primarykey"`
	UserID    uint      `json:"-" gorm:"uniqueIndex;not null"`
	Role      UserRole  `json:"role" gorm:"not null;default:'Reader'"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Role returns the user's role, or the empty role when the profile was not loaded.
func (u *User) Role() UserRole {
	if u == nil || u.Profile == nil {
		return ""
	}
	return u.Profile.Role
}

// AfterCreate runs inside the insert transaction, so a user never exists without a profile.
func (u *User) AfterCreate(tx *gorm.DB) error {
	if u.Profile != nil {
		return nil
	}
	u.Profile = &UserProfile{UserID: u.ID, Role: RoleReader}
	return tx.Session(&gorm.Session{NewDB: true}).Create(u.Profile).Error
}
