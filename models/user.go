package models

import (
	"time"
)

type Role string

const (
	RoleUser     Role = "user"
	RoleAdmin    Role = "admin"
	RoleProvider Role = "provider"
)

type User struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	OpenID        *string   `json:"open_id,omitempty" gorm:"column:open_id;size:64;uniqueIndex"`
	Email         string    `json:"email" gorm:"size:320;not null;uniqueIndex"`
	Password      *string   `json:"-" gorm:"size:255"`
	Name          string    `json:"name"`
	Phone         string    `json:"phone" gorm:"size:20"`
	LoginMethod   string    `json:"login_method" gorm:"size:64;default:email"`
	Role          Role      `json:"role" gorm:"size:20;default:user;not null"`
	Avatar        string    `json:"avatar"`
	Bio           string    `json:"bio"`
	Address       string    `json:"address"`
	City          string    `json:"city" gorm:"size:100"`
	IsVerified    bool      `json:"is_verified" gorm:"default:false;not null"`
	EmailVerified bool      `json:"email_verified" gorm:"default:false;not null"`
	LastSignedIn  time.Time `json:"last_signed_in" gorm:"autoCreateTime"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// HasPassword reports whether the account can sign in with email+password.
// Accounts provisioned through an external identity have no hash stored.
func (u *User) HasPassword() bool {
	return u.Password != nil && *u.Password != ""
}
