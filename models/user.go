package models

import "time"

type UserRole string

const (
	UserRoleAdmin   UserRole = "admin"
	UserRoleManager UserRole = "manager"
	UserRoleUser    UserRole = "user"
)

// DomainUserPassword is the sentinel stored in place of a hash for accounts
// that authenticate against the directory service.
const DomainUserPassword = "AD_USER"

type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Email        string    `gorm:"size:255;not null;unique" json:"email"`
	Password     string    `gorm:"size:255;not null" json:"-"`
	Name         string    `gorm:"size:255;not null" json:"name"`
	Department   string    `gorm:"size:255" json:"department"`
	Role         string    `gorm:"type:user_role;default:'user';not null" json:"role"`
	IsDomainUser bool      `gorm:"default:false;not null" json:"isDomainUser"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"-"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"-"`
}
