package models

import "time"

type Role string

const (
	RoleAdmin    Role = "admin"
	RoleCustomer Role = "customer"
)

type User struct {
	ID           string    `gorm:"primaryKey" json:"id"`
	Email        string    `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"not null" json:"-"`
	Role         Role      `gorm:"type:varchar(16);not null;default:'customer'" json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}

func (r Role) IsAdmin() bool {
	return r == RoleAdmin
}
