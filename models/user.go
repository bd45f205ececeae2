package models

import "time"

type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

type User struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	Name      string    `json:"name"`
	Email     string    `gorm:"unique;not null" json:"email"`
	Password  string    `json:"-"` // bcrypt hash; empty for social-login accounts
	Role      Role      `gorm:"type:VARCHAR(10);default:'user'" json:"role"`
	Avatar    string    `json:"avatar,omitempty"`
	Provider  string    `json:"provider,omitempty"` // email, google, facebook
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
