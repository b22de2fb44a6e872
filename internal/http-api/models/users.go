package models

import "time"

type User struct {
	ID        string    `json:"id" gorm:"type:uuid;primaryKey"`
	Username  string    `json:"username" gorm:"uniqueIndex;size:100;not null"`
	Email     string    `json:"email" gorm:"uniqueIndex;size:255;not null"`
	Password  string    `json:"-" gorm:"not null"`
	Role      string    `json:"role" gorm:"size:32;not null;default:'member'"`
	CountryID *int64    `json:"country_id,omitempty" gorm:"index"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`

	Country *Country `json:"country,omitempty" gorm:"foreignKey:CountryID"`
}

func (User) TableName() string {
	return "users"
}

// Roles used by the route guards.
const (
	RoleAdmin   = "admin"
	RoleEditor  = "editor"
	RoleSection = "national_section"
	RoleMember  = "member"
)
