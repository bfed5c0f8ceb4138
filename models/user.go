package models

import "time"

// User is a staff account (admin, staff or kitchen).
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"type:varchar(100);not null" json:"name"`
	Email     string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Password  string    `gorm:"type:varchar(255);not null" json:"-"`
	Role      string    `gorm:"type:varchar(20);not null" json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

const (
	RoleAdmin   = "admin"
	RoleStaff   = "staff"
	RoleKitchen = "kitchen"
)

// ValidRole reports whether role is one of the known staff roles.
func ValidRole(role string) bool {
	return role == RoleAdmin || role == RoleStaff || role == RoleKitchen
}
