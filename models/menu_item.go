package models

import "time"

type MenuItem struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"type:varchar(100);not null" json:"name"`
	Description string    `gorm:"type:varchar(500)" json:"description"`
	Price       float64   `gorm:"type:decimal(18,2);not null" json:"price"`
	ImageURL    *string   `gorm:"type:varchar(500)" json:"image_url,omitempty"`
	Unit        string    `gorm:"type:varchar(20);not null;default:'phần'" json:"unit"`
	CategoryID  uint      `gorm:"not null" json:"category_id"`
	Category    Category  `gorm:"foreignKey:CategoryID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"category"`
	Active      bool      `gorm:"not null;default:true" json:"active"`
	CreatedAt   time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time `gorm:"not null" json:"updated_at"`
}

// DefaultUnit is used when a menu item is created without a unit.
const DefaultUnit = "phần"
