package models

import "time"

type Category struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	Name      string     `gorm:"type:varchar(50);uniqueIndex;not null" json:"name"`
	Active    bool       `gorm:"not null;default:true" json:"active"`
	MenuItems []MenuItem `gorm:"foreignKey:CategoryID" json:"-"`
	CreatedAt time.Time  `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time  `gorm:"not null" json:"updated_at"`
}
