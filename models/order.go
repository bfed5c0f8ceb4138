package models

import (
	"time"
)

type Order struct {
	ID          uint          `gorm:"primaryKey" json:"id"`
	TableID     uint          `gorm:"not null;index" json:"table_id"`
	Table       Table         `gorm:"foreignKey:TableID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
	OrderDate   time.Time     `gorm:"not null" json:"order_date"`
	TotalAmount float64       `gorm:"type:decimal(18,2);not null;default:0" json:"total_amount"`
	Status      OrderStatus   `gorm:"not null;default:0" json:"status"`
	OrderItems  []OrderDetail `gorm:"foreignKey:OrderID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"order_items"`
	CreatedAt   time.Time     `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time     `gorm:"not null" json:"updated_at"`
}
