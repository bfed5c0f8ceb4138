package models

import (
	"fmt"
	"time"

	"github.com/Thuanphan093164/Qly-NhaHang/utils"
)

// Booking is a remote reservation request, optionally tied to a table.
type Booking struct {
	ID           uint          `gorm:"primaryKey" json:"id"`
	Reference    string        `gorm:"type:varchar(36);uniqueIndex;not null" json:"reference"`
	CustomerName string        `gorm:"type:varchar(50);not null" json:"customer_name"`
	PhoneNumber  string        `gorm:"type:varchar(15);not null" json:"phone_number"`
	BookingTime  time.Time     `gorm:"not null" json:"booking_time"`
	GuestCount   int           `gorm:"not null" json:"guest_count"`
	Note         string        `gorm:"type:varchar(500)" json:"note"`
	Status       BookingStatus `gorm:"not null;default:0" json:"status"`
	TableID      *uint         `gorm:"index" json:"table_id,omitempty"`
	Table        *Table        `gorm:"foreignKey:TableID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
	CreatedAt    time.Time     `gorm:"not null" json:"created_at"`
}

const (
	BookingGuestMin = 1
	BookingGuestMax = 50
	customerNameMax = 50
	phoneNumberMax  = 15
	bookingNoteMax  = 500
)

// Validate checks the booking fields against the form constraints. The
// booking time must be strictly in the future relative to now.
func (b *Booking) Validate(now time.Time) error {
	if b.CustomerName == "" || len(b.CustomerName) > customerNameMax {
		return &utils.ValidationError{Msg: fmt.Sprintf("customer name is required and must be at most %d characters", customerNameMax)}
	}
	if b.PhoneNumber == "" || len(b.PhoneNumber) > phoneNumberMax {
		return &utils.ValidationError{Msg: fmt.Sprintf("phone number is required and must be at most %d characters", phoneNumberMax)}
	}
	if !b.BookingTime.After(now) {
		return &utils.ValidationError{Msg: "booking time must be after the current time"}
	}
	if b.GuestCount < BookingGuestMin || b.GuestCount > BookingGuestMax {
		return &utils.ValidationError{Msg: fmt.Sprintf("guest count must be between %d and %d", BookingGuestMin, BookingGuestMax)}
	}
	if len(b.Note) > bookingNoteMax {
		return &utils.ValidationError{Msg: fmt.Sprintf("note must be at most %d characters", bookingNoteMax)}
	}
	return nil
}
