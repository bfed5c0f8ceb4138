package models

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"time"

	"github.com/Thuanphan093164/Qly-NhaHang/utils"
)

type Table struct {
	ID        uint        `gorm:"primaryKey" json:"id"`
	Name      string      `gorm:"type:varchar(20);uniqueIndex;not null" json:"name"`
	Capacity  int         `gorm:"not null" json:"capacity"`
	Status    TableStatus `gorm:"not null;default:0" json:"status"`
	Hidden    bool        `gorm:"not null;default:false" json:"hidden"`
	CreatedAt time.Time   `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time   `gorm:"not null" json:"updated_at"`
	Orders    []Order     `gorm:"foreignKey:TableID" json:"-"`
}

const (
	TableCapacityMin = 1
	TableCapacityMax = 20
)

// ValidateCapacity enforces the 1..20 seat range.
func (t *Table) ValidateCapacity() error {
	if t.Capacity < TableCapacityMin || t.Capacity > TableCapacityMax {
		return &utils.ValidationError{Msg: fmt.Sprintf("capacity must be between %d and %d", TableCapacityMin, TableCapacityMax)}
	}
	return nil
}

// ApplyBookingCreated reserves the table for an incoming booking.
// Only a free table may be reserved; anything else is a conflict and
// the table is left untouched.
func (t *Table) ApplyBookingCreated() error {
	if t.Status != TableFree {
		return &utils.ConflictError{Msg: fmt.Sprintf("table %s is not free", t.Name)}
	}
	t.Status = TableReserved
	return nil
}

// ApplyOrderCreated marks the table occupied when its guests place an
// order. Free and reserved tables both become occupied; an already
// occupied table stays occupied, so the call is idempotent.
func (t *Table) ApplyOrderCreated() {
	if t.Status == TableFree || t.Status == TableReserved {
		t.Status = TableOccupied
	}
}

// Note: completing an order never frees the table. Staff flip a table
// back to free manually after checkout; there is no implicit reset.

var tableNumberRe = regexp.MustCompile(`\d+`)

// TableNumber extracts the numeric part of a table name, so "Bàn 12"
// sorts after "Bàn 2". Names without digits sort as 0.
func TableNumber(name string) int {
	m := tableNumberRe.FindString(name)
	if m == "" {
		return 0
	}
	n, err := strconv.Atoi(m)
	if err != nil {
		return 0
	}
	return n
}

// SortTablesForDisplay orders tables for the management listing:
// reserved first, then occupied, then free, and by table number within
// the same status.
func SortTablesForDisplay(tables []Table) {
	sort.SliceStable(tables, func(i, j int) bool {
		pi, pj := tables[i].Status.Priority(), tables[j].Status.Priority()
		if pi != pj {
			return pi > pj
		}
		return TableNumber(tables[i].Name) < TableNumber(tables[j].Name)
	})
}

// SortTablesByNumber orders tables ascending by table number, used by
// the booking page.
func SortTablesByNumber(tables []Table) {
	sort.SliceStable(tables, func(i, j int) bool {
		return TableNumber(tables[i].Name) < TableNumber(tables[j].Name)
	})
}
