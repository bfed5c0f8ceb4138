package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTableNumber(t *testing.T) {
	assert.Equal(t, 1, TableNumber("Bàn 01"))
	assert.Equal(t, 12, TableNumber("Bàn 12"))
	assert.Equal(t, 10, TableNumber("Table 10"))
	assert.Equal(t, 0, TableNumber("VIP"))
}

func TestSortTablesForDisplay(t *testing.T) {
	tables := []Table{
		{Name: "Table 1", Status: TableFree},
		{Name: "Table 2", Status: TableOccupied},
		{Name: "Table 3", Status: TableReserved},
		{Name: "Table 10", Status: TableFree},
	}
	SortTablesForDisplay(tables)

	var names []string
	for _, tb := range tables {
		names = append(names, tb.Name)
	}
	assert.Equal(t, []string{"Table 3", "Table 2", "Table 1", "Table 10"}, names)

	// running it again must not reshuffle anything
	SortTablesForDisplay(tables)
	var again []string
	for _, tb := range tables {
		again = append(again, tb.Name)
	}
	assert.Equal(t, names, again)
}

func TestSortTablesByNumber(t *testing.T) {
	tables := []Table{
		{Name: "Bàn 10"},
		{Name: "Bàn 02"},
		{Name: "Bàn 01"},
	}
	SortTablesByNumber(tables)
	assert.Equal(t, "Bàn 01", tables[0].Name)
	assert.Equal(t, "Bàn 02", tables[1].Name)
	assert.Equal(t, "Bàn 10", tables[2].Name)
}

func TestValidateCapacity(t *testing.T) {
	assert.NoError(t, (&Table{Capacity: 1}).ValidateCapacity())
	assert.NoError(t, (&Table{Capacity: 20}).ValidateCapacity())
	assert.Error(t, (&Table{Capacity: 0}).ValidateCapacity())
	assert.Error(t, (&Table{Capacity: 21}).ValidateCapacity())
}

func TestApplyBookingCreated(t *testing.T) {
	free := Table{Name: "Bàn 01", Status: TableFree}
	assert.NoError(t, free.ApplyBookingCreated())
	assert.Equal(t, TableReserved, free.Status)

	occupied := Table{Name: "Bàn 02", Status: TableOccupied}
	assert.Error(t, occupied.ApplyBookingCreated())
	assert.Equal(t, TableOccupied, occupied.Status)

	reserved := Table{Name: "Bàn 03", Status: TableReserved}
	assert.Error(t, reserved.ApplyBookingCreated())
	assert.Equal(t, TableReserved, reserved.Status)
}

func TestApplyOrderCreated(t *testing.T) {
	for _, start := range []TableStatus{TableFree, TableReserved, TableOccupied} {
		tb := Table{Status: start}
		tb.ApplyOrderCreated()
		assert.Equal(t, TableOccupied, tb.Status)
	}
}
