package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTableStatusPriority(t *testing.T) {
	assert.Equal(t, 3, TableReserved.Priority())
	assert.Equal(t, 2, TableOccupied.Priority())
	assert.Equal(t, 1, TableFree.Priority())
	assert.Equal(t, 0, TableStatus(7).Priority())
}

func TestTableStatusValid(t *testing.T) {
	assert.True(t, TableFree.Valid())
	assert.True(t, TableReserved.Valid())
	assert.False(t, TableStatus(-1).Valid())
	assert.False(t, TableStatus(3).Valid())
}

func TestOrderStatusActive(t *testing.T) {
	assert.True(t, OrderNew.Active())
	assert.True(t, OrderProcessing.Active())
	assert.False(t, OrderServed.Active())
	assert.False(t, OrderPaid.Active())
}

func TestOrderStatusCanAdvanceTo(t *testing.T) {
	assert.True(t, OrderNew.CanAdvanceTo(OrderProcessing))
	assert.True(t, OrderNew.CanAdvanceTo(OrderServed))
	assert.True(t, OrderProcessing.CanAdvanceTo(OrderPaid))
	assert.False(t, OrderServed.CanAdvanceTo(OrderProcessing))
	assert.False(t, OrderPaid.CanAdvanceTo(OrderPaid))
	assert.False(t, OrderNew.CanAdvanceTo(OrderStatus(9)))
}
