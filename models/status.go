package models

// TableStatus is the seating state of a table. Stored as an int because
// the status-update endpoint accepts raw integers from JSON.
type TableStatus int

const (
	TableFree TableStatus = iota
	TableOccupied
	TableReserved
)

// Valid reports whether the value is one of the defined table statuses.
func (s TableStatus) Valid() bool {
	return s >= TableFree && s <= TableReserved
}

func (s TableStatus) String() string {
	switch s {
	case TableFree:
		return "free"
	case TableOccupied:
		return "occupied"
	case TableReserved:
		return "reserved"
	default:
		return "unknown"
	}
}

// Priority returns the display rank used to sort table listings.
// Reserved tables come first, then occupied, then free.
func (s TableStatus) Priority() int {
	switch s {
	case TableReserved:
		return 3
	case TableOccupied:
		return 2
	case TableFree:
		return 1
	default:
		return 0
	}
}

// OrderStatus is the kitchen lifecycle state of an order.
type OrderStatus int

const (
	OrderNew OrderStatus = iota
	OrderProcessing
	OrderServed
	OrderPaid
)

func (s OrderStatus) Valid() bool {
	return s >= OrderNew && s <= OrderPaid
}

func (s OrderStatus) String() string {
	switch s {
	case OrderNew:
		return "new"
	case OrderProcessing:
		return "processing"
	case OrderServed:
		return "served"
	case OrderPaid:
		return "paid"
	default:
		return "unknown"
	}
}

// Active reports whether the order still belongs on the kitchen display.
// Served and paid orders are excluded.
func (s OrderStatus) Active() bool {
	return s == OrderNew || s == OrderProcessing
}

// CanAdvanceTo reports whether the order may move to next. The order
// lifecycle is monotonic: new -> processing -> served -> paid, and no
// endpoint ever walks it backwards.
func (s OrderStatus) CanAdvanceTo(next OrderStatus) bool {
	return next.Valid() && next > s
}

// BookingStatus is the lifecycle state of a remote reservation.
type BookingStatus int

const (
	BookingPending BookingStatus = iota
	BookingConfirmed
	BookingCheckedIn
	BookingCancelled
)

func (s BookingStatus) Valid() bool {
	return s >= BookingPending && s <= BookingCancelled
}

func (s BookingStatus) String() string {
	switch s {
	case BookingPending:
		return "pending"
	case BookingConfirmed:
		return "confirmed"
	case BookingCheckedIn:
		return "checked_in"
	case BookingCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}
