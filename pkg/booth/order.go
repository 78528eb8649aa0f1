package booth

import (
	"fmt"
	"time"
)

// TimestampLayout is the order date format of the export. The two spaces
// between date and time are part of the format.
const TimestampLayout = "2006-01-02  15:04:05"

// Payment status texts as they appear in the export.
const (
	StatusTextPaid            = "支払済み"
	StatusTextAwaitingPayment = "支払待ち"
	StatusTextCancelled       = "キャンセル"
)

type Status int

const (
	StatusOther Status = iota
	StatusPaid
	StatusAwaitingPayment
	StatusCancelled
)

func ParseStatus(s string) Status {
	switch s {
	case StatusTextPaid:
		return StatusPaid
	case StatusTextAwaitingPayment:
		return StatusAwaitingPayment
	case StatusTextCancelled:
		return StatusCancelled
	}
	return StatusOther
}

func (s Status) String() string {
	switch s {
	case StatusPaid:
		return "paid"
	case StatusAwaitingPayment:
		return "awaiting_payment"
	case StatusCancelled:
		return "cancelled"
	}
	return "other"
}

// Unshipped reports whether an order in this status still has to be shipped.
func (s Status) Unshipped() bool {
	return s == StatusPaid || s == StatusAwaitingPayment
}

// Order is an export row that passed the filter, with its product detail
// decoded.
type Order struct {
	ID         string
	PlacedRaw  string
	StatusText string
	Status     Status
	Items      []LineItem
}

// ParseTimestamp parses an order date field. The field must match
// TimestampLayout exactly, including both separating spaces.
func ParseTimestamp(s string) (time.Time, error) {
	t, err := time.Parse(TimestampLayout, s)
	// time.Parse lets a run of spaces in the layout match any number of spaces.
	if err != nil || t.Format(TimestampLayout) != s {
		return time.Time{}, fmt.Errorf("%w: order timestamp %q: want YYYY-MM-DD  HH:MM:SS", ErrParse, s)
	}
	return t, nil
}

// NewOrder builds an Order from an export row and decodes its product detail.
// Detail failures are returned as *DetailError carrying the order ID.
func NewOrder(row []string) (*Order, error) {
	if len(row) != ExportColumns {
		return nil, fmt.Errorf("%w: row has %d columns, want %d", ErrInvalidInput, len(row), ExportColumns)
	}

	items, err := ParseDetail(row[ColDetail])
	if err != nil {
		if de, ok := err.(*DetailError); ok {
			de.OrderID = row[ColOrderID]
		}
		return nil, err
	}
	if len(items) == 0 {
		return nil, &DetailError{OrderID: row[ColOrderID], Reason: "no product entries"}
	}

	return &Order{
		ID:         row[ColOrderID],
		PlacedRaw:  row[ColPlaced],
		StatusText: row[ColStatus],
		Status:     ParseStatus(row[ColStatus]),
		Items:      items,
	}, nil
}
