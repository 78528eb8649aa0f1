package booth

import (
	"fmt"

	"github.com/hinananoha/booth-order-list/pkg/period"
)

// Filter decides which export rows become orders.
type Filter struct {
	// UnshippedOnly keeps only paid and awaiting-payment orders. Otherwise
	// only cancelled orders are dropped.
	UnshippedOnly bool

	// Window restricts orders to those placed inside it. Nil disables the
	// date check.
	Window *period.Period
}

// Keep reports whether row is an order the filter accepts. Rows with an empty
// order ID are continuation lines and are never kept, whatever their width.
// Any other row must have ExportColumns fields. A malformed order date is only
// an error when a window is set.
func (f Filter) Keep(row []string) (bool, error) {
	if len(row) == 0 || row[ColOrderID] == "" {
		return false, nil
	}
	if len(row) != ExportColumns {
		return false, fmt.Errorf("%w: order %s has %d columns, want %d", ErrInvalidInput, row[ColOrderID], len(row), ExportColumns)
	}

	status := ParseStatus(row[ColStatus])
	if f.UnshippedOnly {
		if !status.Unshipped() {
			return false, nil
		}
	} else if status == StatusCancelled {
		return false, nil
	}

	if f.Window != nil {
		placed, err := ParseTimestamp(row[ColPlaced])
		if err != nil {
			return false, fmt.Errorf("order %s: %w", row[ColOrderID], err)
		}
		if !f.Window.Contains(placed) {
			return false, nil
		}
	}

	return true, nil
}
