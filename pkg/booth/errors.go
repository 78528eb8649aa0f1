package booth

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput means the export file is missing or is not a BOOTH
	// order export.
	ErrInvalidInput = errors.New("invalid input")

	// ErrMalformedOrderDetail means a product detail cell did not yield a
	// product ID and quantity for every entry.
	ErrMalformedOrderDetail = errors.New("malformed order detail")

	// ErrParse means an order timestamp did not match TimestampLayout.
	ErrParse = errors.New("parse error")
)

// DetailError describes the entry of a product detail cell that could not be
// decoded.
type DetailError struct {
	OrderID string
	Entry   int
	Reason  string
}

func (e *DetailError) Error() string {
	if e.OrderID == "" {
		return fmt.Sprintf("%s: entry %d: %s", ErrMalformedOrderDetail, e.Entry+1, e.Reason)
	}
	return fmt.Sprintf("%s: order %s entry %d: %s", ErrMalformedOrderDetail, e.OrderID, e.Entry+1, e.Reason)
}

func (e *DetailError) Unwrap() error {
	return ErrMalformedOrderDetail
}
