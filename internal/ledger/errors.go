package ledger

import (
	"errors"
	"fmt"
)

var (
	// ErrUnitNotFound means the requested house number is not in the roster.
	ErrUnitNotFound = errors.New("unit not found")

	// ErrInvalidAmount means a payment amount was negative or unparsable.
	ErrInvalidAmount = errors.New("invalid payment amount")

	// ErrBackdatedPayment means a payment was dated before the unit's last
	// recorded payment. History dates are append-only and non-decreasing.
	ErrBackdatedPayment = errors.New("payment predates last recorded payment")
)

// PersistenceError reports a durable write that failed after the in-memory
// ledger was already mutated. The mutation is not rolled back; callers surface
// the error and the state is written out on the next successful save.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s: ledger not saved: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}
