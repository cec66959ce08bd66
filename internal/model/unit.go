// Package model defines domain types for the society maintenance ledger.
package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentStatus classifies a unit's standing for the current billing cycle.
type PaymentStatus string

const (
	StatusUnpaid PaymentStatus = "Unpaid"
	StatusLate   PaymentStatus = "Late"
	StatusPaid   PaymentStatus = "Paid"
)

// Unit is one housing unit in the roster, keyed by its house number.
// MaintenanceAmount, ExtraCharges and LateFee are the additive dues components;
// TotalDues is always their sum and is recomputed on every mutation.
type Unit struct {
	ID    int
	Name  string
	Phone string
	Email string

	Paid            bool
	LastPaymentDate *time.Time

	MaintenanceAmount decimal.Decimal
	ExtraCharges      decimal.Decimal
	LateFee           decimal.Decimal
	TotalDues         decimal.Decimal

	Status PaymentStatus
}

// PaymentRecord is one entry in a unit's append-only payment history.
type PaymentRecord struct {
	UnitID     int
	PaidAt     time.Time
	Amount     decimal.Decimal
	RecordedAt time.Time
}
