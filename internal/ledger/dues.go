// Package ledger implements the dues engine, late-fee sweeper and payment
// recorder over the society's unit roster.
package ledger

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/societyops/societyctl/internal/model"
)

// Params are the billing constants the engine runs with. They come from
// configuration, never from literals inside the engine.
type Params struct {
	LateFee     decimal.Decimal
	FirstDueDay int
}

// Delinquent reports whether the unit has no payment on record for today's
// billing cycle. A missing last-payment date counts as delinquent.
func Delinquent(u model.Unit, today time.Time) bool {
	if u.LastPaymentDate == nil {
		return true
	}
	last := *u.LastPaymentDate
	if last.Year() != today.Year() {
		return last.Year() < today.Year()
	}
	return last.Month() < today.Month()
}

// ComputeStatus classifies a unit for the given date and returns the status
// together with the total dues. Pure: the unit is not mutated.
//
// A delinquent unit turns Late only after the first due day has passed, and
// the projected late fee is always the flat amount; recomputing within the
// same cycle never stacks fees.
func ComputeStatus(u model.Unit, today time.Time, p Params) (model.PaymentStatus, decimal.Decimal) {
	if !Delinquent(u, today) {
		return model.StatusPaid, u.MaintenanceAmount.Add(u.ExtraCharges).Add(u.LateFee)
	}
	if today.Day() > p.FirstDueDay {
		return model.StatusLate, u.MaintenanceAmount.Add(u.ExtraCharges).Add(p.LateFee)
	}
	return model.StatusUnpaid, u.MaintenanceAmount.Add(u.ExtraCharges).Add(u.LateFee)
}
