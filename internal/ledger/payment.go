package ledger

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/societyops/societyctl/internal/model"
)

// RecordPayment applies a resident payment: appends the history record, marks
// the unit paid for the current cycle, clears the extra charges and late fee,
// recomputes dues, and persists the unit row and the payment in one
// transaction.
//
// The amount is recorded verbatim; partial and over-payments are accepted.
// A payment dated before the unit's last recorded payment is rejected so the
// history stays in date order. On a persistence failure the in-memory unit
// stays mutated and a *PersistenceError is returned.
func (l *Ledger) RecordPayment(unitID int, amount decimal.Decimal, today time.Time) (model.PaymentRecord, error) {
	idx, ok := l.byID[unitID]
	if !ok {
		return model.PaymentRecord{}, fmt.Errorf("unit %d: %w", unitID, ErrUnitNotFound)
	}
	if amount.IsNegative() {
		return model.PaymentRecord{}, fmt.Errorf("amount %s: %w", amount, ErrInvalidAmount)
	}

	u := &l.units[idx]

	paidAt := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	if u.LastPaymentDate != nil && paidAt.Before(*u.LastPaymentDate) {
		return model.PaymentRecord{}, fmt.Errorf("unit %d: payment dated %s, last recorded %s: %w",
			unitID, paidAt.Format("2006-01-02"), u.LastPaymentDate.Format("2006-01-02"), ErrBackdatedPayment)
	}
	rec := model.PaymentRecord{
		UnitID:     unitID,
		PaidAt:     paidAt,
		Amount:     amount,
		RecordedAt: time.Now().UTC(),
	}

	u.Paid = true
	u.LastPaymentDate = &paidAt
	u.ExtraCharges = decimal.Zero
	u.LateFee = decimal.Zero
	u.Status, u.TotalDues = ComputeStatus(*u, today, l.params)

	if err := l.st.SavePayment(*u, rec); err != nil {
		return rec, &PersistenceError{Op: "record payment", Err: err}
	}
	return rec, nil
}
