package ledger

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/societyops/societyctl/internal/model"
	"github.com/societyops/societyctl/internal/store"
)

// Ledger is the owning handle over the loaded roster. It is constructed once
// per session, handed to commands, and is the only path that mutates unit
// financial state. Reads return copies; callers never write unit fields
// directly.
type Ledger struct {
	st     *store.Store
	params Params
	units  []model.Unit
	byID   map[int]int
}

// Open loads the full roster from the store.
func Open(st *store.Store, params Params) (*Ledger, error) {
	units, err := st.LoadUnits()
	if err != nil {
		return nil, fmt.Errorf("opening ledger: %w", err)
	}

	byID := make(map[int]int, len(units))
	for i, u := range units {
		byID[u.ID] = i
	}

	return &Ledger{st: st, params: params, units: units, byID: byID}, nil
}

// Params returns the billing constants this ledger runs with.
func (l *Ledger) Params() Params {
	return l.params
}

// Units returns a copy of the roster ordered by house number.
func (l *Ledger) Units() []model.Unit {
	out := make([]model.Unit, len(l.units))
	copy(out, l.units)
	return out
}

// Unit returns one unit by house number.
func (l *Ledger) Unit(id int) (model.Unit, error) {
	idx, ok := l.byID[id]
	if !ok {
		return model.Unit{}, fmt.Errorf("unit %d: %w", id, ErrUnitNotFound)
	}
	return l.units[idx], nil
}

// History returns a unit's append-only payment history.
func (l *Ledger) History(id int) ([]model.PaymentRecord, error) {
	if _, ok := l.byID[id]; !ok {
		return nil, fmt.Errorf("unit %d: %w", id, ErrUnitNotFound)
	}
	return l.st.PaymentsFor(id)
}

// SetMaintenance changes a unit's recurring base charge and recomputes dues.
func (l *Ledger) SetMaintenance(id int, amount decimal.Decimal, today time.Time) error {
	if amount.IsNegative() {
		return fmt.Errorf("maintenance %s: %w", amount, ErrInvalidAmount)
	}
	return l.mutate(id, "set maintenance", today, func(u *model.Unit) {
		u.MaintenanceAmount = amount
	})
}

// AddExtraCharge adds an ad-hoc surcharge to a unit. It is cleared on the
// unit's next successful payment.
func (l *Ledger) AddExtraCharge(id int, amount decimal.Decimal, today time.Time) error {
	if amount.IsNegative() {
		return fmt.Errorf("extra charge %s: %w", amount, ErrInvalidAmount)
	}
	return l.mutate(id, "add extra charge", today, func(u *model.Unit) {
		u.ExtraCharges = u.ExtraCharges.Add(amount)
	})
}

// SetContact updates a unit's occupant details. No financial effect.
func (l *Ledger) SetContact(id int, name, phone, email string) error {
	idx, ok := l.byID[id]
	if !ok {
		return fmt.Errorf("unit %d: %w", id, ErrUnitNotFound)
	}
	u := &l.units[idx]
	if name != "" {
		u.Name = name
	}
	if phone != "" {
		u.Phone = phone
	}
	if email != "" {
		u.Email = email
	}
	if err := l.st.SaveUnit(*u); err != nil {
		return &PersistenceError{Op: "set contact", Err: err}
	}
	return nil
}

// mutate applies fn to the unit, recomputes the derived fields, and persists.
// The total-dues invariant is re-established here so no caller can leave the
// additive fields and the total out of step.
func (l *Ledger) mutate(id int, op string, today time.Time, fn func(*model.Unit)) error {
	idx, ok := l.byID[id]
	if !ok {
		return fmt.Errorf("unit %d: %w", id, ErrUnitNotFound)
	}

	u := &l.units[idx]
	fn(u)
	u.TotalDues = u.MaintenanceAmount.Add(u.ExtraCharges).Add(u.LateFee)
	if !u.Paid {
		u.Status, _ = ComputeStatus(*u, today, l.params)
	}

	if err := l.st.SaveUnit(*u); err != nil {
		return &PersistenceError{Op: op, Err: err}
	}
	return nil
}
