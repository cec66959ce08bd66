package ledger

import (
	"time"

	"github.com/societyops/societyctl/internal/model"
)

// SweepResult summarizes one late-fee pass.
type SweepResult struct {
	FeesApplied  int
	Reclassified int

	// Warnings holds per-unit persistence failures. The in-memory state is
	// still updated; a failed write is retried by the next sweep.
	Warnings []string
}

// Sweep runs the late-fee pass over every unit: delinquent units past the
// first due day get the flat late fee, and stale statuses from a previous
// cycle are downgraded. Safe to call at any frequency: a unit whose fee is
// already set this cycle is left untouched, so re-running is a no-op.
func (l *Ledger) Sweep(today time.Time) SweepResult {
	var res SweepResult

	for i := range l.units {
		u := &l.units[i]

		status, _ := ComputeStatus(*u, today, l.params)
		if status == model.StatusPaid {
			continue
		}

		changed := false
		if status == model.StatusLate && u.LateFee.IsZero() {
			u.LateFee = l.params.LateFee
			res.FeesApplied++
			changed = true
		}
		if u.Paid {
			// Last cycle's payment no longer covers today.
			u.Paid = false
			changed = true
		}
		if u.Status != status {
			u.Status = status
			res.Reclassified++
			changed = true
		}

		total := u.MaintenanceAmount.Add(u.ExtraCharges).Add(u.LateFee)
		if !u.TotalDues.Equal(total) {
			u.TotalDues = total
			changed = true
		}

		if !changed {
			continue
		}
		if err := l.st.SaveUnit(*u); err != nil {
			res.Warnings = append(res.Warnings, (&PersistenceError{Op: "sweep", Err: err}).Error())
		}
	}

	return res
}
