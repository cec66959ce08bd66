// Package report aggregates ledger state into admin-facing summaries.
package report

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/societyops/societyctl/internal/ledger"
	"github.com/societyops/societyctl/internal/model"
)

// Collection builds the current-cycle dashboard aggregate.
func Collection(units []model.Unit, cats []model.ExpenditureCategory) model.CollectionSummary {
	sum := model.CollectionSummary{TotalUnits: len(units)}

	for _, u := range units {
		sum.Expected = sum.Expected.Add(u.MaintenanceAmount)
		switch {
		case u.Paid:
			sum.PaidUnits++
			sum.Collected = sum.Collected.Add(u.MaintenanceAmount)
		default:
			sum.UnpaidUnits++
			sum.Outstanding = sum.Outstanding.Add(u.TotalDues)
			if u.Status == model.StatusLate {
				sum.LateUnits++
			}
		}
	}
	for _, c := range cats {
		sum.BudgetedSpend = sum.BudgetedSpend.Add(c.Amount)
	}
	return sum
}

// Monthly builds the per-unit payment report for one calendar month from the
// append-only payment history. When a unit paid more than once in the month,
// the last payment wins. A payment after the first due day carries the flat
// late fee in its reported total.
func Monthly(units []model.Unit, payments []model.PaymentRecord, month time.Time, p ledger.Params) model.MonthlyReport {
	rep := model.MonthlyReport{
		Month: time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, time.UTC),
	}

	byUnit := make(map[int][]model.PaymentRecord)
	for _, rec := range payments {
		if rec.PaidAt.Year() == month.Year() && rec.PaidAt.Month() == month.Month() {
			byUnit[rec.UnitID] = append(byUnit[rec.UnitID], rec)
		}
	}

	for _, u := range units {
		row := model.MonthlyReportRow{
			UnitID: u.ID,
			Name:   u.Name,
			Status: model.StatusUnpaid,
		}

		for _, rec := range byUnit[u.ID] {
			rec := rec
			row.Status = model.StatusPaid
			row.PaymentDate = &rec.PaidAt
			row.AmountPaid = rec.Amount
			row.LateFee = decimal.Zero
			if rec.PaidAt.Day() > p.FirstDueDay {
				row.LateFee = p.LateFee
			}
		}
		row.Total = row.AmountPaid.Add(row.LateFee)

		rep.Rows = append(rep.Rows, row)
		rep.Expected = rep.Expected.Add(u.MaintenanceAmount)
		rep.TotalCollected = rep.TotalCollected.Add(row.Total)
		rep.LateFeesCollected = rep.LateFeesCollected.Add(row.LateFee)
	}

	if rep.Expected.IsPositive() {
		rate, _ := rep.TotalCollected.Div(rep.Expected).Float64()
		rep.CollectionRate = rate * 100
	}
	return rep
}
