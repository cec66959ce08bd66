package ledger

import (
	"reflect"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/societyops/societyctl/internal/model"
)

func TestSweep_BeforeDueDay(t *testing.T) {
	led, _ := openTestLedger(t, 6)

	res := led.Sweep(day(2026, time.March, 5))
	if res.FeesApplied != 0 {
		t.Errorf("fees applied = %d, want 0 before due day", res.FeesApplied)
	}

	u, _ := led.Unit(5)
	if u.Status != model.StatusUnpaid {
		t.Errorf("unit 5 status = %s, want Unpaid", u.Status)
	}
	if !u.LateFee.IsZero() {
		t.Errorf("unit 5 late fee = %s, want 0", u.LateFee)
	}
	checkTotals(t, led)
}

func TestSweep_AfterDueDay(t *testing.T) {
	led, _ := openTestLedger(t, 6)

	res := led.Sweep(day(2026, time.March, 15))
	if res.FeesApplied != 6 {
		t.Errorf("fees applied = %d, want 6", res.FeesApplied)
	}

	u, _ := led.Unit(5)
	if u.Status != model.StatusLate {
		t.Errorf("unit 5 status = %s, want Late", u.Status)
	}
	if !u.LateFee.Equal(decimal.NewFromInt(1000)) {
		t.Errorf("unit 5 late fee = %s, want 1000", u.LateFee)
	}
	if !u.TotalDues.Equal(decimal.NewFromInt(3000)) {
		t.Errorf("unit 5 total dues = %s, want 3000", u.TotalDues)
	}
	checkTotals(t, led)
}

func TestSweep_Idempotent(t *testing.T) {
	led, _ := openTestLedger(t, 6)
	today := day(2026, time.March, 15)

	led.Sweep(today)
	first := led.Units()

	res := led.Sweep(today)
	if res.FeesApplied != 0 {
		t.Errorf("second sweep applied %d fees, want 0", res.FeesApplied)
	}
	second := led.Units()

	if !reflect.DeepEqual(first, second) {
		t.Error("second sweep changed ledger state")
	}
	checkTotals(t, led)
}

func TestSweep_SkipsPaidUnits(t *testing.T) {
	led, _ := openTestLedger(t, 6)
	today := day(2026, time.March, 15)

	if _, err := led.RecordPayment(2, decimal.NewFromInt(2000), day(2026, time.March, 4)); err != nil {
		t.Fatal(err)
	}

	led.Sweep(today)

	u, _ := led.Unit(2)
	if u.Status != model.StatusPaid {
		t.Errorf("paid unit status = %s, want Paid", u.Status)
	}
	if !u.LateFee.IsZero() {
		t.Errorf("paid unit late fee = %s, want 0", u.LateFee)
	}
}

func TestSweep_DowngradesStalePaidFlag(t *testing.T) {
	led, _ := openTestLedger(t, 6)

	// Pay in March, then sweep in April: the paid flag no longer covers the
	// current cycle.
	if _, err := led.RecordPayment(4, decimal.NewFromInt(2000), day(2026, time.March, 4)); err != nil {
		t.Fatal(err)
	}

	led.Sweep(day(2026, time.April, 6))

	u, _ := led.Unit(4)
	if u.Paid {
		t.Error("paid flag should reset for the new cycle")
	}
	if u.Status != model.StatusUnpaid {
		t.Errorf("status = %s, want Unpaid (before new cycle's due day)", u.Status)
	}
	if !u.LateFee.IsZero() {
		t.Errorf("late fee = %s, want 0 before due day", u.LateFee)
	}
}

func TestSweep_PersistsAcrossReopen(t *testing.T) {
	led, st := openTestLedger(t, 6)

	led.Sweep(day(2026, time.March, 15))

	reopened, err := Open(st, testParams())
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	u, _ := reopened.Unit(3)
	if u.Status != model.StatusLate {
		t.Errorf("reloaded status = %s, want Late", u.Status)
	}
	if !u.LateFee.Equal(decimal.NewFromInt(1000)) {
		t.Errorf("reloaded late fee = %s, want 1000", u.LateFee)
	}
}

func TestSweep_SaveFailureSurfacedAsWarnings(t *testing.T) {
	led, st := openTestLedger(t, 6)

	_ = st.Close()

	res := led.Sweep(day(2026, time.March, 15))
	if res.FeesApplied != 6 {
		t.Errorf("fees applied = %d, want 6", res.FeesApplied)
	}
	if len(res.Warnings) != 6 {
		t.Fatalf("got %d warnings, want one per failed save", len(res.Warnings))
	}

	// Fees stay applied in memory so the next successful sweep persists them.
	u, _ := led.Unit(2)
	if !u.LateFee.Equal(decimal.NewFromInt(1000)) {
		t.Errorf("in-memory late fee = %s, want 1000 despite failed save", u.LateFee)
	}
	if u.Status != model.StatusLate {
		t.Errorf("in-memory status = %s, want Late", u.Status)
	}
}

func TestSweep_FlatFeeAcrossCycles(t *testing.T) {
	led, _ := openTestLedger(t, 6)

	// Delinquent through two cycles: the fee stays flat, it never compounds.
	led.Sweep(day(2026, time.March, 15))
	led.Sweep(day(2026, time.April, 15))

	u, _ := led.Unit(1)
	if !u.LateFee.Equal(decimal.NewFromInt(1000)) {
		t.Errorf("late fee after two delinquent cycles = %s, want flat 1000", u.LateFee)
	}
	checkTotals(t, led)
}
