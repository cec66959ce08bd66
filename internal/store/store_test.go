package store

import (
	"database/sql"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/societyops/societyctl/internal/model"
)

func testSeed() Seed {
	return Seed{
		UnitCount:          40,
		DefaultMaintenance: decimal.NewFromInt(2000),
	}
}

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "ledger.db"), testSeed())
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestOpen_SeedsRoster(t *testing.T) {
	s := openTestStore(t)

	if s.Warning != "" {
		t.Errorf("unexpected warning: %s", s.Warning)
	}

	units, err := s.LoadUnits()
	if err != nil {
		t.Fatalf("load units: %v", err)
	}
	if len(units) != 40 {
		t.Fatalf("got %d units, want 40", len(units))
	}

	u := units[4]
	if u.ID != 5 {
		t.Errorf("unit id = %d, want 5", u.ID)
	}
	if u.Name != "Resident 5" {
		t.Errorf("name = %q, want Resident 5", u.Name)
	}
	if u.Paid {
		t.Error("seeded unit should be unpaid")
	}
	if u.LastPaymentDate != nil {
		t.Error("seeded unit should have no payment date")
	}
	if !u.MaintenanceAmount.Equal(decimal.NewFromInt(2000)) {
		t.Errorf("maintenance = %s, want 2000", u.MaintenanceAmount)
	}
	if !u.LateFee.IsZero() || !u.ExtraCharges.IsZero() {
		t.Error("seeded unit should carry no fees or charges")
	}
	if u.Status != model.StatusUnpaid {
		t.Errorf("status = %s, want Unpaid", u.Status)
	}
}

func TestOpen_DoesNotReseedExistingRoster(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ledger.db")

	s, err := Open(path, testSeed())
	if err != nil {
		t.Fatal(err)
	}
	units, _ := s.LoadUnits()
	u := units[0]
	u.Name = "Asha Rao"
	if err := s.SaveUnit(u); err != nil {
		t.Fatal(err)
	}
	_ = s.Close()

	s2, err := Open(path, testSeed())
	if err != nil {
		t.Fatal(err)
	}
	defer s2.Close()
	units2, _ := s2.LoadUnits()
	if len(units2) != 40 {
		t.Fatalf("got %d units after reopen, want 40", len(units2))
	}
	if units2[0].Name != "Asha Rao" {
		t.Errorf("name = %q, want edit to survive reopen", units2[0].Name)
	}
}

func TestLoadSave_RoundTripStable(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ledger.db")

	s, err := Open(path, testSeed())
	if err != nil {
		t.Fatal(err)
	}

	units, _ := s.LoadUnits()
	paid := time.Date(2026, time.March, 4, 0, 0, 0, 0, time.UTC)
	units[2].Paid = true
	units[2].LastPaymentDate = &paid
	units[2].Status = model.StatusPaid
	for _, u := range units {
		if err := s.SaveUnit(u); err != nil {
			t.Fatal(err)
		}
	}
	first, _ := s.LoadUnits()

	// Two more save/load cycles must not drift any field.
	for cycle := 0; cycle < 2; cycle++ {
		for _, u := range first {
			if err := s.SaveUnit(u); err != nil {
				t.Fatal(err)
			}
		}
		again, _ := s.LoadUnits()
		if len(again) != len(first) {
			t.Fatalf("cycle %d: got %d units, want %d", cycle, len(again), len(first))
		}
		for i := range first {
			if !unitsEqual(first[i], again[i]) {
				t.Fatalf("cycle %d: unit %d drifted: %+v != %+v", cycle, first[i].ID, first[i], again[i])
			}
		}
	}
	_ = s.Close()
}

func unitsEqual(a, b model.Unit) bool {
	if a.ID != b.ID || a.Name != b.Name || a.Phone != b.Phone || a.Email != b.Email ||
		a.Paid != b.Paid || a.Status != b.Status {
		return false
	}
	if (a.LastPaymentDate == nil) != (b.LastPaymentDate == nil) {
		return false
	}
	if a.LastPaymentDate != nil && !a.LastPaymentDate.Equal(*b.LastPaymentDate) {
		return false
	}
	return a.MaintenanceAmount.Equal(b.MaintenanceAmount) &&
		a.ExtraCharges.Equal(b.ExtraCharges) &&
		a.LateFee.Equal(b.LateFee) &&
		a.TotalDues.Equal(b.TotalDues)
}

func TestOpen_BackfillsMissingColumns(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ledger.db")

	// Ledger written by an older version: no late_fee or payment_status.
	db, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatal(err)
	}
	_, err = db.Exec(`CREATE TABLE units (
		id INTEGER PRIMARY KEY,
		name TEXT NOT NULL,
		phone TEXT NOT NULL DEFAULT '',
		email TEXT NOT NULL DEFAULT '',
		paid INTEGER NOT NULL DEFAULT 0,
		last_payment_date TEXT,
		maintenance_amount TEXT NOT NULL DEFAULT '0',
		extra_charges TEXT NOT NULL DEFAULT '0',
		total_dues TEXT NOT NULL DEFAULT '0'
	)`)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := db.Exec(`INSERT INTO units (id, name, paid, maintenance_amount, total_dues)
		VALUES (1, 'Asha Rao', 1, '2500', '2500')`); err != nil {
		t.Fatal(err)
	}
	_ = db.Close()

	s, err := Open(path, testSeed())
	if err != nil {
		t.Fatalf("open over old schema: %v", err)
	}
	defer s.Close()

	if s.Warning != "" {
		t.Errorf("backfill should not be treated as corruption: %s", s.Warning)
	}

	units, err := s.LoadUnits()
	if err != nil {
		t.Fatalf("load units: %v", err)
	}
	if len(units) != 1 {
		t.Fatalf("got %d units, want the 1 existing row (no reseed)", len(units))
	}

	u := units[0]
	if u.Name != "Asha Rao" || !u.Paid {
		t.Errorf("existing data not preserved: %+v", u)
	}
	if !u.MaintenanceAmount.Equal(decimal.NewFromInt(2500)) {
		t.Errorf("maintenance = %s, want 2500 preserved", u.MaintenanceAmount)
	}
	if !u.LateFee.IsZero() {
		t.Errorf("backfilled late fee = %s, want 0", u.LateFee)
	}
	if u.Status != model.StatusUnpaid {
		t.Errorf("backfilled status = %s, want Unpaid default", u.Status)
	}
}

func TestOpen_CorruptFileFallsBackToSeed(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ledger.db")

	if err := os.WriteFile(path, []byte("this is not a sqlite database"), 0o600); err != nil {
		t.Fatal(err)
	}

	s, err := Open(path, testSeed())
	if err != nil {
		t.Fatalf("open over corrupt file: %v", err)
	}
	defer s.Close()

	if s.Warning == "" {
		t.Error("expected a degraded-load warning")
	}
	if _, err := os.Stat(path + ".corrupt"); err != nil {
		t.Errorf("corrupt file not sidelined: %v", err)
	}

	units, err := s.LoadUnits()
	if err != nil {
		t.Fatal(err)
	}
	if len(units) != 40 {
		t.Fatalf("got %d units, want fresh seeded roster of 40", len(units))
	}
}

func TestLoadUnits_BadCellsDegrade(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ledger.db")

	s, err := Open(path, testSeed())
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()

	// Hand-edited garbage in one row: amounts unparsable, date and status nonsense.
	if _, err := s.db.Exec(`UPDATE units SET late_fee = 'NaN-ish', last_payment_date = 'yesterday', payment_status = 'Pending??' WHERE id = 7`); err != nil {
		t.Fatal(err)
	}

	units, err := s.LoadUnits()
	if err != nil {
		t.Fatalf("load with bad cells: %v", err)
	}
	u := units[6]
	if !u.LateFee.IsZero() {
		t.Errorf("bad late fee = %s, want degraded to 0", u.LateFee)
	}
	if u.LastPaymentDate != nil {
		t.Error("bad date should degrade to absent")
	}
	if u.Status != model.StatusUnpaid {
		t.Errorf("bad status loaded as %q, want degraded to Unpaid", u.Status)
	}
}

func TestSavePayment_Atomic(t *testing.T) {
	s := openTestStore(t)

	units, _ := s.LoadUnits()
	u := units[0]
	paid := time.Date(2026, time.March, 4, 0, 0, 0, 0, time.UTC)
	u.Paid = true
	u.LastPaymentDate = &paid
	u.Status = model.StatusPaid

	rec := model.PaymentRecord{
		UnitID:     u.ID,
		PaidAt:     paid,
		Amount:     decimal.NewFromInt(2000),
		RecordedAt: time.Now().UTC(),
	}
	if err := s.SavePayment(u, rec); err != nil {
		t.Fatalf("save payment: %v", err)
	}

	history, err := s.PaymentsFor(u.ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(history) != 1 {
		t.Fatalf("history length = %d, want 1", len(history))
	}
	if !history[0].PaidAt.Equal(paid) {
		t.Errorf("paid at = %s, want %s", history[0].PaidAt, paid)
	}

	// A payment against a unit row that doesn't exist must leave no trace.
	bad := u
	bad.ID = 999
	rec.UnitID = 999
	if err := s.SavePayment(bad, rec); err == nil {
		t.Fatal("expected error for unknown unit row")
	}
	all, _ := s.AllPayments()
	if len(all) != 1 {
		t.Fatalf("payments after failed save = %d, want 1 (rolled back)", len(all))
	}
}

func TestPaymentsFor_AppendOrder(t *testing.T) {
	s := openTestStore(t)

	units, _ := s.LoadUnits()
	u := units[0]
	for _, d := range []int{5, 12, 19} {
		paid := time.Date(2026, time.March, d, 0, 0, 0, 0, time.UTC)
		rec := model.PaymentRecord{UnitID: u.ID, PaidAt: paid, Amount: decimal.NewFromInt(100), RecordedAt: time.Now().UTC()}
		if err := s.SavePayment(u, rec); err != nil {
			t.Fatal(err)
		}
	}

	history, err := s.PaymentsFor(u.ID)
	if err != nil {
		t.Fatal(err)
	}
	days := make([]int, len(history))
	for i, rec := range history {
		days[i] = rec.PaidAt.Day()
	}
	if !reflect.DeepEqual(days, []int{5, 12, 19}) {
		t.Errorf("history order = %v, want [5 12 19]", days)
	}
}
