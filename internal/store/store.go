// Package store provides the SQLite-backed durable ledger for the society.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/shopspring/decimal"

	"github.com/societyops/societyctl/internal/model"

	_ "modernc.org/sqlite" // register sqlite driver
)

const dateLayout = "2006-01-02"

// Seed describes how to populate a fresh ledger.
type Seed struct {
	UnitCount          int
	DefaultMaintenance decimal.Decimal
}

// Store wraps the ledger database. It is not safe for concurrent writers
// from multiple processes; the last save wins.
type Store struct {
	db *sql.DB

	// Warning is set when Open had to fall back to a fresh seeded ledger
	// because the existing file was unreadable. Non-fatal; surfaced to the
	// user by the caller.
	Warning string
}

// Open opens or creates the ledger database at the given path. A missing
// database is created and seeded; a corrupt one is sidelined to <path>.corrupt
// and replaced with a fresh seeded ledger, with Warning set.
func Open(dbPath string, seed Seed) (*Store, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}

	db, err := openAndMigrate(dbPath)
	if err == nil {
		s := &Store{db: db}
		if err := s.seed(seed); err != nil {
			_ = db.Close()
			return nil, err
		}
		return s, nil
	}

	// Existing file would not open as a ledger. Keep it for inspection and
	// start over rather than refusing to run.
	sidelined := dbPath + ".corrupt"
	if renameErr := os.Rename(dbPath, sidelined); renameErr != nil {
		return nil, fmt.Errorf("opening ledger db: %w", err)
	}
	db, err = openAndMigrate(dbPath)
	if err != nil {
		return nil, fmt.Errorf("recreating ledger db: %w", err)
	}

	s := &Store{
		db:      db,
		Warning: fmt.Sprintf("ledger was unreadable; moved to %s and reseeded", sidelined),
	}
	if err := s.seed(seed); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

func openAndMigrate(dbPath string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)&_pragma=foreign_keys(on)")
	if err != nil {
		return nil, fmt.Errorf("opening ledger db: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	if err := ensureUnitColumns(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

// ensureUnitColumns backfills columns a ledger from an older version may lack.
func ensureUnitColumns(db *sql.DB) error {
	rows, err := db.Query("PRAGMA table_info(units)")
	if err != nil {
		return fmt.Errorf("inspecting units table: %w", err)
	}
	defer func() { _ = rows.Close() }()

	present := make(map[string]bool)
	for rows.Next() {
		var cid int
		var name, ctype string
		var notNull, pk int
		var dflt sql.NullString
		if err := rows.Scan(&cid, &name, &ctype, &notNull, &dflt, &pk); err != nil {
			return fmt.Errorf("inspecting units table: %w", err)
		}
		present[name] = true
	}
	if err := rows.Err(); err != nil {
		return err
	}

	for _, col := range unitColumns {
		if present[col.name] {
			continue
		}
		stmt := fmt.Sprintf("ALTER TABLE units ADD COLUMN %s %s", col.name, col.define)
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("backfilling column %s: %w", col.name, err)
		}
	}
	return nil
}

// seed creates the fixed roster on first run and backfills absent default
// expenditure categories. An already-populated roster is left untouched.
func (s *Store) seed(seed Seed) error {
	if err := s.seedExpenditures(); err != nil {
		return err
	}

	var count int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM units").Scan(&count); err != nil {
		return fmt.Errorf("counting units: %w", err)
	}
	if count > 0 || seed.UnitCount <= 0 {
		return nil
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("seeding units: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for i := 1; i <= seed.UnitCount; i++ {
		_, err := tx.Exec(`INSERT INTO units
			(id, name, phone, email, paid, maintenance_amount, extra_charges, late_fee, total_dues, payment_status)
			VALUES (?, ?, ?, ?, 0, ?, '0', '0', ?, ?)`,
			i, fmt.Sprintf("Resident %d", i), "1234567890", "resident@example.com",
			seed.DefaultMaintenance.String(), seed.DefaultMaintenance.String(), string(model.StatusUnpaid),
		)
		if err != nil {
			return fmt.Errorf("seeding unit %d: %w", i, err)
		}
	}
	return tx.Commit()
}

// Close closes the ledger database.
func (s *Store) Close() error {
	return s.db.Close()
}

// LoadUnits reads the full roster ordered by house number. Unparsable money
// values degrade to zero and unparsable dates to absent; a bad cell never
// fails the load.
func (s *Store) LoadUnits() ([]model.Unit, error) {
	rows, err := s.db.Query(`SELECT
		id, name, phone, email, paid, last_payment_date,
		maintenance_amount, extra_charges, late_fee, total_dues, payment_status
		FROM units ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("loading units: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var units []model.Unit
	for rows.Next() {
		var u model.Unit
		var paid int
		var lastPaid sql.NullString
		var maint, extra, fee, total, status string

		err := rows.Scan(&u.ID, &u.Name, &u.Phone, &u.Email, &paid, &lastPaid,
			&maint, &extra, &fee, &total, &status)
		if err != nil {
			return nil, fmt.Errorf("scanning unit: %w", err)
		}

		u.Paid = paid != 0
		if lastPaid.Valid && lastPaid.String != "" {
			if t, err := time.Parse(dateLayout, lastPaid.String); err == nil {
				u.LastPaymentDate = &t
			}
		}
		u.MaintenanceAmount = decOrZero(maint)
		u.ExtraCharges = decOrZero(extra)
		u.LateFee = decOrZero(fee)
		u.TotalDues = decOrZero(total)
		u.Status = statusOrUnpaid(status)

		units = append(units, u)
	}
	return units, rows.Err()
}

// SaveUnit persists one unit's current financial state.
func (s *Store) SaveUnit(u model.Unit) error {
	return s.saveUnitExec(s.db, u)
}

type execer interface {
	Exec(query string, args ...any) (sql.Result, error)
}

func (s *Store) saveUnitExec(e execer, u model.Unit) error {
	lastPaid := sql.NullString{}
	if u.LastPaymentDate != nil {
		lastPaid = sql.NullString{String: u.LastPaymentDate.Format(dateLayout), Valid: true}
	}
	paid := 0
	if u.Paid {
		paid = 1
	}

	res, err := e.Exec(`UPDATE units SET
		name = ?, phone = ?, email = ?, paid = ?, last_payment_date = ?,
		maintenance_amount = ?, extra_charges = ?, late_fee = ?, total_dues = ?, payment_status = ?
		WHERE id = ?`,
		u.Name, u.Phone, u.Email, paid, lastPaid,
		u.MaintenanceAmount.String(), u.ExtraCharges.String(), u.LateFee.String(),
		u.TotalDues.String(), string(u.Status), u.ID,
	)
	if err != nil {
		return fmt.Errorf("saving unit %d: %w", u.ID, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("saving unit %d: no such row", u.ID)
	}
	return nil
}

// SavePayment atomically persists a unit's post-payment state and appends the
// payment record. Either both land or neither does.
func (s *Store) SavePayment(u model.Unit, p model.PaymentRecord) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("recording payment: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if err := s.saveUnitExec(tx, u); err != nil {
		return err
	}
	_, err = tx.Exec(`INSERT INTO payments (unit_id, paid_at, amount, recorded_at)
		VALUES (?, ?, ?, ?)`,
		p.UnitID, p.PaidAt.Format(dateLayout), p.Amount.String(),
		p.RecordedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("appending payment for unit %d: %w", p.UnitID, err)
	}
	return tx.Commit()
}

// PaymentsFor returns a unit's payment history in append order.
func (s *Store) PaymentsFor(unitID int) ([]model.PaymentRecord, error) {
	rows, err := s.db.Query(`SELECT unit_id, paid_at, amount, recorded_at
		FROM payments WHERE unit_id = ? ORDER BY seq`, unitID)
	if err != nil {
		return nil, fmt.Errorf("loading payments for unit %d: %w", unitID, err)
	}
	defer func() { _ = rows.Close() }()

	var records []model.PaymentRecord
	for rows.Next() {
		var p model.PaymentRecord
		var paidAt, amount, recordedAt string
		if err := rows.Scan(&p.UnitID, &paidAt, &amount, &recordedAt); err != nil {
			return nil, fmt.Errorf("scanning payment: %w", err)
		}
		p.PaidAt, _ = time.Parse(dateLayout, paidAt)
		p.Amount = decOrZero(amount)
		p.RecordedAt, _ = time.Parse(time.RFC3339, recordedAt)
		records = append(records, p)
	}
	return records, rows.Err()
}

// AllPayments returns every payment record in append order, for reporting.
func (s *Store) AllPayments() ([]model.PaymentRecord, error) {
	rows, err := s.db.Query(`SELECT unit_id, paid_at, amount, recorded_at
		FROM payments ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("loading payments: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var records []model.PaymentRecord
	for rows.Next() {
		var p model.PaymentRecord
		var paidAt, amount, recordedAt string
		if err := rows.Scan(&p.UnitID, &paidAt, &amount, &recordedAt); err != nil {
			return nil, fmt.Errorf("scanning payment: %w", err)
		}
		p.PaidAt, _ = time.Parse(dateLayout, paidAt)
		p.Amount = decOrZero(amount)
		p.RecordedAt, _ = time.Parse(time.RFC3339, recordedAt)
		records = append(records, p)
	}
	return records, rows.Err()
}

func decOrZero(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

func statusOrUnpaid(s string) model.PaymentStatus {
	switch st := model.PaymentStatus(s); st {
	case model.StatusUnpaid, model.StatusLate, model.StatusPaid:
		return st
	default:
		return model.StatusUnpaid
	}
}
