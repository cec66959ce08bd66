package store

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/societyops/societyctl/internal/model"
)

// defaultExpenditures is the starting monthly budget, carried over from the
// society's standing expense heads.
var defaultExpenditures = []model.ExpenditureCategory{
	{Name: "Watchman", Amount: decimal.NewFromInt(15000)},
	{Name: "Cleaning", Amount: decimal.NewFromInt(12000)},
	{Name: "Water Tanker", Amount: decimal.NewFromInt(8000)},
	{Name: "Electricity (Common Areas)", Amount: decimal.NewFromInt(5000)},
	{Name: "Garden Maintenance", Amount: decimal.NewFromInt(3000)},
	{Name: "Lift Maintenance", Amount: decimal.NewFromInt(4000)},
	{Name: "Security System", Amount: decimal.NewFromInt(2000)},
	{Name: "Emergency Fund", Amount: decimal.NewFromInt(5000)},
	{Name: "Repairs and Maintenance", Amount: decimal.NewFromInt(10000)},
}

// seedExpenditures backfills any absent default category. It runs on every
// open so a ledger adopted from an older version still gets the budget.
func (s *Store) seedExpenditures() error {
	for _, c := range defaultExpenditures {
		_, err := s.db.Exec(`INSERT OR IGNORE INTO expenditures (category, amount) VALUES (?, ?)`,
			c.Name, c.Amount.String())
		if err != nil {
			return fmt.Errorf("seeding expenditure %q: %w", c.Name, err)
		}
	}
	return nil
}

// Expenditures returns all budget categories sorted by name.
func (s *Store) Expenditures() ([]model.ExpenditureCategory, error) {
	rows, err := s.db.Query("SELECT category, amount FROM expenditures ORDER BY category")
	if err != nil {
		return nil, fmt.Errorf("loading expenditures: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var cats []model.ExpenditureCategory
	for rows.Next() {
		var c model.ExpenditureCategory
		var amount string
		if err := rows.Scan(&c.Name, &amount); err != nil {
			return nil, fmt.Errorf("scanning expenditure: %w", err)
		}
		c.Amount = decOrZero(amount)
		cats = append(cats, c)
	}
	return cats, rows.Err()
}

// SetExpenditure creates or updates a budget category.
func (s *Store) SetExpenditure(name string, amount decimal.Decimal) error {
	_, err := s.db.Exec(`INSERT INTO expenditures (category, amount) VALUES (?, ?)
		ON CONFLICT(category) DO UPDATE SET amount = excluded.amount`,
		name, amount.String())
	if err != nil {
		return fmt.Errorf("setting expenditure %q: %w", name, err)
	}
	return nil
}

// RemoveExpenditure deletes a budget category.
func (s *Store) RemoveExpenditure(name string) error {
	res, err := s.db.Exec("DELETE FROM expenditures WHERE category = ?", name)
	if err != nil {
		return fmt.Errorf("removing expenditure %q: %w", name, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("removing expenditure %q: no such category", name)
	}
	return nil
}

// FileComplaint appends a new complaint and returns its assigned id.
func (s *Store) FileComplaint(c model.Complaint) (int, error) {
	res, err := s.db.Exec(`INSERT INTO complaints (filed_at, unit_id, type, description, status, resolution)
		VALUES (?, ?, ?, ?, ?, ?)`,
		c.FiledAt.Format(dateLayout), c.UnitID, c.Type, c.Description,
		string(model.ComplaintOpen), "")
	if err != nil {
		return 0, fmt.Errorf("filing complaint: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("filing complaint: %w", err)
	}
	return int(id), nil
}

// Complaints returns all complaints, newest first.
func (s *Store) Complaints() ([]model.Complaint, error) {
	rows, err := s.db.Query(`SELECT id, filed_at, unit_id, type, description, status, resolution
		FROM complaints ORDER BY id DESC`)
	if err != nil {
		return nil, fmt.Errorf("loading complaints: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var complaints []model.Complaint
	for rows.Next() {
		var c model.Complaint
		var filedAt, status string
		if err := rows.Scan(&c.ID, &filedAt, &c.UnitID, &c.Type, &c.Description, &status, &c.Resolution); err != nil {
			return nil, fmt.Errorf("scanning complaint: %w", err)
		}
		c.FiledAt, _ = time.Parse(dateLayout, filedAt)
		c.Status = model.ComplaintStatus(status)
		complaints = append(complaints, c)
	}
	return complaints, rows.Err()
}

// UpdateComplaint sets a complaint's status and resolution text.
func (s *Store) UpdateComplaint(id int, status model.ComplaintStatus, resolution string) error {
	res, err := s.db.Exec("UPDATE complaints SET status = ?, resolution = ? WHERE id = ?",
		string(status), resolution, id)
	if err != nil {
		return fmt.Errorf("updating complaint %d: %w", id, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("updating complaint %d: no such complaint", id)
	}
	return nil
}

// AddAmenity registers a new amenity and returns its assigned id.
func (s *Store) AddAmenity(a model.Amenity) (int, error) {
	res, err := s.db.Exec(`INSERT INTO amenities (name, status, maintenance_every, last_maintenance, next_maintenance)
		VALUES (?, ?, ?, ?, ?)`,
		a.Name, string(a.Status), a.MaintenanceEveryDays,
		a.LastMaintenance.Format(dateLayout), a.NextMaintenance.Format(dateLayout))
	if err != nil {
		return 0, fmt.Errorf("adding amenity: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("adding amenity: %w", err)
	}
	return int(id), nil
}

// Amenities returns all amenities ordered by id.
func (s *Store) Amenities() ([]model.Amenity, error) {
	rows, err := s.db.Query(`SELECT id, name, status, maintenance_every, last_maintenance, next_maintenance
		FROM amenities ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("loading amenities: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var amenities []model.Amenity
	for rows.Next() {
		var a model.Amenity
		var status, last, next string
		if err := rows.Scan(&a.ID, &a.Name, &status, &a.MaintenanceEveryDays, &last, &next); err != nil {
			return nil, fmt.Errorf("scanning amenity: %w", err)
		}
		a.Status = model.AmenityStatus(status)
		a.LastMaintenance, _ = time.Parse(dateLayout, last)
		a.NextMaintenance, _ = time.Parse(dateLayout, next)
		amenities = append(amenities, a)
	}
	return amenities, rows.Err()
}

// SetAmenityStatus updates an amenity's availability.
func (s *Store) SetAmenityStatus(id int, status model.AmenityStatus) error {
	res, err := s.db.Exec("UPDATE amenities SET status = ? WHERE id = ?", string(status), id)
	if err != nil {
		return fmt.Errorf("updating amenity %d: %w", id, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("updating amenity %d: no such amenity", id)
	}
	return nil
}

// ScheduleMeeting appends a new meeting and returns its assigned id.
func (s *Store) ScheduleMeeting(m model.Meeting) (int, error) {
	res, err := s.db.Exec(`INSERT INTO meetings (date, type, agenda, attendees, minutes, status)
		VALUES (?, ?, ?, ?, '', 'Scheduled')`,
		m.Date.Format(dateLayout), m.Type, m.Agenda, joinHouses(m.Attendees))
	if err != nil {
		return 0, fmt.Errorf("scheduling meeting: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("scheduling meeting: %w", err)
	}
	return int(id), nil
}

// Meetings returns all meetings ordered by date.
func (s *Store) Meetings() ([]model.Meeting, error) {
	rows, err := s.db.Query(`SELECT id, date, type, agenda, attendees, minutes, status
		FROM meetings ORDER BY date, id`)
	if err != nil {
		return nil, fmt.Errorf("loading meetings: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var meetings []model.Meeting
	for rows.Next() {
		var m model.Meeting
		var date, attendees string
		if err := rows.Scan(&m.ID, &date, &m.Type, &m.Agenda, &attendees, &m.Minutes, &m.Status); err != nil {
			return nil, fmt.Errorf("scanning meeting: %w", err)
		}
		m.Date, _ = time.Parse(dateLayout, date)
		m.Attendees = splitHouses(attendees)
		meetings = append(meetings, m)
	}
	return meetings, rows.Err()
}

// PostNotice appends a notice and returns its assigned id.
func (s *Store) PostNotice(n model.Notice) (int, error) {
	res, err := s.db.Exec("INSERT INTO notices (posted_at, title, body) VALUES (?, ?, ?)",
		n.PostedAt.Format(dateLayout), n.Title, n.Body)
	if err != nil {
		return 0, fmt.Errorf("posting notice: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("posting notice: %w", err)
	}
	return int(id), nil
}

// Notices returns all notices, newest first.
func (s *Store) Notices() ([]model.Notice, error) {
	rows, err := s.db.Query("SELECT id, posted_at, title, body FROM notices ORDER BY id DESC")
	if err != nil {
		return nil, fmt.Errorf("loading notices: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var notices []model.Notice
	for rows.Next() {
		var n model.Notice
		var postedAt string
		if err := rows.Scan(&n.ID, &postedAt, &n.Title, &n.Body); err != nil {
			return nil, fmt.Errorf("scanning notice: %w", err)
		}
		n.PostedAt, _ = time.Parse(dateLayout, postedAt)
		notices = append(notices, n)
	}
	return notices, rows.Err()
}

// AddVendor registers a vendor and returns its assigned id.
func (s *Store) AddVendor(v model.Vendor) (int, error) {
	res, err := s.db.Exec("INSERT INTO vendors (name, service, contact, email) VALUES (?, ?, ?, ?)",
		v.Name, v.Service, v.Contact, v.Email)
	if err != nil {
		return 0, fmt.Errorf("adding vendor: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("adding vendor: %w", err)
	}
	return int(id), nil
}

// Vendors returns all vendors ordered by id.
func (s *Store) Vendors() ([]model.Vendor, error) {
	rows, err := s.db.Query("SELECT id, name, service, contact, email FROM vendors ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("loading vendors: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var vendors []model.Vendor
	for rows.Next() {
		var v model.Vendor
		if err := rows.Scan(&v.ID, &v.Name, &v.Service, &v.Contact, &v.Email); err != nil {
			return nil, fmt.Errorf("scanning vendor: %w", err)
		}
		vendors = append(vendors, v)
	}
	return vendors, rows.Err()
}

func joinHouses(houses []int) string {
	parts := make([]string, len(houses))
	for i, h := range houses {
		parts[i] = strconv.Itoa(h)
	}
	return strings.Join(parts, ",")
}

func splitHouses(s string) []int {
	if s == "" {
		return nil
	}
	var houses []int
	for _, part := range strings.Split(s, ",") {
		if h, err := strconv.Atoi(strings.TrimSpace(part)); err == nil {
			houses = append(houses, h)
		}
	}
	return houses
}
