package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExpenditureCategory maps a budget category name to its monthly amount.
type ExpenditureCategory struct {
	Name   string
	Amount decimal.Decimal
}

// ComplaintStatus is the workflow state of a filed complaint.
type ComplaintStatus string

const (
	ComplaintOpen       ComplaintStatus = "Open"
	ComplaintInProgress ComplaintStatus = "In Progress"
	ComplaintResolved   ComplaintStatus = "Resolved"
	ComplaintClosed     ComplaintStatus = "Closed"
)

// ComplaintTypes are the accepted complaint categories.
var ComplaintTypes = []string{"Maintenance", "Security", "Cleanliness", "Noise", "Others"}

// Complaint is one resident-filed issue.
type Complaint struct {
	ID          int
	FiledAt     time.Time
	UnitID      int
	Type        string
	Description string
	Status      ComplaintStatus
	Resolution  string
}

// AmenityStatus is the availability state of a shared amenity.
type AmenityStatus string

const (
	AmenityAvailable        AmenityStatus = "Available"
	AmenityUnderMaintenance AmenityStatus = "Under Maintenance"
	AmenityReserved         AmenityStatus = "Reserved"
)

// Amenity is one shared facility with a maintenance schedule.
type Amenity struct {
	ID                   int
	Name                 string
	Status               AmenityStatus
	MaintenanceEveryDays int
	LastMaintenance      time.Time
	NextMaintenance      time.Time
}

// MeetingTypes are the accepted meeting categories.
var MeetingTypes = []string{"General Body", "Committee", "Emergency"}

// Meeting is one scheduled society meeting.
type Meeting struct {
	ID        int
	Date      time.Time
	Type      string
	Agenda    string
	Attendees []int // house numbers expected to attend
	Minutes   string
	Status    string
}

// Notice is one posted society notice.
type Notice struct {
	ID       int
	PostedAt time.Time
	Title    string
	Body     string
}

// Vendor is one service provider on the society's roster.
type Vendor struct {
	ID      int
	Name    string
	Service string
	Contact string
	Email   string
}

// CollectionSummary is the admin dashboard aggregate for the current cycle.
type CollectionSummary struct {
	TotalUnits    int
	PaidUnits     int
	UnpaidUnits   int
	LateUnits     int
	Expected      decimal.Decimal
	Collected     decimal.Decimal
	Outstanding   decimal.Decimal
	BudgetedSpend decimal.Decimal
}

// MonthlyReportRow is one unit's line in the monthly payment report.
type MonthlyReportRow struct {
	UnitID      int
	Name        string
	Status      PaymentStatus
	PaymentDate *time.Time
	AmountPaid  decimal.Decimal
	LateFee     decimal.Decimal
	Total       decimal.Decimal
}

// MonthlyReport aggregates one calendar month of payments across the roster.
type MonthlyReport struct {
	Month             time.Time
	Rows              []MonthlyReportRow
	TotalCollected    decimal.Decimal
	LateFeesCollected decimal.Decimal
	Expected          decimal.Decimal
	CollectionRate    float64
}
