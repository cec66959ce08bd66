package store

const schemaSQL = `
CREATE TABLE IF NOT EXISTS units (
    id                   INTEGER PRIMARY KEY,
    name                 TEXT NOT NULL,
    phone                TEXT NOT NULL DEFAULT '',
    email                TEXT NOT NULL DEFAULT '',
    paid                 INTEGER NOT NULL DEFAULT 0,
    last_payment_date    TEXT,
    maintenance_amount   TEXT NOT NULL DEFAULT '0',
    extra_charges        TEXT NOT NULL DEFAULT '0',
    late_fee             TEXT NOT NULL DEFAULT '0',
    total_dues           TEXT NOT NULL DEFAULT '0',
    payment_status       TEXT NOT NULL DEFAULT 'Unpaid'
);

CREATE TABLE IF NOT EXISTS payments (
    seq                  INTEGER PRIMARY KEY AUTOINCREMENT,
    unit_id              INTEGER NOT NULL REFERENCES units(id),
    paid_at              TEXT NOT NULL,
    amount               TEXT NOT NULL,
    recorded_at          TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS expenditures (
    category             TEXT PRIMARY KEY,
    amount               TEXT NOT NULL DEFAULT '0'
);

CREATE TABLE IF NOT EXISTS complaints (
    id                   INTEGER PRIMARY KEY AUTOINCREMENT,
    filed_at             TEXT NOT NULL,
    unit_id              INTEGER NOT NULL,
    type                 TEXT NOT NULL,
    description          TEXT NOT NULL DEFAULT '',
    status               TEXT NOT NULL DEFAULT 'Open',
    resolution           TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS amenities (
    id                   INTEGER PRIMARY KEY AUTOINCREMENT,
    name                 TEXT NOT NULL,
    status               TEXT NOT NULL DEFAULT 'Available',
    maintenance_every    INTEGER NOT NULL DEFAULT 30,
    last_maintenance     TEXT NOT NULL,
    next_maintenance     TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS meetings (
    id                   INTEGER PRIMARY KEY AUTOINCREMENT,
    date                 TEXT NOT NULL,
    type                 TEXT NOT NULL,
    agenda               TEXT NOT NULL DEFAULT '',
    attendees            TEXT NOT NULL DEFAULT '',
    minutes              TEXT NOT NULL DEFAULT '',
    status               TEXT NOT NULL DEFAULT 'Scheduled'
);

CREATE TABLE IF NOT EXISTS notices (
    id                   INTEGER PRIMARY KEY AUTOINCREMENT,
    posted_at            TEXT NOT NULL,
    title                TEXT NOT NULL,
    body                 TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS vendors (
    id                   INTEGER PRIMARY KEY AUTOINCREMENT,
    name                 TEXT NOT NULL,
    service              TEXT NOT NULL DEFAULT '',
    contact              TEXT NOT NULL DEFAULT '',
    email                TEXT NOT NULL DEFAULT ''
);

CREATE INDEX IF NOT EXISTS idx_payments_unit ON payments(unit_id);
CREATE INDEX IF NOT EXISTS idx_complaints_status ON complaints(status);
`

// unitColumns maps every expected units column to the ALTER TABLE clause that
// backfills it. Ledgers written by older versions may be missing columns; each
// one is added with its documented default without touching existing rows' data.
var unitColumns = []struct {
	name   string
	define string
}{
	{"name", "TEXT NOT NULL DEFAULT ''"},
	{"phone", "TEXT NOT NULL DEFAULT ''"},
	{"email", "TEXT NOT NULL DEFAULT ''"},
	{"paid", "INTEGER NOT NULL DEFAULT 0"},
	{"last_payment_date", "TEXT"},
	{"maintenance_amount", "TEXT NOT NULL DEFAULT '0'"},
	{"extra_charges", "TEXT NOT NULL DEFAULT '0'"},
	{"late_fee", "TEXT NOT NULL DEFAULT '0'"},
	{"total_dues", "TEXT NOT NULL DEFAULT '0'"},
	{"payment_status", "TEXT NOT NULL DEFAULT 'Unpaid'"},
}
