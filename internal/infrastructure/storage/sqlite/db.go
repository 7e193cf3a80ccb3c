// Package sqlite provides the SQLite-backed storage layer: connection setup,
// schema migration, transaction management, and shared query helpers.
package sqlite

import (
	"database/sql"
	"fmt"
	"net/url"

	_ "github.com/mattn/go-sqlite3"
)

// Open opens (and creates if needed) the database at path and applies the
// schema. WAL keeps readers unblocked during writes; foreign keys are
// enforced; busy_timeout lets short lock contention resolve in the driver
// before the retry layer sees it.
func Open(path string) (*sql.DB, error) {
	dsn := fmt.Sprintf(
		"file:%s?_foreign_keys=on&_journal_mode=WAL&_busy_timeout=5000",
		url.PathEscape(path),
	)

	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// Single connection: sqlite has one writer anyway, and a single
	// connection keeps in-memory test databases coherent.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := Migrate(db); err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}

// Migrate applies the schema. All statements are idempotent.
func Migrate(db *sql.DB) error {
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	return nil
}

const schema = `
CREATE TABLE IF NOT EXISTS users (
	id            TEXT PRIMARY KEY,
	created_at    TIMESTAMP NOT NULL,
	username      TEXT NOT NULL UNIQUE,
	password_hash TEXT NOT NULL,
	display_name  TEXT NOT NULL DEFAULT '',
	is_admin      INTEGER NOT NULL DEFAULT 0,
	active        INTEGER NOT NULL DEFAULT 1
);

CREATE TABLE IF NOT EXISTS clients (
	id             TEXT PRIMARY KEY,
	created_at     TIMESTAMP NOT NULL,
	name           TEXT NOT NULL,
	legal_name     TEXT,
	mb             TEXT NOT NULL DEFAULT '',
	pib            TEXT,
	address        TEXT,
	city           TEXT,
	postal_code    TEXT,
	country        TEXT,
	phone          TEXT,
	email          TEXT,
	bank           TEXT,
	contact_person TEXT,
	notes          TEXT
);

CREATE TABLE IF NOT EXISTS categories (
	id         TEXT PRIMARY KEY,
	created_at TIMESTAMP NOT NULL,
	name       TEXT NOT NULL UNIQUE
);

CREATE TABLE IF NOT EXISTS subcategories (
	id          TEXT PRIMARY KEY,
	created_at  TIMESTAMP NOT NULL,
	name        TEXT NOT NULL,
	category_id TEXT NOT NULL REFERENCES categories(id) ON DELETE CASCADE,
	UNIQUE (category_id, name)
);

CREATE TABLE IF NOT EXISTS countries (
	id         TEXT PRIMARY KEY,
	created_at TIMESTAMP NOT NULL,
	name       TEXT NOT NULL UNIQUE,
	code       TEXT
);

CREATE TABLE IF NOT EXISTS supplier_sectors (
	id         TEXT PRIMARY KEY,
	created_at TIMESTAMP NOT NULL,
	name       TEXT NOT NULL UNIQUE
);

CREATE TABLE IF NOT EXISTS supplier_products (
	id         TEXT PRIMARY KEY,
	created_at TIMESTAMP NOT NULL,
	name       TEXT NOT NULL,
	sector_id  TEXT NOT NULL REFERENCES supplier_sectors(id) ON DELETE CASCADE,
	UNIQUE (sector_id, name)
);

CREATE TABLE IF NOT EXISTS suppliers (
	id             TEXT PRIMARY KEY,
	created_at     TIMESTAMP NOT NULL,
	name           TEXT NOT NULL,
	legal_name     TEXT,
	mb             TEXT,
	pib            TEXT,
	reg_number     TEXT,
	address        TEXT,
	city           TEXT,
	country        TEXT,
	phone          TEXT,
	email          TEXT,
	website        TEXT,
	bank           TEXT,
	sector_id      TEXT REFERENCES supplier_sectors(id) ON DELETE SET NULL,
	product_id     TEXT REFERENCES supplier_products(id) ON DELETE SET NULL,
	contact_person TEXT,
	notes          TEXT,
	active         INTEGER NOT NULL DEFAULT 1
);

CREATE TABLE IF NOT EXISTS products (
	id            TEXT PRIMARY KEY,
	created_at    TIMESTAMP NOT NULL,
	code          TEXT NOT NULL UNIQUE,
	name          TEXT NOT NULL,
	description   TEXT,
	price         TEXT NOT NULL,
	category      TEXT,
	subcategory   TEXT,
	weight        REAL,
	supplier      TEXT,
	internal_code TEXT,
	active        INTEGER NOT NULL DEFAULT 1
);

CREATE TABLE IF NOT EXISTS warehouse_groups (
	id          TEXT PRIMARY KEY,
	created_at  TIMESTAMP NOT NULL,
	name        TEXT NOT NULL UNIQUE,
	description TEXT
);

CREATE TABLE IF NOT EXISTS warehouse_items (
	id           TEXT PRIMARY KEY,
	created_at   TIMESTAMP NOT NULL,
	group_id     TEXT NOT NULL REFERENCES warehouse_groups(id) ON DELETE CASCADE,
	product_id   TEXT NOT NULL REFERENCES products(id) ON DELETE RESTRICT,
	product_code TEXT NOT NULL,
	product_name TEXT NOT NULL,
	quantity     REAL NOT NULL DEFAULT 0,
	notes        TEXT,
	UNIQUE (group_id, product_id)
);

CREATE TABLE IF NOT EXISTS invoices (
	id            TEXT PRIMARY KEY,
	created_at    TIMESTAMP NOT NULL,
	number        TEXT NOT NULL UNIQUE,
	document_type TEXT NOT NULL,
	client_id     TEXT NOT NULL REFERENCES clients(id) ON DELETE RESTRICT,
	client_name   TEXT NOT NULL,
	date          TIMESTAMP NOT NULL,
	due_date      TIMESTAMP,
	total         TEXT NOT NULL,
	status        TEXT NOT NULL,
	notes         TEXT
);

CREATE INDEX IF NOT EXISTS idx_invoices_client ON invoices(client_id);
CREATE INDEX IF NOT EXISTS idx_invoices_date ON invoices(date);

CREATE TABLE IF NOT EXISTS invoice_items (
	invoice_id   TEXT NOT NULL REFERENCES invoices(id) ON DELETE CASCADE,
	line_no      INTEGER NOT NULL,
	product_id   TEXT NOT NULL REFERENCES products(id) ON DELETE RESTRICT,
	product_name TEXT NOT NULL,
	quantity     REAL NOT NULL,
	unit_price   TEXT NOT NULL,
	total        TEXT NOT NULL,
	PRIMARY KEY (invoice_id, line_no)
);

CREATE TABLE IF NOT EXISTS deliveries (
	id          TEXT PRIMARY KEY,
	created_at  TIMESTAMP NOT NULL,
	number      TEXT NOT NULL UNIQUE,
	client_id   TEXT NOT NULL REFERENCES clients(id) ON DELETE RESTRICT,
	client_name TEXT NOT NULL,
	date        TIMESTAMP NOT NULL,
	status      TEXT NOT NULL,
	notes       TEXT
);

CREATE TABLE IF NOT EXISTS delivery_items (
	delivery_id  TEXT NOT NULL REFERENCES deliveries(id) ON DELETE CASCADE,
	line_no      INTEGER NOT NULL,
	product_id   TEXT NOT NULL REFERENCES products(id) ON DELETE RESTRICT,
	product_name TEXT NOT NULL,
	quantity     REAL NOT NULL,
	PRIMARY KEY (delivery_id, line_no)
);

CREATE TABLE IF NOT EXISTS sequences (
	key   TEXT PRIMARY KEY,
	value INTEGER NOT NULL
);
`
