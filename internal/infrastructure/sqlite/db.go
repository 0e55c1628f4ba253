// Package sqlite implementa los repositorios del CRM sobre SQLite embebido
// (modernc.org/sqlite, sin cgo). Se usa para desarrollo local y como store de tests.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// MemoryPath abre una BD en memoria; vive mientras la única conexión siga abierta.
const MemoryPath = ":memory:"

// Querier es lo común entre *sql.DB y *sql.Tx.
type Querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

var (
	_ Querier = (*sql.DB)(nil)
	_ Querier = (*sql.Tx)(nil)
)

// builder usa placeholders "?" de SQLite.
var builder = sq.StatementBuilder.PlaceholderFormat(sq.Question)

// Open abre la BD, activa las llaves foráneas y deja una sola conexión
// (un único escritor; además ":memory:" no se comparte entre conexiones).
func Open(ctx context.Context, path string) (*sql.DB, error) {
	if path == "" {
		path = MemoryPath
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("abrir sqlite: %w", err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	pragmas := []string{
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 5000",
	}
	if path != MemoryPath {
		pragmas = append(pragmas, "PRAGMA journal_mode = WAL")
	}
	for _, p := range pragmas {
		if _, err := db.ExecContext(ctx, p); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("%s: %w", p, err)
		}
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}
	return db, nil
}

// Migrate crea las tablas si no existen.
func Migrate(ctx context.Context, db *sql.DB) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS customers (
			id          INTEGER PRIMARY KEY AUTOINCREMENT,
			name        TEXT    NOT NULL,
			email       TEXT    NOT NULL,
			phone       TEXT    NOT NULL,
			company     TEXT    NOT NULL,
			created_at  INTEGER NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS sales (
			id               INTEGER PRIMARY KEY AUTOINCREMENT,
			customer_id      INTEGER NOT NULL REFERENCES customers (id),
			product_service  TEXT    NOT NULL,
			amount_cents     INTEGER NOT NULL CHECK (amount_cents > 0 AND amount_cents < 10000000000),
			date             INTEGER NOT NULL,
			status           TEXT    NOT NULL DEFAULT 'Pending'
				CHECK (status IN ('Pending', 'Completed', 'Cancelled')),
			created_at       INTEGER NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_sales_customer ON sales (customer_id)`,
		`CREATE TABLE IF NOT EXISTS interactions (
			id           INTEGER PRIMARY KEY AUTOINCREMENT,
			customer_id  INTEGER NOT NULL REFERENCES customers (id),
			type         TEXT    NOT NULL CHECK (type IN ('Call', 'Email', 'Meeting')),
			date         INTEGER NOT NULL,
			summary      TEXT    NOT NULL,
			created_at   INTEGER NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_interactions_customer ON interactions (customer_id)`,
		`CREATE INDEX IF NOT EXISTS idx_interactions_date ON interactions (date DESC, id DESC)`,
	}
	for _, stmt := range statements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate sqlite: %w", err)
		}
	}
	return nil
}

func isForeignKeyViolation(err error) bool {
	var se *sqlite.Error
	if errors.As(err, &se) {
		return se.Code() == sqlite3.SQLITE_CONSTRAINT_FOREIGNKEY
	}
	return false
}
