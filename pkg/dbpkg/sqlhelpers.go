// Package dbpkg provides helpers to make db initialization and testing easier.
package dbpkg

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"strings"
	"testing"

	// Registers the "sqlite" driver used in development and tests.
	_ "modernc.org/sqlite"
)

//go:embed schema.sql
var schema string

// SQLiteDriver is the database/sql driver name of the embedded SQLite engine.
const SQLiteDriver = "sqlite"

// SQLInterface provides neccessary db methods to perform queries.
type SQLInterface interface {
	ExecContext(context.Context, string, ...interface{}) (sql.Result, error)
	PrepareContext(context.Context, string) (*sql.Stmt, error)
	QueryContext(context.Context, string, ...interface{}) (*sql.Rows, error)
	QueryRowContext(context.Context, string, ...interface{}) *sql.Row
}

// TxBeginner starts transactions.
type TxBeginner interface {
	BeginTx(context.Context, *sql.TxOptions) (*sql.Tx, error)
}

// DB is a connection pool able to run queries and start transactions.
type DB interface {
	SQLInterface
	TxBeginner
}

// Setup sets up connection with database.
func Setup(driver, source string) (*sql.DB, error) {
	db, err := sql.Open(driver, source)
	if err != nil {
		return nil, err
	}

	if err = db.Ping(); err != nil {
		return nil, err
	}

	// SQLite allows a single writer.
	if driver == SQLiteDriver {
		db.SetMaxOpenConns(1)
	}

	return db, nil
}

// Migrate creates the tables the app needs if they do not exist yet.
func Migrate(ctx context.Context, db SQLInterface) error {
	for _, stmt := range strings.Split(schema, ";") {
		stmt = strings.TrimSpace(stmt)
		if stmt == "" {
			continue
		}

		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}

	return nil
}

// SetupDB opens a migrated in-memory SQLite database to be used in tests.
func SetupDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := Setup(SQLiteDriver, ":memory:")
	if err != nil {
		t.Fatalf("Database open connection failed: %v", err)
	}

	if err = Migrate(context.Background(), db); err != nil {
		t.Fatalf("Migrate() failed: %v", err)
	}

	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Errorf("db.Close() failed: %v", err)
		}
	})

	return db
}

// SetupTX sets up a database transaction to be used in tests.
// Once the tests are done it will rollback the transaction.
func SetupTX(t *testing.T) *sql.Tx {
	t.Helper()

	db := SetupDB(t)

	tx, err := db.Begin()
	if err != nil {
		t.Fatalf("db.Begin() failed: %v", err)
	}

	t.Cleanup(func() {
		if err := tx.Rollback(); err != nil {
			t.Errorf("tx.Rollback() failed: %v", err)
		}
	})

	return tx
}
