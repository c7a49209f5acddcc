package db

import (
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

const (
	// PrimaryKeyConstrain is the sqlite extended code for a PRIMARY KEY violation
	PrimaryKeyConstrain = 1555
	// UniqueConstrain is the sqlite extended code for a UNIQUE violation
	UniqueConstrain = 2067
)

var (
	ErrNotFound = errors.New("not found")
)

// NewSQLiteDB creates a new SQLite DB
func NewSQLiteDB(dbPath string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", fmt.Sprintf("file:%s?_txlock=exclusive&_foreign_keys=on", dbPath))
	if err != nil {
		return nil, err
	}
	_, err = db.Exec(`
		pragma journal_mode = WAL;
		pragma synchronous = normal;
		pragma journal_size_limit  = 6144000;
		pragma busy_timeout = 5000;
	`)
	return db, err
}

// ReturnErrNotFound translates sql.ErrNoRows into ErrNotFound
func ReturnErrNotFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	return err
}

// IsUniqueViolation reports whether err was raised by a PRIMARY KEY or UNIQUE constraint
func IsUniqueViolation(err error) bool {
	sqliteErr, ok := SQLiteErr(err)
	if !ok {
		return false
	}
	code := int(sqliteErr.ExtendedCode)
	return code == PrimaryKeyConstrain || code == UniqueConstrain
}
