package db

import (
	"context"
	"errors"
	"path"
	"testing"

	"github.com/0xPolygon/obridge/db/types"
	"github.com/0xPolygon/obridge/log"
	"github.com/stretchr/testify/require"
)

const testMigration = `
-- +migrate Down
DROP TABLE IF EXISTS item;

-- +migrate Up
CREATE TABLE item (
	id   INTEGER PRIMARY KEY,
	name VARCHAR NOT NULL UNIQUE
);
`

func TestRunMigrations(t *testing.T) {
	dbPath := path.Join(t.TempDir(), "db.sqlite")
	migrations := []types.Migration{{ID: "test0001", SQL: testMigration}}

	require.NoError(t, RunMigrations(dbPath, migrations))
	// second run is a no-op
	require.NoError(t, RunMigrations(dbPath, migrations))

	database, err := NewSQLiteDB(dbPath)
	require.NoError(t, err)
	defer database.Close()
	_, err = database.Exec("INSERT INTO item (id, name) VALUES (1, 'a');")
	require.NoError(t, err)

	_, err = database.Exec("INSERT INTO item (id, name) VALUES (1, 'b');")
	require.True(t, IsUniqueViolation(err))
	_, err = database.Exec("INSERT INTO item (id, name) VALUES (2, 'a');")
	require.True(t, IsUniqueViolation(err))
	require.False(t, IsUniqueViolation(errors.New("other")))

	var name string
	err = database.QueryRow("SELECT name FROM item WHERE id = 7;").Scan(&name)
	require.ErrorIs(t, ReturnErrNotFound(err), ErrNotFound)
}

func TestRunMigrationsMalformed(t *testing.T) {
	err := RunMigrations(path.Join(t.TempDir(), "db.sqlite"),
		[]types.Migration{{ID: "bad", SQL: "CREATE TABLE x (id INTEGER);"}})
	require.ErrorContains(t, err, "bad")
}

func TestRunInTxCallbacks(t *testing.T) {
	ctx := context.Background()
	dbPath := path.Join(t.TempDir(), "db.sqlite")
	require.NoError(t, RunMigrations(dbPath, []types.Migration{{ID: "test0001", SQL: testMigration}}))
	database, err := NewSQLiteDB(dbPath)
	require.NoError(t, err)
	defer database.Close()

	var committed, rolledBack int
	require.NoError(t, RunInTx(ctx, database, log.GetDefaultLogger(), func(tx *Tx) error {
		tx.AddCommitCallback(func() { committed++ })
		tx.AddRollbackCallback(func() { rolledBack++ })
		_, err := tx.Exec("INSERT INTO item (id, name) VALUES (1, 'a');")
		return err
	}))
	require.Equal(t, 1, committed)
	require.Zero(t, rolledBack)

	errAbort := errors.New("abort")
	err = RunInTx(ctx, database, log.GetDefaultLogger(), func(tx *Tx) error {
		tx.AddCommitCallback(func() { committed++ })
		tx.AddRollbackCallback(func() { rolledBack++ })
		_, err := tx.Exec("INSERT INTO item (id, name) VALUES (2, 'b');")
		require.NoError(t, err)
		return errAbort
	})
	require.ErrorIs(t, err, errAbort)
	require.Equal(t, 1, committed)
	require.Equal(t, 1, rolledBack)

	var count int
	require.NoError(t, database.QueryRow("SELECT COUNT(*) FROM item;").Scan(&count))
	require.Equal(t, 1, count)
}
