package migrations

import (
	"database/sql"

	authoritymigrations "github.com/0xPolygon/obridge/authority/migrations"
	"github.com/0xPolygon/obridge/db"
	"github.com/0xPolygon/obridge/db/types"
	eventlogmigrations "github.com/0xPolygon/obridge/eventlog/migrations"
	"github.com/0xPolygon/obridge/log"
	registrymigrations "github.com/0xPolygon/obridge/registry/migrations"
	withdrawalledgermigrations "github.com/0xPolygon/obridge/withdrawalledger/migrations"
)

// RunMigrations creates the tables of the L2 bridge. All of its state lives in the shared
// authority, event log, registry and withdrawal ledger tables.
func RunMigrations(logger *log.Logger, database *sql.DB) error {
	var migrations []types.Migration
	migrations = append(migrations, authoritymigrations.Migrations...)
	migrations = append(migrations, eventlogmigrations.Migrations...)
	migrations = append(migrations, registrymigrations.Migrations...)
	migrations = append(migrations, withdrawalledgermigrations.Migrations...)

	return db.RunMigrationsDB(logger, database, migrations)
}
