package migrations

import (
	"database/sql"
	_ "embed"

	authoritymigrations "github.com/0xPolygon/obridge/authority/migrations"
	"github.com/0xPolygon/obridge/db"
	"github.com/0xPolygon/obridge/db/types"
	eventlogmigrations "github.com/0xPolygon/obridge/eventlog/migrations"
	"github.com/0xPolygon/obridge/log"
	registrymigrations "github.com/0xPolygon/obridge/registry/migrations"
	withdrawalledgermigrations "github.com/0xPolygon/obridge/withdrawalledger/migrations"
)

//go:embed 0001.sql
var mig001 string

func RunMigrations(logger *log.Logger, database *sql.DB) error {
	migrations := []types.Migration{
		{
			ID:  "l1bridge0001",
			SQL: mig001,
		},
	}
	migrations = append(migrations, authoritymigrations.Migrations...)
	migrations = append(migrations, eventlogmigrations.Migrations...)
	migrations = append(migrations, registrymigrations.Migrations...)
	migrations = append(migrations, withdrawalledgermigrations.Migrations...)

	return db.RunMigrationsDB(logger, database, migrations)
}
