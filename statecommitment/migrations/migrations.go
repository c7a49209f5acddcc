package migrations

import (
	"database/sql"
	_ "embed"

	authoritymigrations "github.com/0xPolygon/obridge/authority/migrations"
	"github.com/0xPolygon/obridge/db"
	"github.com/0xPolygon/obridge/db/types"
	eventlogmigrations "github.com/0xPolygon/obridge/eventlog/migrations"
	"github.com/0xPolygon/obridge/log"
)

//go:embed 0001.sql
var mig001 string

func RunMigrations(logger *log.Logger, database *sql.DB) error {
	migrations := []types.Migration{
		{
			ID:  "statecommitment0001",
			SQL: mig001,
		},
	}
	migrations = append(migrations, authoritymigrations.Migrations...)
	migrations = append(migrations, eventlogmigrations.Migrations...)

	return db.RunMigrationsDB(logger, database, migrations)
}
