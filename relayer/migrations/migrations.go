package migrations

import (
	_ "embed"

	"github.com/0xPolygon/obridge/db"
	"github.com/0xPolygon/obridge/db/types"
)

//go:embed 0001.sql
var mig001 string

func RunMigrations(dbPath string) error {
	migrations := []types.Migration{
		{
			ID:  "relayer0001",
			SQL: mig001,
		},
	}
	return db.RunMigrations(dbPath, migrations)
}
