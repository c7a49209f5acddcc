package migrations

import (
	_ "embed"

	"github.com/0xPolygon/obridge/db/types"
)

//go:embed 0001.sql
var mig001 string

// Migrations creates the audit log table in the DB of the owning component
var Migrations = []types.Migration{
	{
		ID:  "eventlog0001",
		SQL: mig001,
	},
}
