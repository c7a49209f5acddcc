package migrations

import (
	_ "embed"

	"github.com/0xPolygon/obridge/db/types"
)

//go:embed 0001.sql
var mig001 string

// Migrations creates the token pair table in the DB of the owning bridge
var Migrations = []types.Migration{
	{
		ID:  "registry0001",
		SQL: mig001,
	},
}
