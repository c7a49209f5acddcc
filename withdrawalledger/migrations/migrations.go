package migrations

import (
	_ "embed"

	"github.com/0xPolygon/obridge/db/types"
)

//go:embed 0001.sql
var mig001 string

// Migrations creates the nonce counters and the processed set in the DB of the owning bridge
var Migrations = []types.Migration{
	{
		ID:  "withdrawalledger0001",
		SQL: mig001,
	},
}
