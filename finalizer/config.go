package finalizer

import (
	"github.com/0xPolygon/obridge/config/types"
	"github.com/ethereum/go-ethereum/common"
)

// Config is the configuration of the finalizer keeper
type Config struct {
	// Enabled runs the keeper inside the node
	Enabled bool `mapstructure:"Enabled"`
	// Caller is the account the keeper finalizes as. Finalization is permissionless, the
	// account only shows up in the logs
	Caller common.Address `mapstructure:"Caller"`
	// CheckInterval is the time between two passes
	CheckInterval types.Duration `mapstructure:"CheckInterval"`
	// MaxPerPass caps the withdrawals and the batches finalized in one pass
	MaxPerPass uint64 `mapstructure:"MaxPerPass"`
}
