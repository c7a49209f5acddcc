package relayer

import (
	"github.com/0xPolygon/obridge/config/types"
	"github.com/ethereum/go-ethereum/common"
)

// Config is the configuration of the relayer
type Config struct {
	// Enabled runs the relayer inside the node
	Enabled bool `mapstructure:"Enabled"`
	// DBPath is the path of the sqlite db where the relay cursors are kept
	DBPath string `mapstructure:"DBPath"`
	// Sequencer is the account the relayer acts as on both bridges
	Sequencer common.Address `mapstructure:"Sequencer"`
	// WaitPeriodNextEvents is the time waited between two passes when no event is published
	WaitPeriodNextEvents types.Duration `mapstructure:"WaitPeriodNextEvents"`
	// MaxEventsPerPass is the number of events read from a bridge log at once
	MaxEventsPerPass uint64 `mapstructure:"MaxEventsPerPass"`
	// RetryAfterErrorPeriod is the time waited before relaying an event again after a failure
	RetryAfterErrorPeriod types.Duration `mapstructure:"RetryAfterErrorPeriod"`
	// MaxRetryAttemptsAfterError is the number of retries of one event before the pass is
	// aborted. -1 means unlimited
	MaxRetryAttemptsAfterError int `mapstructure:"MaxRetryAttemptsAfterError"`
}
