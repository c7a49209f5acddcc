package authority

import "github.com/ethereum/go-ethereum/common"

// Config seeds the trust-actor record the first time a component starts on an empty DB.
// Once persisted the record only changes through admin-gated operations.
type Config struct {
	// Admin is the single authority allowed to mutate the record and the token pairs
	Admin common.Address `mapstructure:"Admin"`
	// Sequencer is the trusted relayer
	Sequencer common.Address `mapstructure:"Sequencer"`
	// Verifiers allowed to challenge batches, only used by the state commitment
	Verifiers []common.Address `mapstructure:"Verifiers"`
}
