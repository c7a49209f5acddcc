package l1bridge

import (
	"github.com/0xPolygon/obridge/authority"
	"github.com/0xPolygon/obridge/config/types"
	"github.com/0xPolygon/obridge/registry"
	"github.com/ethereum/go-ethereum/common"
)

const (
	// PolicyOverwrite lets the sequencer register a pending id again: asset, recipient and amount
	// are replaced and the challenge timer restarts
	PolicyOverwrite = "overwrite"
	// PolicyRejectPending only accepts a registration for an id without a pending entry
	PolicyRejectPending = "reject-pending"
)

// Config is the configuration of the L1 bridge
type Config struct {
	// DBPath is the path of the sqlite db owned by the L1 bridge
	DBPath string `mapstructure:"DBPath"`
	// Address is the account of the bridge on the L1 ledger, it holds the deposited assets
	Address common.Address `mapstructure:"Address"`
	// ChallengeDelay is the time a registered withdrawal waits before it can be finalized.
	// Only whole seconds are taken into account
	ChallengeDelay types.Duration `mapstructure:"ChallengeDelay"`
	// RegistrationPolicy decides what happens when a pending withdrawal id is registered again
	RegistrationPolicy string `mapstructure:"RegistrationPolicy" jsonschema:"enum=overwrite,enum=reject-pending"`
	// Authority seeds the admin and sequencer on the first start
	Authority authority.Config `mapstructure:"Authority"`
	// TokenPairs are registered by the admin at start up when missing
	TokenPairs []registry.TokenPair `mapstructure:"TokenPairs"`
}
