package l2bridge

import (
	"github.com/0xPolygon/obridge/authority"
	"github.com/0xPolygon/obridge/registry"
	"github.com/ethereum/go-ethereum/common"
)

// Config is the configuration of the L2 bridge
type Config struct {
	// DBPath is the path of the sqlite db owned by the L2 bridge
	DBPath string `mapstructure:"DBPath"`
	// Address is the account of the bridge on the L2 ledger, the only minter of the wrapped assets
	Address common.Address `mapstructure:"Address"`
	// Authority seeds the admin and sequencer on the first start
	Authority authority.Config `mapstructure:"Authority"`
	// TokenPairs are registered by the admin at start up when missing
	TokenPairs []registry.TokenPair `mapstructure:"TokenPairs"`
}
