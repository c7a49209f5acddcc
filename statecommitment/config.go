package statecommitment

import (
	"github.com/0xPolygon/obridge/authority"
	"github.com/0xPolygon/obridge/config/types"
	"github.com/0xPolygon/obridge/proofverifier"
)

// Config is the configuration of the state commitment chain
type Config struct {
	// DBPath is the path of the sqlite db owned by the state commitment chain
	DBPath string `mapstructure:"DBPath"`
	// FinalizationDelay is the challenge window of a submitted batch. Only whole seconds are
	// taken into account
	FinalizationDelay types.Duration `mapstructure:"FinalizationDelay"`
	// Authority seeds the admin, the sequencer and the verifiers on the first start
	Authority authority.Config `mapstructure:"Authority"`
	// ProofVerifier selects how fraud proofs are checked before a batch is reverted
	ProofVerifier proofverifier.Config `mapstructure:"ProofVerifier"`
}
