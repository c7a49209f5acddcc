package rpc

import (
	"context"

	"github.com/0xPolygon/obridge/eventlog"
	"github.com/0xPolygon/obridge/l1bridge"
	"github.com/0xPolygon/obridge/registry"
	"github.com/0xPolygon/obridge/statecommitment"
	"github.com/ethereum/go-ethereum/common"
)

type EventReader interface {
	Events(fromID, limit uint64) ([]eventlog.Event, error)
}

type L1Bridger interface {
	EventReader
	DepositNonce() (uint64, error)
	PendingWithdrawal(id common.Hash) (l1bridge.PendingWithdrawal, error)
	IsProcessed(id common.Hash) (bool, error)
	ChallengeDelay() uint64
	TokenPairs() ([]registry.TokenPair, error)
	FinalizeWithdrawal(ctx context.Context, caller common.Address, withdrawalID common.Hash) error
}

type L2Bridger interface {
	EventReader
	WithdrawalNonce() (uint64, error)
	TokenPairs() ([]registry.TokenPair, error)
}

type Committer interface {
	EventReader
	Batch(batchID uint64) (*statecommitment.Batch, error)
	StateRoot(batchID uint64) (common.Hash, error)
	IsFinalized(batchID uint64) (bool, error)
	Status(batchID uint64) (statecommitment.Status, error)
	LastBatchID() (uint64, bool, error)
	FinalizationDelay() uint64
	FinalizeBatch(ctx context.Context, caller common.Address, batchID uint64) error
}
