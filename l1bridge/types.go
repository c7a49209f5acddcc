package l1bridge

import (
	"context"
	"math/big"

	"github.com/0xPolygon/obridge/bridgeerrors"
	"github.com/0xPolygon/obridge/withdrawalledger"
	"github.com/ethereum/go-ethereum/common"
)

var (
	ErrZeroAmount                 = bridgeerrors.New(bridgeerrors.ErrPrecondition, "amount must be greater than zero")
	ErrNegativeAmount             = bridgeerrors.New(bridgeerrors.ErrPrecondition, "amount must not be negative")
	ErrNativeAssetNotAllowed      = bridgeerrors.New(bridgeerrors.ErrPrecondition, "native asset must be deposited with depositNative")
	ErrNoPendingWithdrawal        = bridgeerrors.New(bridgeerrors.ErrPrecondition, "no pending withdrawal")
	ErrChallengePeriodNotElapsed  = bridgeerrors.New(bridgeerrors.ErrPrecondition, "challenge period not elapsed")
	ErrWithdrawalAlreadyPending   = bridgeerrors.New(bridgeerrors.ErrPrecondition, "withdrawal already pending")
	ErrWithdrawalAlreadyProcessed = withdrawalledger.ErrAlreadyProcessed
)

// Custody is the asset capability of the L1 ledger as seen by the bridge account
type Custody interface {
	// TransferFrom moves amount of token from `from` to `to`, spending the allowance given to the bridge
	TransferFrom(ctx context.Context, token, from, to common.Address, amount *big.Int) error
	// Transfer moves amount of token from the bridge to `to`
	Transfer(ctx context.Context, token, to common.Address, amount *big.Int) error
	// CollectNative takes the native value attached to a call of `from`
	CollectNative(ctx context.Context, from common.Address, amount *big.Int) error
	// SendNative pays native value from the bridge to `to`
	SendNative(ctx context.Context, to common.Address, amount *big.Int) error
}

// PendingWithdrawal is a withdrawal registered by the sequencer and waiting for its challenge
// delay. An amount of zero means no entry.
type PendingWithdrawal struct {
	WithdrawalID common.Hash    `meddler:"withdrawal_id,hash" json:"withdrawalId"`
	Asset        common.Address `meddler:"asset,address" json:"asset"`
	Recipient    common.Address `meddler:"recipient,address" json:"recipient"`
	Amount       *big.Int       `meddler:"amount,bigint" json:"amount"`
	RegisteredAt uint64         `meddler:"registered_at" json:"registeredAt"`
}

// Exists applies the zero amount sentinel
func (p PendingWithdrawal) Exists() bool {
	return p.Amount != nil && p.Amount.Sign() > 0
}

// MaturesAt is the first second the withdrawal can be finalized at
func (p PendingWithdrawal) MaturesAt(challengeDelay uint64) uint64 {
	return p.RegisteredAt + challengeDelay
}
