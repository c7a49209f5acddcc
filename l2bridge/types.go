package l2bridge

import (
	"context"
	"math/big"

	"github.com/0xPolygon/obridge/bridgeerrors"
	"github.com/ethereum/go-ethereum/common"
)

var (
	ErrZeroAmount            = bridgeerrors.New(bridgeerrors.ErrPrecondition, "amount must be greater than zero")
	ErrNegativeAmount        = bridgeerrors.New(bridgeerrors.ErrPrecondition, "amount must not be negative")
	ErrNativeAssetNotAllowed = bridgeerrors.New(bridgeerrors.ErrPrecondition, "native asset must be withdrawn with withdrawNative")
	ErrValueMismatch         = bridgeerrors.New(bridgeerrors.ErrPrecondition, "attached value does not match amount")
)

// Assets is the mint/burn capability the L2 ledger grants to the bridge only
type Assets interface {
	// Mint creates amount of asset for `to`
	Mint(ctx context.Context, asset, to common.Address, amount *big.Int) error
	// Burn destroys amount of asset held by `from`
	Burn(ctx context.Context, asset, from common.Address, amount *big.Int) error
}
