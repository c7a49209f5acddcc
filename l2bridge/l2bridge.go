// Package l2bridge is the execution side of the bridge. The sequencer mints the L2 counterpart
// of L1 deposits; users burn L2 assets to emit withdrawal intents the sequencer relays to L1.
package l2bridge

import (
	"context"
	"math/big"

	"github.com/0xPolygon/obridge/bridgeerrors"
	bridgecommon "github.com/0xPolygon/obridge/common"
	"github.com/0xPolygon/obridge/core"
	"github.com/0xPolygon/obridge/db"
	"github.com/0xPolygon/obridge/eventlog"
	"github.com/0xPolygon/obridge/l2bridge/migrations"
	"github.com/0xPolygon/obridge/log"
	"github.com/0xPolygon/obridge/metrics"
	"github.com/0xPolygon/obridge/proofverifier"
	"github.com/0xPolygon/obridge/registry"
	"github.com/0xPolygon/obridge/withdrawalledger"
	"github.com/benbjohnson/clock"
	"github.com/ethereum/go-ethereum/common"
)

const (
	opFinalizeDeposit = "finalizeDeposit"
	opWithdraw        = "withdraw"
	opWithdrawNative  = "withdrawNative"
)

// BridgeL2 is the L2 side of the bridge
type BridgeL2 struct {
	*core.Base
	core.PairRegistry

	assets   Assets
	verifier proofverifier.DepositVerifier
}

// New opens the bridge DB, runs its migrations, loads the trust actors and registers the
// configured token pairs. A nil verifier trusts the sequencer.
func New(
	ctx context.Context,
	logger *log.Logger,
	cfg Config,
	assets Assets,
	verifier proofverifier.DepositVerifier,
	clk clock.Clock,
	m metrics.Metricer,
) (*BridgeL2, error) {
	if verifier == nil {
		verifier = proofverifier.AcceptAll{}
	}
	base, err := core.Open(ctx, bridgecommon.L2BRIDGE, logger, cfg.DBPath, migrations.RunMigrations,
		cfg.Authority, clk, m)
	if err != nil {
		return nil, err
	}
	b := &BridgeL2{
		Base:         base,
		PairRegistry: core.NewPairRegistry(base),
		assets:       assets,
		verifier:     verifier,
	}
	if err := b.SeedTokenPairs(ctx, cfg.TokenPairs); err != nil {
		b.Close()
		return nil, err
	}
	logger.Infof("L2 bridge ready, sequencer %s", b.Sequencer())

	return b, nil
}

// FinalizeDeposit mints the L2 counterpart of an L1 deposit. Sequencer only. The source nonce
// is carried to the confirmation event; it is not checked against earlier confirmations.
func (b *BridgeL2) FinalizeDeposit(
	ctx context.Context,
	caller, l1Asset, to common.Address,
	amount *big.Int,
	sourceDepositNonce uint64,
) (err error) {
	defer func() { b.Observe(opFinalizeDeposit, err) }()

	if err := b.Authority().CheckSequencer(caller); err != nil {
		return err
	}
	if amount == nil {
		return ErrZeroAmount
	}
	if amount.Sign() < 0 {
		return ErrNegativeAmount
	}

	return b.Transition(ctx, func(ctx context.Context, tx *db.Tx) error {
		l2Asset, err := registry.ResolveL1(tx, l1Asset)
		if err != nil {
			return err
		}
		claim := proofverifier.DepositClaim{
			L1Asset:            l1Asset,
			L2Asset:            l2Asset,
			To:                 to,
			Amount:             amount,
			SourceDepositNonce: sourceDepositNonce,
		}
		if err := b.CallOut(ctx, func(ctx context.Context) error {
			return b.verifier.VerifyDeposit(ctx, claim)
		}); err != nil {
			return err
		}
		if _, err := b.Log().Append(tx, eventlog.DepositFinalized, b.Now(), eventlog.DepositFinalizedData{
			L1Asset:            l1Asset,
			L2Asset:            l2Asset,
			To:                 to,
			Amount:             new(big.Int).Set(amount),
			SourceDepositNonce: sourceDepositNonce,
		}); err != nil {
			return err
		}
		if err := b.CallOut(ctx, func(ctx context.Context) error {
			if err := b.assets.Mint(ctx, l2Asset, to, amount); err != nil {
				return bridgeerrors.Transfer("mint", err)
			}
			return nil
		}); err != nil {
			return err
		}
		tx.AddCommitCallback(func() {
			b.Logger().Infof("deposit %d finalized: minted %s of %s to %s", sourceDepositNonce, amount, l2Asset, to)
		})
		return nil
	})
}

// Withdraw burns amount of the L2 asset held by caller and emits a withdrawal intent for
// destRecipient on L1. It returns the nonce of the intent.
func (b *BridgeL2) Withdraw(
	ctx context.Context, caller, asset common.Address, amount *big.Int, destRecipient common.Address,
) (nonce uint64, err error) {
	defer func() { b.Observe(opWithdraw, err) }()

	if amount == nil || amount.Sign() <= 0 {
		return 0, ErrZeroAmount
	}
	if bridgecommon.IsNativeAsset(asset) {
		return 0, ErrNativeAssetNotAllowed
	}
	return b.withdraw(ctx, caller, asset, amount, destRecipient)
}

// WithdrawNative is Withdraw for the native value attached to the call, which must be exactly
// amount
func (b *BridgeL2) WithdrawNative(
	ctx context.Context, caller common.Address, value, amount *big.Int, destRecipient common.Address,
) (nonce uint64, err error) {
	defer func() { b.Observe(opWithdrawNative, err) }()

	if amount == nil || amount.Sign() <= 0 {
		return 0, ErrZeroAmount
	}
	if value == nil || value.Cmp(amount) != 0 {
		return 0, ErrValueMismatch
	}
	return b.withdraw(ctx, caller, bridgecommon.NativeAsset, amount, destRecipient)
}

func (b *BridgeL2) withdraw(
	ctx context.Context, caller, asset common.Address, amount *big.Int, destRecipient common.Address,
) (nonce uint64, err error) {
	err = b.Transition(ctx, func(ctx context.Context, tx *db.Tx) error {
		l1Asset, err := registry.ResolveL2(tx, asset)
		if err != nil {
			return err
		}
		n, err := withdrawalledger.NextNonce(tx, withdrawalledger.WithdrawalNonce)
		if err != nil {
			return err
		}
		if _, err := b.Log().Append(tx, eventlog.WithdrawalInitiated, b.Now(), eventlog.WithdrawalInitiatedData{
			Asset:         asset,
			L1Asset:       l1Asset,
			From:          caller,
			DestRecipient: destRecipient,
			Amount:        new(big.Int).Set(amount),
			Nonce:         n,
		}); err != nil {
			return err
		}
		if err := b.CallOut(ctx, func(ctx context.Context) error {
			if err := b.assets.Burn(ctx, asset, caller, amount); err != nil {
				return bridgeerrors.Transfer("burn", err)
			}
			return nil
		}); err != nil {
			return err
		}
		tx.AddCommitCallback(func() {
			b.Metrics().RecordNonce(b.Name(), string(withdrawalledger.WithdrawalNonce), n+1)
			b.Logger().Infof("withdrawal %d: %s of %s from %s to %s", n, amount, asset, caller, destRecipient)
		})
		nonce = n
		return nil
	})
	return nonce, err
}

// WithdrawalNonce returns the nonce the next withdrawal intent will carry
func (b *BridgeL2) WithdrawalNonce() (uint64, error) {
	return withdrawalledger.CurrentNonce(b.DB(), withdrawalledger.WithdrawalNonce)
}

// L1AssetFor resolves the L1 counterpart of l2Asset
func (b *BridgeL2) L1AssetFor(l2Asset common.Address) (common.Address, error) {
	return registry.ResolveL2(b.DB(), l2Asset)
}
