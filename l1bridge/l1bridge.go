// Package l1bridge is the settlement side of the bridge. It takes deposits into custody and
// emits deposit intents, and it releases withdrawals the sequencer registered once their
// challenge delay has passed.
package l1bridge

import (
	"context"
	"fmt"
	"math/big"

	"github.com/0xPolygon/obridge/bridgeerrors"
	bridgecommon "github.com/0xPolygon/obridge/common"
	"github.com/0xPolygon/obridge/core"
	"github.com/0xPolygon/obridge/db"
	"github.com/0xPolygon/obridge/eventlog"
	"github.com/0xPolygon/obridge/l1bridge/migrations"
	"github.com/0xPolygon/obridge/log"
	"github.com/0xPolygon/obridge/metrics"
	"github.com/0xPolygon/obridge/registry"
	"github.com/0xPolygon/obridge/withdrawalledger"
	"github.com/benbjohnson/clock"
	"github.com/ethereum/go-ethereum/common"
)

const (
	opDeposit            = "deposit"
	opDepositNative      = "depositNative"
	opRegisterWithdrawal = "registerWithdrawal"
	opFinalizeWithdrawal = "finalizeWithdrawal"
)

// BridgeL1 is the L1 side of the bridge
type BridgeL1 struct {
	*core.Base
	core.PairRegistry

	custody            Custody
	address            common.Address
	challengeDelay     uint64
	registrationPolicy string
}

// New opens the bridge DB, runs its migrations, loads the trust actors and registers the
// configured token pairs
func New(
	ctx context.Context,
	logger *log.Logger,
	cfg Config,
	custody Custody,
	clk clock.Clock,
	m metrics.Metricer,
) (*BridgeL1, error) {
	policy := cfg.RegistrationPolicy
	switch policy {
	case "":
		policy = PolicyOverwrite
	case PolicyOverwrite, PolicyRejectPending:
	default:
		return nil, fmt.Errorf("unknown registration policy %q", cfg.RegistrationPolicy)
	}

	base, err := core.Open(ctx, bridgecommon.L1BRIDGE, logger, cfg.DBPath, migrations.RunMigrations,
		cfg.Authority, clk, m)
	if err != nil {
		return nil, err
	}
	b := &BridgeL1{
		Base:               base,
		PairRegistry:       core.NewPairRegistry(base),
		custody:            custody,
		address:            cfg.Address,
		challengeDelay:     uint64(cfg.ChallengeDelay.Seconds()),
		registrationPolicy: policy,
	}
	if err := b.SeedTokenPairs(ctx, cfg.TokenPairs); err != nil {
		b.Close()
		return nil, err
	}
	b.refreshPendingGauge()

	logger.Infof("L1 bridge ready: address %s, challenge delay %ds, registration policy %s",
		cfg.Address, b.challengeDelay, policy)

	return b, nil
}

// Deposit takes amount of asset from caller into custody and emits a deposit intent for
// destRecipient on L2. It returns the nonce of the intent.
func (b *BridgeL1) Deposit(
	ctx context.Context, caller, asset common.Address, amount *big.Int, destRecipient common.Address,
) (nonce uint64, err error) {
	defer func() { b.Observe(opDeposit, err) }()

	if amount == nil || amount.Sign() <= 0 {
		return 0, ErrZeroAmount
	}
	if bridgecommon.IsNativeAsset(asset) {
		return 0, ErrNativeAssetNotAllowed
	}

	return b.deposit(ctx, caller, asset, amount, destRecipient, func(ctx context.Context) error {
		if err := b.custody.TransferFrom(ctx, asset, caller, b.address, amount); err != nil {
			return bridgeerrors.Transfer("transferFrom", err)
		}
		return nil
	})
}

// DepositNative is Deposit for the native value attached to the call
func (b *BridgeL1) DepositNative(
	ctx context.Context, caller common.Address, value *big.Int, destRecipient common.Address,
) (nonce uint64, err error) {
	defer func() { b.Observe(opDepositNative, err) }()

	if value == nil || value.Sign() <= 0 {
		return 0, ErrZeroAmount
	}

	return b.deposit(ctx, caller, bridgecommon.NativeAsset, value, destRecipient, func(ctx context.Context) error {
		if err := b.custody.CollectNative(ctx, caller, value); err != nil {
			return bridgeerrors.Transfer("collectNative", err)
		}
		return nil
	})
}

func (b *BridgeL1) deposit(
	ctx context.Context,
	caller, asset common.Address,
	amount *big.Int,
	destRecipient common.Address,
	collect func(ctx context.Context) error,
) (nonce uint64, err error) {
	err = b.Transition(ctx, func(ctx context.Context, tx *db.Tx) error {
		if _, err := registry.ResolveL1(tx, asset); err != nil {
			return err
		}
		n, err := withdrawalledger.NextNonce(tx, withdrawalledger.DepositNonce)
		if err != nil {
			return err
		}
		if _, err := b.Log().Append(tx, eventlog.DepositInitiated, b.Now(), eventlog.DepositInitiatedData{
			Asset:         asset,
			Depositor:     caller,
			DestRecipient: destRecipient,
			Amount:        new(big.Int).Set(amount),
			Nonce:         n,
		}); err != nil {
			return err
		}
		if err := b.CallOut(ctx, collect); err != nil {
			return err
		}
		tx.AddCommitCallback(func() {
			b.Metrics().RecordNonce(b.Name(), string(withdrawalledger.DepositNonce), n+1)
			b.Logger().Infof("deposit %d: %s of %s from %s to %s", n, amount, asset, caller, destRecipient)
		})
		nonce = n
		return nil
	})
	return nonce, err
}

// RegisterWithdrawal records a withdrawal the sequencer observed on L2. The entry becomes
// finalizable after the challenge delay. Processed ids are rejected for good.
func (b *BridgeL1) RegisterWithdrawal(
	ctx context.Context,
	caller, asset, recipient common.Address,
	amount *big.Int,
	withdrawalID common.Hash,
) (err error) {
	defer func() { b.Observe(opRegisterWithdrawal, err) }()

	if err := b.Authority().CheckSequencer(caller); err != nil {
		return err
	}
	if amount == nil {
		amount = big.NewInt(0)
	}
	if amount.Sign() < 0 {
		return ErrNegativeAmount
	}

	return b.Transition(ctx, func(_ context.Context, tx *db.Tx) error {
		processed, err := withdrawalledger.IsProcessed(tx, withdrawalID)
		if err != nil {
			return err
		}
		if processed {
			return ErrWithdrawalAlreadyProcessed
		}
		current, err := getPendingWithdrawal(tx, withdrawalID)
		if err != nil {
			return err
		}
		if current.Exists() && b.registrationPolicy == PolicyRejectPending {
			return ErrWithdrawalAlreadyPending
		}

		pending := PendingWithdrawal{
			WithdrawalID: withdrawalID,
			Asset:        asset,
			Recipient:    recipient,
			Amount:       new(big.Int).Set(amount),
			RegisteredAt: b.Now(),
		}
		if err := putPendingWithdrawal(tx, &pending); err != nil {
			return err
		}
		if _, err := b.Log().Append(tx, eventlog.WithdrawalRegistered, pending.RegisteredAt,
			eventlog.WithdrawalRegisteredData{
				WithdrawalID: withdrawalID,
				Asset:        asset,
				Recipient:    recipient,
				Amount:       pending.Amount,
				RegisteredAt: pending.RegisteredAt,
				Overwritten:  current.Exists(),
			}); err != nil {
			return err
		}
		tx.AddCommitCallback(func() {
			if current.Exists() {
				b.Logger().Warnf("withdrawal %s registered again, challenge timer restarted", withdrawalID)
			} else {
				b.Logger().Infof("withdrawal %s registered: %s of %s to %s", withdrawalID, amount, asset, recipient)
			}
			b.refreshPendingGauge()
		})
		return nil
	})
}

// FinalizeWithdrawal releases a matured pending withdrawal to its recipient. Anyone can call
// it. When the release fails nothing changes and the call can be retried.
func (b *BridgeL1) FinalizeWithdrawal(ctx context.Context, caller common.Address, withdrawalID common.Hash) (err error) {
	defer func() { b.Observe(opFinalizeWithdrawal, err) }()

	return b.Transition(ctx, func(ctx context.Context, tx *db.Tx) error {
		processed, err := withdrawalledger.IsProcessed(tx, withdrawalID)
		if err != nil {
			return err
		}
		if processed {
			return ErrWithdrawalAlreadyProcessed
		}
		pending, err := getPendingWithdrawal(tx, withdrawalID)
		if err != nil {
			return err
		}
		if !pending.Exists() {
			return ErrNoPendingWithdrawal
		}
		now := b.Now()
		if now < pending.MaturesAt(b.challengeDelay) {
			return fmt.Errorf("%w: matures at %d, now %d",
				ErrChallengePeriodNotElapsed, pending.MaturesAt(b.challengeDelay), now)
		}

		if err := withdrawalledger.MarkProcessed(tx, withdrawalID, now); err != nil {
			return err
		}
		if err := deletePendingWithdrawal(tx, withdrawalID); err != nil {
			return err
		}
		if _, err := b.Log().Append(tx, eventlog.WithdrawalFinalized, now, eventlog.WithdrawalFinalizedData{
			WithdrawalID: withdrawalID,
			Asset:        pending.Asset,
			Recipient:    pending.Recipient,
			Amount:       pending.Amount,
		}); err != nil {
			return err
		}
		if err := b.CallOut(ctx, func(ctx context.Context) error {
			return b.release(ctx, pending)
		}); err != nil {
			return err
		}
		tx.AddCommitCallback(func() {
			b.Logger().Infof("withdrawal %s finalized by %s: %s of %s to %s",
				withdrawalID, caller, pending.Amount, pending.Asset, pending.Recipient)
			b.refreshPendingGauge()
		})
		return nil
	})
}

func (b *BridgeL1) release(ctx context.Context, p PendingWithdrawal) error {
	if bridgecommon.IsNativeAsset(p.Asset) {
		if err := b.custody.SendNative(ctx, p.Recipient, p.Amount); err != nil {
			return bridgeerrors.Transfer("sendNative", err)
		}
		return nil
	}
	if err := b.custody.Transfer(ctx, p.Asset, p.Recipient, p.Amount); err != nil {
		return bridgeerrors.Transfer("transfer", err)
	}
	return nil
}

// DepositNonce returns the nonce the next deposit intent will carry
func (b *BridgeL1) DepositNonce() (uint64, error) {
	return withdrawalledger.CurrentNonce(b.DB(), withdrawalledger.DepositNonce)
}

// PendingWithdrawal returns the entry of id, with a zero amount when there is none
func (b *BridgeL1) PendingWithdrawal(id common.Hash) (PendingWithdrawal, error) {
	return getPendingWithdrawal(b.DB(), id)
}

// IsProcessed reports whether id has been finalized
func (b *BridgeL1) IsProcessed(id common.Hash) (bool, error) {
	return withdrawalledger.IsProcessed(b.DB(), id)
}

// MaturedWithdrawals returns up to limit pending withdrawals that can be finalized now
func (b *BridgeL1) MaturedWithdrawals(limit uint64) ([]PendingWithdrawal, error) {
	now := b.Now()
	if now < b.challengeDelay {
		return nil, nil
	}
	return getMaturedWithdrawals(b.DB(), now-b.challengeDelay, limit)
}

// L2AssetFor resolves the L2 counterpart of l1Asset
func (b *BridgeL1) L2AssetFor(l1Asset common.Address) (common.Address, error) {
	return registry.ResolveL1(b.DB(), l1Asset)
}

// ChallengeDelay in seconds
func (b *BridgeL1) ChallengeDelay() uint64 {
	return b.challengeDelay
}

// Address of the bridge account
func (b *BridgeL1) Address() common.Address {
	return b.address
}

func (b *BridgeL1) refreshPendingGauge() {
	count, err := countPendingWithdrawals(b.DB())
	if err != nil {
		b.Logger().Warnf("error refreshing pending withdrawals gauge: %v", err)
		return
	}
	b.Metrics().RecordPendingWithdrawals(count)
}
