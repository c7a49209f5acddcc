// Package finalizer is a keeper that calls the permissionless finalization operations as soon
// as they are allowed: matured withdrawals on the L1 bridge and batches whose finalization
// delay has passed on the state commitment chain.
package finalizer

import (
	"context"
	"fmt"
	"time"

	"github.com/0xPolygon/obridge/bridgeerrors"
	"github.com/0xPolygon/obridge/l1bridge"
	"github.com/0xPolygon/obridge/log"
	"github.com/0xPolygon/obridge/statecommitment"
	"github.com/ethereum/go-ethereum/common"
	"golang.org/x/sync/errgroup"
)

const (
	defaultMaxPerPass    = 50
	defaultCheckInterval = 10 * time.Second
)

// WithdrawalFinalizer is the L1 bridge as seen by the keeper
type WithdrawalFinalizer interface {
	MaturedWithdrawals(limit uint64) ([]l1bridge.PendingWithdrawal, error)
	FinalizeWithdrawal(ctx context.Context, caller common.Address, withdrawalID common.Hash) error
}

// BatchFinalizer is the state commitment chain as seen by the keeper
type BatchFinalizer interface {
	ReadyBatches(limit uint64) ([]statecommitment.Batch, error)
	FinalizeBatch(ctx context.Context, caller common.Address, batchID uint64) error
}

// Result of one pass
type Result struct {
	Withdrawals int
	Batches     int
}

// Finalizer is the keeper
type Finalizer struct {
	logger        *log.Logger
	withdrawals   WithdrawalFinalizer
	batches       BatchFinalizer
	caller        common.Address
	checkInterval time.Duration
	maxPerPass    uint64
}

// New returns a keeper for the given components. Either of them can be nil.
func New(logger *log.Logger, cfg Config, withdrawals WithdrawalFinalizer, batches BatchFinalizer) *Finalizer {
	f := &Finalizer{
		logger:        logger,
		withdrawals:   withdrawals,
		batches:       batches,
		caller:        cfg.Caller,
		checkInterval: cfg.CheckInterval.Duration,
		maxPerPass:    cfg.MaxPerPass,
	}
	if f.checkInterval <= 0 {
		f.checkInterval = defaultCheckInterval
	}
	if f.maxPerPass == 0 {
		f.maxPerPass = defaultMaxPerPass
	}
	return f
}

// Start runs a pass every check interval until ctx is done
func (f *Finalizer) Start(ctx context.Context) {
	ticker := time.NewTicker(f.checkInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			f.logger.Info("finalizer stopped")
			return
		case <-ticker.C:
			res, err := f.RunOnce(ctx)
			if err != nil {
				f.logger.Errorf("error running finalization pass: %v", err)
				continue
			}
			if res.Withdrawals > 0 || res.Batches > 0 {
				f.logger.Infof("finalized %d withdrawals and %d batches", res.Withdrawals, res.Batches)
			}
		}
	}
}

// RunOnce finalizes what is ready now. A rejected item is logged and left for the next pass.
// Withdrawals and batches are independent: an error on one side does not stop the other.
func (f *Finalizer) RunOnce(ctx context.Context) (Result, error) {
	var (
		res Result
		g   errgroup.Group
	)
	if f.withdrawals != nil {
		g.Go(func() error {
			n, err := f.finalizeWithdrawals(ctx)
			res.Withdrawals = n
			return err
		})
	}
	if f.batches != nil {
		g.Go(func() error {
			n, err := f.finalizeBatches(ctx)
			res.Batches = n
			return err
		})
	}
	err := g.Wait()
	return res, err
}

func (f *Finalizer) finalizeWithdrawals(ctx context.Context) (int, error) {
	matured, err := f.withdrawals.MaturedWithdrawals(f.maxPerPass)
	if err != nil {
		return 0, err
	}
	finalized := 0
	for _, w := range matured {
		if err := ctx.Err(); err != nil {
			return finalized, err
		}
		if err := f.withdrawals.FinalizeWithdrawal(ctx, f.caller, w.WithdrawalID); err != nil {
			f.logRejection("withdrawal "+w.WithdrawalID.Hex(), err)
			continue
		}
		finalized++
	}
	return finalized, nil
}

func (f *Finalizer) finalizeBatches(ctx context.Context) (int, error) {
	ready, err := f.batches.ReadyBatches(f.maxPerPass)
	if err != nil {
		return 0, err
	}
	finalized := 0
	for _, b := range ready {
		if err := ctx.Err(); err != nil {
			return finalized, err
		}
		if err := f.batches.FinalizeBatch(ctx, f.caller, b.BatchID); err != nil {
			f.logRejection(fmt.Sprintf("batch %d", b.BatchID), err)
			continue
		}
		finalized++
	}
	return finalized, nil
}

func (f *Finalizer) logRejection(item string, err error) {
	if bridgeerrors.IsPermanent(err) {
		// finalized by someone else in between
		f.logger.Debugf("%s already finalized: %v", item, err)
		return
	}
	f.logger.Warnf("error finalizing %s, retrying on the next pass: %v", item, err)
}
