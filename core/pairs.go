package core

import (
	"context"
	"errors"
	"fmt"

	"github.com/0xPolygon/obridge/db"
	"github.com/0xPolygon/obridge/eventlog"
	"github.com/0xPolygon/obridge/registry"
	"github.com/ethereum/go-ethereum/common"
)

// PairRegistry adds the TokenRegistry admin surface to a bridge whose DB carries the
// registry tables
type PairRegistry struct {
	base *Base
}

// NewPairRegistry binds the token pair operations to base
func NewPairRegistry(base *Base) PairRegistry {
	return PairRegistry{base: base}
}

// RegisterTokenPair maps l1Asset to l2Asset. Admin only.
func (p PairRegistry) RegisterTokenPair(ctx context.Context, caller, l1Asset, l2Asset common.Address) error {
	b := p.base
	return b.AdminTransition(ctx, "registerTokenPair", caller, func(_ context.Context, tx *db.Tx) error {
		if err := registry.Register(tx, registry.TokenPair{L1Asset: l1Asset, L2Asset: l2Asset}); err != nil {
			return err
		}
		_, err := b.events.Append(tx, eventlog.TokenPairRegistered, b.Now(), eventlog.TokenPairRegisteredData{
			L1Asset: l1Asset,
			L2Asset: l2Asset,
		})
		if err == nil {
			tx.AddCommitCallback(func() {
				b.logger.Infof("token pair registered: L1 %s <-> L2 %s", l1Asset, l2Asset)
			})
		}
		return err
	})
}

// SeedTokenPairs registers the missing pairs of a static configuration as the current admin
func (p PairRegistry) SeedTokenPairs(ctx context.Context, pairs []registry.TokenPair) error {
	for _, pair := range pairs {
		err := p.RegisterTokenPair(ctx, p.base.Admin(), pair.L1Asset, pair.L2Asset)
		if err != nil && !errors.Is(err, registry.ErrPairConflict) {
			return fmt.Errorf("registering configured token pair %s/%s: %w", pair.L1Asset, pair.L2Asset, err)
		}
	}
	return nil
}

// TokenPairs returns every registered pair
func (p PairRegistry) TokenPairs() ([]registry.TokenPair, error) {
	return registry.Pairs(p.base.db)
}
