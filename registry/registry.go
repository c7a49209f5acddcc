// Package registry is the TokenRegistry: the bidirectional mapping between an L1 asset and its
// L2 counterpart. A pair is unique in both directions, so registration is symmetric and an
// asset resolves only when both directions agree.
package registry

import (
	"errors"
	"fmt"

	"github.com/0xPolygon/obridge/bridgeerrors"
	"github.com/0xPolygon/obridge/db"
	"github.com/ethereum/go-ethereum/common"
	"github.com/russross/meddler"
)

var (
	ErrAssetNotRegistered = bridgeerrors.New(bridgeerrors.ErrPrecondition, "asset not registered")
	ErrPairConflict       = bridgeerrors.New(bridgeerrors.ErrPrecondition, "asset already paired")
)

// TokenPair maps an L1 asset to its L2 counterpart. The zero address stands for the native asset.
type TokenPair struct {
	L1Asset common.Address `meddler:"l1_asset,address" json:"l1Asset"`
	L2Asset common.Address `meddler:"l2_asset,address" json:"l2Asset"`
}

// Register stores the pair. Either side already being part of a pair is a conflict.
func Register(tx meddler.DB, pair TokenPair) error {
	if _, err := L2For(tx, pair.L1Asset); err == nil {
		return fmt.Errorf("l1 asset %s: %w", pair.L1Asset, ErrPairConflict)
	} else if !errors.Is(err, ErrAssetNotRegistered) {
		return err
	}
	if _, err := L1For(tx, pair.L2Asset); err == nil {
		return fmt.Errorf("l2 asset %s: %w", pair.L2Asset, ErrPairConflict)
	} else if !errors.Is(err, ErrAssetNotRegistered) {
		return err
	}

	if err := meddler.Insert(tx, "token_pair", &pair); err != nil {
		if db.IsUniqueViolation(err) {
			return ErrPairConflict
		}
		return fmt.Errorf("error inserting token pair: %w", err)
	}
	return nil
}

// L2For returns the L2 counterpart of l1Asset
func L2For(q meddler.DB, l1Asset common.Address) (common.Address, error) {
	var pair TokenPair
	err := meddler.QueryRow(q, &pair, "SELECT * FROM token_pair WHERE l1_asset = $1;", l1Asset.Hex())
	return pair.L2Asset, lookupErr(err)
}

// L1For returns the L1 counterpart of l2Asset
func L1For(q meddler.DB, l2Asset common.Address) (common.Address, error) {
	var pair TokenPair
	err := meddler.QueryRow(q, &pair, "SELECT * FROM token_pair WHERE l2_asset = $1;", l2Asset.Hex())
	return pair.L1Asset, lookupErr(err)
}

// ResolveL1 maps an L1 asset to L2, requiring the reverse direction to point back to it
func ResolveL1(q meddler.DB, l1Asset common.Address) (common.Address, error) {
	l2Asset, err := L2For(q, l1Asset)
	if err != nil {
		return common.Address{}, err
	}
	back, err := L1For(q, l2Asset)
	if err != nil {
		return common.Address{}, err
	}
	if back != l1Asset {
		return common.Address{}, ErrAssetNotRegistered
	}
	return l2Asset, nil
}

// ResolveL2 maps an L2 asset to L1, requiring the reverse direction to point back to it
func ResolveL2(q meddler.DB, l2Asset common.Address) (common.Address, error) {
	l1Asset, err := L1For(q, l2Asset)
	if err != nil {
		return common.Address{}, err
	}
	back, err := L2For(q, l1Asset)
	if err != nil {
		return common.Address{}, err
	}
	if back != l2Asset {
		return common.Address{}, ErrAssetNotRegistered
	}
	return l1Asset, nil
}

// Pairs returns every registered pair
func Pairs(q meddler.DB) ([]TokenPair, error) {
	var pairs []*TokenPair
	if err := meddler.QueryAll(q, &pairs, "SELECT * FROM token_pair ORDER BY l1_asset;"); err != nil {
		return nil, fmt.Errorf("error reading token pairs: %w", err)
	}
	return db.SlicePtrsToSlice(pairs).([]TokenPair), nil
}

func lookupErr(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(db.ReturnErrNotFound(err), db.ErrNotFound) {
		return ErrAssetNotRegistered
	}
	return fmt.Errorf("error reading token pair: %w", err)
}
