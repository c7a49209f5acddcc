// Package ledger is an in-memory multi-asset ledger used to run the bridge on a devnet and in
// tests. It stands in for the token contracts and the native balances of one domain.
package ledger

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"sync"

	"github.com/0xPolygon/obridge/log"
	"github.com/ethereum/go-ethereum/common"
)

var (
	ErrInsufficientBalance   = errors.New("insufficient balance")
	ErrInsufficientAllowance = errors.New("insufficient allowance")
	ErrNotMinter             = errors.New("caller is not the minter of the asset")
	ErrInvalidAmount         = errors.New("invalid amount")
)

type allowanceKey struct {
	asset   common.Address
	owner   common.Address
	spender common.Address
}

type balanceKey struct {
	asset  common.Address
	holder common.Address
}

// Ledger holds balances and allowances of every asset of a domain. The zero address is the
// native asset.
type Ledger struct {
	name   string
	logger *log.Logger

	mu         sync.RWMutex
	balances   map[balanceKey]*big.Int
	allowances map[allowanceKey]*big.Int
	supply     map[common.Address]*big.Int
	minters    map[common.Address]common.Address
}

// New returns an empty ledger
func New(name string, logger *log.Logger) *Ledger {
	return &Ledger{
		name:       name,
		logger:     logger,
		balances:   make(map[balanceKey]*big.Int),
		allowances: make(map[allowanceKey]*big.Int),
		supply:     make(map[common.Address]*big.Int),
		minters:    make(map[common.Address]common.Address),
	}
}

// Name of the domain
func (l *Ledger) Name() string {
	return l.name
}

// Credit creates amount of asset for holder without a minter. Used to fund devnet accounts.
func (l *Ledger) Credit(asset, holder common.Address, amount *big.Int) error {
	if err := checkAmount(amount); err != nil {
		return err
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	l.add(asset, holder, amount)
	l.addSupply(asset, amount)
	return nil
}

// SetMinter makes minter the only account allowed to mint and burn asset
func (l *Ledger) SetMinter(asset, minter common.Address) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.minters[asset] = minter
}

// Minter of asset, the zero address when there is none
func (l *Ledger) Minter(asset common.Address) common.Address {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return l.minters[asset]
}

// BalanceOf returns the balance of holder
func (l *Ledger) BalanceOf(asset, holder common.Address) *big.Int {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return new(big.Int).Set(l.balance(asset, holder))
}

// TotalSupply of asset
func (l *Ledger) TotalSupply(asset common.Address) *big.Int {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if s, ok := l.supply[asset]; ok {
		return new(big.Int).Set(s)
	}
	return big.NewInt(0)
}

// Approve lets spender move up to amount of the asset held by owner
func (l *Ledger) Approve(asset, owner, spender common.Address, amount *big.Int) error {
	if err := checkAmount(amount); err != nil {
		return err
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	l.allowances[allowanceKey{asset: asset, owner: owner, spender: spender}] = new(big.Int).Set(amount)
	return nil
}

// Allowance given by owner to spender
func (l *Ledger) Allowance(asset, owner, spender common.Address) *big.Int {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if a, ok := l.allowances[allowanceKey{asset: asset, owner: owner, spender: spender}]; ok {
		return new(big.Int).Set(a)
	}
	return big.NewInt(0)
}

// Transfer moves amount of asset from `from` to `to`
func (l *Ledger) Transfer(ctx context.Context, asset, from, to common.Address, amount *big.Int) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := checkAmount(amount); err != nil {
		return err
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := l.sub(asset, from, amount); err != nil {
		return err
	}
	l.add(asset, to, amount)
	l.logger.Debugf("%s: transfer %s of %s from %s to %s", l.name, amount, asset, from, to)
	return nil
}

// TransferFrom moves amount of asset from `from` to `to` on behalf of spender, consuming the
// allowance `from` gave to spender
func (l *Ledger) TransferFrom(
	ctx context.Context, spender, asset, from, to common.Address, amount *big.Int,
) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := checkAmount(amount); err != nil {
		return err
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	key := allowanceKey{asset: asset, owner: from, spender: spender}
	allowance, ok := l.allowances[key]
	if !ok || allowance.Cmp(amount) < 0 {
		return fmt.Errorf("%s allows %s to spend %s of %s: %w", from, spender, allowance, asset,
			ErrInsufficientAllowance)
	}
	if err := l.sub(asset, from, amount); err != nil {
		return err
	}
	l.add(asset, to, amount)
	l.allowances[key] = new(big.Int).Sub(allowance, amount)
	l.logger.Debugf("%s: %s moved %s of %s from %s to %s", l.name, spender, amount, asset, from, to)
	return nil
}

// Mint creates amount of asset for `to`. Only the minter of asset can call it.
func (l *Ledger) Mint(ctx context.Context, caller, asset, to common.Address, amount *big.Int) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := checkAmount(amount); err != nil {
		return err
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := l.checkMinter(caller, asset); err != nil {
		return err
	}
	l.add(asset, to, amount)
	l.addSupply(asset, amount)
	l.logger.Debugf("%s: minted %s of %s to %s", l.name, amount, asset, to)
	return nil
}

// Burn destroys amount of asset held by `from`. Only the minter of asset can call it.
func (l *Ledger) Burn(ctx context.Context, caller, asset, from common.Address, amount *big.Int) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := checkAmount(amount); err != nil {
		return err
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := l.checkMinter(caller, asset); err != nil {
		return err
	}
	if err := l.sub(asset, from, amount); err != nil {
		return err
	}
	l.addSupply(asset, new(big.Int).Neg(amount))
	l.logger.Debugf("%s: burnt %s of %s from %s", l.name, amount, asset, from)
	return nil
}

func (l *Ledger) checkMinter(caller, asset common.Address) error {
	minter, ok := l.minters[asset]
	if !ok || minter != caller {
		return fmt.Errorf("%s on asset %s: %w", caller, asset, ErrNotMinter)
	}
	return nil
}

func (l *Ledger) balance(asset, holder common.Address) *big.Int {
	if b, ok := l.balances[balanceKey{asset: asset, holder: holder}]; ok {
		return b
	}
	return big.NewInt(0)
}

func (l *Ledger) add(asset, holder common.Address, amount *big.Int) {
	l.balances[balanceKey{asset: asset, holder: holder}] = new(big.Int).Add(l.balance(asset, holder), amount)
}

func (l *Ledger) sub(asset, holder common.Address, amount *big.Int) error {
	current := l.balance(asset, holder)
	if current.Cmp(amount) < 0 {
		return fmt.Errorf("%s holds %s of %s, needs %s: %w", holder, current, asset, amount, ErrInsufficientBalance)
	}
	l.balances[balanceKey{asset: asset, holder: holder}] = new(big.Int).Sub(current, amount)
	return nil
}

func (l *Ledger) addSupply(asset common.Address, amount *big.Int) {
	current, ok := l.supply[asset]
	if !ok {
		current = big.NewInt(0)
	}
	l.supply[asset] = new(big.Int).Add(current, amount)
}

func checkAmount(amount *big.Int) error {
	if amount == nil || amount.Sign() < 0 {
		return ErrInvalidAmount
	}
	return nil
}
