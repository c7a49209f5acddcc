package ledger

import (
	"context"
	"math/big"

	bridgecommon "github.com/0xPolygon/obridge/common"
	"github.com/ethereum/go-ethereum/common"
)

// Custody is the view the L1 bridge has of the ledger: every movement is made by, or pays out
// of, the bridge account
type Custody struct {
	ledger *Ledger
	bridge common.Address
}

// NewCustody binds the ledger to the bridge account
func NewCustody(l *Ledger, bridge common.Address) *Custody {
	return &Custody{ledger: l, bridge: bridge}
}

func (c *Custody) TransferFrom(ctx context.Context, token, from, to common.Address, amount *big.Int) error {
	return c.ledger.TransferFrom(ctx, c.bridge, token, from, to, amount)
}

func (c *Custody) Transfer(ctx context.Context, token, to common.Address, amount *big.Int) error {
	return c.ledger.Transfer(ctx, token, c.bridge, to, amount)
}

func (c *Custody) CollectNative(ctx context.Context, from common.Address, amount *big.Int) error {
	return c.ledger.Transfer(ctx, bridgecommon.NativeAsset, from, c.bridge, amount)
}

func (c *Custody) SendNative(ctx context.Context, to common.Address, amount *big.Int) error {
	return c.ledger.Transfer(ctx, bridgecommon.NativeAsset, c.bridge, to, amount)
}

// Minter is the view the L2 bridge has of the ledger: it mints and burns as the bridge account,
// which must be the minter of every bridged asset
type Minter struct {
	ledger *Ledger
	bridge common.Address
}

// NewMinter binds the ledger to the bridge account and makes it the minter of assets
func NewMinter(l *Ledger, bridge common.Address, assets ...common.Address) *Minter {
	for _, asset := range assets {
		l.SetMinter(asset, bridge)
	}
	return &Minter{ledger: l, bridge: bridge}
}

func (m *Minter) Mint(ctx context.Context, asset, to common.Address, amount *big.Int) error {
	return m.ledger.Mint(ctx, m.bridge, asset, to, amount)
}

func (m *Minter) Burn(ctx context.Context, asset, from common.Address, amount *big.Int) error {
	return m.ledger.Burn(ctx, m.bridge, asset, from, amount)
}
