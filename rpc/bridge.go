package rpc

import (
	"context"
	"fmt"
	"time"

	"github.com/0xPolygon/cdk-rpc/rpc"
	bridgecommon "github.com/0xPolygon/obridge/common"
	"github.com/0xPolygon/obridge/log"
	"github.com/0xPolygon/obridge/rpc/types"
	"github.com/ethereum/go-ethereum/common"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

const (
	// BRIDGE is the namespace of the bridge service
	BRIDGE = "bridge"

	networkL1 = "l1"
	networkL2 = "l2"
)

// BridgeEndpoints contains implementations for the "bridge" RPC endpoints
type BridgeEndpoints struct {
	logger       *log.Logger
	meter        metric.Meter
	readTimeout  time.Duration
	writeTimeout time.Duration
	l2NetworkID  uint32
	bridgeL1     L1Bridger
	bridgeL2     L2Bridger
}

// NewBridgeEndpoints returns BridgeEndpoints. Either bridge can be nil when this node does not
// run it.
func NewBridgeEndpoints(
	logger *log.Logger,
	writeTimeout time.Duration,
	readTimeout time.Duration,
	l2NetworkID uint32,
	bridgeL1 L1Bridger,
	bridgeL2 L2Bridger,
) *BridgeEndpoints {
	meter := otel.Meter(meterName)
	return &BridgeEndpoints{
		logger:       logger,
		meter:        meter,
		readTimeout:  readTimeout,
		writeTimeout: writeTimeout,
		l2NetworkID:  l2NetworkID,
		bridgeL1:     bridgeL1,
		bridgeL2:     bridgeL2,
	}
}

// Nonces returns the nonces the next deposit and withdrawal intents will carry
func (b *BridgeEndpoints) Nonces() (interface{}, rpc.Error) {
	ctx, cancel := context.WithTimeout(context.Background(), b.readTimeout)
	defer cancel()
	countCall(ctx, b.logger, b.meter, "nonces")

	if b.bridgeL1 == nil || b.bridgeL2 == nil {
		return zeroHex, rpc.NewRPCError(rpc.DefaultErrorCode, "this client does not run both bridges")
	}
	deposit, err := b.bridgeL1.DepositNonce()
	if err != nil {
		return zeroHex, rpc.NewRPCError(rpc.DefaultErrorCode, fmt.Sprintf("failed to get deposit nonce, error: %s", err))
	}
	withdrawal, err := b.bridgeL2.WithdrawalNonce()
	if err != nil {
		return zeroHex, rpc.NewRPCError(
			rpc.DefaultErrorCode, fmt.Sprintf("failed to get withdrawal nonce, error: %s", err),
		)
	}
	return types.Nonces{Deposit: deposit, Withdrawal: withdrawal}, nil
}

// WithdrawalID returns the L1 id of the L2 withdrawal intent emitted with the given nonce
func (b *BridgeEndpoints) WithdrawalID(nonce uint64) (interface{}, rpc.Error) {
	ctx, cancel := context.WithTimeout(context.Background(), b.readTimeout)
	defer cancel()
	countCall(ctx, b.logger, b.meter, "withdrawal_id")

	return bridgecommon.CalculateWithdrawalID(b.l2NetworkID, nonce), nil
}

// WithdrawalStatus returns the pending entry of a withdrawal id and whether it was finalized
func (b *BridgeEndpoints) WithdrawalStatus(withdrawalID common.Hash) (interface{}, rpc.Error) {
	ctx, cancel := context.WithTimeout(context.Background(), b.readTimeout)
	defer cancel()
	countCall(ctx, b.logger, b.meter, "withdrawal_status")

	if b.bridgeL1 == nil {
		return zeroHex, rpc.NewRPCError(rpc.DefaultErrorCode, "this client does not run the L1 bridge")
	}
	processed, err := b.bridgeL1.IsProcessed(withdrawalID)
	if err != nil {
		return zeroHex, rpc.NewRPCError(
			rpc.DefaultErrorCode, fmt.Sprintf("failed to get processed status, error: %s", err),
		)
	}
	res := types.WithdrawalStatus{WithdrawalID: withdrawalID, Processed: processed}
	p, err := b.bridgeL1.PendingWithdrawal(withdrawalID)
	if err != nil {
		return zeroHex, rpc.NewRPCError(
			rpc.DefaultErrorCode, fmt.Sprintf("failed to get pending withdrawal, error: %s", err),
		)
	}
	if p.Exists() {
		res.Pending = &types.PendingWithdrawal{
			WithdrawalID: p.WithdrawalID,
			Asset:        p.Asset,
			Recipient:    p.Recipient,
			Amount:       p.Amount,
			RegisteredAt: p.RegisteredAt,
			MaturesAt:    p.MaturesAt(b.bridgeL1.ChallengeDelay()),
		}
	}
	return res, nil
}

// TokenPairs returns the asset pairs registered on the given network ("l1" or "l2")
func (b *BridgeEndpoints) TokenPairs(network string) (interface{}, rpc.Error) {
	ctx, cancel := context.WithTimeout(context.Background(), b.readTimeout)
	defer cancel()
	countCall(ctx, b.logger, b.meter, "token_pairs")

	switch {
	case network == networkL1 && b.bridgeL1 != nil:
		pairs, err := b.bridgeL1.TokenPairs()
		if err != nil {
			return zeroHex, rpc.NewRPCError(rpc.DefaultErrorCode, fmt.Sprintf("failed to get token pairs, error: %s", err))
		}
		return pairs, nil
	case network == networkL2 && b.bridgeL2 != nil:
		pairs, err := b.bridgeL2.TokenPairs()
		if err != nil {
			return zeroHex, rpc.NewRPCError(rpc.DefaultErrorCode, fmt.Sprintf("failed to get token pairs, error: %s", err))
		}
		return pairs, nil
	}
	return zeroHex, rpc.NewRPCError(rpc.DefaultErrorCode, fmt.Sprintf("this client does not support network %s", network))
}

// Events returns up to limit audit events of the given network ("l1" or "l2") with id >= fromID
func (b *BridgeEndpoints) Events(network string, fromID, limit uint64) (interface{}, rpc.Error) {
	ctx, cancel := context.WithTimeout(context.Background(), b.readTimeout)
	defer cancel()
	countCall(ctx, b.logger, b.meter, "events")

	var reader EventReader
	switch {
	case network == networkL1 && b.bridgeL1 != nil:
		reader = b.bridgeL1
	case network == networkL2 && b.bridgeL2 != nil:
		reader = b.bridgeL2
	default:
		return zeroHex, rpc.NewRPCError(
			rpc.DefaultErrorCode, fmt.Sprintf("this client does not support network %s", network),
		)
	}
	events, err := reader.Events(fromID, eventsLimit(limit))
	if err != nil {
		return zeroHex, rpc.NewRPCError(rpc.DefaultErrorCode, fmt.Sprintf("failed to get events, error: %s", err))
	}
	return events, nil
}

// FinalizeWithdrawal releases a matured withdrawal on L1. Anyone can call it.
func (b *BridgeEndpoints) FinalizeWithdrawal(caller common.Address, withdrawalID common.Hash) (interface{}, rpc.Error) {
	ctx, cancel := context.WithTimeout(context.Background(), b.writeTimeout)
	defer cancel()
	countCall(ctx, b.logger, b.meter, "finalize_withdrawal")

	if b.bridgeL1 == nil {
		return zeroHex, rpc.NewRPCError(rpc.DefaultErrorCode, "this client does not run the L1 bridge")
	}
	if err := b.bridgeL1.FinalizeWithdrawal(ctx, caller, withdrawalID); err != nil {
		return zeroHex, toRPCError("finalizeWithdrawal", err)
	}
	return nil, nil
}
