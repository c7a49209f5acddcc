package rpc

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/0xPolygon/cdk-rpc/rpc"
	"github.com/0xPolygon/obridge/db"
	"github.com/0xPolygon/obridge/log"
	"github.com/0xPolygon/obridge/rpc/types"
	"github.com/ethereum/go-ethereum/common"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

// COMMITMENT is the namespace of the state commitment service
const COMMITMENT = "commitment"

// CommitmentEndpoints contains implementations for the "commitment" RPC endpoints
type CommitmentEndpoints struct {
	logger       *log.Logger
	meter        metric.Meter
	readTimeout  time.Duration
	writeTimeout time.Duration
	commitment   Committer
}

// NewCommitmentEndpoints returns CommitmentEndpoints
func NewCommitmentEndpoints(
	logger *log.Logger,
	writeTimeout time.Duration,
	readTimeout time.Duration,
	commitment Committer,
) *CommitmentEndpoints {
	return &CommitmentEndpoints{
		logger:       logger,
		meter:        otel.Meter(meterName),
		readTimeout:  readTimeout,
		writeTimeout: writeTimeout,
		commitment:   commitment,
	}
}

// Batch returns the batch with the given id
func (c *CommitmentEndpoints) Batch(batchID uint64) (interface{}, rpc.Error) {
	ctx, cancel := context.WithTimeout(context.Background(), c.readTimeout)
	defer cancel()
	countCall(ctx, c.logger, c.meter, "batch")

	b, err := c.commitment.Batch(batchID)
	if errors.Is(err, db.ErrNotFound) {
		return zeroHex, rpc.NewRPCError(PreconditionErrorCode, fmt.Sprintf("batch %d does not exist", batchID))
	}
	if err != nil {
		return zeroHex, rpc.NewRPCError(rpc.DefaultErrorCode, fmt.Sprintf("failed to get batch, error: %s", err))
	}
	return types.Batch{
		BatchID:         b.BatchID,
		StateRoot:       b.StateRoot,
		TransactionRoot: b.TransactionRoot,
		L2BlockNumber:   b.L2BlockNumber,
		PayloadHash:     b.PayloadHash,
		Submitter:       b.Submitter,
		SubmittedAt:     b.SubmittedAt,
		FinalizableAt:   b.FinalizableAt(c.commitment.FinalizationDelay()),
		Finalized:       b.Finalized,
		FinalizedAt:     b.FinalizedAt,
	}, nil
}

// StateRoot returns the state root of a batch, the zero hash for unknown ids
func (c *CommitmentEndpoints) StateRoot(batchID uint64) (interface{}, rpc.Error) {
	ctx, cancel := context.WithTimeout(context.Background(), c.readTimeout)
	defer cancel()
	countCall(ctx, c.logger, c.meter, "state_root")

	root, err := c.commitment.StateRoot(batchID)
	if err != nil {
		return zeroHex, rpc.NewRPCError(rpc.DefaultErrorCode, fmt.Sprintf("failed to get state root, error: %s", err))
	}
	return root, nil
}

// IsFinalized reports whether a batch is final, false for unknown ids
func (c *CommitmentEndpoints) IsFinalized(batchID uint64) (interface{}, rpc.Error) {
	ctx, cancel := context.WithTimeout(context.Background(), c.readTimeout)
	defer cancel()
	countCall(ctx, c.logger, c.meter, "is_finalized")

	finalized, err := c.commitment.IsFinalized(batchID)
	if err != nil {
		return zeroHex, rpc.NewRPCError(
			rpc.DefaultErrorCode, fmt.Sprintf("failed to get finalization status, error: %s", err),
		)
	}
	return finalized, nil
}

// Status returns unknown, submitted, finalized or reverted
func (c *CommitmentEndpoints) Status(batchID uint64) (interface{}, rpc.Error) {
	ctx, cancel := context.WithTimeout(context.Background(), c.readTimeout)
	defer cancel()
	countCall(ctx, c.logger, c.meter, "status")

	status, err := c.commitment.Status(batchID)
	if err != nil {
		return zeroHex, rpc.NewRPCError(rpc.DefaultErrorCode, fmt.Sprintf("failed to get batch status, error: %s", err))
	}
	return status, nil
}

// LastBatchID returns the id of the last submitted batch
func (c *CommitmentEndpoints) LastBatchID() (interface{}, rpc.Error) {
	ctx, cancel := context.WithTimeout(context.Background(), c.readTimeout)
	defer cancel()
	countCall(ctx, c.logger, c.meter, "last_batch_id")

	id, ok, err := c.commitment.LastBatchID()
	if err != nil {
		return zeroHex, rpc.NewRPCError(rpc.DefaultErrorCode, fmt.Sprintf("failed to get last batch id, error: %s", err))
	}
	if !ok {
		return zeroHex, rpc.NewRPCError(PreconditionErrorCode, "no batch submitted yet")
	}
	return id, nil
}

// Events returns up to limit audit events of the state commitment chain with id >= fromID
func (c *CommitmentEndpoints) Events(fromID, limit uint64) (interface{}, rpc.Error) {
	ctx, cancel := context.WithTimeout(context.Background(), c.readTimeout)
	defer cancel()
	countCall(ctx, c.logger, c.meter, "commitment_events")

	events, err := c.commitment.Events(fromID, eventsLimit(limit))
	if err != nil {
		return zeroHex, rpc.NewRPCError(rpc.DefaultErrorCode, fmt.Sprintf("failed to get events, error: %s", err))
	}
	return events, nil
}

// FinalizeBatch finalizes a batch whose finalization delay has passed. Anyone can call it.
func (c *CommitmentEndpoints) FinalizeBatch(caller common.Address, batchID uint64) (interface{}, rpc.Error) {
	ctx, cancel := context.WithTimeout(context.Background(), c.writeTimeout)
	defer cancel()
	countCall(ctx, c.logger, c.meter, "finalize_batch")

	if err := c.commitment.FinalizeBatch(ctx, caller, batchID); err != nil {
		return zeroHex, toRPCError("finalizeBatch", err)
	}
	return nil, nil
}
