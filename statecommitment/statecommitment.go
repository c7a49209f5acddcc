// Package statecommitment commits batches of L2 state on L1. A batch submitted by the
// sequencer becomes final once its finalization delay has passed, unless a verifier challenged
// it first. A challenged batch is deleted and its id is never handed out again.
package statecommitment

import (
	"context"
	"errors"
	"fmt"

	bridgecommon "github.com/0xPolygon/obridge/common"
	"github.com/0xPolygon/obridge/core"
	"github.com/0xPolygon/obridge/db"
	"github.com/0xPolygon/obridge/eventlog"
	"github.com/0xPolygon/obridge/log"
	"github.com/0xPolygon/obridge/metrics"
	"github.com/0xPolygon/obridge/proofverifier"
	"github.com/0xPolygon/obridge/statecommitment/migrations"
	"github.com/benbjohnson/clock"
	"github.com/ethereum/go-ethereum/common"
	"github.com/russross/meddler"
	"golang.org/x/crypto/sha3"
)

const (
	opSubmitBatch    = "submitBatch"
	opFinalizeBatch  = "finalizeBatch"
	opChallengeBatch = "challengeBatch"
)

// StateCommitment is the batch commitment chain
type StateCommitment struct {
	*core.Base

	verifier          proofverifier.FraudProofVerifier
	finalizationDelay uint64
}

// New opens the DB, runs its migrations and loads the trust actors. A nil verifier is
// built from cfg.ProofVerifier.
func New(
	ctx context.Context,
	logger *log.Logger,
	cfg Config,
	verifier proofverifier.FraudProofVerifier,
	clk clock.Clock,
	m metrics.Metricer,
) (*StateCommitment, error) {
	if verifier == nil {
		var err error
		verifier, err = proofverifier.NewFraudProofVerifier(cfg.ProofVerifier)
		if err != nil {
			return nil, err
		}
	}
	base, err := core.Open(ctx, bridgecommon.STATE_COMMITMENT, logger, cfg.DBPath, migrations.RunMigrations,
		cfg.Authority, clk, m)
	if err != nil {
		return nil, err
	}
	s := &StateCommitment{
		Base:              base,
		verifier:          verifier,
		finalizationDelay: uint64(cfg.FinalizationDelay.Seconds()),
	}
	if next, err := currentBatchID(s.DB()); err != nil {
		s.Close()
		return nil, err
	} else if next > 0 {
		s.Metrics().RecordLastBatchID(next - 1)
	}
	logger.Infof("state commitment ready, finalization delay %ds", s.finalizationDelay)

	return s, nil
}

// SubmitBatch appends a batch and returns its id. Sequencer only.
func (s *StateCommitment) SubmitBatch(
	ctx context.Context,
	caller common.Address,
	stateRoot, transactionRoot common.Hash,
	l2BlockNumber uint64,
	batchPayload []byte,
) (batchID uint64, err error) {
	defer func() { s.Observe(opSubmitBatch, err) }()

	if err := s.Authority().CheckSequencer(caller); err != nil {
		return 0, err
	}

	err = s.Transition(ctx, func(_ context.Context, tx *db.Tx) error {
		id, err := nextBatchID(tx)
		if err != nil {
			return err
		}
		b := Batch{
			BatchID:         id,
			StateRoot:       stateRoot,
			TransactionRoot: transactionRoot,
			L2BlockNumber:   l2BlockNumber,
			PayloadHash:     keccak(batchPayload),
			Submitter:       caller,
			SubmittedAt:     s.Now(),
		}
		if err := meddler.Insert(tx, "batch", &b); err != nil {
			return fmt.Errorf("error inserting batch %d: %w", id, err)
		}
		if _, err := s.Log().Append(tx, eventlog.BatchSubmitted, b.SubmittedAt, eventlog.BatchSubmittedData{
			BatchID:         b.BatchID,
			StateRoot:       b.StateRoot,
			TransactionRoot: b.TransactionRoot,
			L2BlockNumber:   b.L2BlockNumber,
			Payload:         batchPayload,
			PayloadHash:     b.PayloadHash,
			Submitter:       b.Submitter,
			SubmittedAt:     b.SubmittedAt,
		}); err != nil {
			return err
		}
		tx.AddCommitCallback(func() {
			s.Metrics().RecordLastBatchID(id)
			s.Logger().Infof("batch %d submitted: state root %s, l2 block %d", id, stateRoot, l2BlockNumber)
		})
		batchID = id
		return nil
	})
	return batchID, err
}

// FinalizeBatch makes a batch immutable once its finalization delay has passed. Anyone can
// call it.
func (s *StateCommitment) FinalizeBatch(ctx context.Context, caller common.Address, batchID uint64) (err error) {
	defer func() { s.Observe(opFinalizeBatch, err) }()

	return s.Transition(ctx, func(_ context.Context, tx *db.Tx) error {
		b, err := s.submittedBatch(tx, batchID)
		if err != nil {
			return err
		}
		now := s.Now()
		if now < b.FinalizableAt(s.finalizationDelay) {
			return fmt.Errorf("%w: batch %d finalizable at %d, now %d",
				ErrFinalizationPeriodNotElapsed, batchID, b.FinalizableAt(s.finalizationDelay), now)
		}

		if _, err := tx.Exec("UPDATE batch SET finalized = TRUE, finalized_at = $1 WHERE batch_id = $2;",
			now, batchID); err != nil {
			return fmt.Errorf("error finalizing batch %d: %w", batchID, err)
		}
		if _, err := s.Log().Append(tx, eventlog.BatchFinalized, now, eventlog.BatchFinalizedData{
			BatchID:   batchID,
			StateRoot: b.StateRoot,
		}); err != nil {
			return err
		}
		tx.AddCommitCallback(func() {
			s.Logger().Infof("batch %d finalized by %s", batchID, caller)
		})
		return nil
	})
}

// ChallengeBatch reverts a batch that is not final yet. Verifier only. The proof is handed to
// the configured fraud proof verifier.
func (s *StateCommitment) ChallengeBatch(
	ctx context.Context, caller common.Address, batchID uint64, fraudProof []byte,
) (err error) {
	defer func() { s.Observe(opChallengeBatch, err) }()

	if err := s.Authority().CheckVerifier(caller); err != nil {
		return err
	}

	return s.Transition(ctx, func(ctx context.Context, tx *db.Tx) error {
		b, err := s.submittedBatch(tx, batchID)
		if err != nil {
			return err
		}
		claim := proofverifier.BatchClaim{
			BatchID:         b.BatchID,
			StateRoot:       b.StateRoot,
			TransactionRoot: b.TransactionRoot,
			L2BlockNumber:   b.L2BlockNumber,
		}
		if err := s.CallOut(ctx, func(ctx context.Context) error {
			return s.verifier.VerifyFraudProof(ctx, claim, fraudProof)
		}); err != nil {
			return err
		}

		now := s.Now()
		if _, err := tx.Exec("DELETE FROM batch WHERE batch_id = $1;", batchID); err != nil {
			return fmt.Errorf("error deleting batch %d: %w", batchID, err)
		}
		reverted := revertedBatch{
			BatchID:    batchID,
			Challenger: caller,
			ProofHash:  keccak(fraudProof),
			RevertedAt: now,
		}
		if err := meddler.Insert(tx, "reverted_batch", &reverted); err != nil {
			return fmt.Errorf("error recording reverted batch %d: %w", batchID, err)
		}
		if _, err := s.Log().Append(tx, eventlog.BatchChallenged, now, eventlog.BatchChallengedData{
			BatchID:    batchID,
			Challenger: caller,
			ProofHash:  reverted.ProofHash,
		}); err != nil {
			return err
		}
		tx.AddCommitCallback(func() {
			s.Logger().Warnf("batch %d reverted by verifier %s", batchID, caller)
		})
		return nil
	})
}

// submittedBatch returns the batch if it exists and is not final
func (s *StateCommitment) submittedBatch(q meddler.DB, batchID uint64) (*Batch, error) {
	b, err := getBatch(q, batchID)
	if errors.Is(err, db.ErrNotFound) {
		return nil, fmt.Errorf("batch %d: %w", batchID, ErrBatchNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("error reading batch %d: %w", batchID, err)
	}
	if b.Finalized {
		return nil, fmt.Errorf("batch %d: %w", batchID, ErrBatchAlreadyFinalized)
	}
	return b, nil
}

// Batch returns the batch with batchID, db.ErrNotFound when it was never submitted or was
// reverted
func (s *StateCommitment) Batch(batchID uint64) (*Batch, error) {
	return getBatch(s.DB(), batchID)
}

// StateRoot of batchID, the zero hash for unknown ids
func (s *StateCommitment) StateRoot(batchID uint64) (common.Hash, error) {
	b, err := getBatch(s.DB(), batchID)
	if errors.Is(err, db.ErrNotFound) {
		return common.Hash{}, nil
	}
	if err != nil {
		return common.Hash{}, err
	}
	return b.StateRoot, nil
}

// IsFinalized reports whether batchID is final, false for unknown ids
func (s *StateCommitment) IsFinalized(batchID uint64) (bool, error) {
	b, err := getBatch(s.DB(), batchID)
	if errors.Is(err, db.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return b.Finalized, nil
}

// Status of batchID
func (s *StateCommitment) Status(batchID uint64) (Status, error) {
	b, err := getBatch(s.DB(), batchID)
	if err == nil {
		if b.Finalized {
			return StatusFinalized, nil
		}
		return StatusSubmitted, nil
	}
	if !errors.Is(err, db.ErrNotFound) {
		return StatusUnknown, err
	}
	reverted, err := isReverted(s.DB(), batchID)
	if err != nil {
		return StatusUnknown, err
	}
	if reverted {
		return StatusReverted, nil
	}
	return StatusUnknown, nil
}

// LastBatchID returns the id of the last submission. ok is false when nothing was submitted.
func (s *StateCommitment) LastBatchID() (batchID uint64, ok bool, err error) {
	next, err := currentBatchID(s.DB())
	if err != nil || next == 0 {
		return 0, false, err
	}
	return next - 1, true, nil
}

// ReadyBatches returns up to limit batches that can be finalized now, lowest id first
func (s *StateCommitment) ReadyBatches(limit uint64) ([]Batch, error) {
	now := s.Now()
	if now < s.finalizationDelay {
		return nil, nil
	}
	return getReadyBatches(s.DB(), now-s.finalizationDelay, limit)
}

// FinalizationDelay in seconds
func (s *StateCommitment) FinalizationDelay() uint64 {
	return s.finalizationDelay
}

func keccak(data []byte) common.Hash {
	h := sha3.NewLegacyKeccak256()
	h.Write(data) //nolint:errcheck
	return common.BytesToHash(h.Sum(nil))
}
