// Package proofverifier holds the verification capabilities consulted before a deposit is
// minted on L2 and before a batch is reverted on L1. The default verifiers accept everything:
// the sequencer and verifier roles are the only safety gate.
package proofverifier

import (
	"context"
	"fmt"
	"math/big"

	"github.com/0xPolygon/obridge/bridgeerrors"
	"github.com/ethereum/go-ethereum/common"
)

const (
	// ModeAcceptAll trusts the authorized caller
	ModeAcceptAll = "accept-all"
	// ModeNonEmpty refuses fraud proofs without content
	ModeNonEmpty = "non-empty"
)

var (
	ErrDepositRejected    = bridgeerrors.New(bridgeerrors.ErrPrecondition, "deposit proof rejected")
	ErrFraudProofRejected = bridgeerrors.New(bridgeerrors.ErrPrecondition, "fraud proof rejected")
)

// DepositClaim is what the sequencer asserts when finalizing a deposit on L2
type DepositClaim struct {
	L1Asset            common.Address
	L2Asset            common.Address
	To                 common.Address
	Amount             *big.Int
	SourceDepositNonce uint64
}

// BatchClaim is the commitment a verifier wants to revert
type BatchClaim struct {
	BatchID         uint64
	StateRoot       common.Hash
	TransactionRoot common.Hash
	L2BlockNumber   uint64
}

// DepositVerifier decides whether a deposit claim is backed by the source domain
type DepositVerifier interface {
	VerifyDeposit(ctx context.Context, claim DepositClaim) error
}

// FraudProofVerifier decides whether proof demonstrates that batch is invalid
type FraudProofVerifier interface {
	VerifyFraudProof(ctx context.Context, batch BatchClaim, proof []byte) error
}

// AcceptAll implements both verifiers and never rejects
type AcceptAll struct{}

func (AcceptAll) VerifyDeposit(context.Context, DepositClaim) error { return nil }

func (AcceptAll) VerifyFraudProof(context.Context, BatchClaim, []byte) error { return nil }

// NonEmptyProof only rejects fraud proofs carrying no data
type NonEmptyProof struct{}

func (NonEmptyProof) VerifyFraudProof(_ context.Context, batch BatchClaim, proof []byte) error {
	if len(proof) == 0 {
		return fmt.Errorf("batch %d: empty proof: %w", batch.BatchID, ErrFraudProofRejected)
	}
	return nil
}

// Config selects the fraud proof verifier
type Config struct {
	// FraudProofMode is one of accept-all, non-empty
	FraudProofMode string `mapstructure:"FraudProofMode" jsonschema:"enum=accept-all,enum=non-empty"`
}

// NewFraudProofVerifier returns the verifier selected by cfg
func NewFraudProofVerifier(cfg Config) (FraudProofVerifier, error) {
	switch cfg.FraudProofMode {
	case "", ModeAcceptAll:
		return AcceptAll{}, nil
	case ModeNonEmpty:
		return NonEmptyProof{}, nil
	default:
		return nil, fmt.Errorf("unknown fraud proof mode %q", cfg.FraudProofMode)
	}
}
