package statecommitment

import (
	"github.com/0xPolygon/obridge/bridgeerrors"
	"github.com/ethereum/go-ethereum/common"
)

var (
	ErrBatchNotFound                = bridgeerrors.New(bridgeerrors.ErrPrecondition, "batch does not exist")
	ErrBatchAlreadyFinalized        = bridgeerrors.New(bridgeerrors.ErrReplay, "batch already finalized")
	ErrFinalizationPeriodNotElapsed = bridgeerrors.New(bridgeerrors.ErrPrecondition, "finalization period not elapsed")
)

// Status of a batch id
type Status string

const (
	StatusUnknown   Status = "unknown"
	StatusSubmitted Status = "submitted"
	StatusFinalized Status = "finalized"
	StatusReverted  Status = "reverted"
)

// Batch is a commitment of L2 state submitted by the sequencer
type Batch struct {
	BatchID         uint64         `meddler:"batch_id" json:"batchId"`
	StateRoot       common.Hash    `meddler:"state_root,hash" json:"stateRoot"`
	TransactionRoot common.Hash    `meddler:"transaction_root,hash" json:"transactionRoot"`
	L2BlockNumber   uint64         `meddler:"l2_block_number" json:"l2BlockNumber"`
	PayloadHash     common.Hash    `meddler:"payload_hash,hash" json:"payloadHash"`
	Submitter       common.Address `meddler:"submitter,address" json:"submitter"`
	SubmittedAt     uint64         `meddler:"submitted_at" json:"submittedAt"`
	Finalized       bool           `meddler:"finalized" json:"finalized"`
	FinalizedAt     uint64         `meddler:"finalized_at" json:"finalizedAt"`
}

// FinalizableAt is the first second at which the batch can be finalized
func (b Batch) FinalizableAt(delay uint64) uint64 {
	return b.SubmittedAt + delay
}

type revertedBatch struct {
	BatchID    uint64         `meddler:"batch_id"`
	Challenger common.Address `meddler:"challenger,address"`
	ProofHash  common.Hash    `meddler:"proof_hash,hash"`
	RevertedAt uint64         `meddler:"reverted_at"`
}
