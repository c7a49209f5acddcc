package types

import "github.com/ethereum/go-ethereum/common"

// Batch is a batch commitment together with the time it can be finalized at
type Batch struct {
	BatchID         uint64         `json:"batchId"`
	StateRoot       common.Hash    `json:"stateRoot"`
	TransactionRoot common.Hash    `json:"transactionRoot"`
	L2BlockNumber   uint64         `json:"l2BlockNumber"`
	PayloadHash     common.Hash    `json:"payloadHash"`
	Submitter       common.Address `json:"submitter"`
	SubmittedAt     uint64         `json:"submittedAt"`
	FinalizableAt   uint64         `json:"finalizableAt"`
	Finalized       bool           `json:"finalized"`
	FinalizedAt     uint64         `json:"finalizedAt"`
}
