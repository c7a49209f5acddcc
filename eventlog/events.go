package eventlog

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// Kind names a state transition
type Kind string

const (
	DepositInitiated     Kind = "DepositInitiated"
	WithdrawalRegistered Kind = "WithdrawalRegistered"
	WithdrawalFinalized  Kind = "WithdrawalFinalized"
	DepositFinalized     Kind = "DepositFinalized"
	WithdrawalInitiated  Kind = "WithdrawalInitiated"
	BatchSubmitted       Kind = "BatchSubmitted"
	BatchFinalized       Kind = "BatchFinalized"
	BatchChallenged      Kind = "BatchChallenged"
	TokenPairRegistered  Kind = "TokenPairRegistered"
	SequencerUpdated     Kind = "SequencerUpdated"
	AdminTransferred     Kind = "AdminTransferred"
	VerifierAdded        Kind = "VerifierAdded"
	VerifierRemoved      Kind = "VerifierRemoved"
)

// DepositInitiatedData is the deposit intent emitted on L1
type DepositInitiatedData struct {
	Asset         common.Address `json:"asset"`
	Depositor     common.Address `json:"depositor"`
	DestRecipient common.Address `json:"destRecipient"`
	Amount        *big.Int       `json:"amount"`
	Nonce         uint64         `json:"nonce"`
}

// WithdrawalInitiatedData is the withdrawal intent emitted on L2. Asset is the burnt L2 asset,
// L1Asset its counterpart to be released on L1.
type WithdrawalInitiatedData struct {
	Asset         common.Address `json:"asset"`
	L1Asset       common.Address `json:"l1Asset"`
	From          common.Address `json:"from"`
	DestRecipient common.Address `json:"destRecipient"`
	Amount        *big.Int       `json:"amount"`
	Nonce         uint64         `json:"nonce"`
}

// DepositFinalizedData confirms the L2 mint of an L1 deposit
type DepositFinalizedData struct {
	L1Asset            common.Address `json:"l1Asset"`
	L2Asset            common.Address `json:"l2Asset"`
	To                 common.Address `json:"to"`
	Amount             *big.Int       `json:"amount"`
	SourceDepositNonce uint64         `json:"sourceDepositNonce"`
}

// WithdrawalRegisteredData records a pending withdrawal on L1
type WithdrawalRegisteredData struct {
	WithdrawalID common.Hash    `json:"withdrawalId"`
	Asset        common.Address `json:"asset"`
	Recipient    common.Address `json:"recipient"`
	Amount       *big.Int       `json:"amount"`
	RegisteredAt uint64         `json:"registeredAt"`
	Overwritten  bool           `json:"overwritten"`
}

// WithdrawalFinalizedData records the release of a pending withdrawal
type WithdrawalFinalizedData struct {
	WithdrawalID common.Hash    `json:"withdrawalId"`
	Asset        common.Address `json:"asset"`
	Recipient    common.Address `json:"recipient"`
	Amount       *big.Int       `json:"amount"`
}

// BatchSubmittedData records a new batch commitment. The batch row keeps only the digest of
// the payload; the payload itself lives in this event.
type BatchSubmittedData struct {
	BatchID         uint64         `json:"batchId"`
	StateRoot       common.Hash    `json:"stateRoot"`
	TransactionRoot common.Hash    `json:"transactionRoot"`
	L2BlockNumber   uint64         `json:"l2BlockNumber"`
	Payload         []byte         `json:"payload"`
	PayloadHash     common.Hash    `json:"payloadHash"`
	Submitter       common.Address `json:"submitter"`
	SubmittedAt     uint64         `json:"submittedAt"`
}

// BatchFinalizedData records the end of the challenge window of a batch
type BatchFinalizedData struct {
	BatchID   uint64      `json:"batchId"`
	StateRoot common.Hash `json:"stateRoot"`
}

// BatchChallengedData records the revert of a batch
type BatchChallengedData struct {
	BatchID    uint64         `json:"batchId"`
	Challenger common.Address `json:"challenger"`
	ProofHash  common.Hash    `json:"proofHash"`
}

// TokenPairRegisteredData records a new asset pair
type TokenPairRegisteredData struct {
	L1Asset common.Address `json:"l1Asset"`
	L2Asset common.Address `json:"l2Asset"`
}

// ActorChangedData records a change of the trust actors
type ActorChangedData struct {
	Previous common.Address `json:"previous"`
	Current  common.Address `json:"current"`
}
