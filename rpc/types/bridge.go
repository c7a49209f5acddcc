package types

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// PendingWithdrawal is a withdrawal registered on L1 and waiting for its challenge delay
type PendingWithdrawal struct {
	WithdrawalID common.Hash    `json:"withdrawalId"`
	Asset        common.Address `json:"asset"`
	Recipient    common.Address `json:"recipient"`
	Amount       *big.Int       `json:"amount"`
	RegisteredAt uint64         `json:"registeredAt"`
	MaturesAt    uint64         `json:"maturesAt"`
}

// WithdrawalStatus tells where a withdrawal id is in its lifecycle on L1
type WithdrawalStatus struct {
	WithdrawalID common.Hash        `json:"withdrawalId"`
	Pending      *PendingWithdrawal `json:"pending,omitempty"`
	Processed    bool               `json:"processed"`
}

// Nonces are the nonces the next intents of each domain will carry
type Nonces struct {
	Deposit    uint64 `json:"deposit"`
	Withdrawal uint64 `json:"withdrawal"`
}
