package l1bridge

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/0xPolygon/obridge/db"
	"github.com/ethereum/go-ethereum/common"
	"github.com/russross/meddler"
)

func getPendingWithdrawal(q meddler.DB, id common.Hash) (PendingWithdrawal, error) {
	var p PendingWithdrawal
	err := meddler.QueryRow(q, &p, "SELECT * FROM pending_withdrawal WHERE withdrawal_id = $1;", id.Hex())
	if err != nil {
		if errors.Is(db.ReturnErrNotFound(err), db.ErrNotFound) {
			return PendingWithdrawal{WithdrawalID: id, Amount: big.NewInt(0)}, nil
		}
		return PendingWithdrawal{}, fmt.Errorf("error reading pending withdrawal %s: %w", id, err)
	}
	return p, nil
}

// putPendingWithdrawal replaces whatever entry id had
func putPendingWithdrawal(tx meddler.DB, p *PendingWithdrawal) error {
	if err := deletePendingWithdrawal(tx, p.WithdrawalID); err != nil {
		return err
	}
	if err := meddler.Insert(tx, "pending_withdrawal", p); err != nil {
		return fmt.Errorf("error inserting pending withdrawal: %w", err)
	}
	return nil
}

func deletePendingWithdrawal(tx meddler.DB, id common.Hash) error {
	if _, err := tx.Exec("DELETE FROM pending_withdrawal WHERE withdrawal_id = $1;", id.Hex()); err != nil {
		return fmt.Errorf("error deleting pending withdrawal: %w", err)
	}
	return nil
}

// getMaturedWithdrawals returns the entries registered at or before registeredBefore, oldest first
func getMaturedWithdrawals(q meddler.DB, registeredBefore uint64, limit uint64) ([]PendingWithdrawal, error) {
	var pending []*PendingWithdrawal
	if err := meddler.QueryAll(q, &pending, `
		SELECT * FROM pending_withdrawal
		WHERE registered_at <= $1 AND amount != '0'
		ORDER BY registered_at ASC, withdrawal_id ASC
		LIMIT $2;`, registeredBefore, limit); err != nil {
		return nil, fmt.Errorf("error reading matured withdrawals: %w", err)
	}
	return db.SlicePtrsToSlice(pending).([]PendingWithdrawal), nil
}

func countPendingWithdrawals(q meddler.DB) (uint64, error) {
	var count uint64
	if err := q.QueryRow("SELECT COUNT(*) FROM pending_withdrawal WHERE amount != '0';").Scan(&count); err != nil {
		return 0, fmt.Errorf("error counting pending withdrawals: %w", err)
	}
	return count, nil
}
