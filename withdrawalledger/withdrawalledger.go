// Package withdrawalledger keeps the monotonic nonce counters of a domain and the set of
// withdrawal ids that have been consumed. A nonce is handed out exactly once, in order, and a
// processed id never leaves the set.
package withdrawalledger

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/0xPolygon/obridge/bridgeerrors"
	"github.com/0xPolygon/obridge/db"
	"github.com/ethereum/go-ethereum/common"
	"github.com/russross/meddler"
)

// NonceKind names one counter
type NonceKind string

const (
	DepositNonce    NonceKind = "deposit"
	WithdrawalNonce NonceKind = "withdrawal"
)

// ErrAlreadyProcessed is the replay rejection for a consumed withdrawal id
var ErrAlreadyProcessed = bridgeerrors.New(bridgeerrors.ErrReplay, "withdrawal already processed")

// NextNonce returns the nonce to emit and advances the counter within tx
func NextNonce(tx meddler.DB, kind NonceKind) (uint64, error) {
	current, err := CurrentNonce(tx, kind)
	if err != nil {
		return 0, err
	}
	if _, err := tx.Exec(`
		INSERT INTO nonce_counter (kind, next) VALUES ($1, $2)
		ON CONFLICT (kind) DO UPDATE SET next = excluded.next;`,
		string(kind), current+1,
	); err != nil {
		return 0, fmt.Errorf("error advancing %s nonce: %w", kind, err)
	}
	return current, nil
}

// CurrentNonce returns the nonce the next emission will carry
func CurrentNonce(q meddler.DB, kind NonceKind) (uint64, error) {
	var next uint64
	err := q.QueryRow("SELECT next FROM nonce_counter WHERE kind = $1;", string(kind)).Scan(&next)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("error reading %s nonce: %w", kind, err)
	}
	return next, nil
}

// IsProcessed reports whether id has been consumed
func IsProcessed(q meddler.DB, id common.Hash) (bool, error) {
	var processedAt uint64
	err := q.QueryRow("SELECT processed_at FROM processed_withdrawal WHERE withdrawal_id = $1;", id.Hex()).
		Scan(&processedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("error reading processed withdrawal: %w", err)
	}
	return true, nil
}

// MarkProcessed adds id to the set within tx
func MarkProcessed(tx meddler.DB, id common.Hash, processedAt uint64) error {
	_, err := tx.Exec("INSERT INTO processed_withdrawal (withdrawal_id, processed_at) VALUES ($1, $2);",
		id.Hex(), processedAt)
	if err != nil {
		if db.IsUniqueViolation(err) {
			return ErrAlreadyProcessed
		}
		return fmt.Errorf("error marking withdrawal processed: %w", err)
	}
	return nil
}
