package statecommitment

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/0xPolygon/obridge/db"
	"github.com/russross/meddler"
)

// nextBatchID returns the id of the next submission and advances the counter within tx.
// Reverted ids are never handed out again.
func nextBatchID(tx meddler.DB) (uint64, error) {
	current, err := currentBatchID(tx)
	if err != nil {
		return 0, err
	}
	if _, err := tx.Exec(`
		INSERT INTO batch_counter (id, next) VALUES (1, $1)
		ON CONFLICT (id) DO UPDATE SET next = excluded.next;`, current+1); err != nil {
		return 0, fmt.Errorf("error advancing batch counter: %w", err)
	}
	return current, nil
}

func currentBatchID(q meddler.DB) (uint64, error) {
	var next uint64
	err := q.QueryRow("SELECT next FROM batch_counter WHERE id = 1;").Scan(&next)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("error reading batch counter: %w", err)
	}
	return next, nil
}

func getBatch(q meddler.DB, batchID uint64) (*Batch, error) {
	var b Batch
	err := meddler.QueryRow(q, &b, "SELECT * FROM batch WHERE batch_id = $1;", batchID)
	if err != nil {
		return nil, db.ReturnErrNotFound(err)
	}
	return &b, nil
}

func isReverted(q meddler.DB, batchID uint64) (bool, error) {
	var r revertedBatch
	err := meddler.QueryRow(q, &r, "SELECT * FROM reverted_batch WHERE batch_id = $1;", batchID)
	if errors.Is(db.ReturnErrNotFound(err), db.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("error reading reverted batch %d: %w", batchID, err)
	}
	return true, nil
}

// getReadyBatches returns the not finalized batches submitted at or before submittedBefore
func getReadyBatches(q meddler.DB, submittedBefore, limit uint64) ([]Batch, error) {
	var batches []*Batch
	if err := meddler.QueryAll(q, &batches, `
		SELECT * FROM batch
		WHERE finalized = FALSE AND submitted_at <= $1
		ORDER BY batch_id ASC
		LIMIT $2;`, submittedBefore, limit); err != nil {
		return nil, fmt.Errorf("error reading batches ready for finalization: %w", err)
	}
	return db.SlicePtrsToSlice(batches).([]Batch), nil
}
