package db

import (
	"context"
	"database/sql"
	"errors"

	"github.com/0xPolygon/obridge/log"
)

// Tx wraps sql.Tx so callers can attach work that only runs once the outcome is known
type Tx struct {
	*sql.Tx
	rollbackCallbacks []func()
	commitCallbacks   []func()
	done              bool
}

func NewTx(ctx context.Context, db *sql.DB) (*Tx, error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	return &Tx{
		Tx: tx,
	}, nil
}

func (s *Tx) AddRollbackCallback(cb func()) {
	s.rollbackCallbacks = append(s.rollbackCallbacks, cb)
}

func (s *Tx) AddCommitCallback(cb func()) {
	s.commitCallbacks = append(s.commitCallbacks, cb)
}

func (s *Tx) Commit() error {
	if err := s.Tx.Commit(); err != nil {
		return err
	}
	s.done = true
	for _, cb := range s.commitCallbacks {
		cb()
	}
	return nil
}

func (s *Tx) Rollback() error {
	if s.done {
		return sql.ErrTxDone
	}
	s.done = true
	if err := s.Tx.Rollback(); err != nil {
		return err
	}
	for _, cb := range s.rollbackCallbacks {
		cb()
	}
	return nil
}

// RunInTx opens a transaction, runs fn and commits it. Any error returned by fn, or
// by the commit itself, rolls the transaction back and is returned unchanged.
func RunInTx(ctx context.Context, db *sql.DB, logger *log.Logger, fn func(tx *Tx) error) (err error) {
	tx, err := NewTx(ctx, db)
	if err != nil {
		return err
	}
	defer func() {
		if err == nil {
			return
		}
		if errRllbck := tx.Rollback(); errRllbck != nil && !errors.Is(errRllbck, sql.ErrTxDone) {
			logger.Errorf("error while rolling back tx %v", errRllbck)
		}
	}()

	if err = fn(tx); err != nil {
		return err
	}
	return tx.Commit()
}
