// Package authority keeps the trust actors of a component: the admin, the sequencer and the
// verifier set. The record lives in the component DB and is mirrored in memory so a caller can
// be rejected before any state is touched.
package authority

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"

	"github.com/0xPolygon/obridge/bridgeerrors"
	"github.com/0xPolygon/obridge/db"
	"github.com/0xPolygon/obridge/log"
	"github.com/ethereum/go-ethereum/common"
	"github.com/russross/meddler"
)

var (
	ErrNotAdmin             = bridgeerrors.New(bridgeerrors.ErrUnauthorized, "caller is not the admin")
	ErrNotSequencer         = bridgeerrors.New(bridgeerrors.ErrUnauthorized, "caller is not the sequencer")
	ErrNotVerifier          = bridgeerrors.New(bridgeerrors.ErrUnauthorized, "caller is not a verifier")
	ErrZeroAddress          = bridgeerrors.New(bridgeerrors.ErrPrecondition, "zero address")
	ErrVerifierAlreadyAdded = bridgeerrors.New(bridgeerrors.ErrPrecondition, "verifier already added")
	ErrVerifierNotFound     = bridgeerrors.New(bridgeerrors.ErrPrecondition, "verifier not found")
)

// Record is the persisted admin/sequencer pair
type Record struct {
	ID        int            `meddler:"id"`
	Admin     common.Address `meddler:"admin,address"`
	Sequencer common.Address `meddler:"sequencer,address"`
}

// Authority is the in-memory mirror of the persisted record
type Authority struct {
	logger    *log.Logger
	mu        sync.RWMutex
	record    Record
	verifiers map[common.Address]struct{}
}

// Load reads the record from database, seeding it from cfg when the DB is empty. The
// authority tables must already exist.
func Load(ctx context.Context, logger *log.Logger, database *sql.DB, cfg Config) (*Authority, error) {
	a := &Authority{
		logger:    logger,
		verifiers: make(map[common.Address]struct{}),
	}

	err := meddler.QueryRow(database, &a.record, "SELECT * FROM authority WHERE id = 1;")
	switch {
	case err == nil:
		if cfg.Admin != (common.Address{}) && cfg.Admin != a.record.Admin {
			logger.Warnf("configured admin %s ignored, persisted admin is %s", cfg.Admin, a.record.Admin)
		}
	case errors.Is(db.ReturnErrNotFound(err), db.ErrNotFound):
		if err := a.seed(ctx, database, cfg); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("error loading authority record: %w", err)
	}

	rows, err := database.Query("SELECT address FROM authority_verifier;")
	if err != nil {
		return nil, fmt.Errorf("error loading verifiers: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var addr string
		if err := rows.Scan(&addr); err != nil {
			return nil, err
		}
		a.verifiers[common.HexToAddress(addr)] = struct{}{}
	}

	return a, rows.Err()
}

func (a *Authority) seed(ctx context.Context, database *sql.DB, cfg Config) error {
	if cfg.Admin == (common.Address{}) {
		return fmt.Errorf("seeding authority: %w", ErrZeroAddress)
	}
	if cfg.Sequencer == (common.Address{}) {
		a.logger.Warn("no sequencer configured, sequencer operations are disabled until one is set")
	}
	record := Record{ID: 1, Admin: cfg.Admin, Sequencer: cfg.Sequencer}

	return db.RunInTx(ctx, database, a.logger, func(tx *db.Tx) error {
		if err := meddler.Insert(tx, "authority", &record); err != nil {
			return fmt.Errorf("error inserting authority record: %w", err)
		}
		for _, v := range cfg.Verifiers {
			if v == (common.Address{}) {
				return fmt.Errorf("seeding verifiers: %w", ErrZeroAddress)
			}
			if _, err := tx.Exec("INSERT OR IGNORE INTO authority_verifier (address) VALUES ($1);", v.Hex()); err != nil {
				return fmt.Errorf("error inserting verifier: %w", err)
			}
		}
		tx.AddCommitCallback(func() {
			a.logger.Infof("authority seeded: admin %s, sequencer %s, %d verifiers",
				record.Admin, record.Sequencer, len(cfg.Verifiers))
		})
		a.record = record
		return nil
	})
}

// Admin returns the current admin
func (a *Authority) Admin() common.Address {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.record.Admin
}

// Sequencer returns the current sequencer
func (a *Authority) Sequencer() common.Address {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.record.Sequencer
}

// Verifiers returns the current verifier set in no particular order
func (a *Authority) Verifiers() []common.Address {
	a.mu.RLock()
	defer a.mu.RUnlock()
	res := make([]common.Address, 0, len(a.verifiers))
	for v := range a.verifiers {
		res = append(res, v)
	}
	return res
}

// IsVerifier reports whether addr belongs to the verifier set
func (a *Authority) IsVerifier(addr common.Address) bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	_, ok := a.verifiers[addr]
	return ok
}

// CheckAdmin returns ErrNotAdmin unless caller is the admin
func (a *Authority) CheckAdmin(caller common.Address) error {
	if caller != a.Admin() {
		return ErrNotAdmin
	}
	return nil
}

// CheckSequencer returns ErrNotSequencer unless caller is the sequencer
func (a *Authority) CheckSequencer(caller common.Address) error {
	seq := a.Sequencer()
	if seq == (common.Address{}) || caller != seq {
		return ErrNotSequencer
	}
	return nil
}

// CheckVerifier returns ErrNotVerifier unless caller is a verifier
func (a *Authority) CheckVerifier(caller common.Address) error {
	if !a.IsVerifier(caller) {
		return ErrNotVerifier
	}
	return nil
}

// SetSequencer replaces the sequencer within tx. The cached record follows on commit.
func (a *Authority) SetSequencer(tx *db.Tx, sequencer common.Address) error {
	if sequencer == (common.Address{}) {
		return ErrZeroAddress
	}
	if _, err := tx.Exec("UPDATE authority SET sequencer = $1 WHERE id = 1;", sequencer.Hex()); err != nil {
		return fmt.Errorf("error updating sequencer: %w", err)
	}
	tx.AddCommitCallback(func() {
		a.mu.Lock()
		defer a.mu.Unlock()
		a.record.Sequencer = sequencer
	})
	return nil
}

// TransferAdmin hands the admin role over within tx. The cached record follows on commit.
func (a *Authority) TransferAdmin(tx *db.Tx, admin common.Address) error {
	if admin == (common.Address{}) {
		return ErrZeroAddress
	}
	if _, err := tx.Exec("UPDATE authority SET admin = $1 WHERE id = 1;", admin.Hex()); err != nil {
		return fmt.Errorf("error updating admin: %w", err)
	}
	tx.AddCommitCallback(func() {
		a.mu.Lock()
		defer a.mu.Unlock()
		a.record.Admin = admin
	})
	return nil
}

// AddVerifier adds verifier to the set within tx
func (a *Authority) AddVerifier(tx *db.Tx, verifier common.Address) error {
	if verifier == (common.Address{}) {
		return ErrZeroAddress
	}
	if a.IsVerifier(verifier) {
		return ErrVerifierAlreadyAdded
	}
	if _, err := tx.Exec("INSERT INTO authority_verifier (address) VALUES ($1);", verifier.Hex()); err != nil {
		return fmt.Errorf("error inserting verifier: %w", err)
	}
	tx.AddCommitCallback(func() {
		a.mu.Lock()
		defer a.mu.Unlock()
		a.verifiers[verifier] = struct{}{}
	})
	return nil
}

// RemoveVerifier removes verifier from the set within tx
func (a *Authority) RemoveVerifier(tx *db.Tx, verifier common.Address) error {
	if !a.IsVerifier(verifier) {
		return ErrVerifierNotFound
	}
	if _, err := tx.Exec("DELETE FROM authority_verifier WHERE address = $1;", verifier.Hex()); err != nil {
		return fmt.Errorf("error deleting verifier: %w", err)
	}
	tx.AddCommitCallback(func() {
		a.mu.Lock()
		defer a.mu.Unlock()
		delete(a.verifiers, verifier)
	})
	return nil
}
