// Package relayer is the in-process sequencer. It reads the deposit intents of the L1 bridge and
// the withdrawal intents of the L2 bridge from their event logs and relays them to the other
// side. Each log is read from a persisted cursor, so every intent is relayed once in order.
package relayer

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/0xPolygon/obridge/bridgeerrors"
	bridgecommon "github.com/0xPolygon/obridge/common"
	"github.com/0xPolygon/obridge/db"
	"github.com/0xPolygon/obridge/eventlog"
	"github.com/0xPolygon/obridge/l1bridge"
	"github.com/0xPolygon/obridge/log"
	"github.com/0xPolygon/obridge/relayer/migrations"
	"github.com/ethereum/go-ethereum/common"
)

const (
	sourceL1 = "l1bridge"
	sourceL2 = "l2bridge"

	defaultMaxEventsPerPass = 100
	defaultWaitPeriod       = 5 * time.Second
)

// EventSource is the audit log of a bridge
type EventSource interface {
	Events(fromID, limit uint64) ([]eventlog.Event, error)
	Subscribe(subscriberName string) <-chan eventlog.Event
}

// L1Bridger is what the relayer needs from the L1 bridge
type L1Bridger interface {
	EventSource
	RegisterWithdrawal(
		ctx context.Context, caller, asset, recipient common.Address, amount *big.Int, withdrawalID common.Hash,
	) error
}

// L2Bridger is what the relayer needs from the L2 bridge
type L2Bridger interface {
	EventSource
	FinalizeDeposit(
		ctx context.Context, caller, l1Asset, to common.Address, amount *big.Int, sourceDepositNonce uint64,
	) error
}

// Relayer moves intents between the bridges as the sequencer
type Relayer struct {
	logger           *log.Logger
	db               *sql.DB
	l1               L1Bridger
	l2               L2Bridger
	sequencer        common.Address
	l2NetworkID      uint32
	waitPeriod       time.Duration
	maxEventsPerPass uint64
	rh               *bridgecommon.RetryHandler
}

// New opens the cursor DB of the relayer
func New(
	logger *log.Logger,
	cfg Config,
	l2NetworkID uint32,
	l1 L1Bridger,
	l2 L2Bridger,
) (*Relayer, error) {
	if err := migrations.RunMigrations(cfg.DBPath); err != nil {
		return nil, err
	}
	database, err := db.NewSQLiteDB(cfg.DBPath)
	if err != nil {
		return nil, err
	}
	maxEvents := cfg.MaxEventsPerPass
	if maxEvents == 0 {
		maxEvents = defaultMaxEventsPerPass
	}
	waitPeriod := cfg.WaitPeriodNextEvents.Duration
	if waitPeriod <= 0 {
		waitPeriod = defaultWaitPeriod
	}

	return &Relayer{
		logger:           logger,
		db:               database,
		l1:               l1,
		l2:               l2,
		sequencer:        cfg.Sequencer,
		l2NetworkID:      l2NetworkID,
		waitPeriod:       waitPeriod,
		maxEventsPerPass: maxEvents,
		rh: &bridgecommon.RetryHandler{
			RetryAfterErrorPeriod:      cfg.RetryAfterErrorPeriod,
			MaxRetryAttemptsAfterError: cfg.MaxRetryAttemptsAfterError,
		},
	}, nil
}

// Close releases the cursor DB
func (r *Relayer) Close() error {
	return r.db.Close()
}

// Start relays until ctx is done. A pass runs on every committed bridge event and at least
// every WaitPeriodNextEvents.
func (r *Relayer) Start(ctx context.Context) {
	l1Events := r.l1.Subscribe("relayer")
	l2Events := r.l2.Subscribe("relayer")
	ticker := time.NewTicker(r.waitPeriod)
	defer ticker.Stop()

	for {
		if err := r.Sync(ctx); err != nil && !errors.Is(err, context.Canceled) {
			r.logger.Errorf("error relaying: %v", err)
		}
		select {
		case <-ctx.Done():
			r.logger.Info("relayer stopped")
			return
		case <-ticker.C:
		case <-l1Events:
		case <-l2Events:
		}
	}
}

// Sync relays every event committed since the last pass
func (r *Relayer) Sync(ctx context.Context) error {
	if err := r.relay(ctx, sourceL1, r.l1, r.relayDeposit); err != nil {
		return fmt.Errorf("relaying deposits: %w", err)
	}
	if err := r.relay(ctx, sourceL2, r.l2, r.relayWithdrawal); err != nil {
		return fmt.Errorf("relaying withdrawals: %w", err)
	}
	return nil
}

// WithdrawalID is the L1 id of the L2 withdrawal intent emitted with nonce
func (r *Relayer) WithdrawalID(nonce uint64) common.Hash {
	return bridgecommon.CalculateWithdrawalID(r.l2NetworkID, nonce)
}

// Cursor returns the id of the last event relayed from source
func (r *Relayer) Cursor(source string) (uint64, error) {
	return getCursor(r.db, source)
}

func (r *Relayer) relay(
	ctx context.Context, source string, events EventSource, handle func(ctx context.Context, ev eventlog.Event) error,
) error {
	cursor, err := getCursor(r.db, source)
	if err != nil {
		return err
	}
	for {
		batch, err := events.Events(cursor+1, r.maxEventsPerPass)
		if err != nil {
			return err
		}
		if len(batch) == 0 {
			return nil
		}
		for _, ev := range batch {
			if err := r.handleWithRetry(ctx, ev, handle); err != nil {
				return err
			}
			if err := setCursor(r.db, source, ev.ID); err != nil {
				return err
			}
			cursor = ev.ID
		}
	}
}

func (r *Relayer) handleWithRetry(
	ctx context.Context, ev eventlog.Event, handle func(ctx context.Context, ev eventlog.Event) error,
) error {
	attempts := 0
	for {
		err := handle(ctx, ev)
		if err == nil {
			return nil
		}
		if bridgeerrors.IsPermanent(err) || errors.Is(err, l1bridge.ErrWithdrawalAlreadyPending) {
			r.logger.Warnf("event %d %s already relayed, skipping: %v", ev.ID, ev.Kind, err)
			return nil
		}
		attempts++
		r.logger.Warnf("error relaying event %d %s (attempt %d): %v", ev.ID, ev.Kind, attempts, err)
		if errRetry := r.rh.Handle(ctx, "relay "+string(ev.Kind), attempts); errRetry != nil {
			return fmt.Errorf("event %d: %w", ev.ID, err)
		}
	}
}

func (r *Relayer) relayDeposit(ctx context.Context, ev eventlog.Event) error {
	if ev.Kind != eventlog.DepositInitiated {
		return nil
	}
	var deposit eventlog.DepositInitiatedData
	if err := ev.Decode(&deposit); err != nil {
		return fmt.Errorf("error decoding deposit %d: %w", ev.ID, err)
	}
	if err := r.l2.FinalizeDeposit(
		ctx, r.sequencer, deposit.Asset, deposit.DestRecipient, deposit.Amount, deposit.Nonce,
	); err != nil {
		return err
	}
	r.logger.Infof("deposit %d relayed: %s of %s to %s", deposit.Nonce, deposit.Amount, deposit.Asset,
		deposit.DestRecipient)
	return nil
}

func (r *Relayer) relayWithdrawal(ctx context.Context, ev eventlog.Event) error {
	if ev.Kind != eventlog.WithdrawalInitiated {
		return nil
	}
	var withdrawal eventlog.WithdrawalInitiatedData
	if err := ev.Decode(&withdrawal); err != nil {
		return fmt.Errorf("error decoding withdrawal %d: %w", ev.ID, err)
	}
	id := r.WithdrawalID(withdrawal.Nonce)
	if err := r.l1.RegisterWithdrawal(
		ctx, r.sequencer, withdrawal.L1Asset, withdrawal.DestRecipient, withdrawal.Amount, id,
	); err != nil {
		return err
	}
	r.logger.Infof("withdrawal %d relayed as %s: %s of %s to %s", withdrawal.Nonce, id, withdrawal.Amount,
		withdrawal.L1Asset, withdrawal.DestRecipient)
	return nil
}

func getCursor(q *sql.DB, source string) (uint64, error) {
	var id uint64
	err := q.QueryRow("SELECT last_event_id FROM relay_cursor WHERE source = $1;", source).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("error reading %s cursor: %w", source, err)
	}
	return id, nil
}

func setCursor(q *sql.DB, source string, eventID uint64) error {
	if _, err := q.Exec(`
		INSERT INTO relay_cursor (source, last_event_id) VALUES ($1, $2)
		ON CONFLICT (source) DO UPDATE SET last_event_id = excluded.last_event_id;`,
		source, eventID); err != nil {
		return fmt.Errorf("error saving %s cursor: %w", source, err)
	}
	return nil
}
