// Package core holds what every state-owning component shares: its DB, its non-reentrant
// guard, its trust actors, its audit log, its clock and its metrics. Components embed Base
// and run each operation through Transition.
package core

import (
	"context"
	"database/sql"

	"github.com/0xPolygon/obridge/authority"
	"github.com/0xPolygon/obridge/bridgeerrors"
	"github.com/0xPolygon/obridge/db"
	"github.com/0xPolygon/obridge/eventlog"
	"github.com/0xPolygon/obridge/guard"
	"github.com/0xPolygon/obridge/log"
	"github.com/0xPolygon/obridge/metrics"
	"github.com/benbjohnson/clock"
	"github.com/ethereum/go-ethereum/common"
)

// MigrationsRunner creates the tables of a component
type MigrationsRunner func(logger *log.Logger, database *sql.DB) error

// Base is embedded by every component
type Base struct {
	name      string
	logger    *log.Logger
	db        *sql.DB
	guard     *guard.Guard
	authority *authority.Authority
	events    *eventlog.Log
	clock     clock.Clock
	metrics   metrics.Metricer
}

// Open opens the DB at dbPath, migrates it and loads the trust actors
func Open(
	ctx context.Context,
	name string,
	logger *log.Logger,
	dbPath string,
	runMigrations MigrationsRunner,
	authCfg authority.Config,
	clk clock.Clock,
	m metrics.Metricer,
) (*Base, error) {
	if m == nil {
		m = metrics.NoopMetrics
	}
	if clk == nil {
		clk = clock.New()
	}

	database, err := db.NewSQLiteDB(dbPath)
	if err != nil {
		return nil, err
	}
	if err := runMigrations(logger, database); err != nil {
		database.Close()
		return nil, err
	}
	auth, err := authority.Load(ctx, logger, database, authCfg)
	if err != nil {
		database.Close()
		return nil, err
	}

	return &Base{
		name:      name,
		logger:    logger,
		db:        database,
		guard:     guard.New(name),
		authority: auth,
		events:    eventlog.New(logger, database),
		clock:     clk,
		metrics:   m,
	}, nil
}

// Close releases the DB
func (b *Base) Close() error {
	return b.db.Close()
}

type callerCtxKey struct{}

// Transition runs fn holding the guard and inside one DB transaction. Whatever fn returns
// decides between commit and rollback. The transaction and the context handed to fn ignore the
// cancellation of ctx, so a capability call that went through is always recorded. Calls out of
// fn go through CallOut, which honours the cancellation of ctx only before the call starts.
func (b *Base) Transition(ctx context.Context, fn func(ctx context.Context, tx *db.Tx) error) error {
	return b.guard.Run(ctx, func(guarded context.Context) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		detached := context.WithValue(context.WithoutCancel(guarded), callerCtxKey{}, ctx)
		return db.RunInTx(detached, b.db, b.logger, func(tx *db.Tx) error {
			return fn(detached, tx)
		})
	})
}

// CallOut runs fn, a call to an external capability made from inside a Transition. It fails
// if the caller gave up before the call starts; the call itself is never interrupted. While it
// runs, every operation of the component is rejected as re-entrant.
func (b *Base) CallOut(ctx context.Context, fn func(ctx context.Context) error) error {
	if caller, ok := ctx.Value(callerCtxKey{}).(context.Context); ok {
		if err := caller.Err(); err != nil {
			return err
		}
	}
	return b.guard.Call(ctx, fn)
}

// Observe records the outcome of op
func (b *Base) Observe(op string, err error) {
	if err != nil {
		b.metrics.RecordRejection(b.name, op, err)
		if bridgeerrors.Class(err) == nil {
			b.logger.Errorf("%s failed: %v", op, err)
		} else {
			b.logger.Debugf("%s rejected: %v", op, err)
		}
		return
	}
	b.metrics.RecordTransition(b.name, op)
}

// Now is the current time in whole seconds
func (b *Base) Now() uint64 {
	return uint64(b.clock.Now().Unix())
}

// Name of the component
func (b *Base) Name() string {
	return b.name
}

// Logger of the component
func (b *Base) Logger() *log.Logger {
	return b.logger
}

// DB of the component
func (b *Base) DB() *sql.DB {
	return b.db
}

// Authority of the component
func (b *Base) Authority() *authority.Authority {
	return b.authority
}

// Log is the audit log of the component
func (b *Base) Log() *eventlog.Log {
	return b.events
}

// Metrics of the component
func (b *Base) Metrics() metrics.Metricer {
	return b.metrics
}

// Events returns the audit log from fromID on
func (b *Base) Events(fromID, limit uint64) ([]eventlog.Event, error) {
	return b.events.Events(fromID, limit)
}

// Subscribe to the committed events
func (b *Base) Subscribe(subscriberName string) <-chan eventlog.Event {
	return b.events.Subscribe(subscriberName)
}

// Admin returns the current admin
func (b *Base) Admin() common.Address {
	return b.authority.Admin()
}

// Sequencer returns the current sequencer
func (b *Base) Sequencer() common.Address {
	return b.authority.Sequencer()
}
