// Package eventlog is the append-only audit trail of a component. Events are written in the
// transaction of the transition they describe, so an indexer reading the table rebuilds exactly
// the committed history, and subscribers only hear about committed transitions.
package eventlog

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/0xPolygon/obridge/db"
	"github.com/0xPolygon/obridge/log"
	"github.com/russross/meddler"
)

// Event is one row of the log
type Event struct {
	ID        uint64          `meddler:"id" json:"id"`
	Kind      Kind            `meddler:"kind" json:"kind"`
	Timestamp uint64          `meddler:"timestamp" json:"timestamp"`
	Payload   json.RawMessage `meddler:"payload,json" json:"payload"`
}

// Decode unmarshals the payload into v
func (e Event) Decode(v interface{}) error {
	return json.Unmarshal(e.Payload, v)
}

// Log appends to and reads from the event_log table of one component
type Log struct {
	logger     *log.Logger
	db         *sql.DB
	subscriber *GenericSubscriberImpl[Event]
}

// New returns the log stored in database. The event_log table must already exist.
func New(logger *log.Logger, database *sql.DB) *Log {
	return &Log{
		logger:     logger,
		db:         database,
		subscriber: NewGenericSubscriberImpl[Event](),
	}
}

// Append writes the event within tx and publishes it once tx commits
func (l *Log) Append(tx *db.Tx, kind Kind, timestamp uint64, payload interface{}) (Event, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return Event{}, fmt.Errorf("error encoding %s payload: %w", kind, err)
	}
	res, err := tx.Exec(
		"INSERT INTO event_log (kind, timestamp, payload) VALUES ($1, $2, $3);",
		string(kind), timestamp, raw,
	)
	if err != nil {
		return Event{}, fmt.Errorf("error inserting %s event: %w", kind, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return Event{}, err
	}

	ev := Event{ID: uint64(id), Kind: kind, Timestamp: timestamp, Payload: raw}
	tx.AddCommitCallback(func() {
		l.logger.Debugf("event %d %s committed", ev.ID, ev.Kind)
		l.subscriber.Publish(ev)
	})

	return ev, nil
}

// Events returns up to limit events with id >= fromID in id order
func (l *Log) Events(fromID, limit uint64) ([]Event, error) {
	var events []*Event
	if err := meddler.QueryAll(l.db, &events,
		"SELECT * FROM event_log WHERE id >= $1 ORDER BY id ASC LIMIT $2;", fromID, limit); err != nil {
		return nil, fmt.Errorf("error reading events: %w", err)
	}
	return db.SlicePtrsToSlice(events).([]Event), nil
}

// EventsByKind is Events restricted to one kind
func (l *Log) EventsByKind(kind Kind, fromID, limit uint64) ([]Event, error) {
	var events []*Event
	if err := meddler.QueryAll(l.db, &events,
		"SELECT * FROM event_log WHERE kind = $1 AND id >= $2 ORDER BY id ASC LIMIT $3;",
		string(kind), fromID, limit); err != nil {
		return nil, fmt.Errorf("error reading %s events: %w", kind, err)
	}
	return db.SlicePtrsToSlice(events).([]Event), nil
}

// LastID returns the id of the newest event, 0 when the log is empty
func (l *Log) LastID() (uint64, error) {
	var id sql.NullInt64
	if err := l.db.QueryRow("SELECT MAX(id) FROM event_log;").Scan(&id); err != nil {
		return 0, fmt.Errorf("error reading last event id: %w", err)
	}
	return uint64(id.Int64), nil
}

// Subscribe returns a channel receiving the events committed from now on
func (l *Log) Subscribe(subscriberName string) <-chan Event {
	return l.subscriber.Subscribe(subscriberName)
}
