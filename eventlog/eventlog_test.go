package eventlog

import (
	"context"
	"errors"
	"math/big"
	"path"
	"testing"
	"time"

	"github.com/0xPolygon/obridge/db"
	"github.com/0xPolygon/obridge/eventlog/migrations"
	"github.com/0xPolygon/obridge/log"
	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/require"
)

func newTestLog(t *testing.T) *Log {
	t.Helper()

	database, err := db.NewSQLiteDB(path.Join(t.TempDir(), "eventlog.sqlite"))
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })
	require.NoError(t, db.RunMigrationsDB(log.GetDefaultLogger(), database, migrations.Migrations))
	return New(log.GetDefaultLogger(), database)
}

func TestAppendPublishesAfterCommit(t *testing.T) {
	ctx := context.Background()
	l := newTestLog(t)
	sub := l.Subscribe("test")

	deposit := DepositInitiatedData{
		Asset:         common.HexToAddress("0x01"),
		Depositor:     common.HexToAddress("0x02"),
		DestRecipient: common.HexToAddress("0x03"),
		Amount:        big.NewInt(100),
		Nonce:         0,
	}
	err := db.RunInTx(ctx, l.db, log.GetDefaultLogger(), func(tx *db.Tx) error {
		ev, err := l.Append(tx, DepositInitiated, 1000, deposit)
		require.NoError(t, err)
		require.Equal(t, uint64(1), ev.ID)
		select {
		case <-sub:
			t.Fatal("published before commit")
		default:
		}
		return nil
	})
	require.NoError(t, err)

	select {
	case ev := <-sub:
		require.Equal(t, DepositInitiated, ev.Kind)
		var decoded DepositInitiatedData
		require.NoError(t, ev.Decode(&decoded))
		require.Equal(t, deposit, decoded)
	case <-time.After(time.Second):
		t.Fatal("event not published")
	}

	events, err := l.Events(0, 10)
	require.NoError(t, err)
	require.Len(t, events, 1)
	require.Equal(t, uint64(1000), events[0].Timestamp)
	var decoded DepositInitiatedData
	require.NoError(t, events[0].Decode(&decoded))
	require.Equal(t, 0, decoded.Amount.Cmp(big.NewInt(100)))
}

func TestRolledBackEventsVanish(t *testing.T) {
	ctx := context.Background()
	l := newTestLog(t)
	sub := l.Subscribe("test")
	errAbort := errors.New("abort")

	err := db.RunInTx(ctx, l.db, log.GetDefaultLogger(), func(tx *db.Tx) error {
		_, err := l.Append(tx, BatchSubmitted, 1, BatchSubmittedData{BatchID: 0})
		require.NoError(t, err)
		return errAbort
	})
	require.ErrorIs(t, err, errAbort)

	events, err := l.Events(0, 10)
	require.NoError(t, err)
	require.Empty(t, events)
	lastID, err := l.LastID()
	require.NoError(t, err)
	require.Zero(t, lastID)
	select {
	case <-sub:
		t.Fatal("rolled back event published")
	default:
	}
}

func TestEventsPaging(t *testing.T) {
	ctx := context.Background()
	l := newTestLog(t)

	for i := uint64(0); i < 5; i++ {
		kind := BatchSubmitted
		if i%2 == 1 {
			kind = BatchFinalized
		}
		require.NoError(t, db.RunInTx(ctx, l.db, log.GetDefaultLogger(), func(tx *db.Tx) error {
			_, err := l.Append(tx, kind, i, BatchFinalizedData{BatchID: i})
			return err
		}))
	}

	page, err := l.Events(2, 2)
	require.NoError(t, err)
	require.Len(t, page, 2)
	require.Equal(t, uint64(2), page[0].ID)
	require.Equal(t, uint64(3), page[1].ID)

	finalized, err := l.EventsByKind(BatchFinalized, 0, 10)
	require.NoError(t, err)
	require.Len(t, finalized, 2)

	lastID, err := l.LastID()
	require.NoError(t, err)
	require.Equal(t, uint64(5), lastID)
}

func TestSubscriberDropsWhenFull(t *testing.T) {
	s := NewGenericSubscriberImpl[int]()
	ch := s.Subscribe("slow")
	for i := 0; i < subscriberBuffer+10; i++ {
		s.Publish(i)
	}
	require.Len(t, ch, subscriberBuffer)
	require.Equal(t, 0, <-ch)
}
