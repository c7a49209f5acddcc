package withdrawalledger

import (
	"context"
	"database/sql"
	"errors"
	"path"
	"testing"

	"github.com/0xPolygon/obridge/bridgeerrors"
	"github.com/0xPolygon/obridge/db"
	"github.com/0xPolygon/obridge/log"
	"github.com/0xPolygon/obridge/withdrawalledger/migrations"
	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/require"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()

	database, err := db.NewSQLiteDB(path.Join(t.TempDir(), "withdrawalledger.sqlite"))
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })
	require.NoError(t, db.RunMigrationsDB(log.GetDefaultLogger(), database, migrations.Migrations))
	return database
}

func TestNoncesAreGapFree(t *testing.T) {
	ctx := context.Background()
	database := newTestDB(t)

	current, err := CurrentNonce(database, DepositNonce)
	require.NoError(t, err)
	require.Zero(t, current)

	for expected := uint64(0); expected < 5; expected++ {
		require.NoError(t, db.RunInTx(ctx, database, log.GetDefaultLogger(), func(tx *db.Tx) error {
			n, err := NextNonce(tx, DepositNonce)
			require.NoError(t, err)
			require.Equal(t, expected, n)
			return nil
		}))
	}

	// a rolled back emission does not consume its nonce
	errAbort := errors.New("abort")
	require.ErrorIs(t, db.RunInTx(ctx, database, log.GetDefaultLogger(), func(tx *db.Tx) error {
		_, err := NextNonce(tx, DepositNonce)
		require.NoError(t, err)
		return errAbort
	}), errAbort)

	current, err = CurrentNonce(database, DepositNonce)
	require.NoError(t, err)
	require.Equal(t, uint64(5), current)

	// counters are independent
	current, err = CurrentNonce(database, WithdrawalNonce)
	require.NoError(t, err)
	require.Zero(t, current)
}

func TestProcessedSet(t *testing.T) {
	database := newTestDB(t)
	id := common.HexToHash("0xabc")

	processed, err := IsProcessed(database, id)
	require.NoError(t, err)
	require.False(t, processed)

	require.NoError(t, MarkProcessed(database, id, 10))
	processed, err = IsProcessed(database, id)
	require.NoError(t, err)
	require.True(t, processed)

	err = MarkProcessed(database, id, 11)
	require.ErrorIs(t, err, ErrAlreadyProcessed)
	require.True(t, bridgeerrors.IsPermanent(err))
}
