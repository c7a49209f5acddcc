package authority

import (
	"context"
	"database/sql"
	"path"
	"testing"

	"github.com/0xPolygon/obridge/authority/migrations"
	"github.com/0xPolygon/obridge/bridgeerrors"
	"github.com/0xPolygon/obridge/db"
	"github.com/0xPolygon/obridge/log"
	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/require"
)

var (
	admin     = common.HexToAddress("0xad")
	sequencer = common.HexToAddress("0x5e")
	verifier  = common.HexToAddress("0x7e")
	stranger  = common.HexToAddress("0xbad")
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()

	database, err := db.NewSQLiteDB(path.Join(t.TempDir(), "authority.sqlite"))
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })
	require.NoError(t, db.RunMigrationsDB(log.GetDefaultLogger(), database, migrations.Migrations))
	return database
}

func TestLoadSeedsOnce(t *testing.T) {
	ctx := context.Background()
	logger := log.WithFields("module", "authority-test")
	database := newTestDB(t)

	a, err := Load(ctx, logger, database, Config{Admin: admin, Sequencer: sequencer, Verifiers: []common.Address{verifier}})
	require.NoError(t, err)
	require.Equal(t, admin, a.Admin())
	require.Equal(t, sequencer, a.Sequencer())
	require.True(t, a.IsVerifier(verifier))

	// a later start with a different config keeps the persisted record
	b, err := Load(ctx, logger, database, Config{Admin: stranger, Sequencer: stranger})
	require.NoError(t, err)
	require.Equal(t, admin, b.Admin())
	require.Equal(t, sequencer, b.Sequencer())
	require.Equal(t, []common.Address{verifier}, b.Verifiers())
}

func TestLoadRequiresAdmin(t *testing.T) {
	_, err := Load(context.Background(), log.GetDefaultLogger(), newTestDB(t), Config{Sequencer: sequencer})
	require.ErrorIs(t, err, ErrZeroAddress)
}

func TestChecks(t *testing.T) {
	a, err := Load(context.Background(), log.GetDefaultLogger(), newTestDB(t),
		Config{Admin: admin, Sequencer: sequencer, Verifiers: []common.Address{verifier}})
	require.NoError(t, err)

	require.NoError(t, a.CheckAdmin(admin))
	require.ErrorIs(t, a.CheckAdmin(stranger), ErrNotAdmin)
	require.ErrorIs(t, a.CheckAdmin(stranger), bridgeerrors.ErrUnauthorized)
	require.NoError(t, a.CheckSequencer(sequencer))
	require.ErrorIs(t, a.CheckSequencer(admin), ErrNotSequencer)
	require.NoError(t, a.CheckVerifier(verifier))
	require.ErrorIs(t, a.CheckVerifier(sequencer), ErrNotVerifier)
}

func TestNoSequencerConfigured(t *testing.T) {
	a, err := Load(context.Background(), log.GetDefaultLogger(), newTestDB(t), Config{Admin: admin})
	require.NoError(t, err)
	require.ErrorIs(t, a.CheckSequencer(common.Address{}), ErrNotSequencer)
}

func TestMutationsApplyOnCommitOnly(t *testing.T) {
	ctx := context.Background()
	database := newTestDB(t)
	a, err := Load(ctx, log.GetDefaultLogger(), database, Config{Admin: admin, Sequencer: sequencer})
	require.NoError(t, err)
	newSequencer := common.HexToAddress("0x5e2")

	tx, err := db.NewTx(ctx, database)
	require.NoError(t, err)
	require.NoError(t, a.SetSequencer(tx, newSequencer))
	require.NoError(t, a.AddVerifier(tx, verifier))
	require.Equal(t, sequencer, a.Sequencer())
	require.NoError(t, tx.Rollback())
	require.Equal(t, sequencer, a.Sequencer())
	require.False(t, a.IsVerifier(verifier))

	tx, err = db.NewTx(ctx, database)
	require.NoError(t, err)
	require.NoError(t, a.SetSequencer(tx, newSequencer))
	require.NoError(t, a.TransferAdmin(tx, stranger))
	require.NoError(t, a.AddVerifier(tx, verifier))
	require.NoError(t, tx.Commit())
	require.Equal(t, newSequencer, a.Sequencer())
	require.Equal(t, stranger, a.Admin())
	require.True(t, a.IsVerifier(verifier))

	reloaded, err := Load(ctx, log.GetDefaultLogger(), database, Config{})
	require.NoError(t, err)
	require.Equal(t, newSequencer, reloaded.Sequencer())
	require.Equal(t, stranger, reloaded.Admin())
	require.True(t, reloaded.IsVerifier(verifier))
}

func TestVerifierSetErrors(t *testing.T) {
	ctx := context.Background()
	database := newTestDB(t)
	a, err := Load(ctx, log.GetDefaultLogger(), database,
		Config{Admin: admin, Sequencer: sequencer, Verifiers: []common.Address{verifier}})
	require.NoError(t, err)

	err = db.RunInTx(ctx, database, log.GetDefaultLogger(), func(tx *db.Tx) error {
		return a.AddVerifier(tx, verifier)
	})
	require.ErrorIs(t, err, ErrVerifierAlreadyAdded)

	err = db.RunInTx(ctx, database, log.GetDefaultLogger(), func(tx *db.Tx) error {
		return a.RemoveVerifier(tx, stranger)
	})
	require.ErrorIs(t, err, ErrVerifierNotFound)

	err = db.RunInTx(ctx, database, log.GetDefaultLogger(), func(tx *db.Tx) error {
		return a.SetSequencer(tx, common.Address{})
	})
	require.ErrorIs(t, err, ErrZeroAddress)

	require.NoError(t, db.RunInTx(ctx, database, log.GetDefaultLogger(), func(tx *db.Tx) error {
		return a.RemoveVerifier(tx, verifier)
	}))
	require.False(t, a.IsVerifier(verifier))
}
