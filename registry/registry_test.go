package registry

import (
	"database/sql"
	"path"
	"testing"

	"github.com/0xPolygon/obridge/bridgeerrors"
	"github.com/0xPolygon/obridge/db"
	"github.com/0xPolygon/obridge/log"
	"github.com/0xPolygon/obridge/registry/migrations"
	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/require"
)

var (
	l1Token = common.HexToAddress("0x1111")
	l2Token = common.HexToAddress("0x2222")
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()

	database, err := db.NewSQLiteDB(path.Join(t.TempDir(), "registry.sqlite"))
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })
	require.NoError(t, db.RunMigrationsDB(log.GetDefaultLogger(), database, migrations.Migrations))
	return database
}

func TestRegisterIsSymmetric(t *testing.T) {
	database := newTestDB(t)
	require.NoError(t, Register(database, TokenPair{L1Asset: l1Token, L2Asset: l2Token}))

	l2, err := ResolveL1(database, l1Token)
	require.NoError(t, err)
	require.Equal(t, l2Token, l2)

	l1, err := ResolveL2(database, l2Token)
	require.NoError(t, err)
	require.Equal(t, l1Token, l1)
}

func TestRegisterConflicts(t *testing.T) {
	database := newTestDB(t)
	require.NoError(t, Register(database, TokenPair{L1Asset: l1Token, L2Asset: l2Token}))

	err := Register(database, TokenPair{L1Asset: l1Token, L2Asset: common.HexToAddress("0x3333")})
	require.ErrorIs(t, err, ErrPairConflict)
	require.ErrorIs(t, err, bridgeerrors.ErrPrecondition)

	err = Register(database, TokenPair{L1Asset: common.HexToAddress("0x3333"), L2Asset: l2Token})
	require.ErrorIs(t, err, ErrPairConflict)

	pairs, err := Pairs(database)
	require.NoError(t, err)
	require.Equal(t, []TokenPair{{L1Asset: l1Token, L2Asset: l2Token}}, pairs)
}

func TestUnregistered(t *testing.T) {
	database := newTestDB(t)

	_, err := ResolveL1(database, l1Token)
	require.ErrorIs(t, err, ErrAssetNotRegistered)
	_, err = ResolveL2(database, l2Token)
	require.ErrorIs(t, err, ErrAssetNotRegistered)
	// the reverse direction of a registered pair does not resolve the other way round
	require.NoError(t, Register(database, TokenPair{L1Asset: l1Token, L2Asset: l2Token}))
	_, err = ResolveL1(database, l2Token)
	require.ErrorIs(t, err, ErrAssetNotRegistered)
}

func TestNativePair(t *testing.T) {
	database := newTestDB(t)
	require.NoError(t, Register(database, TokenPair{}))

	l2, err := ResolveL1(database, common.Address{})
	require.NoError(t, err)
	require.Equal(t, common.Address{}, l2)
}
