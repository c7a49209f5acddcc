package l2bridge

import (
	"context"
	"errors"
	"math/big"
	"path"
	"testing"
	"time"

	"github.com/0xPolygon/obridge/authority"
	"github.com/0xPolygon/obridge/bridgeerrors"
	"github.com/0xPolygon/obridge/eventlog"
	"github.com/0xPolygon/obridge/guard"
	"github.com/0xPolygon/obridge/l2bridge/mocks"
	"github.com/0xPolygon/obridge/log"
	"github.com/0xPolygon/obridge/proofverifier"
	verifiermocks "github.com/0xPolygon/obridge/proofverifier/mocks"
	"github.com/0xPolygon/obridge/registry"
	"github.com/benbjohnson/clock"
	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	admin     = common.HexToAddress("0xad")
	sequencer = common.HexToAddress("0x5e")
	alice     = common.HexToAddress("0xa11ce")
	bob       = common.HexToAddress("0xb0b")
	l1Token   = common.HexToAddress("0x1111")
	l2Token   = common.HexToAddress("0x2222")
	unknown   = common.HexToAddress("0x9999")
)

type testEnv struct {
	bridge   *BridgeL2
	assets   *mocks.Assets
	verifier *verifiermocks.DepositVerifier
}

func newTestEnv(t *testing.T, withVerifier bool) *testEnv {
	t.Helper()

	clk := clock.NewMock()
	clk.Set(time.Unix(1_700_000_000, 0))
	cfg := Config{
		DBPath:    path.Join(t.TempDir(), "l2bridge.sqlite"),
		Authority: authority.Config{Admin: admin, Sequencer: sequencer},
		TokenPairs: []registry.TokenPair{
			{L1Asset: l1Token, L2Asset: l2Token},
			{L1Asset: common.Address{}, L2Asset: common.Address{}},
		},
	}
	env := &testEnv{assets: mocks.NewAssets(t)}
	var verifier proofverifier.DepositVerifier
	if withVerifier {
		env.verifier = verifiermocks.NewDepositVerifier(t)
		verifier = env.verifier
	}
	b, err := New(context.Background(), log.WithFields("module", "l2bridge-test"), cfg, env.assets, verifier, clk, nil)
	require.NoError(t, err)
	t.Cleanup(func() { b.Close() })
	env.bridge = b

	return env
}

func (e *testEnv) eventsOfKind(t *testing.T, kind eventlog.Kind) []eventlog.Event {
	t.Helper()

	events, err := e.bridge.Events(0, 1000)
	require.NoError(t, err)
	var res []eventlog.Event
	for _, ev := range events {
		if ev.Kind == kind {
			res = append(res, ev)
		}
	}
	return res
}

func TestFinalizeDeposit(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t, false)

	env.assets.EXPECT().Mint(mock.Anything, l2Token, bob, big.NewInt(100)).Return(nil).Twice()
	require.NoError(t, env.bridge.FinalizeDeposit(ctx, sequencer, l1Token, bob, big.NewInt(100), 0))
	// no replay protection on the L2 side
	require.NoError(t, env.bridge.FinalizeDeposit(ctx, sequencer, l1Token, bob, big.NewInt(100), 0))

	confirmations := env.eventsOfKind(t, eventlog.DepositFinalized)
	require.Len(t, confirmations, 2)
	var data eventlog.DepositFinalizedData
	require.NoError(t, confirmations[0].Decode(&data))
	require.Equal(t, l1Token, data.L1Asset)
	require.Equal(t, l2Token, data.L2Asset)
	require.Equal(t, uint64(0), data.SourceDepositNonce)
}

func TestFinalizeDepositRejections(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t, false)

	err := env.bridge.FinalizeDeposit(ctx, alice, l1Token, bob, big.NewInt(100), 0)
	require.ErrorIs(t, err, bridgeerrors.ErrUnauthorized)
	err = env.bridge.FinalizeDeposit(ctx, sequencer, unknown, bob, big.NewInt(100), 0)
	require.ErrorIs(t, err, registry.ErrAssetNotRegistered)
	// the L2 side of a pair is not an L1 asset
	err = env.bridge.FinalizeDeposit(ctx, sequencer, l2Token, bob, big.NewInt(100), 0)
	require.ErrorIs(t, err, registry.ErrAssetNotRegistered)
	err = env.bridge.FinalizeDeposit(ctx, sequencer, l1Token, bob, big.NewInt(-1), 0)
	require.ErrorIs(t, err, ErrNegativeAmount)

	require.Empty(t, env.eventsOfKind(t, eventlog.DepositFinalized))
}

func TestFinalizeDepositMintFailureRollsBack(t *testing.T) {
	env := newTestEnv(t, false)

	env.assets.EXPECT().Mint(mock.Anything, l2Token, bob, big.NewInt(100)).Return(errors.New("not a minter")).Once()
	err := env.bridge.FinalizeDeposit(context.Background(), sequencer, l1Token, bob, big.NewInt(100), 3)
	require.ErrorIs(t, err, bridgeerrors.ErrTransferFailed)
	require.Empty(t, env.eventsOfKind(t, eventlog.DepositFinalized))
}

func TestFinalizeDepositConsultsVerifier(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t, true)

	claim := proofverifier.DepositClaim{
		L1Asset: l1Token, L2Asset: l2Token, To: bob, Amount: big.NewInt(100), SourceDepositNonce: 7,
	}
	env.verifier.EXPECT().VerifyDeposit(mock.Anything, claim).Return(proofverifier.ErrDepositRejected).Once()
	err := env.bridge.FinalizeDeposit(ctx, sequencer, l1Token, bob, big.NewInt(100), 7)
	require.ErrorIs(t, err, proofverifier.ErrDepositRejected)

	env.verifier.EXPECT().VerifyDeposit(mock.Anything, claim).Return(nil).Once()
	env.assets.EXPECT().Mint(mock.Anything, l2Token, bob, big.NewInt(100)).Return(nil).Once()
	require.NoError(t, env.bridge.FinalizeDeposit(ctx, sequencer, l1Token, bob, big.NewInt(100), 7))
}

func TestWithdraw(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t, false)

	env.assets.EXPECT().Burn(mock.Anything, l2Token, alice, big.NewInt(40)).Return(nil).Times(3)
	for expected := uint64(0); expected < 3; expected++ {
		nonce, err := env.bridge.Withdraw(ctx, alice, l2Token, big.NewInt(40), bob)
		require.NoError(t, err)
		require.Equal(t, expected, nonce)
	}
	next, err := env.bridge.WithdrawalNonce()
	require.NoError(t, err)
	require.Equal(t, uint64(3), next)

	intents := env.eventsOfKind(t, eventlog.WithdrawalInitiated)
	require.Len(t, intents, 3)
	var data eventlog.WithdrawalInitiatedData
	require.NoError(t, intents[2].Decode(&data))
	require.Equal(t, uint64(2), data.Nonce)
	require.Equal(t, l2Token, data.Asset)
	require.Equal(t, l1Token, data.L1Asset)
	require.Equal(t, alice, data.From)
	require.Equal(t, bob, data.DestRecipient)
}

func TestWithdrawRejections(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t, false)

	_, err := env.bridge.Withdraw(ctx, alice, l2Token, big.NewInt(0), bob)
	require.ErrorIs(t, err, ErrZeroAmount)
	_, err = env.bridge.Withdraw(ctx, alice, common.Address{}, big.NewInt(1), bob)
	require.ErrorIs(t, err, ErrNativeAssetNotAllowed)
	_, err = env.bridge.Withdraw(ctx, alice, l1Token, big.NewInt(1), bob)
	require.ErrorIs(t, err, registry.ErrAssetNotRegistered)

	env.assets.EXPECT().Burn(mock.Anything, l2Token, alice, big.NewInt(1)).Return(errors.New("balance too low")).Once()
	_, err = env.bridge.Withdraw(ctx, alice, l2Token, big.NewInt(1), bob)
	require.ErrorIs(t, err, bridgeerrors.ErrTransferFailed)

	next, err := env.bridge.WithdrawalNonce()
	require.NoError(t, err)
	require.Zero(t, next)
	require.Empty(t, env.eventsOfKind(t, eventlog.WithdrawalInitiated))
}

func TestWithdrawNative(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t, false)

	_, err := env.bridge.WithdrawNative(ctx, alice, big.NewInt(9), big.NewInt(10), bob)
	require.ErrorIs(t, err, ErrValueMismatch)
	_, err = env.bridge.WithdrawNative(ctx, alice, nil, big.NewInt(10), bob)
	require.ErrorIs(t, err, ErrValueMismatch)

	env.assets.EXPECT().Burn(mock.Anything, common.Address{}, alice, big.NewInt(10)).Return(nil).Once()
	nonce, err := env.bridge.WithdrawNative(ctx, alice, big.NewInt(10), big.NewInt(10), bob)
	require.NoError(t, err)
	require.Zero(t, nonce)

	intents := env.eventsOfKind(t, eventlog.WithdrawalInitiated)
	require.Len(t, intents, 1)
	var data eventlog.WithdrawalInitiatedData
	require.NoError(t, intents[0].Decode(&data))
	require.Equal(t, common.Address{}, data.Asset)
	require.Equal(t, common.Address{}, data.L1Asset)
}

func TestWithdrawNativeNeedsNativePair(t *testing.T) {
	ctx := context.Background()
	clk := clock.NewMock()
	b, err := New(ctx, log.WithFields("module", "l2bridge-test"), Config{
		DBPath:     path.Join(t.TempDir(), "l2bridge.sqlite"),
		Authority:  authority.Config{Admin: admin, Sequencer: sequencer},
		TokenPairs: []registry.TokenPair{{L1Asset: l1Token, L2Asset: l2Token}},
	}, mocks.NewAssets(t), nil, clk, nil)
	require.NoError(t, err)
	t.Cleanup(func() { b.Close() })

	_, err = b.WithdrawNative(ctx, alice, big.NewInt(1), big.NewInt(1), bob)
	require.ErrorIs(t, err, registry.ErrAssetNotRegistered)
}

func TestWithdrawIsNonReentrant(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t, false)

	var inner error
	env.assets.EXPECT().Burn(mock.Anything, l2Token, alice, big.NewInt(5)).
		RunAndReturn(func(ctx context.Context, _, _ common.Address, _ *big.Int) error {
			_, inner = env.bridge.Withdraw(ctx, alice, l2Token, big.NewInt(5), bob)
			return nil
		}).Once()

	nonce, err := env.bridge.Withdraw(ctx, alice, l2Token, big.NewInt(5), bob)
	require.NoError(t, err)
	require.Zero(t, nonce)
	require.ErrorIs(t, inner, guard.ErrReentrantCall)
	require.Len(t, env.eventsOfKind(t, eventlog.WithdrawalInitiated), 1)
}

func TestReentryWithFreshContextIsRejected(t *testing.T) {
	env := newTestEnv(t, false)

	var inner error
	env.assets.EXPECT().Burn(mock.Anything, l2Token, alice, big.NewInt(5)).
		RunAndReturn(func(context.Context, common.Address, common.Address, *big.Int) error {
			_, inner = env.bridge.Withdraw(context.Background(), alice, l2Token, big.NewInt(5), bob)
			return nil
		}).Once()

	_, err := env.bridge.Withdraw(context.Background(), alice, l2Token, big.NewInt(5), bob)
	require.NoError(t, err)
	require.ErrorIs(t, inner, guard.ErrReentrantCall)
	require.Len(t, env.eventsOfKind(t, eventlog.WithdrawalInitiated), 1)
}

func TestFinalizeDepositCallerGivesUpAfterMint(t *testing.T) {
	env := newTestEnv(t, false)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	env.assets.EXPECT().Mint(mock.Anything, l2Token, bob, big.NewInt(4)).
		RunAndReturn(func(context.Context, common.Address, common.Address, *big.Int) error {
			cancel()
			return nil
		}).Once()
	require.NoError(t, env.bridge.FinalizeDeposit(ctx, sequencer, l1Token, bob, big.NewInt(4), 3))
	require.Len(t, env.eventsOfKind(t, eventlog.DepositFinalized), 1)
}

func TestSequencerRotation(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t, false)
	newSequencer := common.HexToAddress("0x5e2")

	require.NoError(t, env.bridge.SetSequencer(ctx, admin, newSequencer))
	err := env.bridge.FinalizeDeposit(ctx, sequencer, l1Token, bob, big.NewInt(1), 0)
	require.ErrorIs(t, err, bridgeerrors.ErrUnauthorized)

	env.assets.EXPECT().Mint(mock.Anything, l2Token, bob, big.NewInt(1)).Return(nil).Once()
	require.NoError(t, env.bridge.FinalizeDeposit(ctx, newSequencer, l1Token, bob, big.NewInt(1), 0))
}
