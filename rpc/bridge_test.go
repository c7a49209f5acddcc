package rpc

import (
	"errors"
	"math/big"
	"testing"

	"github.com/0xPolygon/cdk-rpc/rpc"
	bridgecommon "github.com/0xPolygon/obridge/common"
	"github.com/0xPolygon/obridge/eventlog"
	"github.com/0xPolygon/obridge/l1bridge"
	"github.com/0xPolygon/obridge/log"
	"github.com/0xPolygon/obridge/registry"
	"github.com/0xPolygon/obridge/rpc/mocks"
	"github.com/0xPolygon/obridge/rpc/types"
	"github.com/0xPolygon/obridge/withdrawalledger"
	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type bridgeWithMocks struct {
	bridge   *BridgeEndpoints
	bridgeL1 *mocks.L1Bridger
	bridgeL2 *mocks.L2Bridger
}

func newBridgeWithMocks(t *testing.T) bridgeWithMocks {
	t.Helper()
	b := bridgeWithMocks{
		bridgeL1: mocks.NewL1Bridger(t),
		bridgeL2: mocks.NewL2Bridger(t),
	}
	b.bridge = NewBridgeEndpoints(log.GetDefaultLogger(), 0, 0, 2, b.bridgeL1, b.bridgeL2)
	return b
}

func TestNonces(t *testing.T) {
	b := newBridgeWithMocks(t)
	b.bridgeL1.On("DepositNonce").Return(uint64(3), nil).Once()
	b.bridgeL2.On("WithdrawalNonce").Return(uint64(7), nil).Once()

	res, rpcErr := b.bridge.Nonces()
	require.Nil(t, rpcErr)
	require.Equal(t, types.Nonces{Deposit: 3, Withdrawal: 7}, res)

	b.bridgeL1.On("DepositNonce").Return(uint64(0), errors.New("foo")).Once()
	_, rpcErr = b.bridge.Nonces()
	require.NotNil(t, rpcErr)
	require.Equal(t, rpc.DefaultErrorCode, rpcErr.ErrorCode())

	onlyL1 := NewBridgeEndpoints(log.GetDefaultLogger(), 0, 0, 2, b.bridgeL1, nil)
	_, rpcErr = onlyL1.Nonces()
	require.NotNil(t, rpcErr)
}

func TestWithdrawalIDEndpoint(t *testing.T) {
	b := newBridgeWithMocks(t)
	res, rpcErr := b.bridge.WithdrawalID(5)
	require.Nil(t, rpcErr)
	require.Equal(t, bridgecommon.CalculateWithdrawalID(2, 5), res)
}

func TestWithdrawalStatus(t *testing.T) {
	b := newBridgeWithMocks(t)
	id := common.HexToHash("0xbeef")
	pending := l1bridge.PendingWithdrawal{
		WithdrawalID: id,
		Asset:        common.HexToAddress("0xa1"),
		Recipient:    common.HexToAddress("0xb0b"),
		Amount:       big.NewInt(10),
		RegisteredAt: 100,
	}

	b.bridgeL1.On("IsProcessed", id).Return(false, nil).Once()
	b.bridgeL1.On("PendingWithdrawal", id).Return(pending, nil).Once()
	b.bridgeL1.On("ChallengeDelay").Return(uint64(60)).Once()
	res, rpcErr := b.bridge.WithdrawalStatus(id)
	require.Nil(t, rpcErr)
	status, ok := res.(types.WithdrawalStatus)
	require.True(t, ok)
	require.False(t, status.Processed)
	require.NotNil(t, status.Pending)
	require.Equal(t, uint64(160), status.Pending.MaturesAt)
	require.Equal(t, pending.Recipient, status.Pending.Recipient)

	// finalized withdrawals have no pending entry left
	b.bridgeL1.On("IsProcessed", id).Return(true, nil).Once()
	b.bridgeL1.On("PendingWithdrawal", id).Return(l1bridge.PendingWithdrawal{Amount: big.NewInt(0)}, nil).Once()
	res, rpcErr = b.bridge.WithdrawalStatus(id)
	require.Nil(t, rpcErr)
	status, ok = res.(types.WithdrawalStatus)
	require.True(t, ok)
	require.True(t, status.Processed)
	require.Nil(t, status.Pending)

	b.bridgeL1.On("IsProcessed", id).Return(false, errors.New("foo")).Once()
	_, rpcErr = b.bridge.WithdrawalStatus(id)
	require.NotNil(t, rpcErr)
}

func TestTokenPairsEndpoint(t *testing.T) {
	b := newBridgeWithMocks(t)
	pairs := []registry.TokenPair{{L1Asset: common.HexToAddress("0x1"), L2Asset: common.HexToAddress("0x2")}}
	b.bridgeL1.On("TokenPairs").Return(pairs, nil).Once()
	b.bridgeL2.On("TokenPairs").Return(pairs, nil).Once()

	res, rpcErr := b.bridge.TokenPairs("l1")
	require.Nil(t, rpcErr)
	require.Equal(t, pairs, res)
	res, rpcErr = b.bridge.TokenPairs("l2")
	require.Nil(t, rpcErr)
	require.Equal(t, pairs, res)

	_, rpcErr = b.bridge.TokenPairs("l3")
	require.NotNil(t, rpcErr)
}

func TestEventsEndpoint(t *testing.T) {
	b := newBridgeWithMocks(t)
	events := []eventlog.Event{{ID: 4, Kind: eventlog.DepositInitiated, Timestamp: 1}}

	b.bridgeL1.On("Events", uint64(4), uint64(10)).Return(events, nil).Once()
	res, rpcErr := b.bridge.Events("l1", 4, 10)
	require.Nil(t, rpcErr)
	require.Equal(t, events, res)

	// a zero limit is capped, not unbounded
	b.bridgeL2.On("Events", uint64(0), uint64(maxEventsPerCall)).Return(nil, nil).Once()
	_, rpcErr = b.bridge.Events("l2", 0, 0)
	require.Nil(t, rpcErr)

	b.bridgeL2.On("Events", uint64(0), uint64(maxEventsPerCall)).Return(nil, errors.New("foo")).Once()
	_, rpcErr = b.bridge.Events("l2", 0, maxEventsPerCall+1)
	require.NotNil(t, rpcErr)

	_, rpcErr = b.bridge.Events("", 0, 1)
	require.NotNil(t, rpcErr)
}

func TestFinalizeWithdrawalEndpoint(t *testing.T) {
	b := newBridgeWithMocks(t)
	caller := common.HexToAddress("0xca11")
	id := common.HexToHash("0x1d")

	b.bridgeL1.On("FinalizeWithdrawal", mock.Anything, caller, id).Return(nil).Once()
	_, rpcErr := b.bridge.FinalizeWithdrawal(caller, id)
	require.Nil(t, rpcErr)

	testCases := []struct {
		err  error
		code int
	}{
		{l1bridge.ErrChallengePeriodNotElapsed, PreconditionErrorCode},
		{withdrawalledger.ErrAlreadyProcessed, ReplayErrorCode},
		{errors.New("foo"), rpc.DefaultErrorCode},
	}
	for _, tc := range testCases {
		b.bridgeL1.On("FinalizeWithdrawal", mock.Anything, caller, id).Return(tc.err).Once()
		_, rpcErr = b.bridge.FinalizeWithdrawal(caller, id)
		require.NotNil(t, rpcErr)
		require.Equal(t, tc.code, rpcErr.ErrorCode(), tc.err.Error())
	}

	noL1 := NewBridgeEndpoints(log.GetDefaultLogger(), 0, 0, 2, nil, b.bridgeL2)
	_, rpcErr = noL1.FinalizeWithdrawal(caller, id)
	require.NotNil(t, rpcErr)
}
