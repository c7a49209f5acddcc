package common

import (
	"context"
	"testing"
	"time"

	"github.com/0xPolygon/obridge/config/types"
	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/require"
)

func TestUint64Bytes(t *testing.T) {
	t.Parallel()

	for _, n := range []uint64{0, 1, 255, 1 << 40, ^uint64(0)} {
		require.Equal(t, n, BytesToUint64(Uint64ToBytes(n)))
	}
	require.Equal(t, []byte{0, 0, 0, 0, 0, 0, 1, 0}, Uint64ToBytes(256))
	require.Equal(t, uint32(70000), BytesToUint32(Uint32ToBytes(70000)))
}

func TestCalculateWithdrawalID(t *testing.T) {
	t.Parallel()

	id0 := CalculateWithdrawalID(1, 0)
	require.NotEqual(t, common.Hash{}, id0)
	require.Equal(t, id0, CalculateWithdrawalID(1, 0))
	require.NotEqual(t, id0, CalculateWithdrawalID(1, 1))
	require.NotEqual(t, id0, CalculateWithdrawalID(2, 0))
}

func TestIsNativeAsset(t *testing.T) {
	t.Parallel()

	require.True(t, IsNativeAsset(common.Address{}))
	require.False(t, IsNativeAsset(common.HexToAddress("0x01")))
}

func TestRetryHandler(t *testing.T) {
	t.Parallel()

	h := RetryHandler{RetryAfterErrorPeriod: types.NewDuration(time.Millisecond), MaxRetryAttemptsAfterError: 2}
	ctx := context.Background()
	require.NoError(t, h.Handle(ctx, "op", 0))
	require.NoError(t, h.Handle(ctx, "op", 1))
	require.ErrorContains(t, h.Handle(ctx, "op", 2), "op failed too many times (2)")

	unlimited := RetryHandler{RetryAfterErrorPeriod: types.NewDuration(time.Hour), MaxRetryAttemptsAfterError: -1}
	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	require.ErrorIs(t, unlimited.Handle(cancelled, "op", 1000), context.Canceled)
}
