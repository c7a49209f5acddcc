package metrics

import (
	"testing"

	"github.com/0xPolygon/obridge/bridgeerrors"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestMetrics(t *testing.T) {
	m := NewMetrics()

	m.RecordTransition("l1bridge", "deposit")
	m.RecordTransition("l1bridge", "deposit")
	m.RecordRejection("l1bridge", "finalizeWithdrawal", bridgeerrors.New(bridgeerrors.ErrReplay, "processed"))
	m.RecordPendingWithdrawals(2)
	m.RecordPendingWithdrawals(1)
	m.RecordLastBatchID(5)
	m.RecordNonce("l2bridge", "withdrawal", 3)

	require.Equal(t, 2.0, testutil.ToFloat64(m.transitionsTotal.WithLabelValues("l1bridge", "deposit")))
	require.Equal(t, 1.0, testutil.ToFloat64(m.rejectionsTotal.WithLabelValues("l1bridge", "finalizeWithdrawal", "replay")))
	require.Equal(t, 1.0, testutil.ToFloat64(m.pendingWithdrawals))
	require.Equal(t, 5.0, testutil.ToFloat64(m.lastBatchID))
	require.Equal(t, 3.0, testutil.ToFloat64(m.nonces.WithLabelValues("l2bridge", "withdrawal")))

	families, err := m.Registry().Gather()
	require.NoError(t, err)
	require.NotEmpty(t, families)
}

func TestNoopMetrics(t *testing.T) {
	require.NotPanics(t, func() {
		NoopMetrics.RecordTransition("a", "b")
		NoopMetrics.RecordRejection("a", "b", nil)
		NoopMetrics.RecordPendingWithdrawals(1)
		NoopMetrics.RecordLastBatchID(1)
		NoopMetrics.RecordNonce("a", "b", 1)
	})
}
