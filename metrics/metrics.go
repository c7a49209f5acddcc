package metrics

import (
	"github.com/0xPolygon/obridge/bridgeerrors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

const Namespace = "obridge"

// Metricer records the outcome of every state transition
type Metricer interface {
	RecordTransition(component, op string)
	RecordRejection(component, op string, err error)
	RecordPendingWithdrawals(count uint64)
	RecordLastBatchID(batchID uint64)
	RecordNonce(component, kind string, nonce uint64)
}

// Metrics is the prometheus backed Metricer
type Metrics struct {
	registry *prometheus.Registry

	transitionsTotal   *prometheus.CounterVec
	rejectionsTotal    *prometheus.CounterVec
	pendingWithdrawals prometheus.Gauge
	lastBatchID        prometheus.Gauge
	nonces             *prometheus.GaugeVec
}

var _ Metricer = (*Metrics)(nil)

// NewMetrics registers the collectors on a fresh registry
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	registry.MustRegister(collectors.NewGoCollector())

	m := &Metrics{
		registry: registry,
		transitionsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "transitions_total",
			Help:      "Number of committed state transitions",
		}, []string{
			"component",
			"op",
		}),
		rejectionsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "rejections_total",
			Help:      "Number of rejected operations by error class",
		}, []string{
			"component",
			"op",
			"class",
		}),
		pendingWithdrawals: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: Namespace,
			Name:      "pending_withdrawals",
			Help:      "Withdrawals registered on L1 and not finalized yet",
		}),
		lastBatchID: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: Namespace,
			Name:      "last_batch_id",
			Help:      "Id of the last submitted batch",
		}),
		nonces: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: Namespace,
			Name:      "nonce",
			Help:      "Next nonce to be emitted",
		}, []string{
			"component",
			"kind",
		}),
	}
	registry.MustRegister(m.transitionsTotal, m.rejectionsTotal, m.pendingWithdrawals, m.lastBatchID, m.nonces)

	return m
}

// Registry to be served by promhttp
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

func (m *Metrics) RecordTransition(component, op string) {
	m.transitionsTotal.WithLabelValues(component, op).Inc()
}

func (m *Metrics) RecordRejection(component, op string, err error) {
	m.rejectionsTotal.WithLabelValues(component, op, bridgeerrors.ClassName(err)).Inc()
}

func (m *Metrics) RecordPendingWithdrawals(count uint64) {
	m.pendingWithdrawals.Set(float64(count))
}

func (m *Metrics) RecordLastBatchID(batchID uint64) {
	m.lastBatchID.Set(float64(batchID))
}

func (m *Metrics) RecordNonce(component, kind string, nonce uint64) {
	m.nonces.WithLabelValues(component, kind).Set(float64(nonce))
}

type noopMetrics struct{}

// NoopMetrics discards everything
var NoopMetrics Metricer = new(noopMetrics)

func (*noopMetrics) RecordTransition(string, string)       {}
func (*noopMetrics) RecordRejection(string, string, error) {}
func (*noopMetrics) RecordPendingWithdrawals(uint64)       {}
func (*noopMetrics) RecordLastBatchID(uint64)              {}
func (*noopMetrics) RecordNonce(string, string, uint64)    {}
