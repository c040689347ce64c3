package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Probe outcomes.
const (
	OutcomeFound    = "found"
	OutcomeEmpty    = "empty"
	OutcomeError    = "error"
	OutcomeNoWallet = "no_wallet"
)

var (
	// ProbesTotal counts getHash probes by outcome
	ProbesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "generator_probes_total",
			Help: "Total number of getHash probes",
		},
		[]string{"outcome"},
	)

	// ProbeDuration tracks probe latency, wallet authorization included
	ProbeDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "generator_probe_duration_seconds",
			Help:    "getHash probe duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"outcome"},
	)

	// ProbesInFlight tracks fire-and-forget probes that have not finished yet
	ProbesInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "generator_probes_in_flight",
			Help: "Number of probes currently running",
		},
	)

	// DeploymentsTotal counts contract deployments by status
	DeploymentsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "generator_deployments_total",
			Help: "Total number of contract deployments",
		},
		[]string{"contract", "status"},
	)
)
