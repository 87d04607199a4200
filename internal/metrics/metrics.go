package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	namespace = "kycscreener"
)

var (
	// Backend Metrics
	BackendRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "backend_request_duration_seconds",
		Help:      "Time taken for a screening backend call to complete.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"operation"})

	BackendRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "backend_requests_total",
		Help:      "Count of screening backend calls.",
	}, []string{"operation", "status"})

	// Workflow Metrics
	UploadsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "uploads_total",
		Help:      "Count of upload submissions by mode.",
	}, []string{"mode", "status"})

	RulesTaughtTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "rules_taught_total",
		Help:      "Count of rules submitted to the backend.",
	})

	CasesScreenedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "cases_screened_total",
		Help:      "Count of screening cases received from the backend.",
	})
)
