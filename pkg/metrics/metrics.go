package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// AuthAttempts records login and verify attempts by flow and result.
	AuthAttempts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "menucard_auth_attempts_total",
			Help: "Total number of authentication attempts",
		},
		[]string{"flow", "result"},
	)

	// VerificationCodesIssued counts issued one-time codes by trigger
	// (register|request_code).
	VerificationCodesIssued = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "menucard_verification_codes_issued_total",
			Help: "Total number of verification codes issued",
		},
		[]string{"trigger"},
	)

	// EmailSendFailures counts outbound verification emails that failed.
	EmailSendFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "menucard_email_send_failures_total",
			Help: "Total number of failed verification email deliveries",
		},
	)

	// APILatency measures HTTP request latencies.
	APILatency = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "menucard_api_latency_seconds",
			Help:    "API endpoint latency",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)
)
