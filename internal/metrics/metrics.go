package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestDuration tracks HTTP request latency by method, path and status.
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "giftkiosk_http_request_duration_seconds",
			Help: "Duration of HTTP requests in seconds",
			Buckets: []float64{
				0.001, // 1ms
				0.005, // 5ms
				0.01,  // 10ms
				0.025, // 25ms
				0.05,  // 50ms
				0.1,   // 100ms
				0.25,  // 250ms
				0.5,   // 500ms
				1.0,   // 1s
			},
		},
		[]string{"method", "path", "status"},
	)

	// CardSubmissions counts customer code submissions by outcome
	// (pending/accepted/declined/invalid_format/error).
	CardSubmissions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "giftkiosk_card_submissions_total",
			Help: "Total gift-card code submissions by outcome",
		},
		[]string{"result"},
	)

	// AdminLogins counts admin login attempts by outcome
	// (success/bad_request/unauthorized).
	AdminLogins = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "giftkiosk_admin_logins_total",
			Help: "Total admin login attempts by outcome",
		},
		[]string{"result"},
	)
)
