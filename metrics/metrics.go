// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package metrics

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	once sync.Once

	bonusChecks = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bonus_checks_total",
			Help: "Bonus code checks by outcome status.",
		},
		[]string{"status"},
	)

	usersAdded = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "users_added_total",
			Help: "Admin user registrations; created=false means the phone already existed.",
		},
		[]string{"created"},
	)

	requestLatencyMs = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_latency_ms",
			Help:    "HTTP request latency distribution in milliseconds.",
			Buckets: []float64{1, 2, 5, 10, 25, 50, 100, 250, 500, 1000},
		},
		[]string{"method", "path", "code"},
	)
)

// MustRegister registers collectors with the default registry (idempotent).
func MustRegister() {
	once.Do(func() {
		prometheus.MustRegister(bonusChecks, usersAdded, requestLatencyMs)
	})
}

// Handler serves the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}

func IncBonusCheck(status string) {
	bonusChecks.WithLabelValues(status).Inc()
}

func IncUserAdded(created bool) {
	usersAdded.WithLabelValues(strconv.FormatBool(created)).Inc()
}

func ObserveRequest(method, path string, code int, d time.Duration) {
	requestLatencyMs.WithLabelValues(method, path, strconv.Itoa(code)).
		Observe(float64(d.Microseconds()) / 1000)
}
