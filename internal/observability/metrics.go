// Package observability provides metrics and tracing for the application.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RedisErrors counts Redis command errors by operation type.
	RedisErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "quill_redis_errors_total",
		Help: "Total number of Redis errors by operation type",
	}, []string{"operation"})

	// LoginAttempts counts login attempts by outcome (success, failure).
	LoginAttempts = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "quill_login_attempts_total",
		Help: "Total number of login attempts by outcome",
	}, []string{"outcome"})

	// SessionsEstablished counts sessions created by flow (login, register).
	SessionsEstablished = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "quill_sessions_established_total",
		Help: "Total number of sessions established by flow",
	}, []string{"flow"})
)
