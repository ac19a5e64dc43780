package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	namespace = "hashsvc"
)

var (
	hashDurationBuckets = []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10, 30}

	// Hashing
	HashDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "hash_duration_seconds",
		Help:      "Tempo gasto na função de derivação de chave.",
		Buckets:   hashDurationBuckets,
	}, []string{"algorithm"})

	HashRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "hash_requests_total",
		Help:      "Requisições de hash por família (argon2, scrypt) e resultado (ok, validation, compute).",
	}, []string{"family", "outcome"})

	// HTTP
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "Requisições HTTP atendidas.",
	}, []string{"route", "method", "status"})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "Tempo para atender requisições HTTP.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"route", "method"})
)
