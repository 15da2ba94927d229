package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	outcomeAcked     = "acked"
	outcomeDropped   = "dropped"
	outcomeDuplicate = "duplicate"
	outcomeRetry     = "retry"
)

var (
	exportRequestsCounter = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "catalog",
			Subsystem: "export",
			Name:      "requests_total",
			Help:      "Export requests submitted to the queue.",
		},
		[]string{"status"}, // accepted, invalid, unavailable
	)

	exportJobsCounter = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "catalog",
			Subsystem: "export",
			Name:      "jobs_total",
			Help:      "Export jobs processed by outcome.",
		},
		[]string{"outcome"},
	)

	exportJobDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "catalog",
			Subsystem: "export",
			Name:      "job_duration_seconds",
			Help:      "Duration of export jobs from receive to outcome.",
			Buckets:   prometheus.DefBuckets,
		},
	)

	exportedRowsCounter = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "catalog",
			Subsystem: "export",
			Name:      "rows_total",
			Help:      "Catalog rows written to delivered exports.",
		},
	)

	notificationsCounter = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "catalog",
			Name:      "notifications_total",
			Help:      "Best-effort catalog announcement mails by status.",
		},
		[]string{"status"},
	)
)
