package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ReportsExported = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "assessment_reports_exported_total",
			Help: "Total number of assessment reports exported",
		},
		[]string{"format"},
	)

	ReportExportsFailed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "assessment_report_exports_failed_total",
			Help: "Total number of failed assessment report exports",
		},
		[]string{"format"},
	)

	ActiveSessions = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "assessment_sessions_active",
			Help: "Number of assessment forms held in memory",
		},
	)

	SessionsEvicted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "assessment_sessions_evicted_total",
			Help: "Total number of idle assessment forms evicted",
		},
	)
)
