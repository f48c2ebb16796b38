package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog/log"
)

var (
	LoginSuccessTotal    prometheus.Counter
	LoginFailureTotal    prometheus.Counter
	SessionsCreatedTotal prometheus.Counter
	SessionsClosedTotal  prometheus.Counter
	ActiveSessionsGauge  prometheus.Gauge
)

// InitCustomMetrics initializes and registers the application metrics.
// It should be called once at startup.
func InitCustomMetrics(reg prometheus.Registerer) {
	LoginSuccessTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "dg_logins_success_total",
		Help: "Total number of successful logins.",
	})
	LoginFailureTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "dg_logins_failure_total",
		Help: "Total number of failed logins.",
	})
	SessionsCreatedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "dg_sessions_created_total",
		Help: "Total number of sessions created.",
	})
	SessionsClosedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "dg_sessions_closed_total",
		Help: "Total number of sessions whose logout time was recorded.",
	})
	ActiveSessionsGauge = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "dg_active_sessions_gauge",
		Help: "Current number of open user sessions.",
	})

	if reg == nil {
		log.Error().Msg("Prometheus registry is nil, cannot register custom metrics.")
		return
	}

	for _, c := range []prometheus.Collector{
		LoginSuccessTotal,
		LoginFailureTotal,
		SessionsCreatedTotal,
		SessionsClosedTotal,
		ActiveSessionsGauge,
	} {
		if err := reg.Register(c); err != nil {
			log.Warn().Err(err).Msg("Failed to register metric")
		}
	}
	log.Info().Msg("Custom Prometheus metrics registered.")
}
