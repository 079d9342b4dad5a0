// internal/metrics/metrics.go
package metrics

import (
    "github.com/prometheus/client_golang/prometheus"
    "github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus instruments for the simulation service.
type Metrics struct {
    SimulationsTotal   prometheus.Counter
    SimulationsEmpty   prometheus.Counter
    PredictionsTotal   prometheus.Counter
    SimulationDuration prometheus.Histogram
    SimulationsByType  *prometheus.CounterVec
}

// New creates and registers all metrics
func New() *Metrics {
    return &Metrics{
        SimulationsTotal: promauto.NewCounter(prometheus.CounterOpts{
            Name: "twin_simulations_total",
            Help: "Total number of campaign simulations run",
        }),
        SimulationsEmpty: promauto.NewCounter(prometheus.CounterOpts{
            Name: "twin_simulations_empty",
            Help: "Simulations where no requested customer resolved",
        }),
        PredictionsTotal: promauto.NewCounter(prometheus.CounterOpts{
            Name: "twin_predictions_total",
            Help: "Total per-customer predictions produced",
        }),
        SimulationDuration: promauto.NewHistogram(prometheus.HistogramOpts{
            Name:    "twin_simulation_duration_seconds",
            Help:    "Wall time of one simulation call",
            Buckets: prometheus.DefBuckets,
        }),
        SimulationsByType: promauto.NewCounterVec(
            prometheus.CounterOpts{
                Name: "twin_simulations_by_campaign_type",
                Help: "Simulations per campaign type",
            },
            []string{"campaign_type"},
        ),
    }
}
