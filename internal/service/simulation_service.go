// internal/service/simulation_service.go
package service

import (
    "log"
    "time"

    "github.com/google/uuid"

    "github.com/twinlabs/digitaltwin-backend/internal/metrics"
    "github.com/twinlabs/digitaltwin-backend/internal/model"
    "github.com/twinlabs/digitaltwin-backend/internal/queue"
    "github.com/twinlabs/digitaltwin-backend/internal/twin"
)

type SimulationService struct {
    Engine  *twin.Engine
    Queue   queue.Queue
    Metrics *metrics.Metrics
}

// SimulationResult is what one simulation call hands back to the API layer.
type SimulationResult struct {
    RunID       string             `json:"run_id"`
    Summary     model.Summary      `json:"summary"`
    Predictions []model.Prediction `json:"predictions"`
}

// Simulate runs the prediction engine over the requested customers and
// publishes a run-level audit record. An empty prediction set is returned
// as-is; the controller decides whether that surfaces as not-found.
func (s *SimulationService) Simulate(customerIDs []int, campaign model.Campaign) (*SimulationResult, error) {
    start := time.Now()

    predictions, err := s.Engine.Predict(customerIDs, campaign)
    if err != nil {
        return nil, err
    }
    summary := twin.Summarize(predictions)

    result := &SimulationResult{
        RunID:       uuid.NewString(),
        Summary:     summary,
        Predictions: predictions,
    }

    if s.Metrics != nil {
        s.Metrics.SimulationsTotal.Inc()
        s.Metrics.SimulationsByType.WithLabelValues(campaign.Type).Inc()
        s.Metrics.PredictionsTotal.Add(float64(len(predictions)))
        s.Metrics.SimulationDuration.Observe(time.Since(start).Seconds())
        if len(predictions) == 0 {
            s.Metrics.SimulationsEmpty.Inc()
        }
    }

    if s.Queue != nil && len(predictions) > 0 {
        run := model.SimulationRun{
            RunID:                 result.RunID,
            CampaignType:          campaign.Type,
            SubjectLine:           campaign.SubjectLine,
            SendHour:              campaign.SendHour,
            RequestedCustomers:    len(customerIDs),
            TotalCustomers:        summary.TotalCustomers,
            PredictedOpens:        summary.PredictedOpens,
            PredictedClicks:       summary.PredictedClicks,
            PredictedUnsubscribes: summary.PredictedUnsubscribes,
            PredictedConversions:  summary.PredictedConversions,
            OpenRate:              summary.OpenRate,
            ClickRate:             summary.ClickRate,
            UnsubscribeRate:       summary.UnsubscribeRate,
            ConversionRate:        summary.ConversionRate,
            CreatedAt:             time.Now().UTC(),
        }
        if err := s.Queue.Publish(queue.SimulationRunsTopic, run); err != nil {
            // Audit delivery is best-effort, the simulation itself succeeded.
            log.Println("⚠️ failed to publish simulation audit record:", err)
        }
    }

    return result, nil
}
