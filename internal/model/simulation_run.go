// internal/model/simulation_run.go
package model

import "time"

// SimulationRun is the audit record of one completed simulation. Only the
// run-level summary is recorded; per-customer predictions stay transient.
type SimulationRun struct {
    RunID                 string    `json:"run_id"`
    CampaignType          string    `json:"campaign_type"`
    SubjectLine           string    `json:"subject_line"`
    SendHour              int       `json:"send_hour"`
    RequestedCustomers    int       `json:"requested_customers"`
    TotalCustomers        int       `json:"total_customers"`
    PredictedOpens        int       `json:"predicted_opens"`
    PredictedClicks       int       `json:"predicted_clicks"`
    PredictedUnsubscribes int       `json:"predicted_unsubscribes"`
    PredictedConversions  int       `json:"predicted_conversions"`
    OpenRate              float64   `json:"open_rate"`
    ClickRate             float64   `json:"click_rate"`
    UnsubscribeRate       float64   `json:"unsubscribe_rate"`
    ConversionRate        float64   `json:"conversion_rate"`
    CreatedAt             time.Time `json:"created_at"`
}
