// internal/model/prediction.go
package model

// Prediction is the simulated response of one customer to one campaign.
// Booleans come from Bernoulli sampling, confidences are the raw model
// probabilities rounded to 3 decimal places. Predictions are transient and
// never persisted.
type Prediction struct {
    CustomerID        int     `json:"customer_id"`
    CustomerName      string  `json:"customer_name"`
    Age               int     `json:"age"`
    IncomeBracket     string  `json:"income_bracket"`
    InterestSegment   string  `json:"interest_segment"`
    WillOpen          bool    `json:"will_open"`
    WillClick         bool    `json:"will_click"`
    WillUnsubscribe   bool    `json:"will_unsubscribe"`
    WillConvert       bool    `json:"will_convert"`
    ConfidenceOpen    float64 `json:"confidence_open"`
    ConfidenceClick   float64 `json:"confidence_click"`
    ConfidenceUnsub   float64 `json:"confidence_unsub"`
    ConfidenceConvert float64 `json:"confidence_convert"`
}

// Summary aggregates a batch of predictions into population-level counts and
// rates. Rates are rounded to 4 decimal places and defined as 0 for an empty
// batch.
type Summary struct {
    TotalCustomers         int     `json:"total_customers"`
    PredictedOpens         int     `json:"predicted_opens"`
    PredictedClicks        int     `json:"predicted_clicks"`
    PredictedUnsubscribes  int     `json:"predicted_unsubscribes"`
    PredictedConversions   int     `json:"predicted_conversions"`
    OpenRate               float64 `json:"open_rate"`
    ClickRate              float64 `json:"click_rate"`
    UnsubscribeRate        float64 `json:"unsubscribe_rate"`
    ConversionRate         float64 `json:"conversion_rate"`
}
