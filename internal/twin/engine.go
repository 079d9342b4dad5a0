// internal/twin/engine.go
package twin

import (
    "math"

    "github.com/twinlabs/digitaltwin-backend/internal/model"
)

// CustomerResolver is the slice of the customer repository the engine needs.
type CustomerResolver interface {
    Resolve(ids []int) ([]model.Customer, error)
}

// Engine composes resolution, feature building, scoring and sampling into the
// predict contract. It holds only immutable shared state and is safe for
// concurrent simulation calls.
type Engine struct {
    Customers    CustomerResolver
    Opened       ProbabilityEstimator
    Clicked      ProbabilityEstimator
    Unsubscribed ProbabilityEstimator
    Converted    ProbabilityEstimator
}

// NewEngine wires the engine from a resolver and a loaded model bundle.
func NewEngine(customers CustomerResolver, bundle *Bundle) *Engine {
    return &Engine{
        Customers:    customers,
        Opened:       bundle.Estimator("opened"),
        Clicked:      bundle.Estimator("clicked"),
        Unsubscribed: bundle.Estimator("unsubscribed"),
        Converted:    bundle.Estimator("converted"),
    }
}

// Predict simulates one campaign against the given customers. Unknown IDs are
// dropped silently; an all-unknown set returns an empty slice and the API
// boundary decides whether that is a not-found. Each estimator is invoked once
// for the whole batch, and predictions preserve the resolved customer order.
func (e *Engine) Predict(customerIDs []int, campaign model.Campaign) ([]model.Prediction, error) {
    customers, err := e.Customers.Resolve(customerIDs)
    if err != nil {
        return nil, err
    }
    if len(customers) == 0 {
        return []model.Prediction{}, nil
    }

    features := make([]FeatureVector, len(customers))
    for i, c := range customers {
        features[i] = BuildFeatures(c, campaign)
    }

    openProbs := e.Opened.ScoreProbability(features)
    clickProbs := e.Clicked.ScoreProbability(features)
    unsubProbs := e.Unsubscribed.ScoreProbability(features)
    convProbs := e.Converted.ScoreProbability(features)

    // Reseeded per call: draws vary across customers within one simulation but
    // a replay of the same call reproduces the same booleans.
    rng := NewSimulationRand()

    predictions := make([]model.Prediction, len(customers))
    for i, c := range customers {
        predictions[i] = model.Prediction{
            CustomerID:        c.UserID,
            CustomerName:      c.Name,
            Age:               c.Age,
            IncomeBracket:     c.IncomeBracket,
            InterestSegment:   c.InterestSegment,
            WillOpen:          Bernoulli(openProbs[i], rng),
            WillClick:         Bernoulli(clickProbs[i], rng),
            WillUnsubscribe:   Bernoulli(unsubProbs[i], rng),
            WillConvert:       Bernoulli(convProbs[i], rng),
            ConfidenceOpen:    round(openProbs[i], 3),
            ConfidenceClick:   round(clickProbs[i], 3),
            ConfidenceUnsub:   round(unsubProbs[i], 3),
            ConfidenceConvert: round(convProbs[i], 3),
        }
    }
    return predictions, nil
}

// Summarize reduces a batch of predictions to population counts and rates.
// Pure function; an empty batch yields an all-zero summary.
func Summarize(predictions []model.Prediction) model.Summary {
    s := model.Summary{TotalCustomers: len(predictions)}
    for _, p := range predictions {
        if p.WillOpen {
            s.PredictedOpens++
        }
        if p.WillClick {
            s.PredictedClicks++
        }
        if p.WillUnsubscribe {
            s.PredictedUnsubscribes++
        }
        if p.WillConvert {
            s.PredictedConversions++
        }
    }
    if s.TotalCustomers > 0 {
        total := float64(s.TotalCustomers)
        s.OpenRate = round(float64(s.PredictedOpens)/total, 4)
        s.ClickRate = round(float64(s.PredictedClicks)/total, 4)
        s.UnsubscribeRate = round(float64(s.PredictedUnsubscribes)/total, 4)
        s.ConversionRate = round(float64(s.PredictedConversions)/total, 4)
    }
    return s
}

func round(v float64, places int) float64 {
    scale := math.Pow(10, float64(places))
    return math.Round(v*scale) / scale
}
