// internal/twin/estimator.go
package twin

import (
    "fmt"
    "math"
)

// ProbabilityEstimator scores a batch of feature vectors into probabilities in
// [0,1], one per input, order-preserving. The engine treats estimators as
// black boxes; any calibrated binary model satisfying this contract works.
type ProbabilityEstimator interface {
    ScoreProbability(features []FeatureVector) []float64
}

// LogisticModel is a logistic regression over the encoded feature vector.
// Weights are produced by cmd/trainer and loaded from the model bundle.
type LogisticModel struct {
    Weights []float64 `json:"weights"`
    Bias    float64   `json:"bias"`

    enc *Encoder
}

func (m *LogisticModel) ScoreProbability(features []FeatureVector) []float64 {
    probs := make([]float64, len(features))
    for i, fv := range features {
        probs[i] = Sigmoid(m.logit(m.enc.Encode(fv)))
    }
    return probs
}

func (m *LogisticModel) logit(x []float64) float64 {
    z := m.Bias
    for i, w := range m.Weights {
        z += w * x[i]
    }
    return z
}

// Sigmoid maps a logit to (0,1).
func Sigmoid(z float64) float64 {
    return 1.0 / (1.0 + math.Exp(-z))
}

func (m *LogisticModel) validate(enc *Encoder) error {
    if len(m.Weights) != enc.Width() {
        return fmt.Errorf("model has %d weights, encoder width is %d", len(m.Weights), enc.Width())
    }
    m.enc = enc
    return nil
}

var _ ProbabilityEstimator = (*LogisticModel)(nil)
