// internal/twin/bundle.go
package twin

import (
    "encoding/json"
    "fmt"
    "os"
)

// Outcome keys inside the persisted bundle, in scoring order.
var Outcomes = []string{"opened", "clicked", "unsubscribed", "converted"}

// Bundle is the persisted artifact produced by cmd/trainer: the shared encoder
// vocabulary plus one trained model per outcome. Loaded once at startup and
// immutable afterward; scoring is stateless so concurrent use is safe.
type Bundle struct {
    Encoder Encoder                   `json:"encoder"`
    Models  map[string]*LogisticModel `json:"models"`
}

// LoadBundle reads and validates the bundle. Any failure here is fatal at
// startup, never a per-request error.
func LoadBundle(path string) (*Bundle, error) {
    data, err := os.ReadFile(path)
    if err != nil {
        return nil, fmt.Errorf("failed to load model bundle: %w", err)
    }

    var b Bundle
    if err := json.Unmarshal(data, &b); err != nil {
        return nil, fmt.Errorf("failed to parse model bundle %s: %w", path, err)
    }

    for _, outcome := range Outcomes {
        m, ok := b.Models[outcome]
        if !ok || m == nil {
            return nil, fmt.Errorf("model bundle %s missing model for outcome %q", path, outcome)
        }
        if err := m.validate(&b.Encoder); err != nil {
            return nil, fmt.Errorf("model for outcome %q invalid: %w", outcome, err)
        }
    }
    return &b, nil
}

// Estimator returns the model for one outcome key.
func (b *Bundle) Estimator(outcome string) ProbabilityEstimator {
    return b.Models[outcome]
}

// Save writes the bundle to disk. Used by cmd/trainer.
func (b *Bundle) Save(path string) error {
    data, err := json.MarshalIndent(b, "", "  ")
    if err != nil {
        return err
    }
    return os.WriteFile(path, data, 0o644)
}
