// internal/twin/sampler.go
package twin

import "math/rand"

// SimulationSeed reseeds the sampler once per simulation call so a replayed
// call with the same inputs in the same order reproduces the same draws.
const SimulationSeed = 42

// Bernoulli draws one boolean with the model's own probability as the success
// rate. There is deliberately no fixed 0.5 threshold: opens run near 44% but
// conversions near 2%, and thresholding at 0.5 would predict "never" for the
// rare outcomes.
//
// Each of the four outcomes draws independently per customer, so a predicted
// click without a predicted open can occur. That matches the reference
// behavior and is left as-is on purpose.
func Bernoulli(p float64, rng *rand.Rand) bool {
    return rng.Float64() < p
}

// NewSimulationRand returns the per-call random source.
func NewSimulationRand() *rand.Rand {
    return rand.New(rand.NewSource(SimulationSeed))
}
