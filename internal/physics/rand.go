package physics

import "math/rand"

// NormalSource supplies standard normal draws (mean 0, std 1).
// *rand.Rand satisfies it.
type NormalSource interface {
	NormFloat64() float64
}

// NewSource returns a seeded source for deterministic kinetic friction draws.
func NewSource(seed int64) NormalSource {
	return rand.New(rand.NewSource(seed))
}

// FixedSource always returns the same draw. Useful to pin thresholds.
type FixedSource float64

// NormFloat64 returns the fixed value.
func (f FixedSource) NormFloat64() float64 {
	return float64(f)
}
