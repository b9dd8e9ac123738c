package entity

import (
	"math/rand"

	"github.com/vovakirdan/arcade-physics/internal/core"
)

// BounceX reflects the x component and scales the result by factor.
func BounceX(v core.Vec2, factor float64) core.Vec2 {
	return core.V(-v.X, v.Y).Scale(factor)
}

// BounceY reflects the y component and scales the result by factor.
func BounceY(v core.Vec2, factor float64) core.Vec2 {
	return core.V(v.X, -v.Y).Scale(factor)
}

// StopX zeroes the x component.
func StopX(v core.Vec2) core.Vec2 { return core.V(0, v.Y) }

// StopY zeroes the y component.
func StopY(v core.Vec2) core.Vec2 { return core.V(v.X, 0) }

// WrapX moves a position that left [min, max] on x to the opposite edge.
func WrapX(p core.Vec2, min, max float64) core.Vec2 {
	p.X = wrap(p.X, min, max)
	return p
}

// WrapY moves a position that left [min, max] on y to the opposite edge.
func WrapY(p core.Vec2, min, max float64) core.Vec2 {
	p.Y = wrap(p.Y, min, max)
	return p
}

func wrap(v, min, max float64) float64 {
	switch {
	case v > max:
		return min
	case v < min:
		return max
	}
	return v
}

// RandomVector returns a vector whose components are uniform in [0, mag),
// each with a random sign unless nonNegative is set.
func RandomVector(rng *rand.Rand, mag float64, nonNegative bool) core.Vec2 {
	sign := func() float64 {
		if nonNegative || rng.Intn(2) == 0 {
			return 1
		}
		return -1
	}
	x := rng.Float64() * sign() * mag
	y := rng.Float64() * sign() * mag
	return core.V(x, y)
}
