package input

import (
	"math"

	"github.com/vovakirdan/arcade-physics/internal/core"
)

// Combined lets several devices drive one player: directions add up and
// each action reports the value with the largest magnitude, sign kept.
type Combined []Controller

// Combine returns a controller over all non-nil cs.
func Combine(cs ...Controller) Combined {
	out := make(Combined, 0, len(cs))
	for _, c := range cs {
		if c != nil {
			out = append(out, c)
		}
	}
	return out
}

// Direction implements Controller.
func (c Combined) Direction() core.Vec2 {
	var d core.Vec2
	for _, ctrl := range c {
		d = d.Add(ctrl.Direction())
	}
	return d
}

// Action implements Controller.
func (c Combined) Action(name string) float64 {
	var best float64
	for _, ctrl := range c {
		if v := ctrl.Action(name); math.Abs(v) > math.Abs(best) {
			best = v
		}
	}
	return best
}
