package input

import (
	"math"

	"github.com/vovakirdan/arcade-physics/internal/core"
)

// Kind distinguishes axis bindings from button bindings.
type Kind int

const (
	KindButton Kind = iota
	KindAxis
)

func (k Kind) String() string {
	if k == KindAxis {
		return "axis"
	}
	return "button"
}

// Command names understood by the built-in controllers.
const (
	XAxisPos = "x_axis_pos"
	XAxisNeg = "x_axis_neg"
	YAxisPos = "y_axis_pos"
	YAxisNeg = "y_axis_neg"
	XAxis    = "x_axis"
	YAxis    = "y_axis"
	Quit     = "quit"
	Reset    = "reset"
)

// Binding ties an action name to a device input.
type Binding struct {
	Name      string
	InputID   int
	Kind      Kind
	Transform func(float64) float64 // applied to axis values, optional
}

// Button binds name to a button id.
func Button(name string, id int) Binding {
	return Binding{Name: name, InputID: id, Kind: KindButton}
}

// Axis binds name to an axis id with an optional transform.
func Axis(name string, id int, transform func(float64) float64) Binding {
	return Binding{Name: name, InputID: id, Kind: KindAxis, Transform: transform}
}

// Deadzone zeroes axis values whose magnitude is below threshold.
func Deadzone(threshold float64) func(float64) float64 {
	return func(v float64) float64 {
		if math.Abs(v) < threshold {
			return 0
		}
		return v
	}
}

// DefaultKeyboardBindings binds the arrow keys, Escape to quit and Space to reset.
func DefaultKeyboardBindings() []Binding {
	return []Binding{
		Button(XAxisPos, int(core.KeyRight)),
		Button(XAxisNeg, int(core.KeyLeft)),
		Button(YAxisPos, int(core.KeyDown)),
		Button(YAxisNeg, int(core.KeyUp)),
		Button(Quit, int(core.KeyEscape)),
		Button(Reset, int(core.KeySpace)),
	}
}

// WASDBindings binds WASD for a second local player sharing the keyboard.
func WASDBindings() []Binding {
	return []Binding{
		Button(XAxisPos, int(core.KeyD)),
		Button(XAxisNeg, int(core.KeyA)),
		Button(YAxisPos, int(core.KeyS)),
		Button(YAxisNeg, int(core.KeyW)),
	}
}

// DefaultJoystickBindings binds the left stick through a deadzone, Start to
// quit and A to reset, using the given mapping.
func DefaultJoystickBindings(m Mapping, deadzone float64) []Binding {
	dz := Deadzone(deadzone)
	return []Binding{
		Axis(XAxis, m.XAxis, dz),
		Axis(YAxis, m.YAxis, dz),
		Button(Quit, m.StartButton),
		Button(Reset, m.AButton),
	}
}
