package input

import "github.com/vovakirdan/arcade-physics/internal/core"

// Controller turns device state into a movement vector and named action
// values. Unknown action names yield 0.
type Controller interface {
	Direction() core.Vec2
	Action(name string) float64
}

type bindings map[string]Binding

func newBindings(bs []Binding) bindings {
	m := make(bindings, len(bs))
	for _, b := range bs {
		m[b.Name] = b
	}
	return m
}

// KeyboardController reads digital keys: a bound button yields 1 or 0.
type KeyboardController struct {
	device   Device
	speed    float64
	bindings bindings
}

// NewKeyboardController creates a controller over a keyboard device.
func NewKeyboardController(device Device, speed float64, bs ...Binding) *KeyboardController {
	if len(bs) == 0 {
		bs = DefaultKeyboardBindings()
	}
	return &KeyboardController{device: device, speed: speed, bindings: newBindings(bs)}
}

// Action implements Controller.
func (c *KeyboardController) Action(name string) float64 {
	b, ok := c.bindings[name]
	if !ok || c.device == nil {
		return 0
	}
	if b.Kind == KindAxis {
		return transform(b, c.device.Axis(b.InputID))
	}
	if c.device.Button(b.InputID) {
		return 1
	}
	return 0
}

// Direction combines the four half-axis commands, scaled by speed.
func (c *KeyboardController) Direction() core.Vec2 {
	return core.V(
		c.Action(XAxisPos)-c.Action(XAxisNeg),
		c.Action(YAxisPos)-c.Action(YAxisNeg),
	).Scale(c.speed)
}

// JoystickController reads an analog device: axes pass through their
// transform and buttons report press amplitude when available.
type JoystickController struct {
	device   Device
	speed    float64
	bindings bindings
}

// NewJoystickController creates a controller over a joystick device.
func NewJoystickController(device Device, speed float64, bs ...Binding) *JoystickController {
	if len(bs) == 0 {
		bs = DefaultJoystickBindings(XBoxMapping, 0)
	}
	return &JoystickController{device: device, speed: speed, bindings: newBindings(bs)}
}

// Action implements Controller.
func (c *JoystickController) Action(name string) float64 {
	b, ok := c.bindings[name]
	if !ok || c.device == nil {
		return 0
	}
	if b.Kind == KindAxis {
		return transform(b, c.device.Axis(b.InputID))
	}
	if analog, ok := c.device.(AnalogDevice); ok {
		return analog.ButtonValue(b.InputID)
	}
	if c.device.Button(b.InputID) {
		return 1
	}
	return 0
}

// Direction reads the two stick axes, scaled by speed.
func (c *JoystickController) Direction() core.Vec2 {
	return core.V(c.Action(XAxis), c.Action(YAxis)).Scale(c.speed)
}

func transform(b Binding, v float64) float64 {
	if b.Transform != nil {
		return b.Transform(v)
	}
	return v
}
