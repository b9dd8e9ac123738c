package core

// Action represents a platform-level intent, abstracted from physical key presses.
// Movement is not an Action: it flows through input.Controller from held keys and pads.
type Action int

const (
	ActionNone    Action = iota
	ActionPause          // P - pause/unpause the simulation
	ActionRestart        // R - restart after game over
	ActionQuit           // Q, Ctrl+C - stop the loop
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Key is a device-neutral keyboard key id. Frontends translate their own
// key events into these ids; controllers bind to them.
type Key int

const (
	KeyUnknown Key = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyW
	KeyA
	KeyS
	KeyD
	KeySpace
	KeyEnter
	KeyEscape
	KeyQ
	KeyR
	KeyP
	KeyCount
)

// Pad is a snapshot of one gamepad for a single tick.
// Axes hold values in [-1, 1], Buttons hold press amplitudes in [0, 1].
type Pad struct {
	Axes    []float64
	Buttons []float64
}

// Axis returns the value of the given axis, or 0 if the pad has no such axis.
func (p Pad) Axis(id int) float64 {
	if id < 0 || id >= len(p.Axes) {
		return 0
	}
	return p.Axes[id]
}

// Button reports whether the given button is pressed.
func (p Pad) Button(id int) bool {
	return p.ButtonValue(id) > 0
}

// ButtonValue returns the press amplitude of the given button.
func (p Pad) ButtonValue(id int) float64 {
	if id < 0 || id >= len(p.Buttons) {
		return 0
	}
	return p.Buttons[id]
}

// Keys is the set of keyboard keys held during one tick.
type Keys map[Key]bool

// Axis always returns 0: keyboards have no analog axes.
func (k Keys) Axis(int) float64 {
	return 0
}

// Button reports whether the key with the given id is held.
func (k Keys) Button(id int) bool {
	return k[Key(id)]
}

// InputFrame is the input state for a single simulation tick: platform
// actions, held keys and connected gamepads.
type InputFrame struct {
	Actions map[Action]bool
	Held    Keys
	Pads    []Pad
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
		Held:    make(Keys),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	return f.Actions[a]
}

// Press marks a key as held for this frame.
func (f *InputFrame) Press(k Key) {
	if f.Held == nil {
		f.Held = make(Keys)
	}
	f.Held[k] = true
}

// Keyboard returns the held-key device for this frame.
func (f InputFrame) Keyboard() Keys {
	if f.Held == nil {
		return Keys{}
	}
	return f.Held
}

// Pad returns the i-th gamepad, or an empty pad if it is not connected.
func (f InputFrame) Pad(i int) Pad {
	if i < 0 || i >= len(f.Pads) {
		return Pad{}
	}
	return f.Pads[i]
}

// Clear resets actions, keys and pads for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	for k := range f.Held {
		delete(f.Held, k)
	}
	f.Pads = f.Pads[:0]
}

// Clone creates a deep copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	for k, v := range f.Held {
		clone.Held[k] = v
	}
	for _, p := range f.Pads {
		clone.Pads = append(clone.Pads, Pad{
			Axes:    append([]float64(nil), p.Axes...),
			Buttons: append([]float64(nil), p.Buttons...),
		})
	}
	return clone
}
