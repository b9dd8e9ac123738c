// Package input maps named, device-agnostic actions onto keyboard and
// joystick state. Game logic reads controllers; frontends fill devices.
package input

import "github.com/vovakirdan/arcade-physics/internal/core"

// Device is the per-frame view of one physical input device.
type Device interface {
	// Axis returns the axis value in [-1, 1].
	Axis(id int) float64
	// Button reports whether the button is pressed.
	Button(id int) bool
}

// AnalogDevice reports press amplitude for buttons (triggers, pressure pads).
type AnalogDevice interface {
	Device
	ButtonValue(id int) float64
}

// DeviceProvider enumerates connected joysticks.
type DeviceProvider interface {
	Count() int
	Device(i int) Device
}

// FrameKeyboard reads the held keys of a frame that is refilled every tick.
type FrameKeyboard struct {
	Frame *core.InputFrame
}

// Axis implements Device.
func (k FrameKeyboard) Axis(id int) float64 { return k.Frame.Keyboard().Axis(id) }

// Button implements Device.
func (k FrameKeyboard) Button(id int) bool { return k.Frame.Keyboard().Button(id) }

// FramePad reads one gamepad of a frame that is refilled every tick.
type FramePad struct {
	Frame *core.InputFrame
	Index int
}

// Axis implements Device.
func (p FramePad) Axis(id int) float64 { return p.Frame.Pad(p.Index).Axis(id) }

// Button implements Device.
func (p FramePad) Button(id int) bool { return p.Frame.Pad(p.Index).Button(id) }

// ButtonValue implements AnalogDevice.
func (p FramePad) ButtonValue(id int) float64 { return p.Frame.Pad(p.Index).ButtonValue(id) }

// FrameDevices exposes the pads of a frame as a DeviceProvider.
type FrameDevices struct {
	Frame *core.InputFrame
}

// Count returns the number of connected pads.
func (d FrameDevices) Count() int { return len(d.Frame.Pads) }

// Device returns the i-th pad.
func (d FrameDevices) Device(i int) Device { return FramePad{Frame: d.Frame, Index: i} }
