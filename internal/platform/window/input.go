package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/arcade-physics/internal/core"
)

// keyTable maps ebiten keys to device-neutral key ids.
var keyTable = map[ebiten.Key]core.Key{
	ebiten.KeyArrowUp:    core.KeyUp,
	ebiten.KeyArrowDown:  core.KeyDown,
	ebiten.KeyArrowLeft:  core.KeyLeft,
	ebiten.KeyArrowRight: core.KeyRight,
	ebiten.KeyW:          core.KeyW,
	ebiten.KeyA:          core.KeyA,
	ebiten.KeyS:          core.KeyS,
	ebiten.KeyD:          core.KeyD,
	ebiten.KeySpace:      core.KeySpace,
	ebiten.KeyEnter:      core.KeyEnter,
	ebiten.KeyEscape:     core.KeyEscape,
}

// Standard gamepads are reported in XInput order so that the xbox
// mapping's axis and button ids apply unchanged.
var (
	padButtons = []ebiten.StandardGamepadButton{
		ebiten.StandardGamepadButtonRightBottom,   // A
		ebiten.StandardGamepadButtonRightRight,    // B
		ebiten.StandardGamepadButtonRightLeft,     // X
		ebiten.StandardGamepadButtonRightTop,      // Y
		ebiten.StandardGamepadButtonFrontTopLeft,  // LB
		ebiten.StandardGamepadButtonFrontTopRight, // RB
		ebiten.StandardGamepadButtonCenterLeft,    // Select
		ebiten.StandardGamepadButtonCenterRight,   // Start
		ebiten.StandardGamepadButtonCenterCenter,  // Home
		ebiten.StandardGamepadButtonLeftStick,     // L3
		ebiten.StandardGamepadButtonRightStick,    // R3
	}
	stickAxes = [...]ebiten.StandardGamepadAxis{
		ebiten.StandardGamepadAxisLeftStickHorizontal,
		ebiten.StandardGamepadAxisLeftStickVertical,
		ebiten.StandardGamepadAxisRightStickHorizontal,
		ebiten.StandardGamepadAxisRightStickVertical,
	}
)

// pollKeys marks every held key and the one-shot platform actions.
func pollKeys(frame *core.InputFrame) {
	for ek, k := range keyTable {
		if ebiten.IsKeyPressed(ek) {
			frame.Press(k)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		frame.Set(core.ActionPause)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		frame.Set(core.ActionRestart)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		frame.Set(core.ActionQuit)
	}
}

// pollPads appends one core.Pad per connected standard gamepad.
func pollPads(frame *core.InputFrame, ids []ebiten.GamepadID) []ebiten.GamepadID {
	ids = ebiten.AppendGamepadIDs(ids[:0])
	for _, id := range ids {
		if !ebiten.IsStandardGamepadLayoutAvailable(id) {
			continue
		}
		frame.Pads = append(frame.Pads, readPad(id))
	}
	return ids
}

func readPad(id ebiten.GamepadID) core.Pad {
	axis := func(a ebiten.StandardGamepadAxis) float64 {
		return ebiten.StandardGamepadAxisValue(id, a)
	}
	button := func(b ebiten.StandardGamepadButton) float64 {
		return ebiten.StandardGamepadButtonValue(id, b)
	}
	dpad := func(neg, pos ebiten.StandardGamepadButton) float64 {
		return button(pos) - button(neg)
	}

	pad := core.Pad{
		Axes: []float64{
			axis(stickAxes[0]),
			axis(stickAxes[1]),
			button(ebiten.StandardGamepadButtonFrontBottomLeft),
			axis(stickAxes[2]),
			axis(stickAxes[3]),
			button(ebiten.StandardGamepadButtonFrontBottomRight),
			dpad(ebiten.StandardGamepadButtonLeftLeft, ebiten.StandardGamepadButtonLeftRight),
			dpad(ebiten.StandardGamepadButtonLeftTop, ebiten.StandardGamepadButtonLeftBottom),
		},
		Buttons: make([]float64, len(padButtons)),
	}
	for i, b := range padButtons {
		pad.Buttons[i] = button(b)
	}
	return pad
}
