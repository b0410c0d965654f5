// Package utils holds helpers shared by scenes: input polling, platform
// detection and easing.
package utils

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Input is the per-frame view of player input used by menus and scenes.
// Scenes depend on this interface so tests can drive them without a window.
type Input interface {
	// PausePressed reports Escape or the controller start/options buttons
	// (joystick buttons 7 and 9).
	PausePressed() bool
	// CancelPressed reports Escape, Backspace or the controller back button.
	CancelPressed() bool
	// SubmitPressed reports Enter, Space or the controller confirm button.
	SubmitPressed() bool
	// NavigateVertical returns -1 for up, +1 for down, 0 otherwise.
	NavigateVertical() int
	// NavigateHorizontal returns -1 for left, +1 for right, 0 otherwise.
	NavigateHorizontal() int
	// AnyPressed reports whether any key, button or touch started this frame.
	AnyPressed() bool
	// PointerJustPressed reports a click or tap started this frame and its position.
	PointerJustPressed() (bool, int, int)
	// Movement returns the held movement direction, each axis in [-1, 1].
	Movement() (dx, dy float64)
}

// Controller button indices that toggle pause: Xbox start / PS options on
// common drivers, and the alternate PS options mapping.
const (
	PauseButtonPrimary   = ebiten.GamepadButton7
	PauseButtonAlternate = ebiten.GamepadButton9
)

const stickDeadZone = 0.25

// PauseTouchSize is the side of the square top-right touch area that acts
// as the pause button on mobile.
const PauseTouchSize = 64

// PauseTouchZone returns the pause touch area for a screen screenW wide.
func PauseTouchZone(screenW int) image.Rectangle {
	return image.Rect(screenW-PauseTouchSize, 0, screenW, PauseTouchSize)
}

// EbitenInput reads input from Ebitengine. It must be used on the game
// goroutine, during Update.
type EbitenInput struct {
	gamepads []ebiten.GamepadID
	touches  []ebiten.TouchID
	// pauseZone, when not empty, is a touch area that counts as the pause
	// signal. It is set on mobile, where there is no Escape key.
	pauseZone image.Rectangle
}

// NewEbitenInput returns an Input backed by Ebitengine for a logical screen
// screenW wide.
func NewEbitenInput(screenW int) *EbitenInput {
	in := &EbitenInput{}
	if IsMobile() {
		in.pauseZone = PauseTouchZone(screenW)
	}
	return in
}

func (in *EbitenInput) connectedGamepads() []ebiten.GamepadID {
	in.gamepads = ebiten.AppendGamepadIDs(in.gamepads[:0])
	return in.gamepads
}

// PausePressed implements Input.
func (in *EbitenInput) PausePressed() bool {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return true
	}
	if !in.pauseZone.Empty() {
		in.touches = inpututil.AppendJustPressedTouchIDs(in.touches[:0])
		for _, id := range in.touches {
			if image.Pt(ebiten.TouchPosition(id)).In(in.pauseZone) {
				return true
			}
		}
	}
	for _, id := range in.connectedGamepads() {
		if inpututil.IsGamepadButtonJustPressed(id, PauseButtonPrimary) ||
			inpututil.IsGamepadButtonJustPressed(id, PauseButtonAlternate) {
			return true
		}
	}
	return false
}

// CancelPressed implements Input.
func (in *EbitenInput) CancelPressed() bool {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyBackspace) {
		return true
	}
	for _, id := range in.connectedGamepads() {
		if ebiten.IsStandardGamepadLayoutAvailable(id) &&
			inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonRightRight) {
			return true
		}
	}
	return false
}

// SubmitPressed implements Input.
func (in *EbitenInput) SubmitPressed() bool {
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		return true
	}
	for _, id := range in.connectedGamepads() {
		if ebiten.IsStandardGamepadLayoutAvailable(id) &&
			inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonRightBottom) {
			return true
		}
	}
	return false
}

// NavigateVertical implements Input.
func (in *EbitenInput) NavigateVertical() int {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowUp), inpututil.IsKeyJustPressed(ebiten.KeyW):
		return -1
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowDown), inpututil.IsKeyJustPressed(ebiten.KeyS):
		return 1
	}
	for _, id := range in.connectedGamepads() {
		if !ebiten.IsStandardGamepadLayoutAvailable(id) {
			continue
		}
		if inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonLeftTop) {
			return -1
		}
		if inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonLeftBottom) {
			return 1
		}
	}
	return 0
}

// NavigateHorizontal implements Input.
func (in *EbitenInput) NavigateHorizontal() int {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft), inpututil.IsKeyJustPressed(ebiten.KeyA):
		return -1
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowRight), inpututil.IsKeyJustPressed(ebiten.KeyD):
		return 1
	}
	for _, id := range in.connectedGamepads() {
		if !ebiten.IsStandardGamepadLayoutAvailable(id) {
			continue
		}
		if inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonLeftLeft) {
			return -1
		}
		if inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonLeftRight) {
			return 1
		}
	}
	return 0
}

// AnyPressed implements Input.
func (in *EbitenInput) AnyPressed() bool {
	if len(inpututil.AppendJustPressedKeys(nil)) > 0 {
		return true
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) ||
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) ||
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonMiddle) {
		return true
	}
	if len(inpututil.AppendJustPressedTouchIDs(nil)) > 0 {
		return true
	}
	for _, id := range in.connectedGamepads() {
		if len(inpututil.AppendJustPressedGamepadButtons(id, nil)) > 0 {
			return true
		}
	}
	return false
}

// PointerJustPressed implements Input. Touch takes precedence over the mouse.
func (in *EbitenInput) PointerJustPressed() (bool, int, int) {
	touchIDs := inpututil.AppendJustPressedTouchIDs(nil)
	if len(touchIDs) > 0 {
		x, y := ebiten.TouchPosition(touchIDs[0])
		return true, x, y
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		return true, x, y
	}
	return false, 0, 0
}

// Movement implements Input.
func (in *EbitenInput) Movement() (dx, dy float64) {
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA) {
		dx--
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD) {
		dx++
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) || ebiten.IsKeyPressed(ebiten.KeyW) {
		dy--
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) || ebiten.IsKeyPressed(ebiten.KeyS) {
		dy++
	}
	if dx != 0 || dy != 0 {
		return dx, dy
	}

	for _, id := range in.connectedGamepads() {
		if !ebiten.IsStandardGamepadLayoutAvailable(id) {
			continue
		}
		sx := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
		sy := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickVertical)
		if sx*sx+sy*sy > stickDeadZone*stickDeadZone {
			return sx, sy
		}
	}
	return 0, 0
}
