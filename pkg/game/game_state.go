package game

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

// CursorController applies a cursor mode to the host window.
type CursorController interface {
	SetCursorMode(mode ebiten.CursorModeType)
}

// EbitenCursor forwards cursor modes to Ebitengine.
type EbitenCursor struct{}

// SetCursorMode implements CursorController.
func (EbitenCursor) SetCursorMode(mode ebiten.CursorModeType) {
	ebiten.SetCursorMode(mode)
}

// GameState holds the session-wide state shared by scenes: the simulation
// time multiplier, the cursor lock and the quit request.
//
// It is created once by the app and injected into the scenes that need it.
type GameState struct {
	timeScale     float64
	cursor        CursorController
	cursorLocked  bool
	quitRequested bool
}

// NewGameState creates a running state (time scale 1, cursor unlocked).
// A nil cursor controller makes cursor changes bookkeeping only.
func NewGameState(cursor CursorController) *GameState {
	return &GameState{
		timeScale: 1,
		cursor:    cursor,
	}
}

// TimeScale returns the simulation time multiplier (0 while paused).
func (gs *GameState) TimeScale() float64 {
	return gs.timeScale
}

// SetTimeScale sets the simulation time multiplier.
func (gs *GameState) SetTimeScale(scale float64) {
	gs.timeScale = scale
}

// ScaledDelta converts an unscaled frame delta to simulation time.
func (gs *GameState) ScaledDelta(deltaTime float64) float64 {
	return deltaTime * gs.timeScale
}

// CursorLocked reports whether the pointer is captured and hidden.
func (gs *GameState) CursorLocked() bool {
	return gs.cursorLocked
}

// SetCursorLocked captures and hides the pointer (true) or releases and
// shows it (false).
func (gs *GameState) SetCursorLocked(locked bool) {
	gs.cursorLocked = locked
	if gs.cursor == nil {
		return
	}
	if locked {
		gs.cursor.SetCursorMode(ebiten.CursorModeCaptured)
	} else {
		gs.cursor.SetCursorMode(ebiten.CursorModeVisible)
	}
}

// RequestQuit asks the app to terminate at the end of the current frame.
func (gs *GameState) RequestQuit() {
	if !gs.quitRequested {
		log.Printf("Quitting game...")
	}
	gs.quitRequested = true
}

// QuitRequested reports whether RequestQuit was called.
func (gs *GameState) QuitRequested() bool {
	return gs.quitRequested
}
