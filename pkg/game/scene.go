package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene represents a game screen (splash, main menu, island).
// Each scene has its own update and rendering logic.
type Scene interface {
	// Update advances the scene. deltaTime is the unscaled time elapsed
	// since the last update in seconds.
	Update(deltaTime float64)

	// Draw renders the scene to the provided screen.
	Draw(screen *ebiten.Image)
}

// Closer is an optional interface for scenes that release resources when
// another scene replaces them.
type Closer interface {
	Close()
}
