package game

import (
	"errors"
	"fmt"
	"log"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
)

// SceneFactory builds a fresh scene each time it is loaded, so reloading a
// scene resets its state.
type SceneFactory func() Scene

// ErrEmptySceneName is returned by LoadScene when no name is given.
var ErrEmptySceneName = errors.New("scene name is empty")

// SceneManager manages the game's high-level state by controlling which scene is active.
// It ensures only one scene's Update and Draw methods are called at any given time.
type SceneManager struct {
	currentScene Scene
	currentName  string
	factories    map[string]SceneFactory

	// pending is built at the start of the next Update, after the current
	// scene has been closed.
	pending     SceneFactory
	pendingName string
}

// NewSceneManager creates and returns a new SceneManager instance.
// The manager starts with no active scene; use LoadScene or SwitchTo to set the initial scene.
func NewSceneManager() *SceneManager {
	return &SceneManager{
		factories: make(map[string]SceneFactory),
	}
}

// Register binds a scene name to a factory. Registering a name twice
// replaces the previous factory.
func (sm *SceneManager) Register(name string, factory SceneFactory) {
	sm.factories[name] = factory
}

// Has reports whether a scene name is registered.
func (sm *SceneManager) Has(name string) bool {
	_, ok := sm.factories[name]
	return ok
}

// Names returns the registered scene names in sorted order.
func (sm *SceneManager) Names() []string {
	names := make([]string, 0, len(sm.factories))
	for name := range sm.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// LoadScene schedules the named scene to replace the current one on the next
// Update. Loading again before that Update replaces the request.
//
// Returns:
//   - ErrEmptySceneName if name is empty
//   - an error if no factory is registered for name
func (sm *SceneManager) LoadScene(name string) error {
	if name == "" {
		return ErrEmptySceneName
	}
	factory, ok := sm.factories[name]
	if !ok {
		return fmt.Errorf("scene %q is not registered", name)
	}

	log.Printf("[SceneManager] Loading scene: %s", name)
	sm.pending = factory
	sm.pendingName = name
	return nil
}

// SwitchTo changes the active scene immediately.
func (sm *SceneManager) SwitchTo(scene Scene) {
	sm.replace(scene, "")
}

func (sm *SceneManager) replace(scene Scene, name string) {
	sm.closeCurrent(scene)
	sm.currentScene = scene
	sm.currentName = name
}

func (sm *SceneManager) closeCurrent(next Scene) {
	if closer, ok := sm.currentScene.(Closer); ok && sm.currentScene != next {
		closer.Close()
	}
}

// swapPending closes the current scene, then builds the pending one.
func (sm *SceneManager) swapPending() {
	factory, name := sm.pending, sm.pendingName
	sm.pending = nil
	sm.pendingName = ""

	sm.closeCurrent(nil)
	sm.currentScene = nil
	sm.currentName = ""

	scene := factory()
	if scene == nil {
		log.Printf("[SceneManager] Error: scene %q factory returned nil", name)
		return
	}
	sm.currentScene = scene
	sm.currentName = name
}

// GetCurrentScene returns the active scene, or nil. A scene requested with
// LoadScene only becomes current on the next Update.
func (sm *SceneManager) GetCurrentScene() Scene {
	return sm.currentScene
}

// CurrentName returns the name of the requested or active scene, or "" if
// the scene was set with SwitchTo.
func (sm *SceneManager) CurrentName() string {
	if sm.pending != nil {
		return sm.pendingName
	}
	return sm.currentName
}

// Update updates the currently active scene.
// If no scene is active, this method does nothing.
func (sm *SceneManager) Update(deltaTime float64) {
	if sm.pending != nil {
		sm.swapPending()
	}
	if sm.currentScene != nil {
		sm.currentScene.Update(deltaTime)
	}
}

// Draw renders the currently active scene to the provided screen.
// If no scene is active, this method does nothing.
func (sm *SceneManager) Draw(screen *ebiten.Image) {
	if sm.currentScene != nil {
		sm.currentScene.Draw(screen)
	}
}
