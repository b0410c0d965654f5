package game

import (
	"errors"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

// MockScene is a mock implementation of the Scene interface for testing.
type MockScene struct {
	updateCalled bool
	drawCalled   bool
	closed       bool
	deltaTime    float64
}

// Update records that Update was called and stores the deltaTime.
func (m *MockScene) Update(deltaTime float64) {
	m.updateCalled = true
	m.deltaTime = deltaTime
}

// Draw records that Draw was called.
func (m *MockScene) Draw(screen *ebiten.Image) {
	m.drawCalled = true
}

// Close records that the scene was replaced.
func (m *MockScene) Close() {
	m.closed = true
}

// TestNewSceneManager verifies that NewSceneManager creates a valid instance.
func TestNewSceneManager(t *testing.T) {
	sm := NewSceneManager()
	if sm == nil {
		t.Fatal("NewSceneManager() returned nil")
	}
	if sm.GetCurrentScene() != nil {
		t.Error("Expected current scene to be nil initially")
	}
}

// TestSceneManagerUpdate verifies that Update calls the current scene's Update method.
func TestSceneManagerUpdate(t *testing.T) {
	sm := NewSceneManager()
	mockScene := &MockScene{}
	sm.SwitchTo(mockScene)

	deltaTime := 0.016 // ~60 FPS
	sm.Update(deltaTime)

	if !mockScene.updateCalled {
		t.Error("Scene's Update method was not called")
	}
	if mockScene.deltaTime != deltaTime {
		t.Errorf("Expected deltaTime %.3f, got %.3f", deltaTime, mockScene.deltaTime)
	}
}

// TestSceneManagerUpdateNoScene verifies that Update handles nil scene gracefully.
func TestSceneManagerUpdateNoScene(t *testing.T) {
	sm := NewSceneManager()
	sm.Update(0.016) // Should not panic
}

func TestLoadSceneByName(t *testing.T) {
	sm := NewSceneManager()
	built := 0
	sm.Register("main_menu", func() Scene {
		built++
		return &MockScene{}
	})

	if err := sm.LoadScene("main_menu"); err != nil {
		t.Fatalf("LoadScene() error: %v", err)
	}
	if sm.CurrentName() != "main_menu" {
		t.Errorf("CurrentName: got %q, want main_menu", sm.CurrentName())
	}
	if built != 0 {
		t.Errorf("factory should run on the next Update, ran %d times", built)
	}
	sm.Update(0.016)

	// Reloading builds a fresh scene.
	first := sm.GetCurrentScene()
	if err := sm.LoadScene("main_menu"); err != nil {
		t.Fatalf("LoadScene() error: %v", err)
	}
	sm.Update(0.016)
	if built != 2 {
		t.Errorf("expected factory to run twice, ran %d times", built)
	}
	if sm.GetCurrentScene() == first {
		t.Error("reload should replace the scene instance")
	}
	if !first.(*MockScene).closed {
		t.Error("reloaded scene should close the previous instance")
	}
}

func TestLoadSceneErrors(t *testing.T) {
	sm := NewSceneManager()
	sm.Register("nil_scene", func() Scene { return nil })

	if err := sm.LoadScene(""); !errors.Is(err, ErrEmptySceneName) {
		t.Errorf("empty name: got %v, want ErrEmptySceneName", err)
	}
	if err := sm.LoadScene("missing"); err == nil {
		t.Error("expected error for unregistered scene")
	}
	if sm.GetCurrentScene() != nil || sm.CurrentName() != "" {
		t.Error("failed loads must not change the current scene")
	}

	if err := sm.LoadScene("nil_scene"); err != nil {
		t.Fatalf("LoadScene(nil_scene): %v", err)
	}
	sm.Update(0.016) // Should not panic
	if sm.GetCurrentScene() != nil {
		t.Error("a nil scene must not become current")
	}
}

// sharedFlagScene sets a shared flag when built and clears it when closed,
// like a scene that locks the cursor in its constructor and frees it on Close.
type sharedFlagScene struct {
	MockScene
	flag *bool
}

func (s *sharedFlagScene) Close() {
	*s.flag = false
}

// TestReloadClosesBeforeBuilding verifies that reloading the current scene
// closes the old instance before the new one is constructed.
func TestReloadClosesBeforeBuilding(t *testing.T) {
	sm := NewSceneManager()
	locked := false
	sm.Register("island", func() Scene {
		locked = true
		return &sharedFlagScene{flag: &locked}
	})

	if err := sm.LoadScene("island"); err != nil {
		t.Fatalf("LoadScene: %v", err)
	}
	sm.Update(0.016)
	if !locked {
		t.Fatal("scene setup should have set the flag")
	}

	if err := sm.LoadScene("island"); err != nil {
		t.Fatalf("LoadScene: %v", err)
	}
	sm.Update(0.016)
	if !locked {
		t.Error("old scene's Close ran after the new scene was built")
	}
}

// TestLoadSceneDeferredUntilUpdate verifies that a scene loaded during a frame
// only starts receiving updates on the next frame, and the old scene is closed.
func TestLoadSceneDeferredUntilUpdate(t *testing.T) {
	sm := NewSceneManager()
	first := &MockScene{}
	second := &MockScene{}
	sm.SwitchTo(first)
	sm.Register("second", func() Scene { return second })

	if err := sm.LoadScene("second"); err != nil {
		t.Fatalf("LoadScene() error: %v", err)
	}
	if second.updateCalled {
		t.Error("new scene must not update before the next frame")
	}

	sm.Update(0.016)

	if first.updateCalled {
		t.Error("replaced scene should not have been updated")
	}
	if !first.closed {
		t.Error("replaced scene should have been closed")
	}
	if !second.updateCalled {
		t.Error("new scene should update on the next frame")
	}
}

func TestSceneManagerNames(t *testing.T) {
	sm := NewSceneManager()
	sm.Register("splash", func() Scene { return &MockScene{} })
	sm.Register("main_menu", func() Scene { return &MockScene{} })

	names := sm.Names()
	if len(names) != 2 || names[0] != "main_menu" || names[1] != "splash" {
		t.Errorf("Names: got %v", names)
	}
	if !sm.Has("splash") || sm.Has("island") {
		t.Error("Has reported wrong registration state")
	}
}
