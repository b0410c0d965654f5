package ui

import "testing"

// buildMenu returns a root with three buttons and a hidden settings panel
// holding a back button and a slider.
func buildMenu() (root, play, settings, quit, panel, back *Widget, slider *Slider) {
	root = NewWidget("Canvas")
	play = root.AddChild(NewButton("Play", "Play", nil))
	settings = root.AddChild(NewButton("Settings", "Settings", nil))
	quit = root.AddChild(NewButton("Quit", "Quit", nil))
	panel = root.AddChild(NewWidget("SettingsPanel"))
	back = panel.AddChild(NewButton("Back", "Back", nil))
	slider = NewSlider("Music", "Music", 0.1)
	panel.AddChild(slider.Widget)
	panel.SetActive(false)
	return
}

func TestIsChildOf(t *testing.T) {
	root, play, _, _, panel, back, _ := buildMenu()

	if !back.IsChildOf(panel) || !back.IsChildOf(root) {
		t.Error("back should be a descendant of panel and root")
	}
	if !panel.IsChildOf(panel) {
		t.Error("IsChildOf should include the widget itself")
	}
	if play.IsChildOf(panel) {
		t.Error("play is not inside the settings panel")
	}
	var nilWidget *Widget
	if nilWidget.IsChildOf(root) || root.IsChildOf(nil) {
		t.Error("nil widgets are never children")
	}
}

func TestActiveInHierarchy(t *testing.T) {
	_, play, _, _, panel, back, _ := buildMenu()

	if back.ActiveInHierarchy() {
		t.Error("back is inside a hidden panel")
	}
	if !back.Active() {
		t.Error("back's own flag should still be active")
	}
	panel.SetActive(true)
	if !back.ActiveInHierarchy() {
		t.Error("back should be active once the panel is shown")
	}
	if !play.Selectable() {
		t.Error("play should be selectable")
	}
}

func TestFocusManagerNotifiesOnChangeOnly(t *testing.T) {
	fm := NewFocusManager()
	a := NewButton("a", "a", nil)
	calls := 0
	fm.Subscribe(func(prev, next *Widget) { calls++ })

	fm.SetSelected(a)
	fm.SetSelected(a)
	fm.SetSelected(nil)

	if calls != 2 {
		t.Errorf("expected 2 notifications, got %d", calls)
	}
}

// TestFocusManagerNestedChange verifies that a listener redirecting focus
// does not recurse and the redirect wins.
func TestFocusManagerNestedChange(t *testing.T) {
	fm := NewFocusManager()
	a := NewButton("a", "a", nil)
	b := NewButton("b", "b", nil)
	fm.Subscribe(func(prev, next *Widget) {
		if next == a {
			fm.SetSelected(b)
		}
	})

	fm.SetSelected(a)
	if fm.Selected() != b {
		t.Errorf("expected listener redirect to b, got %v", fm.Selected())
	}
}

func TestFocusGuardRestoresDefaultWhenNil(t *testing.T) {
	_, play, settings, _, _, _, _ := buildMenu()
	fm := NewFocusManager()
	g := NewFocusGuard(fm, play)

	fm.SetSelected(settings)
	fm.SetSelected(nil)

	if fm.Selected() != play {
		t.Errorf("nil focus should be restored to the default, got %v", fm.Selected())
	}
	_ = g
}

func TestFocusGuardKeepsFocusInOverlay(t *testing.T) {
	_, play, settings, quit, panel, back, slider := buildMenu()
	fm := NewFocusManager()
	g := NewFocusGuard(fm, play)
	g.FocusDefault()

	if !g.OpenOverlay(panel, back, play, settings, quit) {
		t.Fatal("OpenOverlay returned false")
	}
	if fm.Selected() != back {
		t.Fatalf("opening should focus back, got %v", fm.Selected())
	}
	for _, w := range []*Widget{play, settings, quit} {
		if w.Interactable() {
			t.Errorf("%s should be disabled while the overlay is open", w.Name)
		}
	}

	// Focus inside the overlay is allowed.
	fm.SetSelected(slider.Widget)
	if fm.Selected() != slider.Widget {
		t.Error("focus inside the overlay should be kept")
	}

	// Focus outside or nil is pulled back.
	fm.SetSelected(quit)
	if fm.Selected() != back {
		t.Errorf("outside focus should return to back, got %v", fm.Selected())
	}
	fm.SetSelected(nil)
	if fm.Selected() != back {
		t.Errorf("nil focus should return to back, got %v", fm.Selected())
	}

	g.CloseOverlay()
	if panel.Active() {
		t.Error("panel should be hidden after close")
	}
	for _, w := range []*Widget{play, settings, quit} {
		if !w.Interactable() {
			t.Errorf("%s should be re-enabled after close", w.Name)
		}
	}
	if fm.Selected() != play {
		t.Errorf("closing should restore default focus, got %v", fm.Selected())
	}
}

func TestFocusGuardNilReferencesAreNoOps(t *testing.T) {
	fm := NewFocusManager()
	g := NewFocusGuard(fm, nil)

	if g.OpenOverlay(nil, nil) {
		t.Error("OpenOverlay(nil) should report false")
	}
	g.CloseOverlay()
	g.Enforce()
	if fm.Selected() != nil {
		t.Error("no widget should be focused")
	}

	// Overlay without a designated widget: focus is left alone.
	panel := NewWidget("panel")
	outside := NewButton("outside", "outside", nil)
	fm.SetSelected(outside)
	g.OpenOverlay(panel, nil)
	if fm.Selected() != outside {
		t.Error("guard without overlay focus must not move focus")
	}
}

func TestFocusGuardDisabled(t *testing.T) {
	_, play, _, _, _, _, _ := buildMenu()
	fm := NewFocusManager()
	g := NewFocusGuard(fm, play)
	g.SetEnabled(false)

	fm.SetSelected(nil)
	if fm.Selected() != nil {
		t.Error("disabled guard must not restore focus")
	}

	g.SetEnabled(true)
	if fm.Selected() != play {
		t.Error("enabling the guard should enforce immediately")
	}
}
