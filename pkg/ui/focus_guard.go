package ui

// FocusGuard keeps focus consistent with the open overlay.
//
// While an overlay is open, focus that is nil or outside the overlay's
// subtree is pulled back to the overlay's designated widget. With no
// overlay open, nil focus is restored to the default widget.
//
// The guard reacts to focus-change events from its FocusManager, so scenes
// do not need to poll it; Enforce can still be called directly after
// visibility changes.
type FocusGuard struct {
	focus         *FocusManager
	defaultWidget *Widget
	enabled       bool

	overlay      *Widget
	overlayFocus *Widget
	disabled     []*Widget
}

// NewFocusGuard creates an enabled guard restoring defaultWidget and
// subscribes it to fm.
func NewFocusGuard(fm *FocusManager, defaultWidget *Widget) *FocusGuard {
	g := &FocusGuard{
		focus:         fm,
		defaultWidget: defaultWidget,
		enabled:       true,
	}
	fm.Subscribe(func(prev, next *Widget) {
		g.Enforce()
	})
	return g
}

// SetEnabled turns enforcement on or off. A disabled guard still tracks
// overlays but never moves focus on its own.
func (g *FocusGuard) SetEnabled(enabled bool) {
	g.enabled = enabled
	if enabled {
		g.Enforce()
	}
}

// Enabled reports whether the guard enforces focus.
func (g *FocusGuard) Enabled() bool {
	return g.enabled
}

// Default returns the widget focused when no overlay is open.
func (g *FocusGuard) Default() *Widget {
	return g.defaultWidget
}

// FocusDefault moves focus to the default widget, if there is one.
func (g *FocusGuard) FocusDefault() {
	if g.defaultWidget != nil {
		g.focus.SetSelected(g.defaultWidget)
	}
}

// Overlay returns the open overlay panel, or nil.
func (g *FocusGuard) Overlay() *Widget {
	return g.overlay
}

// OverlayOpen reports whether an overlay is open.
func (g *FocusGuard) OverlayOpen() bool {
	return g.overlay != nil
}

// OpenOverlay shows panel, disables the sibling action buttons and focuses
// first. It returns false and does nothing when panel is nil.
// Opening the already open overlay only refocuses first.
func (g *FocusGuard) OpenOverlay(panel, first *Widget, siblings ...*Widget) bool {
	if panel == nil {
		return false
	}
	if g.overlay != nil && g.overlay != panel {
		g.CloseOverlay()
	}

	panel.SetActive(true)
	if g.overlay != panel {
		g.disabled = g.disabled[:0]
		for _, s := range siblings {
			if s == nil {
				continue
			}
			s.SetInteractable(false)
			g.disabled = append(g.disabled, s)
		}
	}
	g.overlay = panel
	g.overlayFocus = first

	if first != nil {
		g.focus.SetSelected(first)
	}
	g.Enforce()
	return true
}

// CloseOverlay hides the open overlay, re-enables the buttons it disabled
// and restores the default focus. With no overlay open it only restores
// focus.
func (g *FocusGuard) CloseOverlay() {
	if g.overlay != nil {
		g.overlay.SetActive(false)
		for _, s := range g.disabled {
			s.SetInteractable(true)
		}
		g.disabled = g.disabled[:0]
		g.overlay = nil
		g.overlayFocus = nil
	}
	if g.enabled {
		g.FocusDefault()
	}
}

// CloseOverlayQuietly hides the overlay and re-enables buttons without
// touching focus.
func (g *FocusGuard) CloseOverlayQuietly() {
	enabled := g.enabled
	g.enabled = false
	g.CloseOverlay()
	g.enabled = enabled
}

// Enforce applies the focus rules once.
func (g *FocusGuard) Enforce() {
	if !g.enabled {
		return
	}
	selected := g.focus.Selected()

	if g.overlay != nil {
		if selected == nil || !selected.IsChildOf(g.overlay) {
			if g.overlayFocus != nil {
				g.focus.SetSelected(g.overlayFocus)
			}
		}
		return
	}

	if selected == nil && g.defaultWidget != nil {
		g.focus.SetSelected(g.defaultWidget)
	}
}
