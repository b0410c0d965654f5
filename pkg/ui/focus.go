package ui

// FocusListener is called after focus moves from prev to next.
type FocusListener func(prev, next *Widget)

// FocusManager tracks the single widget receiving directional input.
// Focus may be nil.
type FocusManager struct {
	selected  *Widget
	listeners []FocusListener
	notifying bool
	// queued holds a focus change requested by a listener while notifying.
	queued    *Widget
	hasQueued bool
}

// NewFocusManager returns a manager with nothing focused.
func NewFocusManager() *FocusManager {
	return &FocusManager{}
}

// Selected returns the focused widget, or nil.
func (fm *FocusManager) Selected() *Widget {
	return fm.selected
}

// Subscribe registers a listener for focus changes.
func (fm *FocusManager) Subscribe(listener FocusListener) {
	fm.listeners = append(fm.listeners, listener)
}

// SetSelected moves focus to w (nil clears focus) and notifies listeners
// when focus actually changes. A change requested from inside a listener is
// applied after the current notification round completes.
func (fm *FocusManager) SetSelected(w *Widget) {
	if fm.notifying {
		fm.queued = w
		fm.hasQueued = true
		return
	}

	for {
		if w == fm.selected {
			return
		}
		prev := fm.selected
		fm.selected = w

		fm.notifying = true
		for _, l := range fm.listeners {
			l(prev, w)
		}
		fm.notifying = false

		if !fm.hasQueued {
			return
		}
		w = fm.queued
		fm.queued = nil
		fm.hasQueued = false
	}
}
