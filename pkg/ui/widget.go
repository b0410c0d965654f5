// Package ui provides the small retained widget tree used by the menus:
// named widgets with visibility and interactable flags, a single-focus
// manager, and the focus guard that keeps focus inside an open overlay.
package ui

import "image"

// Widget is a node in a UI tree.
//
// The zero value is not usable; create widgets with NewWidget.
// All methods are safe on a nil *Widget and do nothing.
type Widget struct {
	Name     string
	Label    string
	Bounds   image.Rectangle
	OnSubmit func()
	// OnAdjust receives -1 / +1 for left / right input while focused.
	OnAdjust func(dir int)
	// OnPointer, when set, handles a click at screen position (x, y)
	// instead of Submit.
	OnPointer func(x, y int)
	// Progress, when set, is drawn as a horizontal fill in [0,1].
	Progress func() float64

	parent       *Widget
	children     []*Widget
	active       bool
	interactable bool
	// focusable widgets take part in directional navigation.
	focusable bool
}

// NewWidget creates an active, interactable, non-focusable widget.
func NewWidget(name string) *Widget {
	return &Widget{
		Name:         name,
		Label:        name,
		active:       true,
		interactable: true,
	}
}

// NewButton creates a focusable widget that runs onSubmit when submitted.
func NewButton(name, label string, onSubmit func()) *Widget {
	w := NewWidget(name)
	w.Label = label
	w.OnSubmit = onSubmit
	w.focusable = true
	return w
}

// AddChild appends child and returns it.
func (w *Widget) AddChild(child *Widget) *Widget {
	if w == nil || child == nil {
		return child
	}
	if child.parent != nil {
		child.parent.removeChild(child)
	}
	child.parent = w
	w.children = append(w.children, child)
	return child
}

func (w *Widget) removeChild(child *Widget) {
	for i, c := range w.children {
		if c == child {
			w.children = append(w.children[:i], w.children[i+1:]...)
			return
		}
	}
}

// Parent returns the parent widget, or nil for a root.
func (w *Widget) Parent() *Widget {
	if w == nil {
		return nil
	}
	return w.parent
}

// Children returns the direct children in insertion order.
func (w *Widget) Children() []*Widget {
	if w == nil {
		return nil
	}
	return w.children
}

// IsChildOf reports whether w is p or a descendant of p.
func (w *Widget) IsChildOf(p *Widget) bool {
	if w == nil || p == nil {
		return false
	}
	for n := w; n != nil; n = n.parent {
		if n == p {
			return true
		}
	}
	return false
}

// SetActive shows or hides the widget and its subtree.
func (w *Widget) SetActive(active bool) {
	if w == nil {
		return
	}
	w.active = active
}

// Active reports the widget's own visibility flag.
func (w *Widget) Active() bool {
	return w != nil && w.active
}

// ActiveInHierarchy reports whether the widget and all its ancestors are active.
func (w *Widget) ActiveInHierarchy() bool {
	if w == nil {
		return false
	}
	for n := w; n != nil; n = n.parent {
		if !n.active {
			return false
		}
	}
	return true
}

// SetInteractable enables or disables input on the widget.
func (w *Widget) SetInteractable(interactable bool) {
	if w == nil {
		return
	}
	w.interactable = interactable
}

// Interactable reports whether the widget accepts input.
func (w *Widget) Interactable() bool {
	return w != nil && w.interactable
}

// Focusable reports whether the widget takes part in navigation.
func (w *Widget) Focusable() bool {
	return w != nil && w.focusable
}

// SetFocusable marks the widget as a navigation target.
func (w *Widget) SetFocusable(focusable bool) {
	if w == nil {
		return
	}
	w.focusable = focusable
}

// Selectable reports whether focus may rest on the widget now.
func (w *Widget) Selectable() bool {
	return w.Focusable() && w.Interactable() && w.ActiveInHierarchy()
}

// Submit runs the submit handler if the widget is interactable.
func (w *Widget) Submit() {
	if w == nil || !w.interactable || w.OnSubmit == nil {
		return
	}
	w.OnSubmit()
}

// Adjust forwards a left/right step to the widget if it is interactable.
func (w *Widget) Adjust(dir int) {
	if w == nil || !w.interactable || w.OnAdjust == nil {
		return
	}
	w.OnAdjust(dir)
}

// Walk visits w and its descendants depth-first in insertion order.
func (w *Widget) Walk(fn func(*Widget)) {
	if w == nil {
		return
	}
	fn(w)
	for _, c := range w.children {
		c.Walk(fn)
	}
}

// HitTest returns the last drawn selectable widget under scope whose bounds
// contain (x, y), or nil.
func HitTest(scope *Widget, x, y int) *Widget {
	var hit *Widget
	pt := image.Pt(x, y)
	scope.Walk(func(w *Widget) {
		if w.Selectable() && pt.In(w.Bounds) {
			hit = w
		}
	})
	return hit
}

// Click focuses w and then runs its pointer handler, or Submit when it has none.
func Click(fm *FocusManager, w *Widget, x, y int) {
	if w == nil || !w.Interactable() {
		return
	}
	fm.SetSelected(w)
	if w.OnPointer != nil {
		w.OnPointer(x, y)
		return
	}
	w.Submit()
}
