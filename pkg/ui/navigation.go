package ui

// Selectables returns the widgets under scope that focus may rest on, in
// tree order.
func Selectables(scope *Widget) []*Widget {
	var out []*Widget
	scope.Walk(func(w *Widget) {
		if w.Selectable() {
			out = append(out, w)
		}
	})
	return out
}

// MoveFocus moves focus to the previous (dir < 0) or next (dir > 0)
// selectable widget under scope, wrapping at the ends. If the focused widget
// is not one of them, the first selectable widget is focused.
func MoveFocus(fm *FocusManager, scope *Widget, dir int) {
	if dir == 0 {
		return
	}
	candidates := Selectables(scope)
	if len(candidates) == 0 {
		return
	}

	current := -1
	for i, w := range candidates {
		if w == fm.Selected() {
			current = i
			break
		}
	}
	if current < 0 {
		fm.SetSelected(candidates[0])
		return
	}

	step := 1
	if dir < 0 {
		step = -1
	}
	next := (current + step + len(candidates)) % len(candidates)
	fm.SetSelected(candidates[next])
}

// SubmitFocused submits the focused widget.
func SubmitFocused(fm *FocusManager) {
	fm.Selected().Submit()
}

// AdjustFocused sends a left/right step to the focused widget.
func AdjustFocused(fm *FocusManager, dir int) {
	if dir == 0 {
		return
	}
	fm.Selected().Adjust(dir)
}
