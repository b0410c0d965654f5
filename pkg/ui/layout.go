package ui

import "image"

// StackVertical lays widgets out top to bottom, each width x height,
// starting at (x, y) with spacing between them.
func StackVertical(widgets []*Widget, x, y, width, height, spacing int) {
	for i, w := range widgets {
		if w == nil {
			continue
		}
		top := y + i*(height+spacing)
		w.Bounds = image.Rect(x, top, x+width, top+height)
	}
}

// CenteredRect returns a width x height rectangle centered in a
// screenW x screenH area.
func CenteredRect(screenW, screenH, width, height int) image.Rectangle {
	x := (screenW - width) / 2
	y := (screenH - height) / 2
	return image.Rect(x, y, x+width, y+height)
}
