package modules

import (
	"github.com/northharbor/blankisland/pkg/ui"
	"github.com/northharbor/blankisland/pkg/utils"
)

// driveMenu applies one frame of menu input to the widgets under scope:
// pointer clicks, up/down focus movement, left/right slider steps and submit.
// It reports whether anything was pressed.
func driveMenu(in utils.Input, fm *ui.FocusManager, scope *ui.Widget) bool {
	handled := false

	if pressed, x, y := in.PointerJustPressed(); pressed {
		if w := ui.HitTest(scope, x, y); w != nil {
			ui.Click(fm, w, x, y)
			handled = true
		}
	}
	if dir := in.NavigateVertical(); dir != 0 {
		ui.MoveFocus(fm, scope, dir)
		handled = true
	}
	if dir := in.NavigateHorizontal(); dir != 0 {
		ui.AdjustFocused(fm, dir)
		handled = true
	}
	if in.SubmitPressed() {
		ui.SubmitFocused(fm)
		handled = true
	}
	return handled
}
