package utils

// ScriptedInput is an Input whose state is set by the caller, one frame at
// a time. Tests set fields, run one Update, then call Reset.
type ScriptedInput struct {
	Pause      bool
	Cancel     bool
	Submit     bool
	Vertical   int
	Horizontal int
	Any        bool
	Pointer    bool
	PointerX   int
	PointerY   int
	MoveX      float64
	MoveY      float64
}

// PausePressed implements Input.
func (in *ScriptedInput) PausePressed() bool { return in.Pause }

// CancelPressed implements Input.
func (in *ScriptedInput) CancelPressed() bool { return in.Cancel }

// SubmitPressed implements Input.
func (in *ScriptedInput) SubmitPressed() bool { return in.Submit }

// NavigateVertical implements Input.
func (in *ScriptedInput) NavigateVertical() int { return in.Vertical }

// NavigateHorizontal implements Input.
func (in *ScriptedInput) NavigateHorizontal() int { return in.Horizontal }

// AnyPressed implements Input. Any just-pressed action also counts.
func (in *ScriptedInput) AnyPressed() bool {
	return in.Any || in.Pause || in.Cancel || in.Submit || in.Vertical != 0 || in.Horizontal != 0 || in.Pointer
}

// PointerJustPressed implements Input.
func (in *ScriptedInput) PointerJustPressed() (bool, int, int) {
	return in.Pointer, in.PointerX, in.PointerY
}

// Movement implements Input.
func (in *ScriptedInput) Movement() (float64, float64) { return in.MoveX, in.MoveY }

// Reset clears the just-pressed state. Held movement is kept.
func (in *ScriptedInput) Reset() {
	moveX, moveY := in.MoveX, in.MoveY
	*in = ScriptedInput{MoveX: moveX, MoveY: moveY}
}
