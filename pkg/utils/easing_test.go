package utils

import "testing"

func TestLerp(t *testing.T) {
	tests := []struct {
		a, b, t, want float64
	}{
		{0, 1, 0, 0},
		{0, 1, 0.5, 0.5},
		{0, 1, 1, 1},
		{1, 0, 0.25, 0.75},
		{0, 1, 1.5, 1}, // overshoot is clamped
		{0, 1, -1, 0},
	}

	for _, tt := range tests {
		if got := Lerp(tt.a, tt.b, tt.t); got != tt.want {
			t.Errorf("Lerp(%v, %v, %v) = %v, want %v", tt.a, tt.b, tt.t, got, tt.want)
		}
	}
}

func TestScriptedInputReset(t *testing.T) {
	in := &ScriptedInput{Submit: true, MoveX: 1}
	if !in.AnyPressed() {
		t.Error("submit should count as any input")
	}
	in.Reset()
	if in.SubmitPressed() || in.AnyPressed() {
		t.Error("Reset should clear just-pressed state")
	}
	if dx, _ := in.Movement(); dx != 1 {
		t.Error("Reset should keep held movement")
	}
}
