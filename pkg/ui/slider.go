package ui

import "math"

// Slider is a focusable widget holding a value in [Min, Max].
type Slider struct {
	*Widget

	Min, Max float64
	Step     float64
	// OnValueChanged runs after SetValue changes the value.
	OnValueChanged func(value float64)

	value float64
}

// NewSlider creates a [0,1] slider stepping by step.
func NewSlider(name, label string, step float64) *Slider {
	s := &Slider{
		Widget: NewWidget(name),
		Min:    0,
		Max:    1,
		Step:   step,
	}
	s.Label = label
	s.focusable = true
	s.Progress = s.Normalized
	s.OnAdjust = func(dir int) {
		// Round so repeated steps land on exact tenths instead of drifting.
		s.SetValue(math.Round((s.value+float64(dir)*s.Step)*1000) / 1000)
	}
	s.OnPointer = func(x, y int) {
		b := s.Bounds
		if b.Dx() <= 0 {
			return
		}
		t := float64(x-b.Min.X) / float64(b.Dx())
		s.SetValue(s.Min + t*(s.Max-s.Min))
	}
	return s
}

// Value returns the current value.
func (s *Slider) Value() float64 {
	if s == nil {
		return 0
	}
	return s.value
}

// Normalized returns the value mapped to [0,1].
func (s *Slider) Normalized() float64 {
	if s == nil || s.Max == s.Min {
		return 0
	}
	return (s.value - s.Min) / (s.Max - s.Min)
}

// SetValue sets the value, limited to the slider range, and notifies
// OnValueChanged if it changed.
func (s *Slider) SetValue(v float64) {
	if s == nil {
		return
	}
	v = s.limit(v)
	if v == s.value {
		return
	}
	s.value = v
	if s.OnValueChanged != nil {
		s.OnValueChanged(v)
	}
}

// SetValueWithoutNotify sets the value without running OnValueChanged.
func (s *Slider) SetValueWithoutNotify(v float64) {
	if s == nil {
		return
	}
	s.value = s.limit(v)
}

func (s *Slider) limit(v float64) float64 {
	if v < s.Min {
		return s.Min
	}
	if v > s.Max {
		return s.Max
	}
	return v
}
