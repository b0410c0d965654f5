package modules

import (
	"log"

	"github.com/northharbor/blankisland/pkg/utils"
)

// SplashPhase is the step an element is in.
type SplashPhase int

const (
	PhaseFadeIn SplashPhase = iota
	PhaseHold
	PhaseFadeOut
)

// SplashElement is one logo in the sequence. Alpha is driven by the
// sequencer; the scene reads it when drawing.
type SplashElement struct {
	Name  string
	Alpha float64
}

// SplashSequencerConfig configures a SplashSequencer.
type SplashSequencerConfig struct {
	Names           []string
	FadeDuration    float64
	DisplayDuration float64
	NextScene       string
	CanSkip         bool
}

// SplashSequencer plays each element in turn (fade in, hold, fade out) and
// then loads NextScene. Input during the sequence skips straight to the
// transition when skipping is allowed. The transition happens once.
//
// It is stepped with unscaled frame time so it runs even when the game's
// time multiplier is 0.
type SplashSequencer struct {
	elements  []SplashElement
	fade      float64
	display   float64
	nextScene string
	canSkip   bool
	scenes    SceneLoader

	index   int
	phase   SplashPhase
	elapsed float64
	total   float64
	done    bool
}

// NewSplashSequencer creates a sequencer with every element at alpha 0.
func NewSplashSequencer(cfg SplashSequencerConfig, scenes SceneLoader) *SplashSequencer {
	s := &SplashSequencer{
		fade:      cfg.FadeDuration,
		display:   cfg.DisplayDuration,
		nextScene: cfg.NextScene,
		canSkip:   cfg.CanSkip,
		scenes:    scenes,
	}
	for _, name := range cfg.Names {
		s.elements = append(s.elements, SplashElement{Name: name})
	}
	return s
}

// Elements returns the elements with their current alpha.
func (s *SplashSequencer) Elements() []SplashElement {
	return s.elements
}

// Current returns the index of the playing element and its phase.
func (s *SplashSequencer) Current() (int, SplashPhase) {
	return s.index, s.phase
}

// Done reports whether the transition has happened.
func (s *SplashSequencer) Done() bool {
	return s.done
}

// Elapsed returns the total time stepped so far.
func (s *SplashSequencer) Elapsed() float64 {
	return s.total
}

// Update advances the sequence by dt seconds of real time.
func (s *SplashSequencer) Update(dt float64, in utils.Input) {
	if s.done {
		return
	}
	if s.canSkip && in != nil && in.AnyPressed() {
		log.Printf("[SplashSequencer] Skipped at %.2fs", s.total)
		s.finish()
		return
	}
	if dt < 0 {
		dt = 0
	}
	s.total += dt
	s.advance(dt)
}

// advance consumes dt, carrying leftover time into the following phases.
func (s *SplashSequencer) advance(dt float64) {
	for !s.done {
		if s.index >= len(s.elements) {
			s.finish()
			return
		}

		remaining := s.phaseDuration() - s.elapsed
		if dt < remaining {
			s.elapsed += dt
			s.applyAlpha()
			return
		}
		dt -= remaining
		s.endPhase()
		if dt <= 0 && s.index < len(s.elements) {
			return
		}
	}
}

func (s *SplashSequencer) phaseDuration() float64 {
	if s.phase == PhaseHold {
		return s.display
	}
	return s.fade
}

func (s *SplashSequencer) applyAlpha() {
	e := &s.elements[s.index]
	switch s.phase {
	case PhaseFadeIn:
		e.Alpha = utils.Lerp(0, 1, s.progress())
	case PhaseHold:
		e.Alpha = 1
	case PhaseFadeOut:
		e.Alpha = utils.Lerp(1, 0, s.progress())
	}
}

func (s *SplashSequencer) progress() float64 {
	d := s.phaseDuration()
	if d <= 0 {
		return 1
	}
	return s.elapsed / d
}

func (s *SplashSequencer) endPhase() {
	e := &s.elements[s.index]
	s.elapsed = 0
	switch s.phase {
	case PhaseFadeIn:
		e.Alpha = 1
		s.phase = PhaseHold
	case PhaseHold:
		s.phase = PhaseFadeOut
	case PhaseFadeOut:
		e.Alpha = 0
		s.phase = PhaseFadeIn
		s.index++
	}
}

func (s *SplashSequencer) finish() {
	if s.done {
		return
	}
	s.done = true

	if s.nextScene == "" {
		log.Println("Next scene name is not set!")
		return
	}
	if s.scenes == nil {
		log.Printf("[SplashSequencer] Warning: no scene loader, cannot load %q", s.nextScene)
		return
	}
	if err := s.scenes.LoadScene(s.nextScene); err != nil {
		log.Printf("[SplashSequencer] Error: %v", err)
		return
	}
	log.Printf("[SplashSequencer] Loading scene %q after %.2fs", s.nextScene, s.total)
}
