package modules

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/northharbor/blankisland/pkg/game"
)

type fakeSink struct {
	volume float64
	sets   int
}

func (s *fakeSink) SetVolume(v float64) {
	s.volume = v
	s.sets++
}

func (s *fakeSink) Volume() float64 { return s.volume }

// recordingPrefs is a PrefsStore that counts writes.
type recordingPrefs struct {
	*game.MemoryPrefs
	writes map[string]int
}

func newRecordingPrefs() *recordingPrefs {
	return &recordingPrefs{MemoryPrefs: game.NewMemoryPrefs(), writes: map[string]int{}}
}

func (p *recordingPrefs) SetFloat(key string, v float64) error {
	p.writes[key]++
	return p.MemoryPrefs.SetFloat(key, v)
}

type fakeLoader struct {
	loaded []string
	known  map[string]bool
}

func (l *fakeLoader) LoadScene(name string) error {
	if name == "" {
		return game.ErrEmptySceneName
	}
	if l.known != nil && !l.known[name] {
		return errors.New("unknown scene " + name)
	}
	l.loaded = append(l.loaded, name)
	return nil
}

type fakeCursor struct {
	modes []ebiten.CursorModeType
}

func (c *fakeCursor) SetCursorMode(mode ebiten.CursorModeType) {
	c.modes = append(c.modes, mode)
}
