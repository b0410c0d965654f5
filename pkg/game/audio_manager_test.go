package game

import (
	"encoding/binary"
	"testing"
)

// fakeSink is a VolumeSink that records the last volume.
type fakeSink struct {
	volume float64
	sets   int
}

func (s *fakeSink) SetVolume(v float64) {
	s.volume = v
	s.sets++
}

func (s *fakeSink) Volume() float64 { return s.volume }

func TestAudioManagerSinks(t *testing.T) {
	music := &fakeSink{}
	am := NewAudioManager(music, nil)

	if am.MusicSink() != music {
		t.Error("MusicSink should return the injected sink")
	}
	if am.SFXSink() != nil {
		t.Error("SFXSink should be nil when none was injected")
	}

	// No players: playback calls must be no-ops.
	am.PlayMusic()
	am.PlayClick()
}

func TestNewSynthAudioManagerNilContext(t *testing.T) {
	am, err := NewSynthAudioManager(nil)
	if err != nil {
		t.Fatalf("NewSynthAudioManager(nil) error: %v", err)
	}
	if am.MusicSink() != nil || am.SFXSink() != nil {
		t.Error("nil context should yield no sinks")
	}
}

func TestSynthesizeDroneLength(t *testing.T) {
	buf := synthesizeDrone(48000, 1)
	if len(buf) != 48000*4 {
		t.Fatalf("drone length: got %d, want %d", len(buf), 48000*4)
	}
	// Left and right channels carry the same sample.
	for i := 0; i < len(buf); i += 4 * 997 {
		l := binary.LittleEndian.Uint16(buf[i:])
		r := binary.LittleEndian.Uint16(buf[i+2:])
		if l != r {
			t.Fatalf("frame %d: channels differ (%d vs %d)", i/4, l, r)
		}
	}
}

func TestSynthesizeClickDecays(t *testing.T) {
	buf := synthesizeClick(48000)
	last := int16(binary.LittleEndian.Uint16(buf[len(buf)-4:]))
	if last > 1000 || last < -1000 {
		t.Errorf("click should have decayed by its end, last sample %d", last)
	}
}
