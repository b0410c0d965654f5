package game

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"log"
	"math"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

// VolumeSink is an audio output whose volume can be set.
// *audio.Player satisfies it.
type VolumeSink interface {
	SetVolume(volume float64)
	Volume() float64
}

// AudioManager owns the music and SFX sinks.
// Either sink may be nil; volume operations on a nil sink are no-ops.
type AudioManager struct {
	music VolumeSink
	sfx   VolumeSink

	musicPlayer *audio.Player
	clickPlayer *audio.Player
}

// NewAudioManager wraps existing sinks. Used by tests and by NewSynthAudioManager.
func NewAudioManager(music, sfx VolumeSink) *AudioManager {
	return &AudioManager{music: music, sfx: sfx}
}

// NewSynthAudioManager creates players for a generated ambient drone (music)
// and a short click (SFX), so the volume settings are audible without
// asset files.
//
// Parameters:
//   - ctx: the process-wide audio context (nil yields an AudioManager without sinks)
func NewSynthAudioManager(ctx *audio.Context) (*AudioManager, error) {
	if ctx == nil {
		return NewAudioManager(nil, nil), nil
	}

	sampleRate := ctx.SampleRate()
	drone := synthesizeDrone(sampleRate, 4)
	loop := audio.NewInfiniteLoop(bytes.NewReader(drone), int64(len(drone)))
	musicPlayer, err := ctx.NewPlayer(loop)
	if err != nil {
		return nil, fmt.Errorf("failed to create music player: %w", err)
	}

	clickPlayer := ctx.NewPlayerFromBytes(synthesizeClick(sampleRate))

	am := NewAudioManager(musicPlayer, clickPlayer)
	am.musicPlayer = musicPlayer
	am.clickPlayer = clickPlayer
	log.Printf("[AudioManager] Initialized synthesized audio (sample rate %d)", sampleRate)
	return am, nil
}

// MusicSink returns the music sink, or nil.
func (am *AudioManager) MusicSink() VolumeSink {
	return am.music
}

// SFXSink returns the SFX sink, or nil.
func (am *AudioManager) SFXSink() VolumeSink {
	return am.sfx
}

// PlayMusic starts the music loop if a player exists.
func (am *AudioManager) PlayMusic() {
	if am.musicPlayer != nil && !am.musicPlayer.IsPlaying() {
		am.musicPlayer.Play()
	}
}

// PlayClick plays the SFX click from the start.
func (am *AudioManager) PlayClick() {
	if am.clickPlayer == nil {
		return
	}
	if err := am.clickPlayer.Rewind(); err != nil {
		log.Printf("[AudioManager] Warning: Failed to rewind click: %v", err)
	}
	am.clickPlayer.Play()
}

// synthesizeDrone renders seconds of a soft two-note chord as 16-bit
// little-endian stereo PCM. The length is a whole number of cycles of the
// fundamental so the loop point is seamless.
func synthesizeDrone(sampleRate int, seconds int) []byte {
	const (
		root  = 110.0 // A2
		fifth = 165.0
		gain  = 0.18
	)
	frames := sampleRate * seconds
	buf := make([]byte, frames*4)
	for i := 0; i < frames; i++ {
		t := float64(i) / float64(sampleRate)
		swell := 0.75 + 0.25*math.Sin(2*math.Pi*0.25*t)
		v := gain * swell * (math.Sin(2*math.Pi*root*t) + 0.5*math.Sin(2*math.Pi*fifth*t)) / 1.5
		putStereoSample(buf[i*4:], v)
	}
	return buf
}

// synthesizeClick renders a 40ms decaying blip.
func synthesizeClick(sampleRate int) []byte {
	frames := sampleRate * 40 / 1000
	buf := make([]byte, frames*4)
	for i := 0; i < frames; i++ {
		t := float64(i) / float64(sampleRate)
		env := math.Exp(-t * 90)
		putStereoSample(buf[i*4:], 0.4*env*math.Sin(2*math.Pi*880*t))
	}
	return buf
}

func putStereoSample(dst []byte, v float64) {
	s := int16(math.Max(-1, math.Min(1, v)) * math.MaxInt16)
	binary.LittleEndian.PutUint16(dst[0:], uint16(s))
	binary.LittleEndian.PutUint16(dst[2:], uint16(s))
}
