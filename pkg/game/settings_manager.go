package game

import (
	"log"
	"math"
)

// Preference keys. These names are part of the save format; do not rename.
const (
	MusicVolumeKey = "MusicVolume"
	SFXVolumeKey   = "SFXVolume"
)

// DefaultVolume is used for both channels when nothing was saved.
const DefaultVolume = 0.7

// VolumeSettings holds the two persisted volume levels, each in [0,1].
type VolumeSettings struct {
	MusicVolume float64
	SFXVolume   float64
}

// SettingsManager reads and writes the volume preferences.
//
// Values are passed through as given; callers supply [0,1] from the sliders.
type SettingsManager struct {
	prefs         PrefsStore
	defaultVolume float64
}

// NewSettingsManager creates a settings manager over prefs that returns
// DefaultVolume for unsaved keys. A nil prefs selects an in-memory store.
func NewSettingsManager(prefs PrefsStore) *SettingsManager {
	return NewSettingsManagerWithDefault(prefs, DefaultVolume)
}

// NewSettingsManagerWithDefault is NewSettingsManager with a configured
// value for unsaved keys. 0 is a valid default (muted); values outside
// [0,1] are clamped.
func NewSettingsManagerWithDefault(prefs PrefsStore, defaultVolume float64) *SettingsManager {
	if prefs == nil {
		prefs = NewMemoryPrefs()
	}
	defaultVolume = math.Max(0, math.Min(1, defaultVolume))
	return &SettingsManager{prefs: prefs, defaultVolume: defaultVolume}
}

// LoadVolumeSettings returns the saved volumes, or the default for each key
// that was never saved.
func (sm *SettingsManager) LoadVolumeSettings() VolumeSettings {
	return VolumeSettings{
		MusicVolume: sm.prefs.Float(MusicVolumeKey, sm.defaultVolume),
		SFXVolume:   sm.prefs.Float(SFXVolumeKey, sm.defaultVolume),
	}
}

// SaveMusicVolume persists the music volume. Failures are logged only.
func (sm *SettingsManager) SaveMusicVolume(volume float64) {
	if err := sm.prefs.SetFloat(MusicVolumeKey, volume); err != nil {
		log.Printf("[SettingsManager] Warning: %v", err)
	}
}

// SaveSFXVolume persists the SFX volume. Failures are logged only.
func (sm *SettingsManager) SaveSFXVolume(volume float64) {
	if err := sm.prefs.SetFloat(SFXVolumeKey, volume); err != nil {
		log.Printf("[SettingsManager] Warning: %v", err)
	}
}
