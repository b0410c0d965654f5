package modules

import (
	"testing"

	"github.com/northharbor/blankisland/pkg/game"
)

func TestSettingsPanelPassThrough(t *testing.T) {
	prefs := newRecordingPrefs()
	music, sfx := &fakeSink{}, &fakeSink{}
	panel := NewSettingsPanelModule(game.NewSettingsManager(prefs), music, sfx, SettingsPanelCallbacks{})

	panel.SetMusicVolume(0.25)
	panel.SetSFXVolume(0.9)

	if music.volume != 0.25 || sfx.volume != 0.9 {
		t.Errorf("sinks: got music=%v sfx=%v", music.volume, sfx.volume)
	}
	if got := prefs.Float(game.MusicVolumeKey, -1); got != 0.25 {
		t.Errorf("persisted MusicVolume = %v, want 0.25", got)
	}
	if got := prefs.Float(game.SFXVolumeKey, -1); got != 0.9 {
		t.Errorf("persisted SFXVolume = %v, want 0.9", got)
	}
}

func TestSettingsPanelMissingSinkIsNoOp(t *testing.T) {
	prefs := newRecordingPrefs()
	panel := NewSettingsPanelModule(game.NewSettingsManager(prefs), nil, nil, SettingsPanelCallbacks{})

	panel.SetMusicVolume(0.3)
	panel.SetSFXVolume(0.3)
	panel.MusicSlider.SetValue(0.1)

	if len(prefs.writes) != 0 {
		t.Errorf("no sink should mean nothing persisted, got %v", prefs.writes)
	}
}

func TestSettingsPanelLoadDoesNotWriteBack(t *testing.T) {
	prefs := newRecordingPrefs()
	_ = prefs.MemoryPrefs.SetFloat(game.MusicVolumeKey, 0.4)
	music, sfx := &fakeSink{}, &fakeSink{}
	panel := NewSettingsPanelModule(game.NewSettingsManager(prefs), music, sfx, SettingsPanelCallbacks{})

	panel.LoadVolumeSettings()

	if music.volume != 0.4 {
		t.Errorf("music sink = %v, want stored 0.4", music.volume)
	}
	if sfx.volume != game.DefaultVolume {
		t.Errorf("sfx sink = %v, want default %v", sfx.volume, game.DefaultVolume)
	}
	if panel.MusicSlider.Value() != 0.4 || panel.SFXSlider.Value() != game.DefaultVolume {
		t.Errorf("sliders: music=%v sfx=%v", panel.MusicSlider.Value(), panel.SFXSlider.Value())
	}
	if len(prefs.writes) != 0 {
		t.Errorf("loading should not persist anything, got %v", prefs.writes)
	}
}

func TestSettingsPanelSliderPersists(t *testing.T) {
	prefs := newRecordingPrefs()
	music := &fakeSink{}
	applied := 0
	panel := NewSettingsPanelModule(game.NewSettingsManager(prefs), music, &fakeSink{}, SettingsPanelCallbacks{
		OnVolumeApply: func(float64) { applied++ },
	})
	panel.LoadVolumeSettings()

	panel.MusicSlider.Adjust(+1)

	if music.volume != 0.8 {
		t.Errorf("music after one step up = %v, want 0.8", music.volume)
	}
	if prefs.writes[game.MusicVolumeKey] != 1 {
		t.Errorf("MusicVolume writes = %d, want 1", prefs.writes[game.MusicVolumeKey])
	}
	if applied != 1 {
		t.Errorf("OnVolumeApply calls = %d, want 1", applied)
	}
}

func TestSettingsPanelStartsHidden(t *testing.T) {
	panel := NewSettingsPanelModule(nil, nil, nil, SettingsPanelCallbacks{})
	if panel.IsOpen() {
		t.Error("panel should start hidden")
	}
	if !panel.BackButton.IsChildOf(panel.Panel) {
		t.Error("back button should live inside the panel")
	}
}
