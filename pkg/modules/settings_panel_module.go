package modules

import (
	"log"

	"github.com/northharbor/blankisland/pkg/config"
	"github.com/northharbor/blankisland/pkg/game"
	"github.com/northharbor/blankisland/pkg/ui"
)

// SettingsPanelModule is the volume settings overlay shared by the main menu
// and the pause menu.
//
// It owns:
//   - the panel widget (hidden until opened)
//   - the back button, which is the first control focused when the panel opens
//   - the music and SFX sliders
//
// Slider changes are applied to the matching volume sink and persisted under
// the MusicVolume / SFXVolume keys. A missing sink turns that control into a
// silent no-op: nothing is applied and nothing is persisted.
type SettingsPanelModule struct {
	Panel       *ui.Widget
	BackButton  *ui.Widget
	MusicSlider *ui.Slider
	SFXSlider   *ui.Slider

	settings *game.SettingsManager
	music    game.VolumeSink
	sfx      game.VolumeSink
}

// SettingsPanelCallbacks holds optional hooks for the panel.
type SettingsPanelCallbacks struct {
	OnBack        func()              // back button submitted
	OnVolumeApply func(value float64) // after any volume is applied, e.g. to play a click
}

// NewSettingsPanelModule builds the panel centered on the screen. The panel
// starts hidden.
func NewSettingsPanelModule(settings *game.SettingsManager, music, sfx game.VolumeSink, callbacks SettingsPanelCallbacks) *SettingsPanelModule {
	if settings == nil {
		settings = game.NewSettingsManager(nil)
	}

	m := &SettingsPanelModule{
		settings: settings,
		music:    music,
		sfx:      sfx,
	}

	m.Panel = ui.NewWidget("SettingsPanel")
	m.Panel.Label = "Settings"
	m.Panel.Bounds = ui.CenteredRect(config.GameWindowWidth, config.GameWindowHeight,
		config.SettingsPanelWidth, config.SettingsPanelHeight)
	m.Panel.SetActive(false)

	m.MusicSlider = ui.NewSlider("MusicSlider", "Music", config.SliderStep)
	m.MusicSlider.OnValueChanged = func(v float64) {
		m.SetMusicVolume(v)
		if callbacks.OnVolumeApply != nil {
			callbacks.OnVolumeApply(v)
		}
	}

	m.SFXSlider = ui.NewSlider("SFXSlider", "Effects", config.SliderStep)
	m.SFXSlider.OnValueChanged = func(v float64) {
		m.SetSFXVolume(v)
		if callbacks.OnVolumeApply != nil {
			callbacks.OnVolumeApply(v)
		}
	}

	m.BackButton = ui.NewButton("BackButton", "Back", callbacks.OnBack)

	m.Panel.AddChild(m.BackButton)
	m.Panel.AddChild(m.MusicSlider.Widget)
	m.Panel.AddChild(m.SFXSlider.Widget)

	pad := config.SettingsPadding
	b := m.Panel.Bounds
	// Leave room for the title at the top of the panel.
	ui.StackVertical([]*ui.Widget{m.MusicSlider.Widget, m.SFXSlider.Widget, m.BackButton},
		b.Min.X+pad, b.Min.Y+pad+config.SettingsRowHeight,
		b.Dx()-2*pad, config.SettingsRowHeight, config.SettingsRowSpacing)

	return m
}

// SetMusicVolume applies v to the music sink and persists it.
// Does nothing when there is no music sink.
func (m *SettingsPanelModule) SetMusicVolume(v float64) {
	if m.music == nil {
		return
	}
	m.music.SetVolume(v)
	m.settings.SaveMusicVolume(v)
}

// SetSFXVolume applies v to the SFX sink and persists it.
// Does nothing when there is no SFX sink.
func (m *SettingsPanelModule) SetSFXVolume(v float64) {
	if m.sfx == nil {
		return
	}
	m.sfx.SetVolume(v)
	m.settings.SaveSFXVolume(v)
}

// LoadVolumeSettings reads the stored volumes, applies them to the sinks and
// moves the sliders without firing their change handlers, so nothing is
// written back.
func (m *SettingsPanelModule) LoadVolumeSettings() {
	vs := m.settings.LoadVolumeSettings()

	if m.music != nil {
		m.music.SetVolume(vs.MusicVolume)
	}
	if m.sfx != nil {
		m.sfx.SetVolume(vs.SFXVolume)
	}
	m.MusicSlider.SetValueWithoutNotify(vs.MusicVolume)
	m.SFXSlider.SetValueWithoutNotify(vs.SFXVolume)

	log.Printf("[SettingsPanelModule] Loaded volumes: music=%.2f sfx=%.2f", vs.MusicVolume, vs.SFXVolume)
}

// IsOpen reports whether the panel is visible.
func (m *SettingsPanelModule) IsOpen() bool {
	return m.Panel.Active()
}
