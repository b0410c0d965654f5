package modules

import (
	"log"

	"github.com/northharbor/blankisland/pkg/config"
	"github.com/northharbor/blankisland/pkg/game"
	"github.com/northharbor/blankisland/pkg/geom"
	"github.com/northharbor/blankisland/pkg/ui"
	"github.com/northharbor/blankisland/pkg/utils"
)

// PauseState is the in-game pause mode.
type PauseState int

const (
	Running PauseState = iota
	Paused
	PausedWithSettings
)

func (s PauseState) String() string {
	switch s {
	case Running:
		return "Running"
	case Paused:
		return "Paused"
	case PausedWithSettings:
		return "PausedWithSettings"
	default:
		return "Unknown"
	}
}

// ViewpointFunc returns the active camera, or false when there is none.
type ViewpointFunc func() (geom.Viewpoint, bool)

// PauseMenuCallbacks are optional hooks run on pause transitions.
type PauseMenuCallbacks struct {
	OnPause  func()
	OnResume func()
	OnClick  func()
}

// PauseMenuOptions are the collaborators of the pause menu.
type PauseMenuOptions struct {
	GameState *game.GameState
	// Settings may be nil; Settings then does nothing.
	Settings *SettingsPanelModule
	// Viewpoint supplies the camera the pause surface is placed in front of.
	Viewpoint ViewpointFunc
	// CanvasDistance is how far in front of the camera the surface sits.
	// Zero selects config.DefaultCanvasDistance.
	CanvasDistance float64
	Callbacks      PauseMenuCallbacks
}

// PauseMenuModule is the in-game pause controller.
//
// State transitions (pause signal is Escape, gamepad button 7 or 9, or the
// mobile pause zone):
//
//	Running            --signal--> Paused
//	Paused             --signal--> Running
//	PausedWithSettings --signal--> Paused (settings closed first)
//
// Pausing freezes the time multiplier, frees the cursor, places the pause
// surface in front of the active camera and focuses Resume. Resuming undoes
// each of those.
type PauseMenuModule struct {
	PausePanel     *ui.Widget
	ResumeButton   *ui.Widget
	SettingsButton *ui.Widget
	QuitButton     *ui.Widget

	root          *ui.Widget
	settingsPanel *SettingsPanelModule
	focus         *ui.FocusManager
	guard         *ui.FocusGuard

	gameState      *game.GameState
	viewpoint      ViewpointFunc
	canvasDistance float64
	callbacks      PauseMenuCallbacks

	state     PauseState
	placement geom.Placement
	placed    bool
}

// NewPauseMenuModule builds the pause menu. Call Start before the first
// Update.
func NewPauseMenuModule(opts PauseMenuOptions) *PauseMenuModule {
	gs := opts.GameState
	if gs == nil {
		gs = game.NewGameState(nil)
	}
	m := &PauseMenuModule{
		settingsPanel:  opts.Settings,
		focus:          ui.NewFocusManager(),
		gameState:      gs,
		viewpoint:      opts.Viewpoint,
		canvasDistance: opts.CanvasDistance,
		callbacks:      opts.Callbacks,
	}
	if m.canvasDistance <= 0 {
		m.canvasDistance = config.DefaultCanvasDistance
	}

	m.root = ui.NewWidget("PauseRoot")
	m.PausePanel = m.root.AddChild(ui.NewWidget("PausePanel"))
	m.PausePanel.Label = "Paused"
	m.PausePanel.Bounds = ui.CenteredRect(config.GameWindowWidth, config.GameWindowHeight,
		config.MenuButtonWidth+2*config.SettingsPadding, config.SettingsPanelHeight)

	m.ResumeButton = m.PausePanel.AddChild(ui.NewButton("ResumeButton", "Resume", m.clicked(m.Resume)))
	m.SettingsButton = m.PausePanel.AddChild(ui.NewButton("SettingsButton", "Settings", m.clicked(m.OpenSettings)))
	m.QuitButton = m.PausePanel.AddChild(ui.NewButton("QuitButton", "Quit", m.clicked(m.QuitGame)))

	b := m.PausePanel.Bounds
	ui.StackVertical([]*ui.Widget{m.ResumeButton, m.SettingsButton, m.QuitButton},
		b.Min.X+config.SettingsPadding, b.Min.Y+config.SettingsPadding+config.SettingsRowHeight,
		config.MenuButtonWidth, config.MenuButtonHeight, config.MenuButtonSpacing)

	if m.settingsPanel != nil {
		m.root.AddChild(m.settingsPanel.Panel)
		m.settingsPanel.BackButton.OnSubmit = m.clicked(m.CloseSettings)
	}

	m.guard = ui.NewFocusGuard(m.focus, m.ResumeButton)
	return m
}

func (m *PauseMenuModule) clicked(action func()) func() {
	return func() {
		if m.callbacks.OnClick != nil {
			m.callbacks.OnClick()
		}
		action()
	}
}

// Start puts the game in the running state: menus hidden, time multiplier 1,
// cursor locked, stored volumes applied.
func (m *PauseMenuModule) Start() {
	m.PausePanel.SetActive(false)
	if m.settingsPanel != nil {
		m.settingsPanel.Panel.SetActive(false)
		m.settingsPanel.LoadVolumeSettings()
	}
	m.guard.SetEnabled(false)
	m.state = Running
	m.gameState.SetTimeScale(1)
	m.gameState.SetCursorLocked(true)
}

// State returns the current pause mode.
func (m *PauseMenuModule) State() PauseState {
	return m.state
}

// IsPaused reports whether the game is paused, with or without settings.
func (m *PauseMenuModule) IsPaused() bool {
	return m.state != Running
}

// Root returns the widget tree drawn by the scene.
func (m *PauseMenuModule) Root() *ui.Widget {
	return m.root
}

// Focus returns the pause menu's focus manager.
func (m *PauseMenuModule) Focus() *ui.FocusManager {
	return m.focus
}

// Placement returns where the pause surface was last placed, and whether it
// has been placed at all.
func (m *PauseMenuModule) Placement() (geom.Placement, bool) {
	return m.placement, m.placed
}

// HandlePauseSignal advances the state machine for one pause press.
func (m *PauseMenuModule) HandlePauseSignal() {
	switch m.state {
	case PausedWithSettings:
		m.CloseSettings()
	case Paused:
		m.Resume()
	default:
		m.Pause()
	}
}

// Pause shows the pause menu and freezes gameplay. Already paused is a no-op.
func (m *PauseMenuModule) Pause() {
	if m.state != Running {
		return
	}
	m.PausePanel.SetActive(true)
	m.gameState.SetTimeScale(0)
	m.state = Paused
	m.placeSurface()
	m.gameState.SetCursorLocked(false)

	m.guard.SetEnabled(true)
	m.guard.FocusDefault()

	if m.callbacks.OnPause != nil {
		m.callbacks.OnPause()
	}
	log.Printf("[PauseMenuModule] Paused")
}

// Resume hides the pause menu (and settings) and unfreezes gameplay.
// Not paused is a no-op.
func (m *PauseMenuModule) Resume() {
	if m.state == Running {
		return
	}
	m.guard.CloseOverlayQuietly()
	m.PausePanel.SetActive(false)
	m.gameState.SetTimeScale(1)
	m.state = Running
	m.gameState.SetCursorLocked(true)

	m.guard.SetEnabled(false)
	m.focus.SetSelected(nil)

	if m.callbacks.OnResume != nil {
		m.callbacks.OnResume()
	}
	log.Printf("[PauseMenuModule] Resumed")
}

// OpenSettings opens the settings overlay over the pause menu, disabling the
// pause buttons. Only valid while paused; does nothing without a panel.
func (m *PauseMenuModule) OpenSettings() {
	if m.settingsPanel == nil || m.state != Paused {
		return
	}
	if !m.guard.OpenOverlay(m.settingsPanel.Panel, m.settingsPanel.BackButton,
		m.ResumeButton, m.SettingsButton, m.QuitButton) {
		return
	}
	m.state = PausedWithSettings
}

// CloseSettings closes the overlay and focuses Resume.
func (m *PauseMenuModule) CloseSettings() {
	if m.state != PausedWithSettings {
		return
	}
	m.guard.CloseOverlay()
	m.state = Paused
}

// QuitGame restores the time multiplier and ends the application.
func (m *PauseMenuModule) QuitGame() {
	m.gameState.SetTimeScale(1)
	m.gameState.RequestQuit()
}

// Update processes one frame of input. The pause signal is checked first;
// menu navigation only applies while paused.
func (m *PauseMenuModule) Update(in utils.Input) {
	if in.PausePressed() {
		m.HandlePauseSignal()
		return
	}
	if m.state == Running {
		return
	}
	if in.CancelPressed() {
		m.HandlePauseSignal()
		return
	}

	scope := m.PausePanel
	if m.state == PausedWithSettings {
		scope = m.settingsPanel.Panel
	}
	driveMenu(in, m.focus, scope)
}

func (m *PauseMenuModule) placeSurface() {
	if m.viewpoint == nil {
		return
	}
	view, ok := m.viewpoint()
	if !ok {
		log.Printf("[PauseMenuModule] Warning: no active camera, pause surface not moved")
		return
	}
	m.placement = geom.PlaceFacing(view, m.canvasDistance)
	m.placed = true
}
