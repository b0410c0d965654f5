package modules

import (
	"log"

	"github.com/northharbor/blankisland/pkg/config"
	"github.com/northharbor/blankisland/pkg/game"
	"github.com/northharbor/blankisland/pkg/ui"
	"github.com/northharbor/blankisland/pkg/utils"
)

// MenuState is the main menu's mode.
type MenuState int

const (
	// MenuBrowsing: the Play / Settings / Quit buttons are usable.
	MenuBrowsing MenuState = iota
	// MenuSettings: the settings overlay is open and the buttons are disabled.
	MenuSettings
)

func (s MenuState) String() string {
	switch s {
	case MenuBrowsing:
		return "Browsing"
	case MenuSettings:
		return "Settings"
	default:
		return "Unknown"
	}
}

// SceneLoader requests a scene change by name.
type SceneLoader interface {
	LoadScene(name string) error
}

// MainMenuModule is the title screen controller.
//
// Play loads the configured gameplay scene, Settings opens the shared
// settings overlay and Quit ends the application. While the overlay is open
// the three buttons are not interactable and focus is held inside the
// overlay by the focus guard.
type MainMenuModule struct {
	Root           *ui.Widget
	PlayButton     *ui.Widget
	SettingsButton *ui.Widget
	QuitButton     *ui.Widget

	settingsPanel *SettingsPanelModule
	focus         *ui.FocusManager
	guard         *ui.FocusGuard

	scenes    SceneLoader
	gameState *game.GameState
	playScene string
	onClick   func()

	state MenuState
}

// MainMenuOptions are the collaborators of the main menu.
type MainMenuOptions struct {
	Scenes    SceneLoader
	GameState *game.GameState
	// PlayScene is the scene Play loads.
	PlayScene string
	// Settings may be nil; Settings then does nothing.
	Settings *SettingsPanelModule
	// OnClick runs whenever a control is activated.
	OnClick func()
}

// NewMainMenuModule builds the menu. Call Start before the first Update.
func NewMainMenuModule(opts MainMenuOptions) *MainMenuModule {
	m := &MainMenuModule{
		settingsPanel: opts.Settings,
		focus:         ui.NewFocusManager(),
		scenes:        opts.Scenes,
		gameState:     opts.GameState,
		playScene:     opts.PlayScene,
		onClick:       opts.OnClick,
	}
	if m.playScene == "" {
		m.playScene = config.SceneIsland
	}

	m.Root = ui.NewWidget("MainMenu")
	m.PlayButton = m.Root.AddChild(ui.NewButton("PlayButton", "Play", m.clicked(m.PlayGame)))
	m.SettingsButton = m.Root.AddChild(ui.NewButton("SettingsButton", "Settings", m.clicked(m.OpenSettings)))
	m.QuitButton = m.Root.AddChild(ui.NewButton("QuitButton", "Quit", m.clicked(m.QuitGame)))

	x := (config.GameWindowWidth - config.MenuButtonWidth) / 2
	ui.StackVertical([]*ui.Widget{m.PlayButton, m.SettingsButton, m.QuitButton},
		x, config.MenuFirstButtonY, config.MenuButtonWidth, config.MenuButtonHeight, config.MenuButtonSpacing)

	if m.settingsPanel != nil {
		m.Root.AddChild(m.settingsPanel.Panel)
		m.settingsPanel.BackButton.OnSubmit = m.clicked(m.CloseSettings)
	}

	m.guard = ui.NewFocusGuard(m.focus, m.PlayButton)
	return m
}

func (m *MainMenuModule) clicked(action func()) func() {
	return func() {
		if m.onClick != nil {
			m.onClick()
		}
		action()
	}
}

// Start hides the settings overlay, focuses Play and applies stored volumes.
func (m *MainMenuModule) Start() {
	if m.settingsPanel != nil {
		m.settingsPanel.Panel.SetActive(false)
		m.settingsPanel.LoadVolumeSettings()
	}
	m.state = MenuBrowsing
	m.guard.SetEnabled(true)
	m.guard.FocusDefault()
}

// State returns the current menu mode.
func (m *MainMenuModule) State() MenuState {
	return m.state
}

// Focus returns the menu's focus manager.
func (m *MainMenuModule) Focus() *ui.FocusManager {
	return m.focus
}

// PlayGame loads the gameplay scene. It is ignored while settings is open.
func (m *MainMenuModule) PlayGame() {
	if m.state == MenuSettings {
		return
	}
	if m.scenes == nil {
		log.Printf("[MainMenuModule] Warning: no scene loader, cannot load %q", m.playScene)
		return
	}
	if err := m.scenes.LoadScene(m.playScene); err != nil {
		log.Printf("[MainMenuModule] Error: %v", err)
		return
	}
	log.Printf("[MainMenuModule] Loading scene %q", m.playScene)
}

// OpenSettings shows the settings overlay, disables the menu buttons and
// focuses Back. Does nothing without a settings panel.
func (m *MainMenuModule) OpenSettings() {
	if m.settingsPanel == nil {
		return
	}
	if !m.guard.OpenOverlay(m.settingsPanel.Panel, m.settingsPanel.BackButton,
		m.PlayButton, m.SettingsButton, m.QuitButton) {
		return
	}
	m.state = MenuSettings
}

// CloseSettings hides the overlay, re-enables the menu buttons and focuses
// Play.
func (m *MainMenuModule) CloseSettings() {
	if m.settingsPanel == nil {
		return
	}
	m.guard.CloseOverlay()
	m.state = MenuBrowsing
}

// QuitGame ends the application.
func (m *MainMenuModule) QuitGame() {
	if m.gameState == nil {
		log.Println("Quitting game...")
		return
	}
	m.gameState.RequestQuit()
}

// Update processes one frame of input.
func (m *MainMenuModule) Update(in utils.Input) {
	scope := m.Root
	if m.state == MenuSettings {
		scope = m.settingsPanel.Panel
		if in.CancelPressed() || in.PausePressed() {
			m.clicked(m.CloseSettings)()
			return
		}
	}
	driveMenu(in, m.focus, scope)
}
