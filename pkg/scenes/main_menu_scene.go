package scenes

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/northharbor/blankisland/pkg/config"
	"github.com/northharbor/blankisland/pkg/modules"
	"github.com/northharbor/blankisland/pkg/ui"
	"github.com/northharbor/blankisland/pkg/utils"
)

var menuBackgroundColor = color.RGBA{R: 18, G: 40, B: 58, A: 255}

// MainMenuScene is the title screen.
type MainMenuScene struct {
	menu     *modules.MainMenuModule
	input    utils.Input
	renderer *ui.Renderer
	title    string
}

// NewMainMenuScene builds the menu with its own settings overlay.
func NewMainMenuScene(s *Services) *MainMenuScene {
	menu := modules.NewMainMenuModule(modules.MainMenuOptions{
		Scenes:    s.Scenes,
		GameState: s.GameState,
		PlayScene: s.Config.Scenes.Play,
		Settings:  newSettingsPanel(s),
		OnClick:   s.Audio.PlayClick,
	})
	menu.Start()

	// Coming back from the island must leave the cursor usable.
	s.GameState.SetCursorLocked(false)
	s.GameState.SetTimeScale(1)

	return &MainMenuScene{
		menu:     menu,
		input:    s.Input,
		renderer: s.Renderer,
		title:    s.Config.Window.Title,
	}
}

// Menu exposes the menu module for tests.
func (sc *MainMenuScene) Menu() *modules.MainMenuModule {
	return sc.menu
}

// Update forwards input to the menu.
func (sc *MainMenuScene) Update(deltaTime float64) {
	sc.menu.Update(sc.input)
}

// Draw renders the title and the menu tree.
func (sc *MainMenuScene) Draw(screen *ebiten.Image) {
	screen.Fill(menuBackgroundColor)
	sc.renderer.DrawLabel(screen, sc.title, config.GameWindowWidth/2, 120, color.White)
	sc.renderer.Draw(screen, sc.menu.Root, sc.menu.Focus())
}
