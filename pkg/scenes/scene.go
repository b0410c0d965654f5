package scenes

import (
	"github.com/northharbor/blankisland/pkg/achievements"
	"github.com/northharbor/blankisland/pkg/config"
	"github.com/northharbor/blankisland/pkg/game"
	"github.com/northharbor/blankisland/pkg/modules"
	"github.com/northharbor/blankisland/pkg/ui"
	"github.com/northharbor/blankisland/pkg/utils"
)

// Scene is a type alias for game.Scene.
type Scene = game.Scene

// Services are the long-lived collaborators shared by every scene. The app
// creates them once; scenes are rebuilt from them on every load.
type Services struct {
	Config       *config.GameConfig
	Scenes       *game.SceneManager
	GameState    *game.GameState
	Settings     *game.SettingsManager
	Audio        *game.AudioManager
	Achievements achievements.Service
	Input        utils.Input
	Renderer     *ui.Renderer
}

// Register adds a factory for every scene to s.Scenes under its well-known
// name.
func Register(s *Services) {
	s.Scenes.Register(config.SceneSplash, func() game.Scene {
		return NewSplashScene(s)
	})
	s.Scenes.Register(config.SceneMainMenu, func() game.Scene {
		return NewMainMenuScene(s)
	})
	s.Scenes.Register(config.SceneIsland, func() game.Scene {
		return NewIslandScene(s)
	})
}

// newSettingsPanel builds the settings overlay wired to the shared sinks.
func newSettingsPanel(s *Services) *modules.SettingsPanelModule {
	return modules.NewSettingsPanelModule(s.Settings, s.Audio.MusicSink(), s.Audio.SFXSink(),
		modules.SettingsPanelCallbacks{OnVolumeApply: func(float64) { s.Audio.PlayClick() }})
}
