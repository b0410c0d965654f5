// Package app wires the services and scenes into an ebiten.Game.
//
// main.go builds an App with NewApp and hands it to ebiten.RunGame.
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/northharbor/blankisland/pkg/achievements"
	"github.com/northharbor/blankisland/pkg/config"
	"github.com/northharbor/blankisland/pkg/embedded"
	"github.com/northharbor/blankisland/pkg/game"
	"github.com/northharbor/blankisland/pkg/scenes"
	"github.com/northharbor/blankisland/pkg/ui"
	"github.com/northharbor/blankisland/pkg/utils"
)

// AppName names the gdata storage directory.
const AppName = "blankisland"

// Config holds the startup options.
type Config struct {
	// Verbose enables log output.
	Verbose bool
	// ConfigPath overrides the embedded data/game.yaml with a file on disk.
	ConfigPath string
	// StartScene overrides scenes.start from the config.
	StartScene string
	// Watch reloads ConfigPath when it changes. Ignored without ConfigPath.
	Watch bool
}

// App implements ebiten.Game.
type App struct {
	sceneManager *game.SceneManager
	services     *scenes.Services
	watcher      *config.Watcher
	configPath   string
	verbose      bool
}

// NewApp creates the application and loads the start scene.
//
// embedded.Init must be called first.
func NewApp(cfg Config) (*App, error) {
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	gameConfig, err := loadGameConfig(cfg.ConfigPath)
	if err != nil {
		return nil, err
	}

	prefs, manager := game.OpenPrefs(AppName)

	audioContext := audio.NewContext(gameConfig.Audio.SampleRate)
	audioManager, err := game.NewSynthAudioManager(audioContext)
	if err != nil {
		log.Printf("[App] Warning: audio disabled: %v", err)
		audioManager = game.NewAudioManager(nil, nil)
	}

	// Touch devices have no cursor to lock.
	var cursor game.CursorController = game.EbitenCursor{}
	if utils.IsMobile() {
		cursor = nil
	}

	sceneManager := game.NewSceneManager()
	services := &scenes.Services{
		Config:       gameConfig,
		Scenes:       sceneManager,
		GameState:    game.NewGameState(cursor),
		Settings:     game.NewSettingsManagerWithDefault(prefs, gameConfig.Audio.DefaultVolume),
		Audio:        audioManager,
		Achievements: achievements.NewService(gameConfig.Achievements.Platform, manager),
		Input:        utils.NewEbitenInput(config.GameWindowWidth),
		Renderer:     ui.NewRenderer(),
	}
	scenes.Register(services)

	start := cfg.StartScene
	if start == "" {
		start = gameConfig.Scenes.Start
	}
	if err := sceneManager.LoadScene(start); err != nil {
		return nil, fmt.Errorf("failed to load start scene (registered: %v): %w", sceneManager.Names(), err)
	}
	log.Printf("[App] Starting scene: %s", start)

	a := &App{
		sceneManager: sceneManager,
		services:     services,
		configPath:   cfg.ConfigPath,
		verbose:      cfg.Verbose,
	}

	if cfg.Watch && cfg.ConfigPath != "" {
		w, err := config.NewWatcher(cfg.ConfigPath)
		if err != nil {
			log.Printf("[App] Warning: config watch disabled: %v", err)
		} else {
			a.watcher = w
			log.Printf("[App] Watching %s", cfg.ConfigPath)
		}
	}

	audioManager.PlayMusic()
	return a, nil
}

// loadGameConfig reads path, or the embedded default when path is empty.
func loadGameConfig(path string) (*config.GameConfig, error) {
	if path != "" {
		return config.LoadGameConfig(path)
	}
	data, err := embedded.ReadFile(config.DefaultGameConfigPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded game config: %w", err)
	}
	cfg, err := config.ParseGameConfig(data)
	if err != nil {
		return nil, fmt.Errorf("invalid embedded game config: %w", err)
	}
	return cfg, nil
}

// WindowConfig returns the window settings from the loaded config.
func (a *App) WindowConfig() config.WindowConfig {
	return a.services.Config.Window
}

// Update advances one tick. It returns ebiten.Termination once a quit has
// been requested.
func (a *App) Update() error {
	gs := a.services.GameState
	if gs.QuitRequested() {
		gs.SetTimeScale(1)
		a.Close()
		return ebiten.Termination
	}

	a.pollConfig()

	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	}

	deltaTime := 1.0 / 60.0
	a.sceneManager.Update(deltaTime)
	return nil
}

// pollConfig applies a changed config file by rebuilding the current scene.
func (a *App) pollConfig() {
	if a.watcher == nil {
		return
	}
	select {
	case err := <-a.watcher.Errors:
		log.Printf("[App] Warning: config watcher: %v", err)
	default:
	}
	if _, changed := a.watcher.Poll(); !changed {
		return
	}
	a.reloadConfig()
}

// reloadConfig rereads the config file and rebuilds the current scene from
// it. A broken file keeps the previous config.
func (a *App) reloadConfig() {
	cfg, err := config.LoadGameConfig(a.configPath)
	if err != nil {
		log.Printf("[App] Warning: keeping previous config: %v", err)
		return
	}
	*a.services.Config = *cfg

	current := a.sceneManager.CurrentName()
	if err := a.sceneManager.LoadScene(current); err != nil {
		log.Printf("[App] Warning: reload of %q failed: %v", current, err)
		return
	}
	log.Printf("[App] Config reloaded, rebuilt scene %s", current)
}

// Draw renders the current scene.
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen letterboxes the scaled screen on black with linear
// filtering.
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout returns the fixed logical screen size.
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.GameWindowWidth, config.GameWindowHeight
}

// Close stops the config watcher.
func (a *App) Close() {
	if a.watcher == nil {
		return
	}
	if err := a.watcher.Close(); err != nil {
		log.Printf("[App] Warning: %v", err)
	}
}

// IsVerbose reports whether logging is enabled.
func (a *App) IsVerbose() bool {
	return a.verbose
}
