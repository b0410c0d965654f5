package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultGameConfigPath is the embedded game configuration path.
const DefaultGameConfigPath = "data/game.yaml"

// Scene names known to the application.
const (
	SceneSplash   = "splash"
	SceneMainMenu = "main_menu"
	SceneIsland   = "1_island_scene"
)

// GameConfig is the top-level configuration loaded from data/game.yaml.
type GameConfig struct {
	Window       WindowConfig       `yaml:"window"`
	Scenes       ScenesConfig       `yaml:"scenes"`
	Splash       SplashConfig       `yaml:"splash"`
	Pause        PauseConfig        `yaml:"pause"`
	Audio        AudioConfig        `yaml:"audio"`
	Achievements AchievementsConfig `yaml:"achievements"`
}

// WindowConfig describes the logical screen.
type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

// ScenesConfig names the scenes the menus transition to.
type ScenesConfig struct {
	Start    string `yaml:"start"`    // scene shown first
	MainMenu string `yaml:"mainMenu"` // scene loaded by the quit-to-menu paths
	Play     string `yaml:"play"`     // scene loaded by the Play button
}

// SplashElement is one logo of the splash sequence.
// Image is optional; when it cannot be loaded the Text is drawn instead.
type SplashElement struct {
	Name  string `yaml:"name"`
	Image string `yaml:"image"`
	Text  string `yaml:"text"`
}

// SplashConfig drives the splash sequencer.
type SplashConfig struct {
	FadeDuration    float64         `yaml:"fadeDuration"`    // seconds
	DisplayDuration float64         `yaml:"displayDuration"` // seconds
	NextScene       string          `yaml:"nextScene"`
	CanSkip         *bool           `yaml:"canSkip"`
	Elements        []SplashElement `yaml:"elements"`
}

// Skippable reports whether input skips the splash sequence (default true).
func (c SplashConfig) Skippable() bool {
	return c.CanSkip == nil || *c.CanSkip
}

// PauseConfig holds pause overlay placement.
type PauseConfig struct {
	CanvasDistance float64 `yaml:"canvasDistance"`
}

// AudioConfig holds volume defaults.
type AudioConfig struct {
	DefaultVolume float64 `yaml:"defaultVolume"`
	SampleRate    int     `yaml:"sampleRate"`
}

// TriggerVolumeConfig is one achievement-granting trigger volume placed in
// the island scene, in world units.
type TriggerVolumeConfig struct {
	AchievementID string   `yaml:"achievementId"`
	X             float64  `yaml:"x"`
	Y             float64  `yaml:"y"`
	Width         float64  `yaml:"width"`
	Height        float64  `yaml:"height"`
	Tags          []string `yaml:"tags"`
}

// AchievementsConfig selects the achievement backend and the trigger volumes.
type AchievementsConfig struct {
	Platform string                `yaml:"platform"` // local, log, none
	Triggers []TriggerVolumeConfig `yaml:"triggers"`
}

// Defaults used when a field is missing from the YAML.
const (
	DefaultFadeDuration    = 0.5
	DefaultDisplayDuration = 2.0
	DefaultCanvasDistance  = 3.0
	DefaultVolume          = 0.7
	DefaultSampleRate      = 48000
	DefaultPlayerTag       = "Player"
	DefaultAchievementID   = "Rune1Found"
)

// DefaultGameConfig returns the configuration used when no file is available.
func DefaultGameConfig() *GameConfig {
	cfg := seededGameConfig()
	applyGameDefaults(&cfg)
	return &cfg
}

// seededGameConfig holds the numeric defaults for which 0 is a meaningful
// value. They are set before decoding so an explicit 0 in the file is kept.
func seededGameConfig() GameConfig {
	return GameConfig{
		Splash: SplashConfig{
			FadeDuration:    DefaultFadeDuration,
			DisplayDuration: DefaultDisplayDuration,
		},
		Audio: AudioConfig{DefaultVolume: DefaultVolume},
	}
}

// LoadGameConfig reads a game configuration from disk.
func LoadGameConfig(path string) (*GameConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read game config file %s: %w", path, err)
	}
	cfg, err := ParseGameConfig(data)
	if err != nil {
		return nil, fmt.Errorf("invalid game config in %s: %w", path, err)
	}
	return cfg, nil
}

// ParseGameConfig parses YAML bytes, applies defaults and validates.
func ParseGameConfig(data []byte) (*GameConfig, error) {
	cfg := seededGameConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse game config YAML: %w", err)
	}

	applyGameDefaults(&cfg)

	if err := validateGameConfig(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func applyGameDefaults(cfg *GameConfig) {
	if cfg.Window.Width == 0 {
		cfg.Window.Width = GameWindowWidth
	}
	if cfg.Window.Height == 0 {
		cfg.Window.Height = GameWindowHeight
	}
	if cfg.Window.Title == "" {
		cfg.Window.Title = "Blank Island"
	}

	if cfg.Scenes.Start == "" {
		cfg.Scenes.Start = SceneSplash
	}
	if cfg.Scenes.MainMenu == "" {
		cfg.Scenes.MainMenu = SceneMainMenu
	}
	if cfg.Scenes.Play == "" {
		cfg.Scenes.Play = SceneIsland
	}

	// NextScene has no default; the splash sequencer reports an unset name.

	if cfg.Pause.CanvasDistance == 0 {
		cfg.Pause.CanvasDistance = DefaultCanvasDistance
	}

	if cfg.Audio.SampleRate == 0 {
		cfg.Audio.SampleRate = DefaultSampleRate
	}

	if cfg.Achievements.Platform == "" {
		cfg.Achievements.Platform = "local"
	}
	for i := range cfg.Achievements.Triggers {
		if len(cfg.Achievements.Triggers[i].Tags) == 0 {
			cfg.Achievements.Triggers[i].Tags = []string{DefaultPlayerTag}
		}
		if cfg.Achievements.Triggers[i].AchievementID == "" {
			cfg.Achievements.Triggers[i].AchievementID = DefaultAchievementID
		}
	}
}

func validateGameConfig(cfg *GameConfig) error {
	if cfg.Splash.FadeDuration < 0 || cfg.Splash.DisplayDuration < 0 {
		return fmt.Errorf("splash durations must not be negative")
	}
	if cfg.Audio.DefaultVolume < 0 || cfg.Audio.DefaultVolume > 1 {
		return fmt.Errorf("audio.defaultVolume %.2f out of range [0,1]", cfg.Audio.DefaultVolume)
	}
	for i, tr := range cfg.Achievements.Triggers {
		if tr.Width <= 0 || tr.Height <= 0 {
			return fmt.Errorf("achievements.triggers[%d] (%s): size must be positive", i, tr.AchievementID)
		}
	}
	return nil
}
