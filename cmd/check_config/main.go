// check_config parses a game config file the way the game does and prints
// what it resolved to, including defaults.
//
//	go run ./cmd/check_config -config data/game.yaml
package main

import (
	"flag"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/northharbor/blankisland/pkg/config"
)

func main() {
	path := flag.String("config", config.DefaultGameConfigPath, "Game config file to check")
	flag.Parse()

	cfg, err := config.LoadGameConfig(*path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "FAIL %v\n", err)
		os.Exit(1)
	}

	if cfg.Splash.NextScene == "" {
		fmt.Println("WARN splash.nextScene is not set; the splash screen will not hand over")
	}
	known := map[string]bool{config.SceneSplash: true, config.SceneMainMenu: true, config.SceneIsland: true}
	for field, name := range map[string]string{
		"scenes.start":     cfg.Scenes.Start,
		"scenes.mainMenu":  cfg.Scenes.MainMenu,
		"scenes.play":      cfg.Scenes.Play,
		"splash.nextScene": cfg.Splash.NextScene,
	} {
		if name != "" && !known[name] {
			fmt.Printf("WARN %s: unknown scene %q\n", field, name)
		}
	}
	seen := map[string]bool{}
	for _, t := range cfg.Achievements.Triggers {
		if seen[t.AchievementID] {
			fmt.Printf("WARN achievement %s has more than one trigger volume\n", t.AchievementID)
		}
		seen[t.AchievementID] = true
	}

	out, err := yaml.Marshal(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "FAIL encode: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("OK %s\n---\n%s", *path, out)
}
