package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/northharbor/blankisland/pkg/app"
	"github.com/northharbor/blankisland/pkg/embedded"
)

func main() {
	verbose := flag.Bool("verbose", false, "Enable verbose logging")
	configPath := flag.String("config", "", "Load the game config from this file instead of the embedded data/game.yaml")
	scene := flag.String("scene", "", "Start in this scene (splash, main_menu, 1_island_scene)")
	watch := flag.Bool("watch", false, "Reload the -config file when it changes")
	flag.Parse()

	embedded.Init(dataFS)

	game, err := app.NewApp(app.Config{
		Verbose:    *verbose,
		ConfigPath: *configPath,
		StartScene: *scene,
		Watch:      *watch,
	})
	if err != nil {
		fail(err)
	}
	defer game.Close()

	window := game.WindowConfig()
	ebiten.SetWindowSize(window.Width, window.Height)
	ebiten.SetWindowTitle(window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(game); err != nil {
		game.Close()
		fail(err)
	}
}

// fail reports err on stderr, which stays visible when logging is off.
func fail(err error) {
	fmt.Fprintf(os.Stderr, "blankisland: %v\n", err)
	os.Exit(1)
}
