// verify_pause_menu runs the pause menu on its own over a plain backdrop, with
// in-memory preferences, so its layout, focus and state machine can be
// checked by hand.
//
//	go run ./cmd/verify_pause_menu -verbose
package main

import (
	"errors"
	"flag"
	"fmt"
	"image/color"
	"io"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/northharbor/blankisland/pkg/config"
	"github.com/northharbor/blankisland/pkg/game"
	"github.com/northharbor/blankisland/pkg/geom"
	"github.com/northharbor/blankisland/pkg/modules"
	"github.com/northharbor/blankisland/pkg/ui"
	"github.com/northharbor/blankisland/pkg/utils"
)

var verbose = flag.Bool("verbose", false, "Show debug logs")

var errQuit = errors.New("quit")

// VerifyPauseMenuGame hosts a PauseMenuModule with nothing else running.
type VerifyPauseMenuGame struct {
	gameState *game.GameState
	pause     *modules.PauseMenuModule
	input     utils.Input
	renderer  *ui.Renderer
	viewpoint geom.Viewpoint
	frames    int
}

// NewVerifyPauseMenuGame creates the verifier.
func NewVerifyPauseMenuGame() (*VerifyPauseMenuGame, error) {
	audioManager, err := game.NewSynthAudioManager(audio.NewContext(config.DefaultSampleRate))
	if err != nil {
		return nil, fmt.Errorf("failed to create audio: %w", err)
	}
	audioManager.PlayMusic()

	vpg := &VerifyPauseMenuGame{
		gameState: game.NewGameState(game.EbitenCursor{}),
		input:     utils.NewEbitenInput(config.GameWindowWidth),
		renderer:  ui.NewRenderer(),
		viewpoint: geom.Viewpoint{Forward: geom.Vec3{0, 0, 1}},
	}

	settings := game.NewSettingsManager(game.NewMemoryPrefs())
	panel := modules.NewSettingsPanelModule(settings, audioManager.MusicSink(), audioManager.SFXSink(),
		modules.SettingsPanelCallbacks{
			OnVolumeApply: func(v float64) {
				log.Printf("[Callback] Volume applied: %.2f", v)
				audioManager.PlayClick()
			},
		})

	vpg.pause = modules.NewPauseMenuModule(modules.PauseMenuOptions{
		GameState: vpg.gameState,
		Settings:  panel,
		Viewpoint: func() (geom.Viewpoint, bool) { return vpg.viewpoint, true },
		Callbacks: modules.PauseMenuCallbacks{
			OnPause:  func() { log.Println("[Callback] Paused") },
			OnResume: func() { log.Println("[Callback] Resumed") },
			OnClick:  audioManager.PlayClick,
		},
	})
	vpg.pause.Start()
	vpg.pause.Pause()

	log.Println("[VerifyPauseMenuGame] Pause menu verifier started")
	return vpg, nil
}

// Update implements ebiten.Game.
func (vpg *VerifyPauseMenuGame) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || vpg.gameState.QuitRequested() {
		log.Println("[VerifyPauseMenuGame] Exiting")
		return errQuit
	}

	// R turns the fake camera so the surface placement visibly changes.
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		f := vpg.viewpoint.Forward
		vpg.viewpoint.Forward = geom.Vec3{f.Z(), 0, -f.X()}
	}

	vpg.pause.Update(vpg.input)
	vpg.frames += int(vpg.gameState.TimeScale())
	return nil
}

// Draw implements ebiten.Game.
func (vpg *VerifyPauseMenuGame) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{50, 100, 50, 255})

	if vpg.pause.IsPaused() {
		vpg.renderer.DimScreen(screen)
		vpg.renderer.Draw(screen, vpg.pause.Root(), vpg.pause.Focus())
	}
	vpg.drawDebugInfo(screen)
}

// Layout implements ebiten.Game.
func (vpg *VerifyPauseMenuGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.GameWindowWidth, config.GameWindowHeight
}

func (vpg *VerifyPauseMenuGame) drawDebugInfo(screen *ebiten.Image) {
	focused := "none"
	if w := vpg.pause.Focus().Selected(); w != nil {
		focused = w.Name
	}
	surface := "not placed"
	if p, ok := vpg.pause.Placement(); ok {
		surface = fmt.Sprintf("(%.1f, %.1f, %.1f) yaw %.2f", p.Position.X(), p.Position.Y(), p.Position.Z(), p.Yaw)
	}

	ebitenutil.DebugPrint(screen, fmt.Sprintf(`Pause menu verifier
state:      %v
time scale: %.0f
cursor:     locked=%v
focus:      %s
surface:    %s
frames run: %d

ESC = pause signal, R = turn camera, Q = quit`,
		vpg.pause.State(), vpg.gameState.TimeScale(), vpg.gameState.CursorLocked(),
		focused, surface, vpg.frames))
}

func main() {
	flag.Parse()
	if !*verbose {
		log.SetOutput(io.Discard)
	}

	vpg, err := NewVerifyPauseMenuGame()
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
	ebiten.SetWindowTitle("Pause menu verifier")

	if err := ebiten.RunGame(vpg); err != nil && !errors.Is(err, errQuit) {
		log.Fatal(err)
	}
}
