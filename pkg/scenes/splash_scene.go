package scenes

import (
	"fmt"
	"image"
	"image/color"
	_ "image/png"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/northharbor/blankisland/pkg/config"
	"github.com/northharbor/blankisland/pkg/embedded"
	"github.com/northharbor/blankisland/pkg/modules"
	"github.com/northharbor/blankisland/pkg/ui"
	"github.com/northharbor/blankisland/pkg/utils"
)

// SplashScene shows the studio logos in turn and then hands over to the
// main menu.
type SplashScene struct {
	sequencer *modules.SplashSequencer
	elements  []config.SplashElement
	images    []*ebiten.Image
	input     utils.Input
	renderer  *ui.Renderer
}

// NewSplashScene creates the splash scene from the splash config. Elements
// whose image is missing are drawn as text.
func NewSplashScene(s *Services) *SplashScene {
	cfg := s.Config.Splash
	scene := &SplashScene{
		elements: cfg.Elements,
		input:    s.Input,
		renderer: s.Renderer,
	}

	names := make([]string, 0, len(cfg.Elements))
	for _, e := range cfg.Elements {
		names = append(names, e.Name)
		img, err := loadSplashImage(e.Image)
		if err != nil {
			log.Printf("[SplashScene] Warning: %v (drawing %q as text)", err, e.Name)
		}
		scene.images = append(scene.images, img)
	}

	scene.sequencer = modules.NewSplashSequencer(modules.SplashSequencerConfig{
		Names:           names,
		FadeDuration:    cfg.FadeDuration,
		DisplayDuration: cfg.DisplayDuration,
		NextScene:       cfg.NextScene,
		CanSkip:         cfg.Skippable(),
	}, s.Scenes)

	log.Printf("[SplashScene] %d elements, next scene %q", len(names), cfg.NextScene)
	return scene
}

func loadSplashImage(path string) (*ebiten.Image, error) {
	if path == "" {
		return nil, fmt.Errorf("no image configured")
	}
	if !embedded.Exists(path) {
		return nil, fmt.Errorf("image %s not found", path)
	}
	f, err := embedded.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return ebiten.NewImageFromImage(img), nil
}

// Sequencer exposes the sequencer for tests.
func (sc *SplashScene) Sequencer() *modules.SplashSequencer {
	return sc.sequencer
}

// Update steps the sequence with unscaled time.
func (sc *SplashScene) Update(deltaTime float64) {
	sc.sequencer.Update(deltaTime, sc.input)
}

// Draw renders the visible elements centered on a black screen.
func (sc *SplashScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	b := screen.Bounds()
	cx, cy := float64(b.Dx())/2, float64(b.Dy())/2

	for i, e := range sc.sequencer.Elements() {
		if e.Alpha <= 0 {
			continue
		}
		if img := sc.images[i]; img != nil {
			op := &ebiten.DrawImageOptions{}
			ib := img.Bounds()
			op.GeoM.Translate(cx-float64(ib.Dx())/2, cy-float64(ib.Dy())/2)
			op.ColorScale.ScaleAlpha(float32(e.Alpha))
			screen.DrawImage(img, op)
			continue
		}
		label := sc.elements[i].Text
		if label == "" {
			label = e.Name
		}
		sc.renderer.DrawLabelAlpha(screen, label, cx, cy, color.White, e.Alpha)
	}
}
