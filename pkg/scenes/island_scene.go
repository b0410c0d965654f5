package scenes

import (
	"fmt"
	"image"
	"image/color"
	"log"
	"math"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/northharbor/blankisland/pkg/achievements"
	"github.com/northharbor/blankisland/pkg/config"
	"github.com/northharbor/blankisland/pkg/game"
	"github.com/northharbor/blankisland/pkg/geom"
	"github.com/northharbor/blankisland/pkg/modules"
	"github.com/northharbor/blankisland/pkg/ui"
	"github.com/northharbor/blankisland/pkg/utils"
)

var (
	seaColor    = color.RGBA{R: 22, G: 74, B: 110, A: 255}
	islandColor = [4]uint8{196, 178, 120, 255}
	playerColor = [4]uint8{236, 92, 64, 255}
	runeColor   = [4]uint8{120, 230, 255, config.TriggerDebugAlpha}
	spentColor  = [4]uint8{90, 90, 90, config.TriggerDebugAlpha}
)

// islandMargin is the sand border between the sea and the walkable area.
const islandMargin = 40

// eyeHeight is the camera height above the ground used for the pause surface.
const eyeHeight = 1.7

// IslandScene is the playable level: a top-down island with rune trigger
// volumes, a player actor and the pause menu.
type IslandScene struct {
	world  *achievements.TriggerWorld
	player *achievements.ActorBody
	pause  *modules.PauseMenuModule

	gameState *game.GameState
	input     utils.Input
	renderer  *ui.Renderer

	walkable image.Rectangle
	// heading is the last non-zero movement direction on the ground plane.
	headingX, headingY float64
}

// NewIslandScene builds the world from the achievement trigger config and
// starts in the running state.
func NewIslandScene(s *Services) *IslandScene {
	sc := &IslandScene{
		world:     achievements.NewTriggerWorld(),
		gameState: s.GameState,
		input:     s.Input,
		renderer:  s.Renderer,
		walkable: image.Rect(islandMargin, islandMargin,
			config.GameWindowWidth-islandMargin, config.GameWindowHeight-islandMargin),
		headingY: -1,
	}

	for _, t := range s.Config.Achievements.Triggers {
		trigger := achievements.NewTrigger(t.AchievementID, t.Tags, s.Achievements)
		sc.world.AddTrigger(trigger, t.X, t.Y, t.Width, t.Height)
	}

	c := sc.walkable.Min.Add(sc.walkable.Max).Div(2)
	sc.player = sc.world.AddActor(achievements.Actor{Name: "Player", Tag: achievements.DefaultTag},
		float64(c.X), float64(c.Y), config.PlayerSize)

	sc.pause = modules.NewPauseMenuModule(modules.PauseMenuOptions{
		GameState:      s.GameState,
		Settings:       newSettingsPanel(s),
		Viewpoint:      sc.Viewpoint,
		CanvasDistance: s.Config.Pause.CanvasDistance,
		Callbacks: modules.PauseMenuCallbacks{
			OnClick: s.Audio.PlayClick,
		},
	})
	sc.pause.Start()

	log.Printf("[IslandScene] %d trigger volumes", len(sc.world.Volumes()))
	return sc
}

// Pause exposes the pause module for tests.
func (sc *IslandScene) Pause() *modules.PauseMenuModule {
	return sc.pause
}

// World exposes the trigger world for tests.
func (sc *IslandScene) World() *achievements.TriggerWorld {
	return sc.world
}

// Player exposes the player body for tests.
func (sc *IslandScene) Player() *achievements.ActorBody {
	return sc.player
}

// Viewpoint maps the top-down player position to the 3D camera: ground X
// and Y become world X and Z, looking along the heading.
func (sc *IslandScene) Viewpoint() (geom.Viewpoint, bool) {
	x, y := sc.player.Position()
	return geom.Viewpoint{
		Position: geom.Vec3{x, eyeHeight, y},
		Forward:  geom.Vec3{sc.headingX, 0, sc.headingY},
	}, true
}

// Update handles pause input, then moves the player and steps the world
// with the scaled delta, which is 0 while paused.
func (sc *IslandScene) Update(deltaTime float64) {
	sc.pause.Update(sc.input)

	dt := sc.gameState.ScaledDelta(deltaTime)
	if dt <= 0 {
		return
	}

	dx, dy := sc.input.Movement()
	if dx != 0 || dy != 0 {
		l := math.Hypot(dx, dy)
		sc.headingX, sc.headingY = dx/l, dy/l
		if l > 1 {
			dx, dy = sc.headingX, sc.headingY
		}

		x, y := sc.player.Position()
		h := config.PlayerSize / 2
		x = clamp(x+dx*config.PlayerSpeed*dt, float64(sc.walkable.Min.X)+h, float64(sc.walkable.Max.X)-h)
		y = clamp(y+dy*config.PlayerSpeed*dt, float64(sc.walkable.Min.Y)+h, float64(sc.walkable.Max.Y)-h)
		sc.player.SetPosition(x, y)
	}

	sc.world.Step(dt)
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// Draw renders the island, the runes, the player and, while paused, the
// pause overlay.
func (sc *IslandScene) Draw(screen *ebiten.Image) {
	screen.Fill(seaColor)
	ui.FillRect(screen, sc.walkable, islandColor)

	collected := 0
	for _, v := range sc.world.Volumes() {
		c := runeColor
		if v.Trigger.Collected() {
			c = spentColor
			collected++
		}
		ui.FillRect(screen, v.Bounds, c)
	}
	ui.FillRect(screen, sc.player.Bounds(), playerColor)

	hud := fmt.Sprintf("Runes %d/%d", collected, len(sc.world.Volumes()))
	sc.renderer.DrawLabel(screen, hud, 100, 20, color.White)

	if utils.IsMobile() && !sc.pause.IsPaused() {
		zone := utils.PauseTouchZone(config.GameWindowWidth)
		ui.FillRect(screen, zone.Inset(8), config.ButtonIdleColor)
		c := zone.Min.Add(zone.Max).Div(2)
		sc.renderer.DrawLabel(screen, "II", float64(c.X), float64(c.Y), color.White)
	}

	if sc.pause.IsPaused() {
		sc.renderer.DimScreen(screen)
		sc.renderer.Draw(screen, sc.pause.Root(), sc.pause.Focus())
	}
}

// Close restores running time and frees the cursor when the scene is left.
func (sc *IslandScene) Close() {
	sc.gameState.SetTimeScale(1)
	sc.gameState.SetCursorLocked(false)
}
