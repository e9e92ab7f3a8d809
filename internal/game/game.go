package game

import (
	"roomba/internal/game/keytracker"
	"roomba/internal/graphics"
	"roomba/internal/movement"
	"roomba/internal/simulation"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a simulation to ebiten's Update/Draw/Layout loop.
// Every Update is one movement tick.
type Game struct {
	sim      *simulation.Simulation
	sprites  *graphics.SpriteManager
	intents  movement.IntentSource
	renderer *Renderer

	showHUD   bool
	lastStats movement.TickStats
}

// NewGame creates a game driving the given simulation
func NewGame(sim *simulation.Simulation) *Game {
	cfg := sim.Config()
	g := &Game{
		sim:     sim,
		sprites: graphics.NewSpriteManager(cfg.Resources.ImageDir, cfg.GetCellSize()),
		intents: keytracker.DefaultDirectionKeys(),
		showHUD: true,
	}
	g.renderer = NewRenderer(g)
	return g
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		g.showHUD = !g.showHUD
	}

	if player := g.sim.Player(); player != nil && g.intents != nil {
		g.intents.ApplyIntent(player)
	}
	g.lastStats = g.sim.Tick()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Draw(screen)
}

// Layout keeps the logical screen at the configured viewport; ebiten scales it
func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	vp := g.sim.Layout().Viewport
	return vp.Width, vp.Height
}
