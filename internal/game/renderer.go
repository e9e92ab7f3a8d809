package game

import (
	"fmt"
	"image/color"

	"roomba/internal/movement"
	"roomba/internal/world"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

var (
	backgroundColor = color.RGBA{24, 24, 28, 255}
	boundsColor     = color.RGBA{220, 60, 60, 255}
	hudColor        = color.RGBA{230, 230, 230, 255}
)

// Renderer draws tiles, entities and the HUD. It only reads positions.
type Renderer struct {
	game    *Game
	hudFace *text.GoXFace
}

// NewRenderer creates a renderer for the game
func NewRenderer(g *Game) *Renderer {
	return &Renderer{
		game:    g,
		hudFace: text.NewGoXFace(basicfont.Face7x13),
	}
}

// Draw renders one frame
func (r *Renderer) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	r.drawTiles(screen)
	r.drawBounds(screen)
	r.drawEntities(screen)

	if r.game.showHUD {
		r.drawHUD(screen)
	}
}

func (r *Renderer) drawTiles(screen *ebiten.Image) {
	sim := r.game.sim
	tileSprite := r.game.sprites.GetSprite(sim.Config().Resources.TileSprite)
	cellSize := sim.Tiles().CellSize()

	sim.Tiles().Each(func(tile world.Tile) {
		r.drawSprite(screen, tileSprite, tile.X, tile.Y, cellSize, cellSize)
	})
}

func (r *Renderer) drawEntities(screen *ebiten.Image) {
	for _, e := range r.game.sim.Entities() {
		sprite := r.game.sprites.GetSprite(spriteName(e))
		r.drawSprite(screen, sprite, e.X, e.Y, e.Width, e.Height)
	}
}

// drawBounds outlines the rectangle entities are clamped to
func (r *Renderer) drawBounds(screen *ebiten.Image) {
	b := r.game.sim.Movement().EffectiveBounds()
	vector.StrokeRect(screen, float32(b.Left), float32(b.Top), float32(b.Width()), float32(b.Height()), 1, boundsColor, false)
}

func (r *Renderer) drawHUD(screen *ebiten.Image) {
	m := r.game.sim.Monitor().GetCurrentMetrics()
	stats := r.game.lastStats

	lines := fmt.Sprintf("tick %d  avg %v\nmoved %d  clamped %d  (total clamps %d)",
		m.Ticks, m.AverageTickTime, stats.Moved, stats.Clamped, m.ClampHits)
	if p := r.game.sim.Player(); p != nil {
		lines += fmt.Sprintf("\n%s at (%d,%d)", p.Name, p.X, p.Y)
	}

	op := &text.DrawOptions{}
	op.GeoM.Translate(8, 4)
	op.LineSpacing = 14
	op.ColorScale.ScaleWithColor(hudColor)
	text.Draw(screen, lines, r.hudFace, op)
}

// drawSprite scales img to w×h at (x, y)
func (r *Renderer) drawSprite(screen, img *ebiten.Image, x, y, w, h int) {
	bounds := img.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(w)/float64(bounds.Dx()), float64(h)/float64(bounds.Dy()))
	op.GeoM.Translate(float64(x), float64(y))
	screen.DrawImage(img, op)
}

func spriteName(e *movement.Entity) string {
	if e.Sprite != "" {
		return e.Sprite
	}
	return e.Name
}
