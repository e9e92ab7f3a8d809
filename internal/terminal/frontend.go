package terminal

import (
	"fmt"
	"log"
	"strings"
	"time"
	"unicode"

	"roomba/internal/movement"
	"roomba/internal/simulation"
	"roomba/internal/world"

	"github.com/gdamore/tcell/v2"
)

const (
	glyphFloor       = '.'
	glyphUnreachable = '#'
	glyphPlayer      = '@'
)

// Frontend renders a simulation as text and drives it from the keyboard.
// Each tile is one terminal row and two terminal columns.
type Frontend struct {
	sim      *simulation.Simulation
	screen   tcell.Screen
	keys     *KeyIntents
	sound    *bumpSound
	interval time.Duration
	last     movement.TickStats
}

// NewFrontend initializes the terminal screen and, if enabled, audio
func NewFrontend(sim *simulation.Simulation) (*Frontend, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}

	cfg := sim.Config()
	f := &Frontend{
		sim:      sim,
		screen:   screen,
		keys:     &KeyIntents{},
		interval: cfg.GetTickInterval(),
	}

	if cfg.Audio.Enabled {
		f.sound, err = newBumpSound(cfg.Audio.BumpFrequency, cfg.GetBumpDuration())
		if err != nil {
			// Non-fatal, runs without sound
			log.Printf("Audio initialization failed: %v", err)
		}
	}
	return f, nil
}

// Run ticks the simulation until a quit key is pressed
func (f *Frontend) Run() {
	ticker := time.NewTicker(f.interval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := f.screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	f.draw()
	for {
		select {
		case ev := <-eventChan:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if isQuitKey(ev) {
					return
				}
				f.keys.HandleKey(ev)
			case *tcell.EventResize:
				f.screen.Sync()
			}

		case <-ticker.C:
			if f.tickPlayer() {
				f.sound.play()
			}
			f.draw()
		}
	}
}

// tickPlayer feeds buffered keys to the player, runs one tick and reports
// whether the player's step was cut short by the bounds
func (f *Frontend) tickPlayer() bool {
	player := f.sim.Player()
	if player == nil {
		f.last = f.sim.Tick()
		return false
	}

	f.keys.ApplyIntent(player)
	dir := player.Intent.Direction()
	prevX, prevY := player.X, player.Y

	f.last = f.sim.Tick()
	return bumped(player, dir, prevX, prevY, f.sim.Tiles().CellSize())
}

// bumped reports whether e did not land where dir would have taken it
func bumped(e *movement.Entity, dir movement.Direction, prevX, prevY, cellSize int) bool {
	if dir == movement.None {
		return false
	}
	dx, dy := dir.Delta(cellSize)
	return e.X != prevX+dx || e.Y != prevY+dy
}

// Close restores the terminal and releases audio
func (f *Frontend) Close() {
	f.sound.close()
	f.screen.Fini()
}

func (f *Frontend) draw() {
	f.screen.Clear()
	for y, line := range Frame(f.sim) {
		x := 0
		for _, r := range line {
			f.screen.SetContent(x, y, r, nil, styleFor(r))
			x++
		}
	}

	status := fmt.Sprintf("moved %d clamped %d | arrows/wasd/hjkl move, q quits", f.last.Moved, f.last.Clamped)
	row := f.sim.Tiles().Rows() + 1
	for i, r := range status {
		f.screen.SetContent(i, row, r, nil, tcell.StyleDefault)
	}
	f.screen.Show()
}

func styleFor(r rune) tcell.Style {
	switch r {
	case glyphFloor:
		return tcell.StyleDefault.Foreground(tcell.ColorGray)
	case glyphUnreachable:
		return tcell.StyleDefault.Foreground(tcell.ColorDarkRed)
	case glyphPlayer:
		return tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	case ' ':
		return tcell.StyleDefault
	default:
		return tcell.StyleDefault.Foreground(tcell.ColorGreen)
	}
}

// Frame returns the grid as text lines, one line per tile row.
// Tiles an entity can never occupy under the current bounds are drawn as '#'.
func Frame(sim *simulation.Simulation) []string {
	tiles := sim.Tiles()
	bounds := sim.Movement().EffectiveBounds()
	cellSize := tiles.CellSize()

	grid := make([][]rune, tiles.Rows())
	for i := range grid {
		grid[i] = []rune(strings.Repeat(" ", tiles.Columns()*2))
	}

	tiles.Each(func(t world.Tile) {
		glyph := glyphFloor
		if !bounds.Contains(t.X, t.Y, cellSize, cellSize) {
			glyph = glyphUnreachable
		}
		grid[t.Row][t.Column*2] = glyph
	})

	for _, e := range sim.Entities() {
		t, ok := tiles.TileAt(e.X, e.Y)
		if !ok {
			continue
		}
		grid[t.Row][t.Column*2] = entityGlyph(e, e == sim.Player())
	}

	lines := make([]string, len(grid))
	for i, row := range grid {
		lines[i] = string(row)
	}
	return lines
}

func entityGlyph(e *movement.Entity, isPlayer bool) rune {
	if isPlayer {
		return glyphPlayer
	}
	for _, r := range e.Name {
		return unicode.ToUpper(r)
	}
	return '?'
}
