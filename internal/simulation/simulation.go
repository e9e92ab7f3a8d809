package simulation

import (
	"errors"
	"fmt"
	"log"

	"roomba/internal/config"
	"roomba/internal/layout"
	"roomba/internal/movement"
	"roomba/internal/threading/core"
	"roomba/internal/threading/monitoring"
	"roomba/internal/world"
)

// ErrSpawnOutsideGrid is returned when an entity is configured on a missing tile
var ErrSpawnOutsideGrid = errors.New("entity spawn outside grid")

// Simulation wires layout, tiles, bounds and movement together.
// Create it with New, drive it with Tick, release it with Close.
type Simulation struct {
	config   *config.Config
	layout   layout.Layout
	data     *world.DataManager
	tiles    *world.TileGrid
	entities []*movement.Entity
	player   *movement.Entity
	movement *movement.System
	pool     *core.WorkerPool
	monitor  *monitoring.TickMonitor
}

// New lays out the grid, places the configured entities and builds the
// movement system. Any configuration error aborts setup.
func New(cfg *config.Config) (*Simulation, error) {
	vp := layout.Viewport{Width: cfg.GetScreenWidth(), Height: cfg.GetScreenHeight()}
	l, err := layout.Calculate(vp, cfg.GetCellSize())
	if err != nil {
		return nil, fmt.Errorf("failed to lay out grid: %w", err)
	}

	sim := &Simulation{
		config:  cfg,
		layout:  l,
		data:    world.NewDataManager(l),
		tiles:   world.NewTileGridFromLayout(l),
		monitor: monitoring.NewTickMonitor(),
	}

	clamp := movement.ClampToViewport(vp)
	if cl := cfg.Movement.Clamp; cl != nil {
		clamp = movement.ClampSpec{MinX: cl.MinX, MinY: cl.MinY, MaxX: cl.MaxX, MaxY: cl.MaxY}
	}

	opts := []movement.Option{movement.WithMonitor(sim.monitor)}
	if cfg.Movement.Parallel {
		sim.pool = core.NewWorkerPool(cfg.Movement.Workers)
		opts = append(opts, movement.WithWorkerPool(sim.pool))
	}

	sim.movement, err = movement.NewSystem(l.CellSize, clamp, sim.data, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create movement system: %w", err)
	}

	if err := sim.spawnEntities(); err != nil {
		return nil, err
	}

	// Start workers only once nothing else can fail
	if sim.pool != nil {
		sim.pool.Start()
	}

	sim.data.LogSummary()
	log.Printf("Movement clamp: %+v", sim.movement.ClampSpec())
	log.Printf("Effective bounds: %+v", sim.movement.EffectiveBounds())
	log.Printf("Spawned %d entities", len(sim.entities))
	return sim, nil
}

func (s *Simulation) spawnEntities() error {
	for _, ec := range s.config.Entities {
		tile, ok := s.tiles.At(ec.Row, ec.Column)
		if !ok {
			return fmt.Errorf("%w: %q at row %d column %d", ErrSpawnOutsideGrid, ec.Name, ec.Row, ec.Column)
		}

		w, h := s.config.GetEntitySize(ec)
		e := movement.NewEntity(ec.Name, tile.X, tile.Y, w, h)
		e.Sprite = ec.Sprite

		// Spawn positions obey the same bounds as every tick
		movement.Clamp(e, s.movement.EffectiveBounds())

		s.entities = append(s.entities, e)
		if ec.Player && s.player == nil {
			s.player = e
		}
	}
	return nil
}

// Tick runs one movement tick over every entity
func (s *Simulation) Tick() movement.TickStats {
	return s.movement.Tick(s.entities)
}

// Close releases the worker pool, if any. Ticks after Close still run,
// on the calling goroutine.
func (s *Simulation) Close() {
	if s.pool != nil {
		s.pool.Stop()
		s.pool = nil
	}
}

// Config returns the configuration the simulation was built from
func (s *Simulation) Config() *config.Config {
	return s.config
}

// Layout returns the computed grid layout
func (s *Simulation) Layout() layout.Layout {
	return s.layout
}

// Data returns the bound source and layout data
func (s *Simulation) Data() *world.DataManager {
	return s.data
}

// Tiles returns the tile grid
func (s *Simulation) Tiles() *world.TileGrid {
	return s.tiles
}

// Entities returns every spawned entity
func (s *Simulation) Entities() []*movement.Entity {
	return s.entities
}

// Player returns the entity marked as player, or nil
func (s *Simulation) Player() *movement.Entity {
	return s.player
}

// Movement returns the movement system
func (s *Simulation) Movement() *movement.System {
	return s.movement
}

// Monitor returns the tick monitor
func (s *Simulation) Monitor() *monitoring.TickMonitor {
	return s.monitor
}
