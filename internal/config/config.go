package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is wrapped by every validation failure
var ErrInvalidConfig = errors.New("invalid config")

// Config holds all simulation configuration values
type Config struct {
	Display   DisplayConfig   `yaml:"display"`
	Grid      GridConfig      `yaml:"grid"`
	Resources ResourcesConfig `yaml:"resources"`
	Movement  MovementConfig  `yaml:"movement"`
	Audio     AudioConfig     `yaml:"audio"`
	Entities  []EntityConfig  `yaml:"entities"`
}

type DisplayConfig struct {
	ScreenWidth  int    `yaml:"screen_width"`
	ScreenHeight int    `yaml:"screen_height"`
	WindowTitle  string `yaml:"window_title"`
	Resizable    bool   `yaml:"resizable"`
	TPS          int    `yaml:"tps"`
}

type GridConfig struct {
	CellSize int `yaml:"cell_size"`
}

// ResourcesConfig points at the image files rendered to the user
type ResourcesConfig struct {
	ImageDir   string `yaml:"image_dir"`
	TileSprite string `yaml:"tile_sprite"`
}

type MovementConfig struct {
	// Clamp is optional; nil means the whole viewport
	Clamp          *ClampConfig `yaml:"clamp,omitempty"`
	Parallel       bool         `yaml:"parallel"`
	Workers        int          `yaml:"workers"`
	TickIntervalMs int          `yaml:"tick_interval_ms"` // terminal frontend only
}

type ClampConfig struct {
	MinX int `yaml:"min_x"`
	MinY int `yaml:"min_y"`
	MaxX int `yaml:"max_x"`
	MaxY int `yaml:"max_y"`
}

type AudioConfig struct {
	Enabled        bool    `yaml:"enabled"`
	BumpFrequency  float64 `yaml:"bump_frequency"`
	BumpDurationMs int     `yaml:"bump_duration_ms"`
}

// EntityConfig places one movable entity on a tile at startup
type EntityConfig struct {
	Name   string `yaml:"name"`
	Sprite string `yaml:"sprite"`
	Row    int    `yaml:"row"`
	Column int    `yaml:"column"`
	Width  int    `yaml:"width,omitempty"`  // defaults to cell size
	Height int    `yaml:"height,omitempty"` // defaults to cell size
	Player bool   `yaml:"player"`
}

// Default returns the reference configuration: a 640x480 window of 50px cells
func Default() *Config {
	return &Config{
		Display: DisplayConfig{
			ScreenWidth:  640,
			ScreenHeight: 480,
			WindowTitle:  "CS 5820 - Virtual Roomba/Vacuum AI Project",
			TPS:          60,
		},
		Grid: GridConfig{CellSize: 50},
		Resources: ResourcesConfig{
			ImageDir:   "assets/images",
			TileSprite: "background",
		},
		Movement: MovementConfig{
			TickIntervalMs: 100,
		},
		Audio: AudioConfig{
			BumpFrequency:  220,
			BumpDurationMs: 40,
		},
		Entities: []EntityConfig{
			{Name: "roomba", Sprite: "roomba", Player: true},
		},
	}
}

// LoadConfig loads the configuration from a YAML file on top of the defaults
func LoadConfig(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return cfg, nil
}

// Parse decodes and validates YAML config data
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// MustLoadConfig loads the configuration and panics on error
func MustLoadConfig(filename string) *Config {
	config, err := LoadConfig(filename)
	if err != nil {
		panic("Failed to load config: " + err.Error())
	}
	return config
}

// Validate reports the first configuration error found.
// Grid fit is checked later by the layout calculator.
func (c *Config) Validate() error {
	if c.Display.ScreenWidth <= 0 || c.Display.ScreenHeight <= 0 {
		return fmt.Errorf("%w: screen size %dx%d", ErrInvalidConfig, c.Display.ScreenWidth, c.Display.ScreenHeight)
	}
	if c.Display.TPS < 0 {
		return fmt.Errorf("%w: tps %d", ErrInvalidConfig, c.Display.TPS)
	}
	if c.Grid.CellSize <= 0 {
		return fmt.Errorf("%w: cell_size %d", ErrInvalidConfig, c.Grid.CellSize)
	}
	if cl := c.Movement.Clamp; cl != nil {
		if cl.MinX > cl.MaxX || cl.MinY > cl.MaxY {
			return fmt.Errorf("%w: inverted clamp %+v", ErrInvalidConfig, *cl)
		}
	}
	if c.Movement.Workers < 0 {
		return fmt.Errorf("%w: workers %d", ErrInvalidConfig, c.Movement.Workers)
	}
	if c.Movement.TickIntervalMs <= 0 {
		return fmt.Errorf("%w: tick_interval_ms %d", ErrInvalidConfig, c.Movement.TickIntervalMs)
	}

	seen := make(map[string]bool, len(c.Entities))
	for i, e := range c.Entities {
		if e.Name == "" {
			return fmt.Errorf("%w: entity %d has no name", ErrInvalidConfig, i)
		}
		if seen[e.Name] {
			return fmt.Errorf("%w: duplicate entity %q", ErrInvalidConfig, e.Name)
		}
		seen[e.Name] = true
		if e.Width < 0 || e.Height < 0 {
			return fmt.Errorf("%w: entity %q has negative size", ErrInvalidConfig, e.Name)
		}
	}
	return nil
}

// Helper functions for easy access to commonly used values
func (c *Config) GetScreenWidth() int {
	return c.Display.ScreenWidth
}

func (c *Config) GetScreenHeight() int {
	return c.Display.ScreenHeight
}

func (c *Config) GetCellSize() int {
	return c.Grid.CellSize
}

func (c *Config) GetTickInterval() time.Duration {
	return time.Duration(c.Movement.TickIntervalMs) * time.Millisecond
}

func (c *Config) GetBumpDuration() time.Duration {
	return time.Duration(c.Audio.BumpDurationMs) * time.Millisecond
}

// GetSpritePath returns the PNG path for a sprite name inside the image dir
func (c *Config) GetSpritePath(name string) string {
	return filepath.Join(c.Resources.ImageDir, name+".png")
}

// GetEntitySize returns the entity's size, falling back to the cell size
func (c *Config) GetEntitySize(e EntityConfig) (int, int) {
	w, h := e.Width, e.Height
	if w == 0 {
		w = c.Grid.CellSize
	}
	if h == 0 {
		h = c.Grid.CellSize
	}
	return w, h
}
