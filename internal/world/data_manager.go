package world

import (
	"fmt"
	"io"
	"log"
	"sync"

	"roomba/internal/layout"

	"gopkg.in/yaml.v3"
)

// Named pixel limits exposed by DataManager.Limits
const (
	LimitTop    = "max_pixel_top"
	LimitRight  = "max_pixel_right"
	LimitBottom = "max_pixel_bottom"
	LimitLeft   = "max_pixel_left"
)

// WindowData describes the drawing surface
type WindowData struct {
	TotalPixelW  int `yaml:"total_pixel_w"`
	TotalPixelH  int `yaml:"total_pixel_h"`
	CenterPixelW int `yaml:"center_pixel_w"`
	CenterPixelH int `yaml:"center_pixel_h"`
}

// GridData describes the laid-out tile grid and its pixel limits
type GridData struct {
	SpriteWCount   int `yaml:"sprite_w_count"`
	SpriteHCount   int `yaml:"sprite_h_count"`
	MaxPixelTop    int `yaml:"max_pixel_top"`
	MaxPixelRight  int `yaml:"max_pixel_right"`
	MaxPixelBottom int `yaml:"max_pixel_bottom"`
	MaxPixelLeft   int `yaml:"max_pixel_left"`
}

// DataManager owns the window and grid data derived from a layout and acts
// as the bound source for movement. The layout may be swapped between ticks.
type DataManager struct {
	mutex  sync.RWMutex
	layout layout.Layout
	window WindowData
	grid   GridData
}

// NewDataManager creates a data manager for the given layout
func NewDataManager(l layout.Layout) *DataManager {
	dm := &DataManager{}
	dm.SetLayout(l)
	return dm
}

// SetLayout replaces the layout and every value derived from it
func (dm *DataManager) SetLayout(l layout.Layout) {
	dm.mutex.Lock()
	defer dm.mutex.Unlock()

	dm.layout = l
	dm.window = WindowData{
		TotalPixelW:  l.Viewport.Width,
		TotalPixelH:  l.Viewport.Height,
		CenterPixelW: l.CenterX,
		CenterPixelH: l.CenterY,
	}
	dm.grid = GridData{
		SpriteWCount:   l.Geometry.Columns,
		SpriteHCount:   l.Geometry.Rows,
		MaxPixelTop:    l.Bounds.Top,
		MaxPixelRight:  l.Bounds.Right,
		MaxPixelBottom: l.Bounds.Bottom,
		MaxPixelLeft:   l.Bounds.Left,
	}
}

// Layout returns the current layout
func (dm *DataManager) Layout() layout.Layout {
	dm.mutex.RLock()
	defer dm.mutex.RUnlock()
	return dm.layout
}

// Bounds returns a consistent snapshot of the four pixel limits
func (dm *DataManager) Bounds() layout.BoundRect {
	dm.mutex.RLock()
	defer dm.mutex.RUnlock()
	return layout.BoundRect{
		Top:    dm.grid.MaxPixelTop,
		Right:  dm.grid.MaxPixelRight,
		Bottom: dm.grid.MaxPixelBottom,
		Left:   dm.grid.MaxPixelLeft,
	}
}

// Limits returns the pixel limits keyed by name
func (dm *DataManager) Limits() map[string]int {
	dm.mutex.RLock()
	defer dm.mutex.RUnlock()
	return map[string]int{
		LimitTop:    dm.grid.MaxPixelTop,
		LimitRight:  dm.grid.MaxPixelRight,
		LimitBottom: dm.grid.MaxPixelBottom,
		LimitLeft:   dm.grid.MaxPixelLeft,
	}
}

// Window returns the window data
func (dm *DataManager) Window() WindowData {
	dm.mutex.RLock()
	defer dm.mutex.RUnlock()
	return dm.window
}

// Grid returns the grid data
func (dm *DataManager) Grid() GridData {
	dm.mutex.RLock()
	defer dm.mutex.RUnlock()
	return dm.grid
}

// snapshot is the YAML document written by WriteYAML
type snapshot struct {
	Window WindowData `yaml:"window_data"`
	Grid   GridData   `yaml:"sprite_data"`
}

// WriteYAML writes window and grid data as a YAML document
func (dm *DataManager) WriteYAML(w io.Writer) error {
	dm.mutex.RLock()
	snap := snapshot{Window: dm.window, Grid: dm.grid}
	dm.mutex.RUnlock()

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(snap); err != nil {
		return fmt.Errorf("failed to encode layout data: %w", err)
	}
	return enc.Close()
}

// LogSummary logs window and grid data at startup
func (dm *DataManager) LogSummary() {
	w := dm.Window()
	g := dm.Grid()
	log.Printf("Window: %dx%d, center (%d,%d)", w.TotalPixelW, w.TotalPixelH, w.CenterPixelW, w.CenterPixelH)
	log.Printf("Grid: %d columns x %d rows, limits top=%d right=%d bottom=%d left=%d",
		g.SpriteWCount, g.SpriteHCount, g.MaxPixelTop, g.MaxPixelRight, g.MaxPixelBottom, g.MaxPixelLeft)
}
