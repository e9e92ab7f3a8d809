package layout

import (
	"errors"
	"fmt"

	"roomba/internal/mathutil"
)

var (
	// ErrInvalidCellSize is returned when the cell size is not positive
	ErrInvalidCellSize = errors.New("cell size must be positive")
	// ErrInvalidViewport is returned when a viewport dimension is not positive
	ErrInvalidViewport = errors.New("viewport dimensions must be positive")
	// ErrViewportTooSmall is returned when no full cell fits on an axis after the margin cell
	ErrViewportTooSmall = errors.New("viewport too small for grid")
	// ErrInvertedBounds is returned when a bound rectangle has min edges past its max edges
	ErrInvertedBounds = errors.New("inverted bound rectangle")
)

// Viewport is the pixel size of the drawing surface
type Viewport struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// GridGeometry describes how many cells fit and where the top-left cell sits
type GridGeometry struct {
	Columns int `yaml:"columns"`
	Rows    int `yaml:"rows"`
	OriginX int `yaml:"origin_x"`
	OriginY int `yaml:"origin_y"`
}

// BoundRect holds the four directional pixel limits entities are kept inside
type BoundRect struct {
	Top    int `yaml:"top"`
	Right  int `yaml:"right"`
	Bottom int `yaml:"bottom"`
	Left   int `yaml:"left"`
}

// Layout is the full result of laying a grid out inside a viewport
type Layout struct {
	Viewport Viewport     `yaml:"viewport"`
	CellSize int          `yaml:"cell_size"`
	CenterX  int          `yaml:"center_x"`
	CenterY  int          `yaml:"center_y"`
	Geometry GridGeometry `yaml:"geometry"`
	Bounds   BoundRect    `yaml:"bounds"`
}

// Calculate centers a grid of cellSize cells inside the viewport.
//
// One cell fewer than the maximal fit is used on each axis. When an axis has
// an odd cell count the origin and far edge are shifted back by half a cell.
func Calculate(vp Viewport, cellSize int) (Layout, error) {
	if cellSize <= 0 {
		return Layout{}, fmt.Errorf("%w: got %d", ErrInvalidCellSize, cellSize)
	}
	if vp.Width <= 0 || vp.Height <= 0 {
		return Layout{}, fmt.Errorf("%w: got %dx%d", ErrInvalidViewport, vp.Width, vp.Height)
	}

	columns := vp.Width/cellSize - 1
	rows := vp.Height/cellSize - 1
	if columns <= 0 || rows <= 0 {
		return Layout{}, fmt.Errorf("%w: %dx%d fits %d columns and %d rows of %d",
			ErrViewportTooSmall, vp.Width, vp.Height, columns, rows, cellSize)
	}

	centerX := vp.Width / 2
	centerY := vp.Height / 2

	originX, rightEdge := centerAxis(centerX, columns, cellSize)
	originY, bottomEdge := centerAxis(centerY, rows, cellSize)

	return Layout{
		Viewport: vp,
		CellSize: cellSize,
		CenterX:  centerX,
		CenterY:  centerY,
		Geometry: GridGeometry{
			Columns: columns,
			Rows:    rows,
			OriginX: originX,
			OriginY: originY,
		},
		Bounds: BoundRect{
			Top:    originY,
			Right:  rightEdge,
			Bottom: bottomEdge,
			Left:   originX,
		},
	}, nil
}

// centerAxis returns the near and far pixel edge of count cells centered on center
func centerAxis(center, count, cellSize int) (near, far int) {
	half := count / 2
	near = center - half*cellSize
	far = center + half*cellSize

	// Parity correction
	if mathutil.IsOdd(count) {
		near -= cellSize / 2
		far -= cellSize / 2
	}
	return near, far
}

// Extent returns the pixel rectangle actually covered by tiles.
// It differs from Bounds on odd axes, where the last tile overhangs the far bound.
func (l Layout) Extent() BoundRect {
	g := l.Geometry
	return BoundRect{
		Top:    g.OriginY,
		Right:  g.OriginX + g.Columns*l.CellSize,
		Bottom: g.OriginY + g.Rows*l.CellSize,
		Left:   g.OriginX,
	}
}

// Bounds lets a fixed rectangle act as its own bound source
func (r BoundRect) Bounds() BoundRect {
	return r
}

// Width returns the horizontal span of the rectangle
func (r BoundRect) Width() int {
	return r.Right - r.Left
}

// Height returns the vertical span of the rectangle
func (r BoundRect) Height() int {
	return r.Bottom - r.Top
}

// Contains reports whether a w×h box at (x, y) lies fully inside the rectangle
func (r BoundRect) Contains(x, y, w, h int) bool {
	return x >= r.Left && x+w <= r.Right && y >= r.Top && y+h <= r.Bottom
}

// Validate checks the left <= right and top <= bottom invariant
func (r BoundRect) Validate() error {
	if r.Left > r.Right || r.Top > r.Bottom {
		return fmt.Errorf("%w: %+v", ErrInvertedBounds, r)
	}
	return nil
}
