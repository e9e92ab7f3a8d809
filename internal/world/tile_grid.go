package world

import (
	"roomba/internal/layout"
	"roomba/internal/mathutil"
)

// Tile is a single location in the environment
type Tile struct {
	Row    int
	Column int
	X      int
	Y      int
}

// TileGrid holds every tile of a laid-out grid in row-major order.
// It is built once per layout and never changes afterwards.
type TileGrid struct {
	geometry layout.GridGeometry
	cellSize int
	tiles    [][]Tile
}

// NewTileGrid creates all tiles for the given geometry.
// Row 0 is the top row, column 0 the leftmost.
func NewTileGrid(geometry layout.GridGeometry, cellSize int) *TileGrid {
	tiles := make([][]Tile, geometry.Rows)
	for row := 0; row < geometry.Rows; row++ {
		y := row*cellSize + geometry.OriginY

		currRow := make([]Tile, geometry.Columns)
		for col := 0; col < geometry.Columns; col++ {
			currRow[col] = Tile{
				Row:    row,
				Column: col,
				X:      col*cellSize + geometry.OriginX,
				Y:      y,
			}
		}
		tiles[row] = currRow
	}

	return &TileGrid{
		geometry: geometry,
		cellSize: cellSize,
		tiles:    tiles,
	}
}

// NewTileGridFromLayout is a shorthand for building from a full layout result
func NewTileGridFromLayout(l layout.Layout) *TileGrid {
	return NewTileGrid(l.Geometry, l.CellSize)
}

// Rows returns the number of tile rows
func (tg *TileGrid) Rows() int {
	return tg.geometry.Rows
}

// Columns returns the number of tile columns
func (tg *TileGrid) Columns() int {
	return tg.geometry.Columns
}

// Len returns the total number of tiles
func (tg *TileGrid) Len() int {
	return tg.geometry.Rows * tg.geometry.Columns
}

// CellSize returns the pixel size of one tile
func (tg *TileGrid) CellSize() int {
	return tg.cellSize
}

// Geometry returns the geometry the grid was built from
func (tg *TileGrid) Geometry() layout.GridGeometry {
	return tg.geometry
}

// At returns the tile at (row, column)
func (tg *TileGrid) At(row, column int) (Tile, bool) {
	if row < 0 || row >= tg.geometry.Rows || column < 0 || column >= tg.geometry.Columns {
		return Tile{}, false
	}
	return tg.tiles[row][column], true
}

// TileAt returns the tile whose area contains pixel (x, y)
func (tg *TileGrid) TileAt(x, y int) (Tile, bool) {
	col := mathutil.FloorDiv(x-tg.geometry.OriginX, tg.cellSize)
	row := mathutil.FloorDiv(y-tg.geometry.OriginY, tg.cellSize)
	return tg.At(row, col)
}

// Each calls fn for every tile in row-major order
func (tg *TileGrid) Each(fn func(Tile)) {
	for _, row := range tg.tiles {
		for _, tile := range row {
			fn(tile)
		}
	}
}
