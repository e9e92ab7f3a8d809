package world

import (
	"testing"

	"roomba/internal/layout"
)

func referenceLayout(t *testing.T) layout.Layout {
	t.Helper()
	l, err := layout.Calculate(layout.Viewport{Width: 640, Height: 480}, 50)
	if err != nil {
		t.Fatalf("Failed to calculate layout: %v", err)
	}
	return l
}

func TestTileGridRoundTrip(t *testing.T) {
	l := referenceLayout(t)
	tg := NewTileGridFromLayout(l)

	if tg.Rows() != 8 || tg.Columns() != 11 {
		t.Fatalf("Expected 8 rows x 11 columns, got %d x %d", tg.Rows(), tg.Columns())
	}
	if tg.Len() != 88 {
		t.Errorf("Expected 88 tiles, got %d", tg.Len())
	}

	for row := 0; row < tg.Rows(); row++ {
		for col := 0; col < tg.Columns(); col++ {
			tile, ok := tg.At(row, col)
			if !ok {
				t.Fatalf("Tile (%d,%d) missing", row, col)
			}
			if tile.Row != row || tile.Column != col {
				t.Errorf("Tile (%d,%d) has indices (%d,%d)", row, col, tile.Row, tile.Column)
			}
			if tile.X != col*50+45 || tile.Y != row*50+40 {
				t.Errorf("Tile (%d,%d) at (%d,%d)", row, col, tile.X, tile.Y)
			}
		}
	}
}

func TestTileGridOutOfRange(t *testing.T) {
	tg := NewTileGridFromLayout(referenceLayout(t))

	for _, idx := range [][2]int{{-1, 0}, {0, -1}, {8, 0}, {0, 11}} {
		if _, ok := tg.At(idx[0], idx[1]); ok {
			t.Errorf("Expected no tile at %v", idx)
		}
	}
}

func TestTileGridEachRowMajor(t *testing.T) {
	tg := NewTileGridFromLayout(referenceLayout(t))

	count := 0
	prevY, prevX := -1, -1
	tg.Each(func(tile Tile) {
		expectedRow := count / tg.Columns()
		expectedCol := count % tg.Columns()
		if tile.Row != expectedRow || tile.Column != expectedCol {
			t.Errorf("Tile %d out of order: (%d,%d)", count, tile.Row, tile.Column)
		}
		if tile.Y < prevY || (tile.Y == prevY && tile.X <= prevX) {
			t.Errorf("Tile %d not increasing: (%d,%d)", count, tile.X, tile.Y)
		}
		prevY, prevX = tile.Y, tile.X
		count++
	})

	if count != tg.Len() {
		t.Errorf("Each visited %d tiles, expected %d", count, tg.Len())
	}
}

func TestTileAt(t *testing.T) {
	tg := NewTileGridFromLayout(referenceLayout(t))

	tests := []struct {
		x, y     int
		ok       bool
		row, col int
	}{
		{45, 40, true, 0, 0},
		{94, 89, true, 0, 0},
		{95, 40, true, 0, 1},
		{594, 439, true, 7, 10},
		{44, 40, false, 0, 0},
		{45, 39, false, 0, 0},
		{595, 40, false, 0, 0},
		{45, 440, false, 0, 0},
	}

	for _, tt := range tests {
		tile, ok := tg.TileAt(tt.x, tt.y)
		if ok != tt.ok {
			t.Errorf("TileAt(%d,%d) ok=%v, expected %v", tt.x, tt.y, ok, tt.ok)
			continue
		}
		if ok && (tile.Row != tt.row || tile.Column != tt.col) {
			t.Errorf("TileAt(%d,%d) = (%d,%d), expected (%d,%d)", tt.x, tt.y, tile.Row, tile.Column, tt.row, tt.col)
		}
	}
}
