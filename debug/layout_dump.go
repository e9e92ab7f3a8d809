package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"roomba/internal/layout"
	"roomba/internal/world"
)

func main() {
	width := flag.Int("width", 640, "viewport width in pixels")
	height := flag.Int("height", 480, "viewport height in pixels")
	cellSize := flag.Int("cell", 50, "cell size in pixels")
	flag.Parse()

	fmt.Println("Grid Layout")
	fmt.Println("===========")

	l, err := layout.Calculate(layout.Viewport{Width: *width, Height: *height}, *cellSize)
	if err != nil {
		log.Fatalf("Failed to calculate layout: %v", err)
	}

	dm := world.NewDataManager(l)
	if err := dm.WriteYAML(os.Stdout); err != nil {
		log.Fatalf("Failed to write layout: %v", err)
	}

	extent := l.Extent()
	fmt.Printf("\nTiles cover x %d..%d, y %d..%d\n", extent.Left, extent.Right, extent.Top, extent.Bottom)

	tiles := world.NewTileGridFromLayout(l)
	for _, idx := range [][2]int{{0, 0}, {0, tiles.Columns() - 1}, {tiles.Rows() - 1, 0}, {tiles.Rows() - 1, tiles.Columns() - 1}} {
		if t, ok := tiles.At(idx[0], idx[1]); ok {
			fmt.Printf("tile (%d,%d) at (%d,%d)\n", t.Row, t.Column, t.X, t.Y)
		}
	}
}
