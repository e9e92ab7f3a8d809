package movement

import "roomba/internal/layout"

// Entity is anything that occupies a box on the grid and can be stepped.
// The movement system mutates X, Y and Intent; callers own everything else.
type Entity struct {
	Name   string
	Sprite string
	X      int
	Y      int
	Width  int
	Height int
	Intent Intent
}

// NewEntity creates an entity at (x, y) with a fixed size
func NewEntity(name string, x, y, width, height int) *Entity {
	return &Entity{
		Name:   name,
		X:      x,
		Y:      y,
		Width:  width,
		Height: height,
	}
}

// IntentSource sets movement intents on an entity before a tick
type IntentSource interface {
	ApplyIntent(e *Entity)
}

// StepResult reports what a single entity step did
type StepResult struct {
	Direction Direction
	Clamped   bool
}

// Step applies at most one displacement from the entity's intent, clears the
// intent, and clamps the result into bounds.
func Step(e *Entity, cellSize int, bounds layout.BoundRect) StepResult {
	dir := e.Intent.Take()
	dx, dy := dir.Delta(cellSize)
	e.X += dx
	e.Y += dy

	return StepResult{
		Direction: dir,
		Clamped:   Clamp(e, bounds),
	}
}

// Clamp pulls the entity back inside bounds in north, east, south, west order.
// It returns true if the position changed.
func Clamp(e *Entity, bounds layout.BoundRect) bool {
	x, y := e.X, e.Y

	if e.Y < bounds.Top {
		e.Y = bounds.Top
	}
	if e.X+e.Width > bounds.Right {
		e.X = bounds.Right - e.Width
	}
	if e.Y+e.Height > bounds.Bottom {
		e.Y = bounds.Bottom - e.Height
	}
	if e.X < bounds.Left {
		e.X = bounds.Left
	}

	return x != e.X || y != e.Y
}
