package movement

// Direction is a single cardinal step, or none
type Direction int

const (
	None Direction = iota
	North
	East
	South
	West
)

// String returns the lowercase direction name
func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case East:
		return "east"
	case South:
		return "south"
	case West:
		return "west"
	default:
		return "none"
	}
}

// Delta returns the pixel displacement of one step of cellSize in this direction
func (d Direction) Delta(cellSize int) (dx, dy int) {
	switch d {
	case North:
		return 0, -cellSize
	case East:
		return cellSize, 0
	case South:
		return 0, cellSize
	case West:
		return -cellSize, 0
	default:
		return 0, 0
	}
}

// Intent holds the per-tick movement request flags.
// Any number of flags may be set; only the highest priority one is applied.
type Intent struct {
	North bool
	East  bool
	South bool
	West  bool
}

// Direction resolves the flags in north, east, south, west priority order
func (i Intent) Direction() Direction {
	switch {
	case i.North:
		return North
	case i.East:
		return East
	case i.South:
		return South
	case i.West:
		return West
	default:
		return None
	}
}

// Set raises the flag for d. None leaves the intent unchanged.
func (i *Intent) Set(d Direction) {
	switch d {
	case North:
		i.North = true
	case East:
		i.East = true
	case South:
		i.South = true
	case West:
		i.West = true
	}
}

// Clear lowers all four flags
func (i *Intent) Clear() {
	*i = Intent{}
}

// Take resolves the intent and clears it
func (i *Intent) Take() Direction {
	d := i.Direction()
	i.Clear()
	return d
}

// Pending reports whether any flag is set
func (i Intent) Pending() bool {
	return i.North || i.East || i.South || i.West
}
