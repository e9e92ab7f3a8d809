package movement

import (
	"errors"
	"fmt"

	"roomba/internal/layout"
	"roomba/internal/mathutil"
)

// ErrInvertedClamp is returned when a ClampSpec has a min edge past its max edge
var ErrInvertedClamp = errors.New("clamp spec min exceeds max")

// BoundSource supplies the layout-derived limits read once per tick
type BoundSource interface {
	Bounds() layout.BoundRect
}

// ClampSpec is a caller-imposed logical limit, combined with the layout bounds
type ClampSpec struct {
	MinX int
	MinY int
	MaxX int
	MaxY int
}

// ClampToViewport returns a ClampSpec covering the whole viewport
func ClampToViewport(vp layout.Viewport) ClampSpec {
	return ClampSpec{MinX: 0, MinY: 0, MaxX: vp.Width, MaxY: vp.Height}
}

// Validate checks that neither axis is inverted
func (c ClampSpec) Validate() error {
	if c.MinX > c.MaxX {
		return fmt.Errorf("%w: min_x %d > max_x %d", ErrInvertedClamp, c.MinX, c.MaxX)
	}
	if c.MinY > c.MaxY {
		return fmt.Errorf("%w: min_y %d > max_y %d", ErrInvertedClamp, c.MinY, c.MaxY)
	}
	return nil
}

// EffectiveBounds combines both limit sets edge by edge, most restrictive wins
func EffectiveBounds(c ClampSpec, r layout.BoundRect) layout.BoundRect {
	return layout.BoundRect{
		Top:    mathutil.IntMax(c.MinY, r.Top),
		Right:  mathutil.IntMin(c.MaxX, r.Right),
		Bottom: mathutil.IntMin(c.MaxY, r.Bottom),
		Left:   mathutil.IntMax(c.MinX, r.Left),
	}
}
