// keytracker.go - edge-triggered key bindings for Ebiten v2.8.8
// Maps groups of keys onto movement directions, one press per step.
package keytracker

import (
	"roomba/internal/movement"

	"github.com/hajimehoshi/ebiten/v2"
)

// KeyStateTracker tracks the previous state of a key.
type KeyStateTracker struct {
	prevPressed bool
}

// IsKeyJustPressed returns true if the key was not pressed last frame but is pressed this frame.
func (k *KeyStateTracker) IsKeyJustPressed(key ebiten.Key) bool {
	return k.Observe(ebiten.IsKeyPressed(key))
}

// Observe feeds the current pressed state and reports a rising edge.
func (k *KeyStateTracker) Observe(pressed bool) bool {
	justPressed := pressed && !k.prevPressed
	k.prevPressed = pressed
	return justPressed
}

// Binding ties keys to one direction
type Binding struct {
	Direction movement.Direction
	Keys      []ebiten.Key
	trackers  []KeyStateTracker
}

// DirectionKeys tracks every direction binding
type DirectionKeys struct {
	bindings []*Binding
}

// DefaultDirectionKeys binds arrow keys and WASD
func DefaultDirectionKeys() *DirectionKeys {
	return NewDirectionKeys(map[movement.Direction][]ebiten.Key{
		movement.North: {ebiten.KeyArrowUp, ebiten.KeyW},
		movement.East:  {ebiten.KeyArrowRight, ebiten.KeyD},
		movement.South: {ebiten.KeyArrowDown, ebiten.KeyS},
		movement.West:  {ebiten.KeyArrowLeft, ebiten.KeyA},
	})
}

// NewDirectionKeys creates trackers for the given bindings
func NewDirectionKeys(keys map[movement.Direction][]ebiten.Key) *DirectionKeys {
	dk := &DirectionKeys{}
	for _, dir := range []movement.Direction{movement.North, movement.East, movement.South, movement.West} {
		if len(keys[dir]) == 0 {
			continue
		}
		dk.bindings = append(dk.bindings, &Binding{
			Direction: dir,
			Keys:      keys[dir],
			trackers:  make([]KeyStateTracker, len(keys[dir])),
		})
	}
	return dk
}

// Poll sets an intent flag on e for every binding with a just-pressed key.
// pressed reports the current state of a key.
func (dk *DirectionKeys) Poll(e *movement.Entity, pressed func(ebiten.Key) bool) {
	for _, b := range dk.bindings {
		for i, key := range b.Keys {
			if b.trackers[i].Observe(pressed(key)) {
				e.Intent.Set(b.Direction)
			}
		}
	}
}

// ApplyIntent polls the live keyboard state
func (dk *DirectionKeys) ApplyIntent(e *movement.Entity) {
	dk.Poll(e, ebiten.IsKeyPressed)
}
