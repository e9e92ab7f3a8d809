package keytracker

import (
	"testing"

	"roomba/internal/movement"

	"github.com/hajimehoshi/ebiten/v2"
)

func TestObserveRisingEdge(t *testing.T) {
	var k KeyStateTracker
	steps := []struct {
		pressed bool
		want    bool
	}{
		{false, false},
		{true, true},
		{true, false},
		{false, false},
		{true, true},
	}
	for i, s := range steps {
		if got := k.Observe(s.pressed); got != s.want {
			t.Errorf("Step %d: got %v, expected %v", i, got, s.want)
		}
	}
}

func TestDirectionKeysPoll(t *testing.T) {
	dk := DefaultDirectionKeys()
	e := movement.NewEntity("roomba", 0, 0, 50, 50)

	down := map[ebiten.Key]bool{ebiten.KeyArrowUp: true, ebiten.KeyD: true}
	pressed := func(k ebiten.Key) bool { return down[k] }

	dk.Poll(e, pressed)
	if !e.Intent.North || !e.Intent.East || e.Intent.South || e.Intent.West {
		t.Errorf("Unexpected intent after first poll: %+v", e.Intent)
	}

	// Held keys do not re-trigger
	e.Intent.Clear()
	dk.Poll(e, pressed)
	if e.Intent.Pending() {
		t.Errorf("Held keys should not set intent again: %+v", e.Intent)
	}

	// Release and press again
	dk.Poll(e, func(ebiten.Key) bool { return false })
	dk.Poll(e, func(k ebiten.Key) bool { return k == ebiten.KeyA })
	if e.Intent.Direction() != movement.West {
		t.Errorf("Expected west intent, got %+v", e.Intent)
	}
}

func TestNewDirectionKeysSkipsEmptyBindings(t *testing.T) {
	dk := NewDirectionKeys(map[movement.Direction][]ebiten.Key{
		movement.South: {ebiten.KeyJ},
	})
	if len(dk.bindings) != 1 || dk.bindings[0].Direction != movement.South {
		t.Errorf("Unexpected bindings: %+v", dk.bindings)
	}
}
