package sprig

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

type heldKeys map[ebiten.Key]bool

func (h heldKeys) IsKeyPressed(k ebiten.Key) bool { return h[k] }

func TestKeyMapHeld(t *testing.T) {
	keys := heldKeys{}
	m := NewKeyMap(keys)
	m.Bind("jump", ebiten.KeySpace, ebiten.KeyZ)

	if m.Held("jump") {
		t.Error("jump held with no keys down")
	}
	keys[ebiten.KeyZ] = true
	if !m.Held("jump") {
		t.Error("jump not held with Z down")
	}
	if m.Held("fire") {
		t.Error("unknown command reported held")
	}

	m.Unbind("jump")
	if m.Held("jump") || len(m.Keys("jump")) != 0 {
		t.Error("Unbind left bindings behind")
	}
}

func TestKeyMapBindAppends(t *testing.T) {
	m := NewKeyMap(heldKeys{})
	m.Bind("up", ebiten.KeyW)
	m.Bind("up", ebiten.KeyI)
	got := m.Keys("up")
	if len(got) != 2 || got[0] != ebiten.KeyW || got[1] != ebiten.KeyI {
		t.Errorf("Keys(up) = %v, want [W I]", got)
	}
}

func TestMovementKeyMap(t *testing.T) {
	tests := []struct {
		key  ebiten.Key
		held string
	}{
		{ebiten.KeyArrowUp, "up"},
		{ebiten.KeyW, "up"},
		{ebiten.KeyS, "down"},
		{ebiten.KeyArrowLeft, "left"},
		{ebiten.KeyD, "right"},
	}
	for _, tt := range tests {
		t.Run(tt.key.String(), func(t *testing.T) {
			m := NewMovementKeyMap(heldKeys{tt.key: true})
			for _, dir := range []MovementDirection{MoveUp, MoveDown, MoveLeft, MoveRight} {
				want := dir.String() == tt.held
				if m.Held(dir.String()) != want {
					t.Errorf("Held(%s) = %v, want %v", dir, !want, want)
				}
			}
		})
	}
}

func TestKeyFunc(t *testing.T) {
	var asked ebiten.Key
	k := KeyFunc(func(key ebiten.Key) bool {
		asked = key
		return key == ebiten.KeyEnter
	})
	if !k.IsKeyPressed(ebiten.KeyEnter) || asked != ebiten.KeyEnter {
		t.Error("KeyFunc did not forward")
	}
	if k.IsKeyPressed(ebiten.KeyA) {
		t.Error("KeyFunc reported A held")
	}
}
