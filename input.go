package sprig

import "github.com/hajimehoshi/ebiten/v2"

// KeyState answers whether a key is currently held.
type KeyState interface {
	IsKeyPressed(key ebiten.Key) bool
}

// CommandSource answers whether a named command is currently held.
type CommandSource interface {
	Held(command string) bool
}

// Keyboard polls the real keyboard through Ebitengine.
type Keyboard struct{}

// IsKeyPressed reports whether key is held this tick.
func (Keyboard) IsKeyPressed(key ebiten.Key) bool {
	return ebiten.IsKeyPressed(key)
}

// KeyFunc adapts a plain function to KeyState.
type KeyFunc func(key ebiten.Key) bool

// IsKeyPressed calls f(key).
func (f KeyFunc) IsKeyPressed(key ebiten.Key) bool {
	return f(key)
}

// KeyMap binds command names to one or more keys. A command is held when
// any of its keys is held.
type KeyMap struct {
	keys     KeyState
	bindings map[string][]ebiten.Key
}

// NewKeyMap creates an empty key map polling keys.
func NewKeyMap(keys KeyState) *KeyMap {
	return &KeyMap{keys: keys, bindings: make(map[string][]ebiten.Key)}
}

// NewMovementKeyMap binds "up", "down", "left" and "right" to both the
// arrow keys and WASD.
func NewMovementKeyMap(keys KeyState) *KeyMap {
	m := NewKeyMap(keys)
	m.Bind(MoveUp.String(), ebiten.KeyArrowUp, ebiten.KeyW)
	m.Bind(MoveDown.String(), ebiten.KeyArrowDown, ebiten.KeyS)
	m.Bind(MoveLeft.String(), ebiten.KeyArrowLeft, ebiten.KeyA)
	m.Bind(MoveRight.String(), ebiten.KeyArrowRight, ebiten.KeyD)
	return m
}

// Bind adds keys to command.
func (m *KeyMap) Bind(command string, keys ...ebiten.Key) {
	m.bindings[command] = append(m.bindings[command], keys...)
}

// Unbind removes every key bound to command.
func (m *KeyMap) Unbind(command string) {
	delete(m.bindings, command)
}

// Keys returns the keys bound to command. The returned slice MUST NOT be
// mutated.
func (m *KeyMap) Keys(command string) []ebiten.Key {
	return m.bindings[command]
}

// Held reports whether any key bound to command is held. Unknown commands
// are never held.
func (m *KeyMap) Held(command string) bool {
	for _, k := range m.bindings[command] {
		if m.keys.IsKeyPressed(k) {
			return true
		}
	}
	return false
}
