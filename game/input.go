package game

// Key identifies a logical game control
type Key int

const (
	KeyLeft Key = iota
	KeyRight
	KeyThrust
	KeyFire
	KeyUp
	KeyDown
	KeyEnter
	KeyEscape
	KeyDebugMenu
	KeyHitboxes
	keyCount
)

// Input is polled once per frame. Pressed reports the held state, JustPressed
// reports a key that went down since the previous frame.
type Input interface {
	Pressed(k Key) bool
	JustPressed(k Key) bool
}

// KeyState is an Input fed by explicit key events, used by headless runs
type KeyState struct {
	down [keyCount]bool
	just [keyCount]bool
}

// NewKeyState creates an empty key state
func NewKeyState() *KeyState {
	return &KeyState{}
}

// Press marks k held, raising an edge if it was up
func (k *KeyState) Press(key Key) {
	if key < 0 || key >= keyCount {
		return
	}
	if !k.down[key] {
		k.just[key] = true
	}
	k.down[key] = true
}

// Release marks k up
func (k *KeyState) Release(key Key) {
	if key < 0 || key >= keyCount {
		return
	}
	k.down[key] = false
}

// Pressed implements Input
func (k *KeyState) Pressed(key Key) bool {
	if key < 0 || key >= keyCount {
		return false
	}
	return k.down[key]
}

// JustPressed implements Input
func (k *KeyState) JustPressed(key Key) bool {
	if key < 0 || key >= keyCount {
		return false
	}
	return k.just[key]
}

// EndFrame clears edge events; call after each Update
func (k *KeyState) EndFrame() {
	k.just = [keyCount]bool{}
}
