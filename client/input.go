package client

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"astrophage/game"
)

// bindings maps game controls to keyboard keys
var bindings = map[game.Key][]ebiten.Key{
	game.KeyLeft:     {ebiten.KeyArrowLeft, ebiten.KeyA},
	game.KeyRight:    {ebiten.KeyArrowRight, ebiten.KeyD},
	game.KeyThrust:   {ebiten.KeyArrowUp, ebiten.KeyW},
	game.KeyFire:     {ebiten.KeySpace},
	game.KeyUp:       {ebiten.KeyArrowUp},
	game.KeyDown:     {ebiten.KeyArrowDown},
	game.KeyEnter:    {ebiten.KeyEnter, ebiten.KeyNumpadEnter},
	game.KeyEscape:   {ebiten.KeyEscape},
	game.KeyHitboxes: {ebiten.KeyF1},
}

// Keyboard implements game.Input from ebiten's key state
type Keyboard struct{}

// Pressed implements game.Input
func (Keyboard) Pressed(k game.Key) bool {
	if k == game.KeyDebugMenu {
		return ctrlHeld() && ebiten.IsKeyPressed(ebiten.KeyM)
	}
	for _, key := range bindings[k] {
		if ebiten.IsKeyPressed(key) {
			return true
		}
	}
	return false
}

// JustPressed implements game.Input
func (Keyboard) JustPressed(k game.Key) bool {
	if k == game.KeyDebugMenu {
		return ctrlHeld() && inpututil.IsKeyJustPressed(ebiten.KeyM)
	}
	for _, key := range bindings[k] {
		if inpututil.IsKeyJustPressed(key) {
			return true
		}
	}
	return false
}

func ctrlHeld() bool {
	return ebiten.IsKeyPressed(ebiten.KeyControl) || ebiten.IsKeyPressed(ebiten.KeyMeta)
}
