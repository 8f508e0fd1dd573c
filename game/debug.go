package game

import "math"

// DebugState holds debug flags that persist across mission resets
type DebugState struct {
	ShowHitboxes bool // Outline collision polygons and pickup radii
}

// debugMissions are the entries offered by the debug menu
var debugMissions = []string{
	"Mission 1: Collect Astrophage",
	"Mission 2: Receive Canisters",
	"Mission 3: Free Flight",
}

// DebugMenu is the mission selector overlay. Gameplay pauses while it is open.
type DebugMenu struct {
	Open     bool
	Selected int // 1-based mission number
}

// NewDebugMenu creates a closed menu with mission 1 selected
func NewDebugMenu() *DebugMenu {
	return &DebugMenu{Selected: 1}
}

// Toggle opens or closes the menu
func (d *DebugMenu) Toggle() {
	d.Open = !d.Open
}

// HandleInput processes menu navigation. It returns the chosen mission and
// true when Enter is pressed.
func (d *DebugMenu) HandleInput(in Input) (int, bool) {
	if !d.Open {
		return 0, false
	}
	switch {
	case in.JustPressed(KeyUp):
		d.Selected = max(1, d.Selected-1)
	case in.JustPressed(KeyDown):
		d.Selected = min(len(debugMissions), d.Selected+1)
	case in.JustPressed(KeyEnter):
		d.Open = false
		return d.Selected, true
	case in.JustPressed(KeyEscape):
		d.Open = false
	}
	return 0, false
}

// Draw renders the menu over the whole screen
func (d *DebugMenu) Draw(s Surface, w, h float64) {
	if !d.Open {
		return
	}

	s.FillRect(0, 0, w, h, rgba(0, 0, 0, 0.8))
	s.Text("DEBUG MENU", w/2, 50, colorGreen, AlignCenter)
	s.Text("Use UP/DOWN arrows to select mission", w/2, 100, colorYellow, AlignCenter)
	s.Text("Press ENTER to start mission", w/2, 130, colorYellow, AlignCenter)
	s.Text("Press ESC or Ctrl+M to close", w/2, 160, colorYellow, AlignCenter)

	const startY, spacing = 220.0, 60.0
	for i, name := range debugMissions {
		y := startY + float64(i)*spacing
		if i+1 == d.Selected {
			s.FillRect(w/2-200, y-25, 400, 50, colorGreen)
			s.Text("> "+name+" <", w/2, y, colorBlack, AlignCenter)
			continue
		}
		s.Text(name, w/2, y, colorGreen, AlignCenter)
	}
}

// drawHitboxes outlines every collision shape in world space
func drawHitboxes(s Surface, w *World) {
	hitbox := rgba(255, 0, 0, 0.8)
	for _, a := range w.Asteroids.Items {
		s.StrokePath(a.WorldVerts(), true, 1, hitbox)
	}
	if w.Ship.Alive {
		s.StrokePath(w.Ship.Polygon(), true, 1, hitbox)
	}
	for _, pool := range w.Collectibles() {
		for _, c := range pool.Items {
			if c.Collected {
				continue
			}
			s.StrokeArc(c.Pos.X, c.Pos.Y, c.Radius+w.Config.PickupRadius, 0, 2*math.Pi, 1, hitbox)
		}
	}
}
