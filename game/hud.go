package game

import (
	"fmt"
	"math"
)

// FuelGauge is the "Astrophage Reserve" meter in the bottom-right corner
type FuelGauge struct {
	Width   float64
	Height  float64
	Padding float64
}

// NewFuelGauge creates a gauge with the default geometry
func NewFuelGauge() *FuelGauge {
	return &FuelGauge{Width: 150, Height: 30, Padding: 20}
}

// Draw renders the gauge for fuel out of maxFuel on a w x h screen
func (g *FuelGauge) Draw(s Surface, fuel, maxFuel, w, h float64) {
	x := w - g.Width - g.Padding
	y := h - g.Height - g.Padding

	pct := 0.0
	if maxFuel > 0 {
		pct = clamp(fuel/maxFuel, 0, 1)
	}

	fill := colorRed
	switch {
	case pct > 0.5:
		fill = colorGreen
	case pct > 0.25:
		fill = colorYellow
	}

	s.FillRect(x, y, g.Width, g.Height, rgba(50, 50, 50, 0.7))
	s.StrokeRect(x, y, g.Width, g.Height, 2, colorGrey)
	s.FillRect(x, y, g.Width*pct, g.Height, fill)

	if pct < 0.25 {
		s.StrokeRect(x-2, y-2, g.Width+4, g.Height+4, 3, rgba(255, 0, 0, 0.5))
		s.StrokeRect(x, y, g.Width, g.Height, 2, colorRed)
	}

	s.Text("Astrophage Reserve", x, y-10, colorWhite, AlignLeft)
	s.Text(fmt.Sprintf("%d%%", int(math.Round(pct*100))), x+g.Width/2, y+g.Height/2, colorWhite, AlignCenter)
}

// drawHUD renders the top-left readouts
func drawHUD(s Surface, w *World, m *MissionState, elapsed float64) {
	s.Text(fmt.Sprintf("Fuel: %.1f", w.Ship.Fuel), 10, 20, colorWhite, AlignLeft)
	s.Text(fmt.Sprintf("Time: %d", int(elapsed)), 10, 40, colorWhite, AlignLeft)
	s.Text(fmt.Sprintf("Destroyed: %d", w.Destroyed), 10, 60, colorWhite, AlignLeft)
	s.Text(m.Objective(), 10, 80, colorYellow, AlignLeft)

	if !w.Ship.Alive {
		fw, fh := w.Config.FieldWidth, w.Config.FieldHeight
		s.Text("SHIP LOST", fw/2, fh/2, colorRed, AlignCenter)
	}
}
