package game

import "math"

// Vec represents a 2D vector
type Vec struct {
	X, Y float64
}

// Add returns v+o
func (v Vec) Add(o Vec) Vec { return Vec{v.X + o.X, v.Y + o.Y} }

// Sub returns v-o
func (v Vec) Sub(o Vec) Vec { return Vec{v.X - o.X, v.Y - o.Y} }

// Scale returns v*s
func (v Vec) Scale(s float64) Vec { return Vec{v.X * s, v.Y * s} }

// Dot returns the dot product of v and o
func (v Vec) Dot(o Vec) float64 { return v.X*o.X + v.Y*o.Y }

// Len returns the length of v
func (v Vec) Len() float64 { return math.Hypot(v.X, v.Y) }

// Dist returns the distance between v and o
func (v Vec) Dist(o Vec) float64 { return math.Hypot(v.X-o.X, v.Y-o.Y) }

// FromAngle returns a vector of length r pointing at angle
func FromAngle(angle, r float64) Vec {
	return Vec{math.Cos(angle) * r, math.Sin(angle) * r}
}

// Wrap maps p back into the [0,w)x[0,h) field. Crossing the far edge
// re-enters at 0, crossing the near edge re-enters from the far side.
func Wrap(p Vec, w, h float64) Vec {
	return Vec{wrapAxis(p.X, w), wrapAxis(p.Y, h)}
}

// wrapped reports whether Wrap would move p
func wrapped(p Vec, w, h float64) bool {
	return p.X >= w || p.X < 0 || p.Y >= h || p.Y < 0
}

func wrapAxis(v, size float64) float64 {
	if v >= size {
		return 0
	}
	if v < 0 {
		v = math.Mod(v, size) + size
		if v >= size {
			v = 0
		}
	}
	return v
}

// PolysCollide runs a separating-axis test over the edge normals of both
// polygons. A single-point polygon has no edges, so against a real polygon
// it becomes a point-in-polygon test. Touching boundaries collide.
func PolysCollide(a, b []Vec) bool {
	if len(a) == 0 || len(b) == 0 {
		return false
	}
	if len(a) == 1 && len(b) == 1 {
		return a[0] == b[0]
	}

	for _, poly := range [2][]Vec{a, b} {
		if len(poly) < 2 {
			continue
		}
		for i := range poly {
			p1 := poly[i]
			p2 := poly[(i+1)%len(poly)]
			axis := Vec{X: p1.Y - p2.Y, Y: p2.X - p1.X}
			if axis.X == 0 && axis.Y == 0 {
				continue
			}
			minA, maxA := project(a, axis)
			minB, maxB := project(b, axis)
			if maxA < minB || maxB < minA {
				return false
			}
		}
	}
	return true
}

// project returns the extent of poly along axis
func project(poly []Vec, axis Vec) (float64, float64) {
	lo := poly[0].Dot(axis)
	hi := lo
	for _, p := range poly[1:] {
		d := p.Dot(axis)
		if d < lo {
			lo = d
		}
		if d > hi {
			hi = d
		}
	}
	return lo, hi
}

// ShipPolygon returns the ship hull triangle in world space: the nose 15px
// along the heading and two tail corners 10px out at 2.5 rad either side
func ShipPolygon(pos Vec, angle float64) []Vec {
	return []Vec{
		pos.Add(FromAngle(angle, 15)),
		pos.Add(FromAngle(angle+2.5, 10)),
		pos.Add(FromAngle(angle-2.5, 10)),
	}
}

// ellipsePoints samples a closed axis-aligned ellipse
func ellipsePoints(cx, cy, rx, ry float64, n int) []Vec {
	pts := make([]Vec, 0, n)
	for i := 0; i < n; i++ {
		a := 2 * math.Pi * float64(i) / float64(n)
		pts = append(pts, Vec{cx + math.Cos(a)*rx, cy + math.Sin(a)*ry})
	}
	return pts
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
