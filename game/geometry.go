package game

import "math"

const twoPi = 2 * math.Pi

// AngleDifference returns the signed shortest rotation from current to target, in (-π, π].
func AngleDifference(target, current float64) float64 {
	d := math.Mod(target-current, twoPi)
	if d > math.Pi {
		d -= twoPi
	} else if d <= -math.Pi {
		d += twoPi
	}
	return d
}

// LerpAngle moves a toward b by fraction t of the shortest angular difference.
// Called every tick with t = min(1, dt*rate) it behaves as exponential smoothing.
func LerpAngle(a, b, t float64) float64 {
	return a + AngleDifference(b, a)*t
}

// Clamp restricts v to [lo, hi]. When lo > hi the result is lo.
func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// ClampOpt clamps v to bounds[0], bounds[1]. With fewer than two bounds it returns v unchanged.
func ClampOpt(v float64, bounds ...float64) float64 {
	if len(bounds) < 2 {
		return v
	}
	return Clamp(v, bounds[0], bounds[1])
}

// Rect is an axis-aligned box with its origin at the top-left corner.
type Rect struct {
	X, Y float64
	W, H float64
}

// RectAround returns a w×h box centered on (cx, cy).
func RectAround(cx, cy, w, h float64) Rect {
	return Rect{X: cx - w/2, Y: cy - h/2, W: w, H: h}
}

// Overlaps reports whether r and o intersect on both axes. Touching edges do not overlap.
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.X+o.W && r.X+r.W > o.X &&
		r.Y < o.Y+o.H && r.Y+r.H > o.Y
}

// Contains reports whether (x, y) lies inside r, edges included.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.W && y >= r.Y && y <= r.Y+r.H
}

// Center returns the midpoint of r.
func (r Rect) Center() (float64, float64) {
	return r.X + r.W/2, r.Y + r.H/2
}
