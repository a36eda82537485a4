package game

import "math"

// Keys is the set of held movement keys.
type Keys uint8

const (
	KeyUp Keys = 1 << iota
	KeyDown
	KeyLeft
	KeyRight
	KeyW
	KeyA
	KeyS
	KeyD
)

// Has reports whether every key in k2 is held.
func (k Keys) Has(k2 Keys) bool { return k&k2 == k2 }

// Any reports whether any key in k2 is held.
func (k Keys) Any(k2 Keys) bool { return k&k2 != 0 }

// Arrows is the subset of keys shown in the on-screen key hint.
const Arrows = KeyUp | KeyDown | KeyLeft | KeyRight

// Direction folds the held keys into a unit-or-zero vector. Opposing keys cancel.
func (k Keys) Direction() (float64, float64) {
	var dx, dy float64
	if k.Any(KeyLeft | KeyA) {
		dx--
	}
	if k.Any(KeyRight | KeyD) {
		dx++
	}
	if k.Any(KeyUp | KeyW) {
		dy--
	}
	if k.Any(KeyDown | KeyS) {
		dy++
	}
	if dx == 0 && dy == 0 {
		return 0, 0
	}
	l := math.Hypot(dx, dy)
	return dx / l, dy / l
}

// Input is the player's current intent: pointer, held keys, and an optional analog stick.
type Input struct {
	PointerX, PointerY float64
	Keys               Keys
	JoyX, JoyY         float64 // magnitude ≤ 1
}

// joystick returns the stick vector limited to unit length.
func (in Input) joystick() (float64, float64) {
	m := math.Hypot(in.JoyX, in.JoyY)
	if m == 0 {
		return 0, 0
	}
	if m > 1 {
		return in.JoyX / m, in.JoyY / m
	}
	return in.JoyX, in.JoyY
}
