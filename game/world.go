package game

import (
	"math"
	"math/rand/v2"
)

// World is the viewport-sized play field every update reads.
// It is a value: the orchestrator replaces it on resize and hands a copy to each entity update.
type World struct {
	Width  float64
	Height float64
	Scale  float64 // DeviceScale, ≤ 1.0
}

// NewWorld builds a world for a width×height viewport and derives its DeviceScale.
func NewWorld(width, height float64) World {
	return World{
		Width:  width,
		Height: height,
		Scale:  DeviceScale(width, height),
	}
}

// DeviceScale normalizes gameplay feel across viewports: 1.0 at and above the reference
// short side, proportionally smaller below it.
func DeviceScale(width, height float64) float64 {
	short := math.Min(width, height)
	if short <= 0 {
		return 0
	}
	return math.Min(1.0, short/ReferenceShortSide)
}

// Center returns the middle of the play field.
func (w World) Center() (float64, float64) {
	return w.Width / 2, w.Height / 2
}

// Rand is the random source the simulation draws from. *rand.Rand satisfies it,
// and tests inject seeded sources so runs are reproducible.
type Rand interface {
	Float64() float64
	IntN(n int) int
}

// NewRand returns a deterministic PCG-backed source for seed.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// between draws uniformly from [lo, lo+span).
func between(rng Rand, lo, span float64) float64 {
	return lo + rng.Float64()*span
}
