package render

import (
	"math"
	"math/rand/v2"
	"sync"

	"sealdive/game"
)

// Bubble is one rising bubble in the background.
type Bubble struct {
	X, Y    float64
	R       float64
	Speed   float64
	Opacity float64
	Wobble  float64
}

// Seaweed is one frond swaying at the bottom edge.
type Seaweed struct {
	X      float64
	Height float64
	Phase  float64
	Dark   bool
}

// Particle is one fragment of a death burst.
type Particle struct {
	X, Y   float64
	VX, VY float64
	Size   float64
	Color  int // index into burstPalette
	Life   float64
	Decay  float64
}

const (
	BurstCount    = 22
	BurstGravity  = 200.0
	BurstDrag     = 0.97
	BurstSpread   = 24.0
	BurstVelocity = 260.0
	BurstLift     = 70.0
	SeaweedCount  = 14
)

type bubbleLayer struct {
	n                      int
	rMin, rMax, sMin, sMax float64
	opacityMin, opacityMax float64
}

var bubbleLayers = []bubbleLayer{
	{n: 18, rMin: 2, rMax: 5, sMin: 18, sMax: 30, opacityMin: 0.20, opacityMax: 0.40},
	{n: 10, rMin: 6, rMax: 10, sMin: 28, sMax: 45, opacityMin: 0.12, opacityMax: 0.25},
	{n: 6, rMin: 11, rMax: 18, sMin: 40, sMax: 60, opacityMin: 0.07, opacityMax: 0.15},
}

// Scene is the cosmetic layer: ambient ocean plus death bursts. It is the game's
// Environment and Effects collaborator. The simulation goroutine writes it and the
// draw path reads it, so access is locked.
type Scene struct {
	mu        sync.Mutex
	rng       *rand.Rand
	time      float64
	bubbles   []Bubble
	seaweed   []Seaweed
	particles []Particle
	width     float64
	height    float64
}

// NewScene scatters bubbles and seaweed over a width×height world.
func NewScene(w game.World, seed uint64) *Scene {
	s := &Scene{
		rng:    rand.New(rand.NewPCG(seed, seed+1)),
		width:  w.Width,
		height: w.Height,
	}
	for _, l := range bubbleLayers {
		for range l.n {
			s.bubbles = append(s.bubbles, Bubble{
				X:       s.rng.Float64() * w.Width,
				Y:       s.rng.Float64() * w.Height,
				R:       l.rMin + s.rng.Float64()*(l.rMax-l.rMin),
				Speed:   l.sMin + s.rng.Float64()*(l.sMax-l.sMin),
				Opacity: l.opacityMin + s.rng.Float64()*(l.opacityMax-l.opacityMin),
				Wobble:  s.rng.Float64() * 2 * math.Pi,
			})
		}
	}
	s.plantSeaweed(w.Width)
	return s
}

func (s *Scene) plantSeaweed(width float64) {
	s.seaweed = s.seaweed[:0]
	slot := width / SeaweedCount
	for i := range SeaweedCount {
		s.seaweed = append(s.seaweed, Seaweed{
			X:      slot*float64(i) + s.rng.Float64()*slot,
			Height: 40 + s.rng.Float64()*60,
			Phase:  s.rng.Float64() * 2 * math.Pi,
			Dark:   s.rng.Float64() < 0.5,
		})
	}
}

// Update drifts bubbles and seaweed and ages particles.
func (s *Scene) Update(w game.World, dt float64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if w.Width != s.width {
		s.plantSeaweed(w.Width)
	}
	s.width, s.height = w.Width, w.Height
	s.time += dt

	for i := range s.bubbles {
		b := &s.bubbles[i]
		b.Y -= b.Speed * dt
		b.Wobble += dt * 1.2
		b.X += math.Sin(b.Wobble) * 0.4
		if b.Y+b.R < 0 {
			b.Y = w.Height + b.R
			b.X = s.rng.Float64() * w.Width
		}
	}
	for i := range s.seaweed {
		s.seaweed[i].Phase += dt * 0.9
	}

	kept := s.particles[:0]
	for _, p := range s.particles {
		p.VX *= BurstDrag
		p.VY += BurstGravity * dt
		p.X += p.VX * dt
		p.Y += p.VY * dt
		p.Life -= p.Decay * dt
		if p.Life > 0 {
			kept = append(kept, p)
		}
	}
	s.particles = kept
}

// DeathBurst scatters BurstCount particles from (x, y) with an upward bias.
func (s *Scene) DeathBurst(x, y float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for range BurstCount {
		s.particles = append(s.particles, Particle{
			X:     x + (s.rng.Float64()-0.5)*BurstSpread,
			Y:     y + (s.rng.Float64()-0.5)*BurstSpread,
			VX:    (s.rng.Float64() - 0.5) * BurstVelocity,
			VY:    (s.rng.Float64()-0.5)*BurstVelocity - BurstLift,
			Size:  3 + s.rng.Float64()*6,
			Color: s.rng.IntN(len(burstPalette)),
			Life:  1,
			Decay: 1.1 + s.rng.Float64()*0.9,
		})
	}
}

// Clear drops every particle, for a fresh round.
func (s *Scene) Clear() {
	s.mu.Lock()
	s.particles = nil
	s.mu.Unlock()
}

// sceneView is a copy of the scene for one frame.
type sceneView struct {
	time      float64
	bubbles   []Bubble
	seaweed   []Seaweed
	particles []Particle
}

func (s *Scene) view() sceneView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return sceneView{
		time:      s.time,
		bubbles:   append([]Bubble(nil), s.bubbles...),
		seaweed:   append([]Seaweed(nil), s.seaweed...),
		particles: append([]Particle(nil), s.particles...),
	}
}

// Particles is the number of live burst particles.
func (s *Scene) Particles() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.particles)
}
