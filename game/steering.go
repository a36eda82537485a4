package game

import "math"

// Wander selects how a species picks a new heading when its retarget timer fires.
type Wander uint8

const (
	// WanderHorizontal swims mostly sideways: 0 or π, tilted by up to ±0.25 rad.
	WanderHorizontal Wander = iota
	// WanderAnywhere picks a uniformly random heading.
	WanderAnywhere
)

// Species is the tuning record behind one kind of roaming creature.
// The steering controller is shared; only these numbers differ between species.
type Species struct {
	Name   string
	Sprite Sprite
	Wander Wander

	SpeedMin, SpeedSpan float64 // units/s before DeviceScale
	SpeedCap            float64 // difficulty boosts never exceed this; 0 = uncapped

	ScaleBase, ScaleMin, ScaleSpan float64 // scale = base * (min + rand*span)

	TurnMin, TurnSpan float64 // retarget interval, seconds
	TurnRate          float64 // heading smoothing rate, 1/s

	Margin       float64 // edge repulsion margin
	MarginScaled bool    // multiply the margin by DeviceScale
	PushX, PushY float64 // repulsion strength for vertical and horizontal edges

	ClampX, ClampY float64 // hard clamp inset from the world edges
	ClampScaled    bool    // multiply the clamp inset by DeviceScale

	FrameMin, FrameSpan float64 // animation frames per second

	HitW, HitH float64 // hit box as a fraction of the visual size
}

var (
	Shark = Species{
		Name: "shark", Sprite: SpriteShark, Wander: WanderHorizontal,
		SpeedMin: 60, SpeedSpan: 50, SpeedCap: SharkSpeedCap,
		ScaleBase: SharkScale, ScaleMin: 0.85, ScaleSpan: 0.3,
		TurnMin: 2, TurnSpan: 3, TurnRate: 1.4,
		Margin: 140, MarginScaled: true, PushX: 3.5, PushY: 2.5,
		ClampY: FishClampInset, FrameMin: 6, FrameSpan: 3,
		HitW: 0.70, HitH: 0.50,
	}
	Orca = Species{
		Name: "orca", Sprite: SpriteOrca, Wander: WanderHorizontal,
		SpeedMin: 45, SpeedSpan: 30, SpeedCap: OrcaSpeedCap,
		ScaleBase: OrcaScale, ScaleMin: 0.9, ScaleSpan: 0.2,
		TurnMin: 3, TurnSpan: 4, TurnRate: 1.4,
		Margin: 140, MarginScaled: true, PushX: 3.5, PushY: 2.5,
		ClampY: FishClampInset, HitW: 0.80, HitH: 0.80,
	}
	Crab = Species{
		Name: "crab", Sprite: SpriteCrab, Wander: WanderAnywhere,
		SpeedMin: 18, SpeedSpan: 22,
		ScaleBase: 1, ScaleMin: 0.28, ScaleSpan: 0.18,
		TurnMin: 2, TurnSpan: 4, TurnRate: 1.0,
		Margin: 90, PushX: 3, PushY: 3,
		ClampX: CrabClampInset, ClampY: CrabClampInset, ClampScaled: true,
		FrameMin: 8, FrameSpan: 4,
		HitW: 0.60, HitH: 0.60,
	}
)

// Steering is the continuous motion state of a roaming creature.
type Steering struct {
	X, Y    float64
	Speed   float64
	Heading float64 // radians, 0 = right
	Target  float64
	Phase   float64 // free-running animation clock

	turnTimer    float64
	turnInterval float64
}

func newSteering(sp *Species, x, y float64, rng Rand) Steering {
	s := Steering{
		X:     x,
		Y:     y,
		Speed: between(rng, sp.SpeedMin, sp.SpeedSpan),
		Phase: rng.Float64() * 100,
	}
	switch sp.Wander {
	case WanderAnywhere:
		s.Heading = rng.Float64() * twoPi
	default:
		if rng.Float64() < 0.5 {
			s.Heading = math.Pi
		}
	}
	s.Target = s.Heading
	s.turnInterval = between(rng, sp.TurnMin, sp.TurnSpan)
	return s
}

// Update advances one tick: retarget, soft edge repulsion, heading smoothing,
// forward integration, and the hard clamp.
func (s *Steering) Update(sp *Species, w World, dt float64, rng Rand) {
	s.Phase += dt
	s.turnTimer += dt

	if s.turnTimer >= s.turnInterval {
		s.turnTimer = 0
		s.turnInterval = between(rng, sp.TurnMin, sp.TurnSpan)
		s.Target = pickHeading(sp.Wander, rng)
	}

	s.repel(sp, w, dt)

	s.Heading += AngleDifference(s.Target, s.Heading) * math.Min(1, dt*sp.TurnRate)

	s.X += math.Cos(s.Heading) * s.Speed * w.Scale * dt
	s.Y += math.Sin(s.Heading) * s.Speed * w.Scale * dt

	ix, iy := sp.ClampX, sp.ClampY
	if sp.ClampScaled {
		ix *= w.Scale
		iy *= w.Scale
	}
	s.X = Clamp(s.X, ix, w.Width-ix)
	s.Y = Clamp(s.Y, iy, w.Height-iy)
}

// repel biases the target heading toward the inward cardinal direction of any edge
// closer than the margin, proportional to how deep inside the margin the creature is.
func (s *Steering) repel(sp *Species, w World, dt float64) {
	m := sp.Margin
	if sp.MarginScaled {
		m *= w.Scale
	}
	if m <= 0 {
		return
	}
	if s.X < m {
		s.Target = LerpAngle(s.Target, 0, (1-s.X/m)*dt*sp.PushX)
	}
	if s.X > w.Width-m {
		s.Target = LerpAngle(s.Target, math.Pi, (1-(w.Width-s.X)/m)*dt*sp.PushX)
	}
	if s.Y < m {
		s.Target = LerpAngle(s.Target, math.Pi/2, (1-s.Y/m)*dt*sp.PushY)
	}
	if s.Y > w.Height-m {
		s.Target = LerpAngle(s.Target, -math.Pi/2, (1-(w.Height-s.Y)/m)*dt*sp.PushY)
	}
}

// FacingRight reports whether the creature is visually facing right.
func (s *Steering) FacingRight() bool {
	return math.Cos(s.Heading) > 0
}

func pickHeading(mode Wander, rng Rand) float64 {
	if mode == WanderAnywhere {
		return rng.Float64() * twoPi
	}
	base := 0.0
	if rng.Float64() < 0.5 {
		base = math.Pi
	}
	return base + (rng.Float64()-0.5)*0.5
}

// hitBox returns the species' forgiving hit box centered on the creature.
func hitBox(sp *Species, sz Sizer, x, y, scale float64) Rect {
	vis := sz.Size(sp.Sprite, scale)
	return RectAround(x, y, vis.W*sp.HitW, vis.H*sp.HitH)
}
