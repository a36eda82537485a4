package game

import "math"

// PlayerState is the seal's lifecycle.
//
//	idle <-> grabbed    explicit Grab / Release
//	idle|grabbed -> dying    Kill, on collision
//	dying -> dead       automatic after SealDeathTime
//
// dead is terminal; a new round replaces the Player.
type PlayerState uint8

const (
	PlayerIdle PlayerState = iota
	PlayerGrabbed
	PlayerDying
	PlayerDead
)

func (s PlayerState) String() string {
	switch s {
	case PlayerIdle:
		return "idle"
	case PlayerGrabbed:
		return "grabbed"
	case PlayerDying:
		return "dying"
	case PlayerDead:
		return "dead"
	}
	return "unknown"
}

// Player is the seal the user protects.
type Player struct {
	X, Y        float64
	Scale       float64
	TargetScale float64
	Alpha       float64 // 1 → 0 while dying
	Frame       float64
	FacingRight bool

	state      PlayerState
	time       float64
	deathTimer float64
	prevX      float64

	driftAngle    float64
	driftTimer    float64
	driftInterval float64
}

// NewPlayer places a fresh, idle seal in the middle of the world.
func NewPlayer(w World, rng Rand) *Player {
	cx, cy := w.Center()
	return &Player{
		X:             cx,
		Y:             cy,
		Scale:         SealScaleBase,
		TargetScale:   SealScaleBase,
		Alpha:         1,
		FacingRight:   true,
		state:         PlayerIdle,
		prevX:         cx,
		driftAngle:    rng.Float64() * twoPi,
		driftInterval: between(rng, SealDriftMin, SealDriftJitter),
	}
}

func (p *Player) State() PlayerState { return p.state }

func (p *Player) Grabbed() bool { return p.state == PlayerGrabbed }

// DeathTimer is the time spent dying so far.
func (p *Player) DeathTimer() float64 { return p.deathTimer }

// Grab starts a drag. Only an idle seal can be grabbed.
func (p *Player) Grab() bool {
	if p.state != PlayerIdle {
		return false
	}
	p.state = PlayerGrabbed
	return true
}

// Release ends a drag. It is a no-op unless the seal is grabbed.
func (p *Player) Release() {
	if p.state == PlayerGrabbed {
		p.state = PlayerIdle
	}
}

// Kill starts the death sequence. It reports false when the seal is already dying or dead.
func (p *Player) Kill() bool {
	if p.state != PlayerIdle && p.state != PlayerGrabbed {
		return false
	}
	p.state = PlayerDying
	p.deathTimer = 0
	return true
}

// Margin is how far the seal's center must stay from every edge: about half its glow.
func (p *Player) Margin(w World, sz Sizer) float64 {
	s := sz.Size(SpriteSeal, p.Scale*w.Scale)
	return math.Round(math.Max(s.W, s.H) * SealMarginFactor)
}

func (p *Player) clamp(w World, sz Sizer) {
	m := p.Margin(w, sz)
	p.X = Clamp(p.X, m, w.Width-m)
	p.Y = Clamp(p.Y, m, w.Height-m)
}

func (p *Player) steerable() bool {
	return p.state == PlayerIdle || p.state == PlayerGrabbed
}

// MoveBy applies a direct displacement, already scaled by the caller.
func (p *Player) MoveBy(w World, sz Sizer, dx, dy float64) {
	if !p.steerable() {
		return
	}
	m := p.Margin(w, sz)
	p.X = Clamp(p.X+dx, m, w.Width-m)
	p.Y = Clamp(p.Y+dy, m, w.Height-m)
	if math.Abs(dx) > 0.1 {
		p.FacingRight = dx > 0
	}
}

// MoveTo eases the seal a quarter of the way toward the pointer. The pointer is clamped
// into the safe region first so a drag can never pull the seal off screen.
func (p *Player) MoveTo(w World, sz Sizer, px, py float64) {
	if !p.steerable() {
		return
	}
	m := p.Margin(w, sz)
	tx := Clamp(px, m, w.Width-m)
	ty := Clamp(py, m, w.Height-m)
	p.X += (tx - p.X) * SealDragFraction
	p.Y += (ty - p.Y) * SealDragFraction
	p.clamp(w, sz)
}

func (p *Player) Update(w World, sz Sizer, dt float64, rng Rand) {
	switch p.state {
	case PlayerDead:
		return
	case PlayerDying:
		p.updateDying(w, sz, dt)
		return
	}

	p.time += dt
	p.Frame += SealFrameRate * dt

	dx := p.X - p.prevX
	if math.Abs(dx) > SealFacingDelta {
		p.FacingRight = dx > 0
	}
	p.prevX = p.X

	if p.state == PlayerIdle {
		bob := math.Sin(p.time*SealBobRate) * SealBobAmplitude

		p.driftTimer += dt
		if p.driftTimer >= p.driftInterval {
			p.driftTimer = 0
			p.driftInterval = between(rng, SealDriftMin, SealDriftJitter)
			p.driftAngle = rng.Float64() * twoPi
		}
		p.X += math.Cos(p.driftAngle) * SealDriftSpeed * w.Scale * dt
		p.Y += math.Sin(p.driftAngle)*SealDriftSpeed*w.Scale*dt + bob*dt
	}

	p.TargetScale = SealScaleBase
	if p.state == PlayerGrabbed {
		p.TargetScale = SealScaleBase * SealGrabScale
	}
	p.Scale += (p.TargetScale - p.Scale) * math.Min(1, dt*SealScaleRate)

	p.clamp(w, sz)
}

func (p *Player) updateDying(w World, sz Sizer, dt float64) {
	p.deathTimer += dt
	p.X += math.Sin(p.deathTimer*SealShakeRate) * SealShakePixels

	t := math.Min(1, p.deathTimer/SealDeathTime)
	p.Scale = SealScaleBase * (1 - t)
	p.Alpha = 1 - t
	if p.deathTimer >= SealDeathTime {
		p.state = PlayerDead
		p.Alpha = 0
	}
	p.clamp(w, sz)
}

// GrabBounds is the generous box used to decide whether a pointer press picks the seal up.
func (p *Player) GrabBounds(w World, sz Sizer) Rect {
	s := sz.Size(SpriteSeal, p.Scale*w.Scale)
	return RectAround(p.X, p.Y, s.W+SealGrabPad*2, s.H+SealGrabPad*2)
}

// Bounds is the forgiving box tested against predators and crabs.
func (p *Player) Bounds(w World, sz Sizer) Rect {
	s := sz.Size(SpriteSeal, p.Scale*w.Scale)
	return RectAround(p.X, p.Y, s.W*SealHitFraction, s.H*SealHitFraction)
}
