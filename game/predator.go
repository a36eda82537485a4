package game

// Bite is the transient pulse a predator shows after catching the player.
// It is a component attached to a predator, not part of its steering.
type Bite struct {
	Active  bool
	Elapsed float64
}

// Start turns the pulse on and restarts its timer.
func (b *Bite) Start() {
	b.Active = true
	b.Elapsed = 0
}

// Update advances the pulse and clears it once BiteDuration has passed.
func (b *Bite) Update(dt float64) {
	if !b.Active {
		return
	}
	b.Elapsed += dt
	if b.Elapsed > BiteDuration {
		b.Active = false
	}
}

// Predator is a roaming threat: a shark or an orca.
type Predator struct {
	Steering
	Species *Species
	Scale   float64
	Frame   float64 // sprite frame cursor, advanced at FrameRate
	Bite    Bite

	frameRate float64
}

func newPredator(sp *Species, x, y float64, rng Rand) *Predator {
	return &Predator{
		Steering:  newSteering(sp, x, y, rng),
		Species:   sp,
		Scale:     sp.ScaleBase * between(rng, sp.ScaleMin, sp.ScaleSpan),
		Frame:     rng.Float64() * 4,
		frameRate: between(rng, sp.FrameMin, sp.FrameSpan),
	}
}

// NewShark spawns a small, fast predator at (x, y).
func NewShark(x, y float64, rng Rand) *Predator {
	return newPredator(&Shark, x, y, rng)
}

// NewOrca spawns a large, slow predator at (x, y).
func NewOrca(x, y float64, rng Rand) *Predator {
	return newPredator(&Orca, x, y, rng)
}

// StartBite triggers the bite pulse.
func (p *Predator) StartBite() {
	p.Bite.Start()
}

// Biting reports whether the bite pulse is on.
func (p *Predator) Biting() bool {
	return p.Bite.Active
}

func (p *Predator) Update(w World, dt float64, rng Rand) {
	p.Steering.Update(p.Species, w, dt, rng)
	p.Frame += p.frameRate * dt
	p.Bite.Update(dt)
}

// Bounds is the predator's collision box.
func (p *Predator) Bounds(w World, sz Sizer) Rect {
	return hitBox(p.Species, sz, p.X, p.Y, p.Scale*w.Scale)
}

// Boost multiplies the predator's speed, saturating at its species cap.
func (p *Predator) Boost(ratio float64) {
	p.Speed *= ratio
	if p.Species.SpeedCap > 0 && p.Speed > p.Species.SpeedCap {
		p.Speed = p.Species.SpeedCap
	}
}
