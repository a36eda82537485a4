package game

// Collectible is a crab the player eats for score.
type Collectible struct {
	Steering
	Species *Species
	Variety int // cosmetic tint, 0..CrabVarieties-1
	Scale   float64
	Frame   float64
	Wobble  float64

	frameRate float64
	alive     bool
}

// NewCollectible creates a live crab at (x, y). A negative variety picks one at random.
func NewCollectible(x, y float64, variety int, rng Rand) *Collectible {
	if variety < 0 {
		variety = rng.IntN(CrabVarieties)
	}
	sp := &Crab
	return &Collectible{
		Steering:  newSteering(sp, x, y, rng),
		Species:   sp,
		Variety:   variety,
		Scale:     sp.ScaleBase * between(rng, sp.ScaleMin, sp.ScaleSpan),
		Frame:     rng.Float64() * 8,
		Wobble:    rng.Float64() * twoPi,
		frameRate: between(rng, sp.FrameMin, sp.FrameSpan),
		alive:     true,
	}
}

// Alive reports whether the crab is still in play.
func (c *Collectible) Alive() bool {
	return c.alive
}

// consume marks the crab eaten. The orchestrator removes it from the active collection.
func (c *Collectible) consume() {
	c.alive = false
}

func (c *Collectible) Update(w World, dt float64, rng Rand) {
	if !c.alive {
		return
	}
	c.Steering.Update(c.Species, w, dt, rng)
	c.Wobble += dt * CrabWobbleRate
	c.Frame += c.frameRate * dt
}

// Bounds is the crab's pickup box.
func (c *Collectible) Bounds(w World, sz Sizer) Rect {
	return hitBox(c.Species, sz, c.X, c.Y, c.Scale*w.Scale)
}
