package game

import "math"

// Spawner places new creatures. It owns no state besides the random source so the
// orchestrator can share one across rounds.
type Spawner struct {
	rng Rand
}

func NewSpawner(rng Rand) *Spawner {
	return &Spawner{rng: rng}
}

// insetPos draws a uniform point inside the SpawnInset-inset region of the world.
func (s *Spawner) insetPos(w World) (float64, float64) {
	x := between(s.rng, SpawnInset, math.Max(0, w.Width-SpawnInset*2))
	y := between(s.rng, SpawnInset, math.Max(0, w.Height-SpawnInset*2))
	return x, y
}

// SafePos samples the inset region until a candidate lies at least minDist from the world
// center. Worlds too small to contain such a point get the farthest candidate seen.
func (s *Spawner) SafePos(w World, minDist float64) (float64, float64) {
	cx, cy := w.Center()
	var bx, by, best float64
	best = -1
	for range SafeSpawnAttempts {
		x, y := s.insetPos(w)
		d := math.Hypot(x-cx, y-cy)
		if d >= minDist {
			return x, y
		}
		if d > best {
			bx, by, best = x, y, d
		}
	}
	return bx, by
}

// EdgePos picks one of the four edges uniformly and a point along it, EdgeSpawnOffset
// inside the world and away from the corners.
func (s *Spawner) EdgePos(w World) (float64, float64) {
	switch s.rng.IntN(4) {
	case 0: // top
		return s.along(w.Width), EdgeSpawnOffset
	case 1: // right
		return w.Width - EdgeSpawnOffset, s.along(w.Height)
	case 2: // bottom
		return s.along(w.Width), w.Height - EdgeSpawnOffset
	default: // left
		return EdgeSpawnOffset, s.along(w.Height)
	}
}

// EdgePosAwayFrom spawns on an edge away from the player: with even odds either the
// vertical edge opposite the player's side or the horizontal edge opposite its half.
// The coordinate along the edge is restricted to the half the player is not in.
func (s *Spawner) EdgePosAwayFrom(w World, px, py float64) (float64, float64) {
	cx, cy := w.Center()
	left := px < cx
	top := py < cy

	if s.rng.Float64() < 0.5 {
		x := EdgeSpawnOffset
		if left {
			x = w.Width - EdgeSpawnOffset
		}
		return x, s.half(w.Height, !top)
	}
	y := EdgeSpawnOffset
	if top {
		y = w.Height - EdgeSpawnOffset
	}
	return s.half(w.Width, !left), y
}

// along draws a point on [offset, length-offset].
func (s *Spawner) along(length float64) float64 {
	return between(s.rng, EdgeSpawnOffset, math.Max(0, length-EdgeSpawnOffset*2))
}

// half draws a point in the first (low) or second half of [offset, length-offset].
func (s *Spawner) half(length float64, low bool) float64 {
	mid := length / 2
	if low {
		return between(s.rng, EdgeSpawnOffset, math.Max(0, mid-EdgeSpawnOffset))
	}
	return between(s.rng, mid, math.Max(0, length-EdgeSpawnOffset-mid))
}

// Sharks spawns the initial shark school away from the player's start position.
func (s *Spawner) Sharks(w World, n int) []*Predator {
	out := make([]*Predator, 0, n)
	for range n {
		x, y := s.SafePos(w, SafeSpawnRadius)
		out = append(out, NewShark(x, y, s.rng))
	}
	return out
}

// Orcas spawns the initial orcas away from the player's start position.
func (s *Spawner) Orcas(w World, n int) []*Predator {
	out := make([]*Predator, 0, n)
	for range n {
		x, y := s.SafePos(w, SafeSpawnRadius)
		out = append(out, NewOrca(x, y, s.rng))
	}
	return out
}

// Crabs spawns the initial crabs, cycling through every variety.
func (s *Spawner) Crabs(w World, n int) []*Collectible {
	out := make([]*Collectible, 0, n)
	for i := range n {
		x, y := s.insetPos(w)
		out = append(out, NewCollectible(x, y, i%CrabVarieties, s.rng))
	}
	return out
}

// OneShark is a mid-round reinforcement entering from a random edge.
func (s *Spawner) OneShark(w World) *Predator {
	x, y := s.EdgePos(w)
	return NewShark(x, y, s.rng)
}

// OneOrca is a mid-round reinforcement entering on the side away from the player.
func (s *Spawner) OneOrca(w World, px, py float64) *Predator {
	x, y := s.EdgePosAwayFrom(w, px, py)
	return NewOrca(x, y, s.rng)
}

// OneCrab replaces an eaten crab with a random variety.
func (s *Spawner) OneCrab(w World) *Collectible {
	x, y := s.insetPos(w)
	return NewCollectible(x, y, -1, s.rng)
}
