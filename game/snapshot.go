package game

// EntityView is everything a renderer needs to draw one creature.
type EntityView struct {
	Sprite      Sprite
	X, Y        float64
	Scale       float64 // includes DeviceScale
	Frame       float64
	FacingRight bool
	Alpha       float64
	Biting      bool
	Variety     int
	Wobble      float64
}

// Snapshot is a read-only copy of the session taken between ticks.
type Snapshot struct {
	Tick   uint64
	State  GameState
	Paused bool
	World  World

	StartTimer    float64
	Survival      float64
	GameOverTimer float64
	Best          float64
	Score         int
	Result        Result
	NewBest       bool
	Keys          Keys

	Player      EntityView
	PlayerState PlayerState
	Predators   []EntityView // sharks first, then orcas
	Crabs       []EntityView
	Floats      []FloatScore
}

// Snapshot copies the current state. The returned slices are not shared with the game.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Tick:          g.tick,
		State:         g.state,
		Paused:        g.paused,
		World:         g.world,
		StartTimer:    g.startTimer,
		Survival:      g.survival,
		GameOverTimer: g.gameOverTimer,
		Best:          g.best,
		Score:         g.score,
		Result:        g.result,
		NewBest:       g.newBest,
		Keys:          g.input.Keys,
		PlayerState:   g.player.State(),
		Player: EntityView{
			Sprite:      SpriteSeal,
			X:           g.player.X,
			Y:           g.player.Y,
			Scale:       g.player.Scale * g.world.Scale,
			Frame:       g.player.Frame,
			FacingRight: g.player.FacingRight,
			Alpha:       g.player.Alpha,
		},
		Predators: make([]EntityView, 0, len(g.sharks)+len(g.orcas)),
		Crabs:     make([]EntityView, 0, len(g.crabs)),
		Floats:    append([]FloatScore(nil), g.floats...),
	}
	for _, group := range [...][]*Predator{g.sharks, g.orcas} {
		for _, p := range group {
			s.Predators = append(s.Predators, EntityView{
				Sprite:      p.Species.Sprite,
				X:           p.X,
				Y:           p.Y,
				Scale:       p.Scale * g.world.Scale,
				Frame:       p.Frame,
				FacingRight: p.FacingRight(),
				Alpha:       1,
				Biting:      p.Biting(),
			})
		}
	}
	for _, c := range g.crabs {
		s.Crabs = append(s.Crabs, EntityView{
			Sprite:      SpriteCrab,
			X:           c.X,
			Y:           c.Y,
			Scale:       c.Scale * g.world.Scale,
			Frame:       c.Frame,
			FacingRight: c.FacingRight(),
			Alpha:       1,
			Variety:     c.Variety,
			Wobble:      c.Wobble,
		})
	}
	return s
}
