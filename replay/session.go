package replay

import "sealdive/game"

// Session drives a game and, when a recorder is attached, records every input
// and tick. It satisfies game.Loop apart from Render.
type Session struct {
	*game.Game
	rec *Recorder
}

// NewSession wraps g. rec may be nil.
func NewSession(g *game.Game, rec *Recorder) *Session {
	return &Session{Game: g, rec: rec}
}

// Do applies c and records it.
func (s *Session) Do(c Cmd) {
	Apply(s.Game, c)
	if s.rec != nil {
		s.rec.Command(c)
	}
}

func (s *Session) Update(dt float64) {
	s.Game.Update(dt)
	if s.rec != nil {
		s.rec.Record(dt)
	}
}
