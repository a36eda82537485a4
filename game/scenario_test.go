package game_test

import (
	"testing"

	"go.uber.org/mock/gomock"

	"sealdive/game"
	"sealdive/game/mocks"
)

// stagedSizer hides crabs always and predators until armed.
type stagedSizer struct {
	armed bool
}

func (s *stagedSizer) Size(sp game.Sprite, scale float64) game.Size {
	switch sp {
	case game.SpriteCrab:
		return game.Size{}
	case game.SpriteShark, game.SpriteOrca:
		if !s.armed {
			return game.Size{}
		}
	}
	return game.FrameSizer{}.Size(sp, scale)
}

func TestRoundEndToEnd(t *testing.T) {
	ctrl := gomock.NewController(t)

	cues := mocks.NewMockCues(ctrl)
	fx := mocks.NewMockEffects(ctrl)
	env := mocks.NewMockEnvironment(ctrl)
	best := mocks.NewMockBestStore(ctrl)
	board := mocks.NewMockScoreboard(ctrl)

	var saved float64
	var submitted game.Result
	best.EXPECT().LoadBest().Return(3.0, nil)
	env.EXPECT().Update(gomock.Any(), gomock.Any()).AnyTimes()
	cues.EXPECT().Play(game.CueHit).Times(1)
	cues.EXPECT().Play(game.CueGameOver).Times(1)
	fx.EXPECT().DeathBurst(gomock.Any(), gomock.Any()).Times(1)
	best.EXPECT().SaveBest(gomock.Any()).DoAndReturn(func(v float64) error {
		saved = v
		return nil
	}).Times(1)
	board.EXPECT().Submit(gomock.Any()).Do(func(r game.Result) {
		submitted = r
	}).Times(1)

	sizer := &stagedSizer{}
	g := game.New(1280, 800, game.Options{
		Rand:        game.NewRand(2024),
		Sizer:       sizer,
		Cues:        cues,
		Effects:     fx,
		Environment: env,
		Best:        best,
		Scoreboard:  board,
	})
	if g.State() != game.StateStart || g.Best() != 3 {
		t.Fatalf("new game: state %v best %v, want start and 3", g.State(), g.Best())
	}

	g.PointerDown(640, 400)
	s := g.Snapshot()
	if s.State != game.StatePlaying || s.Survival != 0 || s.Score != 0 {
		t.Fatalf("after first press: %v survival %v score %v", s.State, s.Survival, s.Score)
	}
	if len(s.Predators) != game.SharkCount+game.OrcaCount || len(s.Crabs) != game.CrabCount {
		t.Fatalf("after first press: %d predators %d crabs", len(s.Predators), len(s.Crabs))
	}
	if s.PlayerState != game.PlayerIdle {
		t.Fatalf("player %v, want idle", s.PlayerState)
	}

	dt := game.TickStep.Seconds()
	for g.Survival() < 5.2 {
		g.Update(dt)
	}
	sizer.armed = true
	g.PutSharkOnPlayer()
	g.Update(dt)
	if g.State() != game.StateDying {
		t.Fatalf("state after contact = %v, want dying", g.State())
	}

	dying := 0
	for g.State() == game.StateDying && dying < 120 {
		g.Update(dt)
		dying++
	}
	if g.State() != game.StateGameOver {
		t.Fatalf("state after %d dying ticks = %v, want gameover", dying, g.State())
	}
	if elapsed := float64(dying) * dt; elapsed < game.SealDeathTime-dt || elapsed > game.SealDeathTime+2*dt {
		t.Fatalf("dying took %vs, want %vs", elapsed, game.SealDeathTime)
	}

	r := g.Result()
	if r.Survival < 5.2 || r.Survival > 5.2+2*dt {
		t.Fatalf("survival %v, want ≈ 5.2", r.Survival)
	}
	if submitted != r {
		t.Fatalf("submitted %+v, want %+v", submitted, r)
	}
	if saved != r.Time || g.Best() != r.Time {
		t.Fatalf("saved %v best %v, want %v", saved, g.Best(), r.Time)
	}

	// More ticks on the game-over screen must not resubmit.
	for range 120 {
		g.Update(dt)
	}
}
