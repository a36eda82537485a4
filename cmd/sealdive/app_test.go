package main

import (
	"context"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"sealdive/game"
	"sealdive/leaderboard"
	"sealdive/render"
	"sealdive/replay"
)

type fakeSound struct{ muted bool }

func (f *fakeSound) ToggleMute() bool { f.muted = !f.muted; return !f.muted }
func (f *fakeSound) Muted() bool      { return f.muted }

func newTestApp(t *testing.T) (*app, *bool) {
	t.Helper()
	scr := tcell.NewSimulationScreen("UTF-8")
	if err := scr.Init(); err != nil {
		t.Fatal(err)
	}
	scr.SetSize(120, 40)
	t.Cleanup(scr.Fini)

	vp := render.Viewport{Cols: 120, Rows: 40}
	w, h := vp.WorldSize()
	scene := render.NewScene(game.NewWorld(w, h), 1)
	g := game.New(w, h, game.Options{Rand: game.NewRand(9), Effects: scene, Environment: scene})

	quit := false
	now := time.Unix(500, 0)
	a := &app{
		sess:   replay.NewSession(g, nil),
		screen: scr,
		view:   render.NewRenderer(scr, scene),
		scene:  scene,
		in:     render.NewInput(),
		sound:  &fakeSound{},
		now:    func() time.Time { return now },
		quit:   func() { quit = true },
	}
	return a, &quit
}

func key(k tcell.Key, r rune) *tcell.EventKey {
	return tcell.NewEventKey(k, r, tcell.ModNone)
}

func TestAppKeysDriveTheRound(t *testing.T) {
	a, quit := newTestApp(t)

	a.handle(key(tcell.KeyRune, ' '))
	if a.sess.State() != game.StatePlaying {
		t.Fatalf("space on the title screen left state %v", a.sess.State())
	}
	a.handle(key(tcell.KeyRune, ' '))
	if !a.sess.Paused() {
		t.Fatal("space while playing did not pause")
	}
	a.handle(key(tcell.KeyRune, 'p'))
	if a.sess.Paused() {
		t.Fatal("p did not resume")
	}

	a.handle(key(tcell.KeyRune, 'm'))
	if !a.sound.Muted() {
		t.Fatal("m did not mute")
	}

	a.handle(key(tcell.KeyEscape, 0))
	if !*quit {
		t.Fatal("escape did not quit")
	}
}

func TestAppHeldKeysMoveTheSeal(t *testing.T) {
	a, _ := newTestApp(t)
	a.handle(key(tcell.KeyEnter, 0))

	x0 := a.sess.Snapshot().Player.X
	a.handle(key(tcell.KeyRight, 0))
	for range 10 {
		a.Update(game.TickStep.Seconds())
	}
	if a.keys != game.KeyRight {
		t.Fatalf("held keys = %08b, want right", a.keys)
	}
	if x := a.sess.Snapshot().Player.X; x <= x0 {
		t.Fatalf("seal x = %v, was %v; want it to move right", x, x0)
	}
}

func TestAppMouseUsesPauseButton(t *testing.T) {
	a, _ := newTestApp(t)
	a.handle(tcell.NewEventMouse(50, 20, tcell.Button1, tcell.ModNone))
	a.handle(tcell.NewEventMouse(50, 20, tcell.ButtonNone, tcell.ModNone))
	if a.sess.State() != game.StatePlaying {
		t.Fatalf("click on the title screen left state %v", a.sess.State())
	}

	a.handle(tcell.NewEventMouse(1, 0, tcell.Button1, tcell.ModNone))
	if !a.sess.Paused() {
		t.Fatal("click on the pause button did not pause")
	}
	a.Render()
}

func TestBoardRows(t *testing.T) {
	rows := boardRows([]leaderboard.Row{{Nickname: "kelp", BestTime: 12, BestScore: 3}})
	if len(rows) != 1 || rows[0] != (render.Row{Nickname: "kelp", Best: 12}) {
		t.Fatalf("boardRows = %+v", rows)
	}
}

func TestPumpEventsStopsWithoutAReader(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	out := make(chan tcell.Event)
	poll := func() tcell.Event { return key(tcell.KeyRune, 'x') }

	done := make(chan struct{})
	go func() {
		pumpEvents(ctx, poll, out)
		close(done)
	}()
	<-out
	cancel()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("pump blocked after cancel with nobody reading")
	}
}

func TestPumpEventsStopsOnNil(t *testing.T) {
	out := make(chan tcell.Event, 1)
	evs := []tcell.Event{key(tcell.KeyEnter, 0), nil}
	poll := func() tcell.Event {
		ev := evs[0]
		evs = evs[1:]
		return ev
	}
	pumpEvents(context.Background(), poll, out)
	if len(out) != 1 {
		t.Fatalf("forwarded %d events, want 1", len(out))
	}
}
