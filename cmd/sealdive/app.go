package main

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"

	"sealdive/game"
	"sealdive/leaderboard"
	"sealdive/render"
	"sealdive/replay"
)

// app ties the terminal to the session. Every method runs on the scheduler goroutine.
type app struct {
	sess   *replay.Session
	screen tcell.Screen
	view   *render.Renderer
	scene  *render.Scene
	in     *render.Input
	sound  muter
	keys   game.Keys
	now    func() time.Time
	quit   func()
}

type muter interface {
	ToggleMute() bool
	Muted() bool
}

// Update applies expired or newly held keys, then steps the session.
func (a *app) Update(dt float64) {
	if k := a.in.Held(a.now()); k != a.keys {
		a.keys = k
		a.sess.Do(replay.Cmd{Op: replay.OpKeys, Keys: k})
	}
	a.sess.Update(dt)
}

func (a *app) Render() { a.view.Draw(a.sess.Snapshot()) }

func (a *app) Paused() bool { return a.sess.Paused() }

func (a *app) handle(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		a.screen.Sync()
		w, h := a.view.Viewport().WorldSize()
		a.sess.Do(replay.Cmd{Op: replay.OpResize, X: w, Y: h})

	case *tcell.EventKey:
		switch a.in.Key(ev.Key(), ev.Rune(), a.now()) {
		case render.ActionQuit:
			a.quit()
		case render.ActionMute:
			if a.sound != nil {
				a.sound.ToggleMute()
				a.view.SetMuted(a.sound.Muted())
			}
		case render.ActionPause:
			if a.sess.State() == game.StatePlaying {
				a.sess.Do(replay.Cmd{Op: replay.OpTogglePause})
				return
			}
			a.press()
		case render.ActionPress:
			a.press()
		}

	case *tcell.EventMouse:
		col, row := ev.Position()
		x, y := a.view.Viewport().ToWorld(col, row)
		switch a.in.Mouse(ev.Buttons()) {
		case render.MouseDown:
			before := a.sess.State()
			a.sess.Do(replay.Cmd{Op: replay.OpPointerDown, X: x, Y: y})
			a.afterPress(before)
		case render.MouseMove:
			a.sess.Do(replay.Cmd{Op: replay.OpPointerMove, X: x, Y: y})
		case render.MouseUp:
			a.sess.Do(replay.Cmd{Op: replay.OpPointerUp})
		}
	}
}

// press starts or restarts a round from the title or game-over screen.
func (a *app) press() {
	before := a.sess.State()
	if before != game.StateStart && before != game.StateGameOver {
		return
	}
	a.sess.Do(replay.Cmd{Op: replay.OpPress})
	a.afterPress(before)
}

func (a *app) afterPress(before game.GameState) {
	if before == game.StateGameOver && a.sess.State() == game.StatePlaying && a.scene != nil {
		a.scene.Clear()
	}
}

// pumpEvents forwards polled events to out until poll returns nil (screen finalized)
// or ctx ends.
func pumpEvents(ctx context.Context, poll func() tcell.Event, out chan<- tcell.Event) {
	for {
		ev := poll()
		if ev == nil {
			return
		}
		select {
		case out <- ev:
		case <-ctx.Done():
			return
		}
	}
}

func boardRows(rows []leaderboard.Row) []render.Row {
	out := make([]render.Row, len(rows))
	for i, r := range rows {
		out[i] = render.Row{Nickname: r.Nickname, Best: r.BestTime}
	}
	return out
}
