package render

import (
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"sealdive/game"
)

func newScreen(t *testing.T, cols, rows int) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	if err := s.Init(); err != nil {
		t.Fatal(err)
	}
	s.SetSize(cols, rows)
	t.Cleanup(s.Fini)
	return s
}

func rowText(s tcell.Screen, row int) string {
	cols, _ := s.Size()
	var b strings.Builder
	for x := range cols {
		r, _, _, _ := s.GetContent(x, row)
		b.WriteRune(r)
	}
	return b.String()
}

func screenText(s tcell.Screen) string {
	_, rows := s.Size()
	var lines []string
	for y := range rows {
		lines = append(lines, rowText(s, y))
	}
	return strings.Join(lines, "\n")
}

func TestViewportRoundTrip(t *testing.T) {
	vp := Viewport{Cols: 80, Rows: 24}
	w, h := vp.WorldSize()
	if w != 800 || h != 480 {
		t.Fatalf("WorldSize = %v x %v, want 800 x 480", w, h)
	}
	for _, cell := range [][2]int{{0, 0}, {79, 23}, {40, 12}} {
		x, y := vp.ToWorld(cell[0], cell[1])
		col, row := vp.ToCell(x, y)
		if col != cell[0] || row != cell[1] {
			t.Fatalf("ToCell(ToWorld(%v)) = (%d, %d)", cell, col, row)
		}
	}
	if col, row := vp.ToCell(game.PauseButton.X, game.PauseButton.Y); col != 0 || row != 0 {
		t.Fatalf("pause button maps to (%d, %d), want (0, 0)", col, row)
	}
}

func TestFormatTime(t *testing.T) {
	tests := []struct {
		sec  float64
		want string
	}{
		{0, "0:00"},
		{9.99, "0:09"},
		{61, "1:01"},
		{600, "10:00"},
		{-3, "0:00"},
	}
	for _, tt := range tests {
		if got := FormatTime(tt.sec); got != tt.want {
			t.Errorf("FormatTime(%v) = %q, want %q", tt.sec, got, tt.want)
		}
	}
}

func TestSceneBubblesStayInWater(t *testing.T) {
	w := game.NewWorld(800, 480)
	s := NewScene(w, 3)
	for range 5000 {
		s.Update(w, game.TickStep.Seconds())
	}
	for i, b := range s.view().bubbles {
		if b.Y > w.Height+b.R || b.Y+b.R < -1 {
			t.Fatalf("bubble %d at y=%v left the water", i, b.Y)
		}
	}
}

func TestDeathBurstDecays(t *testing.T) {
	w := game.NewWorld(800, 480)
	s := NewScene(w, 1)
	s.DeathBurst(400, 240)
	if s.Particles() != BurstCount {
		t.Fatalf("Particles = %d, want %d", s.Particles(), BurstCount)
	}
	// The slowest particle decays at 1.1/s.
	for range int(1/1.1/game.TickStep.Seconds()) + 2 {
		s.Update(w, game.TickStep.Seconds())
	}
	if n := s.Particles(); n != 0 {
		t.Fatalf("%d particles alive after a second", n)
	}

	s.DeathBurst(400, 240)
	s.Clear()
	if s.Particles() != 0 {
		t.Fatal("Clear kept particles")
	}
}

func TestDrawTitleAndPlayfield(t *testing.T) {
	scr := newScreen(t, 100, 30)
	r := NewRenderer(scr, NewScene(game.NewWorld(1000, 600), 1))
	vp := r.Viewport()
	w, h := vp.WorldSize()

	g := game.New(w, h, game.Options{Rand: game.NewRand(5)})
	for range 80 {
		g.Update(game.TickStep.Seconds())
	}
	r.Draw(g.Snapshot())
	if text := screenText(scr); !strings.Contains(text, "S E A L   D I V E") || !strings.Contains(text, "click to dive") {
		t.Fatalf("title screen missing:\n%s", text)
	}

	g.Press()
	g.Update(game.TickStep.Seconds())
	snap := g.Snapshot()
	r.Draw(snap)

	col, row := vp.ToCell(snap.Player.X, snap.Player.Y)
	seal := glyphFor(snap.Player, false).text(snap.Player.FacingRight)
	if got := rowText(scr, row); !strings.Contains(got, seal) {
		t.Fatalf("row %d = %q, want the seal %q near column %d", row, got, seal, col)
	}
	if got := rowText(scr, 0); !strings.HasPrefix(got, "[||]") || !strings.Contains(got, "crabs 0  0:00") {
		t.Fatalf("HUD row = %q", got)
	}
	if got := rowText(scr, vp.Rows-1); !strings.Contains(got, "arrows/WASD") {
		t.Fatalf("key hint missing: %q", got)
	}
}

func TestDrawPausedAndBoard(t *testing.T) {
	scr := newScreen(t, 100, 30)
	r := NewRenderer(scr, nil)
	r.SetMuted(true)
	r.SetNote("kelp")
	r.SetBoard([]Row{{Nickname: "orca-hunter", Best: 75}})

	base := game.Snapshot{
		World:  game.NewWorld(1000, 600),
		State:  game.StatePlaying,
		Paused: true,
		Best:   30,
		Player: game.EntityView{Sprite: game.SpriteSeal, X: 500, Y: 300, Alpha: 1, Scale: 1},
	}
	r.Draw(base)
	text := screenText(scr)
	for _, want := range []string{"PAUSED", "[>]", "REC 0:30", "sound off", "kelp"} {
		if !strings.Contains(text, want) {
			t.Errorf("paused frame lacks %q", want)
		}
	}

	over := base
	over.Paused = false
	over.State = game.StateGameOver
	over.GameOverTimer = 1
	over.NewBest = true
	over.Result = game.Result{Survival: 62, Bonus: 2, Time: 64, Score: 6}
	r.Draw(over)
	text = screenText(scr)
	for _, want := range []string{"GAME OVER", "survived 1:02", "total 1:04", "NEW RECORD", "orca-hunter", "1:15"} {
		if !strings.Contains(text, want) {
			t.Errorf("game-over frame lacks %q", want)
		}
	}
}

func TestInputHoldsKeys(t *testing.T) {
	in := NewInput()
	t0 := time.Unix(100, 0)

	if a := in.Key(tcell.KeyLeft, 0, t0); a != ActionPress {
		t.Fatalf("arrow key action = %v, want ActionPress", a)
	}
	in.Key(tcell.KeyRune, 'w', t0.Add(100*time.Millisecond))
	if k := in.Held(t0.Add(200 * time.Millisecond)); k != game.KeyLeft|game.KeyW {
		t.Fatalf("Held = %08b, want left and w", k)
	}
	if k := in.Held(t0.Add(350 * time.Millisecond)); k != game.KeyW {
		t.Fatalf("Held after left expired = %08b, want w", k)
	}
	if k := in.Held(t0.Add(time.Second)); k != 0 {
		t.Fatalf("Held = %08b, want nothing", k)
	}
}

func TestInputActions(t *testing.T) {
	in := NewInput()
	now := time.Now()
	tests := []struct {
		key  tcell.Key
		r    rune
		want Action
	}{
		{tcell.KeyEscape, 0, ActionQuit},
		{tcell.KeyCtrlC, 0, ActionQuit},
		{tcell.KeyRune, 'q', ActionQuit},
		{tcell.KeyRune, ' ', ActionPause},
		{tcell.KeyRune, 'm', ActionMute},
		{tcell.KeyEnter, 0, ActionPress},
		{tcell.KeyRune, 'x', ActionPress},
		{tcell.KeyTab, 0, ActionNone},
	}
	for _, tt := range tests {
		if got := in.Key(tt.key, tt.r, now); got != tt.want {
			t.Errorf("Key(%v, %q) = %v, want %v", tt.key, tt.r, got, tt.want)
		}
	}
}

func TestInputMouseEdges(t *testing.T) {
	in := NewInput()
	seq := []struct {
		buttons tcell.ButtonMask
		want    MouseAction
	}{
		{tcell.ButtonNone, MouseNone},
		{tcell.Button1, MouseDown},
		{tcell.Button1, MouseMove},
		{tcell.ButtonNone, MouseUp},
		{tcell.ButtonNone, MouseNone},
	}
	for i, s := range seq {
		if got := in.Mouse(s.buttons); got != s.want {
			t.Fatalf("event %d: Mouse = %v, want %v", i, got, s.want)
		}
	}
}
