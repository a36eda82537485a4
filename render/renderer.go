package render

import (
	"fmt"
	"math"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"sealdive/game"
)

// KeyHintTime is how long into a round the controls hint stays up.
const KeyHintTime = 5.0

// Row is one leaderboard line shown on the game-over screen.
type Row struct {
	Nickname string
	Best     float64
}

// Renderer draws snapshots onto a terminal screen.
type Renderer struct {
	screen tcell.Screen
	scene  *Scene

	mu    sync.Mutex
	board []Row
	muted bool
	note  string
}

// NewRenderer draws onto screen. scene may be nil.
func NewRenderer(screen tcell.Screen, scene *Scene) *Renderer {
	return &Renderer{screen: screen, scene: scene}
}

// Viewport is the current cell grid.
func (r *Renderer) Viewport() Viewport {
	cols, rows := r.screen.Size()
	return Viewport{Cols: cols, Rows: rows}
}

// SetBoard replaces the leaderboard rows.
func (r *Renderer) SetBoard(rows []Row) {
	r.mu.Lock()
	r.board = append(r.board[:0], rows...)
	r.mu.Unlock()
}

// SetMuted toggles the sound-off marker.
func (r *Renderer) SetMuted(m bool) {
	r.mu.Lock()
	r.muted = m
	r.mu.Unlock()
}

// SetNote shows a one-line status message under the HUD, e.g. the player's nickname.
func (r *Renderer) SetNote(s string) {
	r.mu.Lock()
	r.note = s
	r.mu.Unlock()
}

// Draw paints one frame and shows it.
func (r *Renderer) Draw(s game.Snapshot) {
	vp := r.Viewport()
	r.screen.Clear()
	c := canvas{screen: r.screen, vp: vp}

	c.water()
	if r.scene != nil {
		c.scene(r.scene.view())
	}
	for _, e := range s.Crabs {
		c.entity(e, crabColors[e.Variety%len(crabColors)], false)
	}
	for _, e := range s.Predators {
		fg := colorShark
		if e.Sprite == game.SpriteOrca {
			fg = colorOrca
		}
		if e.Biting {
			fg = colorBite
		}
		c.entity(e, fg, false)
	}
	if s.State != game.StateStart && s.Player.Alpha > 0.3 {
		c.entity(s.Player, colorSeal, s.PlayerState >= game.PlayerDying)
	}
	for _, f := range s.Floats {
		col, row := vp.ToCell(f.X, f.Y)
		c.text(col-1, row, "+1", colorGold)
	}

	r.mu.Lock()
	board, muted, note := r.board, r.muted, r.note
	r.mu.Unlock()

	c.hud(s, muted, note)
	switch {
	case s.State == game.StateStart:
		c.title(s)
	case s.Paused:
		c.paused()
	case s.State == game.StateGameOver:
		c.gameOver(s, board)
	}
	r.screen.Show()
}

type canvas struct {
	screen tcell.Screen
	vp     Viewport
}

func (c canvas) style(row int, fg tcell.Color) tcell.Style {
	return tcell.StyleDefault.Background(waterColor(row, c.vp.Rows)).Foreground(fg)
}

func (c canvas) water() {
	for y := range c.vp.Rows {
		st := c.style(y, colorText)
		for x := range c.vp.Cols {
			c.screen.SetContent(x, y, ' ', nil, st)
		}
	}
}

func (c canvas) put(col, row int, ch rune, st tcell.Style) {
	if c.vp.contains(col, row) {
		c.screen.SetContent(col, row, ch, nil, st)
	}
}

// text writes s starting at (col, row), clipping at the edges.
func (c canvas) text(col, row int, s string, fg tcell.Color) {
	c.styled(col, row, s, c.style(row, fg))
}

func (c canvas) styled(col, row int, s string, st tcell.Style) {
	for _, ch := range s {
		c.put(col, row, ch, st)
		col += max(1, runewidth.RuneWidth(ch))
	}
}

func (c canvas) centered(row int, s string, st tcell.Style) {
	c.styled((c.vp.Cols-runewidth.StringWidth(s))/2, row, s, st)
}

func (c canvas) entity(e game.EntityView, fg tcell.Color, dead bool) {
	s := glyphFor(e, dead).text(e.FacingRight)
	col, row := c.vp.ToCell(e.X, e.Y)
	c.text(col-runewidth.StringWidth(s)/2, row, s, fg)
}

func (c canvas) scene(v sceneView) {
	for _, w := range v.seaweed {
		fg := colorWeed
		if w.Dark {
			fg = colorWeed2
		}
		segments := max(1, int(w.Height/CellHeight))
		for k := range segments {
			sway := math.Sin(w.Phase+float64(k)*0.6) * float64(k) * 3
			col, _ := c.vp.ToCell(w.X+sway, 0)
			ch := ')'
			if sway < 0 {
				ch = '('
			}
			row := c.vp.Rows - 1 - k
			c.put(col, row, ch, c.style(row, fg))
		}
	}
	for _, b := range v.bubbles {
		col, row := c.vp.ToCell(b.X, b.Y)
		ch := '.'
		switch {
		case b.R >= 11:
			ch = 'O'
		case b.R >= 6:
			ch = 'o'
		}
		fg := colorFoam
		if b.Opacity < 0.2 {
			fg = colorDim
		}
		c.put(col, row, ch, c.style(row, fg))
	}
	for _, p := range v.particles {
		col, row := c.vp.ToCell(p.X, p.Y)
		ch := '+'
		if p.Size >= 6 && p.Life > 0.5 {
			ch = '*'
		}
		c.put(col, row, ch, c.style(row, burstPalette[p.Color]))
	}
}

func (c canvas) hud(s game.Snapshot, muted bool, note string) {
	if s.State == game.StatePlaying || s.State == game.StateDying {
		button := "[||]"
		if s.Paused {
			button = "[>]"
		}
		col, row := c.vp.ToCell(game.PauseButton.X, game.PauseButton.Y)
		c.styled(col, row, button, c.style(row, colorText).Bold(true))

		right := fmt.Sprintf("crabs %d  %s", s.Score, FormatTime(s.Survival))
		c.text(c.vp.Cols-runewidth.StringWidth(right)-1, 0, right, colorText)
	}
	left := 5
	if s.Best > 0 {
		rec := "REC " + FormatTime(s.Best)
		c.text(left, 0, rec, colorGold)
		left += len(rec) + 2
	}
	if muted {
		c.text(left, 0, "sound off", colorDim)
		left += len("sound off") + 2
	}
	if note != "" {
		c.text(left, 0, note, colorDim)
	}
	if s.State == game.StatePlaying && !s.Paused && (s.Survival < KeyHintTime || s.Keys.Any(game.Arrows)) {
		c.centered(c.vp.Rows-1, "arrows/WASD swim | drag the seal | space pause | m mute | q quit",
			c.style(c.vp.Rows-1, colorDim))
	}
}

func (c canvas) title(s game.Snapshot) {
	row := c.vp.Rows / 3
	st := c.style(row, colorText).Bold(true)
	if math.Min(1, s.StartTimer*2) < 0.5 {
		st = c.style(row, colorDim)
	}
	c.centered(row, "S E A L   D I V E", st)
	c.centered(row+2, "eat crabs, dodge sharks and orcas", c.style(row+2, colorFoam))
	if s.Best > 0 {
		c.centered(row+3, "record "+FormatTime(s.Best), c.style(row+3, colorGold))
	}
	if s.StartTimer > 1 {
		c.centered(row+5, "press any key or click to dive", c.style(row+5, colorText))
	}
}

func (c canvas) paused() {
	row := c.vp.Rows / 2
	c.centered(row-1, "PAUSED", c.style(row-1, colorText).Bold(true))
	c.centered(row+1, "space or [||] to resume", c.style(row+1, colorDim))
}

func (c canvas) gameOver(s game.Snapshot, board []Row) {
	row := c.vp.Rows / 4
	c.centered(row, "GAME OVER", c.style(row, colorBite).Bold(true))
	t := s.GameOverTimer
	if t > 0.4 {
		r := s.Result
		c.centered(row+2, fmt.Sprintf("survived %s   crabs %d   bonus +%ds", FormatTime(r.Survival), r.Score, r.Bonus),
			c.style(row+2, colorFoam))
		c.centered(row+3, "total "+FormatTime(r.Time), c.style(row+3, colorText).Bold(true))
		if s.NewBest {
			c.centered(row+4, "NEW RECORD", c.style(row+4, colorGold).Bold(true))
		}
	}
	if t > game.RestartDelay && math.Sin(t*3.5) > 0 {
		c.centered(row+6, "press any key to dive again", c.style(row+6, colorText))
	}
	for i, b := range board {
		line := fmt.Sprintf("%2d. %-16s %s", i+1, b.Nickname, FormatTime(b.Best))
		y := row + 8 + i
		if y >= c.vp.Rows-1 {
			break
		}
		c.centered(y, line, c.style(y, colorDim))
	}
}

// FormatTime renders seconds as M:SS.
func FormatTime(sec float64) string {
	total := int(math.Max(0, sec))
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}
