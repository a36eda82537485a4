package render

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"sealdive/game"
)

// HoldFor is how long a movement key counts as held after its last press or
// auto-repeat. Terminals report no key release.
const HoldFor = 300 * time.Millisecond

// Action is what a non-movement key asks of the front end.
type Action int

const (
	ActionNone Action = iota
	ActionQuit
	ActionPress // start or restart
	ActionPause
	ActionMute
)

// MouseAction is a pointer edge derived from button state changes.
type MouseAction int

const (
	MouseNone MouseAction = iota
	MouseDown
	MouseMove
	MouseUp
)

// Input turns terminal key and mouse events into game input.
type Input struct {
	held    map[game.Keys]time.Time
	pressed bool
}

func NewInput() *Input {
	return &Input{held: make(map[game.Keys]time.Time)}
}

func movementKey(key tcell.Key, r rune) game.Keys {
	switch key {
	case tcell.KeyUp:
		return game.KeyUp
	case tcell.KeyDown:
		return game.KeyDown
	case tcell.KeyLeft:
		return game.KeyLeft
	case tcell.KeyRight:
		return game.KeyRight
	case tcell.KeyRune:
		switch r {
		case 'w', 'W':
			return game.KeyW
		case 'a', 'A':
			return game.KeyA
		case 's', 'S':
			return game.KeyS
		case 'd', 'D':
			return game.KeyD
		}
	}
	return 0
}

// Key records a key press at now. Movement keys are held for HoldFor and also
// report ActionPress so they can start a round from the title screen.
func (in *Input) Key(key tcell.Key, r rune, now time.Time) Action {
	if k := movementKey(key, r); k != 0 {
		in.held[k] = now
		return ActionPress
	}
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return ActionQuit
	case tcell.KeyEnter:
		return ActionPress
	case tcell.KeyRune:
		switch r {
		case 'q', 'Q':
			return ActionQuit
		case ' ', 'p', 'P':
			return ActionPause
		case 'm', 'M':
			return ActionMute
		}
		return ActionPress
	}
	return ActionNone
}

// Held is the set of movement keys still within their hold window at now.
func (in *Input) Held(now time.Time) game.Keys {
	var k game.Keys
	for key, at := range in.held {
		if now.Sub(at) < HoldFor {
			k |= key
		} else {
			delete(in.held, key)
		}
	}
	return k
}

// Mouse classifies a mouse event by comparing the primary button with the last event.
func (in *Input) Mouse(buttons tcell.ButtonMask) MouseAction {
	down := buttons&tcell.Button1 != 0
	defer func() { in.pressed = down }()
	switch {
	case down && !in.pressed:
		return MouseDown
	case !down && in.pressed:
		return MouseUp
	case down:
		return MouseMove
	}
	return MouseNone
}
