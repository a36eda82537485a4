// Package replay records a session's inputs tick by tick and plays them back
// headlessly. Given the same seed and viewport the simulation is deterministic,
// so a replay reproduces every entity position of the original run.
package replay

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/vmihailenco/msgpack/v5"

	"sealdive/game"
)

// Version is written in every header. Load rejects other versions.
const Version = 1

// Op is an input command kind.
type Op uint8

const (
	OpPress Op = iota + 1
	OpPointerDown
	OpPointerMove
	OpPointerUp
	OpKeys
	OpJoystick
	OpTogglePause
	OpResize
)

// Cmd is one input applied between ticks. Fields unused by Op stay zero.
type Cmd struct {
	Op   Op        `msgpack:"o"`
	X    float64   `msgpack:"x,omitempty"`
	Y    float64   `msgpack:"y,omitempty"`
	Keys game.Keys `msgpack:"k,omitempty"`
}

// Frame is one tick: the commands applied before it, then its step.
// DT is zero for a trailing frame of commands with no tick after them.
type Frame struct {
	DT   float64 `msgpack:"d"`
	Cmds []Cmd   `msgpack:"c,omitempty"`
}

// Header starts every recording.
type Header struct {
	Version int     `msgpack:"v"`
	Seed    uint64  `msgpack:"s"`
	Width   float64 `msgpack:"w"`
	Height  float64 `msgpack:"h"`
}

// Apply performs c on g.
func Apply(g *game.Game, c Cmd) {
	switch c.Op {
	case OpPress:
		g.Press()
	case OpPointerDown:
		g.PointerDown(c.X, c.Y)
	case OpPointerMove:
		g.PointerMove(c.X, c.Y)
	case OpPointerUp:
		g.PointerUp()
	case OpKeys:
		g.SetKeys(c.Keys)
	case OpJoystick:
		g.SetJoystick(c.X, c.Y)
	case OpTogglePause:
		g.TogglePause()
	case OpResize:
		g.Resize(c.X, c.Y)
	}
}

// Recorder streams a header and then one frame per tick.
type Recorder struct {
	mu      sync.Mutex
	enc     *msgpack.Encoder
	closer  io.Closer
	pending []Cmd
	frames  int
	err     error
}

// NewRecorder writes h to w. Close closes w if it is an io.Closer.
func NewRecorder(w io.Writer, h Header) (*Recorder, error) {
	h.Version = Version
	r := &Recorder{enc: msgpack.NewEncoder(w)}
	if c, ok := w.(io.Closer); ok {
		r.closer = c
	}
	if err := r.enc.Encode(&h); err != nil {
		return nil, fmt.Errorf("write header: %w", err)
	}
	return r, nil
}

// Create records into a new file at path.
func Create(path string, h Header) (*Recorder, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	r, err := NewRecorder(f, h)
	if err != nil {
		f.Close()
		return nil, err
	}
	return r, nil
}

// Command queues c for the next frame.
func (r *Recorder) Command(c Cmd) {
	r.mu.Lock()
	r.pending = append(r.pending, c)
	r.mu.Unlock()
}

// Record writes the frame for one tick of dt. After the first write error it
// does nothing; Close reports the error.
func (r *Recorder) Record(dt float64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.flush(dt)
}

func (r *Recorder) flush(dt float64) {
	if r.err != nil {
		return
	}
	if err := r.enc.Encode(&Frame{DT: dt, Cmds: r.pending}); err != nil {
		r.err = fmt.Errorf("write frame %d: %w", r.frames, err)
		return
	}
	r.pending = r.pending[:0]
	r.frames++
}

// Frames is the number of frames written.
func (r *Recorder) Frames() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.frames
}

// Close writes any trailing commands and closes the output.
func (r *Recorder) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.pending) > 0 {
		r.flush(0)
	}
	if r.closer != nil {
		if err := r.closer.Close(); err != nil && r.err == nil {
			r.err = err
		}
	}
	return r.err
}

// Load reads a whole recording.
func Load(rd io.Reader) (Header, []Frame, error) {
	dec := msgpack.NewDecoder(rd)
	var h Header
	if err := dec.Decode(&h); err != nil {
		return Header{}, nil, fmt.Errorf("read header: %w", err)
	}
	if h.Version != Version {
		return Header{}, nil, fmt.Errorf("recording version %d, want %d", h.Version, Version)
	}
	var frames []Frame
	for {
		var f Frame
		err := dec.Decode(&f)
		if errors.Is(err, io.EOF) {
			return h, frames, nil
		}
		if err != nil {
			return Header{}, nil, fmt.Errorf("read frame %d: %w", len(frames), err)
		}
		frames = append(frames, f)
	}
}

// Replay rebuilds the recorded session. opts.Rand is replaced by the recorded seed;
// other collaborators are used as given.
func Replay(rd io.Reader, opts game.Options) (*game.Game, error) {
	h, frames, err := Load(rd)
	if err != nil {
		return nil, err
	}
	opts.Rand = game.NewRand(h.Seed)
	g := game.New(h.Width, h.Height, opts)
	for _, f := range frames {
		for _, c := range f.Cmds {
			Apply(g, c)
		}
		if f.DT > 0 {
			g.Update(f.DT)
		}
	}
	return g, nil
}
