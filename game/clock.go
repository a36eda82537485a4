package game

import (
	"context"
	"time"
)

// Clock is a fixed-timestep accumulator. Wall time goes in, whole ticks come out.
type Clock struct {
	acc time.Duration
}

// Advance adds elapsed wall time, clamped to MaxFrameDelta, and returns how many
// TickStep ticks are now due. The remainder carries into the next call.
func (c *Clock) Advance(elapsed time.Duration) int {
	if elapsed < 0 {
		elapsed = 0
	}
	c.acc += min(elapsed, MaxFrameDelta)
	n := int(c.acc / TickStep)
	c.acc -= time.Duration(n) * TickStep
	return n
}

// Pending is the time accumulated toward the next tick.
func (c *Clock) Pending() time.Duration { return c.acc }

func (c *Clock) Reset() { c.acc = 0 }

// Loop is what a Scheduler drives: fixed ticks, one render per frame.
type Loop interface {
	Update(dt float64)
	Render()
	Paused() bool
}

// Scheduler turns frame callbacks into simulation ticks. Everything it calls runs on
// the goroutine that calls Frame or Run, so the Loop needs no locking.
type Scheduler struct {
	loop    Loop
	clock   Clock
	last    time.Time
	running bool
	held    bool
	ticks   uint64

	inbox chan func()
	done  chan struct{}
}

func NewScheduler(loop Loop) *Scheduler {
	return &Scheduler{
		loop:  loop,
		inbox: make(chan func(), 64),
		done:  make(chan struct{}),
	}
}

// Start arms the scheduler. The first frame after Start measures from now.
func (s *Scheduler) Start(now time.Time) {
	s.running = true
	s.last = now
	s.clock.Reset()
}

// Stop disarms the scheduler; later frames do nothing.
func (s *Scheduler) Stop() { s.running = false }

// Pause holds the clock independently of the loop's own pause flag.
func (s *Scheduler) Pause() { s.held = true }

// Resume releases a Pause.
func (s *Scheduler) Resume() { s.held = false }

func (s *Scheduler) Running() bool { return s.running }

// Ticks is the number of simulation ticks run since construction.
func (s *Scheduler) Ticks() uint64 { return s.ticks }

// Frame is one animation-frame callback: drain due ticks unless paused, then render once.
// It returns the number of ticks run.
func (s *Scheduler) Frame(now time.Time) int {
	if !s.running {
		return 0
	}
	elapsed := now.Sub(s.last)
	s.last = now

	n := 0
	if !s.held && !s.loop.Paused() {
		n = s.clock.Advance(elapsed)
		dt := TickStep.Seconds()
		for range n {
			s.loop.Update(dt)
		}
		s.ticks += uint64(n)
	}
	s.loop.Render()
	return n
}

// Post queues fn to run on the scheduler goroutine between frames. It is how input
// reaches the simulation from other goroutines. Post is a no-op once Run has returned.
func (s *Scheduler) Post(fn func()) {
	select {
	case s.inbox <- fn:
	case <-s.done:
	}
}

// Run calls Frame every interval until ctx is done, running posted work in between.
func (s *Scheduler) Run(ctx context.Context, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	defer close(s.done)

	s.Start(time.Now())
	defer s.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case fn := <-s.inbox:
			fn()
		case now := <-ticker.C:
			s.Frame(now)
		}
	}
}
