package game

import (
	"context"
	"testing"
	"time"
)

func TestClockAdvance(t *testing.T) {
	tests := []struct {
		name    string
		elapsed []time.Duration
		want    []int
	}{
		{"one tick", []time.Duration{TickStep}, []int{1}},
		{"carries remainder", []time.Duration{TickStep / 2, TickStep / 2}, []int{0, 1}},
		{"several ticks", []time.Duration{3 * TickStep}, []int{3}},
		{"stall is clamped", []time.Duration{5 * time.Second}, []int{int(MaxFrameDelta / TickStep)}},
		{"negative is ignored", []time.Duration{-time.Second, TickStep}, []int{0, 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var c Clock
			for i, e := range tt.elapsed {
				if got := c.Advance(e); got != tt.want[i] {
					t.Fatalf("Advance(%v) #%d = %d, want %d", e, i, got, tt.want[i])
				}
			}
		})
	}
}

type countingLoop struct {
	updates int
	renders int
	dt      float64
	paused  bool
}

func (l *countingLoop) Update(dt float64) { l.updates++; l.dt = dt }
func (l *countingLoop) Render()           { l.renders++ }
func (l *countingLoop) Paused() bool      { return l.paused }

func TestSchedulerFrame(t *testing.T) {
	l := &countingLoop{}
	s := NewScheduler(l)
	t0 := time.Unix(0, 0)

	if n := s.Frame(t0); n != 0 || l.renders != 0 {
		t.Fatal("Frame before Start did work")
	}

	s.Start(t0)
	s.Frame(t0.Add(2 * TickStep))
	if l.updates != 2 || l.renders != 1 {
		t.Fatalf("after one frame: %d updates %d renders, want 2 and 1", l.updates, l.renders)
	}
	if l.dt != TickStep.Seconds() {
		t.Fatalf("dt = %v, want %v", l.dt, TickStep.Seconds())
	}

	l.paused = true
	s.Frame(t0.Add(10 * TickStep))
	if l.updates != 2 || l.renders != 2 {
		t.Fatalf("paused frame: %d updates %d renders, want 2 and 2", l.updates, l.renders)
	}

	// The paused interval is not replayed on resume.
	l.paused = false
	s.Frame(t0.Add(11 * TickStep))
	if l.updates != 3 {
		t.Fatalf("resumed frame ran %d updates total, want 3", l.updates)
	}

	s.Pause()
	s.Frame(t0.Add(20 * TickStep))
	s.Resume()
	if l.updates != 3 {
		t.Fatalf("held scheduler ran updates: %d", l.updates)
	}
	if s.Ticks() != 3 {
		t.Fatalf("Ticks = %d, want 3", s.Ticks())
	}

	s.Stop()
	if n := s.Frame(t0.Add(30 * TickStep)); n != 0 {
		t.Fatalf("stopped scheduler ran %d ticks", n)
	}
}

func TestSchedulerRunPostsOnLoopGoroutine(t *testing.T) {
	l := &countingLoop{}
	s := NewScheduler(l)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- s.Run(ctx, time.Millisecond) }()

	ran := make(chan struct{})
	s.Post(func() {
		l.paused = true
		close(ran)
	})
	select {
	case <-ran:
	case <-time.After(time.Second):
		t.Fatal("posted func never ran")
	}

	cancel()
	if err := <-done; err != context.Canceled {
		t.Fatalf("Run returned %v, want context.Canceled", err)
	}
	s.Post(func() { t.Error("ran after Run returned") })
}
