package game

import (
	"math"
	"testing"

	"pgregory.net/rapid"
)

const boundaryTicks = 10_000

func TestRoamersStayInBounds(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		w := NewWorld(
			rapid.Float64Range(200, 2400).Draw(t, "width"),
			rapid.Float64Range(200, 1600).Draw(t, "height"),
		)
		rng := NewRand(rapid.Uint64().Draw(t, "seed"))
		sp := NewSpawner(rng)

		roamers := []*Predator{sp.OneShark(w), sp.OneOrca(w, 0, 0)}
		crab := sp.OneCrab(w)
		crabInset := CrabClampInset * w.Scale

		dt := TickStep.Seconds()
		for i := range boundaryTicks {
			for _, p := range roamers {
				p.Update(w, dt, rng)
				if p.X < 0 || p.X > w.Width || p.Y < FishClampInset || p.Y > w.Height-FishClampInset {
					t.Fatalf("tick %d: %s at (%v, %v) outside %vx%v", i, p.Species.Name, p.X, p.Y, w.Width, w.Height)
				}
			}
			crab.Update(w, dt, rng)
			if crab.X < crabInset || crab.X > w.Width-crabInset || crab.Y < crabInset || crab.Y > w.Height-crabInset {
				t.Fatalf("tick %d: crab at (%v, %v) outside inset bounds", i, crab.X, crab.Y)
			}
		}
	})
}

func TestPlayerStaysInsideMargin(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		w := NewWorld(
			rapid.Float64Range(200, 2400).Draw(t, "width"),
			rapid.Float64Range(200, 1600).Draw(t, "height"),
		)
		rng := NewRand(rapid.Uint64().Draw(t, "seed"))
		sz := FrameSizer{}
		p := NewPlayer(w, rng)

		dt := TickStep.Seconds()
		for i := range boundaryTicks {
			switch rng.IntN(4) {
			case 0:
				p.Grab()
			case 1:
				p.Release()
			}
			if p.Grabbed() {
				p.MoveTo(w, sz, rng.Float64()*w.Width*3-w.Width, rng.Float64()*w.Height*3-w.Height)
			} else {
				step := KeySpeed * w.Scale * dt
				p.MoveBy(w, sz, (rng.Float64()*2-1)*step, (rng.Float64()*2-1)*step)
			}
			p.Update(w, sz, dt, rng)

			m := p.Margin(w, sz)
			if p.X < m || p.X > w.Width-m || p.Y < m || p.Y > w.Height-m {
				t.Fatalf("tick %d: seal at (%v, %v) outside margin %v of %vx%v", i, p.X, p.Y, m, w.Width, w.Height)
			}
		}
	})
}

func TestSteeringTurnsAwayFromWall(t *testing.T) {
	w := NewWorld(1600, 900)
	rng := NewRand(3)
	s := newSteering(&Shark, 10, 450, rng)
	s.Heading, s.Target = math.Pi, math.Pi
	s.turnInterval = math.Inf(1)

	dt := TickStep.Seconds()
	for range 240 {
		s.Update(&Shark, w, dt, rng)
	}
	if !s.FacingRight() {
		t.Fatalf("heading = %v after 4s pinned to the left wall, want facing right", s.Heading)
	}
}

func TestSteeringRetargetsHorizontally(t *testing.T) {
	rng := NewRand(11)
	for range 1000 {
		h := pickHeading(WanderHorizontal, rng)
		off := math.Min(math.Abs(AngleDifference(h, 0)), math.Abs(AngleDifference(h, math.Pi)))
		if off > 0.25+1e-12 {
			t.Fatalf("pickHeading = %v, tilted %v from horizontal", h, off)
		}
	}
}

func TestBiteClearsAfterDuration(t *testing.T) {
	p := NewShark(100, 100, NewRand(1))
	p.StartBite()
	if !p.Biting() {
		t.Fatal("StartBite did not set biting")
	}
	w := NewWorld(900, 900)
	rng := NewRand(1)
	dt := TickStep.Seconds()
	for range 41 { // just under BiteDuration
		p.Update(w, dt, rng)
	}
	if !p.Biting() {
		t.Fatal("bite cleared before BiteDuration elapsed")
	}
	for range 3 {
		p.Update(w, dt, rng)
	}
	if p.Biting() {
		t.Fatalf("bite still on after %vs", p.Bite.Elapsed)
	}
}

func TestBoostCapsPerSpecies(t *testing.T) {
	rng := NewRand(5)
	shark := NewShark(0, 0, rng)
	orca := NewOrca(0, 0, rng)
	for range 50 {
		shark.Boost(SpeedBoostRatio)
		orca.Boost(SpeedBoostRatio)
	}
	if shark.Speed != SharkSpeedCap {
		t.Fatalf("shark speed = %v, want cap %v", shark.Speed, SharkSpeedCap)
	}
	if orca.Speed != OrcaSpeedCap {
		t.Fatalf("orca speed = %v, want cap %v", orca.Speed, OrcaSpeedCap)
	}
}

func TestRepelMarginScaling(t *testing.T) {
	w := NewWorld(900, 450) // DeviceScale 0.5
	dt := TickStep.Seconds()

	crab := Steering{X: 60, Y: 225, Heading: math.Pi, Target: math.Pi}
	crab.repel(&Crab, w, dt)
	if crab.Target == math.Pi {
		t.Fatalf("crab 60 from the left wall was not pushed: target = %v", crab.Target)
	}

	// 100 units is outside a shark's margin once it is scaled down to 70.
	shark := Steering{X: 100, Y: 225, Heading: math.Pi, Target: math.Pi}
	shark.repel(&Shark, w, dt)
	if shark.Target != math.Pi {
		t.Fatalf("shark outside its scaled margin was pushed: target = %v", shark.Target)
	}
}
