package audio

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// WaveType selects an oscillator shape.
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// sweep is an oscillator whose frequency and gain both ramp exponentially,
// the way a browser oscillator does with exponentialRampToValueAtTime.
type sweep struct {
	wave WaveType
	rate beep.SampleRate

	freqFrom, freqTo float64
	freqSamples      int // samples over which frequency ramps, then holds

	gainFrom, gainTo float64
	total            int

	phase float64
	pos   int
	noise *rand.Rand
}

// Sweep returns a streamer that plays for d, ramping frequency from f0 to f1 over
// ramp and gain from g0 to g1 over the whole duration. Gains must be positive.
func Sweep(wave WaveType, rate beep.SampleRate, f0, f1 float64, ramp time.Duration, g0, g1 float64, d time.Duration) beep.Streamer {
	return &sweep{
		wave:        wave,
		rate:        rate,
		freqFrom:    f0,
		freqTo:      f1,
		freqSamples: max(1, rate.N(ramp)),
		gainFrom:    g0,
		gainTo:      g1,
		total:       rate.N(d),
		noise:       rand.New(rand.NewPCG(uint64(f0), uint64(f1))),
	}
}

// expRamp interpolates exponentially from a to b at fraction t in [0, 1].
func expRamp(a, b, t float64) float64 {
	if t >= 1 {
		return b
	}
	return a * math.Pow(b/a, t)
}

func (s *sweep) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if s.pos >= s.total {
			return i, i > 0
		}
		freq := expRamp(s.freqFrom, s.freqTo, float64(s.pos)/float64(s.freqSamples))
		gain := expRamp(s.gainFrom, s.gainTo, float64(s.pos)/float64(s.total))

		var v float64
		switch s.wave {
		case WaveSine:
			v = math.Sin(2 * math.Pi * s.phase)
		case WaveSquare:
			v = 1
			if s.phase >= 0.5 {
				v = -1
			}
		case WaveSaw:
			v = 2 * (s.phase - 0.5)
		case WaveNoise:
			v = s.noise.Float64()*2 - 1
		}
		v *= gain
		samples[i][0] = v
		samples[i][1] = v

		s.phase += freq / float64(s.rate)
		s.phase -= math.Floor(s.phase)
		s.pos++
	}
	return len(samples), true
}

func (s *sweep) Err() error { return nil }

// fade multiplies a stream by a linear decay to silence over d.
type fade struct {
	streamer beep.Streamer
	total    int
	pos      int
}

func Fade(s beep.Streamer, rate beep.SampleRate, d time.Duration) beep.Streamer {
	return &fade{streamer: beep.Take(rate.N(d), s), total: max(1, rate.N(d))}
}

func (f *fade) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = f.streamer.Stream(samples)
	for i := range n {
		vol := 1 - float64(f.pos)/float64(f.total)
		samples[i][0] *= vol
		samples[i][1] *= vol
		f.pos++
	}
	return n, ok
}

func (f *fade) Err() error { return f.streamer.Err() }

// newVolume scales a stream linearly. effects.Volume works in log space, so
// zero has to be expressed as Silent.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}
