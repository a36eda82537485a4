package audio

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"

	"sealdive/game"
)

// Synth builds a fresh streamer for one cue. Unknown cues yield nil.
func Synth(c game.Cue, rate beep.SampleRate) beep.Streamer {
	switch c {
	case game.CueGrab:
		// short bubbly pop
		return Sweep(WaveSine, rate, 320, 580, 70*time.Millisecond, 0.14, 0.001, 160*time.Millisecond)

	case game.CueHit:
		thud, err := generators.SineTone(rate, 140)
		if err != nil {
			thud = Sweep(WaveSine, rate, 140, 140, time.Millisecond, 1, 1, 250*time.Millisecond)
		}
		return beep.Mix(
			newVolume(Fade(thud, rate, 250*time.Millisecond), 0.3),
			Sweep(WaveNoise, rate, 1, 1, time.Millisecond, 0.2, 0.001, 120*time.Millisecond),
		)

	case game.CueGameOver:
		// descending bwomp over a low thud
		return beep.Mix(
			Sweep(WaveSaw, rate, 380, 75, 1100*time.Millisecond, 0.22, 0.001, 1100*time.Millisecond),
			Sweep(WaveSine, rate, 90, 40, 400*time.Millisecond, 0.3, 0.001, 400*time.Millisecond),
		)

	case game.CueLevelUp:
		// rising blip
		return Sweep(WaveSquare, rate, 220, 440, 120*time.Millisecond, 0.08, 0.001, 180*time.Millisecond)
	}
	return nil
}
