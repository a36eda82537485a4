package game

//go:generate go tool mockgen -destination=./mocks/collab_mock.go -package=mocks . Cues,Effects,Environment,BestStore,Scoreboard

// Cue is a named, fire-and-forget sound.
type Cue string

const (
	CueGrab     Cue = "grab"
	CueHit      Cue = "hit"
	CueGameOver Cue = "gameover"
	CueLevelUp  Cue = "levelup"
)

// Cues plays sounds. Implementations must not block the caller.
type Cues interface {
	Play(c Cue)
}

// Effects draws cosmetic bursts. The simulation never reads anything back.
type Effects interface {
	DeathBurst(x, y float64)
}

// Environment is ambient scenery ticked first in every update, such as rising bubbles.
type Environment interface {
	Update(w World, dt float64)
}

// BestStore persists the personal best time.
type BestStore interface {
	LoadBest() (float64, error)
	SaveBest(t float64) error
}

// Result is a finished round.
type Result struct {
	Survival float64 // seconds alive
	Bonus    int     // seconds awarded for crabs
	Time     float64 // Survival + Bonus
	Score    int     // crabs eaten
}

// Scoreboard receives each finished round. Submit must return quickly; network work
// belongs on the implementation's own goroutine.
type Scoreboard interface {
	Submit(r Result)
}

type nopCues struct{}

func (nopCues) Play(Cue) {}

type nopEffects struct{}

func (nopEffects) DeathBurst(float64, float64) {}

type nopEnvironment struct{}

func (nopEnvironment) Update(World, float64) {}

type nopBest struct{}

func (nopBest) LoadBest() (float64, error) { return 0, nil }
func (nopBest) SaveBest(float64) error     { return nil }

type nopScoreboard struct{}

func (nopScoreboard) Submit(Result) {}
