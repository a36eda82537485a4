package game

import (
	"log/slog"
	"math"
)

// GameState is the round lifecycle: start → playing → dying → gameover → playing.
type GameState uint8

const (
	StateStart GameState = iota
	StatePlaying
	StateDying
	StateGameOver
)

func (s GameState) String() string {
	switch s {
	case StateStart:
		return "start"
	case StatePlaying:
		return "playing"
	case StateDying:
		return "dying"
	case StateGameOver:
		return "gameover"
	}
	return "unknown"
}

// Options wires the collaborators. Every field is optional.
type Options struct {
	Rand        Rand
	Sizer       Sizer
	Cues        Cues
	Effects     Effects
	Environment Environment
	Best        BestStore
	Scoreboard  Scoreboard
	Logger      *slog.Logger
}

// FloatScore is a "+1" annotation drifting up from an eaten crab.
type FloatScore struct {
	X, Y float64
	Life float64 // 1 → 0
}

// Game owns one session: the population, the player, scoring and the round lifecycle.
// It is not safe for concurrent use; drive it from a single goroutine (see Scheduler).
type Game struct {
	world World

	rng     Rand
	sizer   Sizer
	cues    Cues
	effects Effects
	env     Environment
	store   BestStore
	board   Scoreboard
	log     *slog.Logger

	spawner *Spawner
	diff    *Difficulty
	events  EventQueue

	state   GameState
	paused  bool
	epoch   uint64
	tick    uint64
	simTime float64

	startTimer    float64
	survival      float64
	gameOverTimer float64
	best          float64
	score         int
	result        Result
	newBest       bool

	sharks []*Predator
	orcas  []*Predator
	crabs  []*Collectible
	player *Player
	floats []FloatScore

	input Input
}

// New creates a game on the start screen for a width×height viewport. The creatures
// already swim behind the title; the best time is loaded once here.
func New(width, height float64, opts Options) *Game {
	g := &Game{
		world:   NewWorld(width, height),
		rng:     opts.Rand,
		sizer:   opts.Sizer,
		cues:    opts.Cues,
		effects: opts.Effects,
		env:     opts.Environment,
		store:   opts.Best,
		board:   opts.Scoreboard,
		log:     opts.Logger,
		diff:    NewDifficulty(),
		state:   StateStart,
	}
	if g.rng == nil {
		g.rng = NewRand(0)
	}
	if g.sizer == nil {
		g.sizer = FrameSizer{}
	}
	if g.cues == nil {
		g.cues = nopCues{}
	}
	if g.effects == nil {
		g.effects = nopEffects{}
	}
	if g.env == nil {
		g.env = nopEnvironment{}
	}
	if g.store == nil {
		g.store = nopBest{}
	}
	if g.board == nil {
		g.board = nopScoreboard{}
	}
	if g.log == nil {
		g.log = slog.New(slog.DiscardHandler)
	}
	g.spawner = NewSpawner(g.rng)

	best, err := g.store.LoadBest()
	if err != nil {
		g.log.Warn("load best time", "err", err)
		best = 0
	}
	g.best = best

	g.populate()
	return g
}

func (g *Game) populate() {
	g.sharks = g.spawner.Sharks(g.world, SharkCount)
	g.orcas = g.spawner.Orcas(g.world, OrcaCount)
	g.crabs = g.spawner.Crabs(g.world, CrabCount)
	g.player = NewPlayer(g.world, g.rng)
}

// Update advances the simulation by one tick of dt seconds.
func (g *Game) Update(dt float64) {
	g.tick++
	g.simTime += dt
	for _, ev := range g.events.Drain(g.simTime, g.epoch) {
		g.fire(ev)
	}

	g.env.Update(g.world, dt)
	for _, p := range g.sharks {
		p.Update(g.world, dt, g.rng)
	}
	for _, p := range g.orcas {
		p.Update(g.world, dt, g.rng)
	}
	for _, c := range g.crabs {
		c.Update(g.world, dt, g.rng)
	}

	switch g.state {
	case StateStart:
		g.startTimer += dt
		g.player.Update(g.world, g.sizer, dt, g.rng)

	case StatePlaying:
		g.survival += dt
		g.player.Update(g.world, g.sizer, dt, g.rng)
		if g.player.Grabbed() {
			g.player.MoveTo(g.world, g.sizer, g.input.PointerX, g.input.PointerY)
		}
		g.applyKeys(dt)

		pb := g.player.Bounds(g.world, g.sizer)
		g.checkCollisions(pb)
		g.checkCrabs(pb)
		g.updateFloats(dt)

		if g.state == StatePlaying {
			g.diff.Update(g.survival, g)
		}

	case StateDying:
		g.player.Update(g.world, g.sizer, dt, g.rng)
		g.updateFloats(dt)
		if g.player.State() == PlayerDead {
			g.finish()
		}

	case StateGameOver:
		g.gameOverTimer += dt
	}
}

func (g *Game) fire(ev Pending) {
	switch ev.Kind {
	case EventCrabRespawn:
		if g.state == StatePlaying {
			g.crabs = append(g.crabs, g.spawner.OneCrab(g.world))
		}
	}
}

// applyKeys moves the seal by held keys, or by the joystick when no key is held.
func (g *Game) applyKeys(dt float64) {
	dx, dy := g.input.Keys.Direction()
	if dx == 0 && dy == 0 {
		dx, dy = g.input.joystick()
	}
	if dx == 0 && dy == 0 {
		return
	}
	step := KeySpeed * g.world.Scale * dt
	g.player.MoveBy(g.world, g.sizer, dx*step, dy*step)
}

// checkCollisions tests sharks, then orcas, and stops at the first hit.
func (g *Game) checkCollisions(pb Rect) {
	for _, group := range [...][]*Predator{g.sharks, g.orcas} {
		for _, p := range group {
			if pb.Overlaps(p.Bounds(g.world, g.sizer)) {
				g.triggerDeath(p)
				return
			}
		}
	}
}

// checkCrabs eats every crab the seal touches this tick.
func (g *Game) checkCrabs(pb Rect) {
	kept := g.crabs[:0]
	for _, c := range g.crabs {
		if !c.Alive() || !pb.Overlaps(c.Bounds(g.world, g.sizer)) {
			kept = append(kept, c)
			continue
		}
		c.consume()
		g.score++
		g.floats = append(g.floats, FloatScore{X: c.X, Y: c.Y, Life: FloatScoreLife})
		g.cues.Play(CueGrab)
		g.events.Schedule(Pending{
			Due:   g.simTime + CrabRespawnDelay,
			Epoch: g.epoch,
			Kind:  EventCrabRespawn,
		})
	}
	clear(g.crabs[len(kept):])
	g.crabs = kept
}

// triggerDeath fires at most once per round: only a playing game with a live seal dies.
func (g *Game) triggerDeath(p *Predator) {
	if g.state != StatePlaying {
		return
	}
	g.player.Release()
	if !g.player.Kill() {
		return
	}
	g.state = StateDying
	p.StartBite()
	g.effects.DeathBurst(g.player.X, g.player.Y)
	g.cues.Play(CueHit)
	g.log.Info("seal caught", "by", p.Species.Name, "survival", g.survival, "score", g.score)
}

func (g *Game) updateFloats(dt float64) {
	kept := g.floats[:0]
	for _, f := range g.floats {
		f.Y -= FloatScoreRise * dt
		f.Life -= FloatScoreFade * dt
		if f.Life > 0 {
			kept = append(kept, f)
		}
	}
	g.floats = kept
}

// finish closes the round once the death animation is over: bonus seconds, best time,
// and the leaderboard submission all happen exactly once here.
func (g *Game) finish() {
	g.state = StateGameOver
	g.gameOverTimer = 0

	bonus := int(math.Round(float64(g.score) / BonusScoreDivisor))
	g.result = Result{
		Survival: g.survival,
		Bonus:    bonus,
		Time:     g.survival + float64(bonus),
		Score:    g.score,
	}
	g.cues.Play(CueGameOver)

	g.newBest = g.result.Time > g.best
	if g.newBest {
		g.best = g.result.Time
		if err := g.store.SaveBest(g.best); err != nil {
			g.log.Warn("save best time", "err", err)
		}
	}
	g.board.Submit(g.result)

	g.log.Info("round over",
		"survival", g.result.Survival,
		"bonus", g.result.Bonus,
		"time", g.result.Time,
		"score", g.result.Score,
		"best", g.best,
		"new_best", g.newBest,
	)
}

// ramp hooks for Difficulty.

func (g *Game) spawnShark() {
	g.sharks = append(g.sharks, g.spawner.OneShark(g.world))
}

func (g *Game) spawnOrca() {
	g.orcas = append(g.orcas, g.spawner.OneOrca(g.world, g.player.X, g.player.Y))
}

func (g *Game) boostPredators(ratio float64) {
	for _, p := range g.sharks {
		p.Boost(ratio)
	}
	for _, p := range g.orcas {
		p.Boost(ratio)
	}
}

func (g *Game) levelUp() {
	g.cues.Play(CueLevelUp)
}

// Start leaves the title screen. It does nothing in any other state.
func (g *Game) Start() {
	if g.state != StateStart {
		return
	}
	g.reset()
}

// Restart begins a new round from the game-over screen.
func (g *Game) Restart() {
	if g.state != StateGameOver {
		return
	}
	g.reset()
}

// reset replaces the whole session. Bumping the epoch makes every event still queued
// from the previous round inert.
func (g *Game) reset() {
	g.epoch++
	g.state = StatePlaying
	g.paused = false
	g.startTimer = 0
	g.survival = 0
	g.gameOverTimer = 0
	g.score = 0
	g.result = Result{}
	g.newBest = false
	g.floats = nil
	g.diff.Reset()
	g.populate()
	g.log.Info("round started", "round", g.epoch, "width", g.world.Width, "height", g.world.Height)
}

// Press is the discrete start/restart trigger. It reports whether a round began.
func (g *Game) Press() bool {
	switch g.state {
	case StateStart:
		g.Start()
		return true
	case StateGameOver:
		if g.gameOverTimer > RestartDelay {
			g.Restart()
			return true
		}
	}
	return false
}

// PointerDown handles a press at viewport coordinates (x, y).
func (g *Game) PointerDown(x, y float64) {
	switch g.state {
	case StateStart, StateGameOver:
		g.Press()
		return
	}
	if g.state == StatePlaying && g.HitsPauseButton(x, y) {
		g.TogglePause()
		return
	}
	if g.paused {
		return
	}
	if g.state == StatePlaying && g.HitsPlayer(x, y) && g.player.Grab() {
		g.cues.Play(CueGrab)
	}
	g.input.PointerX, g.input.PointerY = x, y
}

func (g *Game) PointerMove(x, y float64) {
	g.input.PointerX, g.input.PointerY = x, y
}

func (g *Game) PointerUp() {
	g.player.Release()
}

// SetKey records a key press or release. Presses are ignored while paused.
func (g *Game) SetKey(k Keys, down bool) {
	if !down {
		g.input.Keys &^= k
		return
	}
	if g.paused {
		return
	}
	g.input.Keys |= k
}

// SetKeys replaces the held set, for front ends that poll keys instead of reporting
// edges. Newly pressed keys are dropped while paused; releases always apply.
func (g *Game) SetKeys(k Keys) {
	if g.paused {
		k &= g.input.Keys
	}
	g.input.Keys = k
}

// SetJoystick sets the analog stick vector; (0, 0) releases it.
func (g *Game) SetJoystick(x, y float64) {
	g.input.JoyX, g.input.JoyY = x, y
}

// TogglePause flips the pause flag while playing. Pausing drops any grab so the seal
// does not jump to a stale pointer on resume.
func (g *Game) TogglePause() {
	if g.state != StatePlaying {
		return
	}
	g.paused = !g.paused
	if g.paused {
		g.player.Release()
	}
	g.log.Debug("pause", "paused", g.paused)
}

// Resize replaces the world bounds. Entities pull themselves back inside on their next update.
func (g *Game) Resize(width, height float64) {
	g.world = NewWorld(width, height)
}

// HitsPlayer reports whether a press at (x, y) would grab the seal.
func (g *Game) HitsPlayer(x, y float64) bool {
	return g.player.GrabBounds(g.world, g.sizer).Contains(x, y)
}

// HitsPauseButton reports whether (x, y) is on the pause toggle.
func (g *Game) HitsPauseButton(x, y float64) bool {
	return PauseButton.Contains(x, y)
}

func (g *Game) Paused() bool { return g.paused }

func (g *Game) State() GameState { return g.state }

func (g *Game) World() World { return g.world }

func (g *Game) Survival() float64 { return g.survival }

func (g *Game) Score() int { return g.score }

func (g *Game) Best() float64 { return g.best }

// Result is the last finished round. It is zero until the first game over.
func (g *Game) Result() Result { return g.result }
