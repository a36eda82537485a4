package game

import "time"

// Simulation clock
const (
	TickRate      = 60 // simulation ticks per second
	TickStep      = time.Second / TickRate
	MaxFrameDelta = 200 * time.Millisecond // longer stalls are dropped, not replayed
)

// World
const (
	// ReferenceShortSide is the viewport short side (world units) at which DeviceScale reaches 1.0.
	// Smaller viewports scale speeds, margins and sprites down proportionally.
	ReferenceShortSide = 900.0
	SpawnInset         = 80.0  // initial population keeps this far from every edge
	EdgeSpawnOffset    = 60.0  // reinforcements enter this far inside the chosen edge
	SafeSpawnRadius    = 220.0 // initial predators never spawn this close to the center
	SafeSpawnAttempts  = 64    // resample budget before falling back to the farthest candidate
)

// Predators
const (
	SharkCount     = 4
	SharkScale     = 0.55
	SharkSpeedCap  = 280.0
	OrcaCount      = 2
	OrcaScale      = 1.4
	OrcaSpeedCap   = 150.0
	BiteDuration   = 0.7 // seconds the bite pulse stays on
	FishClampInset = 20.0
)

// Player (seal)
const (
	SealScaleBase    = 2.2
	SealGrabScale    = 1.15 // target scale multiplier while grabbed
	SealScaleRate    = 8.0
	SealMarginFactor = 0.55 // margin = round(max(w,h) * factor)
	SealGrabPad      = 12.0
	SealHitFraction  = 0.70
	SealDriftSpeed   = 15.0
	SealDriftMin     = 2.5
	SealDriftJitter  = 1.5
	SealBobRate      = 1.8
	SealBobAmplitude = 3.0
	SealFrameRate    = 5.0
	SealFacingDelta  = 0.3 // horizontal travel per tick needed to flip facing
	SealDragFraction = 0.25
	SealDeathTime    = 0.55
	SealShakeRate    = 60.0
	SealShakePixels  = 3.0
	KeySpeed         = 300.0 // units/s for keyboard and joystick movement
)

// Collectibles (crabs)
const (
	CrabCount         = 4
	CrabVarieties     = 4
	CrabRespawnDelay  = 2.5 // seconds, simulation time
	CrabClampInset    = 30.0
	CrabWobbleRate    = 1.8
	FloatScoreRise    = 55.0 // units/s
	FloatScoreFade    = 1.6  // life units/s
	FloatScoreLife    = 1.0
	BonusScoreDivisor = 3.0 // one bonus second per this many crabs
)

// Difficulty
const (
	SpawnEvery      = 20.0 // survival seconds between reinforcements
	SpawnCycle      = 4    // cursor length: three sharks, then one orca
	SpeedEvery      = 30.0 // survival seconds between speed boosts
	SpeedBoostRatio = 1.1
)

// Game lifecycle
const (
	RestartDelay = 0.8 // seconds on the game-over screen before restart input is accepted
)

// PauseButton is the viewport-space hit box of the on-screen pause toggle.
var PauseButton = Rect{X: 8, Y: 8, W: 28, H: 28}
