package game

// ramp is the slice of the orchestrator the difficulty controller drives.
type ramp interface {
	spawnShark()
	spawnOrca()
	boostPredators(ratio float64)
	levelUp()
}

// Difficulty escalates the round on cumulative survival time. Pausing freezes survival
// time, so it freezes the ramp too.
type Difficulty struct {
	nextSpawnAt float64
	nextSpeedAt float64
	cursor      int
	spawned     int
	boosts      int
}

func NewDifficulty() *Difficulty {
	d := &Difficulty{}
	d.Reset()
	return d
}

// Reset rewinds both ramps for a new round.
func (d *Difficulty) Reset() {
	d.nextSpawnAt = SpawnEvery
	d.nextSpeedAt = SpeedEvery
	d.cursor = 0
	d.spawned = 0
	d.boosts = 0
}

// Update fires at most one spawn and one boost per call. Thresholds advance by a fixed
// step from their previous value, never from survival, so a late tick cannot push the
// schedule back.
func (d *Difficulty) Update(survival float64, r ramp) {
	if survival >= d.nextSpawnAt {
		d.nextSpawnAt += SpawnEvery
		if d.cursor < SpawnCycle-1 {
			r.spawnShark()
			d.cursor++
		} else {
			r.spawnOrca()
			d.cursor = 0
		}
		d.spawned++
		r.levelUp()
	}

	if survival >= d.nextSpeedAt {
		d.nextSpeedAt += SpeedEvery
		r.boostPredators(SpeedBoostRatio)
		d.boosts++
	}
}

// Spawned is the number of reinforcements injected this round.
func (d *Difficulty) Spawned() int { return d.spawned }

// Boosts is the number of speed boosts applied this round.
func (d *Difficulty) Boosts() int { return d.boosts }

// NextSpawnAt is the survival time of the next reinforcement.
func (d *Difficulty) NextSpawnAt() float64 { return d.nextSpawnAt }
