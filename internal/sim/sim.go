// Package sim implements the core update layer: entity integration,
// collision resolution, asteroid fragmentation, and the wave/life/
// game-over state machine. It is single-threaded and owns every entity
// collection; the host loop calls Update once per frame and reads the
// exported state back for rendering.
package sim

import (
	"math/rand"

	"github.com/mkarpis/stardrift/internal/config"
	"github.com/mkarpis/stardrift/internal/entity"
	"github.com/mkarpis/stardrift/internal/input"
	"github.com/mkarpis/stardrift/internal/vec"
)

// Destruction records an asteroid killed by a projectile this tick.
type Destruction struct {
	Pos  vec.Vec2
	Size entity.Size
}

// Events reports what happened during one tick so the render layer can
// spawn visual effects without reaching into the simulation.
type Events struct {
	Destroyed   []Destruction
	ShipHit     bool
	ShipHitAt   vec.Vec2 // Where the ship was when it was hit
	WaveStarted int      // Wave number that spawned this tick, 0 if none
	Restarted   bool
}

// Simulation is the whole game world for one run.
type Simulation struct {
	rng *rand.Rand

	Ship        *entity.Ship
	Projectiles []*entity.Projectile
	Asteroids   []*entity.Asteroid

	Score    int
	Lives    int
	Wave     int
	GameOver bool
}

// New creates a simulation with a centered ship and the first wave
// spawned. The generator drives every random decision (asteroid velocity,
// outline jitter, spawn placement) for the run.
func New(rng *rand.Rand) *Simulation {
	s := &Simulation{
		rng:   rng,
		Ship:  entity.NewShip(),
		Lives: config.StartingLives,
		Wave:  1,
	}
	s.spawnWave()
	return s
}

// Reset restores the starting state: score 0, full lives, wave 1, ship
// re-centered, projectiles cleared, fresh wave.
func (s *Simulation) Reset() {
	s.Score = 0
	s.Lives = config.StartingLives
	s.Wave = 1
	s.GameOver = false
	s.Ship.Reset()
	s.Projectiles = s.Projectiles[:0]
	s.spawnWave()
}

// Update advances the world by dt seconds. While the game is over, every
// intent except Confirm is ignored; Confirm restarts via Reset.
func (s *Simulation) Update(dt float64, in input.Snapshot) Events {
	if dt < 0 {
		dt = 0
	}
	if dt > config.MaxDelta {
		dt = config.MaxDelta
	}

	var ev Events

	if s.GameOver {
		if in.Confirm {
			s.Reset()
			ev.Restarted = true
			ev.WaveStarted = s.Wave
		}
		return ev
	}

	s.Ship.Update(dt, in)

	if in.Fire {
		if p := s.Ship.Fire(); p != nil {
			s.Projectiles = append(s.Projectiles, p)
		}
	}

	advance(dt, s.Projectiles)
	s.Projectiles = sweepProjectiles(s.Projectiles)

	advance(dt, s.Asteroids)

	s.resolveCollisions(&ev)

	if len(s.Asteroids) == 0 {
		s.Wave++
		s.Ship.Invuln = config.InvulnSeconds
		s.spawnWave()
		ev.WaveStarted = s.Wave
	}

	return ev
}

// advance integrates a batch of bodies by one tick.
func advance[B entity.Body](dt float64, bodies []B) {
	for _, b := range bodies {
		b.Update(dt)
	}
}

// sweepProjectiles drops expired and spent projectiles, reusing the
// backing array.
func sweepProjectiles(projectiles []*entity.Projectile) []*entity.Projectile {
	kept := projectiles[:0]
	for _, p := range projectiles {
		if !p.Expired() {
			kept = append(kept, p)
		}
	}
	return kept
}
