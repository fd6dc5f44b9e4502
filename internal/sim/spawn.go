package sim

import (
	"github.com/mkarpis/stardrift/internal/config"
	"github.com/mkarpis/stardrift/internal/entity"
	"github.com/mkarpis/stardrift/internal/physics"
	"github.com/mkarpis/stardrift/internal/vec"
)

// spawnWave replaces the asteroid field with a fresh batch of large
// asteroids for the current wave: 3 + wave of them, each placed clear of
// the ship.
func (s *Simulation) spawnWave() {
	count := config.WaveBaseCount + s.Wave
	s.Asteroids = make([]*entity.Asteroid, 0, count)
	for i := 0; i < count; i++ {
		s.Asteroids = append(s.Asteroids, entity.NewAsteroid(s.rng, s.spawnPosition(), entity.SizeLarge))
	}
}

// spawnPosition draws a uniform random field position until one clears
// the exclusion zone around the ship. Attempts are capped; if every
// candidate landed inside the zone (geometrically implausible, but a cap
// beats an unbounded loop) the farthest candidate seen is used.
func (s *Simulation) spawnPosition() vec.Vec2 {
	var best vec.Vec2
	bestDist := -1.0

	for i := 0; i < config.SpawnMaxAttempts; i++ {
		pos := vec.Vec2{
			X: s.rng.Float64() * config.FieldWidth,
			Y: s.rng.Float64() * config.FieldHeight,
		}
		if !physics.CircleCollision(pos, config.SpawnClearance, s.Ship.Pos, config.SpawnExclusionRadius) {
			return pos
		}
		if d := physics.DistanceSquared(pos, s.Ship.Pos); d > bestDist {
			best, bestDist = pos, d
		}
	}
	return best
}
