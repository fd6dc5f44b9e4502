package sim

import (
	"github.com/mkarpis/stardrift/internal/config"
	"github.com/mkarpis/stardrift/internal/entity"
)

// resolveCollisions runs the two collision passes of a tick: projectiles
// against asteroids, then the ship against whatever survived.
func (s *Simulation) resolveCollisions(ev *Events) {
	s.resolveShots(ev)
	s.resolveShipHit(ev)
}

// resolveShots handles projectile hits. Asteroids are scanned in
// collection order; each tests projectiles in collection order and the
// first live match wins, so an asteroid dies to at most one projectile
// per tick and a spent projectile cannot kill twice. A destroyed
// asteroid above the smallest tier splits into two children at its
// position, appended after the survivors.
func (s *Simulation) resolveShots(ev *Events) {
	var children []*entity.Asteroid

	survivors := s.Asteroids[:0]
	for _, a := range s.Asteroids {
		hit := false
		for _, p := range s.Projectiles {
			if p.Expired() {
				continue // spent on an earlier asteroid this tick
			}
			if !entity.Collides(p, a) {
				continue
			}
			p.Life = 0
			hit = true
			s.Score += config.ScorePerSizeTier * int(a.Size)
			ev.Destroyed = append(ev.Destroyed, Destruction{Pos: a.Pos, Size: a.Size})

			if a.Size > entity.SizeSmall {
				for i := 0; i < 2; i++ {
					children = append(children, entity.NewAsteroid(s.rng, a.Pos, a.Size-1))
				}
			}
			break
		}
		if !hit {
			survivors = append(survivors, a)
		}
	}
	s.Asteroids = append(survivors, children...)

	s.Projectiles = sweepProjectiles(s.Projectiles)
}

// resolveShipHit handles the player colliding with an asteroid. Skipped
// entirely while the invulnerability window is active. Only the first
// collision counts this tick, even if several asteroids overlap the ship:
// the reset moves the ship away and re-arms the grace period.
func (s *Simulation) resolveShipHit(ev *Events) {
	if s.Ship.Invulnerable() {
		return
	}
	for _, a := range s.Asteroids {
		if !entity.Collides(s.Ship, a) {
			continue
		}
		s.Lives--
		ev.ShipHit = true
		ev.ShipHitAt = s.Ship.Pos
		s.Ship.Reset()
		if s.Lives <= 0 {
			s.GameOver = true
		}
		return
	}
}
