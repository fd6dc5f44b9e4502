package loop

import (
	"math"
	"math/rand"

	"github.com/mkarpis/stardrift/internal/entity"
	"github.com/mkarpis/stardrift/internal/input"
	"github.com/mkarpis/stardrift/internal/sim"
	"github.com/mkarpis/stardrift/internal/vec"
)

// particle is a short-lived decorative pixel. Particles live outside the
// simulation: they are spawned from tick events and never affect gameplay.
type particle struct {
	pos  vec.Vec2
	vel  vec.Vec2
	life float64
	drag float64
}

type effects struct {
	rng       *rand.Rand
	particles []*particle
}

func newEffects(rng *rand.Rand) *effects {
	return &effects{rng: rng}
}

// observe turns this tick's events into particle bursts and emits engine
// exhaust while the player is thrusting.
func (e *effects) observe(world *sim.Simulation, snap input.Snapshot, ev sim.Events) {
	for _, d := range ev.Destroyed {
		e.burst(d.Pos, 6*int(d.Size), 180, 0.7)
	}
	if ev.ShipHit {
		e.burst(ev.ShipHitAt, 24, 240, 0.9)
	}
	if snap.Thrust && !world.GameOver {
		e.exhaust(world.Ship)
	}
}

// burst scatters count particles from a point with randomized speed and
// lifetime.
func (e *effects) burst(pos vec.Vec2, count int, speed, life float64) {
	for i := 0; i < count; i++ {
		angle := e.rng.Float64() * 2 * math.Pi
		e.particles = append(e.particles, &particle{
			pos:  pos,
			vel:  vec.FromAngle(angle).Scale(speed * (0.4 + e.rng.Float64())),
			life: life * (0.5 + e.rng.Float64()*0.5),
			drag: 0.92,
		})
	}
}

// exhaust emits a particle behind the ship, drifting opposite the nose
// with a little angular spread.
func (e *effects) exhaust(ship *entity.Ship) {
	angle := ship.Angle + math.Pi + (e.rng.Float64()-0.5)*0.6
	e.particles = append(e.particles, &particle{
		pos:  ship.Pos.Add(vec.FromAngle(angle).Scale(ship.GetRadius())),
		vel:  ship.Vel.Add(vec.FromAngle(angle).Scale(60 + e.rng.Float64()*40)),
		life: 0.15 + e.rng.Float64()*0.2,
		drag: 0.95,
	})
}

// update integrates and expires particles, reusing the backing array.
func (e *effects) update(dt float64) {
	kept := e.particles[:0]
	for _, p := range e.particles {
		p.life -= dt
		if p.life <= 0 {
			continue
		}
		p.vel = p.vel.Scale(math.Pow(p.drag, dt*60))
		p.pos = p.pos.Add(p.vel.Scale(dt))
		kept = append(kept, p)
	}
	e.particles = kept
}
