package entity

import (
	"math"

	"github.com/mkarpis/stardrift/internal/config"
	"github.com/mkarpis/stardrift/internal/input"
	"github.com/mkarpis/stardrift/internal/vec"
)

// Ship is the player-controlled vessel. Exactly one instance exists for a
// run; life loss resets it in place rather than replacing it.
type Ship struct {
	Pos      vec.Vec2
	Vel      vec.Vec2
	Angle    float64 // Heading in radians (0 = right, -π/2 = up)
	Cooldown float64 // Seconds until the next shot is allowed
	Invuln   float64 // Seconds of remaining invulnerability
	Alive    bool
}

// NewShip creates a ship centered in the field with the spawn grace period.
func NewShip() *Ship {
	s := &Ship{}
	s.Reset()
	return s
}

// Reset re-centers the ship, kills its momentum and grants the
// invulnerability window. Used both at spawn and after a life is lost.
func (s *Ship) Reset() {
	s.Pos = vec.Vec2{X: config.FieldWidth / 2, Y: config.FieldHeight / 2}
	s.Vel = vec.Vec2{}
	s.Angle = config.ShipHeading
	s.Cooldown = 0
	s.Invuln = config.InvulnSeconds
	s.Alive = true
}

// Update applies turning, thrust, friction, the speed cap and position
// integration for one tick, then counts the cooldown and invulnerability
// timers down. Friction is friction^(dt*60) so damping is frame-rate
// independent.
func (s *Ship) Update(dt float64, in input.Snapshot) {
	if in.Left {
		s.Angle -= config.ShipTurnSpeed * dt
	}
	if in.Right {
		s.Angle += config.ShipTurnSpeed * dt
	}

	if in.Thrust {
		s.Vel = s.Vel.Add(vec.FromAngle(s.Angle).Scale(config.ShipAccel * dt))
	}

	s.Vel = s.Vel.Scale(math.Pow(config.ShipFriction, dt*60))
	s.Vel = s.Vel.ClampLen(config.ShipMaxSpeed)

	s.Pos = vec.Wrap(s.Pos.Add(s.Vel.Scale(dt)), config.FieldWidth, config.FieldHeight)

	if s.Cooldown > 0 {
		s.Cooldown -= dt
	}
	if s.Invuln > 0 {
		s.Invuln -= dt
	}
}

// Fire creates a projectile at the ship's nose when the cooldown allows
// it, inheriting the ship's momentum, and rearms the cooldown. Returns
// nil while on cooldown - not an error, just no shot.
func (s *Ship) Fire() *Projectile {
	if s.Cooldown > 0 {
		return nil
	}
	s.Cooldown = config.ProjectileCooldown

	dir := vec.FromAngle(s.Angle)
	pos := s.Pos.Add(dir.Scale(config.ShipRadius + config.MuzzleOffset))
	vel := s.Vel.Add(dir.Scale(config.ProjectileSpeed))
	return NewProjectile(pos, vel)
}

// Invulnerable reports whether the spawn grace period is still active.
func (s *Ship) Invulnerable() bool {
	return s.Invuln > 0
}

// GetPosition returns the ship's center.
func (s *Ship) GetPosition() vec.Vec2 {
	return s.Pos
}

// GetRadius returns the ship's collision radius.
func (s *Ship) GetRadius() float64 {
	return config.ShipRadius
}
