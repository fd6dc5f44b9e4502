package entity

import (
	"github.com/mkarpis/stardrift/internal/config"
	"github.com/mkarpis/stardrift/internal/vec"
)

// Projectile is a shot fired by the ship. It wraps like everything else
// and disappears when its lifetime runs out or it hits an asteroid.
type Projectile struct {
	Pos  vec.Vec2
	Vel  vec.Vec2
	Life float64 // Seconds remaining; <= 0 means expired or spent
}

// NewProjectile creates a projectile with a full lifetime.
func NewProjectile(pos, vel vec.Vec2) *Projectile {
	return &Projectile{Pos: pos, Vel: vel, Life: config.ProjectileLifetime}
}

// Update integrates position and counts the lifetime down.
func (p *Projectile) Update(dt float64) {
	p.Life -= dt
	p.Pos = vec.Wrap(p.Pos.Add(p.Vel.Scale(dt)), config.FieldWidth, config.FieldHeight)
}

// Expired reports whether the projectile should be removed, either by
// timeout or because a hit spent it.
func (p *Projectile) Expired() bool {
	return p.Life <= 0
}

// GetPosition returns the projectile's position.
func (p *Projectile) GetPosition() vec.Vec2 {
	return p.Pos
}

// GetRadius returns the projectile's collision radius.
func (p *Projectile) GetRadius() float64 {
	return config.ProjectileRadius
}

var _ Body = (*Projectile)(nil)
