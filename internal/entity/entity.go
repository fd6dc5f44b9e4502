// Package entity holds the moving things in the field: the player ship,
// its projectiles, and the asteroids they break apart.
package entity

import (
	"github.com/mkarpis/stardrift/internal/physics"
	"github.com/mkarpis/stardrift/internal/vec"
)

// Circle is anything that occupies a circular footprint in the field.
// The ship, projectiles and asteroids all collide through this shape.
type Circle interface {
	GetPosition() vec.Vec2
	GetRadius() float64
}

// Body is the minimal capability the simulation needs from a
// self-propelled entity: advance one tick, and expose a collision circle.
// Projectiles and asteroids share nothing beyond this.
type Body interface {
	Circle
	Update(dt float64)
}

// Collides reports whether two circles overlap (inclusive boundary, see
// physics.CircleCollision).
func Collides(a, b Circle) bool {
	return physics.CircleCollision(a.GetPosition(), a.GetRadius(), b.GetPosition(), b.GetRadius())
}

// ShouldRenderBlink returns true if an object with remaining
// invulnerability should be rendered this frame (blinking effect).
// Always true once remaining <= 0.
func ShouldRenderBlink(remaining, frequency float64) bool {
	if remaining <= 0 {
		return true
	}
	phase := int(remaining * frequency)
	return phase%2 != 0
}
