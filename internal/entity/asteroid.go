package entity

import (
	"math"
	"math/rand"

	"github.com/mkarpis/stardrift/internal/config"
	"github.com/mkarpis/stardrift/internal/vec"
)

// Size is an asteroid's size tier.
type Size int

const (
	SizeSmall  Size = 1
	SizeMedium Size = 2
	SizeLarge  Size = 3
)

// Radii per size tier. Strictly decreasing with tier; small asteroids
// never split further.
var asteroidRadii = map[Size]float64{
	SizeLarge:  42,
	SizeMedium: 26,
	SizeSmall:  14,
}

// Asteroid is a destructible rock. Its jagged outline is generated once
// at creation and never regenerated.
type Asteroid struct {
	Pos     vec.Vec2
	Vel     vec.Vec2
	Size    Size
	Radius  float64
	Outline []vec.Vec2 // Vertex offsets from center, closed implicitly
}

// NewAsteroid creates an asteroid of the given size at pos, with a
// randomized velocity and outline drawn from rng. The generator is
// injected so tests can supply a deterministic stream.
func NewAsteroid(rng *rand.Rand, pos vec.Vec2, size Size) *Asteroid {
	radius := asteroidRadii[size]
	return &Asteroid{
		Pos:     pos,
		Vel:     RandomVelocity(rng, size),
		Size:    size,
		Radius:  radius,
		Outline: generateOutline(rng, radius),
	}
}

// RandomVelocity picks a uniformly random direction and a speed of
// base + jitter + a per-tier boost, so smaller fragments move faster.
func RandomVelocity(rng *rand.Rand, size Size) vec.Vec2 {
	angle := rng.Float64() * 2 * math.Pi
	speed := config.AsteroidBaseSpeed +
		rng.Float64()*config.AsteroidSpeedJitter +
		float64(SizeLarge-size)*config.AsteroidSizeBoost
	return vec.FromAngle(angle).Scale(speed)
}

// generateOutline builds an irregular polygon: 10-14 vertices evenly
// spaced in angle, each pushed to 70-110% of the nominal radius.
func generateOutline(rng *rand.Rand, radius float64) []vec.Vec2 {
	count := 10 + rng.Intn(5)
	points := make([]vec.Vec2, count)
	for i := range points {
		angle := float64(i) / float64(count) * 2 * math.Pi
		r := radius * (0.7 + rng.Float64()*0.4)
		points[i] = vec.FromAngle(angle).Scale(r)
	}
	return points
}

// Update integrates position and wraps it to the field.
func (a *Asteroid) Update(dt float64) {
	a.Pos = vec.Wrap(a.Pos.Add(a.Vel.Scale(dt)), config.FieldWidth, config.FieldHeight)
}

// GetPosition returns the asteroid's center.
func (a *Asteroid) GetPosition() vec.Vec2 {
	return a.Pos
}

// GetRadius returns the asteroid's collision radius.
func (a *Asteroid) GetRadius() float64 {
	return a.Radius
}

var _ Body = (*Asteroid)(nil)
