// Package physics provides collision detection and distance utilities.
package physics

import "github.com/mkarpis/stardrift/internal/vec"

// DistanceSquared calculates the squared distance between two points.
// Use this when comparing distances to avoid the sqrt cost.
func DistanceSquared(a, b vec.Vec2) float64 {
	d := a.Sub(b)
	return d.X*d.X + d.Y*d.Y
}

// Distance calculates the Euclidean distance between two points.
func Distance(a, b vec.Vec2) float64 {
	return a.Sub(b).Len()
}

// CircleCollision reports whether two circles overlap. The boundary is
// inclusive: circles exactly touching (center distance == r1+r2) collide.
func CircleCollision(p1 vec.Vec2, r1 float64, p2 vec.Vec2, r2 float64) bool {
	sum := r1 + r2
	return DistanceSquared(p1, p2) <= sum*sum
}
