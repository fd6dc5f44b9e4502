// Package config centralizes all tunable game parameters and the
// server settings loaded at startup.
package config

import "time"

// Field dimensions - the logical play area. Positions wrap at these
// bounds; rendering scales them to whatever terminal is attached.
const (
	FieldWidth  = 900.0
	FieldHeight = 650.0
)

// Ship
const (
	ShipRadius    = 12.0
	ShipTurnSpeed = 3.5   // Radians per second
	ShipAccel     = 260.0 // Units per second²
	ShipFriction  = 0.98  // Per-frame decay, applied as friction^(dt*60)
	ShipMaxSpeed  = 360.0
	ShipHeading   = -1.5707963267948966 // -π/2, pointing up
)

// Projectiles
const (
	ProjectileSpeed    = 520.0
	ProjectileLifetime = 1.2  // Seconds
	ProjectileCooldown = 0.18 // Minimum seconds between shots
	ProjectileRadius   = 2.0
	MuzzleOffset       = 6.0 // Distance past the ship radius where shots appear
)

// Asteroids
const (
	AsteroidBaseSpeed   = 40.0
	AsteroidSpeedJitter = 40.0 // Uniform extra speed, per asteroid
	AsteroidSizeBoost   = 20.0 // Extra speed per tier below large
)

// Waves
const (
	WaveBaseCount = 3 // Asteroid count is WaveBaseCount + wave number
	// Spawn rejection sampling: a candidate circle of SpawnClearance must
	// not overlap the exclusion circle around the ship.
	SpawnClearance       = 80.0
	SpawnExclusionRadius = 120.0
	SpawnMaxAttempts     = 100
)

// Scoring and lives
const (
	ScorePerSizeTier = 10 // Score for a kill is 10 × size tier
	StartingLives    = 3
	InvulnSeconds    = 2.0
)

// Simulation
const (
	// MaxDelta caps a single tick. The single-step position wrap assumes
	// per-tick displacement stays under one field dimension; capping dt
	// keeps that true even when the host loop stalls.
	MaxDelta = 0.25
)

// Rendering
const (
	TargetFPS       = 60
	TargetFrameTime = time.Second / TargetFPS
	BlinkFrequency  = 10.0 // Hz, invulnerability blink
)
