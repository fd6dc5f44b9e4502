package sim

import (
	"math/rand"
	"testing"

	"github.com/mkarpis/stardrift/internal/config"
	"github.com/mkarpis/stardrift/internal/entity"
	"github.com/mkarpis/stardrift/internal/input"
	"github.com/mkarpis/stardrift/internal/vec"
)

func newTestSim(seed int64) *Simulation {
	return New(rand.New(rand.NewSource(seed)))
}

// stillAsteroid builds an asteroid that stays where it is put.
func stillAsteroid(s *Simulation, pos vec.Vec2, size entity.Size) *entity.Asteroid {
	a := entity.NewAsteroid(s.rng, pos, size)
	a.Vel = vec.Vec2{}
	return a
}

func TestNewGameState(t *testing.T) {
	s := newTestSim(1)

	if s.Score != 0 {
		t.Errorf("Score = %d, want 0", s.Score)
	}
	if s.Lives != config.StartingLives {
		t.Errorf("Lives = %d, want %d", s.Lives, config.StartingLives)
	}
	if s.Wave != 1 {
		t.Errorf("Wave = %d, want 1", s.Wave)
	}
	if got, want := len(s.Asteroids), config.WaveBaseCount+1; got != want {
		t.Errorf("asteroid count = %d, want %d", got, want)
	}
	for i, a := range s.Asteroids {
		if a.Size != entity.SizeLarge {
			t.Errorf("asteroid %d size = %d, want %d", i, a.Size, entity.SizeLarge)
		}
	}
	if !s.Ship.Invulnerable() {
		t.Error("ship should spawn with the grace period active")
	}
}

func TestProjectileSplitsAsteroid(t *testing.T) {
	s := newTestSim(2)

	pos := vec.Vec2{X: 200, Y: 200}
	s.Asteroids = []*entity.Asteroid{stillAsteroid(s, pos, entity.SizeMedium)}
	s.Projectiles = []*entity.Projectile{entity.NewProjectile(pos, vec.Vec2{})}

	ev := s.Update(0, input.Snapshot{})

	if s.Score != 2*config.ScorePerSizeTier {
		t.Errorf("Score = %d, want %d", s.Score, 2*config.ScorePerSizeTier)
	}
	if len(ev.Destroyed) != 1 {
		t.Fatalf("Destroyed events = %d, want 1", len(ev.Destroyed))
	}
	if ev.Destroyed[0].Pos != pos || ev.Destroyed[0].Size != entity.SizeMedium {
		t.Errorf("Destroyed = %+v, want pos %v size %d", ev.Destroyed[0], pos, entity.SizeMedium)
	}

	if len(s.Asteroids) != 2 {
		t.Fatalf("fragment count = %d, want 2", len(s.Asteroids))
	}
	for i, child := range s.Asteroids {
		if child.Size != entity.SizeSmall {
			t.Errorf("fragment %d size = %d, want %d", i, child.Size, entity.SizeSmall)
		}
		if child.Pos != pos {
			t.Errorf("fragment %d spawned at %v, want parent position %v", i, child.Pos, pos)
		}
	}

	if len(s.Projectiles) != 0 {
		t.Errorf("projectile count = %d, want 0 (spent shots removed)", len(s.Projectiles))
	}
}

func TestSmallAsteroidLeavesNoFragments(t *testing.T) {
	s := newTestSim(3)

	pos := vec.Vec2{X: 200, Y: 200}
	far := stillAsteroid(s, vec.Vec2{X: 800, Y: 600}, entity.SizeLarge)
	s.Asteroids = []*entity.Asteroid{stillAsteroid(s, pos, entity.SizeSmall), far}
	s.Projectiles = []*entity.Projectile{entity.NewProjectile(pos, vec.Vec2{})}

	s.Update(0, input.Snapshot{})

	if len(s.Asteroids) != 1 {
		t.Fatalf("asteroid count = %d, want 1 (no fragments from smallest tier)", len(s.Asteroids))
	}
	if s.Asteroids[0] != far {
		t.Error("surviving asteroid should be the untouched one")
	}
	if s.Score != config.ScorePerSizeTier {
		t.Errorf("Score = %d, want %d", s.Score, config.ScorePerSizeTier)
	}
}

func TestProjectileSpentOnFirstHit(t *testing.T) {
	s := newTestSim(4)

	pos := vec.Vec2{X: 200, Y: 200}
	s.Asteroids = []*entity.Asteroid{
		stillAsteroid(s, pos, entity.SizeSmall),
		stillAsteroid(s, pos, entity.SizeSmall),
	}
	s.Projectiles = []*entity.Projectile{entity.NewProjectile(pos, vec.Vec2{})}

	s.Update(0, input.Snapshot{})

	if len(s.Asteroids) != 1 {
		t.Errorf("asteroid count = %d, want 1 (one shot kills one asteroid)", len(s.Asteroids))
	}
	if s.Score != config.ScorePerSizeTier {
		t.Errorf("Score = %d, want %d", s.Score, config.ScorePerSizeTier)
	}
}

func TestShipHitLosesLifeAndResets(t *testing.T) {
	s := newTestSim(5)

	hitPos := vec.Vec2{X: 100, Y: 100}
	s.Ship.Pos = hitPos
	s.Ship.Invuln = 0
	s.Asteroids = []*entity.Asteroid{stillAsteroid(s, hitPos, entity.SizeLarge)}

	ev := s.Update(0, input.Snapshot{})

	if s.Lives != config.StartingLives-1 {
		t.Errorf("Lives = %d, want %d", s.Lives, config.StartingLives-1)
	}
	if !ev.ShipHit {
		t.Error("expected a ShipHit event")
	}
	if ev.ShipHitAt != hitPos {
		t.Errorf("ShipHitAt = %v, want %v", ev.ShipHitAt, hitPos)
	}
	center := vec.Vec2{X: config.FieldWidth / 2, Y: config.FieldHeight / 2}
	if s.Ship.Pos != center {
		t.Errorf("ship not re-centered: %v", s.Ship.Pos)
	}
	if !s.Ship.Invulnerable() {
		t.Error("respawned ship should have the grace period")
	}
	if len(s.Asteroids) != 1 {
		t.Errorf("asteroid count = %d, the asteroid should survive the ram", len(s.Asteroids))
	}
}

func TestInvulnerableShipIgnoresCollision(t *testing.T) {
	s := newTestSim(6)

	s.Ship.Invuln = 1.0
	s.Asteroids = []*entity.Asteroid{stillAsteroid(s, s.Ship.Pos, entity.SizeLarge)}

	ev := s.Update(0, input.Snapshot{})

	if s.Lives != config.StartingLives {
		t.Errorf("Lives = %d, want %d (grace period active)", s.Lives, config.StartingLives)
	}
	if ev.ShipHit {
		t.Error("unexpected ShipHit event during grace period")
	}
}

func TestGameOverLatchesAndFreezesPlay(t *testing.T) {
	s := newTestSim(7)

	s.Lives = 1
	s.Ship.Invuln = 0
	s.Asteroids = []*entity.Asteroid{stillAsteroid(s, s.Ship.Pos, entity.SizeLarge)}
	s.Score = 70

	s.Update(0, input.Snapshot{})
	if !s.GameOver {
		t.Fatal("losing the last life should end the game")
	}

	// Every intent except Confirm is ignored now.
	before := *s.Ship
	s.Update(0.1, input.Snapshot{Thrust: true, Fire: true, Left: true})
	if s.Ship.Pos != before.Pos || s.Ship.Angle != before.Angle {
		t.Error("ship moved while the game was over")
	}
	if len(s.Projectiles) != 0 {
		t.Error("fired while the game was over")
	}
	if s.Score != 70 {
		t.Errorf("Score = %d, want 70 (frozen)", s.Score)
	}
}

func TestConfirmRestartsAfterGameOver(t *testing.T) {
	s := newTestSim(8)

	s.GameOver = true
	s.Score = 120
	s.Lives = 0
	s.Wave = 4

	ev := s.Update(0, input.Snapshot{Confirm: true})

	if !ev.Restarted {
		t.Error("expected a Restarted event")
	}
	if s.GameOver {
		t.Error("GameOver should clear on restart")
	}
	if s.Score != 0 || s.Lives != config.StartingLives || s.Wave != 1 {
		t.Errorf("state after restart = score %d lives %d wave %d, want 0/%d/1",
			s.Score, s.Lives, s.Wave, config.StartingLives)
	}
	if got, want := len(s.Asteroids), config.WaveBaseCount+1; got != want {
		t.Errorf("asteroid count = %d, want %d", got, want)
	}
	if ev.WaveStarted != 1 {
		t.Errorf("WaveStarted = %d, want 1", ev.WaveStarted)
	}
}

func TestClearingFieldStartsNextWave(t *testing.T) {
	s := newTestSim(9)

	pos := vec.Vec2{X: 700, Y: 500}
	s.Asteroids = []*entity.Asteroid{stillAsteroid(s, pos, entity.SizeSmall)}
	s.Projectiles = []*entity.Projectile{entity.NewProjectile(pos, vec.Vec2{})}
	s.Ship.Invuln = 0

	ev := s.Update(0, input.Snapshot{})

	if s.Wave != 2 {
		t.Errorf("Wave = %d, want 2", s.Wave)
	}
	if ev.WaveStarted != 2 {
		t.Errorf("WaveStarted = %d, want 2", ev.WaveStarted)
	}
	if got, want := len(s.Asteroids), config.WaveBaseCount+2; got != want {
		t.Errorf("asteroid count = %d, want %d", got, want)
	}
	if !s.Ship.Invulnerable() {
		t.Error("new wave should grant the grace period")
	}
}

func TestExpiredProjectilesAreSwept(t *testing.T) {
	s := newTestSim(10)

	// Far corner, away from the spawned wave's exclusion logic.
	p := entity.NewProjectile(vec.Vec2{X: 10, Y: 10}, vec.Vec2{})
	p.Life = 0.01
	s.Projectiles = []*entity.Projectile{p}

	s.Update(0.02, input.Snapshot{})

	if len(s.Projectiles) != 0 {
		t.Errorf("projectile count = %d, want 0", len(s.Projectiles))
	}
}

func TestLargeTimeStepIsClamped(t *testing.T) {
	s := newTestSim(11)

	s.Asteroids = []*entity.Asteroid{stillAsteroid(s, vec.Vec2{X: 800, Y: 600}, entity.SizeLarge)}
	p := entity.NewProjectile(vec.Vec2{X: 10, Y: 10}, vec.Vec2{})
	s.Projectiles = []*entity.Projectile{p}

	s.Update(10, input.Snapshot{}) // A stall; should advance at most MaxDelta

	if len(s.Projectiles) != 1 {
		t.Fatal("projectile should survive a clamped step")
	}
	want := config.ProjectileLifetime - config.MaxDelta
	if got := s.Projectiles[0].Life; got < want-1e-9 {
		t.Errorf("Life = %v, want >= %v", got, want)
	}
}

func TestFiringRespectsCooldown(t *testing.T) {
	s := newTestSim(12)
	s.Asteroids = []*entity.Asteroid{stillAsteroid(s, vec.Vec2{X: 10, Y: 10}, entity.SizeLarge)}

	s.Update(0, input.Snapshot{Fire: true})
	if len(s.Projectiles) != 1 {
		t.Fatalf("projectile count = %d, want 1", len(s.Projectiles))
	}

	s.Update(0.01, input.Snapshot{Fire: true})
	if len(s.Projectiles) != 1 {
		t.Errorf("projectile count = %d, want 1 (cooldown active)", len(s.Projectiles))
	}

	s.Update(config.ProjectileCooldown, input.Snapshot{Fire: true})
	if len(s.Projectiles) != 2 {
		t.Errorf("projectile count = %d, want 2 after cooldown", len(s.Projectiles))
	}
}
