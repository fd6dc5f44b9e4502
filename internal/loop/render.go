package loop

import (
	"fmt"
	"io"

	"github.com/mkarpis/stardrift/internal/config"
	"github.com/mkarpis/stardrift/internal/draw"
	"github.com/mkarpis/stardrift/internal/entity"
	"github.com/mkarpis/stardrift/internal/sim"
	"github.com/mkarpis/stardrift/internal/vec"
)

// Ship triangle geometry: nose extends past the collision radius, the
// wings trail at a fixed sweep either side of the heading.
const (
	shipNoseLength = config.ShipRadius + 8
	shipWingSweep  = 2.5
)

// renderFrame draws the whole scene and HUD for one tick.
func renderFrame(w io.Writer, canvas *draw.Canvas, world *sim.Simulation, fx *effects) {
	draw.ClearScreen(w)
	canvas.Clear()

	for _, a := range world.Asteroids {
		drawAsteroid(canvas, a)
	}
	for _, p := range world.Projectiles {
		canvas.Set(p.Pos)
	}
	for _, p := range fx.particles {
		canvas.Set(p.pos)
	}
	drawShip(canvas, world.Ship)

	canvas.Render(w)
	drawHUD(w, world)
	if world.GameOver {
		drawGameOver(w, canvas, world)
	}
}

// drawAsteroid renders the jagged outline as a closed polygon around the
// asteroid's position.
func drawAsteroid(canvas *draw.Canvas, a *entity.Asteroid) {
	points := make([]vec.Vec2, len(a.Outline))
	for i, offset := range a.Outline {
		points[i] = a.Pos.Add(offset)
	}
	canvas.DrawPolygon(points, false)
}

// drawShip renders the player triangle. While the spawn grace period is
// active the ship blinks by skipping frames.
func drawShip(canvas *draw.Canvas, ship *entity.Ship) {
	if ship.Invuln > 0 && !entity.ShouldRenderBlink(ship.Invuln, config.BlinkFrequency) {
		return
	}
	points := []vec.Vec2{
		ship.Pos.Add(vec.FromAngle(ship.Angle).Scale(shipNoseLength)),
		ship.Pos.Add(vec.FromAngle(ship.Angle + shipWingSweep).Scale(config.ShipRadius)),
		ship.Pos.Add(vec.FromAngle(ship.Angle - shipWingSweep).Scale(config.ShipRadius)),
	}
	canvas.DrawPolygon(points, true)
}

// drawHUD writes the score line over the top-left corner of the frame.
func drawHUD(w io.Writer, world *sim.Simulation) {
	draw.MoveCursor(w, 2, 1)
	fmt.Fprintf(w, "Score: %d", world.Score)
	draw.MoveCursor(w, 2, 2)
	fmt.Fprintf(w, "Lives: %d", world.Lives)
	draw.MoveCursor(w, 2, 3)
	fmt.Fprintf(w, "Wave: %d", world.Wave)
}

// drawTitle renders the pre-game banner.
func drawTitle(w io.Writer, canvas *draw.Canvas) {
	draw.ClearScreen(w)
	lines := []string{
		"S T A R D R I F T",
		"",
		"Arrows or A/D to turn, W/Up to thrust",
		"Space to fire, Q to quit",
		"",
		"Press ENTER to start",
	}
	drawCentered(w, canvas, lines)
}

// drawGameOver centers the end-of-run overlay.
func drawGameOver(w io.Writer, canvas *draw.Canvas, world *sim.Simulation) {
	drawCentered(w, canvas, []string{
		"GAME OVER",
		fmt.Sprintf("Final score: %d", world.Score),
		"Press ENTER to restart",
	})
}

// drawCentered writes a block of text lines centered on the terminal.
func drawCentered(w io.Writer, canvas *draw.Canvas, lines []string) {
	row := canvas.TerminalHeight()/2 - len(lines)/2
	if row < 1 {
		row = 1
	}
	for i, line := range lines {
		col := (canvas.TerminalWidth() - len(line)) / 2
		if col < 1 {
			col = 1
		}
		draw.MoveCursor(w, col, row+i)
		io.WriteString(w, line)
	}
}
