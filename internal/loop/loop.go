// Package loop drives a single game session: it reads input, steps the
// simulation at a fixed cadence, and renders each frame to the attached
// terminal. One Run call owns one player from first frame to quit.
package loop

import (
	"bufio"
	"io"
	"math/rand"
	"time"

	"github.com/mkarpis/stardrift/internal/config"
	"github.com/mkarpis/stardrift/internal/draw"
	"github.com/mkarpis/stardrift/internal/input"
	"github.com/mkarpis/stardrift/internal/sim"
)

// Options configures a session.
type Options struct {
	// TermSize reports the current terminal dimensions. Defaults to
	// reading stdout.
	TermSize draw.TermSizeFunc

	// Seed for the session's random generator. Zero picks a time-based
	// seed.
	Seed int64
}

// Run plays one game session over the given reader/writer pair and
// blocks until the player quits or the input stream closes.
func Run(r *bufio.Reader, w io.Writer, opts Options) error {
	sizeFn := opts.TermSize
	if sizeFn == nil {
		sizeFn = draw.StdoutTermSize
	}
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	rng := rand.New(rand.NewSource(seed))
	world := sim.New(rng)
	fx := newEffects(rng)
	stream := input.StartStream(r)

	termW, termH, err := sizeFn()
	if err != nil {
		return err
	}
	canvas := draw.NewCanvas(termW, termH, config.FieldWidth, config.FieldHeight)

	draw.HideCursor(w)
	defer draw.ShowCursor(w)
	defer draw.ClearScreen(w)

	start, err := titleScreen(w, canvas, stream, sizeFn)
	if err != nil || !start {
		return err
	}

	last := time.Now()
	for {
		frameStart := time.Now()
		dt := frameStart.Sub(last).Seconds()
		last = frameStart

		snap := stream.ReadSnapshot()
		if snap.Quit {
			return nil
		}

		if termW, termH, err = sizeFn(); err != nil {
			return err
		}
		canvas.Resize(termW, termH)

		ev := world.Update(dt, snap)
		fx.observe(world, snap, ev)
		fx.update(dt)

		renderFrame(w, canvas, world, fx)

		if elapsed := time.Since(frameStart); elapsed < config.TargetFrameTime {
			time.Sleep(config.TargetFrameTime - elapsed)
		}
	}
}

// titleScreen shows the banner until the player confirms or quits.
// Returns false when the session should end without playing.
func titleScreen(w io.Writer, canvas *draw.Canvas, stream *input.Stream, sizeFn draw.TermSizeFunc) (bool, error) {
	for {
		snap := stream.ReadSnapshot()
		if snap.Quit {
			return false, nil
		}
		if snap.Confirm {
			return true, nil
		}

		termW, termH, err := sizeFn()
		if err != nil {
			return false, err
		}
		canvas.Resize(termW, termH)
		drawTitle(w, canvas)

		time.Sleep(config.TargetFrameTime)
	}
}
