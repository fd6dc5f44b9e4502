// Package input decodes raw terminal bytes into per-frame intent
// snapshots. No key codes cross into the simulation.
package input

import (
	"bufio"
	"time"
)

// keyHoldDuration is how long a key is considered "held" after its last press.
const keyHoldDuration = 30 * time.Millisecond

// Snapshot is the input state for a single frame: pure intents, no device
// detail. Left/Right/Thrust/Fire are level-triggered via the hold window;
// Confirm restarts after game over.
type Snapshot struct {
	Left    bool
	Right   bool
	Thrust  bool
	Fire    bool
	Confirm bool
	Quit    bool
}

// keyState tracks the last time each key was pressed.
type keyState struct {
	left    time.Time
	right   time.Time
	thrust  time.Time
	fire    time.Time
	confirm time.Time
	quit    time.Time
}

// Stream delivers input bytes via a channel and tracks key state so that
// simultaneously held keys (turn + thrust + fire) are all observed.
type Stream struct {
	ch    chan byte
	state keyState
}

// StartStream spawns a goroutine that reads from r and sends bytes to the
// stream. The goroutine exits when the reader does.
func StartStream(r *bufio.Reader) *Stream {
	s := &Stream{ch: make(chan byte, 128)}
	go func() {
		for {
			b, err := r.ReadByte()
			if err != nil {
				close(s.ch)
				return
			}
			s.ch <- b
		}
	}()
	return s
}

// ReadSnapshot drains all pending bytes (non-blocking), updates key state,
// and builds the frame's snapshot. A key counts as held if it was seen
// within the hold window, which smooths over terminal key-repeat gaps.
func (s *Stream) ReadSnapshot() Snapshot {
	now := time.Now()
	var buf []byte

	for {
		select {
		case b, ok := <-s.ch:
			if !ok {
				return Snapshot{Quit: true}
			}
			buf = append(buf, b)
		default:
			goto parse
		}
	}

parse:
	for i := 0; i < len(buf); i++ {
		b := buf[i]

		// CSI sequences: ESC [ <code> for arrow keys.
		if b == '\x1b' && i+2 < len(buf) && buf[i+1] == '[' {
			switch buf[i+2] {
			case 'A': // Up arrow
				s.state.thrust = now
				i += 2
				continue
			case 'C': // Right arrow
				s.state.right = now
				i += 2
				continue
			case 'D': // Left arrow
				s.state.left = now
				i += 2
				continue
			}
		}

		switch b {
		case 'a', 'A':
			s.state.left = now
		case 'd', 'D':
			s.state.right = now
		case 'w', 'W':
			s.state.thrust = now
		case ' ':
			s.state.fire = now
		case '\n', '\r':
			s.state.confirm = now
		case 'q', 'Q', '\x03': // q or Ctrl+C
			s.state.quit = now
		}
	}

	return Snapshot{
		Left:    now.Sub(s.state.left) < keyHoldDuration,
		Right:   now.Sub(s.state.right) < keyHoldDuration,
		Thrust:  now.Sub(s.state.thrust) < keyHoldDuration,
		Fire:    now.Sub(s.state.fire) < keyHoldDuration,
		Confirm: now.Sub(s.state.confirm) < keyHoldDuration,
		Quit:    now.Sub(s.state.quit) < keyHoldDuration,
	}
}
