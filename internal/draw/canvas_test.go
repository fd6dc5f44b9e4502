package draw

import (
	"strings"
	"testing"

	"github.com/mkarpis/stardrift/internal/vec"
)

func TestSetAndRender(t *testing.T) {
	c := NewCanvas(10, 5, 100, 100)
	c.Set(vec.Vec2{X: 50, Y: 50})

	var buf strings.Builder
	c.Render(&buf)

	out := buf.String()
	if !strings.ContainsRune(out, BlockUpperHalf) &&
		!strings.ContainsRune(out, BlockLowerHalf) &&
		!strings.ContainsRune(out, BlockFull) {
		t.Errorf("render output contains no block characters: %q", out)
	}
}

func TestClearEmptiesFrame(t *testing.T) {
	c := NewCanvas(10, 5, 100, 100)
	c.Set(vec.Vec2{X: 50, Y: 50})
	c.Clear()

	var buf strings.Builder
	c.Render(&buf)

	if buf.Len() != 0 {
		t.Errorf("render after clear wrote %q, want nothing", buf.String())
	}
}

func TestHalfBlockPacking(t *testing.T) {
	// Two pixels sharing a cell render as one full block.
	c := NewCanvas(4, 4, 4, 8)
	c.Set(vec.Vec2{X: 1, Y: 2}) // Cell (1, row 1) top pixel
	c.Set(vec.Vec2{X: 1, Y: 3}) // Same cell, bottom pixel

	var buf strings.Builder
	c.Render(&buf)

	out := buf.String()
	if !strings.ContainsRune(out, BlockFull) {
		t.Errorf("expected a full block, got %q", out)
	}
	if strings.ContainsRune(out, BlockUpperHalf) || strings.ContainsRune(out, BlockLowerHalf) {
		t.Errorf("expected only a full block, got %q", out)
	}
}

func TestOutOfBoundsPointsIgnored(t *testing.T) {
	c := NewCanvas(10, 5, 100, 100)
	c.Set(vec.Vec2{X: -50, Y: 50})
	c.Set(vec.Vec2{X: 50, Y: 500})

	var buf strings.Builder
	c.Render(&buf)
	if buf.Len() != 0 {
		t.Errorf("out-of-bounds points rendered: %q", buf.String())
	}
}

func TestDrawLineCoversEndpoints(t *testing.T) {
	c := NewCanvas(20, 10, 20, 20)
	c.DrawLine(vec.Vec2{X: 2, Y: 10}, vec.Vec2{X: 18, Y: 10})

	// Endpoints land in pixel space at (2,10) and (18,10).
	if !c.pixels[10*20+2] || !c.pixels[10*20+18] {
		t.Error("line endpoints not set")
	}
	// And the midpoint on a horizontal line.
	if !c.pixels[10*20+10] {
		t.Error("line midpoint not set")
	}
}

func TestFilledPolygonCoversInterior(t *testing.T) {
	c := NewCanvas(20, 10, 20, 20)
	square := []vec.Vec2{
		{X: 4, Y: 4}, {X: 16, Y: 4}, {X: 16, Y: 16}, {X: 4, Y: 16},
	}
	c.DrawPolygon(square, true)

	if !c.pixels[10*20+10] {
		t.Error("interior pixel not filled")
	}
}

func TestResizeKeepsFieldMapping(t *testing.T) {
	c := NewCanvas(10, 5, 100, 100)
	c.Resize(40, 20)

	if c.TerminalWidth() != 40 || c.TerminalHeight() != 20 {
		t.Errorf("size = %dx%d, want 40x20", c.TerminalWidth(), c.TerminalHeight())
	}

	// The field still maps onto the full canvas: a point at the field
	// center lands mid-canvas.
	c.Set(vec.Vec2{X: 50, Y: 50})
	if !c.pixels[20*40+20] {
		t.Error("field center did not map to canvas center after resize")
	}
}
