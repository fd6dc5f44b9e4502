// Package draw renders the game into a terminal. A Canvas buffers pixels
// at double vertical resolution (half-block characters) and scales the
// logical field to whatever terminal size is attached; output is chunked
// so frames flow smoothly over SSH links.
package draw

import (
	"fmt"
	"io"
	"math"
	"sort"
	"strings"

	"github.com/mkarpis/stardrift/internal/vec"
)

// Half-block characters used to pack two vertical pixels per cell.
const (
	BlockFull      = '█'
	BlockUpperHalf = '▀'
	BlockLowerHalf = '▄'
)

// maxChunkSize keeps single writes near MTU size for smooth transmission
// over SSH.
const maxChunkSize = 1400

// Canvas is a monochrome pixel buffer mapped onto the terminal. Logical
// coordinates (the game field) are scaled to terminal cells, with 2x
// vertical resolution from half blocks.
type Canvas struct {
	termWidth  int
	termHeight int
	pixelRows  int // termHeight * 2
	pixels     []bool

	fieldW float64
	fieldH float64
	scaleX float64
	scaleY float64

	renderBuf strings.Builder
	scanBuf   []float64 // reusable scanline intersection buffer
}

// NewCanvas creates a canvas that maps a fieldW×fieldH logical area onto
// a termWidth×termHeight terminal.
func NewCanvas(termWidth, termHeight int, fieldW, fieldH float64) *Canvas {
	c := &Canvas{fieldW: fieldW, fieldH: fieldH}
	c.Resize(termWidth, termHeight)
	return c
}

// Resize adapts the canvas to new terminal dimensions, keeping the
// logical field size.
func (c *Canvas) Resize(termWidth, termHeight int) {
	pixelRows := termHeight * 2
	if termWidth != c.termWidth || termHeight != c.termHeight {
		c.termWidth = termWidth
		c.termHeight = termHeight
		c.pixelRows = pixelRows
		c.pixels = make([]bool, pixelRows*termWidth)
	}
	c.scaleX = float64(termWidth) / c.fieldW
	c.scaleY = float64(pixelRows) / c.fieldH
}

// TerminalWidth returns the terminal column count the canvas maps onto.
func (c *Canvas) TerminalWidth() int { return c.termWidth }

// TerminalHeight returns the terminal row count the canvas maps onto.
func (c *Canvas) TerminalHeight() int { return c.termHeight }

// Clear resets every pixel.
func (c *Canvas) Clear() {
	clear(c.pixels)
}

// Set lights the pixel under the logical position p.
func (c *Canvas) Set(p vec.Vec2) {
	c.setPixel(int(math.Round(p.X*c.scaleX)), int(math.Round(p.Y*c.scaleY)))
}

func (c *Canvas) setPixel(x, y int) {
	if x >= 0 && x < c.termWidth && y >= 0 && y < c.pixelRows {
		c.pixels[y*c.termWidth+x] = true
	}
}

// DrawLine draws a line between two logical positions (Bresenham, in
// pixel space).
func (c *Canvas) DrawLine(p1, p2 vec.Vec2) {
	x1 := int(math.Round(p1.X * c.scaleX))
	y1 := int(math.Round(p1.Y * c.scaleY))
	x2 := int(math.Round(p2.X * c.scaleX))
	y2 := int(math.Round(p2.Y * c.scaleY))

	dx, dy := abs(x2-x1), abs(y2-y1)
	sx, sy := 1, 1
	if x1 > x2 {
		sx = -1
	}
	if y1 > y2 {
		sy = -1
	}
	err := dx - dy

	for {
		c.setPixel(x1, y1)
		if x1 == x2 && y1 == y2 {
			return
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x1 += sx
		}
		if e2 < dx {
			err += dx
			y1 += sy
		}
	}
}

// DrawPolygon draws a closed polygon; with filled set, the interior is
// scanline-filled as well.
func (c *Canvas) DrawPolygon(points []vec.Vec2, filled bool) {
	if len(points) < 3 {
		return
	}
	if filled {
		c.fillPolygon(points)
	}
	for i := range points {
		c.DrawLine(points[i], points[(i+1)%len(points)])
	}
}

// fillPolygon scanline-fills in pixel space.
func (c *Canvas) fillPolygon(points []vec.Vec2) {
	minY, maxY := math.Inf(1), math.Inf(-1)
	for _, p := range points {
		y := p.Y * c.scaleY
		minY = math.Min(minY, y)
		maxY = math.Max(maxY, y)
	}

	for y := int(math.Floor(minY)); y <= int(math.Ceil(maxY)); y++ {
		scanY := float64(y) + 0.5

		hits := c.scanBuf[:0]
		n := len(points)
		for i := 0; i < n; i++ {
			p1y := points[i].Y * c.scaleY
			p2y := points[(i+1)%n].Y * c.scaleY
			if (p1y <= scanY && p2y > scanY) || (p2y <= scanY && p1y > scanY) {
				t := (scanY - p1y) / (p2y - p1y)
				p1x := points[i].X * c.scaleX
				p2x := points[(i+1)%n].X * c.scaleX
				hits = append(hits, p1x+t*(p2x-p1x))
			}
		}
		c.scanBuf = hits

		sort.Float64s(hits)
		for i := 0; i+1 < len(hits); i += 2 {
			for x := int(math.Ceil(hits[i])); x <= int(math.Floor(hits[i+1])); x++ {
				c.setPixel(x, y)
			}
		}
	}
}

// Render writes the frame as positioned half-block characters. Empty
// cells are skipped rather than overdrawn, which keeps frames small.
func (c *Canvas) Render(w io.Writer) {
	c.renderBuf.Reset()
	c.renderBuf.Grow(c.termWidth * c.termHeight * 12)

	for row := 0; row < c.termHeight; row++ {
		topOffset := row * 2 * c.termWidth
		bottomOffset := topOffset + c.termWidth

		for col := 0; col < c.termWidth; col++ {
			top := c.pixels[topOffset+col]
			bottom := c.pixels[bottomOffset+col]

			var ch rune
			switch {
			case top && bottom:
				ch = BlockFull
			case top:
				ch = BlockUpperHalf
			case bottom:
				ch = BlockLowerHalf
			default:
				continue
			}
			fmt.Fprintf(&c.renderBuf, "\033[%d;%dH%c", row+1, col+1, ch)
		}
	}

	data := c.renderBuf.String()
	for len(data) > 0 {
		chunk := data
		if len(chunk) > maxChunkSize {
			chunk = data[:maxChunkSize]
		}
		io.WriteString(w, chunk)
		data = data[len(chunk):]
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
