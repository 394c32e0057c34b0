package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"gonum.org/v1/gonum/spatial/r2"
)

func canvasLines(c *canvas) [][]rune {
	raw := strings.Split(ansi.Strip(c.render()), "\n")
	lines := make([][]rune, len(raw))
	for i, l := range raw {
		lines[i] = []rune(l)
	}
	return lines
}

func TestCanvasMapsWorldOriginToCenter(t *testing.T) {
	c := newCanvas(80, 24, 8e8) // 1e7 km per column

	x, y := c.cellAt(r2.Vec{})
	if x != 40 || y != 12 {
		t.Fatalf("origin mapped to (%d, %d), want (40, 12)", x, y)
	}

	x, y = c.cellAt(r2.Vec{X: 2e7})
	if x != 42 || y != 12 {
		t.Fatalf("+x offset mapped to (%d, %d), want (42, 12)", x, y)
	}

	// +y is up the screen, and a row spans twice the km of a column
	x, y = c.cellAt(r2.Vec{Y: 2e7})
	if x != 40 || y != 11 {
		t.Fatalf("+y offset mapped to (%d, %d), want (40, 11)", x, y)
	}
}

func TestCanvasRenderDimensions(t *testing.T) {
	c := newCanvas(30, 10, 1e8)
	lines := canvasLines(c)
	if len(lines) != 10 {
		t.Fatalf("got %d lines, want 10", len(lines))
	}
	for i, l := range lines {
		if len(l) != 30 {
			t.Fatalf("line %d has %d cells, want 30", i, len(l))
		}
	}
}

func TestCanvasDrawBodyFillsDisc(t *testing.T) {
	c := newCanvas(80, 24, 8e8)
	c.drawBody(r2.Vec{}, 3e7, bodyColor(0.6)) // three columns of radius

	lines := canvasLines(c)
	center := lines[12]
	for x := 37; x <= 43; x++ {
		if center[x] != bodyRune {
			t.Fatalf("center row col %d = %q, want body fill", x, center[x])
		}
	}
	if center[44] == bodyRune || center[36] == bodyRune {
		t.Fatal("disc spilled past its radius on the center row")
	}
	if lines[11][42] != bodyRune {
		t.Fatal("expected fill one row up within the disc")
	}
	if lines[11][43] == bodyRune {
		t.Fatal("fill one row up extends too far")
	}
}

func TestCanvasTinyBodyStillGetsOneCell(t *testing.T) {
	c := newCanvas(80, 24, 8e8)
	c.drawBody(r2.Vec{X: 1e7, Y: 0}, 10, bodyColor(0.4))

	lines := canvasLines(c)
	if lines[12][41] != bodyRune {
		t.Fatal("sub-cell body vanished from the grid")
	}
}

func TestCanvasDrawTrailRastersSegment(t *testing.T) {
	c := newCanvas(80, 24, 8e8)
	pts := []r2.Vec{{X: -2e7}, {X: 2e7}}
	c.drawTrail(pts, trailColor(0.2))

	lines := canvasLines(c)
	for x := 38; x <= 42; x++ {
		if lines[12][x] != trailRune {
			t.Fatalf("col %d = %q, want trail dot", x, lines[12][x])
		}
	}
}

func TestCanvasIgnoresOffscreenCells(t *testing.T) {
	c := newCanvas(20, 10, 1e8)
	c.drawBody(r2.Vec{X: 1e12, Y: -3e11}, 5e6, bodyColor(0.9))
	c.drawTrail([]r2.Vec{{X: 9e10}, {X: 9.1e10}}, trailColor(0.9))

	out := ansi.Strip(c.render())
	if strings.ContainsRune(out, bodyRune) || strings.ContainsRune(out, trailRune) {
		t.Fatal("off-world drawing leaked onto the grid")
	}
}

func TestCanvasClampsDegenerateSize(t *testing.T) {
	c := newCanvas(0, -3, 1e8)
	lines := canvasLines(c)
	if len(lines) != 1 || len(lines[0]) != 1 {
		t.Fatalf("degenerate canvas rendered %dx%d, want 1x1", len(lines[0]), len(lines))
	}
}
