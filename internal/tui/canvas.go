package tui

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"gonum.org/v1/gonum/spatial/r2"
)

// cellAspect is the assumed height-to-width ratio of a terminal cell. One
// row spans this many times the kilometres of one column so circular orbits
// render round.
const cellAspect = 2.0

const (
	bodyRune  = '█'
	trailRune = '·'
	blankRune = ' '
)

// canvas is a fixed-size cell grid that maps world kilometres onto terminal
// cells. The world origin lands on the center cell and +Y points up the
// screen.
type canvas struct {
	cols, rows int
	kmPerCell  float64
	cells      []rune
	colors     []lipgloss.Color
}

func newCanvas(cols, rows int, worldWidth float64) *canvas {
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	c := &canvas{
		cols:      cols,
		rows:      rows,
		kmPerCell: worldWidth / float64(cols),
		cells:     make([]rune, cols*rows),
		colors:    make([]lipgloss.Color, cols*rows),
	}
	c.clear()
	return c
}

func (c *canvas) clear() {
	for i := range c.cells {
		c.cells[i] = blankRune
		c.colors[i] = ""
	}
}

// cellAt maps a world position to cell coordinates. The result may lie
// outside the grid; set ignores out-of-range cells.
func (c *canvas) cellAt(p r2.Vec) (int, int) {
	x := c.cols/2 + int(math.Round(p.X/c.kmPerCell))
	y := c.rows/2 - int(math.Round(p.Y/(c.kmPerCell*cellAspect)))
	return x, y
}

func (c *canvas) set(x, y int, r rune, col lipgloss.Color) {
	if x < 0 || x >= c.cols || y < 0 || y >= c.rows {
		return
	}
	i := y*c.cols + x
	c.cells[i] = r
	c.colors[i] = col
}

// drawBody fills the disc covered by the body. Bodies smaller than a cell
// still get their center cell so nothing silently disappears.
func (c *canvas) drawBody(pos r2.Vec, radiusKm float64, col lipgloss.Color) {
	cx, cy := c.cellAt(pos)
	rc := radiusKm / c.kmPerCell
	if rc < 1 {
		c.set(cx, cy, bodyRune, col)
		return
	}
	spanX := int(math.Ceil(rc))
	spanY := int(math.Ceil(rc / cellAspect))
	for dy := -spanY; dy <= spanY; dy++ {
		for dx := -spanX; dx <= spanX; dx++ {
			fx := float64(dx)
			fy := float64(dy) * cellAspect
			if fx*fx+fy*fy <= rc*rc {
				c.set(cx+dx, cy+dy, bodyRune, col)
			}
		}
	}
}

// drawTrail draws the polyline through the recorded positions.
func (c *canvas) drawTrail(points []r2.Vec, col lipgloss.Color) {
	if len(points) == 1 {
		x, y := c.cellAt(points[0])
		c.set(x, y, trailRune, col)
		return
	}
	for i := 1; i < len(points); i++ {
		x0, y0 := c.cellAt(points[i-1])
		x1, y1 := c.cellAt(points[i])
		// skip segments rasterizing far past the grid
		if span := max(abs(x1-x0), abs(y1-y0)); span > 4*(c.cols+c.rows) {
			continue
		}
		c.drawLine(x0, y0, x1, y1, trailRune, col)
	}
}

// drawLine rasterizes a segment with Bresenham's algorithm.
func (c *canvas) drawLine(x0, y0, x1, y1 int, r rune, col lipgloss.Color) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx := 1
	if x0 > x1 {
		sx = -1
	}
	sy := 1
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy
	for {
		c.set(x0, y0, r, col)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// render emits the grid as styled lines, batching runs of equal color to
// keep escape sequences down.
func (c *canvas) render() string {
	var b strings.Builder
	b.Grow(c.rows * (c.cols + 1))
	for y := 0; y < c.rows; y++ {
		var run []rune
		var runColor lipgloss.Color
		flush := func() {
			if len(run) == 0 {
				return
			}
			s := string(run)
			if runColor != "" {
				s = lipgloss.NewStyle().Foreground(runColor).Render(s)
			}
			b.WriteString(s)
			run = run[:0]
		}
		for x := 0; x < c.cols; x++ {
			i := y*c.cols + x
			if c.colors[i] != runColor {
				flush()
				runColor = c.colors[i]
			}
			run = append(run, c.cells[i])
		}
		flush()
		if y < c.rows-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
