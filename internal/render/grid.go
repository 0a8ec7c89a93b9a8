// Package render turns canvas shapes into a character grid that a terminal
// can display.
package render

import (
	"math"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/rocketscienceinc/hangman/internal/canvas"
)

const (
	blank      = ' '
	ovalRune   = 'o'
	ovalSteps  = 64
	horizontal = '-'
	vertical   = '|'
	slash      = '/'
	backslash  = '\\'
)

type Grid struct {
	cols, rows int
	scaleX     float64
	scaleY     float64
	cells      [][]rune
}

// NewGrid - a cols x rows grid covering a width x height canvas.
func NewGrid(width, height float64, cols, rows int) *Grid {
	cells := make([][]rune, rows)
	for y := range cells {
		cells[y] = []rune(strings.Repeat(string(blank), cols))
	}

	return &Grid{
		cols:   cols,
		rows:   rows,
		scaleX: float64(cols) / width,
		scaleY: float64(rows) / height,
		cells:  cells,
	}
}

// Rasterize - draws every shape of c onto a new grid.
func Rasterize(c *canvas.Canvas, cols, rows int) *Grid {
	geometry := c.Geometry()

	grid := NewGrid(geometry.Width, geometry.Height, cols, rows)
	for _, shape := range c.Elements() {
		grid.Draw(shape)
	}

	return grid
}

func (that *Grid) Draw(shape canvas.Shape) {
	switch s := shape.(type) {
	case *canvas.Line:
		that.drawLine(s)
	case *canvas.Oval:
		that.drawOval(s)
	case *canvas.Label:
		that.drawLabel(s)
	}
}

func (that *Grid) Cols() int {
	return that.cols
}

func (that *Grid) Rows() int {
	return that.rows
}

// At - the rune at column x, row y, or a blank outside the grid.
func (that *Grid) At(x, y int) rune {
	if !that.inside(x, y) {
		return blank
	}

	return that.cells[y][x]
}

// Lines - one string per row with trailing blanks trimmed.
func (that *Grid) Lines() []string {
	lines := make([]string, that.rows)
	for y, row := range that.cells {
		lines[y] = strings.TrimRight(string(row), string(blank))
	}

	return lines
}

func (that *Grid) String() string {
	return strings.TrimRight(strings.Join(that.Lines(), "\n"), "\n") + "\n"
}

// drawLine walks the cells between both ends with Bresenham stepping.
func (that *Grid) drawLine(line *canvas.Line) {
	x0, y0 := that.cell(line.X1, line.Y1)
	x1, y1 := that.cell(line.X2, line.Y2)

	mark := lineRune(x1-x0, y1-y0)

	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := sign(x1-x0), sign(y1-y0)
	e := dx + dy

	for {
		that.set(x0, y0, mark)
		if x0 == x1 && y0 == y1 {
			return
		}

		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

func (that *Grid) drawOval(oval *canvas.Oval) {
	cx := oval.X + oval.Width/2
	cy := oval.Y + oval.Height/2

	for i := range ovalSteps {
		angle := 2 * math.Pi * float64(i) / ovalSteps
		x, y := that.cell(cx+math.Cos(angle)*oval.Width/2, cy+math.Sin(angle)*oval.Height/2)
		that.set(x, y, ovalRune)
	}
}

// drawLabel keeps the label centered on the same point it is centered on in
// the canvas.
func (that *Grid) drawLabel(label *canvas.Label) {
	center, row := that.cell(label.X+label.Width/2, label.Y)
	x := center - runewidth.StringWidth(label.Text)/2

	for _, ch := range label.Text {
		that.set(x, row, ch)
		x += max(runewidth.RuneWidth(ch), 1)
	}
}

func (that *Grid) cell(x, y float64) (int, int) {
	col := int(math.Round(x * that.scaleX))
	row := int(math.Round(y * that.scaleY))

	return min(col, that.cols-1), min(row, that.rows-1)
}

func (that *Grid) set(x, y int, ch rune) {
	if that.inside(x, y) {
		that.cells[y][x] = ch
	}
}

func (that *Grid) inside(x, y int) bool {
	return x >= 0 && x < that.cols && y >= 0 && y < that.rows
}

func lineRune(dx, dy int) rune {
	switch {
	case dy == 0:
		return horizontal
	case dx == 0:
		return vertical
	case (dx > 0) == (dy > 0):
		return backslash
	default:
		return slash
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
