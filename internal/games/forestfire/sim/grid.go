package sim

import (
	"errors"
	"fmt"
	"strings"
)

// ErrOutOfBounds is returned for coordinates outside the grid.
var ErrOutOfBounds = errors.New("sim: coordinate out of bounds")

// ErrEmptyGrid is returned for a grid with no cells.
var ErrEmptyGrid = errors.New("sim: empty grid")

// Grid is the authoritative N×N board. Cells are stored row-major:
// index = y*N + x. Every write is forwarded to the Painter.
type Grid struct {
	n       int
	cells   []CellState
	painter Painter
}

// NewGrid creates an n×n grid of Unset cells. A nil painter is allowed.
func NewGrid(n int, painter Painter) *Grid {
	if painter == nil {
		painter = nopPainter{}
	}
	return &Grid{
		n:       n,
		cells:   make([]CellState, n*n),
		painter: painter,
	}
}

// ParseGrid builds a grid from rows of state runes ('.', 'T', 'F', '~').
// Rows run top to bottom; all rows must have the same length as the row count.
func ParseGrid(rows []string, painter Painter) (*Grid, error) {
	n := len(rows)
	if n == 0 {
		return nil, ErrEmptyGrid
	}
	g := NewGrid(n, painter)
	for y, row := range rows {
		runes := []rune(row)
		if len(runes) != n {
			return nil, fmt.Errorf("sim: row %d has %d cells, expected %d", y, len(runes), n)
		}
		for x, r := range runes {
			s, ok := stateFromRune(r)
			if !ok {
				return nil, fmt.Errorf("sim: unknown cell %q at %v", r, C(x, y))
			}
			g.cells[g.index(C(x, y))] = s
		}
	}
	return g, nil
}

// Size returns N, the side length of the grid.
func (g *Grid) Size() int {
	return g.n
}

// InBounds returns true if the coordinate is inside the grid.
func (g *Grid) InBounds(c Coord) bool {
	return c.X >= 0 && c.X < g.n && c.Y >= 0 && c.Y < g.n
}

func (g *Grid) index(c Coord) int {
	return c.Y*g.n + c.X
}

// Get returns the state at c.
func (g *Grid) Get(c Coord) (CellState, error) {
	if !g.InBounds(c) {
		return Unset, fmt.Errorf("%w: %v in %dx%d grid", ErrOutOfBounds, c, g.n, g.n)
	}
	return g.cells[g.index(c)], nil
}

// Set writes the state at c and paints it.
func (g *Grid) Set(c Coord, s CellState) error {
	if !g.InBounds(c) {
		return fmt.Errorf("%w: %v in %dx%d grid", ErrOutOfBounds, c, g.n, g.n)
	}
	g.cells[g.index(c)] = s
	g.painter.Paint(c, s)
	return nil
}

// at reads a cell the caller already knows is in bounds.
func (g *Grid) at(c Coord) CellState {
	return g.cells[g.index(c)]
}

// put writes a cell the caller already knows is in bounds.
func (g *Grid) put(c Coord, s CellState) {
	g.cells[g.index(c)] = s
	g.painter.Paint(c, s)
}

// Fill sets every cell to s, column by column.
func (g *Grid) Fill(s CellState) {
	for x := 0; x < g.n; x++ {
		for y := 0; y < g.n; y++ {
			g.put(C(x, y), s)
		}
	}
}

// Count returns the number of cells in state s.
func (g *Grid) Count(s CellState) int {
	count := 0
	for _, cell := range g.cells {
		if cell == s {
			count++
		}
	}
	return count
}

// Column returns the states of column x from top to bottom.
func (g *Grid) Column(x int) ([]CellState, error) {
	if x < 0 || x >= g.n {
		return nil, fmt.Errorf("%w: column %d in %dx%d grid", ErrOutOfBounds, x, g.n, g.n)
	}
	col := make([]CellState, g.n)
	for y := range col {
		col[y] = g.at(C(x, y))
	}
	return col, nil
}

// Clone returns a deep copy that paints nowhere.
func (g *Grid) Clone() *Grid {
	cells := make([]CellState, len(g.cells))
	copy(cells, g.cells)
	return &Grid{n: g.n, cells: cells, painter: nopPainter{}}
}

// Equal returns true if both grids have the same size and contents.
func (g *Grid) Equal(other *Grid) bool {
	if g.n != other.n {
		return false
	}
	for i, cell := range g.cells {
		if cell != other.cells[i] {
			return false
		}
	}
	return true
}

// String renders the grid one rune per cell, rows separated by newlines.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow(g.n*g.n + g.n)
	for y := 0; y < g.n; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < g.n; x++ {
			sb.WriteRune(g.at(C(x, y)).Rune())
		}
	}
	return sb.String()
}
