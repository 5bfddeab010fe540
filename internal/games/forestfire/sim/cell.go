// Package sim implements the forest-fire simulation: a square grid of trees
// that burns orthogonally on a periodic tick, transient water splashes that
// restore what they covered, and column firebreaks.
//
// The package does no I/O. Rendering, audio, status text, randomness and
// timers are host capabilities passed in through Host.
package sim

import "fmt"

// CellState is the state of a single grid cell.
type CellState uint8

const (
	Unset CellState = iota // Never written; distinct from every domain state
	Soil
	Tree
	Fire
	Water
)

// String returns a lowercase name for the state.
func (s CellState) String() string {
	switch s {
	case Unset:
		return "unset"
	case Soil:
		return "soil"
	case Tree:
		return "tree"
	case Fire:
		return "fire"
	case Water:
		return "water"
	default:
		return fmt.Sprintf("state(%d)", uint8(s))
	}
}

// Rune returns the single-character form used by Grid.String and ParseGrid.
func (s CellState) Rune() rune {
	switch s {
	case Soil:
		return '.'
	case Tree:
		return 'T'
	case Fire:
		return 'F'
	case Water:
		return '~'
	default:
		return '?'
	}
}

// stateFromRune is the inverse of CellState.Rune.
func stateFromRune(r rune) (CellState, bool) {
	switch r {
	case '.':
		return Soil, true
	case 'T':
		return Tree, true
	case 'F':
		return Fire, true
	case '~':
		return Water, true
	default:
		return Unset, false
	}
}

// Coord identifies a cell. X is the column, Y the row.
type Coord struct {
	X int
	Y int
}

// C is a convenience constructor for Coord.
func C(x, y int) Coord {
	return Coord{X: x, Y: y}
}

// String returns a string representation of the coordinate.
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Add returns a new Coord offset by (dx, dy).
func (c Coord) Add(dx, dy int) Coord {
	return Coord{X: c.X + dx, Y: c.Y + dy}
}

// Neighbors4 returns the orthogonal neighbours in N, S, W, E order.
// Results may lie outside any grid.
func (c Coord) Neighbors4() [4]Coord {
	return [4]Coord{
		c.Add(0, -1),
		c.Add(0, 1),
		c.Add(-1, 0),
		c.Add(1, 0),
	}
}

// Neighborhood returns the (2r+1)x(2r+1) square centered on c, including c,
// column by column.
func (c Coord) Neighborhood(r int) []Coord {
	out := make([]Coord, 0, (2*r+1)*(2*r+1))
	for dx := -r; dx <= r; dx++ {
		for dy := -r; dy <= r; dy++ {
			out = append(out, c.Add(dx, dy))
		}
	}
	return out
}
