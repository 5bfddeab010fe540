package sim

import (
	"errors"
	"testing"
)

func TestGridGetSet(t *testing.T) {
	var painted []Coord
	g := NewGrid(4, PainterFunc(func(c Coord, _ CellState) { painted = append(painted, c) }))

	if st, err := g.Get(C(1, 1)); err != nil || st != Unset {
		t.Errorf("new cell = %v, %v; expected unset", st, err)
	}

	if err := g.Set(C(3, 2), Fire); err != nil {
		t.Fatalf("Set() failed: %v", err)
	}
	if st, _ := g.Get(C(3, 2)); st != Fire {
		t.Errorf("Get(3,2) = %v, expected fire", st)
	}
	if len(painted) != 1 || painted[0] != C(3, 2) {
		t.Errorf("painted = %v, expected [(3,2)]", painted)
	}
}

func TestGridOutOfBounds(t *testing.T) {
	g := NewGrid(3, nil)

	testCases := []Coord{C(-1, 0), C(0, -1), C(3, 0), C(0, 3), C(3, 3)}
	for _, c := range testCases {
		if g.InBounds(c) {
			t.Errorf("InBounds(%v) should be false", c)
		}
		if _, err := g.Get(c); !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("Get(%v) error = %v", c, err)
		}
		if err := g.Set(c, Tree); !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("Set(%v) error = %v", c, err)
		}
	}
	if _, err := g.Column(3); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("Column(3) error = %v", err)
	}
}

func TestParseGridRoundTrip(t *testing.T) {
	rows := []string{
		"T.F",
		"~TT",
		"..F",
	}
	g, err := ParseGrid(rows, nil)
	if err != nil {
		t.Fatal(err)
	}
	if g.String() != "T.F\n~TT\n..F" {
		t.Errorf("String() = %q", g.String())
	}
	if g.Count(Tree) != 3 || g.Count(Fire) != 2 || g.Count(Soil) != 3 || g.Count(Water) != 1 {
		t.Errorf("unexpected counts in\n%s", g)
	}
}

func TestParseGridErrors(t *testing.T) {
	if _, err := ParseGrid([]string{"TT", "T"}, nil); err == nil {
		t.Error("ragged rows should fail")
	}
	if _, err := ParseGrid([]string{"TX", "TT"}, nil); err == nil {
		t.Error("unknown rune should fail")
	}
	if _, err := ParseGrid(nil, nil); !errors.Is(err, ErrEmptyGrid) {
		t.Errorf("empty rows error = %v, expected ErrEmptyGrid", err)
	}
}

func TestGridCloneIsIndependent(t *testing.T) {
	g := NewGrid(2, nil)
	g.Fill(Tree)
	c := g.Clone()
	_ = g.Set(C(0, 0), Fire)

	if !c.Equal(c) || c.Equal(g) {
		t.Error("clone should not see later writes")
	}
	if st, _ := c.Get(C(0, 0)); st != Tree {
		t.Errorf("clone cell = %v, expected tree", st)
	}
}

func TestCoordNeighborhoodClipping(t *testing.T) {
	g := NewGrid(30, nil)
	inBounds := 0
	for _, c := range C(0, 0).Neighborhood(1) {
		if g.InBounds(c) {
			inBounds++
		}
	}
	if inBounds != 4 {
		t.Errorf("corner neighborhood has %d in-bounds cells, expected 4", inBounds)
	}

	inBounds = 0
	for _, c := range C(0, 10).Neighborhood(1) {
		if g.InBounds(c) {
			inBounds++
		}
	}
	if inBounds != 6 {
		t.Errorf("edge neighborhood has %d in-bounds cells, expected 6", inBounds)
	}
}
