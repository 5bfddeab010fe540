package forestfire

import "github.com/vovakirdan/wildfire/internal/games/forestfire/sim"

// AutoTarget picks the fire an automatic player should douse next: the one
// with the most trees around it, first in row-major order on ties.
// It reports false when nothing is burning.
func AutoTarget(g *sim.Grid) (sim.Coord, bool) {
	var best sim.Coord
	bestTrees := -1

	n := g.Size()
	for y := range n {
		for x := range n {
			c := sim.C(x, y)
			if s, _ := g.Get(c); s != sim.Fire {
				continue
			}
			trees := 0
			for _, nb := range c.Neighbors4() {
				if s, err := g.Get(nb); err == nil && s == sim.Tree {
					trees++
				}
			}
			if trees > bestTrees {
				best, bestTrees = c, trees
			}
		}
	}

	return best, bestTrees >= 0
}
