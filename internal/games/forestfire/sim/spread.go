package sim

// TickReport describes one generation.
type TickReport struct {
	Ignited []Coord // Trees that caught fire this generation, in scan order
	Trees   int     // Trees left after ignition
	Fires   int     // Fires left after ignition
	Outcome Outcome // Set on the generation that ended the run
}

// Spread advances the fire by one generation.
//
// Every Tree orthogonally adjacent to a Fire ignites. The grid is scanned in
// full before anything is written, so a tree lit this generation does not
// spread until the next one. Fire never burns out on its own; only the
// player removes it.
//
// After ignition the run ends as saved when no fire is left, or as lost when
// no tree is left. Saved is checked first. Once ended, Spread does nothing.
func (s *Simulation) Spread() TickReport {
	if s.status == StatusEnded {
		return TickReport{Outcome: s.outcome}
	}
	s.stats.Generations++

	ignite := s.collectIgnitions()
	for _, c := range ignite {
		s.grid.put(c, Fire)
	}
	s.stats.Ignitions += len(ignite)

	if len(ignite) > 0 {
		s.host.Sounds.Play(SpreadSounds[s.host.Random.Intn(len(SpreadSounds))])
	}

	report := TickReport{
		Ignited: ignite,
		Trees:   s.grid.Count(Tree),
		Fires:   s.grid.Count(Fire),
	}

	switch {
	case report.Fires == 0:
		s.end(OutcomeSaved, report.Trees)
		report.Outcome = OutcomeSaved
	case report.Trees == 0:
		s.end(OutcomeLost, report.Trees)
		report.Outcome = OutcomeLost
	}

	return report
}

// collectIgnitions returns the trees next to fire without modifying the grid.
// Each tree appears once even if several fires touch it.
func (s *Simulation) collectIgnitions() []Coord {
	n := s.grid.Size()
	var out []Coord
	seen := make(map[Coord]struct{})

	for x := 0; x < n; x++ {
		for y := 0; y < n; y++ {
			c := C(x, y)
			if s.grid.at(c) != Fire {
				continue
			}
			for _, nb := range c.Neighbors4() {
				if !s.grid.InBounds(nb) || s.grid.at(nb) != Tree {
					continue
				}
				if _, dup := seen[nb]; dup {
					continue
				}
				seen[nb] = struct{}{}
				out = append(out, nb)
			}
		}
	}
	return out
}
