package sim

// splashRadius makes the splash a 3×3 square.
const splashRadius = 1

// waterOverlay remembers what a splash covered until it is restored.
type waterOverlay struct {
	under map[Coord]CellState
	order []Coord // Covered cells in splash order; restores follow it
	timer TimerID
}

// Suppress splashes water over the 3×3 square centered on center, clipped to
// the grid. Each covered cell remembers its state (a Fire is remembered as
// Soil) and turns to Water. After WaterDelay ticks every cell that is still
// Water gets its remembered state back.
//
// A splash that is still pending is restored immediately and its timer
// cancelled before the new one is applied, so at most one splash is ever
// outstanding.
func (s *Simulation) Suppress(center Coord) error {
	if !s.grid.InBounds(center) {
		_, err := s.grid.Get(center)
		return err
	}

	if s.water.timer != 0 {
		s.host.Scheduler.Cancel(s.water.timer)
		s.restoreWater()
	}

	s.water.under = make(map[Coord]CellState, 9)
	s.water.order = s.water.order[:0]
	for _, c := range center.Neighborhood(splashRadius) {
		if !s.grid.InBounds(c) {
			continue
		}
		under := s.grid.at(c)
		if under == Fire {
			under = Soil
		}
		s.water.under[c] = under
		s.water.order = append(s.water.order, c)
		s.grid.put(c, Water)
	}

	s.water.timer = s.host.Scheduler.After(s.cfg.WaterDelay, s.restoreWater)
	return nil
}

// restoreWater reverts the pending splash. Cells changed since the splash
// are left alone.
func (s *Simulation) restoreWater() {
	for _, c := range s.water.order {
		if s.grid.at(c) == Water {
			s.grid.put(c, s.water.under[c])
		}
	}
	s.water.under = nil
	s.water.order = s.water.order[:0]
	s.water.timer = 0
}
