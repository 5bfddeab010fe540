package sim

// Action is what a touch did.
type Action int

const (
	ActionNone       Action = iota // Soil or Water: nothing happens
	ActionIgnored                  // The run has ended
	ActionExtinguish               // A fire was put out and water splashed
	ActionFirebreak                // A column of trees was cleared
)

// String returns a short name for the action.
func (a Action) String() string {
	switch a {
	case ActionIgnored:
		return "ignored"
	case ActionExtinguish:
		return "extinguish"
	case ActionFirebreak:
		return "firebreak"
	default:
		return "none"
	}
}

// Touch applies a player press on cell c.
//
//   - Fire: the cell becomes Soil, a drip plays and water splashes around it.
//   - Tree: a pop plays and every Tree in column c.X becomes Soil. Other cells
//     in the column are untouched.
//   - Soil, Water: nothing.
//
// After the run has ended every touch is ignored.
func (s *Simulation) Touch(c Coord) (Action, error) {
	if s.status == StatusEnded {
		return ActionIgnored, nil
	}

	state, err := s.grid.Get(c)
	if err != nil {
		return ActionNone, err
	}

	switch state {
	case Fire:
		s.grid.put(c, Soil)
		s.host.Sounds.Play(SoundDrip)
		s.stats.Extinguished++
		if err := s.Suppress(c); err != nil {
			return ActionExtinguish, err
		}
		return ActionExtinguish, nil

	case Tree:
		s.host.Sounds.Play(SoundPop)
		s.stats.Firebreaks++
		for y := 0; y < s.grid.Size(); y++ {
			cc := C(c.X, y)
			if s.grid.at(cc) == Tree {
				s.grid.put(cc, Soil)
				s.stats.TreesCleared++
			}
		}
		return ActionFirebreak, nil
	}

	return ActionNone, nil
}
