package forestfire

import "github.com/vovakirdan/wildfire/internal/games/forestfire/sim"

// Snapshot captures the complete game state for determinism testing.
type Snapshot struct {
	Tick   uint64
	Cursor sim.Coord
	Paused bool
	Status string
	Sim    sim.Snapshot
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:   g.sched.Now(),
		Cursor: g.cursor,
		Paused: g.paused,
		Status: g.status,
		Sim:    g.sim.Snapshot(),
	}
}
