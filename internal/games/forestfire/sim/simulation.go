package sim

import (
	"fmt"
	"math"
	"math/rand"
)

// Default configuration values.
const (
	DefaultSize           = 30
	DefaultInitialFires   = 6
	DefaultSpreadInterval = Ticks(60)  // One generation per second at 60 ticks/s
	DefaultWaterDelay     = Ticks(150) // Splash lasts two and a half seconds
)

// Status messages shown through StatusDisplay.
const (
	MessageStart = "Put out the Fire!"
	MessageLost  = "The forest is gone."
)

// MessageSaved formats the status line for a saved forest.
func MessageSaved(percent int) string {
	return fmt.Sprintf("Forest saved: (%d%%)", percent)
}

// Config holds the simulation parameters.
type Config struct {
	Size           int   // Side length N of the square grid
	InitialFires   int   // Fires seeded at Start; seeds may land on the same cell
	SpreadInterval Ticks // Ticks between generations
	WaterDelay     Ticks // Ticks a water splash stays before restoring
}

// DefaultConfig returns the classic 30×30 setup.
func DefaultConfig() Config {
	return Config{
		Size:           DefaultSize,
		InitialFires:   DefaultInitialFires,
		SpreadInterval: DefaultSpreadInterval,
		WaterDelay:     DefaultWaterDelay,
	}
}

// withDefaults replaces non-positive sizes and intervals with defaults.
// Zero InitialFires is kept (a forest that is saved on the first
// generation); only a negative count falls back to the default.
func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.Size <= 0 {
		c.Size = d.Size
	}
	if c.InitialFires < 0 {
		c.InitialFires = d.InitialFires
	}
	if c.SpreadInterval <= 0 {
		c.SpreadInterval = d.SpreadInterval
	}
	if c.WaterDelay <= 0 {
		c.WaterDelay = d.WaterDelay
	}
	return c
}

// Status is the lifecycle state of a run.
type Status int

const (
	StatusRunning Status = iota
	StatusEnded
)

// Outcome is how a run ended.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeSaved
	OutcomeLost
)

// String returns "none", "saved" or "lost".
func (o Outcome) String() string {
	switch o {
	case OutcomeSaved:
		return "saved"
	case OutcomeLost:
		return "lost"
	default:
		return "none"
	}
}

// Stats counts what happened during a run.
type Stats struct {
	Generations  int // Spread ticks processed while running
	Ignitions    int // Trees set on fire by spreading
	Extinguished int // Fires put out by the player
	Firebreaks   int // Columns cleared by the player
	TreesCleared int // Trees removed by firebreaks
}

// Simulation is the whole mutable state of one run. All operations must be
// called from a single goroutine, the same one that advances the Scheduler.
type Simulation struct {
	cfg  Config
	host Host
	grid *Grid

	status  Status
	outcome Outcome
	percent int // Trees left as a percentage of all cells, set when saved

	spreadTimer TimerID
	water       waterOverlay

	stats Stats
}

// New creates a simulation. Call Start to populate the grid.
func New(cfg Config, host Host) *Simulation {
	cfg = cfg.withDefaults()
	if host.Sounds == nil {
		host.Sounds = nopSounds{}
	}
	if host.Status == nil {
		host.Status = nopStatus{}
	}
	if host.Random == nil {
		host.Random = rand.New(rand.NewSource(1))
	}
	if host.Scheduler == nil {
		host.Scheduler = NewTickScheduler()
	}
	return &Simulation{
		cfg:  cfg,
		host: host,
		grid: NewGrid(cfg.Size, host.Painter),
	}
}

// NewFromGrid creates a running simulation over an existing grid without
// seeding fires or starting the spread timer. Used for scripted scenarios;
// the grid's painter is kept and its size overrides cfg.Size.
func NewFromGrid(g *Grid, cfg Config, host Host) (*Simulation, error) {
	if g.Size() <= 0 {
		return nil, ErrEmptyGrid
	}
	s := New(cfg, host)
	s.cfg.Size = g.Size()
	s.grid = g
	return s, nil
}

// Start fills the grid with trees, seeds the initial fires and starts the
// spread timer.
func (s *Simulation) Start() {
	s.grid.Fill(Tree)
	for range s.cfg.InitialFires {
		x := s.host.Random.Intn(s.cfg.Size)
		y := s.host.Random.Intn(s.cfg.Size)
		s.grid.put(C(x, y), Fire)
	}
	s.StartSpreading()
	s.host.Status.SetStatus(MessageStart)
}

// StartSpreading starts the periodic spread timer if it is not running.
func (s *Simulation) StartSpreading() {
	if s.spreadTimer != 0 || s.status == StatusEnded {
		return
	}
	s.spreadTimer = s.host.Scheduler.Every(s.cfg.SpreadInterval, func() {
		s.Spread()
	})
}

// Config returns the normalised configuration.
func (s *Simulation) Config() Config {
	return s.cfg
}

// Grid returns the live grid. Callers must not write to it directly.
func (s *Simulation) Grid() *Grid {
	return s.grid
}

// Status returns whether the run is still going.
func (s *Simulation) Status() Status {
	return s.status
}

// Ended returns true once the run reached an outcome.
func (s *Simulation) Ended() bool {
	return s.status == StatusEnded
}

// Outcome returns how the run ended, or OutcomeNone while running.
func (s *Simulation) Outcome() Outcome {
	return s.outcome
}

// SavedPercent returns the share of cells still holding trees when the forest
// was saved, rounded half away from zero. Zero unless saved.
func (s *Simulation) SavedPercent() int {
	return s.percent
}

// Stats returns the run counters.
func (s *Simulation) Stats() Stats {
	return s.stats
}

// WaterPending reports whether a splash is waiting to be restored.
func (s *Simulation) WaterPending() bool {
	return s.water.timer != 0
}

// end moves the run to its terminal state. Only the first call has effect.
func (s *Simulation) end(outcome Outcome, trees int) {
	if s.status == StatusEnded {
		return
	}
	s.status = StatusEnded
	s.outcome = outcome
	if s.spreadTimer != 0 {
		s.host.Scheduler.Cancel(s.spreadTimer)
		s.spreadTimer = 0
	}

	switch outcome {
	case OutcomeSaved:
		total := s.cfg.Size * s.cfg.Size
		s.percent = int(math.Round(float64(trees) / float64(total) * 100))
		s.host.Sounds.Play(SoundTada)
		s.host.Status.SetStatus(MessageSaved(s.percent))
	case OutcomeLost:
		s.host.Status.SetStatus(MessageLost)
	}
}

// Snapshot captures the observable state for determinism checks.
type Snapshot struct {
	Grid    string
	Status  Status
	Outcome Outcome
	Percent int
	Stats   Stats
	Water   int // Cells held by the pending splash
}

// Snapshot returns the current snapshot.
func (s *Simulation) Snapshot() Snapshot {
	return Snapshot{
		Grid:    s.grid.String(),
		Status:  s.status,
		Outcome: s.outcome,
		Percent: s.percent,
		Stats:   s.stats,
		Water:   len(s.water.under),
	}
}
