// Package forestfire adapts the fire simulation to the arcade platform.
// The platform drives it one tick per frame; the simulation's timers run
// on the same tick clock.
package forestfire

import (
	"math/rand"

	"github.com/vovakirdan/wildfire/internal/config"
	"github.com/vovakirdan/wildfire/internal/core"
	"github.com/vovakirdan/wildfire/internal/games/forestfire/sim"
	"github.com/vovakirdan/wildfire/internal/registry"
)

// ID is the registry identifier of the game.
const ID = "forestfire"

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// soundPlayer receives sound effects; nil keeps the game silent.
var soundPlayer sim.SoundPlayer

// SetConfigPath sets a custom config file path.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset by name.
// Unknown names clear the preset so the file's own preset applies.
func SetDifficultyPreset(preset string) {
	difficultyPreset, _ = config.ParsePreset(preset)
}

// SetSoundPlayer installs the sound output used by new games.
func SetSoundPlayer(p sim.SoundPlayer) {
	soundPlayer = p
}

// Game implements registry.Game for the forest fire simulation.
type Game struct {
	cfg     config.ForestFireConfig
	runtime core.RuntimeConfig
	rng     *rand.Rand

	sched *sim.TickScheduler
	sim   *sim.Simulation

	status     string
	cursor     sim.Coord
	lastAction sim.Action
	endedAt    uint64 // Scheduler tick when the run ended, 0 while running

	preset config.DifficultyPreset // Per-instance override of difficultyPreset
	layout layout
	paused bool
}

// New creates a new Forest Fire game.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register(ID, func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Forest Fire"
}

// Reset loads the configuration and starts a fresh forest.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadForestFire(configPath)
	if err != nil {
		cfg = config.DefaultForestFireConfig()
	}

	preset := g.preset
	if preset == "" {
		preset = difficultyPreset
	}
	if preset == "" {
		preset, _ = config.ParsePreset(cfg.Difficulty.Preset)
	}
	config.ApplyForestFirePreset(&cfg, preset)
	g.cfg = cfg

	g.rng = rand.New(rand.NewSource(runtime.Seed))
	g.sched = sim.NewTickScheduler()
	g.status = ""
	g.lastAction = sim.ActionNone
	g.endedAt = 0
	g.paused = false

	host := sim.Host{
		Status:    sim.StatusFunc(func(text string) { g.status = text }),
		Random:    g.rng,
		Scheduler: g.sched,
	}
	if cfg.Sound.Enabled && soundPlayer != nil {
		host.Sounds = soundPlayer
	}

	g.sim = sim.New(SimConfig(cfg), host)
	g.sim.Start()

	n := g.sim.Grid().Size()
	g.cursor = sim.C(n/2, n/2)
	g.layout = computeLayout(runtime.ScreenW, runtime.ScreenH, n)
}

// SimConfig converts a loaded game config into simulation parameters.
func SimConfig(cfg config.ForestFireConfig) sim.Config {
	return sim.Config{
		Size:           cfg.Grid.Size,
		InitialFires:   cfg.Grid.InitialFires,
		SpreadInterval: sim.Ticks(cfg.Timing.SpreadInterval),
		WaterDelay:     sim.Ticks(cfg.Timing.WaterDelay),
	}
}

// SetDifficulty selects a preset for this instance, taking precedence over
// SetDifficultyPreset. It applies from the next Reset.
func (g *Game) SetDifficulty(preset string) {
	g.preset, _ = config.ParsePreset(preset)
}

// Resize adapts the layout to a new screen size and keeps the run going.
func (g *Game) Resize(width, height int) {
	g.runtime.ScreenW = width
	g.runtime.ScreenH = height
	g.layout = computeLayout(width, height, g.sim.Grid().Size())
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	// Handle restart
	if in.Has(core.ActionRestart) && g.sim.Ended() {
		runtime := g.runtime
		runtime.Seed = g.rng.Int63()
		g.Reset(runtime)
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) && !g.sim.Ended() {
		g.paused = !g.paused
	}

	if g.paused || g.layout.tooSmall {
		return core.StepResult{State: g.State()}
	}

	g.moveCursor(in)

	if in.Has(core.ActionConfirm) {
		g.touch(g.cursor)
	}
	for _, p := range in.Touches {
		if c, ok := g.CellAt(p.X, p.Y); ok {
			g.cursor = c
			g.touch(c)
		}
	}

	g.sched.Advance(1)
	if g.sim.Ended() && g.endedAt == 0 {
		g.endedAt = g.sched.Now()
	}

	return core.StepResult{State: g.State()}
}

func (g *Game) moveCursor(in core.InputFrame) {
	n := g.sim.Grid().Size()
	switch {
	case in.Has(core.ActionUp):
		g.cursor.Y--
	case in.Has(core.ActionDown):
		g.cursor.Y++
	case in.Has(core.ActionLeft):
		g.cursor.X--
	case in.Has(core.ActionRight):
		g.cursor.X++
	}
	g.cursor.X = core.Clamp(g.cursor.X, 0, n-1)
	g.cursor.Y = core.Clamp(g.cursor.Y, 0, n-1)
}

func (g *Game) touch(c sim.Coord) {
	action, err := g.sim.Touch(c)
	if err != nil {
		return
	}
	g.lastAction = action
}

// CellAt maps a screen position to the forest cell drawn there.
// It reports false outside the board and in compact layout, where one
// terminal row shows two forest rows.
func (g *Game) CellAt(x, y int) (sim.Coord, bool) {
	if g.layout.tooSmall || g.layout.compact || !g.layout.board.Contains(x, y) {
		return sim.Coord{}, false
	}
	return sim.C((x-g.layout.board.X)/cellWidth, y-g.layout.board.Y), true
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	score := 0
	if g.sim.Outcome() == sim.OutcomeSaved {
		score = g.sim.SavedPercent()
	}
	return core.GameState{
		Score:    score,
		GameOver: g.sim.Ended(),
		Paused:   g.paused,
	}
}

// RunSummary describes the current run for the run history.
func (g *Game) RunSummary() core.RunSummary {
	stats := g.sim.Stats()
	duration := g.endedAt
	if duration == 0 {
		duration = g.sched.Now()
	}
	return core.RunSummary{
		Outcome:       g.sim.Outcome().String(),
		SavedPercent:  g.sim.SavedPercent(),
		Generations:   stats.Generations,
		Extinguished:  stats.Extinguished,
		Firebreaks:    stats.Firebreaks,
		Seed:          g.runtime.Seed,
		DurationTicks: duration,
	}
}

// Simulation exposes the running simulation.
func (g *Game) Simulation() *sim.Simulation {
	return g.sim
}
