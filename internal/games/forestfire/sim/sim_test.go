package sim

import (
	"errors"
	"math/rand"
	"testing"
)

// fixedRandom returns vals in order, cycling.
type fixedRandom struct {
	vals []int
	i    int
}

func (r *fixedRandom) Intn(n int) int {
	v := r.vals[r.i%len(r.vals)] % n
	r.i++
	return v
}

// recorder captures host side effects.
type recorder struct {
	sounds []Sound
	status []string
	paints int
}

func (r *recorder) host(sched Scheduler) Host {
	return Host{
		Painter:   PainterFunc(func(Coord, CellState) { r.paints++ }),
		Sounds:    SoundFunc(func(s Sound) { r.sounds = append(r.sounds, s) }),
		Status:    StatusFunc(func(text string) { r.status = append(r.status, text) }),
		Random:    &fixedRandom{vals: []int{0}},
		Scheduler: sched,
	}
}

func mustGrid(t *testing.T, rows ...string) *Grid {
	t.Helper()
	g, err := ParseGrid(rows, nil)
	if err != nil {
		t.Fatalf("ParseGrid() failed: %v", err)
	}
	return g
}

func scenario(t *testing.T, rows ...string) (*Simulation, *TickScheduler, *recorder) {
	t.Helper()
	sched := NewTickScheduler()
	rec := &recorder{}
	s, err := NewFromGrid(mustGrid(t, rows...), DefaultConfig(), rec.host(sched))
	if err != nil {
		t.Fatalf("NewFromGrid() failed: %v", err)
	}
	return s, sched, rec
}

func TestSpreadIgnitesOrthogonalNeighbors(t *testing.T) {
	s, _, rec := scenario(t,
		"TTT",
		"TFT",
		"TTT",
	)

	report := s.Spread()

	want := mustGrid(t,
		"TFT",
		"FFF",
		"TFT",
	)
	if !s.Grid().Equal(want) {
		t.Errorf("after one tick:\n%s\nexpected:\n%s", s.Grid(), want)
	}
	if len(report.Ignited) != 4 {
		t.Errorf("expected 4 ignitions, got %d", len(report.Ignited))
	}
	if report.Trees != 4 || report.Fires != 5 {
		t.Errorf("expected 4 trees and 5 fires, got %d and %d", report.Trees, report.Fires)
	}
	if len(rec.sounds) != 1 || rec.sounds[0] != SoundBlast1 {
		t.Errorf("expected one blast sound, got %v", rec.sounds)
	}
	if s.Ended() {
		t.Error("run should still be going")
	}
}

func TestSpreadIsSynchronous(t *testing.T) {
	s, _, _ := scenario(t,
		"FTTTT",
		".....",
		".....",
		".....",
		".....",
	)

	s.Spread()
	if got, _ := s.Grid().Get(C(2, 0)); got != Tree {
		t.Fatalf("tree two hops away burned after one tick: %v", got)
	}
	if got, _ := s.Grid().Get(C(1, 0)); got != Fire {
		t.Fatalf("adjacent tree should burn after one tick, got %v", got)
	}

	s.Spread()
	if got, _ := s.Grid().Get(C(2, 0)); got != Fire {
		t.Errorf("tree two hops away should burn after two ticks, got %v", got)
	}
	if got, _ := s.Grid().Get(C(3, 0)); got != Tree {
		t.Errorf("tree three hops away should still stand, got %v", got)
	}
}

func TestSpreadIdempotentAtFixedPoint(t *testing.T) {
	s, _, rec := scenario(t,
		"F.T",
		"..T",
		"~.T",
	)

	before := s.Grid().Clone()
	first := s.Spread()
	second := s.Spread()

	if !s.Grid().Equal(before) {
		t.Errorf("grid changed without burnable trees:\n%s", s.Grid())
	}
	if len(first.Ignited) != 0 || len(second.Ignited) != 0 {
		t.Error("no tree should ignite")
	}
	if len(rec.sounds) != 0 {
		t.Errorf("no sound expected without ignition, got %v", rec.sounds)
	}
}

func TestSpreadDoesNotCrossWaterOrSoil(t *testing.T) {
	s, _, _ := scenario(t,
		"F~T",
		".TT",
		"TTT",
	)

	s.Spread()
	if got, _ := s.Grid().Get(C(2, 0)); got != Tree {
		t.Errorf("fire jumped over water: %v", got)
	}
	if got, _ := s.Grid().Get(C(1, 1)); got != Tree {
		t.Errorf("diagonal tree should not ignite: %v", got)
	}
}

func TestSpreadSoundChoice(t *testing.T) {
	s, _, rec := scenario(t,
		"FT",
		"..",
	)
	s.host.Random = &fixedRandom{vals: []int{3}}

	s.Spread()
	if len(rec.sounds) != 1 || rec.sounds[0] != SoundBlast4 {
		t.Errorf("expected blast 4, got %v", rec.sounds)
	}
}

func TestSpreadOutcomes(t *testing.T) {
	tests := []struct {
		name    string
		rows    []string
		outcome Outcome
		percent int
		status  string
	}{
		{
			name:    "no fire left",
			rows:    []string{"TT.", "...", "..."},
			outcome: OutcomeSaved,
			percent: 22,
			status:  "Forest saved: (22%)",
		},
		{
			name:    "no fire and no tree",
			rows:    []string{"...", ".~.", "..."},
			outcome: OutcomeSaved,
			percent: 0,
			status:  "Forest saved: (0%)",
		},
		{
			name:    "no tree left",
			rows:    []string{"F..", "...", "..."},
			outcome: OutcomeLost,
			status:  MessageLost,
		},
		{
			name:    "last trees burn this tick",
			rows:    []string{"FT.", "T..", "..."},
			outcome: OutcomeLost,
			status:  MessageLost,
		},
		{
			name:    "still burning",
			rows:    []string{"F.T", "...", "..."},
			outcome: OutcomeNone,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s, _, rec := scenario(t, tc.rows...)
			report := s.Spread()

			if report.Outcome != tc.outcome || s.Outcome() != tc.outcome {
				t.Fatalf("outcome = %v (report %v), expected %v", s.Outcome(), report.Outcome, tc.outcome)
			}
			if s.SavedPercent() != tc.percent {
				t.Errorf("percent = %d, expected %d", s.SavedPercent(), tc.percent)
			}
			if tc.outcome == OutcomeNone {
				if s.Ended() {
					t.Error("run should not have ended")
				}
				return
			}
			if !s.Ended() {
				t.Error("run should have ended")
			}
			if len(rec.status) == 0 || rec.status[len(rec.status)-1] != tc.status {
				t.Errorf("status = %v, expected last %q", rec.status, tc.status)
			}
			gotTada := len(rec.sounds) > 0 && rec.sounds[len(rec.sounds)-1] == SoundTada
			if gotTada != (tc.outcome == OutcomeSaved) {
				t.Errorf("tada played = %v for outcome %v", gotTada, tc.outcome)
			}
		})
	}
}

func TestEndedRunIsFrozen(t *testing.T) {
	s, _, rec := scenario(t,
		"F..",
		"...",
		"...",
	)
	s.Spread()
	if !s.Ended() {
		t.Fatal("expected the forest to be lost")
	}
	statusCount := len(rec.status)
	before := s.Grid().Clone()

	report := s.Spread()
	if report.Outcome != OutcomeLost || s.Stats().Generations != 1 {
		t.Errorf("spread after end should be a no-op, stats %+v", s.Stats())
	}

	action, err := s.Touch(C(0, 0))
	if err != nil || action != ActionIgnored {
		t.Errorf("Touch after end = %v, %v; expected ignored", action, err)
	}
	if !s.Grid().Equal(before) || len(rec.status) != statusCount {
		t.Error("ended run must not change")
	}
}

func TestTouchFireSplashesCorner(t *testing.T) {
	s, sched, rec := scenario(t,
		"FTT",
		"TTT",
		"TTF",
	)

	action, err := s.Touch(C(0, 0))
	if err != nil {
		t.Fatalf("Touch() failed: %v", err)
	}
	if action != ActionExtinguish {
		t.Fatalf("action = %v, expected extinguish", action)
	}
	if len(rec.sounds) != 1 || rec.sounds[0] != SoundDrip {
		t.Errorf("expected drip, got %v", rec.sounds)
	}

	splashed := mustGrid(t,
		"~~T",
		"~~T",
		"TTF",
	)
	if !s.Grid().Equal(splashed) {
		t.Fatalf("after splash:\n%s\nexpected:\n%s", s.Grid(), splashed)
	}
	if s.Grid().Count(Water) != 4 {
		t.Errorf("corner splash should cover 4 cells, got %d", s.Grid().Count(Water))
	}

	sched.Advance(int(s.Config().WaterDelay) - 1)
	if s.Grid().Count(Water) != 4 {
		t.Fatal("splash restored too early")
	}

	sched.Advance(1)
	restored := mustGrid(t,
		".TT",
		"TTT",
		"TTF",
	)
	if !s.Grid().Equal(restored) {
		t.Errorf("after restore:\n%s\nexpected:\n%s", s.Grid(), restored)
	}
	if s.WaterPending() {
		t.Error("no splash should be pending")
	}
	if s.Stats().Extinguished != 1 {
		t.Errorf("extinguished = %d, expected 1", s.Stats().Extinguished)
	}
}

func TestSuppressRemembersFireAsSoil(t *testing.T) {
	s, sched, _ := scenario(t,
		"TFT",
		"FTF",
		"TFT",
	)

	if err := s.Suppress(C(1, 1)); err != nil {
		t.Fatalf("Suppress() failed: %v", err)
	}
	if s.Grid().Count(Water) != 9 {
		t.Fatalf("center splash should cover 9 cells, got %d", s.Grid().Count(Water))
	}

	sched.Advance(int(s.Config().WaterDelay))
	want := mustGrid(t,
		"T.T",
		".T.",
		"T.T",
	)
	if !s.Grid().Equal(want) {
		t.Errorf("after restore:\n%s\nexpected:\n%s", s.Grid(), want)
	}
}

func TestSuppressPreemptsPendingSplash(t *testing.T) {
	s, sched, _ := scenario(t,
		"TTTTT",
		"TTTTT",
		"TTTTT",
		"TTTTT",
		"TTTTT",
	)

	if err := s.Suppress(C(0, 0)); err != nil {
		t.Fatal(err)
	}
	sched.Advance(100)

	if err := s.Suppress(C(4, 4)); err != nil {
		t.Fatal(err)
	}

	// First splash is restored immediately, second applied.
	want := mustGrid(t,
		"TTTTT",
		"TTTTT",
		"TTTTT",
		"TTT~~",
		"TTT~~",
	)
	if !s.Grid().Equal(want) {
		t.Fatalf("after second splash:\n%s\nexpected:\n%s", s.Grid(), want)
	}
	if sched.Pending() != 1 {
		t.Errorf("expected one pending timer, got %d", sched.Pending())
	}

	// The first splash's timer would have fired here.
	sched.Advance(int(s.Config().WaterDelay) - 100)
	if s.Grid().Count(Water) != 4 {
		t.Error("cancelled timer must not restore the second splash")
	}

	sched.Advance(100)
	if s.Grid().Count(Water) != 0 || s.Grid().Count(Tree) != 25 {
		t.Errorf("expected all trees back:\n%s", s.Grid())
	}
}

func TestSuppressOverlappingSplashes(t *testing.T) {
	s, sched, _ := scenario(t,
		"FTT",
		"TTT",
		"TTT",
	)

	_ = s.Suppress(C(0, 0))
	_ = s.Suppress(C(1, 1))
	sched.Advance(int(s.Config().WaterDelay))

	// The second splash saw the restored cells, so the fire comes back as soil.
	want := mustGrid(t,
		".TT",
		"TTT",
		"TTT",
	)
	if !s.Grid().Equal(want) {
		t.Errorf("after overlapping splashes:\n%s\nexpected:\n%s", s.Grid(), want)
	}
}

func TestRestoreSkipsChangedCells(t *testing.T) {
	s, sched, _ := scenario(t,
		"TTT",
		"TTT",
		"TTT",
	)

	_ = s.Suppress(C(1, 1))
	if err := s.Grid().Set(C(0, 0), Fire); err != nil {
		t.Fatal(err)
	}
	sched.Advance(int(s.Config().WaterDelay))

	if got, _ := s.Grid().Get(C(0, 0)); got != Fire {
		t.Errorf("cell changed during splash should be kept, got %v", got)
	}
	if s.Grid().Count(Tree) != 8 {
		t.Errorf("other cells should be restored, trees = %d", s.Grid().Count(Tree))
	}
}

func TestTouchTreeClearsColumn(t *testing.T) {
	s, _, rec := scenario(t,
		"TFT",
		"T~T",
		"TTT",
	)

	action, err := s.Touch(C(1, 2))
	if err != nil {
		t.Fatal(err)
	}
	if action != ActionFirebreak {
		t.Fatalf("action = %v, expected firebreak", action)
	}
	want := mustGrid(t,
		"TFT",
		"T~T",
		"T.T",
	)
	if !s.Grid().Equal(want) {
		t.Errorf("after firebreak:\n%s\nexpected:\n%s", s.Grid(), want)
	}
	if len(rec.sounds) != 1 || rec.sounds[0] != SoundPop {
		t.Errorf("expected pop, got %v", rec.sounds)
	}
}

func TestFirebreakSweepsWholeColumn(t *testing.T) {
	s, _, _ := scenario(t,
		"TTTT",
		"TFTT",
		"TTTT",
		"T~TT",
	)

	if _, err := s.Touch(C(1, 0)); err != nil {
		t.Fatal(err)
	}

	col, err := s.Grid().Column(1)
	if err != nil {
		t.Fatal(err)
	}
	expected := []CellState{Soil, Fire, Soil, Water}
	for y, st := range col {
		if st != expected[y] {
			t.Errorf("column 1 row %d = %v, expected %v", y, st, expected[y])
		}
	}
	if s.Stats().TreesCleared != 2 || s.Stats().Firebreaks != 1 {
		t.Errorf("stats = %+v", s.Stats())
	}
	if s.Grid().Count(Tree) != 12 {
		t.Errorf("other columns must keep their trees, got %d", s.Grid().Count(Tree))
	}
}

func TestTouchSoilAndWaterDoNothing(t *testing.T) {
	s, sched, rec := scenario(t,
		".~",
		"TT",
	)
	before := s.Grid().Clone()

	for _, c := range []Coord{C(0, 0), C(1, 0)} {
		action, err := s.Touch(c)
		if err != nil || action != ActionNone {
			t.Errorf("Touch(%v) = %v, %v; expected none", c, action, err)
		}
	}
	if !s.Grid().Equal(before) || len(rec.sounds) != 0 || sched.Pending() != 0 {
		t.Error("touching soil or water must have no effect")
	}
}

func TestTouchOutOfBounds(t *testing.T) {
	s, _, _ := scenario(t,
		"TT",
		"TT",
	)

	for _, c := range []Coord{C(-1, 0), C(0, -1), C(2, 0), C(0, 2)} {
		if _, err := s.Touch(c); !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("Touch(%v) error = %v, expected ErrOutOfBounds", c, err)
		}
		if err := s.Suppress(c); !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("Suppress(%v) error = %v, expected ErrOutOfBounds", c, err)
		}
	}
}

func TestStartSeedsFiresAndStartsTimer(t *testing.T) {
	sched := NewTickScheduler()
	rec := &recorder{}
	host := rec.host(sched)
	host.Random = rand.New(rand.NewSource(7))

	s := New(DefaultConfig(), host)
	s.Start()

	n := s.Grid().Size()
	if n != DefaultSize {
		t.Fatalf("size = %d, expected %d", n, DefaultSize)
	}
	fires := s.Grid().Count(Fire)
	if fires < 1 || fires > DefaultInitialFires {
		t.Errorf("fires = %d, expected 1..%d", fires, DefaultInitialFires)
	}
	if fires+s.Grid().Count(Tree) != n*n {
		t.Error("every cell should be tree or fire after Start")
	}
	if len(rec.status) != 1 || rec.status[0] != MessageStart {
		t.Errorf("status = %v, expected start message", rec.status)
	}
	if sched.Pending() != 1 {
		t.Errorf("expected the spread timer, got %d timers", sched.Pending())
	}

	sched.Advance(int(DefaultSpreadInterval) - 1)
	if s.Stats().Generations != 0 {
		t.Fatal("spread ran before its interval")
	}
	sched.Advance(1)
	if s.Stats().Generations != 1 {
		t.Errorf("generations = %d, expected 1", s.Stats().Generations)
	}
}

func TestUnattendedForestBurnsDown(t *testing.T) {
	sched := NewTickScheduler()
	s := New(DefaultConfig(), Host{
		Random:    rand.New(rand.NewSource(42)),
		Scheduler: sched,
	})
	s.Start()

	// Fire needs at most 2N generations to cross the grid.
	sched.Advance(int(DefaultSpreadInterval) * 2 * DefaultSize)

	if s.Outcome() != OutcomeLost {
		t.Fatalf("outcome = %v, expected lost", s.Outcome())
	}
	if sched.Pending() != 0 {
		t.Errorf("spread timer should be stopped, %d pending", sched.Pending())
	}
	gens := s.Stats().Generations
	sched.Advance(int(DefaultSpreadInterval) * 5)
	if s.Stats().Generations != gens {
		t.Error("no generations after the end")
	}
}

func TestDeterminism(t *testing.T) {
	run := func() Snapshot {
		sched := NewTickScheduler()
		s := New(DefaultConfig(), Host{
			Random:    rand.New(rand.NewSource(12345)),
			Scheduler: sched,
		})
		s.Start()
		for i := 0; i < 600; i++ {
			if i%90 == 0 {
				for x := 0; x < s.Grid().Size(); x++ {
					if st, _ := s.Grid().Get(C(x, x)); st == Fire {
						_, _ = s.Touch(C(x, x))
						break
					}
				}
			}
			sched.Advance(1)
		}
		return s.Snapshot()
	}

	a, b := run(), run()
	if a != b {
		t.Errorf("same seed produced different runs:\n%+v\n%+v", a, b)
	}
}

func TestConfigZeroValues(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want Config
	}{
		{
			name: "zero value keeps zero fires",
			cfg:  Config{},
			want: Config{Size: DefaultSize, InitialFires: 0, SpreadInterval: DefaultSpreadInterval, WaterDelay: DefaultWaterDelay},
		},
		{
			name: "negative fires fall back",
			cfg:  Config{Size: 10, InitialFires: -1, SpreadInterval: -5, WaterDelay: 20},
			want: Config{Size: 10, InitialFires: DefaultInitialFires, SpreadInterval: DefaultSpreadInterval, WaterDelay: 20},
		},
		{
			name: "explicit values kept",
			cfg:  Config{Size: 8, InitialFires: 3, SpreadInterval: 10, WaterDelay: 5},
			want: Config{Size: 8, InitialFires: 3, SpreadInterval: 10, WaterDelay: 5},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := New(tt.cfg, Host{}).Config(); got != tt.want {
				t.Errorf("Config() = %+v, expected %+v", got, tt.want)
			}
		})
	}
}

func TestZeroFiresSavedOnFirstGeneration(t *testing.T) {
	sched := NewTickScheduler()
	rec := &recorder{}
	s := New(Config{Size: 4}, rec.host(sched))
	s.Start()

	if got := s.Grid().Count(Tree); got != 16 {
		t.Fatalf("trees = %d, expected 16", got)
	}

	sched.Advance(int(DefaultSpreadInterval))
	if s.Outcome() != OutcomeSaved || s.SavedPercent() != 100 {
		t.Errorf("outcome = %v (%d%%), expected saved at 100%%", s.Outcome(), s.SavedPercent())
	}
	if last := rec.status[len(rec.status)-1]; last != MessageSaved(100) {
		t.Errorf("status = %q, expected %q", last, MessageSaved(100))
	}
}

func TestNewFromGridUsesGridSize(t *testing.T) {
	s, _, _ := scenario(t,
		"T.",
		"..",
	)
	if s.Config().Size != 2 {
		t.Fatalf("config size = %d, expected 2", s.Config().Size)
	}

	s.Spread()
	if s.Outcome() != OutcomeSaved || s.SavedPercent() != 25 {
		t.Errorf("outcome = %v (%d%%), expected saved at 25%%", s.Outcome(), s.SavedPercent())
	}
}

func TestNewFromGridRejectsEmptyGrid(t *testing.T) {
	s, err := NewFromGrid(NewGrid(0, nil), DefaultConfig(), Host{})
	if !errors.Is(err, ErrEmptyGrid) {
		t.Errorf("error = %v, expected ErrEmptyGrid", err)
	}
	if s != nil {
		t.Error("expected no simulation for an empty grid")
	}
}

func TestRestorePaintsInSplashOrder(t *testing.T) {
	tests := []struct {
		name   string
		center Coord
	}{
		{"middle", C(1, 1)},
		{"corner", C(0, 0)},
		{"edge", C(2, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var want []Coord
			for _, c := range tt.center.Neighborhood(1) {
				if c.X >= 0 && c.X < 3 && c.Y >= 0 && c.Y < 3 {
					want = append(want, c)
				}
			}

			// Map order would differ between attempts; the paint order must not.
			for attempt := range 10 {
				var painted []Coord
				g, err := ParseGrid([]string{"TTT", "TTT", "TTT"},
					PainterFunc(func(c Coord, _ CellState) { painted = append(painted, c) }))
				if err != nil {
					t.Fatalf("ParseGrid() failed: %v", err)
				}
				sched := NewTickScheduler()
				s, err := NewFromGrid(g, DefaultConfig(), Host{Scheduler: sched})
				if err != nil {
					t.Fatalf("NewFromGrid() failed: %v", err)
				}

				if err := s.Suppress(tt.center); err != nil {
					t.Fatalf("Suppress() failed: %v", err)
				}
				painted = nil
				sched.Advance(int(DefaultWaterDelay))

				if len(painted) != len(want) {
					t.Fatalf("attempt %d: %d restore paints, expected %d", attempt, len(painted), len(want))
				}
				for i := range want {
					if painted[i] != want[i] {
						t.Fatalf("attempt %d: paint %d at %v, expected %v", attempt, i, painted[i], want[i])
					}
				}
			}
		})
	}
}
