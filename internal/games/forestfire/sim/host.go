package sim

// Painter receives every cell write so the host can update its visuals.
type Painter interface {
	Paint(c Coord, s CellState)
}

// Sound identifies a sound effect the simulation asks the host to play.
type Sound int

const (
	SoundBlast1 Sound = iota // Fire spreads (four variants)
	SoundBlast2
	SoundBlast3
	SoundBlast4
	SoundDrip // A fire is put out
	SoundPop  // A firebreak is cut
	SoundTada // The forest is saved
)

// SpreadSounds are the variants picked at random when fire spreads.
var SpreadSounds = [4]Sound{SoundBlast1, SoundBlast2, SoundBlast3, SoundBlast4}

// String returns the sound's asset-style name.
func (s Sound) String() string {
	switch s {
	case SoundBlast1:
		return "fx_blast1"
	case SoundBlast2:
		return "fx_blast2"
	case SoundBlast3:
		return "fx_blast3"
	case SoundBlast4:
		return "fx_blast4"
	case SoundDrip:
		return "fx_drip2"
	case SoundPop:
		return "fx_pop"
	case SoundTada:
		return "fx_tada"
	default:
		return "fx_unknown"
	}
}

// SoundPlayer plays sound effects. Play must not block.
type SoundPlayer interface {
	Play(s Sound)
}

// StatusDisplay shows a single line of user-facing text.
type StatusDisplay interface {
	SetStatus(text string)
}

// Random draws uniform integers in [0, n). *math/rand.Rand satisfies it.
type Random interface {
	Intn(n int) int
}

// Host bundles the capabilities a Simulation consumes.
// Nil fields are replaced with no-op implementations, except Random and
// Scheduler which New fills with a fixed-seed source and a TickScheduler.
type Host struct {
	Painter   Painter
	Sounds    SoundPlayer
	Status    StatusDisplay
	Random    Random
	Scheduler Scheduler
}

type nopPainter struct{}

func (nopPainter) Paint(Coord, CellState) {}

type nopSounds struct{}

func (nopSounds) Play(Sound) {}

type nopStatus struct{}

func (nopStatus) SetStatus(string) {}

// PainterFunc adapts a function to Painter.
type PainterFunc func(c Coord, s CellState)

// Paint calls f(c, s).
func (f PainterFunc) Paint(c Coord, s CellState) { f(c, s) }

// SoundFunc adapts a function to SoundPlayer.
type SoundFunc func(s Sound)

// Play calls f(s).
func (f SoundFunc) Play(s Sound) { f(s) }

// StatusFunc adapts a function to StatusDisplay.
type StatusFunc func(text string)

// SetStatus calls f(text).
func (f StatusFunc) SetStatus(text string) { f(text) }
