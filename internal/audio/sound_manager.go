// Package audio plays the game's sound effects through the system speaker.
// Every effect is synthesized, so no sound files ship with the binary.
package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/wildfire/internal/games/forestfire/sim"
)

const (
	sampleRate = beep.SampleRate(44100)
)

// SoundManager mixes fire-and-forget effects into one speaker stream.
// It implements sim.SoundPlayer; calls before Initialize are ignored.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	seed        int64
	initialized bool
}

// NewSoundManager creates a sound manager with the given volume (0.0 - 1.0).
func NewSoundManager(volume float64) *SoundManager {
	return &SoundManager{
		mixer:  &beep.Mixer{},
		volume: math.Max(0, math.Min(volume, 1)),
		seed:   time.Now().UnixNano(),
	}
}

// Initialize sets up the audio system
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()

	// beep has no way to close the speaker; an empty mixer keeps it silent.
	sm.initialized = false
}

// Play starts a sound effect without waiting for it to finish.
func (sm *SoundManager) Play(s sim.Sound) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	streamer := sm.streamer(s)
	if streamer == nil {
		return
	}

	speaker.Lock()
	sm.mixer.Add(newVolume(streamer, sm.volume))
	speaker.Unlock()
}

// Streamer builds the finite stream for a sound at full volume.
// Unknown sounds return nil.
func (sm *SoundManager) Streamer(s sim.Sound) beep.Streamer {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.streamer(s)
}

func (sm *SoundManager) streamer(s sim.Sound) beep.Streamer {
	switch s {
	case sim.SoundBlast1, sim.SoundBlast2, sim.SoundBlast3, sim.SoundBlast4:
		sm.seed++
		rumble := 55 + 15*float64(s-sim.SoundBlast1)
		return beep.Take(sampleRate.N(time.Millisecond*350), newBlastGenerator(sampleRate, rumble, sm.seed))
	case sim.SoundDrip:
		return beep.Take(sampleRate.N(time.Millisecond*140), newDripGenerator(sampleRate))
	case sim.SoundPop:
		return tone(660, time.Millisecond*60)
	case sim.SoundTada:
		return beep.Seq(
			tone(523.25, time.Millisecond*110),
			generators.Silence(sampleRate.N(time.Millisecond*20)),
			tone(659.25, time.Millisecond*110),
			generators.Silence(sampleRate.N(time.Millisecond*20)),
			tone(783.99, time.Millisecond*110),
			generators.Silence(sampleRate.N(time.Millisecond*20)),
			tone(1046.5, time.Millisecond*320),
		)
	}
	return nil
}

// tone is a sine note with a fast decay.
func tone(freq float64, d time.Duration) beep.Streamer {
	n := sampleRate.N(d)
	sine, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		return generators.Silence(n)
	}
	return &decay{streamer: beep.Take(n, sine), total: n}
}

// Helper to create a volume effect safely
// math.Log2(0) is -Inf, so zero volume is handled as silence
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}
