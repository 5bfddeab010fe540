package audio

import (
	"math"

	"github.com/gopxl/beep"
)

// decay fades a finite streamer linearly to silence over total samples.
type decay struct {
	streamer beep.Streamer
	total    int
	pos      int
}

func (d *decay) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = d.streamer.Stream(samples)
	for i := range n {
		gain := 0.6 * (1 - float64(d.pos)/float64(d.total))
		if gain < 0 {
			gain = 0
		}
		samples[i][0] *= gain
		samples[i][1] *= gain
		d.pos++
	}
	return n, ok
}

func (d *decay) Err() error { return d.streamer.Err() }

// blastGenerator is a crackling noise burst over a low rumble.
type blastGenerator struct {
	sr     beep.SampleRate
	rumble float64
	pos    int
	seed   int64
}

func newBlastGenerator(sr beep.SampleRate, rumble float64, seed int64) *blastGenerator {
	return &blastGenerator{sr: sr, rumble: rumble, seed: seed}
}

func (g *blastGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		// Quick attack, slower decay
		envelope := math.Exp(-t * 9)

		g.seed = (g.seed*1103515245 + 12345) & 0x7fffffff
		noise := float64(g.seed)/float64(0x7fffffff)*2 - 1

		rumble := 0.35 * math.Sin(2*math.Pi*g.rumble*t)
		sample := envelope * (0.3*noise + rumble)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *blastGenerator) Err() error {
	return nil
}

// dripGenerator is a falling sine chirp.
type dripGenerator struct {
	sr    beep.SampleRate
	pos   int
	phase float64
}

func newDripGenerator(sr beep.SampleRate) *dripGenerator {
	return &dripGenerator{sr: sr}
}

func (g *dripGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		// Sweep from 1400Hz down towards 400Hz
		freq := 400 + 1000*math.Exp(-t*25)
		g.phase += 2 * math.Pi * freq / float64(g.sr)

		sample := 0.4 * math.Exp(-t*18) * math.Sin(g.phase)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *dripGenerator) Err() error {
	return nil
}
