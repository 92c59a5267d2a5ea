// Package audio plays the game's sound effects. Effects are synthesised
// with beep at startup, so the game ships no sound files.
package audio

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/plus3/diceescape/game"
)

// DefaultSampleRate is the rate effects are rendered at.
const DefaultSampleRate = beep.SampleRate(44100)

// Wave is an oscillator shape.
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator plays a wave whose frequency slides linearly from freq to
// endFreq over its duration.
type oscillator struct {
	wave     Wave
	freq     float64
	endFreq  float64
	phase    float64
	position int
	duration int
	rate     beep.SampleRate
	rng      *rand.Rand
}

// NewOscillator returns a fixed-pitch wave lasting d.
func NewOscillator(wave Wave, freq float64, d time.Duration, rate beep.SampleRate) beep.Streamer {
	return NewSweep(wave, freq, freq, d, rate)
}

// NewSweep returns a wave sliding from freq to endFreq over d.
func NewSweep(wave Wave, freq, endFreq float64, d time.Duration, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		wave:     wave,
		freq:     freq,
		endFreq:  endFreq,
		duration: rate.N(d),
		rate:     rate,
		rng:      rand.New(rand.NewPCG(uint64(freq), uint64(endFreq))),
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			val = -1
			if o.phase < 0.5 {
				val = 1
			}
		case WaveSaw:
			val = 2 * (o.phase - 0.5)
		case WaveNoise:
			val = o.rng.Float64()*2 - 1
		}
		samples[i][0] = val
		samples[i][1] = val

		progress := float64(o.position) / float64(o.duration)
		freq := o.freq + (o.endFreq-o.freq)*progress
		o.phase += freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope fades a stream in over attack and out over its last release
// samples. The stream ends after total samples.
type envelope struct {
	streamer beep.Streamer
	position int
	attack   int
	release  int
	total    int
}

// NewEnvelope shapes s with a linear attack and release.
func NewEnvelope(s beep.Streamer, d, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer: s,
		attack:   rate.N(attack),
		release:  rate.N(release),
		total:    rate.N(d),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	if e.position >= e.total {
		return 0, false
	}
	if left := e.total - e.position; len(samples) > left {
		samples = samples[:left]
	}

	n, ok = e.streamer.Stream(samples)
	for i := range n {
		vol := 1.0
		if e.position < e.attack {
			vol = float64(e.position) / float64(e.attack)
		}
		if rest := e.total - e.position; rest < e.release {
			vol = min(vol, float64(rest)/float64(e.release))
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales s by the linear gain vol. Zero or less is silent.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

func tone(wave Wave, freq float64, d time.Duration, rate beep.SampleRate) beep.Streamer {
	osc := NewOscillator(wave, freq, d, rate)
	return NewEnvelope(osc, d, 5*time.Millisecond, d/2, rate)
}

// Effect synthesises the streamer for sound at unity gain. It returns nil
// for unknown sounds.
func Effect(sound game.Sound, rate beep.SampleRate) beep.Streamer {
	switch sound {
	case game.SoundMove:
		// Dull thump of the die hitting the floor.
		d := 70 * time.Millisecond
		thump := NewEnvelope(NewSweep(WaveSine, 140, 60, d, rate), d, 2*time.Millisecond, 50*time.Millisecond, rate)
		knock := NewEnvelope(NewOscillator(WaveNoise, 1, 20*time.Millisecond, rate), 20*time.Millisecond, 0, 15*time.Millisecond, rate)
		return beep.Mix(newVolume(thump, 0.8), newVolume(knock, 0.2))

	case game.SoundDeath:
		d := 600 * time.Millisecond
		return NewEnvelope(NewSweep(WaveSquare, 440, 55, d, rate), d, 10*time.Millisecond, 300*time.Millisecond, rate)

	case game.SoundCoin:
		// B5 then E6.
		return beep.Seq(
			tone(WaveSquare, 987.77, 80*time.Millisecond, rate),
			tone(WaveSquare, 1318.51, 220*time.Millisecond, rate),
		)

	case game.SoundGoal:
		// C major arpeggio.
		notes := []float64{523.25, 659.25, 783.99, 1046.5}
		parts := make([]beep.Streamer, len(notes))
		for i, freq := range notes {
			parts[i] = tone(WaveSine, freq, 120*time.Millisecond, rate)
		}
		return beep.Seq(parts...)

	case game.SoundWarp:
		d := 350 * time.Millisecond
		return NewEnvelope(NewSweep(WaveSaw, 200, 1600, d, rate), d, 20*time.Millisecond, 150*time.Millisecond, rate)

	case game.SoundSwitch:
		d := 40 * time.Millisecond
		click, err := generators.SineTone(rate, 1200)
		if err != nil {
			return nil
		}
		return NewEnvelope(beep.Take(rate.N(d), click), d, time.Millisecond, 30*time.Millisecond, rate)
	}
	return nil
}
