package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/plus3/diceescape/game"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const rate = beep.SampleRate(8000)

type recordingSink struct {
	played []beep.Streamer
}

func (r *recordingSink) Play(s beep.Streamer) {
	r.played = append(r.played, s)
}

// drain streams s to the end and returns its samples.
func drain(t *testing.T, s beep.Streamer) [][2]float64 {
	t.Helper()
	var out [][2]float64
	buf := make([][2]float64, 256)
	for range 10000 {
		n, ok := s.Stream(buf)
		out = append(out, buf[:n]...)
		if !ok {
			require.NoError(t, s.Err())
			return out
		}
	}
	t.Fatal("stream did not end")
	return nil
}

func peak(samples [][2]float64) float64 {
	var p float64
	for _, s := range samples {
		p = max(p, math.Abs(s[0]), math.Abs(s[1]))
	}
	return p
}

func TestOscillatorLength(t *testing.T) {
	for _, wave := range []Wave{WaveSine, WaveSquare, WaveSaw, WaveNoise} {
		samples := drain(t, NewOscillator(wave, 440, 100*time.Millisecond, rate))
		assert.Len(t, samples, 800)
		assert.LessOrEqual(t, peak(samples), 1.0)
		assert.Greater(t, peak(samples), 0.5)
	}
}

func TestOscillatorSquare(t *testing.T) {
	samples := drain(t, NewOscillator(WaveSquare, 220, 50*time.Millisecond, rate))
	for i, s := range samples {
		if s[0] != 1 && s[0] != -1 {
			t.Fatalf("sample %d = %f, want +-1", i, s[0])
		}
	}
}

func TestEnvelope(t *testing.T) {
	osc := NewOscillator(WaveSquare, 100, time.Second, rate)
	samples := drain(t, NewEnvelope(osc, 100*time.Millisecond, 10*time.Millisecond, 20*time.Millisecond, rate))

	require.Len(t, samples, 800, "the envelope cuts the stream")
	assert.Equal(t, 0.0, samples[0][0], "attack starts silent")
	assert.Equal(t, 1.0, math.Abs(samples[400][0]), "sustain is unity")
	assert.Less(t, math.Abs(samples[799][0]), 0.01, "release ends near silence")
}

func TestEffects(t *testing.T) {
	for _, sound := range game.Sounds {
		t.Run(string(sound), func(t *testing.T) {
			effect := Effect(sound, rate)
			require.NotNil(t, effect)
			samples := drain(t, effect)
			assert.NotEmpty(t, samples)
			assert.Less(t, len(samples), rate.N(time.Second), "effects are short")
			assert.Greater(t, peak(samples), 0.1)
		})
	}
	assert.Nil(t, Effect("applause", rate))
}

func TestPlayerPresent(t *testing.T) {
	logger, _ := test.NewNullLogger()
	sink := &recordingSink{}
	p := NewPlayer(sink, rate, 0.5, logger)

	p.Present(game.Event{Kind: game.EventSound, Sound: game.SoundCoin})
	p.Present(game.Event{Kind: game.EventHUD})
	p.Present(game.Event{Kind: game.EventLevelComplete, Sound: game.SoundGoal})
	require.Len(t, sink.played, 1)

	samples := drain(t, sink.played[0])
	assert.Equal(t, p.buffers[game.SoundCoin].Len(), len(samples))
	assert.Equal(t, 300*time.Millisecond, p.Duration(game.SoundCoin))
	assert.InDelta(t, 0.5, peak(samples), 0.01)

	p.Present(game.Event{Kind: game.EventSound, Sound: game.SoundCoin})
	require.Len(t, sink.played, 2)
	assert.Len(t, drain(t, sink.played[1]), len(samples), "every play starts from the beginning")
}

func TestPlayerMute(t *testing.T) {
	sink := &recordingSink{}
	p := NewPlayer(sink, rate, 1, nil)

	assert.False(t, p.ToggleMute())
	assert.True(t, p.Muted())
	assert.False(t, p.Play(game.SoundMove))
	assert.Empty(t, sink.played)

	assert.True(t, p.ToggleMute())
	assert.True(t, p.Play(game.SoundMove))
	assert.False(t, p.Play("applause"))
	assert.Len(t, sink.played, 1)
}

func TestOpenDisabled(t *testing.T) {
	p, closeFn := Open(false, nil)
	defer closeFn()
	assert.True(t, p.Play(game.SoundWarp))
	assert.Equal(t, Silent{}, p.sink)
}
