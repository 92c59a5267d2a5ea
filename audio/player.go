package audio

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/plus3/diceescape/game"
	"github.com/sirupsen/logrus"
)

// Sink is where rendered effects are played.
type Sink interface {
	Play(s beep.Streamer)
}

// Player turns sound events into audio. It implements game.Presenter and
// ignores every other event kind.
type Player struct {
	sink   Sink
	volume float64
	muted  atomic.Bool
	log    logrus.FieldLogger

	buffers map[game.Sound]*beep.Buffer
}

// NewPlayer renders every game sound at rate and plays them on sink at the
// linear gain volume.
func NewPlayer(sink Sink, rate beep.SampleRate, volume float64, log logrus.FieldLogger) *Player {
	if log == nil {
		log = logrus.StandardLogger()
	}
	p := &Player{
		sink:    sink,
		volume:  volume,
		log:     log,
		buffers: make(map[game.Sound]*beep.Buffer, len(game.Sounds)),
	}

	format := beep.Format{SampleRate: rate, NumChannels: 2, Precision: 2}
	for _, sound := range game.Sounds {
		effect := Effect(sound, rate)
		if effect == nil {
			log.WithField("sound", sound).Warn("No effect for sound")
			continue
		}
		buf := beep.NewBuffer(format)
		buf.Append(effect)
		p.buffers[sound] = buf
	}
	return p
}

// Present plays the effect of a sound event.
func (p *Player) Present(ev game.Event) {
	if ev.Kind != game.EventSound {
		return
	}
	p.Play(ev.Sound)
}

// Play starts sound. It reports false when muted or the sound is unknown.
func (p *Player) Play(sound game.Sound) bool {
	if p.muted.Load() {
		return false
	}
	buf, ok := p.buffers[sound]
	if !ok {
		p.log.WithField("sound", sound).Debug("Unknown sound")
		return false
	}
	p.sink.Play(newVolume(buf.Streamer(0, buf.Len()), p.volume))
	return true
}

// Duration returns the length of sound's effect.
func (p *Player) Duration(sound game.Sound) time.Duration {
	buf, ok := p.buffers[sound]
	if !ok {
		return 0
	}
	return buf.Format().SampleRate.D(buf.Len())
}

// ToggleMute flips the mute state and reports whether sound is now on.
func (p *Player) ToggleMute() bool {
	muted := !p.muted.Load()
	p.muted.Store(muted)
	return !muted
}

// Muted reports whether the player is muted.
func (p *Player) Muted() bool {
	return p.muted.Load()
}

// SpeakerSink plays effects on the system audio device through one shared
// mixer.
type SpeakerSink struct {
	mu     sync.Mutex
	mixer  *beep.Mixer
	closed bool
}

// OpenSpeaker initialises the audio device at rate.
func OpenSpeaker(rate beep.SampleRate) (*SpeakerSink, error) {
	if err := speaker.Init(rate, rate.N(100*time.Millisecond)); err != nil {
		return nil, err
	}
	s := &SpeakerSink{mixer: &beep.Mixer{}}
	speaker.Play(s.mixer)
	return s, nil
}

func (s *SpeakerSink) Play(st beep.Streamer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	speaker.Lock()
	s.mixer.Add(st)
	speaker.Unlock()
}

// Close stops all sound and releases the device.
func (s *SpeakerSink) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	speaker.Lock()
	s.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
}

// Silent discards every effect. It is used when sound is disabled or no
// audio device is available.
type Silent struct{}

func (Silent) Play(beep.Streamer) {}

// Open returns a speaker-backed player, or a silent one when enabled is
// false or the device cannot be opened. The returned func releases the
// device.
func Open(enabled bool, log logrus.FieldLogger) (*Player, func()) {
	if log == nil {
		log = logrus.StandardLogger()
	}
	if !enabled {
		return NewPlayer(Silent{}, DefaultSampleRate, 1, log), func() {}
	}
	sink, err := OpenSpeaker(DefaultSampleRate)
	if err != nil {
		log.WithError(err).Warn("Audio unavailable, running silent")
		return NewPlayer(Silent{}, DefaultSampleRate, 1, log), func() {}
	}
	return NewPlayer(sink, DefaultSampleRate, 0.6, log), sink.Close
}
