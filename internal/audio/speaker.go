package audio

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
)

// DefaultSampleRate is used when NewSpeaker gets zero.
const DefaultSampleRate = beep.SampleRate(44100)

// Speaker plays cues on the system audio device.
type Speaker struct {
	mu          sync.Mutex
	rate        beep.SampleRate
	volume      float64
	mixer       *beep.Mixer
	initialized bool
}

// NewSpeaker creates a speaker with a master volume in [0, 1].
func NewSpeaker(rate beep.SampleRate, volume float64) *Speaker {
	if rate <= 0 {
		rate = DefaultSampleRate
	}
	return &Speaker{
		rate:   rate,
		volume: volume,
		mixer:  &beep.Mixer{},
	}
}

// Init opens the audio device.
func (s *Speaker) Init() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.initialized {
		return nil
	}
	if err := speaker.Init(s.rate, s.rate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("audio: cannot open speaker: %w", err)
	}
	speaker.Play(s.mixer)
	s.initialized = true
	return nil
}

// Play mixes the notes of c into the output. It is a no-op before Init.
func (s *Speaker) Play(c Cue) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return
	}
	voices := Render(c, s.rate, s.volume)
	speaker.Lock()
	s.mixer.Add(voices...)
	speaker.Unlock()
}

// Close stops all sounds and releases the device.
func (s *Speaker) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	s.initialized = false
}

// Render turns each note of c into a finite streamer, delayed by its offset.
func Render(c Cue, rate beep.SampleRate, volume float64) []beep.Streamer {
	voices := make([]beep.Streamer, 0, len(c.Notes))
	for _, n := range c.Notes {
		osc := newOscillator(n, rate)
		voice := newEnvelope(osc, n.Duration, 10*time.Millisecond, rate)
		voice = newVolume(voice, n.Volume*volume)
		if n.At > 0 {
			voice = beep.Seq(beep.Silence(rate.N(n.At)), voice)
		}
		voices = append(voices, voice)
	}
	return voices
}

// oscillator generates one note.
type oscillator struct {
	freq     float64
	ratio    float64 // Per-sample frequency multiplier for sweeps
	phase    float64
	wave     Wave
	rate     beep.SampleRate
	position int
	duration int
}

func newOscillator(n Note, rate beep.SampleRate) *oscillator {
	samples := rate.N(n.Duration)
	ratio := 1.0
	if n.EndFreq > 0 && n.Freq > 0 && samples > 0 {
		ratio = math.Pow(n.EndFreq/n.Freq, 1/float64(samples))
	}
	return &oscillator{
		freq:     n.Freq,
		ratio:    ratio,
		wave:     n.Wave,
		rate:     rate,
		duration: samples,
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
			val = 1.0
			if o.phase >= 0.5 {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveTriangle:
			val = 1 - 4*math.Abs(o.phase-0.5)
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.freq *= o.ratio
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope fades a note in over attack and out over the rest of its length,
// approximating an exponential decay.
type envelope struct {
	streamer beep.Streamer
	position int
	attack   int
	total    int
}

func newEnvelope(s beep.Streamer, duration, attack time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	return &envelope{
		streamer: s,
		attack:   min(rate.N(attack), total),
		total:    total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		vol := 1.0
		if e.position < e.attack {
			vol = float64(e.position) / float64(e.attack)
		} else if decay := e.total - e.attack; decay > 0 {
			rest := float64(e.total-e.position) / float64(decay)
			vol = rest * rest
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales s linearly. Zero or negative volume is silent.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}
