package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

const (
	splashDuration = 220 * time.Millisecond
	splashAttack   = 4 * time.Millisecond
	splashRelease  = 180 * time.Millisecond

	chimeNoteDuration = 140 * time.Millisecond
	chimeAttack       = 5 * time.Millisecond
	chimeRelease      = 110 * time.Millisecond
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveNoise
)

// oscillator generates a fixed-length wave whose frequency glides linearly
// from freq to endFreq
type oscillator struct {
	freq     float64
	endFreq  float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a constant-pitch oscillator
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewSweep(freq, freq, duration, wave, rate)
}

// NewSweep creates an oscillator gliding from startFreq to endFreq
func NewSweep(startFreq, endFreq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     startFreq,
		endFreq:  endFreq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
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
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		t := float64(o.position) / float64(o.duration)
		freq := o.freq + (o.endFreq-o.freq)*t
		o.phase += freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope wraps s with a linear attack and release
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := max(total-att-rel, 0)

	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: sus,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = max(float64(e.totalSamples-e.position)/float64(e.releaseSamples), 0)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales a stream linearly; zero or less is silent since the
// effect works in log2 steps
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// CreateSplashSound generates a wet plop: a falling sine under a short
// noise burst
func CreateSplashSound(cfg *Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	body := NewSweep(520, 140, splashDuration, WaveSine, rate)
	bodyShaped := NewEnvelope(body, splashDuration, splashAttack, splashRelease, rate)

	noise := NewOscillator(0, splashDuration/2, WaveNoise, rate)
	noiseShaped := NewEnvelope(noise, splashDuration/2, splashAttack, splashDuration/2-splashAttack, rate)

	mixed := beep.Mix(
		newVolume(bodyShaped, 0.8),
		newVolume(noiseShaped, 0.25),
	)

	return newVolume(mixed, cfg.EffectVolumes[SoundSplash]*cfg.MasterVolume)
}

// CreateChimeSound generates a rising two-note chime
func CreateChimeSound(cfg *Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	// E6 then A6
	return newVolume(beep.Seq(
		chimeNote(1318.51, rate),
		chimeNote(1760.0, rate),
	), cfg.EffectVolumes[SoundChime]*cfg.MasterVolume)
}

// chimeNote is a sine with a faint square an octave down for body
func chimeNote(freq float64, rate beep.SampleRate) beep.Streamer {
	tone := NewEnvelope(NewOscillator(freq, chimeNoteDuration, WaveSine, rate),
		chimeNoteDuration, chimeAttack, chimeRelease, rate)
	body := NewEnvelope(NewOscillator(freq/2, chimeNoteDuration, WaveSquare, rate),
		chimeNoteDuration, chimeAttack, chimeRelease, rate)
	return beep.Mix(
		newVolume(tone, 0.85),
		newVolume(body, 0.1),
	)
}

// GetSoundEffect returns a fresh streamer for the sound type
func GetSoundEffect(soundType SoundType, cfg *Config) beep.Streamer {
	switch soundType {
	case SoundSplash:
		return CreateSplashSound(cfg)
	case SoundChime:
		return CreateChimeSound(cfg)
	default:
		return nil
	}
}
