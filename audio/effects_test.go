package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"
)

// drain streams s to the end and returns the number of samples produced
func drain(t *testing.T, s beep.Streamer, limit int) int {
	t.Helper()
	buf := make([][2]float64, 512)
	total := 0
	for total < limit {
		n, ok := s.Stream(buf)
		total += n
		if !ok {
			return total
		}
	}
	t.Fatalf("stream did not end within %d samples", limit)
	return total
}

func TestOscillatorLength(t *testing.T) {
	rate := beep.SampleRate(44100)
	tests := []struct {
		name     string
		wave     WaveType
		duration time.Duration
	}{
		{"sine 100ms", WaveSine, 100 * time.Millisecond},
		{"square 50ms", WaveSquare, 50 * time.Millisecond},
		{"noise 10ms", WaveNoise, 10 * time.Millisecond},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			osc := NewOscillator(440, tt.duration, tt.wave, rate)
			got := drain(t, osc, rate.N(time.Second))
			if want := rate.N(tt.duration); got != want {
				t.Errorf("Expected %d samples, got %d", want, got)
			}
			if osc.Err() != nil {
				t.Errorf("Expected no error, got %v", osc.Err())
			}
		})
	}
}

func TestOscillatorRange(t *testing.T) {
	rate := beep.SampleRate(44100)
	for _, wave := range []WaveType{WaveSine, WaveSquare, WaveNoise} {
		osc := NewSweep(800, 100, 20*time.Millisecond, wave, rate)
		samples := make([][2]float64, 256)
		n, ok := osc.Stream(samples)
		if !ok || n != 256 {
			t.Fatalf("wave %d: expected 256 samples, got %d (ok=%v)", wave, n, ok)
		}
		for i := 0; i < n; i++ {
			if samples[i][0] < -1 || samples[i][0] > 1 {
				t.Errorf("wave %d: sample %d out of range: %f", wave, i, samples[i][0])
			}
			if samples[i][0] != samples[i][1] {
				t.Errorf("wave %d: sample %d channels differ", wave, i)
			}
		}
	}
}

func TestSquareWaveValues(t *testing.T) {
	osc := NewOscillator(220, 50*time.Millisecond, WaveSquare, beep.SampleRate(44100))
	samples := make([][2]float64, 100)
	n, _ := osc.Stream(samples)
	for i := 0; i < n; i++ {
		if v := samples[i][0]; v != 1 && v != -1 {
			t.Fatalf("Square wave sample %d should be -1 or 1, got %f", i, v)
		}
	}
}

// constant streams ones forever
type constant struct{}

func (constant) Stream(samples [][2]float64) (int, bool) {
	for i := range samples {
		samples[i] = [2]float64{1, 1}
	}
	return len(samples), true
}

func (constant) Err() error { return nil }

func TestEnvelopeShape(t *testing.T) {
	rate := beep.SampleRate(1000)
	env := NewEnvelope(constant{}, 100*time.Millisecond, 10*time.Millisecond, 20*time.Millisecond, rate)

	samples := make([][2]float64, 200)
	n, _ := env.Stream(samples)
	if n != 100 {
		t.Fatalf("Expected envelope to stop at 100 samples, got %d", n)
	}

	if samples[0][0] != 0 {
		t.Errorf("Expected attack to start silent, got %f", samples[0][0])
	}
	if got := samples[5][0]; math.Abs(got-0.5) > 1e-9 {
		t.Errorf("Expected half volume mid-attack, got %f", got)
	}
	if got := samples[50][0]; got != 1 {
		t.Errorf("Expected full volume during sustain, got %f", got)
	}
	if got := samples[99][0]; got <= 0 || got >= 0.1 {
		t.Errorf("Expected near-silent tail, got %f", got)
	}
}

func TestSoundEffectsEnd(t *testing.T) {
	cfg := DefaultConfig()
	rate := beep.SampleRate(cfg.SampleRate)

	tests := []struct {
		sound SoundType
		want  time.Duration
	}{
		{SoundSplash, splashDuration},
		{SoundChime, 2 * chimeNoteDuration},
	}
	for _, tt := range tests {
		s := GetSoundEffect(tt.sound, cfg)
		if s == nil {
			t.Fatalf("sound %d: expected a streamer", tt.sound)
		}
		got := drain(t, s, rate.N(2*time.Second))
		if want := rate.N(tt.want); got != want {
			t.Errorf("sound %d: expected %d samples, got %d", tt.sound, want, got)
		}
	}

	if GetSoundEffect(SoundType(99), cfg) != nil {
		t.Error("Expected nil streamer for unknown sound")
	}
}

func TestMutedVolumeIsSilent(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MasterVolume = 0

	s := CreateChimeSound(cfg)
	samples := make([][2]float64, 512)
	n, _ := s.Stream(samples)
	for i := 0; i < n; i++ {
		if samples[i][0] != 0 || samples[i][1] != 0 {
			t.Fatalf("Expected silence at sample %d, got %v", i, samples[i])
		}
	}
}
