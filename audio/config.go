package audio

import (
	"os"
	"strconv"
)

// SoundType identifies a sound effect
type SoundType int

const (
	SoundSplash SoundType = iota // Paint splash on a tile hit
	SoundChime                   // Modal dismissed
)

// Config holds audio settings
type Config struct {
	Enabled       bool
	MasterVolume  float64
	SampleRate    int
	EffectVolumes map[SoundType]float64
}

// DefaultConfig returns the default audio settings
func DefaultConfig() *Config {
	return &Config{
		Enabled:      true,
		MasterVolume: 0.5,
		SampleRate:   44100,
		EffectVolumes: map[SoundType]float64{
			SoundSplash: 0.8,
			SoundChime:  0.5,
		},
	}
}

// LoadConfig applies ATRYBUTE_AUDIO_ENABLED and ATRYBUTE_MASTER_VOLUME
// (0-100) on top of the defaults
func LoadConfig() *Config {
	cfg := DefaultConfig()

	if enabled := os.Getenv("ATRYBUTE_AUDIO_ENABLED"); enabled != "" {
		if val, err := strconv.ParseBool(enabled); err == nil {
			cfg.Enabled = val
		}
	}

	if volume := os.Getenv("ATRYBUTE_MASTER_VOLUME"); volume != "" {
		if val, err := strconv.Atoi(volume); err == nil {
			cfg.MasterVolume = min(max(float64(val)/100.0, 0), 1)
		}
	}

	return cfg
}
