package game

import (
	"image/color"
	"math"
)

// TrailParticle is one dot of the player trail
type TrailParticle struct {
	X, Y  float64
	Size  float64
	Alpha float64
	Color color.NRGBA
}

// Trail is a newest-first list of particles following the player
type Trail struct {
	particles  []TrailParticle
	maxLength  int
	frequency  int
	counter    int
	sizeFactor float64
	palette    []color.NRGBA
}

// NewTrail creates an empty trail from the profile settings
func NewTrail(cfg TrailProfile) *Trail {
	palette := make([]color.NRGBA, len(cfg.Palette))
	for i, c := range cfg.Palette {
		palette[i] = c.NRGBA
	}
	return &Trail{
		particles:  make([]TrailParticle, 0, cfg.Length+1),
		maxLength:  cfg.Length,
		frequency:  cfg.Frequency,
		sizeFactor: cfg.SizeFactor,
		palette:    palette,
	}
}

// Particles returns the trail, newest first
func (t *Trail) Particles() []TrailParticle {
	return t.particles
}

// Len returns the number of live particles
func (t *Trail) Len() int {
	return len(t.particles)
}

// MaxLength returns the configured cap
func (t *Trail) MaxLength() int {
	return t.maxLength
}

// Update emits a particle at (x, y) every frequency-th frame, drops the
// oldest beyond the cap and refades the whole trail by position
func (t *Trail) Update(x, y, playerSize float64, rng Rand) {
	t.counter++
	if t.counter >= t.frequency {
		t.counter = 0

		var clr color.NRGBA
		if len(t.palette) > 0 {
			clr = t.palette[rng.Intn(len(t.palette))]
		}
		p := TrailParticle{
			X:     x,
			Y:     y,
			Size:  playerSize * t.sizeFactor,
			Alpha: 1,
			Color: clr,
		}
		t.particles = append(t.particles, TrailParticle{})
		copy(t.particles[1:], t.particles)
		t.particles[0] = p

		if len(t.particles) > t.maxLength {
			t.particles = t.particles[:t.maxLength]
		}
	}

	for i := range t.particles {
		fade := 1 - float64(i)/float64(t.maxLength)
		t.particles[i].Alpha = fade
		t.particles[i].Size = playerSize * fade * t.sizeFactor
	}
}

// Splash is one paint droplet
type Splash struct {
	X, Y   float64
	VX, VY float64
	Size   float64
	Color  color.NRGBA
	Alpha  float64
	Life   float64
}

// SplashSystem owns the live paint droplets
type SplashSystem struct {
	droplets []Splash
	cfg      SplashProfile
}

// NewSplashSystem creates an empty splash system
func NewSplashSystem(cfg SplashProfile) *SplashSystem {
	return &SplashSystem{
		droplets: make([]Splash, 0, cfg.Count*2),
		cfg:      cfg,
	}
}

// Droplets returns the live droplets
func (s *SplashSystem) Droplets() []Splash {
	return s.droplets
}

// Len returns the number of live droplets
func (s *SplashSystem) Len() int {
	return len(s.droplets)
}

// Burst emits Count droplets evenly spaced around a full circle
func (s *SplashSystem) Burst(x, y float64, clr color.NRGBA, rng Rand) {
	n := s.cfg.Count
	for i := 0; i < n; i++ {
		angle := math.Pi * 2 * float64(i) / float64(n)
		velocity := s.cfg.MinSpeed + rng.Float64()*(s.cfg.MaxSpeed-s.cfg.MinSpeed)
		size := s.cfg.MinSize + rng.Float64()*(s.cfg.MaxSize-s.cfg.MinSize)

		s.droplets = append(s.droplets, Splash{
			X:     x,
			Y:     y,
			VX:    math.Cos(angle) * velocity,
			VY:    math.Sin(angle) * velocity,
			Size:  size,
			Color: clr,
			Alpha: 1,
			Life:  1,
		})
	}
}

// Update moves droplets, applies gravity, decays life and removes the dead
func (s *SplashSystem) Update() {
	alive := s.droplets[:0]
	for _, d := range s.droplets {
		d.X += d.VX
		d.Y += d.VY
		d.VY += s.cfg.Gravity

		d.Life -= s.cfg.Decay
		d.Alpha = d.Life

		if d.Life <= 0 {
			continue
		}
		alive = append(alive, d)
	}
	// Clear the tail so removed droplets do not linger in the backing array
	for i := len(alive); i < len(s.droplets); i++ {
		s.droplets[i] = Splash{}
	}
	s.droplets = alive
}
