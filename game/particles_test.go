package game

import (
	"image/color"
	"math"
	"testing"
)

func testSplashProfile() SplashProfile {
	return SplashProfile{
		Count:    20,
		MinSpeed: 2,
		MaxSpeed: 5,
		MinSize:  3,
		MaxSize:  8,
		Gravity:  0.2,
		Decay:    0.02,
	}
}

func TestSplashBurstEvenlySpaced(t *testing.T) {
	s := NewSplashSystem(testSplashProfile())
	s.Burst(100, 200, color.NRGBA{R: 35, G: 204, B: 163, A: 255}, NewRand(42))

	droplets := s.Droplets()
	if len(droplets) != 20 {
		t.Fatalf("Expected 20 droplets, got %d", len(droplets))
	}

	step := 2 * math.Pi / 20
	if !approxEqual(step*180/math.Pi, 18) {
		t.Fatalf("Expected 18 degree spacing, got %v", step*180/math.Pi)
	}

	for i, d := range droplets {
		if d.X != 100 || d.Y != 200 {
			t.Errorf("droplet %d starts at (%v, %v)", i, d.X, d.Y)
		}
		if d.Life != 1 || d.Alpha != 1 {
			t.Errorf("droplet %d life=%v alpha=%v, want 1", i, d.Life, d.Alpha)
		}

		speed := math.Hypot(d.VX, d.VY)
		if speed < 2 || speed >= 5 {
			t.Errorf("droplet %d speed %v outside [2, 5)", i, speed)
		}
		if d.Size < 3 || d.Size >= 8 {
			t.Errorf("droplet %d size %v outside [3, 8)", i, d.Size)
		}

		angle := math.Atan2(d.VY, d.VX)
		want := step * float64(i)
		diff := math.Mod(angle-want+4*math.Pi, 2*math.Pi)
		if diff > 1e-9 && 2*math.Pi-diff > 1e-9 {
			t.Errorf("droplet %d angle %v, want %v", i, angle, want)
		}
	}
}

func TestSplashRemovedAtFrame50(t *testing.T) {
	s := NewSplashSystem(testSplashProfile())
	s.Burst(0, 0, color.NRGBA{A: 255}, NewRand(1))

	for frame := 1; frame <= 49; frame++ {
		s.Update()
		if s.Len() != 20 {
			t.Fatalf("frame %d: expected 20 live droplets, got %d", frame, s.Len())
		}
	}
	for _, d := range s.Droplets() {
		if d.Alpha != d.Life {
			t.Fatalf("Expected alpha to track life, got alpha=%v life=%v", d.Alpha, d.Life)
		}
	}

	s.Update()
	if s.Len() != 0 {
		t.Errorf("frame 50: expected all droplets removed, got %d", s.Len())
	}
}

func TestSplashGravityAfterMove(t *testing.T) {
	s := NewSplashSystem(SplashProfile{Count: 1, MinSpeed: 4, MaxSpeed: 4, MinSize: 5, MaxSize: 5, Gravity: 0.2, Decay: 0.02})
	s.Burst(10, 10, color.NRGBA{A: 255}, &fakeRand{})

	s.Update()
	d := s.Droplets()[0]
	// Angle 0: moves right by 4, vertical velocity picks up gravity only after the move
	if !approxEqual(d.X, 14) || !approxEqual(d.Y, 10) {
		t.Errorf("Expected (14, 10), got (%v, %v)", d.X, d.Y)
	}
	if !approxEqual(d.VY, 0.2) {
		t.Errorf("Expected VY 0.2, got %v", d.VY)
	}
	if !approxEqual(d.Life, 0.98) {
		t.Errorf("Expected life 0.98, got %v", d.Life)
	}
}

func TestSplashBurstsAccumulate(t *testing.T) {
	s := NewSplashSystem(testSplashProfile())
	rng := NewRand(5)
	s.Burst(0, 0, color.NRGBA{A: 255}, rng)
	for i := 0; i < 25; i++ {
		s.Update()
	}
	s.Burst(0, 0, color.NRGBA{A: 255}, rng)
	if s.Len() != 40 {
		t.Fatalf("Expected 40 droplets from two bursts, got %d", s.Len())
	}
	for i := 0; i < 25; i++ {
		s.Update()
	}
	if s.Len() != 20 {
		t.Errorf("Expected the first burst gone and the second alive, got %d", s.Len())
	}
}

func testTrailProfile() TrailProfile {
	return TrailProfile{
		Length:     20,
		Frequency:  2,
		SizeFactor: 0.8,
		Palette:    []HexColor{{color.NRGBA{R: 255, A: 255}}, {color.NRGBA{G: 255, A: 255}}},
	}
}

func TestTrailEmitsEveryKthFrame(t *testing.T) {
	tr := NewTrail(testTrailProfile())
	rng := &fakeRand{}

	tr.Update(1, 1, 30, rng)
	if tr.Len() != 0 {
		t.Fatalf("Expected no particle on the first frame, got %d", tr.Len())
	}
	tr.Update(1, 1, 30, rng)
	if tr.Len() != 1 {
		t.Fatalf("Expected one particle on the second frame, got %d", tr.Len())
	}
	tr.Update(2, 2, 30, rng)
	tr.Update(2, 2, 30, rng)
	if tr.Len() != 2 {
		t.Fatalf("Expected two particles after four frames, got %d", tr.Len())
	}
	if got := tr.Particles()[0]; got.X != 2 || got.Y != 2 {
		t.Errorf("Expected newest particle first, got (%v, %v)", got.X, got.Y)
	}
}

func TestTrailCapAndFade(t *testing.T) {
	tr := NewTrail(testTrailProfile())
	rng := NewRand(9)

	for frame := 0; frame < 200; frame++ {
		tr.Update(float64(frame), 0, 30, rng)
		if tr.Len() > tr.MaxLength() {
			t.Fatalf("frame %d: trail length %d exceeds %d", frame, tr.Len(), tr.MaxLength())
		}
	}
	if tr.Len() != 20 {
		t.Fatalf("Expected a full trail of 20, got %d", tr.Len())
	}

	ps := tr.Particles()
	if ps[0].Alpha != 1 || !approxEqual(ps[0].Size, 30*0.8) {
		t.Errorf("Expected newest alpha 1 size 24, got alpha=%v size=%v", ps[0].Alpha, ps[0].Size)
	}
	for i := 1; i < len(ps); i++ {
		if ps[i].Alpha >= ps[i-1].Alpha || ps[i].Size >= ps[i-1].Size {
			t.Fatalf("particle %d is not fainter and smaller than particle %d", i, i-1)
		}
		wantAlpha := 1 - float64(i)/20
		if !approxEqual(ps[i].Alpha, wantAlpha) {
			t.Errorf("particle %d alpha %v, want %v", i, ps[i].Alpha, wantAlpha)
		}
		if ps[i].X >= ps[i-1].X {
			t.Fatalf("particle %d is newer than particle %d", i, i-1)
		}
	}
}

func TestTrailRefadesOnNonEmissionFrames(t *testing.T) {
	tr := NewTrail(testTrailProfile())
	rng := &fakeRand{}
	tr.Update(0, 0, 30, rng)
	tr.Update(0, 0, 30, rng)

	// Player shrinks; sizes follow even without a new emission
	tr.Update(0, 0, 10, rng)
	if got := tr.Particles()[0].Size; !approxEqual(got, 8) {
		t.Errorf("Expected size recomputed to 8, got %v", got)
	}
}

func TestTrailPaletteColour(t *testing.T) {
	tr := NewTrail(testTrailProfile())
	rng := &fakeRand{ints: []int{1}}
	tr.Update(0, 0, 30, rng)
	tr.Update(0, 0, 30, rng)

	want := color.NRGBA{G: 255, A: 255}
	if got := tr.Particles()[0].Color; got != want {
		t.Errorf("Expected palette[1] %v, got %v", want, got)
	}
}
