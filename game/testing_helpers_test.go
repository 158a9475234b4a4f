package game

import "testing"

// fakeRand replays scripted values; it returns the last one when exhausted
type fakeRand struct {
	floats []float64
	ints   []int
	fi, ii int
}

func (r *fakeRand) Float64() float64 {
	if len(r.floats) == 0 {
		return 0
	}
	v := r.floats[min(r.fi, len(r.floats)-1)]
	r.fi++
	return v
}

func (r *fakeRand) Intn(n int) int {
	if len(r.ints) == 0 {
		return 0
	}
	v := r.ints[min(r.ii, len(r.ints)-1)]
	r.ii++
	return v % n
}

// recordingModal records Open/Close calls
type recordingModal struct {
	opened []string
	closes int
}

func (m *recordingModal) Open(content string) { m.opened = append(m.opened, content) }
func (m *recordingModal) Close()              { m.closes++ }

// countingSounds counts played sounds
type countingSounds struct {
	splashes int
	chimes   int
}

func (s *countingSounds) PlaySplash() { s.splashes++ }
func (s *countingSounds) PlayChime()  { s.chimes++ }

// mustProfile loads an embedded profile or fails the test
func mustProfile(t *testing.T, name string) *Profile {
	t.Helper()
	p, err := LoadProfile(name)
	if err != nil {
		t.Fatalf("LoadProfile(%q) failed: %v", name, err)
	}
	return p
}

const floatTolerance = 1e-9

func approxEqual(a, b float64) bool {
	d := a - b
	return d < floatTolerance && d > -floatTolerance
}
