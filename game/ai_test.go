package game

import (
	"math"
	"testing"
)

func newTestPlayer(cx, cy float64) *Player {
	return &Player{X: cx - 15, Y: cy - 15, Size: 30, Speed: 5}
}

func TestUpdateEnemyBehaviors(t *testing.T) {
	tests := []struct {
		name     string
		behavior Behavior
		speed    float64
		wantX    float64
		wantY    float64
	}{
		// Player centre is straight left of the enemy
		{"chase moves toward player", BehaviorChase, 3, 497, 500},
		{"flanker moves perpendicular", BehaviorFlanker, 2, 500, 502},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := &Enemy{X: 500, Y: 500, Size: 30, Speed: tt.speed, Behavior: tt.behavior}
			UpdateEnemy(e, newTestPlayer(115, 500), 1024, 768, DefaultTurnChance, &fakeRand{})
			if !approxEqual(e.X, tt.wantX) || !approxEqual(e.Y, tt.wantY) {
				t.Errorf("got (%v, %v), want (%v, %v)", e.X, e.Y, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestChaseDiagonalIsUnitSpeed(t *testing.T) {
	e := &Enemy{X: 400, Y: 400, Size: 30, Speed: 3, Behavior: BehaviorChase}
	UpdateEnemy(e, newTestPlayer(100, 100), 1024, 768, DefaultTurnChance, nil)

	moved := math.Hypot(e.X-400, e.Y-400)
	if !approxEqual(moved, 3) {
		t.Errorf("Expected chase step of length 3, got %v", moved)
	}
	if e.X >= 400 || e.Y >= 400 {
		t.Errorf("Expected movement toward the player, got (%v, %v)", e.X, e.Y)
	}
}

func TestEnemyOnPlayerDoesNotMove(t *testing.T) {
	for _, b := range []Behavior{BehaviorChase, BehaviorFlanker} {
		e := &Enemy{X: 300, Y: 300, Size: 30, Speed: 3, Behavior: b}
		UpdateEnemy(e, newTestPlayer(300, 300), 1024, 768, DefaultTurnChance, nil)
		if e.X != 300 || e.Y != 300 || math.IsNaN(e.X) {
			t.Errorf("%s: expected no movement at zero distance, got (%v, %v)", b, e.X, e.Y)
		}
	}
}

func TestRandomEnemyTurnGate(t *testing.T) {
	t.Run("gate forced false keeps heading", func(t *testing.T) {
		e := &Enemy{X: 100, Y: 300, Size: 30, Speed: 2.5, Behavior: BehaviorRandom, Direction: 1.0}
		rng := &fakeRand{floats: []float64{0.5}}
		for i := 0; i < 100; i++ {
			UpdateEnemy(e, nil, 100000, 100000, DefaultTurnChance, rng)
			if e.Direction != 1.0 {
				t.Fatalf("frame %d: direction changed to %v", i, e.Direction)
			}
		}
	})

	t.Run("gate forced true resamples heading", func(t *testing.T) {
		e := &Enemy{X: 500, Y: 300, Size: 30, Speed: 2, Behavior: BehaviorRandom, Direction: 0}
		rng := &fakeRand{floats: []float64{0.0, 0.25}}
		UpdateEnemy(e, nil, 1024, 768, DefaultTurnChance, rng)

		if !approxEqual(e.Direction, math.Pi/2) {
			t.Fatalf("Expected heading pi/2, got %v", e.Direction)
		}
		if !approxEqual(e.X, 500) || !approxEqual(e.Y, 302) {
			t.Errorf("Expected move along the new heading to (500, 302), got (%v, %v)", e.X, e.Y)
		}
	})

	t.Run("gate threshold is strict", func(t *testing.T) {
		e := &Enemy{X: 500, Y: 300, Size: 30, Speed: 2, Behavior: BehaviorRandom, Direction: 0}
		UpdateEnemy(e, nil, 1024, 768, DefaultTurnChance, &fakeRand{floats: []float64{DefaultTurnChance}})
		if e.Direction != 0 {
			t.Errorf("Expected no turn at exactly the turn chance, got %v", e.Direction)
		}
	})
}

func TestEnemyClampedToSurface(t *testing.T) {
	e := &Enemy{X: 1010, Y: 10, Size: 30, Speed: 50, Behavior: BehaviorRandom, Direction: -math.Pi / 4}
	UpdateEnemy(e, nil, 1024, 768, 0, &fakeRand{floats: []float64{0.9}})

	if e.X != 1024-15 || e.Y != 15 {
		t.Errorf("Expected clamp to (1009, 15), got (%v, %v)", e.X, e.Y)
	}
}

func TestEnemyPlacedAtAnchor(t *testing.T) {
	p := mustProfile(t, "radial")
	s := NewState(p, 1024, 768, NewRand(1), nil)

	want := [][2]float64{{924, 668}, {924, 100}, {100, 668}}
	if len(s.Enemies) != len(want) {
		t.Fatalf("Expected %d enemies, got %d", len(want), len(s.Enemies))
	}
	for i, w := range want {
		if s.Enemies[i].X != w[0] || s.Enemies[i].Y != w[1] {
			t.Errorf("enemy %d at (%v, %v), want (%v, %v)", i, s.Enemies[i].X, s.Enemies[i].Y, w[0], w[1])
		}
	}

	behaviors := []Behavior{BehaviorChase, BehaviorFlanker, BehaviorRandom}
	for i, b := range behaviors {
		if s.Enemies[i].Behavior != b {
			t.Errorf("enemy %d behavior %s, want %s", i, s.Enemies[i].Behavior, b)
		}
	}
}

func TestParseBehavior(t *testing.T) {
	for _, name := range []string{"chase", "flanker", "random"} {
		b, err := ParseBehavior(name)
		if err != nil {
			t.Fatalf("ParseBehavior(%q) failed: %v", name, err)
		}
		if b.String() != name {
			t.Errorf("round trip %q gave %q", name, b.String())
		}
	}
	if _, err := ParseBehavior("orbit"); err == nil {
		t.Error("Expected error for unknown behavior")
	}
}
