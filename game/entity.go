package game

import (
	"image/color"
	"math"
	"math/rand"
	"time"
)

// Rand is the random source used by the simulation. *rand.Rand satisfies it;
// tests substitute scripted values.
type Rand interface {
	// Float64 returns a value in [0, 1)
	Float64() float64

	// Intn returns a value in [0, n)
	Intn(n int) int
}

// NewRand returns a seeded source; a zero seed picks a time-based one
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// Rect is an axis-aligned rectangle
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// Overlaps reports whether two rectangles overlap. Touching edges do not count.
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.X+o.Width &&
		r.X+r.Width > o.X &&
		r.Y < o.Y+o.Height &&
		r.Y+r.Height > o.Y
}

// Player is the cube controlled by the user
type Player struct {
	// Top-left corner in surface coordinates
	X, Y float64

	// Edge length in pixels
	Size float64

	// Pixels per frame for keyboard movement
	Speed float64

	// Where the player returns after touching a tile
	SpawnX, SpawnY float64

	Color color.NRGBA
}

// NewPlayer creates a player at its spawn point
func NewPlayer(p PlayerProfile) Player {
	return Player{
		X:      p.SpawnX,
		Y:      p.SpawnY,
		Size:   p.Size,
		Speed:  p.Speed,
		SpawnX: p.SpawnX,
		SpawnY: p.SpawnY,
		Color:  p.Color.NRGBA,
	}
}

// Rect returns the player's bounding box
func (p *Player) Rect() Rect {
	return Rect{X: p.X, Y: p.Y, Width: p.Size, Height: p.Size}
}

// Center returns the centre of the cube
func (p *Player) Center() (float64, float64) {
	return p.X + p.Size/2, p.Y + p.Size/2
}

// Move applies a movement delta and clamps the cube inside the surface
func (p *Player) Move(m Movement, width, height float64) {
	p.X += m.DX
	p.Y += m.DY
	p.Clamp(width, height)
}

// Clamp keeps the cube within [0, dim-size] on both axes
func (p *Player) Clamp(width, height float64) {
	p.X = clamp(p.X, 0, width-p.Size)
	p.Y = clamp(p.Y, 0, height-p.Size)
}

// Respawn moves the player back to its spawn point, pulled inside the
// surface when the spawn point no longer fits
func (p *Player) Respawn(width, height float64) {
	p.X = p.SpawnX
	p.Y = p.SpawnY
	p.Clamp(width, height)
}

// Enemy is a simple agent moving by its behaviour rule
type Enemy struct {
	// Centre in surface coordinates
	X, Y float64

	// Diameter in pixels
	Size float64

	// Pixels per frame
	Speed float64

	Color    color.NRGBA
	Behavior Behavior

	// Heading in radians, used by BehaviorRandom
	Direction float64

	// Spawn anchor relative to the surface size
	Anchor Anchor
}

// NewEnemy creates an enemy at its anchor for the given surface size
func NewEnemy(p EnemyProfile, width, height float64, rng Rand) Enemy {
	behavior, err := ParseBehavior(p.Behavior)
	if err != nil {
		// profiles are validated on load
		behavior = BehaviorChase
	}
	e := Enemy{
		Size:     p.Size,
		Speed:    p.Speed,
		Color:    p.Color.NRGBA,
		Behavior: behavior,
		Anchor:   p.Anchor,
	}
	if behavior == BehaviorRandom {
		e.Direction = rng.Float64() * 2 * math.Pi
	}
	e.Place(width, height)
	return e
}

// Place moves the enemy to its anchor and clamps it inside the surface
func (e *Enemy) Place(width, height float64) {
	e.X = e.Anchor.FX*width + e.Anchor.OX
	e.Y = e.Anchor.FY*height + e.Anchor.OY
	e.Clamp(width, height)
}

// Clamp keeps the enemy centre within [size/2, dim-size/2]
func (e *Enemy) Clamp(width, height float64) {
	half := e.Size / 2
	e.X = clamp(e.X, half, width-half)
	e.Y = clamp(e.Y, half, height-half)
}

// clamp bounds v to [lo, hi]; when the range is empty lo wins
func clamp(v, lo, hi float64) float64 {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}
