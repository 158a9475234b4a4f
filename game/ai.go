package game

import "math"

// DefaultTurnChance is the per-frame probability that a wandering enemy
// picks a new heading
const DefaultTurnChance = 0.02

// UpdateEnemy moves an enemy one frame according to its behaviour and keeps
// it inside the surface
func UpdateEnemy(e *Enemy, player *Player, width, height, turnChance float64, rng Rand) {
	if e == nil {
		return
	}

	switch e.Behavior {
	case BehaviorChase, BehaviorFlanker:
		if player == nil {
			break
		}
		px, py := player.Center()
		dx := px - e.X
		dy := py - e.Y
		distance := math.Sqrt(dx*dx + dy*dy)
		if distance == 0 {
			// Standing on the player, nowhere to head this frame
			break
		}
		dx /= distance
		dy /= distance

		if e.Behavior == BehaviorChase {
			e.X += dx * e.Speed
			e.Y += dy * e.Speed
		} else {
			// Chase vector rotated by -90 degrees
			e.X += dy * e.Speed
			e.Y -= dx * e.Speed
		}

	case BehaviorRandom:
		if rng != nil && rng.Float64() < turnChance {
			e.Direction = rng.Float64() * 2 * math.Pi
		}
		e.X += math.Cos(e.Direction) * e.Speed
		e.Y += math.Sin(e.Direction) * e.Speed
	}

	e.Clamp(width, height)
}
