package game

// CollisionSystem tests the player against the menu tiles and fires the
// tile interaction
type CollisionSystem struct {
	state *State
}

// NewCollisionSystem creates a collision system bound to a session state
func NewCollisionSystem(state *State) *CollisionSystem {
	return &CollisionSystem{state: state}
}

// FirstTileHit returns the index of the first tile, in layout order, that
// overlaps rect
func FirstTileHit(rect Rect, tiles []MenuTile) (int, bool) {
	for i := range tiles {
		if rect.Overlaps(tiles[i].Rect()) {
			return i, true
		}
	}
	return -1, false
}

// CheckCollisions fires at most one tile interaction per frame and reports
// the tile index that fired
func (c *CollisionSystem) CheckCollisions() (int, bool) {
	s := c.state
	idx, hit := FirstTileHit(s.Player.Rect(), s.Tiles)
	if !hit {
		return -1, false
	}
	c.HandleTileCollision(&s.Tiles[idx])
	return idx, true
}

// HandleTileCollision splashes paint at the player, opens the modal with the
// tile label and sends the player back to spawn
func (c *CollisionSystem) HandleTileCollision(tile *MenuTile) {
	s := c.state
	cx, cy := s.Player.Center()
	s.Splashes.Burst(cx, cy, tile.Accent(), s.rng)
	if s.sounds != nil {
		s.sounds.PlaySplash()
	}
	s.openModal(tile.Label)
	s.Player.Respawn(s.Width, s.Height)
	s.Hits++
	s.LastHit = tile.Label
}
