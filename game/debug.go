package game

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// DebugState holds the debug toggles of one game
type DebugState struct {
	ShowOverlay bool // Show AABBs, the joystick region and frame stats
}

var (
	colorDebugTile     = color.NRGBA{R: 0, G: 255, B: 0, A: 255}
	colorDebugPlayer   = color.NRGBA{R: 255, G: 255, B: 0, A: 255}
	colorDebugJoystick = color.NRGBA{R: 0, G: 160, B: 255, A: 255}
)

// DrawDebugOverlay outlines collision boxes and prints frame statistics
func DrawDebugOverlay(screen *ebiten.Image, r *Renderer, s *State, input *InputAdapter, fps float64) {
	sc := float32(r.scale)
	for i := range s.Tiles {
		t := s.Tiles[i].Rect()
		vector.StrokeRect(screen, float32(t.X)*sc, float32(t.Y)*sc, float32(t.Width)*sc, float32(t.Height)*sc,
			1, colorDebugTile, false)
	}
	p := s.Player.Rect()
	vector.StrokeRect(screen, float32(p.X)*sc, float32(p.Y)*sc, float32(p.Width)*sc, float32(p.Height)*sc,
		1, colorDebugPlayer, false)

	active := "none"
	if input != nil {
		if js := input.Joystick(); js != nil {
			jr := js.Region()
			vector.StrokeRect(screen, float32(jr.X)*sc, float32(jr.Y)*sc, float32(jr.Width)*sc, float32(jr.Height)*sc,
				1, colorDebugJoystick, false)
		}
		active = input.LastSource().String()
	}

	msg := fmt.Sprintf("TPS: %.1f  FPS: %.1f\nframe: %d  hits: %d  last: %q\nsplashes: %d  trail: %d/%d\ninput: %s",
		ebiten.ActualTPS(), fps, s.Frame, s.Hits, s.LastHit,
		s.Splashes.Len(), s.Trail.Len(), s.Trail.MaxLength(), active)
	ebitenutil.DebugPrint(screen, msg)
}
