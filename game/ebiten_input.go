package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var keyBindings = map[ebiten.Key]Key{
	ebiten.KeyW:          KeyW,
	ebiten.KeyA:          KeyA,
	ebiten.KeyS:          KeyS,
	ebiten.KeyD:          KeyD,
	ebiten.KeyArrowUp:    KeyArrowUp,
	ebiten.KeyArrowLeft:  KeyArrowLeft,
	ebiten.KeyArrowDown:  KeyArrowDown,
	ebiten.KeyArrowRight: KeyArrowRight,
	ebiten.KeyEscape:     KeyEscape,
}

// EbitenPoller turns Ebitengine's polled input state into events
type EbitenPoller struct {
	queue    *EventQueue
	touchIDs []ebiten.TouchID
}

// NewEbitenPoller creates a poller feeding queue
func NewEbitenPoller(queue *EventQueue) *EbitenPoller {
	return &EbitenPoller{queue: queue}
}

// Poll pushes this tick's key and touch transitions. camera converts device
// pixels to logical ones. A click or tap while the overlay is open asks for
// it to close.
func (p *EbitenPoller) Poll(camera *Camera, overlayOpen bool) {

	for ek, k := range keyBindings {
		if inpututil.IsKeyJustPressed(ek) {
			p.queue.Push(KeyEvent{Key: k, Down: true})
		}
		if inpututil.IsKeyJustReleased(ek) {
			p.queue.Push(KeyEvent{Key: k, Down: false})
		}
	}

	tapped := inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)

	p.touchIDs = inpututil.AppendJustPressedTouchIDs(p.touchIDs[:0])
	for _, id := range p.touchIDs {
		x, y := camera.ScreenToWorld(touchPoint(ebiten.TouchPosition(id)))
		p.queue.Push(TouchEvent{Phase: TouchStart, ID: int(id), X: x, Y: y})
		tapped = true
	}

	p.touchIDs = ebiten.AppendTouchIDs(p.touchIDs[:0])
	for _, id := range p.touchIDs {
		if inpututil.TouchPressDuration(id) <= 1 {
			continue
		}
		x, y := ebiten.TouchPosition(id)
		px, py := inpututil.TouchPositionInPreviousTick(id)
		if x == px && y == py {
			continue
		}
		wx, wy := camera.ScreenToWorld(touchPoint(x, y))
		p.queue.Push(TouchEvent{Phase: TouchMove, ID: int(id), X: wx, Y: wy})
	}

	p.touchIDs = inpututil.AppendJustReleasedTouchIDs(p.touchIDs[:0])
	for _, id := range p.touchIDs {
		x, y := camera.ScreenToWorld(touchPoint(inpututil.TouchPositionInPreviousTick(id)))
		p.queue.Push(TouchEvent{Phase: TouchEnd, ID: int(id), X: x, Y: y})
	}

	if tapped && overlayOpen {
		p.queue.Push(ModalCloseEvent{})
	}
}

func touchPoint(x, y int) (float64, float64) {
	return float64(x), float64(y)
}
