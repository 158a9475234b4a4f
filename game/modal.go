package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Modal is the popup collaborator. The simulation only opens and closes it
// and never reads state back.
type Modal interface {
	Open(content string)
	Close()
}

// OverlayModal is a modal drawn on the game surface, used when the host
// page provides no modal element
type OverlayModal struct {
	open    bool
	content string
}

// NewOverlayModal creates a closed overlay
func NewOverlayModal() *OverlayModal {
	return &OverlayModal{}
}

// Open shows the overlay with the given text
func (m *OverlayModal) Open(content string) {
	m.content = content
	m.open = true
}

// Close hides the overlay
func (m *OverlayModal) Close() {
	m.open = false
}

// IsOpen reports whether the overlay is visible
func (m *OverlayModal) IsOpen() bool {
	return m.open
}

// Content returns the last opened text
func (m *OverlayModal) Content() string {
	return m.content
}

// Overlay geometry in logical pixels
const (
	modalWidth       = 360.0
	modalHeight      = 180.0
	modalCorner      = 12.0
	modalCloseInsetY = 28.0
)

var (
	colorModalBackdrop = color.NRGBA{R: 0, G: 0, B: 0, A: 160}
	colorModalPanel    = color.NRGBA{R: 34, G: 34, B: 34, A: 245}
	colorModalBorder   = color.NRGBA{R: 35, G: 204, B: 163, A: 255}
	colorModalHint     = color.NRGBA{R: 170, G: 170, B: 170, A: 255}
)

// Draw renders the overlay centred on the surface
func (m *OverlayModal) Draw(screen *ebiten.Image, r *Renderer, width, height float64) {
	if !m.open {
		return
	}
	s := r.scale

	vector.DrawFilledRect(screen, 0, 0, float32(width*s), float32(height*s), colorModalBackdrop, false)

	x := (width - modalWidth) / 2
	y := (height - modalHeight) / 2
	r.fillRoundRect(screen, x, y, modalWidth, modalHeight, modalCorner, colorModalPanel, colorModalPanel)
	vector.StrokeRect(screen, float32(x*s), float32(y*s), float32(modalWidth*s), float32(modalHeight*s),
		float32(2*s), colorModalBorder, true)

	r.drawCenteredText(screen, m.content, r.labelFace(22), width/2, height/2-10, color.White)
	r.drawCenteredText(screen, "press Esc or tap to close", r.labelFace(12), width/2,
		y+modalHeight-modalCloseInsetY, colorModalHint)
}

// labelFace returns a bold face at the given logical size, or nil without a font
func (r *Renderer) labelFace(size float64) text.Face {
	if r.fontSource == nil {
		return nil
	}
	return &text.GoTextFace{Source: r.fontSource, Size: size * r.scale}
}
