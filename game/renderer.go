package game

import (
	"bytes"
	"image"
	"image/color"
	"log"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/font/gofont/gobold"
)

// Camera maps logical surface coordinates onto device pixels
type Camera struct {
	Scale  float64 // device pixels per logical pixel
	Width  float64 // logical surface width
	Height float64 // logical surface height
}

// NewCamera creates a camera for a logical surface
func NewCamera(width, height, scale float64) *Camera {
	if scale <= 0 {
		scale = 1
	}
	return &Camera{Scale: scale, Width: width, Height: height}
}

// WorldToScreen converts logical coordinates to device pixels
func (c *Camera) WorldToScreen(wx, wy float64) (float64, float64) {
	return wx * c.Scale, wy * c.Scale
}

// ScreenToWorld converts device pixels to logical coordinates
func (c *Camera) ScreenToWorld(sx, sy float64) (float64, float64) {
	return sx / c.Scale, sy / c.Scale
}

// Number of translucent rings used to fake a canvas shadow blur
const glowSteps = 4

// Renderer draws a State in a fixed order: background, splashes, trail,
// tiles, logo, player, enemies
type Renderer struct {
	camera     *Camera
	scale      float64
	fontSource *text.GoTextFaceSource

	// 1x1 white source for DrawTriangles, cut from a 3x3 image so
	// sampling never bleeds past its edge
	whiteImage *ebiten.Image

	// Offscreen targets for the gradient logo, reused while its size holds
	logoImage *ebiten.Image
	logoMask  *ebiten.Image

	vertices []ebiten.Vertex
	indices  []uint16
}

// NewRenderer creates a renderer. Without a usable font, labels fall back
// to the debug font.
func NewRenderer(camera *Camera) *Renderer {
	white := ebiten.NewImage(3, 3)
	white.Fill(color.White)
	r := &Renderer{
		camera:     camera,
		scale:      camera.Scale,
		whiteImage: white.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image),
	}
	src, err := text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
	if err != nil {
		log.Printf("[Renderer] Failed to load Go Bold font, using debug font: %v", err)
	} else {
		r.fontSource = src
	}
	return r
}

// SetScale updates the device scale factor
func (r *Renderer) SetScale(scale float64) {
	if scale <= 0 {
		scale = 1
	}
	r.camera.Scale = scale
	r.scale = scale
}

// drawPass is one layer of the frame
type drawPass struct {
	name string
	draw func(r *Renderer, screen *ebiten.Image, s *State)
}

// Layers in paint order, back to front
var drawPasses = []drawPass{
	{"background", func(r *Renderer, screen *ebiten.Image, s *State) {
		screen.Fill(s.Profile.Background.NRGBA)
	}},
	{"splashes", func(r *Renderer, screen *ebiten.Image, s *State) {
		r.drawSplashes(screen, s.Splashes, s.Profile.Splash.Glow)
	}},
	{"trail", func(r *Renderer, screen *ebiten.Image, s *State) {
		r.drawTrail(screen, s.Trail, s.Profile.Trail)
	}},
	{"tiles", func(r *Renderer, screen *ebiten.Image, s *State) {
		for i := range s.Tiles {
			r.drawTile(screen, &s.Tiles[i], s.Profile.Layout)
		}
	}},
	{"logo", func(r *Renderer, screen *ebiten.Image, s *State) {
		if s.Logo != nil {
			r.drawLogo(screen, s.Logo)
		}
	}},
	{"player", func(r *Renderer, screen *ebiten.Image, s *State) {
		r.drawPlayer(screen, &s.Player)
	}},
	{"enemies", func(r *Renderer, screen *ebiten.Image, s *State) {
		for i := range s.Enemies {
			r.drawEnemy(screen, &s.Enemies[i])
		}
	}},
}

// Draw renders one frame of the state. It reads the state and never
// changes it.
func (r *Renderer) Draw(screen *ebiten.Image, s *State) {
	for _, p := range drawPasses {
		p.draw(r, screen, s)
	}
}

func (r *Renderer) drawSplashes(screen *ebiten.Image, splashes *SplashSystem, glow float64) {
	for _, d := range splashes.Droplets() {
		r.drawGlowCircle(screen, d.X, d.Y, d.Size, glow, d.Color, d.Alpha)
	}
}

func (r *Renderer) drawTrail(screen *ebiten.Image, trail *Trail, cfg TrailProfile) {
	particles := trail.Particles()
	// Oldest first so the newest dot sits on top
	for i := len(particles) - 1; i >= 0; i-- {
		p := particles[i]
		r.drawGlowCircle(screen, p.X, p.Y, p.Size/2, cfg.Glow, p.Color, p.Alpha*cfg.Opacity)
	}
}

func (r *Renderer) drawTile(screen *ebiten.Image, t *MenuTile, cfg LayoutProfile) {
	accent := t.Accent()
	for i := glowSteps; i >= 1; i-- {
		spread := cfg.Glow * float64(i) / glowSteps
		a := 0.25 * (1 - float64(i)/(glowSteps+1))
		c := withAlpha(accent, a)
		r.fillRoundRect(screen, t.X-spread/2, t.Y-spread/2, t.Width+spread, t.Height+spread,
			cfg.CornerRadius+spread/2, c, c)
	}
	r.fillRoundRect(screen, t.X, t.Y, t.Width, t.Height, cfg.CornerRadius, t.Start, t.End)

	size := cfg.LabelSize
	if size <= 0 {
		size = 16
	}
	r.drawCenteredText(screen, t.Label, r.labelFace(size), t.X+t.Width/2, t.Y+t.Height/2, color.White)
}

func (r *Renderer) drawLogo(screen *ebiten.Image, l *Logo) {
	face := r.labelFace(l.Size)
	if face == nil {
		r.drawCenteredText(screen, l.Text, nil, l.X, l.Y, l.Start)
		return
	}

	tw, th := text.Measure(l.Text, face, 0)
	pad := l.Glow * r.scale
	w := int(math.Ceil(tw + 2*pad))
	h := int(math.Ceil(th + 2*pad))
	if w <= 0 || h <= 0 {
		return
	}
	if r.logoImage == nil || r.logoImage.Bounds().Dx() != w || r.logoImage.Bounds().Dy() != h {
		if r.logoImage != nil {
			r.logoImage.Deallocate()
			r.logoMask.Deallocate()
		}
		r.logoImage = ebiten.NewImage(w, h)
		r.logoMask = ebiten.NewImage(w, h)
	}
	img := r.logoImage
	img.Clear()

	// Glow: blurred-looking copies in the start colour under the text
	for i := glowSteps; i >= 1; i-- {
		off := pad * float64(i) / glowSteps
		a := 0.2 * (1 - float64(i)/(glowSteps+1))
		for _, d := range [][2]float64{{-off, 0}, {off, 0}, {0, -off}, {0, off}} {
			op := &text.DrawOptions{}
			op.GeoM.Translate(pad+d[0], pad+d[1])
			op.ColorScale.ScaleWithColor(withAlpha(l.Start, a))
			text.Draw(img, l.Text, face, op)
		}
	}

	// Text mask, then the horizontal gradient kept only where the mask is
	mask := r.logoMask
	mask.Clear()
	op := &text.DrawOptions{}
	op.GeoM.Translate(pad, pad)
	text.Draw(mask, l.Text, face, op)

	r.appendQuad(0, 0, float64(w), float64(h), l.Start, l.End, true)
	mask.DrawTriangles(r.vertices, r.indices, r.whiteImage, &ebiten.DrawTrianglesOptions{
		Blend: ebiten.BlendSourceIn,
	})
	img.DrawImage(mask, nil)

	sx, sy := r.camera.WorldToScreen(l.X, l.Y)
	dop := &ebiten.DrawImageOptions{}
	dop.GeoM.Translate(sx-float64(w)/2, sy-float64(h)/2)
	screen.DrawImage(img, dop)
}

func (r *Renderer) drawPlayer(screen *ebiten.Image, p *Player) {
	x, y := r.camera.WorldToScreen(p.X, p.Y)
	size := float32(p.Size * r.scale)
	vector.DrawFilledRect(screen, float32(x), float32(y), size, size, p.Color, false)
}

func (r *Renderer) drawEnemy(screen *ebiten.Image, e *Enemy) {
	x, y := r.camera.WorldToScreen(e.X, e.Y)
	vector.DrawFilledCircle(screen, float32(x), float32(y), float32(e.Size/2*r.scale), e.Color, true)
}

// drawGlowCircle draws a filled circle with a soft halo of the same colour
func (r *Renderer) drawGlowCircle(screen *ebiten.Image, x, y, radius, glow float64, clr color.NRGBA, alpha float64) {
	if alpha <= 0 || radius <= 0 {
		return
	}
	sx, sy := r.camera.WorldToScreen(x, y)
	for i := glowSteps; i >= 1; i-- {
		spread := glow * float64(i) / glowSteps / 2
		a := alpha * 0.3 * (1 - float64(i)/(glowSteps+1))
		vector.DrawFilledCircle(screen, float32(sx), float32(sy), float32((radius+spread)*r.scale),
			withAlpha(clr, a), true)
	}
	vector.DrawFilledCircle(screen, float32(sx), float32(sy), float32(radius*r.scale), withAlpha(clr, alpha), true)
}

// fillRoundRect fills a rounded rectangle in logical coordinates with a
// diagonal gradient from the top-left (start) to the bottom-right (end)
func (r *Renderer) fillRoundRect(screen *ebiten.Image, x, y, w, h, radius float64, start, end color.NRGBA) {
	s := r.scale
	radius = math.Max(0, math.Min(radius, math.Min(w, h)/2))
	x0, y0 := float32(x*s), float32(y*s)
	x1, y1 := float32((x+w)*s), float32((y+h)*s)
	rad := float32(radius * s)

	var path vector.Path
	path.MoveTo(x0+rad, y0)
	path.ArcTo(x1, y0, x1, y1, rad)
	path.ArcTo(x1, y1, x0, y1, rad)
	path.ArcTo(x0, y1, x0, y0, rad)
	path.ArcTo(x0, y0, x1, y0, rad)
	path.Close()

	r.vertices, r.indices = path.AppendVerticesAndIndicesForFilling(r.vertices[:0], r.indices[:0])
	r.shadeDiagonal(float64(x0), float64(y0), float64(x1-x0), float64(y1-y0), start, end)
	screen.DrawTriangles(r.vertices, r.indices, r.whiteImage, &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
		FillRule:  ebiten.FillRuleNonZero,
	})
}

// shadeDiagonal colours the current vertices by their projection onto the
// rectangle diagonal
func (r *Renderer) shadeDiagonal(x, y, w, h float64, start, end color.NRGBA) {
	from := toColorful(start)
	to := toColorful(end)
	denom := w*w + h*h
	for i := range r.vertices {
		v := &r.vertices[i]
		t := 0.0
		if denom > 0 {
			t = ((float64(v.DstX)-x)*w + (float64(v.DstY)-y)*h) / denom
		}
		c := from.BlendRgb(to, clamp(t, 0, 1))
		a := lerp(float64(start.A), float64(end.A), clamp(t, 0, 1)) / 255
		v.SrcX, v.SrcY = 1, 1
		v.ColorR = float32(c.R)
		v.ColorG = float32(c.G)
		v.ColorB = float32(c.B)
		v.ColorA = float32(a)
	}
}

// appendQuad replaces the vertex buffer with an axis-aligned quad in device
// pixels shaded from start to end, horizontally or vertically
func (r *Renderer) appendQuad(x, y, w, h float64, start, end color.NRGBA, horizontal bool) {
	corners := [4][2]float64{{x, y}, {x + w, y}, {x, y + h}, {x + w, y + h}}
	r.vertices = r.vertices[:0]
	r.indices = append(r.indices[:0], 0, 1, 2, 1, 3, 2)
	for i, c := range corners {
		c0 := start
		if (horizontal && i%2 == 1) || (!horizontal && i >= 2) {
			c0 = end
		}
		r.vertices = append(r.vertices, ebiten.Vertex{
			DstX:   float32(c[0]),
			DstY:   float32(c[1]),
			SrcX:   1,
			SrcY:   1,
			ColorR: float32(c0.R) / 255,
			ColorG: float32(c0.G) / 255,
			ColorB: float32(c0.B) / 255,
			ColorA: float32(c0.A) / 255,
		})
	}
}

// drawCenteredText draws text centred on a logical point. A nil face uses
// the debug font.
func (r *Renderer) drawCenteredText(screen *ebiten.Image, str string, face text.Face, x, y float64, clr color.Color) {
	sx, sy := r.camera.WorldToScreen(x, y)
	if face == nil {
		// debug glyphs are 6x16
		ebitenutil.DebugPrintAt(screen, str, int(sx)-len(str)*3, int(sy)-8)
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(sx, sy)
	op.ColorScale.ScaleWithColor(clr)
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	text.Draw(screen, str, face, op)
}

func toColorful(c color.NRGBA) colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}

func withAlpha(c color.NRGBA, alpha float64) color.NRGBA {
	c.A = uint8(clamp(alpha, 0, 1) * float64(c.A))
	return c
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
