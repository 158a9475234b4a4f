package game

import (
	"image/color"
	"math"
)

// MenuTile is a clickable-by-collision menu entry
type MenuTile struct {
	X, Y          float64
	Width, Height float64
	Label         string
	Start, End    color.NRGBA
	Anchor        Anchor
}

// Rect returns the tile's bounding box
func (t *MenuTile) Rect() Rect {
	return Rect{X: t.X, Y: t.Y, Width: t.Width, Height: t.Height}
}

// Accent is the colour used for splashes and glow
func (t *MenuTile) Accent() color.NRGBA {
	return t.Start
}

// Logo is the gradient title text. X, Y is the text centre.
type Logo struct {
	Text       string
	X, Y       float64
	Size       float64
	Glow       float64
	Start, End color.NRGBA
	offsetY    float64
}

// NewTiles creates the tiles of a profile laid out for the surface size
func NewTiles(p *Profile, width, height float64) []MenuTile {
	tiles := make([]MenuTile, len(p.Tiles))
	for i, tp := range p.Tiles {
		tiles[i] = MenuTile{
			Width:  p.Layout.TileWidth,
			Height: p.Layout.TileHeight,
			Label:  tp.Label,
			Start:  tp.Gradient.Start.NRGBA,
			End:    tp.Gradient.End.NRGBA,
			Anchor: tp.Anchor,
		}
	}
	LayoutTiles(tiles, p.Layout, width, height)
	return tiles
}

// NewLogo creates the profile logo, or nil when the profile has none
func NewLogo(p *Profile, width, height float64) *Logo {
	if p.Logo == nil || p.Logo.Text == "" {
		return nil
	}
	l := &Logo{
		Text:    p.Logo.Text,
		Size:    p.Logo.Size,
		Glow:    p.Logo.Glow,
		Start:   p.Logo.Gradient.Start.NRGBA,
		End:     p.Logo.Gradient.End.NRGBA,
		offsetY: p.Logo.OffsetY,
	}
	l.Place(width, height)
	return l
}

// Place centres the logo horizontally, offset vertically from the centre
func (l *Logo) Place(width, height float64) {
	l.X = width / 2
	l.Y = height/2 + l.offsetY
}

// LayoutTiles repositions tiles for the surface size
func LayoutTiles(tiles []MenuTile, cfg LayoutProfile, width, height float64) {
	switch cfg.Kind {
	case LayoutGrid:
		layoutGrid(tiles, cfg, width, height)
	default:
		layoutRadial(tiles, cfg, width, height)
	}
}

// layoutRadial places each tile at centre + anchor*radius + offset, where
// radius is a fraction of the smaller surface side
func layoutRadial(tiles []MenuTile, cfg LayoutProfile, width, height float64) {
	cx := width / 2
	cy := height / 2
	radius := math.Min(width, height) * cfg.RadiusFactor
	for i := range tiles {
		a := tiles[i].Anchor
		tiles[i].X = cx + a.FX*radius + a.OX
		tiles[i].Y = cy + a.FY*radius + a.OY
	}
}

// layoutGrid places tiles row-major in a grid centred on the surface
func layoutGrid(tiles []MenuTile, cfg LayoutProfile, width, height float64) {
	if len(tiles) == 0 {
		return
	}
	cols := cfg.Columns
	if cols < 1 {
		cols = 1
	}
	if cols > len(tiles) {
		cols = len(tiles)
	}
	rows := (len(tiles) + cols - 1) / cols

	gridW := float64(cols)*cfg.TileWidth + float64(cols-1)*cfg.Gap
	gridH := float64(rows)*cfg.TileHeight + float64(rows-1)*cfg.Gap
	originX := (width - gridW) / 2
	originY := (height - gridH) / 2

	for i := range tiles {
		col := i % cols
		row := i / cols
		tiles[i].X = originX + float64(col)*(cfg.TileWidth+cfg.Gap)
		tiles[i].Y = originY + float64(row)*(cfg.TileHeight+cfg.Gap)
	}
}
