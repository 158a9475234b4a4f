package game

import "testing"

func TestRadialLayout(t *testing.T) {
	p := mustProfile(t, "radial")
	tiles := NewTiles(p, 1024, 768)

	// centre (512, 384), radius min(1024, 768) * 0.25 = 192
	want := []struct {
		label string
		x, y  float64
	}{
		{"About Us", 362, 192},
		{"Blogs", 644, 324},
		{"Our Games", 362, 456},
		{"Contact", 260, 324},
	}
	if len(tiles) != len(want) {
		t.Fatalf("Expected %d tiles, got %d", len(want), len(tiles))
	}
	for i, w := range want {
		tl := tiles[i]
		if tl.Label != w.label || tl.X != w.x || tl.Y != w.y {
			t.Errorf("tile %d = %q at (%v, %v), want %q at (%v, %v)", i, tl.Label, tl.X, tl.Y, w.label, w.x, w.y)
		}
		if tl.Width != 120 || tl.Height != 120 {
			t.Errorf("tile %d size %vx%v, want 120x120", i, tl.Width, tl.Height)
		}
	}
}

func TestGridLayout(t *testing.T) {
	p := mustProfile(t, "grid")
	tiles := NewTiles(p, 1024, 768)

	// 2x2 grid of 120px tiles with a 40px gap is 280x280, centred
	want := [][2]float64{{372, 244}, {532, 244}, {372, 404}, {532, 404}}
	for i, w := range want {
		if tiles[i].X != w[0] || tiles[i].Y != w[1] {
			t.Errorf("tile %d at (%v, %v), want (%v, %v)", i, tiles[i].X, tiles[i].Y, w[0], w[1])
		}
	}
}

func TestGridLayoutColumnsClamped(t *testing.T) {
	tiles := make([]MenuTile, 3)
	for i := range tiles {
		tiles[i].Width, tiles[i].Height = 100, 50
	}
	LayoutTiles(tiles, LayoutProfile{Kind: LayoutGrid, Columns: 5, TileWidth: 100, TileHeight: 50, Gap: 10}, 400, 200)

	// three columns: width 320, origin x 40; one row: origin y 75
	for i, tl := range tiles {
		wantX := 40 + float64(i)*110
		if tl.X != wantX || tl.Y != 75 {
			t.Errorf("tile %d at (%v, %v), want (%v, 75)", i, tl.X, tl.Y, wantX)
		}
	}
}

func TestTileAccentIsGradientStart(t *testing.T) {
	p := mustProfile(t, "radial")
	tiles := NewTiles(p, 1024, 768)
	for i, tl := range tiles {
		if tl.Accent() != p.Tiles[i].Gradient.Start.NRGBA {
			t.Errorf("tile %d accent %v, want %v", i, tl.Accent(), p.Tiles[i].Gradient.Start.NRGBA)
		}
	}
}

func TestLogoPlacement(t *testing.T) {
	tests := []struct {
		profile      string
		wantX, wantY float64
	}{
		{"radial", 512, 354},
		{"grid", 512, 164},
	}
	for _, tt := range tests {
		t.Run(tt.profile, func(t *testing.T) {
			l := NewLogo(mustProfile(t, tt.profile), 1024, 768)
			if l == nil {
				t.Fatal("Expected a logo")
			}
			if l.X != tt.wantX || l.Y != tt.wantY || l.Text != "ATRYBUTE" {
				t.Errorf("logo %q at (%v, %v), want ATRYBUTE at (%v, %v)", l.Text, l.X, l.Y, tt.wantX, tt.wantY)
			}
		})
	}

	p := mustProfile(t, "radial")
	p.Logo = nil
	if NewLogo(p, 1024, 768) != nil {
		t.Error("Expected no logo when the profile has none")
	}
}
