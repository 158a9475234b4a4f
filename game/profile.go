package game

import (
	"embed"
	"errors"
	"fmt"
	"image/color"
	"os"
	"path"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"
)

// DefaultProfileName is the canonical engine profile
const DefaultProfileName = "radial"

//go:embed profiles/*.yaml
var embeddedProfiles embed.FS

// HexColor is a colour written as "#rrggbb" in profile files
type HexColor struct {
	color.NRGBA
}

// UnmarshalYAML parses a hex colour scalar
func (h *HexColor) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return err
	}
	c, err := ParseHexColor(raw)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	h.NRGBA = c
	return nil
}

// ParseHexColor converts "#rrggbb" or "#rgb" into an opaque colour
func ParseHexColor(s string) (color.NRGBA, error) {
	c, err := colorful.Hex(strings.TrimSpace(s))
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid colour %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 255}, nil
}

// Gradient is a two-stop linear gradient
type Gradient struct {
	Start HexColor `yaml:"start"`
	End   HexColor `yaml:"end"`
}

// Anchor places an element relative to a reference point.
// For radial tiles the reference is the surface centre and FX/FY scale the
// layout radius; for enemies FX/FY scale the surface size.
type Anchor struct {
	FX float64 `yaml:"fx"`
	FY float64 `yaml:"fy"`
	OX float64 `yaml:"ox"`
	OY float64 `yaml:"oy"`
}

// LayoutKind selects how menu tiles are arranged
type LayoutKind string

const (
	LayoutRadial LayoutKind = "radial"
	LayoutGrid   LayoutKind = "grid"
)

// TouchRegion selects where a touch may start the joystick
type TouchRegion string

const (
	TouchRegionJoystick TouchRegion = "joystick"
	TouchRegionSurface  TouchRegion = "surface"
)

// PlayerProfile configures the player cube
type PlayerProfile struct {
	SpawnX float64  `yaml:"spawnX"`
	SpawnY float64  `yaml:"spawnY"`
	Size   float64  `yaml:"size"`
	Speed  float64  `yaml:"speed"`
	Color  HexColor `yaml:"color"`
}

// LayoutProfile configures menu tile placement
type LayoutProfile struct {
	Kind         LayoutKind `yaml:"kind"`
	RadiusFactor float64    `yaml:"radiusFactor"`
	TileWidth    float64    `yaml:"tileWidth"`
	TileHeight   float64    `yaml:"tileHeight"`
	CornerRadius float64    `yaml:"cornerRadius"`
	Columns      int        `yaml:"columns"`
	Gap          float64    `yaml:"gap"`
	Glow         float64    `yaml:"glow"`
	LabelSize    float64    `yaml:"labelSize"`
}

// TileProfile configures one menu tile
type TileProfile struct {
	Label    string   `yaml:"label"`
	Gradient Gradient `yaml:"gradient"`
	Anchor   Anchor   `yaml:"anchor"`
}

// LogoProfile configures the centred logo text
type LogoProfile struct {
	Text     string   `yaml:"text"`
	Size     float64  `yaml:"size"`
	OffsetY  float64  `yaml:"offsetY"`
	Glow     float64  `yaml:"glow"`
	Gradient Gradient `yaml:"gradient"`
}

// EnemyProfile configures one enemy agent
type EnemyProfile struct {
	Behavior string   `yaml:"behavior"`
	Size     float64  `yaml:"size"`
	Speed    float64  `yaml:"speed"`
	Color    HexColor `yaml:"color"`
	Anchor   Anchor   `yaml:"anchor"`
}

// TrailProfile configures the player trail
type TrailProfile struct {
	Length     int        `yaml:"length"`
	Frequency  int        `yaml:"frequency"`
	SizeFactor float64    `yaml:"sizeFactor"`
	Opacity    float64    `yaml:"opacity"`
	Glow       float64    `yaml:"glow"`
	Palette    []HexColor `yaml:"palette"`
}

// SplashProfile configures the paint splash burst
type SplashProfile struct {
	Count    int     `yaml:"count"`
	MinSpeed float64 `yaml:"minSpeed"`
	MaxSpeed float64 `yaml:"maxSpeed"`
	MinSize  float64 `yaml:"minSize"`
	MaxSize  float64 `yaml:"maxSize"`
	Gravity  float64 `yaml:"gravity"`
	Decay    float64 `yaml:"decay"`
	Glow     float64 `yaml:"glow"`
}

// RegionProfile is a rectangle expressed as fractions of the surface
type RegionProfile struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	W float64 `yaml:"w"`
	H float64 `yaml:"h"`
}

// InputProfile tunes the touch and tilt sources
type InputProfile struct {
	TouchRegion         TouchRegion   `yaml:"touchRegion"`
	JoystickRegion      RegionProfile `yaml:"joystickRegion"`
	JoystickRadius      float64       `yaml:"joystickRadius"`
	JoystickSensitivity float64       `yaml:"joystickSensitivity"`
	TiltLimit           float64       `yaml:"tiltLimit"`
	TiltLandscape       float64       `yaml:"tiltLandscape"`
	TiltPortrait        float64       `yaml:"tiltPortrait"`
	TiltSpeedFactor     float64       `yaml:"tiltSpeedFactor"`
}

// Profile is a complete engine configuration. The radial and grid variants
// of the landing page are two profiles of the same engine.
type Profile struct {
	Name       string         `yaml:"name"`
	Background HexColor       `yaml:"background"`
	Player     PlayerProfile  `yaml:"player"`
	Layout     LayoutProfile  `yaml:"layout"`
	Tiles      []TileProfile  `yaml:"tiles"`
	Logo       *LogoProfile   `yaml:"logo"`
	Enemies    []EnemyProfile `yaml:"enemies"`
	TurnChance float64        `yaml:"turnChance"`
	Trail      TrailProfile   `yaml:"trail"`
	Splash     SplashProfile  `yaml:"splash"`
	Input      InputProfile   `yaml:"input"`
}

// ProfileNames lists the embedded profiles
func ProfileNames() []string {
	entries, err := embeddedProfiles.ReadDir("profiles")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), path.Ext(e.Name())))
	}
	return names
}

// LoadProfile loads an embedded profile by name, or a YAML file when
// nameOrPath points at one
func LoadProfile(nameOrPath string) (*Profile, error) {
	if nameOrPath == "" {
		nameOrPath = DefaultProfileName
	}

	var data []byte
	if strings.HasSuffix(nameOrPath, ".yaml") || strings.HasSuffix(nameOrPath, ".yml") {
		b, err := os.ReadFile(nameOrPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read profile file: %w", err)
		}
		data = b
	} else {
		b, err := embeddedProfiles.ReadFile("profiles/" + nameOrPath + ".yaml")
		if err != nil {
			return nil, fmt.Errorf("unknown profile %q (available: %s): %w",
				nameOrPath, strings.Join(ProfileNames(), ", "), err)
		}
		data = b
	}

	return ParseProfile(data)
}

// ParseProfile decodes and validates a YAML profile
func ParseProfile(data []byte) (*Profile, error) {
	var p Profile
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("failed to parse profile YAML: %w", err)
	}
	if err := validateProfile(&p); err != nil {
		return nil, fmt.Errorf("invalid profile %q: %w", p.Name, err)
	}
	return &p, nil
}

// validateProfile checks the fields the engine divides by or indexes into
func validateProfile(p *Profile) error {
	if p.Player.Size <= 0 {
		return errors.New("player.size must be > 0")
	}
	if p.Player.Speed < 0 {
		return errors.New("player.speed must be >= 0")
	}

	switch p.Layout.Kind {
	case LayoutRadial:
	case LayoutGrid:
		if p.Layout.Columns < 1 {
			return fmt.Errorf("layout.columns must be >= 1 for grid layout, got %d", p.Layout.Columns)
		}
	default:
		return fmt.Errorf("layout.kind must be %q or %q, got %q", LayoutRadial, LayoutGrid, p.Layout.Kind)
	}
	if p.Layout.TileWidth <= 0 || p.Layout.TileHeight <= 0 {
		return errors.New("layout tile size must be > 0")
	}
	for i, t := range p.Tiles {
		if t.Label == "" {
			return fmt.Errorf("tiles[%d].label cannot be empty", i)
		}
	}

	for i, e := range p.Enemies {
		if _, err := ParseBehavior(e.Behavior); err != nil {
			return fmt.Errorf("enemies[%d]: %w", i, err)
		}
		if e.Size <= 0 {
			return fmt.Errorf("enemies[%d].size must be > 0", i)
		}
	}
	if p.TurnChance < 0 || p.TurnChance > 1 {
		return fmt.Errorf("turnChance must be within [0, 1], got %v", p.TurnChance)
	}

	if p.Trail.Length < 1 {
		return fmt.Errorf("trail.length must be >= 1, got %d", p.Trail.Length)
	}
	if p.Trail.Frequency < 1 {
		return fmt.Errorf("trail.frequency must be >= 1, got %d", p.Trail.Frequency)
	}
	if len(p.Trail.Palette) == 0 {
		return errors.New("trail.palette cannot be empty")
	}

	if p.Splash.Count < 1 {
		return fmt.Errorf("splash.count must be >= 1, got %d", p.Splash.Count)
	}
	if p.Splash.Decay <= 0 {
		return fmt.Errorf("splash.decay must be > 0, got %v", p.Splash.Decay)
	}
	if p.Splash.MaxSpeed < p.Splash.MinSpeed || p.Splash.MaxSize < p.Splash.MinSize {
		return errors.New("splash ranges must satisfy min <= max")
	}

	switch p.Input.TouchRegion {
	case TouchRegionJoystick, TouchRegionSurface:
	default:
		return fmt.Errorf("input.touchRegion must be %q or %q, got %q",
			TouchRegionJoystick, TouchRegionSurface, p.Input.TouchRegion)
	}
	if p.Input.TiltLimit <= 0 {
		return fmt.Errorf("input.tiltLimit must be > 0, got %v", p.Input.TiltLimit)
	}

	return nil
}
