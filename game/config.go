package game

// Config holds startup configuration for a game session
type Config struct {
	// ScreenWidth is the initial window width in logical pixels
	ScreenWidth int

	// ScreenHeight is the initial window height in logical pixels
	ScreenHeight int

	// Profile is an embedded profile name ("radial", "grid") or a path to a YAML file
	Profile string

	// Seed seeds the session random source (0 picks a time-based seed)
	Seed int64

	// Mute disables sound effects
	Mute bool

	// Debug starts with the debug overlay visible
	Debug bool

	// ProfileDir receives CPU profiles captured on FPS drops (empty disables capture)
	ProfileDir string
}

// DefaultConfig returns a default configuration
func DefaultConfig() Config {
	return Config{
		ScreenWidth:  1024,
		ScreenHeight: 768,
		Profile:      DefaultProfileName,
	}
}
