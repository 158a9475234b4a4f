package game

import (
	"errors"
	"fmt"
	"log"
	"runtime/debug"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// FPS below this, sustained over a half-second window, triggers a capture
const fpsDropThreshold = 55.0

// Game implements ebiten.Game for one session
type Game struct {
	config   Config
	state    *State
	renderer *Renderer
	camera   *Camera
	input    *InputAdapter
	queue    *EventQueue
	poller   *EbitenPoller
	debug    DebugState

	// overlay is set when the page has no modal element of its own
	overlay *OverlayModal

	releaseHost func()

	// FPS tracking
	fps              float64
	fpsUpdateCounter int
	fpsUpdateTimer   float64

	// Performance profiling, nil when disabled
	profiler *Profiler

	// Game start time to ignore FPS drops during startup
	gameStartTime time.Time

	// Last update time for delta time calculation
	lastUpdateTime time.Time

	// Outside size seen by the last Layout call
	outsideWidth, outsideHeight int
}

// NewGame creates a game for the config. A nil profile is loaded from
// config.Profile.
func NewGame(config Config, profile *Profile) (*Game, error) {
	if config.ScreenWidth <= 0 || config.ScreenHeight <= 0 {
		return nil, errors.New("screen size must be positive")
	}
	if profile == nil {
		p, err := LoadProfile(config.Profile)
		if err != nil {
			return nil, fmt.Errorf("failed to load profile: %w", err)
		}
		profile = p
	}

	profiler, err := NewProfiler(config.ProfileDir)
	if err != nil {
		return nil, err
	}

	width := float64(config.ScreenWidth)
	height := float64(config.ScreenHeight)

	queue := NewEventQueue()
	caps := detectCapabilities()
	log.Printf("[Game] Input capabilities: touch=%v orientation=%v permission=%v",
		caps.Touch, caps.Orientation, caps.OrientationNeedsPermission)

	var overlay *OverlayModal
	modal := newHostModal(queue)
	if modal == nil {
		overlay = NewOverlayModal()
		modal = overlay
	}

	input := NewInputAdapter(caps, profile.Input)
	input.SetSurface(width, height)

	camera := NewCamera(width, height, 1)

	g := &Game{
		config:         config,
		state:          NewState(profile, width, height, NewRand(config.Seed), modal),
		renderer:       NewRenderer(camera),
		camera:         camera,
		input:          input,
		queue:          queue,
		poller:         NewEbitenPoller(queue),
		debug:          DebugState{ShowOverlay: config.Debug},
		overlay:        overlay,
		releaseHost:    startOrientation(queue, caps),
		fps:            60.0,
		profiler:       profiler,
		gameStartTime:  time.Now(),
		lastUpdateTime: time.Now(),
		outsideWidth:   config.ScreenWidth,
		outsideHeight:  config.ScreenHeight,
	}

	log.Printf("[Game] Profile %q: %d tiles, %d enemies", profile.Name, len(g.state.Tiles), len(g.state.Enemies))
	return g, nil
}

// SetSounds attaches a sound player to the session
func (g *Game) SetSounds(sp SoundPlayer) {
	g.state.SetSounds(sp)
}

// State returns the session state
func (g *Game) State() *State {
	return g.state
}

// Close releases host callbacks
func (g *Game) Close() {
	if g.releaseHost != nil {
		g.releaseHost()
		g.releaseHost = nil
	}
}

// Update advances the game by one tick. It never returns an error: a panic
// inside a frame is logged and the loop carries on with the next one.
func (g *Game) Update() error {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[Game] Recovered from panic in frame %d: %v\n%s", g.state.Frame, r, debug.Stack())
		}
	}()

	now := time.Now()
	deltaTime := now.Sub(g.lastUpdateTime).Seconds()
	g.lastUpdateTime = now
	if deltaTime > 0.1 {
		deltaTime = 0.1
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		g.debug.ShowOverlay = !g.debug.ShowOverlay
	}

	g.updateFPS(deltaTime)

	g.poller.Poll(g.camera, g.overlay != nil && g.overlay.IsOpen())
	in := g.input.Consume(g.queue.Drain(), g.state.Player.Speed)
	g.state.Step(in)

	return nil
}

// updateFPS keeps a half-second FPS average and captures a profile when it
// drops after the startup grace period
func (g *Game) updateFPS(deltaTime float64) {
	g.fpsUpdateTimer += deltaTime
	g.fpsUpdateCounter++
	if g.fpsUpdateTimer < 0.5 {
		return
	}
	g.fps = float64(g.fpsUpdateCounter) / g.fpsUpdateTimer
	g.fpsUpdateCounter = 0
	g.fpsUpdateTimer = 0.0

	if g.profiler == nil || g.fps >= fpsDropThreshold || time.Since(g.gameStartTime) < 3*time.Second {
		return
	}
	reason := fmt.Sprintf("fps%.0f-splashes%d-trail%d", g.fps, g.state.Splashes.Len(), g.state.Trail.Len())
	if err := g.profiler.CaptureProfile(reason); err != nil {
		if !errors.Is(err, ErrProfilerBusy) {
			log.Printf("[Game] Failed to capture profile: %v", err)
		}
		return
	}
	log.Printf("[Game] FPS drop detected (%.0f FPS), capturing profile", g.fps)
}

// Draw renders the game
func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Draw(screen, g.state)
	if g.overlay != nil {
		g.overlay.Draw(screen, g.renderer, g.state.Width, g.state.Height)
	}
	if g.debug.ShowOverlay {
		DrawDebugOverlay(screen, g.renderer, g.state, g.input, g.fps)
	}
}

// Layout sizes the screen in device pixels and re-lays-out the world when
// the window changes
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	scale := 1.0
	if m := ebiten.Monitor(); m != nil {
		scale = m.DeviceScaleFactor()
	}
	if scale <= 0 {
		scale = 1
	}
	g.renderer.SetScale(scale)

	if outsideWidth > 0 && outsideHeight > 0 &&
		(outsideWidth != g.outsideWidth || outsideHeight != g.outsideHeight) {
		g.outsideWidth = outsideWidth
		g.outsideHeight = outsideHeight
		g.resize(float64(outsideWidth), float64(outsideHeight))
	}

	return int(float64(g.outsideWidth) * scale), int(float64(g.outsideHeight) * scale)
}

func (g *Game) resize(width, height float64) {
	g.camera.Width = width
	g.camera.Height = height
	g.state.Resize(width, height)
	g.input.SetSurface(width, height)
}
