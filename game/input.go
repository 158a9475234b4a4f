package game

import (
	"math"
	"sync"
)

// Key identifies a physical key the game listens to
type Key int

const (
	KeyW Key = iota
	KeyA
	KeyS
	KeyD
	KeyArrowUp
	KeyArrowLeft
	KeyArrowDown
	KeyArrowRight
	KeyEscape
)

// Event is a host input message consumed once per frame
type Event interface {
	isEvent()
}

// KeyEvent reports a key going down or up
type KeyEvent struct {
	Key  Key
	Down bool
}

// TouchPhase is the stage of a touch gesture
type TouchPhase int

const (
	TouchStart TouchPhase = iota
	TouchMove
	TouchEnd
)

// TouchEvent reports a touch in logical surface coordinates
type TouchEvent struct {
	Phase TouchPhase
	ID    int
	X, Y  float64
}

// OrientationEvent reports device tilt in degrees
type OrientationEvent struct {
	Gamma     float64 // left/right tilt
	Beta      float64 // front/back tilt
	Landscape bool
}

// PermissionEvent reports the answer to the orientation permission prompt
type PermissionEvent struct {
	Granted bool
}

// ModalCloseEvent asks for the modal to be closed
type ModalCloseEvent struct{}

func (KeyEvent) isEvent()         {}
func (TouchEvent) isEvent()       {}
func (OrientationEvent) isEvent() {}
func (PermissionEvent) isEvent()  {}
func (ModalCloseEvent) isEvent()  {}

// EventQueue collects events between frames. Host callbacks may fire from
// other goroutines on js/wasm, so access is locked.
type EventQueue struct {
	mu     sync.Mutex
	events []Event
}

// NewEventQueue creates an empty queue
func NewEventQueue() *EventQueue {
	return &EventQueue{events: make([]Event, 0, 16)}
}

// Push appends an event
func (q *EventQueue) Push(ev Event) {
	q.mu.Lock()
	q.events = append(q.events, ev)
	q.mu.Unlock()
}

// Drain returns the pending events in arrival order and empties the queue
func (q *EventQueue) Drain() []Event {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.events) == 0 {
		return nil
	}
	out := q.events
	q.events = make([]Event, 0, cap(out))
	return out
}

// SourceKind identifies the input source that produced a frame's movement
type SourceKind int

const (
	SourceNone SourceKind = iota
	SourceJoystick
	SourceKeyboard
	SourceOrientation
)

var sourceNames = map[SourceKind]string{
	SourceNone:        "none",
	SourceJoystick:    "joystick",
	SourceKeyboard:    "keyboard",
	SourceOrientation: "orientation",
}

func (k SourceKind) String() string {
	if name, ok := sourceNames[k]; ok {
		return name
	}
	return "unknown"
}

// Movement is the per-frame displacement requested by the active source.
// Every source, tilt included, is applied as a plain add to the position.
type Movement struct {
	DX, DY float64
	Source SourceKind
}

// FrameInput is what the simulation consumes each frame
type FrameInput struct {
	Movement   Movement
	CloseModal bool
}

// InputProvider defines one input source variant
type InputProvider interface {
	// Handle updates the provider state from a host event
	Handle(ev Event)

	// GetMovement returns the movement for this frame and whether the
	// provider is engaged
	GetMovement(speed float64) (Movement, bool)
}

// Capabilities describes the input hardware selected at startup
type Capabilities struct {
	Touch                      bool
	Orientation                bool
	OrientationNeedsPermission bool
}

// KeyboardInput tracks held movement keys
type KeyboardInput struct {
	held map[Key]bool
}

// NewKeyboardInput creates a keyboard provider with nothing held
func NewKeyboardInput() *KeyboardInput {
	return &KeyboardInput{held: make(map[Key]bool, 8)}
}

// Handle records key state changes
func (k *KeyboardInput) Handle(ev Event) {
	if ke, ok := ev.(KeyEvent); ok {
		k.held[ke.Key] = ke.Down
	}
}

// GetMovement adds ±speed per held direction
func (k *KeyboardInput) GetMovement(speed float64) (Movement, bool) {
	up := k.held[KeyW] || k.held[KeyArrowUp]
	down := k.held[KeyS] || k.held[KeyArrowDown]
	left := k.held[KeyA] || k.held[KeyArrowLeft]
	right := k.held[KeyD] || k.held[KeyArrowRight]
	if !up && !down && !left && !right {
		return Movement{}, false
	}

	m := Movement{Source: SourceKeyboard}
	if up {
		m.DY -= speed
	}
	if down {
		m.DY += speed
	}
	if left {
		m.DX -= speed
	}
	if right {
		m.DX += speed
	}
	return m, true
}

// JoystickInput is a virtual stick anchored where a touch starts
type JoystickInput struct {
	cfg           InputProfile
	width, height float64

	active         bool
	touchID        int
	startX, startY float64
	moveX, moveY   float64
}

// NewJoystickInput creates an idle joystick
func NewJoystickInput(cfg InputProfile) *JoystickInput {
	return &JoystickInput{cfg: cfg}
}

// SetSurface updates the size used to resolve the joystick region
func (j *JoystickInput) SetSurface(width, height float64) {
	j.width = width
	j.height = height
}

// Region returns the area where a touch may start the stick
func (j *JoystickInput) Region() Rect {
	if j.cfg.TouchRegion == TouchRegionSurface {
		return Rect{Width: j.width, Height: j.height}
	}
	r := j.cfg.JoystickRegion
	return Rect{
		X:      r.X * j.width,
		Y:      r.Y * j.height,
		Width:  r.W * j.width,
		Height: r.H * j.height,
	}
}

// Active reports whether a touch currently drives the stick
func (j *JoystickInput) Active() bool {
	return j.active
}

// Handle follows the first touch that starts inside the region
func (j *JoystickInput) Handle(ev Event) {
	te, ok := ev.(TouchEvent)
	if !ok {
		return
	}

	switch te.Phase {
	case TouchStart:
		if j.active || !pointInRect(te.X, te.Y, j.Region()) {
			return
		}
		j.active = true
		j.touchID = te.ID
		j.startX, j.startY = te.X, te.Y
		j.moveX, j.moveY = 0, 0

	case TouchMove:
		if !j.active || te.ID != j.touchID {
			return
		}
		dx := te.X - j.startX
		dy := te.Y - j.startY
		distance := math.Sqrt(dx*dx + dy*dy)
		maxDistance := j.cfg.JoystickRadius
		if distance > maxDistance {
			angle := math.Atan2(dy, dx)
			j.moveX = math.Cos(angle) * maxDistance
			j.moveY = math.Sin(angle) * maxDistance
		} else {
			j.moveX = dx
			j.moveY = dy
		}

	case TouchEnd:
		if !j.active || te.ID != j.touchID {
			return
		}
		j.active = false
		j.moveX, j.moveY = 0, 0
	}
}

// GetMovement scales the stick displacement by the sensitivity
func (j *JoystickInput) GetMovement(speed float64) (Movement, bool) {
	if !j.active {
		return Movement{}, false
	}
	return Movement{
		DX:     j.moveX * j.cfg.JoystickSensitivity,
		DY:     j.moveY * j.cfg.JoystickSensitivity,
		Source: SourceJoystick,
	}, true
}

// OrientationInput turns device tilt into a position nudge
type OrientationInput struct {
	cfg             InputProfile
	needsPermission bool
	granted         bool

	hasReading  bool
	gamma, beta float64
	landscape   bool
}

// NewOrientationInput creates a tilt provider; when needsPermission is set
// it stays inert until a granted PermissionEvent arrives
func NewOrientationInput(cfg InputProfile, needsPermission bool) *OrientationInput {
	return &OrientationInput{cfg: cfg, needsPermission: needsPermission}
}

// Enabled reports whether tilt readings are accepted
func (o *OrientationInput) Enabled() bool {
	return !o.needsPermission || o.granted
}

// Handle stores the latest tilt reading
func (o *OrientationInput) Handle(ev Event) {
	switch e := ev.(type) {
	case PermissionEvent:
		o.granted = e.Granted
		if !e.Granted {
			o.hasReading = false
		}
	case OrientationEvent:
		if !o.Enabled() {
			return
		}
		// A zero axis means the sensor has not reported yet
		if e.Gamma == 0 || e.Beta == 0 {
			o.hasReading = false
			return
		}
		o.hasReading = true
		o.gamma = e.Gamma
		o.beta = e.Beta
		o.landscape = e.Landscape
	}
}

// GetMovement maps the clamped tilt onto a speed-relative nudge
func (o *OrientationInput) GetMovement(speed float64) (Movement, bool) {
	if !o.Enabled() || !o.hasReading {
		return Movement{}, false
	}

	sensitivity := o.cfg.TiltPortrait
	if o.landscape {
		sensitivity = o.cfg.TiltLandscape
	}
	limit := o.cfg.TiltLimit
	gamma := clamp(o.gamma, -limit, limit) * sensitivity
	beta := clamp(o.beta, -limit, limit) * sensitivity

	return Movement{
		DX:     (gamma / limit) * speed * o.cfg.TiltSpeedFactor,
		DY:     (beta / limit) * speed * o.cfg.TiltSpeedFactor,
		Source: SourceOrientation,
	}, true
}

// InputAdapter merges the capability-selected providers into one movement
// per frame. Providers are ordered by priority and never blended.
type InputAdapter struct {
	providers   []InputProvider
	joystick    *JoystickInput
	orientation *OrientationInput
	last        SourceKind
}

// NewInputAdapter builds the provider set for the given hardware
func NewInputAdapter(caps Capabilities, cfg InputProfile) *InputAdapter {
	a := &InputAdapter{}
	if caps.Touch {
		a.joystick = NewJoystickInput(cfg)
		a.providers = append(a.providers, a.joystick)
	}
	a.providers = append(a.providers, NewKeyboardInput())
	if caps.Orientation {
		a.orientation = NewOrientationInput(cfg, caps.OrientationNeedsPermission)
		a.providers = append(a.providers, a.orientation)
	}
	return a
}

// SetSurface forwards the logical surface size to size-dependent providers
func (a *InputAdapter) SetSurface(width, height float64) {
	if a.joystick != nil {
		a.joystick.SetSurface(width, height)
	}
}

// Joystick returns the touch provider, or nil without touch support
func (a *InputAdapter) Joystick() *JoystickInput {
	return a.joystick
}

// Orientation returns the tilt provider, or nil without tilt support
func (a *InputAdapter) Orientation() *OrientationInput {
	return a.orientation
}

// LastSource returns the source that drove the previous frame
func (a *InputAdapter) LastSource() SourceKind {
	return a.last
}

// Consume applies this frame's events and returns the frame input
func (a *InputAdapter) Consume(events []Event, speed float64) FrameInput {
	var in FrameInput
	for _, ev := range events {
		switch e := ev.(type) {
		case ModalCloseEvent:
			in.CloseModal = true
			continue
		case KeyEvent:
			if e.Key == KeyEscape {
				if e.Down {
					in.CloseModal = true
				}
				continue
			}
		}
		for _, p := range a.providers {
			p.Handle(ev)
		}
	}

	for _, p := range a.providers {
		if m, ok := p.GetMovement(speed); ok {
			in.Movement = m
			break
		}
	}
	a.last = in.Movement.Source
	return in
}

func pointInRect(x, y float64, r Rect) bool {
	return x >= r.X && x <= r.X+r.Width && y >= r.Y && y <= r.Y+r.Height
}
