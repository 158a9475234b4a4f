package game

// SoundPlayer plays the interaction sounds. It is optional.
type SoundPlayer interface {
	PlaySplash()
	PlayChime()
}

// State is everything a session owns. One State per running game; nothing
// here is shared through package variables.
type State struct {
	Profile *Profile

	// Logical surface size
	Width, Height float64

	Player   Player
	Enemies  []Enemy
	Tiles    []MenuTile
	Logo     *Logo
	Trail    *Trail
	Splashes *SplashSystem

	// Frames stepped since start
	Frame uint64

	// Tile interactions fired so far, and the label of the latest one
	Hits    int
	LastHit string

	rng        Rand
	modal      Modal
	modalOpen  bool
	sounds     SoundPlayer
	collisions *CollisionSystem
}

// NewState builds a session for the profile at the given surface size.
// modal may be nil, in which case tile hits only splash and respawn.
func NewState(p *Profile, width, height float64, rng Rand, modal Modal) *State {
	s := &State{
		Profile:  p,
		Width:    width,
		Height:   height,
		Player:   NewPlayer(p.Player),
		Tiles:    NewTiles(p, width, height),
		Logo:     NewLogo(p, width, height),
		Trail:    NewTrail(p.Trail),
		Splashes: NewSplashSystem(p.Splash),
		rng:      rng,
		modal:    modal,
	}
	s.Enemies = make([]Enemy, 0, len(p.Enemies))
	for _, ep := range p.Enemies {
		s.Enemies = append(s.Enemies, NewEnemy(ep, width, height, rng))
	}
	s.Player.Clamp(width, height)
	s.collisions = NewCollisionSystem(s)
	return s
}

// SetSounds attaches a sound player; nil silences the session
func (s *State) SetSounds(sp SoundPlayer) {
	s.sounds = sp
}

// ModalOpen reports whether this session opened the modal and has not
// closed it since
func (s *State) ModalOpen() bool {
	return s.modalOpen
}

// Resize re-lays-out tiles, logo and enemy anchors for a new surface size
// and pulls the player back inside it
func (s *State) Resize(width, height float64) {
	if width <= 0 || height <= 0 {
		return
	}
	s.Width = width
	s.Height = height

	LayoutTiles(s.Tiles, s.Profile.Layout, width, height)
	if s.Logo != nil {
		s.Logo.Place(width, height)
	}
	for i := range s.Enemies {
		s.Enemies[i].Place(width, height)
	}
	s.Player.Clamp(width, height)
}

// Step advances the simulation one frame: modal close, player, enemies,
// collision, splash aging, trail
func (s *State) Step(in FrameInput) {
	if in.CloseModal {
		s.closeModal()
	}

	s.Player.Move(in.Movement, s.Width, s.Height)

	for i := range s.Enemies {
		UpdateEnemy(&s.Enemies[i], &s.Player, s.Width, s.Height, s.Profile.TurnChance, s.rng)
	}

	s.collisions.CheckCollisions()

	s.Splashes.Update()

	cx, cy := s.Player.Center()
	s.Trail.Update(cx, cy, s.Player.Size, s.rng)

	s.Frame++
}

func (s *State) openModal(content string) {
	if s.modal == nil {
		return
	}
	s.modal.Open(content)
	s.modalOpen = true
}

func (s *State) closeModal() {
	if s.modal == nil || !s.modalOpen {
		return
	}
	s.modal.Close()
	s.modalOpen = false
	if s.sounds != nil {
		s.sounds.PlayChime()
	}
}
