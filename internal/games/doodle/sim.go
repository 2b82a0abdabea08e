package doodle

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/vovakirdan/tui-doodle/internal/config"
)

// Smallest viewport the level generator can work with. Resize requests
// below it are clamped.
const (
	MinViewportW = 100.0
	MinViewportH = 200.0
)

// ErrInvalidViewport is returned for viewport dimensions that are not finite.
var ErrInvalidViewport = errors.New("doodle: invalid viewport")

// EventKind classifies something notable that happened during a tick.
type EventKind int

const (
	EventJump     EventKind = iota // Landed on a Normal or Moving platform
	EventBreak                     // Landed on a Breakable platform, which broke
	EventBounce                    // Landed on a Bouncy platform
	EventPickup                    // Collected a power-up
	EventExpire                    // A power-up effect ran out
	EventGameOver                  // The run ended
)

// String returns the name of the event kind.
func (k EventKind) String() string {
	switch k {
	case EventJump:
		return "jump"
	case EventBreak:
		return "break"
	case EventBounce:
		return "bounce"
	case EventPickup:
		return "pickup"
	case EventExpire:
		return "expire"
	case EventGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Event is a notable occurrence during a tick. Platform is set for landing
// events, PowerUp for pickup and expiry events, Cause for game over.
type Event struct {
	Kind     EventKind
	Platform PlatformKind
	PowerUp  PowerUpKind
	Cause    EndCause
}

// EndCause tells why a run ended.
type EndCause int

const (
	CauseNone    EndCause = iota
	CauseFell             // Dropped below the viewport
	CauseMonster          // Touched a monster without a shield
)

// String returns the name of the cause.
func (c EndCause) String() string {
	switch c {
	case CauseNone:
		return "none"
	case CauseFell:
		return "fell"
	case CauseMonster:
		return "monster"
	default:
		return "unknown"
	}
}

// TickResult reports the outcome of one simulation tick.
type TickResult struct {
	Over   bool
	Cause  EndCause
	Events []Event
}

// Simulation owns the authoritative state of one game. It is not safe for
// concurrent use; a single scheduler callback drives it.
type Simulation struct {
	cfg        config.DoodleConfig
	gen        *Generator
	difficulty *config.DifficultyManager

	width, height float64
	targetCount   int

	player    Player
	platforms []Platform
	monsters  []Monster
	powerUps  []PowerUp
	effects   []Effect

	score int
	ticks int
	over  bool
	cause EndCause
}

// NewSimulation creates a simulation for a viewport and builds its first level.
func NewSimulation(cfg config.DoodleConfig, width, height float64, seed int64) (*Simulation, error) {
	w, h, err := sanitizeViewport(width, height)
	if err != nil {
		return nil, err
	}

	s := &Simulation{
		cfg:        cfg,
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
		width:      w,
		height:     h,
	}
	s.gen = NewGenerator(seed, &s.cfg)
	s.Reset()
	return s, nil
}

// sanitizeViewport rejects non-finite sizes and clamps small ones.
func sanitizeViewport(width, height float64) (float64, float64, error) {
	if math.IsNaN(width) || math.IsNaN(height) || math.IsInf(width, 0) || math.IsInf(height, 0) {
		return 0, 0, fmt.Errorf("%w: %vx%v", ErrInvalidViewport, width, height)
	}
	return max(width, MinViewportW), max(height, MinViewportH), nil
}

// Reset starts a fresh run: new player, new level, zero score, no effects.
func (s *Simulation) Reset() {
	x, y := s.gen.StartPosition(s.width, s.height)
	s.player = Player{
		Motion:    Motion{X: x, Y: y},
		W:         s.cfg.Player.Width,
		H:         s.cfg.Player.Height,
		Speed:     s.cfg.Player.Speed,
		JumpForce: s.cfg.Player.JumpForce,
	}
	s.effects = nil
	s.score = 0
	s.ticks = 0
	s.over = false
	s.cause = CauseNone
	s.targetCount = s.gen.PlatformCount(s.height)
	s.regenerateLevel()
}

// Reseed restarts the level generator's random stream.
func (s *Simulation) Reseed(seed int64) {
	s.gen.Reset(seed)
}

// Resize adapts the simulation to new viewport dimensions. The player is
// clamped into the new viewport and the level is rebuilt around it.
func (s *Simulation) Resize(width, height float64) error {
	w, h, err := sanitizeViewport(width, height)
	if err != nil {
		return err
	}
	s.width = w
	s.height = h
	s.targetCount = s.gen.PlatformCount(h)

	s.player.X = max(0, min(s.player.X, w-s.player.W))
	s.player.Y = max(0, min(s.player.Y, h-s.player.H))

	s.regenerateLevel()
	return nil
}

// regenerateLevel replaces every platform, monster and power-up with a
// fresh level whose lowest platform is the start platform.
func (s *Simulation) regenerateLevel() {
	s.syncSpeedScale()
	pc := s.cfg.Platforms
	count := s.targetCount
	topY := s.height - pc.StartOffset - float64(count-1)*pc.Spacing

	band := s.gen.GenerateBand(s.width, topY, count, false)
	s.platforms = band.Platforms
	s.monsters = band.Monsters
	s.powerUps = band.PowerUps
}

func (s *Simulation) syncSpeedScale() {
	s.gen.SpeedScale = s.difficulty.Speed(1, s.score, s.ticks)
}

// Tick advances the game by one fixed step. now is read once by the caller
// so every effect in the tick expires against the same instant. After the
// run ends further ticks change nothing.
func (s *Simulation) Tick(now time.Time) TickResult {
	if s.over {
		return TickResult{Over: true, Cause: s.cause}
	}
	s.ticks++

	var events []Event
	events = s.expireEffects(now, events)

	s.player.Motion = Integrate(s.player.Motion, s.cfg.Physics.Gravity, s.cfg.Physics.TerminalVelocity)

	s.advancePlatforms()
	for i := range s.monsters {
		s.monsters[i].advance()
	}

	s.scroll()

	events = s.resolvePlatforms(events)

	if s.touchesMonster() {
		return s.end(CauseMonster, events)
	}

	events = s.collectPowerUps(now, events)

	s.wrap()

	if s.player.Y > s.height+s.cfg.Physics.FallMargin {
		return s.end(CauseFell, events)
	}

	return TickResult{Events: events}
}

func (s *Simulation) end(cause EndCause, events []Event) TickResult {
	s.over = true
	s.cause = cause
	events = append(events, Event{Kind: EventGameOver, Cause: cause})
	return TickResult{Over: true, Cause: cause, Events: events}
}

// expireEffects drops effects whose time is up. A flag is cleared only once
// no effect of its kind remains.
func (s *Simulation) expireEffects(now time.Time, events []Event) []Event {
	active := s.effects[:0]
	var expired [2]bool
	for _, e := range s.effects {
		if !e.Expiry.After(now) {
			expired[e.Kind] = true
			events = append(events, Event{Kind: EventExpire, PowerUp: e.Kind})
			continue
		}
		active = append(active, e)
	}
	s.effects = active

	if expired[PowerUpShield] {
		s.player.HasShield = s.hasEffect(PowerUpShield)
	}
	if expired[PowerUpJetpack] {
		s.player.HasJetpack = s.hasEffect(PowerUpJetpack)
	}
	return events
}

func (s *Simulation) hasEffect(kind PowerUpKind) bool {
	for _, e := range s.effects {
		if e.Kind == kind {
			return true
		}
	}
	return false
}

// advancePlatforms slides Moving platforms, reversing at the viewport edges.
func (s *Simulation) advancePlatforms() {
	for i := range s.platforms {
		p := &s.platforms[i]
		if p.Kind != PlatformMoving || p.State.Broken {
			continue
		}
		maxX := max(0, s.width-p.W)
		p.X += p.State.MoveSpeed * float64(p.State.MoveDirection)
		if p.X <= 0 {
			p.X = 0
			p.State.MoveDirection = 1
		} else if p.X >= maxX {
			p.X = maxX
			p.State.MoveDirection = -1
		}
	}
}

// scroll keeps the player in the lower half of the viewport by moving the
// world down, converts the climb into score, drops what fell off the bottom
// and refills the level from the top.
func (s *Simulation) scroll() {
	mid := s.height / 2
	if s.player.Y >= mid {
		return
	}

	diff := mid - s.player.Y
	s.player.Y = mid
	s.score += int(math.Floor(diff * s.cfg.Scroll.ScoreRate))

	platforms := s.platforms[:0]
	for _, p := range s.platforms {
		p.Y += diff
		if p.Y <= s.height {
			platforms = append(platforms, p)
		}
	}
	s.platforms = platforms

	monsters := s.monsters[:0]
	for _, m := range s.monsters {
		m.Y += diff
		if m.Y <= s.height {
			monsters = append(monsters, m)
		}
	}
	s.monsters = monsters

	powerUps := s.powerUps[:0]
	for _, pu := range s.powerUps {
		pu.Y += diff
		if pu.Y <= s.height {
			powerUps = append(powerUps, pu)
		}
	}
	s.powerUps = powerUps

	s.refill()
}

// refill tops the level back up to the target platform count. The newest
// platform lands near the top edge; any further ones stack upward above it.
func (s *Simulation) refill() {
	missing := s.targetCount - len(s.platforms)
	if missing <= 0 {
		return
	}
	s.syncSpeedScale()

	spacing := s.cfg.Platforms.Spacing
	highest := spacing
	for _, p := range s.platforms {
		highest = min(highest, p.Y)
	}
	bottom := min(0, highest-spacing)
	topY := bottom - float64(missing-1)*spacing

	band := s.gen.GenerateBand(s.width, topY, missing, true)
	s.platforms = append(s.platforms, band.Platforms...)
	s.monsters = append(s.monsters, band.Monsters...)
	s.powerUps = append(s.powerUps, band.PowerUps...)
}

// resolvePlatforms bounces a falling player off the first platform they
// land on. The player's top must be above the platform's midline so side
// and underside contacts are ignored.
func (s *Simulation) resolvePlatforms(events []Event) []Event {
	for i := range s.platforms {
		if s.player.VY <= 0 {
			break
		}
		p := &s.platforms[i]
		if !p.Active() {
			continue
		}
		if !s.player.Box().Overlaps(p.Box) {
			continue
		}
		if s.player.Y >= p.Y+p.H/2 {
			continue
		}
		events = append(events, s.resolveContact(p))
	}
	return events
}

func (s *Simulation) touchesMonster() bool {
	if s.player.HasShield {
		return false
	}
	box := s.player.Box()
	for _, m := range s.monsters {
		if box.Overlaps(m.Box) {
			return true
		}
	}
	return false
}

// collectPowerUps removes every touched power-up and starts its effect.
// Pickups of a kind already running add an independent effect.
func (s *Simulation) collectPowerUps(now time.Time, events []Event) []Event {
	box := s.player.Box()
	remaining := s.powerUps[:0]
	for _, pu := range s.powerUps {
		if !box.Overlaps(pu.Box) {
			remaining = append(remaining, pu)
			continue
		}
		s.effects = append(s.effects, Effect{Kind: pu.Kind, Expiry: now.Add(pu.Duration)})
		switch pu.Kind {
		case PowerUpShield:
			s.player.HasShield = true
		case PowerUpJetpack:
			s.player.HasJetpack = true
		}
		events = append(events, Event{Kind: EventPickup, PowerUp: pu.Kind})
	}
	s.powerUps = remaining
	return events
}

// wrap moves a player who left the viewport sideways to the opposite edge.
func (s *Simulation) wrap() {
	if s.player.X+s.player.W <= 0 {
		s.player.X = s.width - s.player.W
	} else if s.player.X >= s.width {
		s.player.X = 0
	}
}

// Score returns the current score.
func (s *Simulation) Score() int {
	return s.score
}

// Ticks returns the number of ticks simulated in the current run.
func (s *Simulation) Ticks() int {
	return s.ticks
}

// Over reports whether the run has ended.
func (s *Simulation) Over() bool {
	return s.over
}

// Cause returns why the run ended, or CauseNone.
func (s *Simulation) Cause() EndCause {
	return s.cause
}

// Player returns a copy of the player.
func (s *Simulation) Player() Player {
	return s.player
}

// Viewport returns the current viewport dimensions.
func (s *Simulation) Viewport() (float64, float64) {
	return s.width, s.height
}

// DifficultyLevel returns the current difficulty level in [0, 1].
func (s *Simulation) DifficultyLevel() float64 {
	return s.difficulty.Level(s.score, s.ticks)
}
