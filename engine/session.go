package engine

import (
	"math"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/rolldodge/components"
	"github.com/lixenwraith/rolldodge/events"
)

// Input is the per-tick control sample
// Left and Right are level-triggered, Roll is a consumed press edge
type Input struct {
	Left  bool
	Right bool
	Roll  bool
}

// Session owns one game: state, player, entity stores and timed effects
// All methods run on the game loop goroutine
type Session struct {
	ID        string
	State     *GameState
	Player    components.PlayerComponent
	Obstacles []components.ObstacleComponent
	Heals     []components.HealComponent

	effects *EffectSet
	tuning  Tuning
	rng     *rand.Rand
	log     zerolog.Logger

	width, height float64

	now          time.Time
	nextID       uint64
	frame        int64 // Ticks since the current game started
	cooldownStep int   // Last reported cooldown bucket

	out []events.GameEvent
}

// Option configures a Session
type Option func(*Session)

// WithTuning overrides gameplay values, non-positive fields keep defaults
func WithTuning(t Tuning) Option {
	return func(s *Session) {
		s.tuning = t.normalized()
	}
}

// WithLogger attaches a logger
func WithLogger(l zerolog.Logger) Option {
	return func(s *Session) {
		s.log = l.With().Str("component", "session").Logger()
	}
}

// WithRand injects the spawn random source
func WithRand(r *rand.Rand) Option {
	return func(s *Session) {
		if r != nil {
			s.rng = r
		}
	}
}

// NewSession creates a session for a surface of width x height world units
func NewSession(width, height float64, opts ...Option) *Session {
	s := &Session{
		effects: NewEffectSet(),
		tuning:  DefaultTuning(),
		log:     zerolog.Nop(),
		width:   math.Max(0, width),
		height:  math.Max(0, height),
		out:     make([]events.GameEvent, 0, 16),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	s.reset()
	s.log.Info().Str("session", s.ID).Float64("width", s.width).Float64("height", s.height).Msg("session created")
	return s
}

// reset rebuilds state from scratch, shared by construction and restart
func (s *Session) reset() {
	s.ID = uuid.NewString()
	s.State = NewGameState()
	s.Player = newPlayer(s.width, s.height, s.tuning.PlayerSpeed)
	s.Obstacles = s.Obstacles[:0]
	s.Heals = s.Heals[:0]
	s.frame = 0
	s.cooldownStep = 0
}

// Update advances the session by one tick at game time now
// The returned events are valid until the next call to Update or Restart
func (s *Session) Update(now time.Time, in Input) []events.GameEvent {
	s.now = now
	s.frame++
	s.out = s.out[:0]

	for _, kind := range s.effects.Expire(now) {
		s.onExpire(kind)
	}
	s.reportCooldown()
	s.refreshHitFlash()
	s.advanceDeath()

	gs := s.State
	if gs.GameOver {
		return s.out
	}

	if in.Roll {
		s.startRoll()
	}

	gs.AccrueBase()
	s.movePlayer(in)
	s.advanceIdle()
	s.advanceRoll(in)

	if o, ok := s.maybeSpawnObstacle(); ok {
		s.emit(events.EventObstacleSpawned, &events.SpawnPayload{ID: o.ID, X: o.X, Speed: o.Speed})
		s.log.Debug().Uint64("id", o.ID).Float64("x", o.X).Float64("speed", o.Speed).Msg("obstacle spawned")
	}
	s.updateObstacles()

	if h, ok := s.maybeSpawnHeal(); ok {
		s.emit(events.EventHealSpawned, &events.SpawnPayload{ID: h.ID, X: h.X, Speed: h.Speed})
		s.log.Debug().Uint64("id", h.ID).Float64("x", h.X).Msg("heal spawned")
	}
	s.updateHeals()

	return s.out
}

func (s *Session) onExpire(kind EffectKind) {
	switch kind {
	case EffectRoll:
		s.endRoll()
	case EffectRollCooldown:
		s.finishCooldown()
	case EffectHitFlash:
		s.State.HitEffect = 0
	case EffectInvincibility:
		s.State.IsInvincible = false
	case EffectGameOverReveal:
		s.emit(events.EventGameOverShown, s.results())
		s.log.Info().Str("session", s.ID).Int("score", s.State.Score).Msg("game over")
	}
}

// updateObstacles moves each obstacle then resolves it, filtering in place
func (s *Session) updateObstacles() {
	kept := s.Obstacles[:0]
	for i := range s.Obstacles {
		o := s.Obstacles[i]
		o.Y += o.Speed
		if s.resolveObstacle(&o) {
			continue
		}
		if o.Y < s.height {
			kept = append(kept, o)
		}
	}
	s.Obstacles = kept
}

// updateHeals resolves each heal item then moves it, filtering in place
func (s *Session) updateHeals() {
	kept := s.Heals[:0]
	for i := range s.Heals {
		h := s.Heals[i]
		if s.resolveHeal(&h) {
			continue
		}
		h.Y += h.Speed
		if h.Y <= s.height {
			kept = append(kept, h)
		}
	}
	s.Heals = kept
}

// Restart cancels every pending effect and rebuilds the session
func (s *Session) Restart(now time.Time) []events.GameEvent {
	prev := s.ID
	s.now = now
	s.effects.CancelAll()
	s.reset()
	s.out = s.out[:0]
	s.emit(events.EventGameRestarted, &events.LivesPayload{Lives: s.State.Lives})
	s.log.Info().Str("session", s.ID).Str("previous", prev).Msg("session restarted")
	return s.out
}

// Resize updates the surface, re-anchoring the player to the bottom margin
func (s *Session) Resize(width, height float64) {
	s.width = math.Max(0, width)
	s.height = math.Max(0, height)
	p := &s.Player
	p.Y = playerY(s.height)
	p.X = math.Min(p.X, math.Max(0, s.width-p.Width))
}

// Size returns the surface dimensions in world units
func (s *Session) Size() (width, height float64) {
	return s.width, s.height
}

// Frame returns ticks since the current game started
func (s *Session) Frame() int64 {
	return s.frame
}

// EffectActive reports whether an effect of the kind is pending
func (s *Session) EffectActive(kind EffectKind) bool {
	return s.effects.Active(kind)
}

// CooldownProgress returns roll cooldown progress in [0, 1], 1 when ready
func (s *Session) CooldownProgress() float64 {
	if e, ok := s.effects.Get(EffectRollCooldown); ok {
		return e.Progress(s.now)
	}
	if s.State.CanRoll {
		return 1
	}
	return 0
}

func (s *Session) emit(t events.EventType, payload any) {
	s.out = append(s.out, events.GameEvent{
		Type:      t,
		Payload:   payload,
		Frame:     s.frame,
		Timestamp: s.now,
	})
}
