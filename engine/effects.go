package engine

import "time"

// EffectKind names a timed effect; each kind has at most one live instance per set
type EffectKind uint8

const (
	// EffectRoll is the dodge window of a roll
	EffectRoll EffectKind = iota
	// EffectRollCooldown runs from roll start until the next roll is allowed
	EffectRollCooldown
	// EffectHitFlash drives the damage flash intensity
	EffectHitFlash
	// EffectInvincibility is the post-hit damage immunity window
	EffectInvincibility
	// EffectGameOverReveal delays the game-over panel after death
	EffectGameOverReveal
	// EffectComboLabel is the hold-then-fade lifetime of the combo label
	EffectComboLabel
	// EffectHeartBreak is the breaking transition of a removed heart
	EffectHeartBreak

	effectKindCount
)

var effectNames = [effectKindCount]string{
	EffectRoll:           "roll",
	EffectRollCooldown:   "roll_cooldown",
	EffectHitFlash:       "hit_flash",
	EffectInvincibility:  "invincibility",
	EffectGameOverReveal: "game_over_reveal",
	EffectComboLabel:     "combo_label",
	EffectHeartBreak:     "heart_break",
}

func (k EffectKind) String() string {
	if k >= effectKindCount {
		return "unknown"
	}
	return effectNames[k]
}

// TimedEffect is a (kind, start, duration) tuple stamped with the set generation it was started in
type TimedEffect struct {
	Kind       EffectKind
	Start      time.Time
	Duration   time.Duration
	Generation uint64
}

// Elapsed returns time since start, never negative
func (e TimedEffect) Elapsed(now time.Time) time.Duration {
	d := now.Sub(e.Start)
	if d < 0 {
		return 0
	}
	return d
}

// Progress returns elapsed/duration clamped to [0, 1]
func (e TimedEffect) Progress(now time.Time) float64 {
	if e.Duration <= 0 {
		return 1
	}
	p := float64(e.Elapsed(now)) / float64(e.Duration)
	if p > 1 {
		return 1
	}
	return p
}

// Done reports whether the effect duration has fully elapsed
func (e TimedEffect) Done(now time.Time) bool {
	return e.Elapsed(now) >= e.Duration
}

// EffectSet replaces independent timers with effects evaluated once per tick against a clock read
// Not safe for concurrent use; owned by the game loop goroutine
type EffectSet struct {
	slots      [effectKindCount]TimedEffect
	live       [effectKindCount]bool
	generation uint64
	expired    []EffectKind
}

// NewEffectSet creates an empty set at generation 1
func NewEffectSet() *EffectSet {
	return &EffectSet{
		generation: 1,
		expired:    make([]EffectKind, 0, effectKindCount),
	}
}

// Start begins or restarts the effect of the given kind, replacing a pending instance
func (s *EffectSet) Start(kind EffectKind, now time.Time, d time.Duration) {
	if kind >= effectKindCount {
		return
	}
	s.slots[kind] = TimedEffect{
		Kind:       kind,
		Start:      now,
		Duration:   d,
		Generation: s.generation,
	}
	s.live[kind] = true
}

// Cancel drops a pending effect without firing it, returns true if one was live
func (s *EffectSet) Cancel(kind EffectKind) bool {
	if kind >= effectKindCount || !s.live[kind] {
		return false
	}
	s.live[kind] = false
	return true
}

// CancelAll drops every pending effect and advances the generation
func (s *EffectSet) CancelAll() {
	for i := range s.live {
		s.live[i] = false
	}
	s.generation++
}

// Active reports whether an effect of the kind is pending
func (s *EffectSet) Active(kind EffectKind) bool {
	if kind >= effectKindCount {
		return false
	}
	return s.live[kind] && s.slots[kind].Generation == s.generation
}

// Get returns the pending effect of the kind
func (s *EffectSet) Get(kind EffectKind) (TimedEffect, bool) {
	if !s.Active(kind) {
		return TimedEffect{}, false
	}
	return s.slots[kind], true
}

// Generation returns the current generation
func (s *EffectSet) Generation() uint64 {
	return s.generation
}

// Len returns the number of pending effects
func (s *EffectSet) Len() int {
	n := 0
	for kind := EffectKind(0); kind < effectKindCount; kind++ {
		if s.Active(kind) {
			n++
		}
	}
	return n
}

// Expire removes and returns effects whose duration elapsed by now, in kind order
// Effects from an older generation are dropped silently
// The returned slice is reused by the next call
func (s *EffectSet) Expire(now time.Time) []EffectKind {
	s.expired = s.expired[:0]
	for kind := EffectKind(0); kind < effectKindCount; kind++ {
		if !s.live[kind] {
			continue
		}
		e := s.slots[kind]
		if e.Generation != s.generation {
			s.live[kind] = false
			continue
		}
		if e.Done(now) {
			s.live[kind] = false
			s.expired = append(s.expired, kind)
		}
	}
	return s.expired
}
