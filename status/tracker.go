package status

import (
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/rolldodge/events"
)

// Metric names
const (
	MetricRolls       = "rolls"
	MetricDodges      = "dodges"
	MetricHits        = "hits"
	MetricHeals       = "heals"
	MetricHealsWasted = "heals_wasted"
	MetricObstacles   = "obstacles_spawned"
	MetricHealItems   = "heal_items_spawned"
	MetricLongestRun  = "longest_combo"
	MetricTickMillis  = "tick_ms"
)

// Tracker counts session events and logs a run summary at game over
type Tracker struct {
	reg *Registry
	log zerolog.Logger

	// Cached at construction, indexed by event type
	counters map[events.EventType]*atomic.Int64
	longest  *AtomicFloat
}

// NewTracker creates a tracker writing into reg
func NewTracker(reg *Registry, log zerolog.Logger) *Tracker {
	return &Tracker{
		reg: reg,
		log: log.With().Str("component", "stats").Logger(),
		counters: map[events.EventType]*atomic.Int64{
			events.EventRollStarted:     reg.Counters.Get(MetricRolls),
			events.EventObstacleDodged:  reg.Counters.Get(MetricDodges),
			events.EventPlayerHit:       reg.Counters.Get(MetricHits),
			events.EventHealed:          reg.Counters.Get(MetricHeals),
			events.EventHealWasted:      reg.Counters.Get(MetricHealsWasted),
			events.EventObstacleSpawned: reg.Counters.Get(MetricObstacles),
			events.EventHealSpawned:     reg.Counters.Get(MetricHealItems),
		},
		longest: reg.Peaks.Get(MetricLongestRun),
	}
}

// EventTypes implements events.Handler
func (t *Tracker) EventTypes() []events.EventType {
	types := make([]events.EventType, 0, len(t.counters)+3)
	for et := range t.counters {
		types = append(types, et)
	}
	return append(types, events.EventComboAwarded, events.EventGameOverShown, events.EventGameRestarted)
}

// HandleEvent implements events.Handler
func (t *Tracker) HandleEvent(_ time.Time, ev events.GameEvent) {
	if c, ok := t.counters[ev.Type]; ok {
		c.Add(1)
		return
	}

	switch ev.Type {
	case events.EventComboAwarded:
		if p, ok := ev.Payload.(*events.ComboPayload); ok {
			t.longest.Max(float64(p.Combo))
		}
	case events.EventGameOverShown:
		e := t.log.Info()
		if p, ok := ev.Payload.(*events.GameOverPayload); ok {
			e = e.Str("session", p.SessionID).Int("score", p.Score)
		}
		t.reg.Fields(e).Msg("run summary")
	case events.EventGameRestarted:
		t.reg.ResetRun()
	}
}

// ObserveTick records the wall time spent in one loop iteration
func (t *Tracker) ObserveTick(d time.Duration) {
	t.reg.Gauges.Get(MetricTickMillis).Smooth(float64(d)/float64(time.Millisecond), 0.1)
}
