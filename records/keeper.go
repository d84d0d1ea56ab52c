package records

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/rolldodge/events"
)

// Keeper stores session results at game over and serves the best score
// Register after the presenter so the panel compares against the previous best
type Keeper struct {
	store *Store
	log   zerolog.Logger
	now   func() time.Time
}

// NewKeeper creates a keeper, a nil store keeps nothing and reports 0
func NewKeeper(store *Store, log zerolog.Logger) *Keeper {
	return &Keeper{
		store: store,
		log:   log.With().Str("component", "records").Logger(),
		now:   time.Now,
	}
}

// Best implements ui.BestScoreSource
func (k *Keeper) Best() int {
	if k.store == nil {
		return 0
	}
	return k.store.Best()
}

// EventTypes implements events.Handler
func (k *Keeper) EventTypes() []events.EventType {
	return []events.EventType{events.EventGameOverShown}
}

// HandleEvent implements events.Handler
func (k *Keeper) HandleEvent(_ time.Time, ev events.GameEvent) {
	p, ok := ev.Payload.(*events.GameOverPayload)
	if !ok || k.store == nil {
		return
	}

	rank, err := k.store.Add(Record{
		SessionID: p.SessionID,
		Score:     p.Score,
		MaxCombo:  p.MaxCombo,
		Ticks:     p.Ticks,
		At:        k.now().UTC(),
	})
	if err != nil {
		k.log.Error().Err(err).Str("path", k.store.Path()).Msg("failed to save records")
		return
	}
	k.log.Info().Int("score", p.Score).Int("rank", rank).Msg("session recorded")
}
