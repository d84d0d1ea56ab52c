package render

import (
	"time"

	"github.com/lixenwraith/rolldodge/engine"
	"github.com/lixenwraith/rolldodge/ui"
)

// RenderContext provides frame state for renderers, passed by value
type RenderContext struct {
	// Time state
	GameTime time.Time
	Frame    int64
	IsPaused bool

	// Sound toggle state for the HUD indicator
	IsMuted bool

	Viewport Viewport

	// Session copy and presentation state, read-only for renderers
	World *engine.Snapshot
	HUD   *ui.View
}
