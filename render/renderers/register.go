package renderers

import (
	"github.com/lixenwraith/rolldodge/render"
)

// RegisterAll registers the standard renderer set in draw order
func RegisterAll(o *render.RenderOrchestrator) {
	o.Register(NewBackgroundRenderer(), render.PriorityBackground)
	o.Register(NewObstacleRenderer(), render.PriorityEntities)
	o.Register(NewHealRenderer(), render.PriorityEntities)
	o.Register(NewPlayerRenderer(), render.PriorityPlayer)
	o.Register(NewSoulRenderer(), render.PriorityParticle)
	o.Register(NewLabelRenderer(), render.PriorityLabels)
	o.Register(NewGrayoutRenderer(), render.PriorityPostProcess)
	o.Register(NewHUDRenderer(), render.PriorityUI)
	o.Register(NewStatusBarRenderer(), render.PriorityUI)
	o.Register(NewGameOverRenderer(), render.PriorityOverlay)
	o.Register(NewPauseRenderer(), render.PriorityOverlay)
}
