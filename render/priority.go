package render

// RenderPriority determines render order. Lower values render first
type RenderPriority int

const (
	PriorityBackground RenderPriority = iota
	PriorityEntities
	PriorityPlayer
	PriorityParticle
	PriorityLabels
	PriorityPostProcess
	PriorityUI
	PriorityOverlay
)
