package components

// PlayerComponent is the single player record of a session
type PlayerComponent struct {
	X, Y          float64
	Width, Height float64
	Speed         float64 // Horizontal movement per tick
	Direction     int     // -1 left, 1 right, persists from last horizontal input
	IsMoving      bool

	// Sprite animation counter, carried for sprite sheets; placeholder glyphs do not read it
	Frame      int
	FrameCount int
}

// Box returns the collision box
func (p *PlayerComponent) Box() Box {
	return Box{X: p.X, Y: p.Y, Width: p.Width, Height: p.Height}
}
