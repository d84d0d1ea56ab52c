package components

// HealComponent is a falling pickup restoring one life
type HealComponent struct {
	ID            uint64
	X, Y          float64
	Width, Height float64
	Speed         float64
}

// Box returns the collision box
func (h *HealComponent) Box() Box {
	return Box{X: h.X, Y: h.Y, Width: h.Width, Height: h.Height}
}
