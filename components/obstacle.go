package components

// ObstacleComponent is a falling hazard
type ObstacleComponent struct {
	ID            uint64 // Identity for per-roll dodge credit
	X, Y          float64
	Width, Height float64
	Speed         float64 // Fall per tick, fixed at spawn
}

// Box returns the collision box
func (o *ObstacleComponent) Box() Box {
	return Box{X: o.X, Y: o.Y, Width: o.Width, Height: o.Height}
}
