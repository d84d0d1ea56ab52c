package components

// Box is an axis-aligned rectangle in world units, origin at top-left
type Box struct {
	X, Y          float64
	Width, Height float64
}

// Overlaps reports intersection using strict comparisons on both axes,
// boxes that only share an edge do not overlap
func (b Box) Overlaps(o Box) bool {
	return b.X < o.X+o.Width &&
		b.X+b.Width > o.X &&
		b.Y < o.Y+o.Height &&
		b.Y+b.Height > o.Y
}

// CenterX returns the horizontal centre
func (b Box) CenterX() float64 {
	return b.X + b.Width/2
}

// CenterY returns the vertical centre
func (b Box) CenterY() float64 {
	return b.Y + b.Height/2
}
