package ui

// HeartState is the display state of one life indicator
type HeartState uint8

const (
	HeartFull HeartState = iota
	HeartBreaking
)

// Heart is one life indicator
type Heart struct {
	State    HeartState
	Progress float64 // Breaking transition progress in [0, 1]
}

// CooldownState mirrors the roll availability shown in the status row
type CooldownState uint8

const (
	CooldownReady CooldownState = iota
	CooldownRolling
	CooldownCooling
)

func (s CooldownState) String() string {
	switch s {
	case CooldownRolling:
		return "rolling"
	case CooldownCooling:
		return "cooling"
	default:
		return "ready"
	}
}

// CooldownView is the roll cooldown indicator
type CooldownView struct {
	State    CooldownState
	Progress float64 // Cooling progress in [0, 1]
	Fill     float64 // Bar fill in [0, 1]
	Text     string
}

// LabelKind distinguishes floating label styles
type LabelKind uint8

const (
	LabelMiss LabelKind = iota
	LabelCombo
)

// FloatingLabel is a transient text anchored at world coordinates
type FloatingLabel struct {
	Kind    LabelKind
	Text    string
	X, Y    float64 // World units, X is the label centre
	Opacity float64 // [0, 1]
	Scale   float64 // [0, 1]
}

// GameOverView is the final results panel
type GameOverView struct {
	Visible   bool
	Score     int
	BestScore int
	MaxCombo  int
	NewBest   bool
}

// View is the presentation state consumed by the render stage
// Slices are owned by the presenter and valid until the next Advance or HandleEvent
type View struct {
	Hearts   []Heart
	Cooldown CooldownView
	Labels   []FloatingLabel
	GameOver GameOverView
}
