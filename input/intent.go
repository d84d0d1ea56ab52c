package input

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	// System-level intents
	IntentQuit        // q, Esc, Ctrl+C
	IntentPause       // p
	IntentToggleSound // Ctrl+S
	IntentResize      // Terminal resize event

	// Session control
	IntentRestart // r
	IntentConfirm // Enter, restarts from the game-over panel only

	// Gameplay, folded into the per-tick sample
	IntentMoveLeft  // Left, a, h
	IntentMoveRight // Right, d, l
	IntentRoll      // Space
)

// Intent is the parsed result of one terminal event
type Intent struct {
	Type IntentType

	// Resize carries the new terminal size in cells
	Width, Height int
}

// Gameplay reports whether the intent feeds the tick sample rather than the loop
func (t IntentType) Gameplay() bool {
	return t == IntentMoveLeft || t == IntentMoveRight || t == IntentRoll
}

func (t IntentType) String() string {
	if name, ok := intentNames[t]; ok {
		return name
	}
	return "unknown"
}
