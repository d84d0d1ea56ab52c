package constants

import "time"

// World-to-cell mapping: one terminal cell covers CellWidth x CellHeight world units
const (
	CellWidth  = 10.0
	CellHeight = 20.0
)

// Screen layout rows reserved outside the playfield
const (
	// HUDRows is the score/hearts line at the top
	HUDRows = 1

	// StatusRows is the cooldown bar line at the bottom
	StatusRows = 1
)

// Heart widget
const (
	HeartChar        = '♥'
	HeartBrokenChar  = '♡'
	HeartBreakTime   = 500 * time.Millisecond
	HeartSpacing     = 2
	ScoreLabelPrefix = "Score: "
)

// Floating labels
const (
	MissLabelText = "Miss!!"

	// MissOpacityStep, MissScaleStep and MissRiseStep are per-frame label ramps
	MissOpacityStep = 0.02
	MissScaleStep   = 0.01
	MissRiseStep    = 0.5

	// ComboLabelHold is how long a combo label stays fully visible
	ComboLabelHold = 1000 * time.Millisecond

	// ComboLabelFade is the fade-out after the hold period
	ComboLabelFade = 300 * time.Millisecond

	ComboLabelFormat = "%d Combo! +%d"
)

// Roll cooldown indicator text
const (
	CooldownTextRolling = "[space] rolling!"
	CooldownTextCooling = "[space] cooldown (%d%%)"
	CooldownTextReady   = "[space] roll (ready)"
)

// Game-over panel
const (
	GameOverTitle  = "GAME OVER"
	GameOverHint   = "[r] restart   [q] quit"
	PausedTitle    = "PAUSED"
	PausedHint     = "[p] resume"
	GrayoutFactor  = 0.35
	PanelMinWidth  = 28
	PanelMinHeight = 7
)
