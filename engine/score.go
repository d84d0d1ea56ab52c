package engine

import (
	"github.com/lixenwraith/rolldodge/constants"
)

// ComboPoints returns the award for the k-th credited dodge of a streak
func ComboPoints(k int) int {
	if k <= 0 {
		return 0
	}
	return constants.ComboPointsPerStep * k
}

// ComboStreakTotal returns the cumulative combo score of an n-dodge streak
func ComboStreakTotal(n int) int {
	if n <= 0 {
		return 0
	}
	return constants.ComboPointsPerStep * n * (n + 1) / 2
}

// AccrueBase adds one tick worth of base score
func (gs *GameState) AccrueBase() {
	gs.BaseScore++
	gs.refreshScore()
}

// AddCombo extends the streak and returns the new streak length and awarded points
func (gs *GameState) AddCombo() (combo, points int) {
	gs.Combo++
	if gs.Combo > gs.MaxCombo {
		gs.MaxCombo = gs.Combo
	}
	points = ComboPoints(gs.Combo)
	gs.ComboScore += points
	gs.refreshScore()
	return gs.Combo, points
}

// BreakCombo ends the streak, awarded points are kept
func (gs *GameState) BreakCombo() {
	gs.Combo = 0
}
