package input

import (
	"github.com/gdamore/tcell/v2"
)

// KeyTable maps keys to intents
type KeyTable struct {
	// Special keys (Ctrl+*, arrows, Enter, Esc)
	SpecialKeys map[tcell.Key]IntentType

	// Printable rune bindings, Space included
	Runes map[rune]IntentType
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]IntentType{
			tcell.KeyCtrlC:  IntentQuit,
			tcell.KeyEscape: IntentQuit,
			tcell.KeyCtrlS:  IntentToggleSound,
			tcell.KeyEnter:  IntentConfirm,
			tcell.KeyLeft:   IntentMoveLeft,
			tcell.KeyRight:  IntentMoveRight,
		},
		Runes: map[rune]IntentType{
			'q': IntentQuit,
			'p': IntentPause,
			'r': IntentRestart,
			' ': IntentRoll,
			'a': IntentMoveLeft,
			'h': IntentMoveLeft,
			'd': IntentMoveRight,
			'l': IntentMoveRight,
		},
	}
}

// Lookup resolves a key event to an intent
// Ctrl+letter reported as a rune with ModCtrl resolves through the Ctrl key bindings
func (kt *KeyTable) Lookup(ev *tcell.EventKey) IntentType {
	if ev.Key() != tcell.KeyRune {
		return kt.SpecialKeys[ev.Key()]
	}
	r := ev.Rune()
	if ev.Modifiers()&tcell.ModCtrl != 0 {
		if r >= 'A' && r <= 'Z' {
			r += 'a' - 'A'
		}
		if r >= 'a' && r <= 'z' {
			return kt.SpecialKeys[tcell.KeyCtrlA+tcell.Key(r-'a')]
		}
	}
	return kt.Runes[r]
}
