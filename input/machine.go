package input

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/rolldodge/engine"
)

// Machine parses tcell events into intents and keeps the held-key state for tick sampling
type Machine struct {
	keyTable *KeyTable
	held     *HeldKeys
}

// NewMachine creates a machine with the given bindings, nil selects the defaults
func NewMachine(keyTable *KeyTable, holdWindow time.Duration) *Machine {
	if keyTable == nil {
		keyTable = DefaultKeyTable()
	}
	return &Machine{
		keyTable: keyTable,
		held:     NewHeldKeys(holdWindow),
	}
}

// Process parses a terminal event received at now
// Gameplay intents are also recorded for the next Sample
// Returns nil for events with no binding
func (m *Machine) Process(ev tcell.Event, now time.Time) *Intent {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		w, h := ev.Size()
		return &Intent{Type: IntentResize, Width: w, Height: h}
	case *tcell.EventKey:
		return m.processKey(ev, now)
	}
	return nil
}

func (m *Machine) processKey(ev *tcell.EventKey, now time.Time) *Intent {
	t := m.keyTable.Lookup(ev)
	switch t {
	case IntentNone:
		return nil
	case IntentMoveLeft:
		m.held.PressLeft(now)
	case IntentMoveRight:
		m.held.PressRight(now)
	case IntentRoll:
		m.held.PressRoll()
	}
	return &Intent{Type: t}
}

// Sample builds the per-tick control input at now, consuming the roll edge
func (m *Machine) Sample(now time.Time) engine.Input {
	return engine.Input{
		Left:  m.held.Left(now),
		Right: m.held.Right(now),
		Roll:  m.held.TakeRoll(),
	}
}

// Reset releases all keys, used on restart and pause
func (m *Machine) Reset() {
	m.held.Reset()
}

// HoldWindow returns the effective held-key window
func (m *Machine) HoldWindow() time.Duration {
	return m.held.Window()
}
