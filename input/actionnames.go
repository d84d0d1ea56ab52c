package input

// actionRegistry maps canonical action names to intents
// Used by the bindings loader to resolve configured action strings
var actionRegistry = map[string]IntentType{
	"none":         IntentNone,
	"quit":         IntentQuit,
	"pause":        IntentPause,
	"toggle_sound": IntentToggleSound,
	"restart":      IntentRestart,
	"confirm":      IntentConfirm,
	"move_left":    IntentMoveLeft,
	"move_right":   IntentMoveRight,
	"roll":         IntentRoll,
}

var intentNames = func() map[IntentType]string {
	m := make(map[IntentType]string, len(actionRegistry)+1)
	for name, t := range actionRegistry {
		m[t] = name
	}
	m[IntentResize] = "resize"
	return m
}()

// LookupAction resolves an action name
func LookupAction(name string) (IntentType, bool) {
	t, ok := actionRegistry[name]
	return t, ok
}

// ActionNames returns every bindable action name
func ActionNames() []string {
	names := make([]string, 0, len(actionRegistry))
	for name := range actionRegistry {
		names = append(names, name)
	}
	return names
}
