package input

import "github.com/gdamore/tcell/v2"

// KeyTable maps keys to testbed intents, unmapped keys go to the scene
type KeyTable struct {
	// Special keys (Ctrl+*, Esc, Tab)
	SpecialKeys map[tcell.Key]IntentType

	// Rune bindings
	Runes map[rune]IntentType
}

// DefaultKeyTable returns the default hotkeys
func DefaultKeyTable() *KeyTable {
	t := &KeyTable{
		SpecialKeys: map[tcell.Key]IntentType{
			tcell.KeyEscape:  IntentQuit,
			tcell.KeyCtrlC:   IntentQuit,
			tcell.KeyTab:     IntentNextScene,
			tcell.KeyBacktab: IntentPrevScene,
		},
		Runes: map[rune]IntentType{
			'q': IntentQuit,
			' ': IntentTogglePause,
			'n': IntentSingleStep,
			'r': IntentRestart,
			']': IntentFaster,
			'[': IntentSlower,
			's': IntentToggleShadows,
			'c': IntentToggleContacts,
			'v': IntentToggleVSync,
			'g': IntentToggleGUI,
		},
	}
	for r := '1'; r <= '9'; r++ {
		t.Runes[r] = IntentSelectScene
	}
	return t
}

// Lookup resolves a key event to an intent
func (t *KeyTable) Lookup(ev *tcell.EventKey) IntentType {
	if ev.Key() == tcell.KeyRune {
		return t.Runes[ev.Rune()]
	}
	return t.SpecialKeys[ev.Key()]
}
