package input

// IntentType discriminates testbed actions bound to keys
type IntentType uint8

const (
	IntentNone IntentType = iota

	// System
	IntentQuit // Esc, Ctrl+C, q

	// Simulation control
	IntentTogglePause // space
	IntentSingleStep  // n
	IntentRestart     // r
	IntentFaster      // ] doubles the physics rate
	IntentSlower      // [ halves the physics rate

	// Scene selection
	IntentNextScene   // Tab
	IntentPrevScene   // Shift+Tab
	IntentSelectScene // 1-9

	// Display toggles
	IntentToggleShadows  // s
	IntentToggleContacts // c
	IntentToggleVSync    // v
	IntentToggleGUI      // g
)

var intentNames = map[IntentType]string{
	IntentNone:           "none",
	IntentQuit:           "quit",
	IntentTogglePause:    "toggle_pause",
	IntentSingleStep:     "single_step",
	IntentRestart:        "restart",
	IntentFaster:         "faster",
	IntentSlower:         "slower",
	IntentNextScene:      "next_scene",
	IntentPrevScene:      "prev_scene",
	IntentSelectScene:    "select_scene",
	IntentToggleShadows:  "toggle_shadows",
	IntentToggleContacts: "toggle_contacts",
	IntentToggleVSync:    "toggle_vsync",
	IntentToggleGUI:      "toggle_gui",
}

func (i IntentType) String() string {
	if name, ok := intentNames[i]; ok {
		return name
	}
	return "unknown"
}
