package ui

// Key names as reported by tea.KeyMsg.String().
const (
	keyCtrlC    = "ctrl+c"
	keyQuit     = "q"
	keyTab      = "tab"
	keyEnter    = "enter"
	keyEsc      = "esc"
	keySpace    = " "
	keyUp       = "up"
	keyDown     = "down"
	keyLeft     = "left"
	keyRight    = "right"
	keyJ        = "j"
	keyK        = "k"
	keyH        = "h"
	keyL        = "l"
	keyRecord   = "ctrl+r"
	keyEffects  = "ctrl+e"
	keyPrevTab  = "["
	keyNextTab  = "]"
	keyPageUp   = "pgup"
	keyPageDown = "pgdown"
)
