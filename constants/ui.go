package constants

// UI Text
const (
	TitleText        = "CYBER WORD INVADERS"
	GameOverText     = "SYSTEM COMPROMISED"
	RestartHintText  = "Press ENTER to restart"
	InstructionsText = "Type the falling words to neutralize threats"
	StartHintText    = "Start typing to begin!"
	InputPrompt      = "> "
	InputCursor      = "_"
)

// UI Layout
const (
	// HUDRows is the number of terminal rows above the field
	HUDRows = 1

	// FooterRows is the number of terminal rows below the field (input line)
	FooterRows = 1

	// ExplosionGlyph is drawn at a cleared word's last position
	ExplosionGlyph = '*'
)
