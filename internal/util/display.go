package util

// Terminal control sequences
const (
	ClearScreen      = "\033[2J"     // Clear entire screen
	ClearToLineEnd   = "\033[0K"     // Clear from cursor to end of line
	ClearToScreenEnd = "\033[0J"     // Clear from cursor to end of screen
	MoveCursorHome   = "\033[H"      // Move cursor to home position
	HideCursor       = "\033[?25l"   // Hide cursor
	ShowCursor       = "\033[?25h"   // Show cursor
	EnterAltScreen   = "\033[?1049h" // Switch to alternate screen buffer
	ExitAltScreen    = "\033[?1049l" // Return to normal screen buffer
	EnableMouse      = "\033[?1000h" // Report button press and release
	DisableMouse     = "\033[?1000l" // Stop reporting mouse buttons
	EnableSGRMouse   = "\033[?1006h" // SGR extended mouse coordinates
	DisableSGRMouse  = "\033[?1006l" // Back to legacy mouse coordinates
)
