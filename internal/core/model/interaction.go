package model

// FileEvent represents a file system event on the watched source.
type FileEvent struct {
	Path      string
	Operation string
}

// DisplayMode is the screen the terminal surface is showing.
type DisplayMode int

const (
	ModeNormal DisplayMode = iota
	ModeHelp
	ModeLoading
)

// InteractionState represents the current UI interaction state.
type InteractionState struct {
	Cursor        int // focused marker index, -1 when nothing is focused
	ShowHelp      bool
	IsPaused      bool
	IsLoading     bool
	StatusMessage string
}
