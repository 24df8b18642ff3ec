package interaction

import (
	"os"
	"strconv"

	"golang.org/x/sys/unix"
)

// KeyboardReader handles keyboard and mouse input in raw mode
type KeyboardReader struct {
	oldState *unix.Termios
	input    chan KeyEvent
	stop     chan struct{}
}

// KeyEvent represents a keyboard or mouse event. Row and Col are the 1-based
// terminal position of a mouse click.
type KeyEvent struct {
	Key  rune
	Type KeyType
	Row  int
	Col  int
}

// KeyType represents the type of key pressed
type KeyType int

const (
	KeyChar KeyType = iota
	KeyEscape
	KeyEnter
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyMouseClick
)

const (
	keyCtrlC = 3
	keyEsc   = 27
)

// NewKeyboardReader creates a new keyboard reader
func NewKeyboardReader() (*KeyboardReader, error) {
	kr := &KeyboardReader{
		input: make(chan KeyEvent, 10),
		stop:  make(chan struct{}),
	}

	// Set terminal to raw mode
	if err := kr.enableRawMode(); err != nil {
		return nil, err
	}

	go kr.readInput()

	return kr, nil
}

// readInput reads keyboard input in a goroutine
func (kr *KeyboardReader) readInput() {
	buf := make([]byte, 64)

	for {
		select {
		case <-kr.stop:
			return
		default:
			n, err := os.Stdin.Read(buf)
			if err != nil || n == 0 {
				continue
			}

			for _, event := range kr.parseInput(buf[:n]) {
				select {
				case kr.input <- event:
				case <-kr.stop:
					return
				}
			}
		}
	}
}

// parseInput parses raw input, which may hold several key presses or mouse
// reports.
func (kr *KeyboardReader) parseInput(buf []byte) []KeyEvent {
	var events []KeyEvent
	for len(buf) > 0 {
		event, n := parseOne(buf)
		if n == 0 {
			break
		}
		buf = buf[n:]
		if event != nil {
			events = append(events, *event)
		}
	}
	return events
}

// parseOne decodes the first event in buf and reports how many bytes it used.
func parseOne(buf []byte) (*KeyEvent, int) {
	switch buf[0] {
	case keyCtrlC:
		return &KeyEvent{Key: keyCtrlC, Type: KeyChar}, 1
	case '\r', '\n':
		return &KeyEvent{Key: rune(buf[0]), Type: KeyEnter}, 1
	case keyEsc:
		if len(buf) == 1 {
			return &KeyEvent{Key: keyEsc, Type: KeyEscape}, 1
		}
		if buf[1] != '[' || len(buf) < 3 {
			return &KeyEvent{Key: keyEsc, Type: KeyEscape}, 1
		}
		switch buf[2] {
		case 'A':
			return &KeyEvent{Type: KeyUp}, 3
		case 'B':
			return &KeyEvent{Type: KeyDown}, 3
		case 'C':
			return &KeyEvent{Type: KeyRight}, 3
		case 'D':
			return &KeyEvent{Type: KeyLeft}, 3
		case '<':
			return parseSGRMouse(buf)
		}
		return nil, 3
	}

	return &KeyEvent{Key: rune(buf[0]), Type: KeyChar}, 1
}

// parseSGRMouse decodes "ESC [ < button ; col ; row (M|m)". Only a left
// button press becomes an event.
func parseSGRMouse(buf []byte) (*KeyEvent, int) {
	end := -1
	for i := 3; i < len(buf); i++ {
		if buf[i] == 'M' || buf[i] == 'm' {
			end = i
			break
		}
	}
	if end < 0 {
		return nil, len(buf)
	}

	var fields [3]int
	field, start := 0, 3
	for i := 3; i <= end; i++ {
		if buf[i] != ';' && i != end {
			continue
		}
		if field > 2 {
			return nil, end + 1
		}
		v, err := strconv.Atoi(string(buf[start:i]))
		if err != nil {
			return nil, end + 1
		}
		fields[field] = v
		field++
		start = i + 1
	}
	if field != 3 || buf[end] != 'M' || fields[0] != 0 {
		return nil, end + 1
	}
	return &KeyEvent{Type: KeyMouseClick, Col: fields[1], Row: fields[2]}, end + 1
}

// IsQuit reports whether the event asks to leave the program.
func (e KeyEvent) IsQuit() bool {
	switch {
	case e.Type == KeyEscape:
		return true
	case e.Type == KeyChar && (e.Key == keyCtrlC || e.Key == 'q' || e.Key == 'Q'):
		return true
	}
	return false
}

// Events returns the keyboard event channel
func (kr *KeyboardReader) Events() <-chan KeyEvent {
	return kr.input
}

// Close stops the keyboard reader and restores terminal
func (kr *KeyboardReader) Close() error {
	close(kr.stop)
	return kr.disableRawMode()
}
