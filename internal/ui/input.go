package ui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/diegok/pixbreak/internal/protocol"
)

// MoveTimeout is how many frames a move lasts without a repeated key press.
// Terminals report no key releases, so holding a key is seen as auto-repeat.
const MoveTimeout = 12

// KeyToDirection converts a key event to a movement direction
// For Breakout, only left/right movement is allowed
func KeyToDirection(key tcell.Key, r rune) protocol.Direction {
	switch key {
	case tcell.KeyLeft:
		return protocol.DirLeft
	case tcell.KeyRight:
		return protocol.DirRight
	case tcell.KeyRune:
		switch r {
		case 'a', 'A', 'h':
			return protocol.DirLeft
		case 'd', 'D', 'l':
			return protocol.DirRight
		}
	}
	return protocol.DirNone
}

// KeyToInput converts a key event to a session input. ok is false for keys
// the game does not use.
func KeyToInput(key tcell.Key, r rune) (in protocol.Input, ok bool) {
	if dir := KeyToDirection(key, r); dir != protocol.DirNone {
		return protocol.MoveStart(dir), true
	}
	if IsLaunchKey(key, r) {
		return protocol.Launch(), true
	}
	if IsStopKey(key, r) {
		return protocol.MoveStop(), true
	}
	return protocol.Input{}, false
}

// IsLaunchKey returns true for the key that releases the docked ball
func IsLaunchKey(key tcell.Key, r rune) bool {
	return key == tcell.KeyRune && r == ' '
}

// IsStopKey returns true for keys that halt the paddle right away
func IsStopKey(key tcell.Key, r rune) bool {
	if key == tcell.KeyDown {
		return true
	}
	return key == tcell.KeyRune && (r == 's' || r == 'S' || r == 'j')
}

// IsQuitKey returns true if the key should quit the application
func IsQuitKey(key tcell.Key, r rune) bool {
	if key == tcell.KeyEscape || key == tcell.KeyCtrlC {
		return true
	}
	if key == tcell.KeyRune && (r == 'q' || r == 'Q') {
		return true
	}
	return false
}

// IsStartKey returns true if the key should start a new game
func IsStartKey(key tcell.Key) bool {
	return key == tcell.KeyEnter
}

// MoveTimer stops the paddle when the move key has not repeated for
// Timeout frames.
type MoveTimer struct {
	Timeout  int
	deadline int
	active   bool
}

func NewMoveTimer() *MoveTimer {
	return &MoveTimer{Timeout: MoveTimeout}
}

// Touch records a move key press at frame tick
func (m *MoveTimer) Touch(tick int) {
	m.active = true
	m.deadline = tick + m.Timeout
}

// Reset forgets any pending move
func (m *MoveTimer) Reset() {
	m.active = false
}

// Expired reports, once, that the move lapsed at frame tick
func (m *MoveTimer) Expired(tick int) bool {
	if m.active && tick >= m.deadline {
		m.active = false
		return true
	}
	return false
}
