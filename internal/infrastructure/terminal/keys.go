// Package terminal is a tcell front-end for the simulation: a key pump that
// turns terminal key events into per-tick input and a character renderer.
package terminal

import (
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/younwookim/snowtux/internal/application/system"
)

// DefaultHold is how long a key counts as held after its last press or
// auto-repeat. Terminals report no key releases.
const DefaultHold = 150 * time.Millisecond

type action uint8

const (
	actionNone action = iota
	actionLeft
	actionRight
	actionJump
	actionCarry
	actionSkip
	actionConfirm
	actionQuit
	actionCount
)

func keyToAction(ev *tcell.EventKey) action {
	switch ev.Key() {
	case tcell.KeyLeft:
		return actionLeft
	case tcell.KeyRight:
		return actionRight
	case tcell.KeyUp:
		return actionJump
	case tcell.KeyEnter:
		return actionConfirm
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return actionQuit
	}
	switch ev.Rune() {
	case 'a', 'A', 'h':
		return actionLeft
	case 'd', 'D', 'l':
		return actionRight
	case 'w', 'W', 'k', ' ':
		return actionJump
	case 'c', 'C', 'x', 'X':
		return actionCarry
	case 'n', 'N':
		return actionSkip
	case 'q', 'Q':
		return actionQuit
	}
	return actionNone
}

// KeyTable collects key events from the pump goroutine and hands the
// simulation one InputState per tick.
type KeyTable struct {
	mu   sync.Mutex
	now  func() time.Time
	hold time.Duration

	last    [actionCount]time.Time
	skip    bool
	confirm bool
	quit    bool
}

// NewKeyTable creates a table; now defaults to time.Now and hold to DefaultHold
func NewKeyTable(now func() time.Time, hold time.Duration) *KeyTable {
	if now == nil {
		now = time.Now
	}
	if hold <= 0 {
		hold = DefaultHold
	}
	return &KeyTable{now: now, hold: hold}
}

// Press records one key event
func (t *KeyTable) Press(ev *tcell.EventKey) {
	a := keyToAction(ev)
	if a == actionNone {
		return
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	switch a {
	case actionSkip:
		t.skip = true
	case actionConfirm:
		t.confirm = true
	case actionQuit:
		t.quit = true
	default:
		t.last[a] = t.now()
	}
}

// Input returns the keys held right now. Skip and Confirm are reported once.
func (t *KeyTable) Input() system.InputState {
	t.mu.Lock()
	defer t.mu.Unlock()

	now := t.now()
	held := func(a action) bool {
		ts := t.last[a]
		return !ts.IsZero() && now.Sub(ts) < t.hold
	}
	in := system.InputState{
		Left:    held(actionLeft),
		Right:   held(actionRight),
		Jump:    held(actionJump),
		Carry:   held(actionCarry),
		Skip:    t.skip,
		Confirm: t.confirm,
	}
	t.skip, t.confirm = false, false
	return in
}

// Quit reports whether a quit key was pressed
func (t *KeyTable) Quit() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.quit
}

// Pump feeds screen events into t until the screen is finalized or a quit key
// arrives. Run it on its own goroutine.
func Pump(screen tcell.Screen, t *KeyTable) {
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}
		switch ev := ev.(type) {
		case *tcell.EventResize:
			screen.Sync()
		case *tcell.EventKey:
			t.Press(ev)
			if t.Quit() {
				return
			}
		}
	}
}
