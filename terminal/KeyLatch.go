package terminal

import (
	"sync"
	"time"

	"Ponk/core"

	"github.com/gdamore/tcell"
)

type Action int

const (
	P1Up Action = iota
	P1Down
	P2Up
	P2Down
	actionCount
)

// HoldWindow is how long a key counts as held after an auto-repeat event.
// Terminals only report presses and auto-repeats, never releases.
const HoldWindow = 150 * time.Millisecond

// FirstHoldWindow covers the delay before a terminal starts auto-repeating,
// so a held key does not stall between its first event and the repeats.
const FirstHoldWindow = 500 * time.Millisecond

// KeyLatch turns key events into held key state. Events are written from
// the polling goroutine and read at the start of each tick.
type KeyLatch struct {
	mu    sync.Mutex
	first time.Duration
	hold  time.Duration
	until [actionCount]time.Time
}

func NewKeyLatch(first, hold time.Duration) *KeyLatch {
	return &KeyLatch{first: first, hold: hold}
}

// Press extends the hold of a. A press on a released key gets the first
// window, a repeat on a held key the shorter one; neither ever shortens it.
func (l *KeyLatch) Press(a Action, at time.Time) {
	l.mu.Lock()
	defer l.mu.Unlock()
	window := l.hold
	if !l.held(a, at) {
		window = l.first
	}
	if end := at.Add(window); end.After(l.until[a]) {
		l.until[a] = end
	}
}

func (l *KeyLatch) Held(a Action, now time.Time) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.held(a, now)
}

func (l *KeyLatch) held(a Action, now time.Time) bool {
	return now.Before(l.until[a])
}

// Input samples all four actions at once.
func (l *KeyLatch) Input(now time.Time) core.Input {
	l.mu.Lock()
	defer l.mu.Unlock()
	return core.Input{
		P1Up:   l.held(P1Up, now),
		P1Down: l.held(P1Down, now),
		P2Up:   l.held(P2Up, now),
		P2Down: l.held(P2Down, now),
	}
}

// actionOf maps a key event to a paddle action. W/S drive player one and the
// arrow keys drive player two.
func actionOf(ev *tcell.EventKey) (Action, bool) {
	switch ev.Key() {
	case tcell.KeyUp:
		return P2Up, true
	case tcell.KeyDown:
		return P2Down, true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'w', 'W':
			return P1Up, true
		case 's', 'S':
			return P1Down, true
		}
	}
	return 0, false
}

func isQuit(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q'
	}
	return false
}
