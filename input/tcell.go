package input

import (
	"time"
	"unicode"

	"github.com/gdamore/tcell/v2"
)

// HandleEvent folds a terminal event into tracker state and returns the
// intent the scene should act on. width and height are the current screen size.
func (t *Tracker) HandleEvent(ev tcell.Event, width, height int, now time.Time) Intent {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return t.handleKey(ev, now)
	case *tcell.EventMouse:
		return t.handleMouse(ev, width, height)
	case *tcell.EventResize:
		w, h := ev.Size()
		return Intent{Type: IntentResize, X: w, Y: h}
	}
	return Intent{}
}

func (t *Tracker) handleKey(ev *tcell.EventKey, now time.Time) Intent {
	var dir Key
	shift := ev.Modifiers()&tcell.ModShift != 0

	switch ev.Key() {
	case tcell.KeyCtrlC, tcell.KeyEscape:
		return Intent{Type: IntentQuit}
	case tcell.KeyUp:
		dir = KeyArrowUp
	case tcell.KeyDown:
		dir = KeyArrowDown
	case tcell.KeyLeft:
		dir = KeyArrowLeft
	case tcell.KeyRight:
		dir = KeyArrowRight
	case tcell.KeyRune:
		r := ev.Rune()
		switch r {
		case 'q':
			return Intent{Type: IntentQuit}
		case 'p':
			return Intent{Type: IntentPause}
		case 'm':
			return Intent{Type: IntentToggleMute}
		case '?':
			return Intent{Type: IntentToggleHUD}
		}
		if unicode.IsUpper(r) {
			shift = true
			r = unicode.ToLower(r)
		}
		k, ok := runeKeys[r]
		if !ok {
			return Intent{}
		}
		dir = k
	default:
		return Intent{}
	}

	t.Press(dir, now)
	// A directional report without the modifier means shift is up
	if shift {
		t.Press(KeyShift, now)
	} else {
		t.Release(KeyShift)
	}
	return Intent{Type: IntentMove}
}

func (t *Tracker) handleMouse(ev *tcell.EventMouse, width, height int) Intent {
	x, y := ev.Position()
	buttons := ev.Buttons()

	switch {
	case buttons&tcell.WheelUp != 0:
		t.PointerMove(x, y, width, height)
		return Intent{Type: IntentScroll, Scroll: -1}
	case buttons&tcell.WheelDown != 0:
		t.PointerMove(x, y, width, height)
		return Intent{Type: IntentScroll, Scroll: 1}
	}

	primary := buttons&tcell.Button1 != 0
	if primary && !t.dragging {
		t.PointerMove(x, y, width, height)
		t.PointerDown()
		return Intent{}
	}
	if !primary && t.dragging {
		t.PointerMove(x, y, width, height)
		if t.PointerUp() {
			return Intent{Type: IntentClick, X: x, Y: y}
		}
		return Intent{}
	}

	dx, dy := t.PointerMove(x, y, width, height)
	if t.dragging && (dx != 0 || dy != 0) {
		return Intent{Type: IntentDrag, DX: dx, DY: dy}
	}
	return Intent{}
}
