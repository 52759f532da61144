package input

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var t0 = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func TestTrackerPressRelease(t *testing.T) {
	tr := NewTracker(0, 0)
	assert.False(t, tr.Held(KeyArrowUp))

	tr.Press(KeyArrowUp, t0)
	assert.True(t, tr.Held(KeyArrowUp))
	assert.False(t, tr.Held(Key("Unknown")))

	tr.Release(KeyArrowUp)
	assert.False(t, tr.Held(KeyArrowUp))
}

func TestTrackerExpireUsesGraceUntilRepeat(t *testing.T) {
	tr := NewTracker(150*time.Millisecond, 550*time.Millisecond)
	tr.Press(KeyArrowLeft, t0)

	// Before the first auto-repeat the longer grace applies
	tr.Expire(t0.Add(400 * time.Millisecond))
	assert.True(t, tr.Held(KeyArrowLeft))

	// Repeat arrives, now the short window applies
	tr.Press(KeyArrowLeft, t0.Add(500*time.Millisecond))
	tr.Expire(t0.Add(600 * time.Millisecond))
	assert.True(t, tr.Held(KeyArrowLeft))

	tr.Expire(t0.Add(700 * time.Millisecond))
	assert.False(t, tr.Held(KeyArrowLeft))
}

func TestTrackerExpireDisabled(t *testing.T) {
	tr := NewTracker(0, 0)
	tr.Press(KeyShift, t0)
	tr.Expire(t0.Add(time.Hour))
	assert.True(t, tr.Held(KeyShift))
}

func TestTrackerHeldKeysSorted(t *testing.T) {
	tr := NewTracker(0, 0)
	tr.Press(KeyShift, t0)
	tr.Press(KeyArrowUp, t0)
	tr.Press(KeyArrowDown, t0)
	assert.Equal(t, []Key{KeyArrowDown, KeyArrowUp, KeyShift}, tr.HeldKeys())

	tr.ReleaseAll()
	assert.Empty(t, tr.HeldKeys())
}

func TestTrackerPointerNDC(t *testing.T) {
	tr := NewTracker(0, 0)
	tr.PointerMove(0, 0, 100, 50)
	x, y := tr.Pointer()
	assert.InDelta(t, -0.99, x, 1e-9)
	assert.InDelta(t, 0.98, y, 1e-9)

	tr.PointerMove(99, 49, 100, 50)
	x, y = tr.Pointer()
	assert.InDelta(t, 0.99, x, 1e-9)
	assert.InDelta(t, -0.98, y, 1e-9)
}

func TestTrackerClickVersusDrag(t *testing.T) {
	tr := NewTracker(0, 0)
	tr.PointerMove(10, 10, 80, 24)
	tr.PointerDown()
	assert.True(t, tr.Dragging())
	assert.True(t, tr.PointerUp(), "press and release in place is a click")
	assert.False(t, tr.Dragging())

	tr.PointerDown()
	tr.PointerMove(12, 10, 80, 24)
	assert.False(t, tr.PointerUp(), "movement while pressed is a drag")
}

func TestHandleKeyArrowsAndShift(t *testing.T) {
	tr := NewTracker(0, 0)

	in := tr.HandleEvent(tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModShift), 80, 24, t0)
	assert.Equal(t, IntentMove, in.Type)
	assert.True(t, tr.Held(KeyArrowUp))
	assert.True(t, tr.Held(KeyShift))

	// Unmodified report means the modifier was let go
	tr.HandleEvent(tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), 80, 24, t0)
	assert.False(t, tr.Held(KeyShift))
}

func TestHandleKeyRuneAliases(t *testing.T) {
	tests := []struct {
		r     rune
		want  Key
		shift bool
	}{
		{'w', KeyArrowUp, false},
		{'A', KeyArrowLeft, true},
		{'s', KeyArrowDown, false},
		{'d', KeyArrowRight, false},
		{'k', KeyArrowUp, false},
		{'H', KeyArrowLeft, true},
		{'j', KeyArrowDown, false},
		{'l', KeyArrowRight, false},
	}
	for _, tt := range tests {
		tr := NewTracker(0, 0)
		in := tr.HandleEvent(tcell.NewEventKey(tcell.KeyRune, tt.r, tcell.ModNone), 80, 24, t0)
		assert.Equal(t, IntentMove, in.Type, string(tt.r))
		assert.True(t, tr.Held(tt.want), string(tt.r))
		assert.Equal(t, tt.shift, tr.Held(KeyShift), string(tt.r))
	}
}

func TestHandleKeyCommands(t *testing.T) {
	tr := NewTracker(0, 0)
	tests := []struct {
		ev   *tcell.EventKey
		want IntentType
	}{
		{tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), IntentQuit},
		{tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), IntentQuit},
		{tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), IntentQuit},
		{tcell.NewEventKey(tcell.KeyRune, 'p', tcell.ModNone), IntentPause},
		{tcell.NewEventKey(tcell.KeyRune, 'm', tcell.ModNone), IntentToggleMute},
		{tcell.NewEventKey(tcell.KeyRune, '?', tcell.ModNone), IntentToggleHUD},
		{tcell.NewEventKey(tcell.KeyRune, 'z', tcell.ModNone), IntentNone},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tr.HandleEvent(tt.ev, 80, 24, t0).Type)
	}
	assert.Empty(t, tr.HeldKeys())
}

func TestHandleMouseDragScrollClick(t *testing.T) {
	tr := NewTracker(0, 0)

	// Hover without button: no intent
	in := tr.HandleEvent(tcell.NewEventMouse(10, 5, tcell.ButtonNone, tcell.ModNone), 100, 50, t0)
	assert.Equal(t, IntentNone, in.Type)

	// Press, move, release: drag then no click
	tr.HandleEvent(tcell.NewEventMouse(10, 5, tcell.Button1, tcell.ModNone), 100, 50, t0)
	require.True(t, tr.Dragging())
	in = tr.HandleEvent(tcell.NewEventMouse(20, 10, tcell.Button1, tcell.ModNone), 100, 50, t0)
	assert.Equal(t, IntentDrag, in.Type)
	assert.InDelta(t, 0.1, in.DX, 1e-9)
	assert.InDelta(t, 0.1, in.DY, 1e-9)
	in = tr.HandleEvent(tcell.NewEventMouse(20, 10, tcell.ButtonNone, tcell.ModNone), 100, 50, t0)
	assert.Equal(t, IntentNone, in.Type)
	assert.False(t, tr.Dragging())

	// Press and release in place: click
	tr.HandleEvent(tcell.NewEventMouse(30, 12, tcell.Button1, tcell.ModNone), 100, 50, t0)
	in = tr.HandleEvent(tcell.NewEventMouse(30, 12, tcell.ButtonNone, tcell.ModNone), 100, 50, t0)
	assert.Equal(t, IntentClick, in.Type)
	assert.Equal(t, 30, in.X)
	assert.Equal(t, 12, in.Y)

	in = tr.HandleEvent(tcell.NewEventMouse(30, 12, tcell.WheelUp, tcell.ModNone), 100, 50, t0)
	assert.Equal(t, Intent{Type: IntentScroll, Scroll: -1}, in)
	in = tr.HandleEvent(tcell.NewEventMouse(30, 12, tcell.WheelDown, tcell.ModNone), 100, 50, t0)
	assert.Equal(t, Intent{Type: IntentScroll, Scroll: 1}, in)
}

func TestHandleResize(t *testing.T) {
	tr := NewTracker(0, 0)
	in := tr.HandleEvent(tcell.NewEventResize(120, 40), 80, 24, t0)
	assert.Equal(t, Intent{Type: IntentResize, X: 120, Y: 40}, in)
}
