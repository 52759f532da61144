package input

import (
	"sort"
	"time"
)

type keyHold struct {
	lastSeen time.Time
	repeated bool
}

// Tracker records held keys and pointer state for the frame loop
// Owned by the frame loop goroutine, not safe for concurrent use
type Tracker struct {
	held map[Key]*keyHold

	holdTimeout      time.Duration
	firstRepeatGrace time.Duration

	// Pointer in normalized device coordinates, y up
	pointerX, pointerY float64
	// Last pointer cell, for drag deltas and clicks
	cellX, cellY int
	hasCell      bool

	dragging bool
	dragged  bool // movement seen since the current press
}

// NewTracker creates a tracker releasing keys not re-seen within holdTimeout
// (firstRepeatGrace applies until the first auto-repeat arrives).
// Zero timeouts disable expiry; keys then need explicit Release.
func NewTracker(holdTimeout, firstRepeatGrace time.Duration) *Tracker {
	return &Tracker{
		held:             make(map[Key]*keyHold),
		holdTimeout:      holdTimeout,
		firstRepeatGrace: firstRepeatGrace,
	}
}

// Press marks k held as of now
func (t *Tracker) Press(k Key, now time.Time) {
	if h, ok := t.held[k]; ok {
		h.lastSeen = now
		h.repeated = true
		return
	}
	t.held[k] = &keyHold{lastSeen: now}
}

// Release marks k no longer held
func (t *Tracker) Release(k Key) {
	delete(t.held, k)
}

// Held reports whether k is currently held
func (t *Tracker) Held(k Key) bool {
	_, ok := t.held[k]
	return ok
}

// Expire releases keys whose hold window elapsed
func (t *Tracker) Expire(now time.Time) {
	if t.holdTimeout <= 0 {
		return
	}
	for k, h := range t.held {
		window := t.holdTimeout
		if !h.repeated && t.firstRepeatGrace > window {
			window = t.firstRepeatGrace
		}
		if now.Sub(h.lastSeen) > window {
			delete(t.held, k)
		}
	}
}

// HeldKeys returns the held keys sorted by name
func (t *Tracker) HeldKeys() []Key {
	keys := make([]Key, 0, len(t.held))
	for k := range t.held {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

// ReleaseAll clears every held key
func (t *Tracker) ReleaseAll() {
	clear(t.held)
}

// Pointer returns the pointer position in normalized device coordinates
func (t *Tracker) Pointer() (x, y float64) {
	return t.pointerX, t.pointerY
}

// Dragging reports whether the primary button is down
func (t *Tracker) Dragging() bool {
	return t.dragging
}

// PointerDown starts a potential drag or click
func (t *Tracker) PointerDown() {
	t.dragging = true
	t.dragged = false
}

// PointerUp ends the drag; returns true when no movement happened since the press
func (t *Tracker) PointerUp() (click bool) {
	click = t.dragging && !t.dragged
	t.dragging = false
	t.dragged = false
	return click
}

// PointerMove records the pointer cell within a width x height surface and
// returns the movement delta as a fraction of the surface
func (t *Tracker) PointerMove(x, y, width, height int) (dx, dy float64) {
	if width > 0 && height > 0 {
		t.pointerX = (float64(x)+0.5)/float64(width)*2 - 1
		t.pointerY = -((float64(y)+0.5)/float64(height)*2 - 1)
	}

	if t.hasCell && width > 0 && height > 0 {
		dx = float64(x-t.cellX) / float64(width)
		dy = float64(y-t.cellY) / float64(height)
	}
	if t.dragging && (x != t.cellX || y != t.cellY) {
		t.dragged = true
	}

	t.cellX, t.cellY = x, y
	t.hasCell = true
	return dx, dy
}
