package input

// IntentType discriminates what a terminal event asks of the scene
type IntentType uint8

const (
	IntentNone IntentType = iota

	IntentQuit       // q, Esc, Ctrl+C
	IntentPause      // p
	IntentToggleMute // m
	IntentToggleHUD  // ?
	IntentResize     // terminal resize

	IntentMove   // directional key (tracker already updated)
	IntentDrag   // pointer moved while dragging
	IntentScroll // wheel notch
	IntentClick  // press and release without drag
)

// Intent is the per-event result handed to the scene
type Intent struct {
	Type IntentType

	// IntentDrag: pointer delta as a fraction of the screen size
	DX, DY float64

	// IntentScroll: +1 per notch toward the user (zoom out), -1 away (zoom in)
	Scroll int

	// IntentClick and IntentResize: cell position or new size
	X, Y int
}
