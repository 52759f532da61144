package input

// Key identifies a tracked key by its browser-style name
type Key string

const (
	KeyArrowUp    Key = "ArrowUp"
	KeyArrowDown  Key = "ArrowDown"
	KeyArrowLeft  Key = "ArrowLeft"
	KeyArrowRight Key = "ArrowRight"
	KeyShift      Key = "Shift"
)

// DirectionKeys are the keys that steer the character, in HUD order
var DirectionKeys = [4]Key{KeyArrowUp, KeyArrowLeft, KeyArrowDown, KeyArrowRight}

// IsDirection reports whether k steers the character
func IsDirection(k Key) bool {
	switch k {
	case KeyArrowUp, KeyArrowDown, KeyArrowLeft, KeyArrowRight:
		return true
	}
	return false
}

// runeKeys maps letter aliases onto arrows: WASD and vi hjkl
var runeKeys = map[rune]Key{
	'w': KeyArrowUp,
	'a': KeyArrowLeft,
	's': KeyArrowDown,
	'd': KeyArrowRight,
	'k': KeyArrowUp,
	'h': KeyArrowLeft,
	'j': KeyArrowDown,
	'l': KeyArrowRight,
}
