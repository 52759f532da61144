package render

import (
	"github.com/lixenwraith/vi-stroll/vmath"
)

// CharacterView is the character as drawn this frame
type CharacterView struct {
	Position vmath.Vec3F
	Yaw      float64
	Frame    []string
	Bob      float64
	Height   float64
	Color    string
}

// PropView is the pushable box as drawn this frame
type PropView struct {
	Position    vmath.Vec3F
	Orientation vmath.QuatF
	Half        float64
	Sleeping    bool
}

// LogoView is a floating label
type LogoView struct {
	Label    string
	Position vmath.Vec3F
	Color    string
	Selected bool
}

// KeyLamp is one entry of the held-key display
type KeyLamp struct {
	Label string
	Held  bool
}

// HUDView is the overlay below the scene
type HUDView struct {
	Keys    []KeyLamp
	Status  string
	Message string
	Paused  bool
}

// View is everything the renderer needs for one frame
// Nil entries are not loaded yet and are skipped
type View struct {
	Character  *CharacterView
	Prop       *PropView
	Logos      []LogoView
	GridCenter vmath.Vec3F
	HUD        HUDView
}
