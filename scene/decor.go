package scene

import (
	"math"

	"github.com/mlange-42/ark/ecs"

	"github.com/lixenwraith/vi-stroll/asset"
	"github.com/lixenwraith/vi-stroll/vmath"
)

// Transform is a decor entity's world position
type Transform struct {
	Pos vmath.Vec3F
}

// Floater bobs an entity vertically: y = Base + sin(t + Phase) * Amplitude
type Floater struct {
	Base      float64
	Amplitude float64
	Phase     float64
}

// Logo marks a clickable label entity
type Logo struct {
	Index int
	Label string
	Link  string
	Color string
}

// decor holds the decorative entities in an ECS world
type decor struct {
	world    ecs.World
	spawner  *ecs.Map3[Transform, Floater, Logo]
	floaters *ecs.Filter2[Transform, Floater]
	logos    *ecs.Filter2[Transform, Logo]
	count    int
}

func newDecor() *decor {
	d := &decor{world: ecs.NewWorld()}
	d.spawner = ecs.NewMap3[Transform, Floater, Logo](&d.world)
	d.floaters = ecs.NewFilter2[Transform, Floater](&d.world)
	d.logos = ecs.NewFilter2[Transform, Logo](&d.world)
	return d
}

// spawnLogos adds one floating label entity per logo, bobbing around its file height
func (d *decor) spawnLogos(logos []asset.Logo, amplitude float64) {
	for _, l := range logos {
		pos := vmath.V3F(l.Position[0], l.Position[1], l.Position[2])
		d.spawner.NewEntity(
			&Transform{Pos: pos},
			&Floater{Base: pos.Y, Amplitude: amplitude, Phase: l.Phase},
			&Logo{Index: d.count, Label: l.Label, Link: l.Link, Color: l.Color},
		)
		d.count++
	}
}

// float moves every floater to its height at time t seconds
func (d *decor) float(t float64) {
	q := d.floaters.Query()
	for q.Next() {
		tr, f := q.Get()
		tr.Pos.Y = f.Base + math.Sin(t+f.Phase)*f.Amplitude
	}
}

// logoAt returns the logo with the given index
func (d *decor) logoAt(index int) (Logo, bool) {
	var found Logo
	ok := false
	q := d.logos.Query()
	for q.Next() {
		_, l := q.Get()
		if l.Index == index {
			found, ok = *l, true
		}
	}
	return found, ok
}

// each calls fn for every logo ordered by index
func (d *decor) each(fn func(tr Transform, l Logo)) {
	items := make([]struct {
		tr Transform
		l  Logo
	}, d.count)
	present := make([]bool, d.count)

	q := d.logos.Query()
	for q.Next() {
		tr, l := q.Get()
		if l.Index >= 0 && l.Index < d.count {
			items[l.Index].tr, items[l.Index].l = *tr, *l
			present[l.Index] = true
		}
	}
	for i, it := range items {
		if present[i] {
			fn(it.tr, it.l)
		}
	}
}
