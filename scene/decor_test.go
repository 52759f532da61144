package scene

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/vi-stroll/asset"
)

func TestLogosFloatAroundFileHeight(t *testing.T) {
	d := newDecor()
	d.spawnLogos([]asset.Logo{
		{Label: "[Low]", Position: [3]float64{1, 0.25, 1}},
		{Label: "[High]", Position: [3]float64{-2, 3, 4}, Phase: math.Pi / 2},
	}, 0.5)

	heights := map[string]float64{}
	d.float(0)
	d.each(func(tr Transform, l Logo) { heights[l.Label] = tr.Pos.Y })
	require.Len(t, heights, 2)
	assert.InDelta(t, 0.25, heights["[Low]"], 1e-9)
	assert.InDelta(t, 3.5, heights["[High]"], 1e-9)

	for _, tm := range []float64{0.3, 1.7, 4.2} {
		d.float(tm)
		d.each(func(tr Transform, l Logo) {
			base := 0.25
			if l.Label == "[High]" {
				base = 3
			}
			assert.InDelta(t, base, tr.Pos.Y, 0.5+1e-9, "%s at t=%v", l.Label, tm)
		})
	}
}

func TestLogoHorizontalPositionFixed(t *testing.T) {
	d := newDecor()
	d.spawnLogos([]asset.Logo{{Label: "[A]", Position: [3]float64{6, 2, -8}}}, 0.5)
	d.float(1)
	d.each(func(tr Transform, _ Logo) {
		assert.Equal(t, 6.0, tr.Pos.X)
		assert.Equal(t, -8.0, tr.Pos.Z)
	})
}
