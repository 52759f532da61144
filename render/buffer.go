package render

import (
	"math"

	"github.com/gdamore/tcell/v2"
)

// Cell is one terminal cell with the depth of whatever was drawn into it
type Cell struct {
	Rune  rune
	Style tcell.Style
	Depth float64
}

var emptyCell = Cell{Rune: ' ', Style: tcell.StyleDefault, Depth: math.Inf(1)}

// Buffer is a depth-tested cell grid flushed to the screen once per frame
type Buffer struct {
	cells  []Cell
	width  int
	height int
}

// NewBuffer creates a cleared buffer
func NewBuffer(width, height int) *Buffer {
	b := &Buffer{}
	b.Resize(width, height)
	return b
}

// Resize adjusts dimensions, reallocating only if capacity is insufficient
func (b *Buffer) Resize(width, height int) {
	width, height = max(width, 0), max(height, 0)
	size := width * height
	if cap(b.cells) < size {
		b.cells = make([]Cell, size)
	} else {
		b.cells = b.cells[:size]
	}
	b.width, b.height = width, height
	b.Clear()
}

// Clear resets all cells using exponential copy
func (b *Buffer) Clear() {
	if len(b.cells) == 0 {
		return
	}
	b.cells[0] = emptyCell
	for filled := 1; filled < len(b.cells); filled *= 2 {
		copy(b.cells[filled:], b.cells[:filled])
	}
}

// Size returns buffer dimensions
func (b *Buffer) Size() (width, height int) {
	return b.width, b.height
}

func (b *Buffer) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// Cell returns the cell at x,y, out of bounds reads empty
func (b *Buffer) Cell(x, y int) Cell {
	if !b.inBounds(x, y) {
		return emptyCell
	}
	return b.cells[y*b.width+x]
}

// Plot draws r at x,y if depth is nearer than what is already there
func (b *Buffer) Plot(x, y int, r rune, style tcell.Style, depth float64) bool {
	if !b.inBounds(x, y) {
		return false
	}
	c := &b.cells[y*b.width+x]
	if depth >= c.Depth {
		return false
	}
	*c = Cell{Rune: r, Style: style, Depth: depth}
	return true
}

// Set draws r at x,y above all scene content
func (b *Buffer) Set(x, y int, r rune, style tcell.Style) {
	if !b.inBounds(x, y) {
		return
	}
	b.cells[y*b.width+x] = Cell{Rune: r, Style: style, Depth: math.Inf(-1)}
}

// Text writes s left to right as overlay, returns the column after the last rune
func (b *Buffer) Text(x, y int, s string, style tcell.Style) int {
	for _, r := range s {
		b.Set(x, y, r, style)
		x++
	}
	return x
}

// Flush copies the buffer to screen and shows it
func (b *Buffer) Flush(screen tcell.Screen) {
	for y := 0; y < b.height; y++ {
		row := b.cells[y*b.width : (y+1)*b.width]
		for x, c := range row {
			screen.SetContent(x, y, c.Rune, nil, c.Style)
		}
	}
	screen.Show()
}
