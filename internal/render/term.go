package render

import (
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"
)

// Term maps CSS-pixel drawing onto terminal cells. One terminal row spans
// cellSize pixels and one column spans half that, so a square simulation cell
// covers two columns. Terminals have no per-cell alpha; fill colours are
// drawn opaque.
type Term struct {
	screen     tcell.Screen
	colW, rowH float64
	fill       tcell.Style
}

// NewTerm returns a surface drawing onto screen for the given cell size.
func NewTerm(screen tcell.Screen, cellSize float64) *Term {
	if !(cellSize > 0) {
		cellSize = 2
	}
	return &Term{
		screen: screen,
		colW:   cellSize / 2,
		rowH:   cellSize,
		fill:   tcell.StyleDefault.Reverse(true),
	}
}

// PixelsPerColumn returns the horizontal CSS-pixel span of a terminal column.
func (t *Term) PixelsPerColumn() float64 { return t.colW }

// PixelsPerRow returns the vertical CSS-pixel span of a terminal row.
func (t *Term) PixelsPerRow() float64 { return t.rowH }

// ClearRect implements background.Surface.
func (t *Term) ClearRect(x, y, w, h float64) {
	c0, r0, c1, r1, ok := t.covered(x, y, w, h)
	if !ok {
		return
	}
	for r := r0; r < r1; r++ {
		for c := c0; c < c1; c++ {
			t.screen.SetContent(c, r, ' ', nil, tcell.StyleDefault)
		}
	}
}

// SetFillColor implements background.Surface.
func (t *Term) SetFillColor(c color.Color) {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	t.fill = tcell.StyleDefault.Background(tcell.NewRGBColor(int32(n.R), int32(n.G), int32(n.B)))
}

// FillRect implements background.Surface. A terminal cell is painted when its
// centre lies inside the rectangle.
func (t *Term) FillRect(x, y, w, h float64) {
	c0, r0, c1, r1, ok := t.covered(x, y, w, h)
	if !ok {
		return
	}
	for r := r0; r < r1; r++ {
		for c := c0; c < c1; c++ {
			t.screen.SetContent(c, r, ' ', nil, t.fill)
		}
	}
}

// Show flushes pending changes to the terminal.
func (t *Term) Show() { t.screen.Show() }

// covered returns the terminal cells whose centres fall inside the rectangle.
func (t *Term) covered(x, y, w, h float64) (c0, r0, c1, r1 int, ok bool) {
	if w < 0 {
		x, w = x+w, -w
	}
	if h < 0 {
		y, h = y+h, -h
	}
	cols, rows := t.screen.Size()
	c0 = max(int(math.Ceil(x/t.colW-0.5)), 0)
	r0 = max(int(math.Ceil(y/t.rowH-0.5)), 0)
	c1 = min(int(math.Ceil((x+w)/t.colW-0.5)), cols)
	r1 = min(int(math.Ceil((y+h)/t.rowH-0.5)), rows)
	return c0, r0, c1, r1, c0 < c1 && r0 < r1
}
