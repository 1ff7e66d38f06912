// Package render provides drawing surfaces for the background simulator: an
// in-memory RGBA canvas, a gogpu/gg raster context and a tcell terminal.
package render

import (
	"image"
	"image/color"
	"math"

	"life-bg/internal/background"
)

// Canvas is an RGBA pixel buffer addressed in CSS pixels. Its backing store
// is scaled by the viewport's device pixel ratio.
type Canvas struct {
	img   *image.RGBA
	scale float64
	fill  color.Color
}

// NewCanvas allocates a canvas for vp.
func NewCanvas(vp background.Viewport) *Canvas {
	c := &Canvas{fill: color.Black}
	c.SetSize(vp)
	return c
}

// SetSize reallocates the backing store. Existing pixels are discarded.
func (c *Canvas) SetSize(vp background.Viewport) {
	w, h, scale := deviceSize(vp)
	c.scale = scale
	c.img = image.NewRGBA(image.Rect(0, 0, w, h))
}

// Image exposes the backing store.
func (c *Canvas) Image() *image.RGBA { return c.img }

// Scale returns the device pixel ratio of the backing store.
func (c *Canvas) Scale() float64 { return c.scale }

// ClearRect implements background.Surface.
func (c *Canvas) ClearRect(x, y, w, h float64) {
	x0, y0, x1, y1, ok := c.deviceRect(x, y, w, h)
	if !ok {
		return
	}
	clearRGBA(c.img.Pix, c.img.Stride, x0, y0, x1, y1)
}

// SetFillColor implements background.Surface.
func (c *Canvas) SetFillColor(col color.Color) { c.fill = col }

// FillRect implements background.Surface.
func (c *Canvas) FillRect(x, y, w, h float64) {
	x0, y0, x1, y1, ok := c.deviceRect(x, y, w, h)
	if !ok {
		return
	}
	fillRGBA(c.img.Pix, c.img.Stride, x0, y0, x1, y1, c.fill)
}

func (c *Canvas) deviceRect(x, y, w, h float64) (x0, y0, x1, y1 int, ok bool) {
	return clipRect(c.img.Bounds(), x, y, w, h, c.scale)
}

// clipRect maps a CSS-pixel rectangle to device pixels and clips it to b.
// Negative extents are normalized the way canvas contexts do.
func clipRect(b image.Rectangle, x, y, w, h, scale float64) (x0, y0, x1, y1 int, ok bool) {
	if w < 0 {
		x, w = x+w, -w
	}
	if h < 0 {
		y, h = y+h, -h
	}
	x0 = max(int(math.Round(x*scale)), b.Min.X)
	y0 = max(int(math.Round(y*scale)), b.Min.Y)
	x1 = min(int(math.Round((x+w)*scale)), b.Max.X)
	y1 = min(int(math.Round((y+h)*scale)), b.Max.Y)
	return x0, y0, x1, y1, x0 < x1 && y0 < y1
}

func deviceSize(vp background.Viewport) (w, h int, scale float64) {
	scale = vp.Scale
	if !(scale > 0) || math.IsInf(scale, 0) {
		scale = 1
	}
	return devicePixels(vp.Width, scale), devicePixels(vp.Height, scale), scale
}

func devicePixels(v, scale float64) int {
	if !(v > 0) || math.IsInf(v, 0) {
		return 0
	}
	return int(math.Ceil(v * scale))
}
