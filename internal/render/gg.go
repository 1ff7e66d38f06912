package render

import (
	"fmt"
	"image"
	"image/color"
	"io"

	"life-bg/internal/background"

	"github.com/gogpu/gg"
)

// GG draws onto a gogpu/gg context. It is used for headless rendering and
// PNG snapshots.
type GG struct {
	ctx   *gg.Context
	scale float64
	err   error
}

// NewGG allocates a context sized for vp.
func NewGG(vp background.Viewport) *GG {
	s := &GG{}
	s.SetSize(vp)
	return s
}

// SetSize implements background.Resizer.
func (s *GG) SetSize(vp background.Viewport) {
	w, h, scale := deviceSize(vp)
	// gg contexts need at least one pixel.
	w, h = max(w, 1), max(h, 1)
	s.scale = scale
	if s.ctx == nil {
		s.ctx = gg.NewContext(w, h)
	} else if s.ctx.Width() != w || s.ctx.Height() != h {
		if err := s.ctx.Resize(w, h); err != nil {
			s.err = fmt.Errorf("resize gg context to %dx%d: %w", w, h, err)
			return
		}
	}
	s.ctx.Identity()
	s.ctx.Scale(scale, scale)
	s.ctx.Clear()
}

// ClearRect implements background.Surface.
func (s *GG) ClearRect(x, y, w, h float64) {
	bounds := image.Rect(0, 0, s.ctx.Width(), s.ctx.Height())
	x0, y0, x1, y1, ok := clipRect(bounds, x, y, w, h, s.scale)
	if !ok {
		return
	}
	if x0 == 0 && y0 == 0 && x1 == bounds.Max.X && y1 == bounds.Max.Y {
		s.ctx.Clear()
		return
	}
	for py := y0; py < y1; py++ {
		for px := x0; px < x1; px++ {
			s.ctx.SetPixel(px, py, gg.Transparent)
		}
	}
}

// SetFillColor implements background.Surface.
func (s *GG) SetFillColor(c color.Color) { s.ctx.SetColor(c) }

// FillRect implements background.Surface.
func (s *GG) FillRect(x, y, w, h float64) {
	s.ctx.DrawRectangle(x, y, w, h)
	if err := s.ctx.Fill(); err != nil && s.err == nil {
		s.err = fmt.Errorf("fill rect: %w", err)
	}
}

// Err returns the first drawing error encountered, if any.
func (s *GG) Err() error { return s.err }

// Image returns the rendered pixels.
func (s *GG) Image() image.Image { return s.ctx.Image() }

// SavePNG writes the rendered pixels to path.
func (s *GG) SavePNG(path string) error {
	if err := s.ctx.SavePNG(path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}

// EncodePNG writes the rendered pixels to w.
func (s *GG) EncodePNG(w io.Writer) error { return s.ctx.EncodePNG(w) }

// Close releases the context.
func (s *GG) Close() error { return s.ctx.Close() }
