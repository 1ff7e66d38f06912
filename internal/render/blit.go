//go:build ebiten

package render

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Blitter uploads a Canvas into an ebiten image and draws it.
type Blitter struct {
	img *ebiten.Image
}

// NewBlitter returns a Blitter with no allocated image.
func NewBlitter() *Blitter { return &Blitter{} }

// Blit copies the canvas pixels to dst at the origin. The canvas backing store
// is in device pixels, matching a screen laid out at device scale.
func (b *Blitter) Blit(dst *ebiten.Image, c *Canvas) {
	src := c.Image()
	w, h := src.Bounds().Dx(), src.Bounds().Dy()
	if w == 0 || h == 0 {
		return
	}
	if b.img == nil || b.img.Bounds().Dx() != w || b.img.Bounds().Dy() != h {
		if b.img != nil {
			b.img.Dispose()
		}
		b.img = ebiten.NewImage(w, h)
	}
	b.img.WritePixels(src.Pix)
	dst.DrawImage(b.img, &ebiten.DrawImageOptions{})
}
