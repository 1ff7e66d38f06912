//go:build ebiten

package ui

import (
	"image/color"

	"life-bg/pkg/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// HUD renders a read-only parameter panel in the top-left corner. It never
// handles input so the layer below stays non-interactive.
type HUD struct {
	width int
	panel *ebiten.Image
	lines []string
}

// NewHUD constructs a HUD with the given panel width in pixels.
func NewHUD(width int) *HUD {
	if width <= 0 {
		return nil
	}
	return &HUD{width: width}
}

// Update refreshes the cached lines from the snapshot.
func (h *HUD) Update(s core.ParameterSnapshot) {
	if h == nil {
		return
	}
	h.lines = Lines(s)
}

// Draw paints the panel onto screen.
func (h *HUD) Draw(screen *ebiten.Image) {
	if h == nil || len(h.lines) == 0 {
		return
	}
	height := panelPadding*2 + len(h.lines)*lineHeight
	if h.panel == nil || h.panel.Bounds().Dy() != height {
		if h.panel != nil {
			h.panel.Dispose()
		}
		h.panel = ebiten.NewImage(h.width, height)
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 200})

	face := basicfont.Face7x13
	for i, line := range h.lines {
		clr := color.RGBA{R: 220, G: 220, B: 230, A: 255}
		if len(line) > 0 && line[0] != ' ' {
			clr = color.RGBA{R: 160, G: 200, B: 255, A: 255}
		}
		text.Draw(h.panel, line, face, panelPadding, panelPadding+(i+1)*lineHeight-4, clr)
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(panelPadding, panelPadding)
	screen.DrawImage(h.panel, op)
}

const (
	panelPadding = 8
	lineHeight   = 16
)
