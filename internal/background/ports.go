package background

import (
	"image/color"
	"time"
)

// Viewport describes the host drawing area in CSS pixels plus the device
// pixel ratio used for the backing store.
type Viewport struct {
	Width, Height float64
	Scale         float64
}

// Surface is a 2D drawing target. Coordinates are in CSS pixels.
type Surface interface {
	ClearRect(x, y, w, h float64)
	SetFillColor(c color.Color)
	FillRect(x, y, w, h float64)
}

// Resizer is implemented by surfaces that keep a backing store which must
// follow the viewport.
type Resizer interface {
	SetSize(vp Viewport)
}

// SurfaceFunc acquires the drawing surface at mount time. Returning a nil
// surface or an error means the surface is unavailable.
type SurfaceFunc func() (Surface, error)

// FrameID identifies a scheduled frame callback.
type FrameID uint64

// Scheduler delivers per-frame ticks. Timestamps are measured from host start.
type Scheduler interface {
	Schedule(fn func(ts time.Duration)) FrameID
	Cancel(id FrameID)
}

// Host reports the environment the simulator is mounted in.
type Host interface {
	Viewport() Viewport
	Visible() bool
	OnResize(fn func(Viewport)) (remove func())
	OnVisibilityChange(fn func(visible bool)) (remove func())
}

// ThemeFunc returns the raw foreground colour of the active theme. An empty
// string means no theme colour is available.
type ThemeFunc func() string

// Ports bundles the collaborators a Simulator needs.
type Ports struct {
	Surface   SurfaceFunc
	Scheduler Scheduler
	Host      Host
	Theme     ThemeFunc
}
