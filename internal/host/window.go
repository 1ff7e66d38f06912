package host

import (
	"slices"

	"life-bg/internal/background"
)

// Window is a background.Host whose state is pushed in by the embedding
// program. Listeners run synchronously on the caller's goroutine.
type Window struct {
	viewport background.Viewport
	visible  bool

	nextID     int
	resize     map[int]func(background.Viewport)
	visibility map[int]func(bool)
}

// NewWindow returns a visible window with the given viewport.
func NewWindow(vp background.Viewport) *Window {
	if vp.Scale <= 0 {
		vp.Scale = 1
	}
	return &Window{
		viewport:   vp,
		visible:    true,
		resize:     map[int]func(background.Viewport){},
		visibility: map[int]func(bool){},
	}
}

// Viewport implements background.Host.
func (w *Window) Viewport() background.Viewport { return w.viewport }

// Visible implements background.Host.
func (w *Window) Visible() bool { return w.visible }

// Listeners reports the number of registered resize and visibility listeners.
func (w *Window) Listeners() (resize, visibility int) {
	return len(w.resize), len(w.visibility)
}

// OnResize implements background.Host.
func (w *Window) OnResize(fn func(background.Viewport)) func() {
	w.nextID++
	id := w.nextID
	w.resize[id] = fn
	return func() { delete(w.resize, id) }
}

// OnVisibilityChange implements background.Host.
func (w *Window) OnVisibilityChange(fn func(bool)) func() {
	w.nextID++
	id := w.nextID
	w.visibility[id] = fn
	return func() { delete(w.visibility, id) }
}

// SetViewport records vp and notifies resize listeners when it differs from
// the current viewport. It reports whether listeners were notified.
func (w *Window) SetViewport(vp background.Viewport) bool {
	if vp.Scale <= 0 {
		vp.Scale = 1
	}
	if vp == w.viewport {
		return false
	}
	w.viewport = vp
	for _, id := range sortedKeys(w.resize) {
		if fn, ok := w.resize[id]; ok {
			fn(vp)
		}
	}
	return true
}

// SetVisible records the visibility state and notifies listeners on change.
func (w *Window) SetVisible(v bool) bool {
	if v == w.visible {
		return false
	}
	w.visible = v
	for _, id := range sortedKeys(w.visibility) {
		if fn, ok := w.visibility[id]; ok {
			fn(v)
		}
	}
	return true
}

func sortedKeys[V any](m map[int]V) []int {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
