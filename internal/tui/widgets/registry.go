// Package widgets owns the stateful chart widgets and the drawing surfaces
// they bind to. A surface holds at most one live widget; rebinding disposes
// the previous one first, so repeated navigation never leaks an instance.
package widgets

import (
	"fmt"

	"github.com/google/uuid"
)

// Surface identifies a fixed drawing surface in the dashboard layout.
type Surface int

const (
	SurfaceCategoryChart Surface = iota
	SurfaceTrendChart
	surfaceCount
)

// String returns the surface's display name.
func (s Surface) String() string {
	switch s {
	case SurfaceCategoryChart:
		return "category-chart"
	case SurfaceTrendChart:
		return "trend-chart"
	default:
		return fmt.Sprintf("surface(%d)", int(s))
	}
}

func (s Surface) valid() bool {
	return s >= 0 && s < surfaceCount
}

// Widget is a stateful visual component. Render draws into the given box;
// Dispose releases whatever the widget holds and must be safe to call more
// than once.
type Widget interface {
	Render(width, height int) string
	Dispose()
}

// Handle is a live binding of a widget to a surface.
type Handle struct {
	widget   Widget
	id       string
	disposed bool
}

// ID returns the binding's unique id.
func (h *Handle) ID() string { return h.id }

// Disposed reports whether the handle has been released.
func (h *Handle) Disposed() bool { return h.disposed }

// Render draws the bound widget, or nothing once disposed.
func (h *Handle) Render(width, height int) string {
	if h.disposed || h.widget == nil {
		return ""
	}
	return h.widget.Render(width, height)
}

// Dispose releases the widget. Idempotent.
func (h *Handle) Dispose() {
	if h.disposed {
		return
	}
	h.disposed = true
	if h.widget != nil {
		h.widget.Dispose()
		h.widget = nil
	}
}

// Registry maps each surface to at most one live handle.
type Registry struct {
	bindings map[Surface]*Handle
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{bindings: make(map[Surface]*Handle)}
}

// Bind attaches a widget to a surface, disposing any prior binding first.
func (r *Registry) Bind(surface Surface, w Widget) (*Handle, error) {
	if !surface.valid() {
		return nil, fmt.Errorf("unknown drawing surface %v", surface)
	}
	if w == nil {
		return nil, fmt.Errorf("cannot bind nil widget to %v", surface)
	}

	if prev, ok := r.bindings[surface]; ok {
		prev.Dispose()
	}

	h := &Handle{widget: w, id: uuid.NewString()}
	r.bindings[surface] = h
	return h, nil
}

// Get returns the live handle bound to surface, if any.
func (r *Registry) Get(surface Surface) (*Handle, bool) {
	h, ok := r.bindings[surface]
	if !ok || h.disposed {
		return nil, false
	}
	return h, true
}

// Release disposes whatever is bound to surface.
func (r *Registry) Release(surface Surface) {
	if h, ok := r.bindings[surface]; ok {
		h.Dispose()
		delete(r.bindings, surface)
	}
}

// ReleaseAll disposes every binding.
func (r *Registry) ReleaseAll() {
	for surface, h := range r.bindings {
		h.Dispose()
		delete(r.bindings, surface)
	}
}

// LiveCount returns the number of undisposed bindings.
func (r *Registry) LiveCount() int {
	n := 0
	for _, h := range r.bindings {
		if !h.disposed {
			n++
		}
	}
	return n
}
