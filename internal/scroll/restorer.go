// Package scroll resets the viewport to the top of the page on every
// navigation.
//
// Restorer runs the effect against a Viewport whenever it observes a new
// path. Script renders the same effect as JavaScript for the site shell.
package scroll

import "sync"

// AnchorID is the element id scrolled into view after a path change.
const AnchorID = "top"

// Element is a document element that can be brought into view.
type Element interface {
	ScrollIntoView(smooth bool)
}

// Viewport is the rendering surface a Restorer drives.
type Viewport interface {
	ScrollTo(x, y int)
	// ElementByID returns the element with the given id, if present.
	ElementByID(id string) (Element, bool)
}

// Restorer scrolls a Viewport to the top once per observed path change.
// It renders nothing.
type Restorer struct {
	mu       sync.Mutex
	viewport Viewport
	seen     bool
	path     string
}

// NewRestorer returns a Restorer driving vp.
func NewRestorer(vp Viewport) *Restorer {
	return &Restorer{viewport: vp}
}

// Observe reports the current path. The first call and every call with a
// path different from the previous one run the effect; repeats do not.
// It returns whether the effect ran.
func (r *Restorer) Observe(path string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.seen && path == r.path {
		return false
	}
	r.seen = true
	r.path = path

	restore(r.viewport)
	return true
}

// restore is the effect run on every path change, here and in Script.
func restore(vp Viewport) {
	vp.ScrollTo(0, 0)
	if el, ok := vp.ElementByID(AnchorID); ok && el != nil {
		el.ScrollIntoView(false)
	}
}

// Path returns the last observed path.
func (r *Restorer) Path() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.path
}
