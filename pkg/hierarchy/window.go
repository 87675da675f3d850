package hierarchy

import "fmt"

// Window is the root of a view tree. It hosts one root controller whose view
// is its first subview, and it scopes a presentation for preferred values.
type Window struct {
	View

	root ControllerNode
}

// NewWindow creates an empty window.
func NewWindow(name string) *Window {
	w := &Window{View: View{name: name}}
	w.self = w
	return w
}

func (w *Window) String() string {
	return fmt.Sprintf("Window(%s)", w.name)
}

// IsPresentation reports true: a window roots a presentation.
func (w *Window) IsPresentation() bool {
	return true
}

// RootController returns the root controller, or nil.
func (w *Window) RootController() ControllerNode {
	return w.root
}

// SetRootController installs c as the root controller, replacing any
// previous one. The controller's view becomes the window's first subview.
func (w *Window) SetRootController(c ControllerNode) error {
	if c == nil {
		return fmt.Errorf("set root of %q: %w", w.name, ErrNilNode)
	}
	base := c.controllerBase()
	if base.parent != nil || base.presenting != nil {
		return fmt.Errorf("set root of %q to %q: %w", w.name, base.name, ErrAlreadyPresented)
	}
	if w.root != nil {
		if old := w.root.controllerBase(); old != base && old.view != nil {
			old.view.viewBase().RemoveFromSuperview()
		}
	}
	base.Bind(c)
	w.root = c
	return w.InsertSubview(base.loadView(), 0)
}
