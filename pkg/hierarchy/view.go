package hierarchy

import (
	"fmt"

	"github.com/go-drift/uienv/pkg/env"
)

// Viewer is implemented by *View and by every type that embeds it.
type Viewer interface {
	env.View
	viewBase() *View
}

// View is a node in a window's view tree.
//
// The zero value is not usable; create views with [NewView].
type View struct {
	env.Base

	// OnEnvironmentUpdate is called by UpdateEnvironment when an environment
	// value on this view or one of its ancestors changes.
	OnEnvironmentUpdate func()

	self      Viewer
	name      string
	superview Viewer
	subviews  []Viewer
	owner     ControllerNode
}

// NewView creates a detached view.
func NewView(name string) *View {
	v := &View{name: name}
	v.self = v
	return v
}

func (v *View) viewBase() *View {
	return v
}

// Bind records self as the outermost value of this view. Types embedding
// *View call it when the view is used as a root before being attached.
func (v *View) Bind(self Viewer) {
	if self == nil || self.viewBase() != v {
		return
	}
	v.self = self
	for _, sub := range v.subviews {
		sub.viewBase().superview = self
	}
}

// node returns the value recorded for this view in the hierarchy.
func (v *View) node() Viewer {
	if v.self == nil {
		return v
	}
	return v.self
}

// Name returns the view's name.
func (v *View) Name() string {
	return v.name
}

func (v *View) String() string {
	return fmt.Sprintf("View(%s)", v.name)
}

// Next returns the owning controller for a controller's root view, the
// superview otherwise, or nil for a detached view or a window.
func (v *View) Next() env.Node {
	if v.owner != nil {
		return v.owner
	}
	if v.superview != nil {
		return v.superview
	}
	return nil
}

// Subviews returns the subviews in order, front-most last.
func (v *View) Subviews() []env.View {
	out := make([]env.View, len(v.subviews))
	for i, sub := range v.subviews {
		out[i] = sub
	}
	return out
}

// Superview returns the containing view, or nil.
func (v *View) Superview() Viewer {
	return v.superview
}

// Controller returns the controller that owns this view as its root view,
// or nil.
func (v *View) Controller() ControllerNode {
	return v.owner
}

// Window returns the window that contains this view, or nil.
func (v *View) Window() *Window {
	for current := v.node(); current != nil; current = current.viewBase().superview {
		if w, ok := current.(*Window); ok {
			return w
		}
	}
	return nil
}

// UpdateEnvironment calls OnEnvironmentUpdate if it is set.
func (v *View) UpdateEnvironment() {
	if v.OnEnvironmentUpdate != nil {
		v.OnEnvironmentUpdate()
	}
}

// AddSubview appends child to v's subviews, removing it from its previous
// superview first.
func (v *View) AddSubview(child Viewer) error {
	return v.InsertSubview(child, len(v.subviews))
}

// InsertSubview inserts child at index in v's subviews, removing it from its
// previous superview first.
func (v *View) InsertSubview(child Viewer, index int) error {
	if child == nil {
		return fmt.Errorf("insert into %q: %w", v.name, ErrNilNode)
	}
	base := child.viewBase()
	if _, ok := child.(*Window); ok {
		return fmt.Errorf("insert %q into %q: %w", base.name, v.name, ErrWindowNotEmbeddable)
	}
	if v.isDescendantOf(base) {
		return fmt.Errorf("insert %q into %q: %w", base.name, v.name, ErrCycle)
	}
	// When moving within v, index refers to the list without the child.
	moving := base.superview != nil && base.superview.viewBase() == v
	limit := len(v.subviews)
	if moving {
		limit--
	}
	if index < 0 || index > limit {
		return fmt.Errorf("insert %q into %q at %d: %w", base.name, v.name, index, ErrIndexOutOfRange)
	}
	base.RemoveFromSuperview()
	base.Bind(child)
	base.superview = v.node()
	v.subviews = append(v.subviews, nil)
	copy(v.subviews[index+1:], v.subviews[index:])
	v.subviews[index] = child
	return nil
}

// RemoveFromSuperview detaches v from its superview. It does nothing for a
// detached view.
func (v *View) RemoveFromSuperview() {
	if v.superview == nil {
		return
	}
	v.superview.viewBase().remove(v)
}

func (v *View) remove(child *View) {
	for i, sub := range v.subviews {
		if sub.viewBase() == child {
			v.subviews = append(v.subviews[:i], v.subviews[i+1:]...)
			break
		}
	}
	child.superview = nil
}

// isDescendantOf reports whether v is ancestor or lies below it.
func (v *View) isDescendantOf(ancestor *View) bool {
	for current := v; current != nil; {
		if current == ancestor {
			return true
		}
		if current.superview == nil {
			return false
		}
		current = current.superview.viewBase()
	}
	return false
}

// indexOf returns the position of child among v's subviews, or -1.
func (v *View) indexOf(child *View) int {
	for i, sub := range v.subviews {
		if sub.viewBase() == child {
			return i
		}
	}
	return -1
}
