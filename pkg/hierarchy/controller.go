package hierarchy

import (
	"fmt"

	"github.com/go-drift/uienv/pkg/env"
)

// ControllerNode is implemented by *Controller and by every type that embeds
// it.
type ControllerNode interface {
	env.Controller
	controllerBase() *Controller
}

// Controller manages a root view, child controllers and at most one
// presented controller.
//
// The zero value is not usable; create controllers with [NewController].
type Controller struct {
	env.Base

	// OnEnvironmentUpdate is called by UpdateEnvironment when an environment
	// value on this controller or one of its ancestors changes.
	OnEnvironmentUpdate func()

	// LoadView creates the root view the first time it is needed. When nil,
	// an empty view named after the controller is created.
	LoadView func() Viewer

	self       ControllerNode
	name       string
	view       Viewer
	parent     ControllerNode
	children   []ControllerNode
	presented  ControllerNode
	presenting ControllerNode
}

// NewController creates a detached controller.
func NewController(name string) *Controller {
	c := &Controller{name: name}
	c.self = c
	return c
}

func (c *Controller) controllerBase() *Controller {
	return c
}

// Bind records self as the outermost value of this controller. Types
// embedding *Controller call it when the controller is used as a root
// before being attached.
func (c *Controller) Bind(self ControllerNode) {
	if self == nil || self.controllerBase() != c {
		return
	}
	c.self = self
	if c.view != nil {
		c.view.viewBase().owner = self
	}
	for _, child := range c.children {
		child.controllerBase().parent = self
	}
	if c.presented != nil {
		c.presented.controllerBase().presenting = self
	}
}

func (c *Controller) node() ControllerNode {
	if c.self == nil {
		return c
	}
	return c.self
}

// Name returns the controller's name.
func (c *Controller) Name() string {
	return c.name
}

func (c *Controller) String() string {
	return fmt.Sprintf("Controller(%s)", c.name)
}

// Next returns the superview of the root view when the view is attached,
// otherwise the presenting controller, otherwise nil.
func (c *Controller) Next() env.Node {
	if c.view != nil {
		if sv := c.view.viewBase().superview; sv != nil {
			return sv
		}
	}
	if c.presenting != nil {
		return c.presenting
	}
	return nil
}

// RootView returns the root view, loading it if needed.
func (c *Controller) RootView() env.View {
	return c.loadView()
}

// View returns the root view, loading it if needed.
func (c *Controller) View() *View {
	return c.loadView().viewBase()
}

// ViewIfLoaded returns the root view, or nil if it has not been loaded.
func (c *Controller) ViewIfLoaded() Viewer {
	return c.view
}

func (c *Controller) loadView() Viewer {
	if c.view == nil {
		var v Viewer
		if c.LoadView != nil {
			v = c.LoadView()
		}
		if v == nil {
			v = NewView(c.name + ".view")
		}
		c.adopt(v)
	}
	return c.view
}

// SetView replaces the root view. An attached previous view is replaced in
// place in its superview.
func (c *Controller) SetView(v Viewer) error {
	if v == nil {
		return fmt.Errorf("set view of %q: %w", c.name, ErrNilNode)
	}
	old := c.view
	if old != nil && old.viewBase() == v.viewBase() {
		return nil
	}
	var parent *View
	index := -1
	if old != nil {
		ob := old.viewBase()
		if ob.superview != nil {
			parent = ob.superview.viewBase()
			index = parent.indexOf(ob)
		}
		ob.RemoveFromSuperview()
		ob.owner = nil
	}
	c.adopt(v)
	if parent != nil {
		return parent.InsertSubview(v, index)
	}
	return nil
}

func (c *Controller) adopt(v Viewer) {
	base := v.viewBase()
	if base.owner != nil && base.owner.controllerBase() != c {
		base.owner.controllerBase().view = nil
	}
	base.Bind(v)
	base.owner = c.node()
	c.view = v
}

// Parent returns the containing controller, or nil.
func (c *Controller) Parent() env.Controller {
	if c.parent == nil {
		return nil
	}
	return c.parent
}

// ParentController returns the containing controller, or nil.
func (c *Controller) ParentController() ControllerNode {
	return c.parent
}

// Children returns the child controllers in order.
func (c *Controller) Children() []env.Controller {
	out := make([]env.Controller, len(c.children))
	for i, child := range c.children {
		out[i] = child
	}
	return out
}

// ChildControllers returns the child controllers in order.
func (c *Controller) ChildControllers() []ControllerNode {
	return append([]ControllerNode(nil), c.children...)
}

// Presented returns the controller c presented, or nil.
func (c *Controller) Presented() env.Controller {
	if c.presented == nil {
		return nil
	}
	return c.presented
}

// PresentedController returns the controller c presented, or nil.
func (c *Controller) PresentedController() ControllerNode {
	return c.presented
}

// Presenting returns the controller that presented c, or nil.
func (c *Controller) Presenting() ControllerNode {
	return c.presenting
}

// UpdateEnvironment calls OnEnvironmentUpdate if it is set.
func (c *Controller) UpdateEnvironment() {
	if c.OnEnvironmentUpdate != nil {
		c.OnEnvironmentUpdate()
	}
}

// AddChild appends child to c's child controllers, removing it from its
// previous parent first. The child's view is not added to c's view; callers
// embed it where their layout needs it.
func (c *Controller) AddChild(child ControllerNode) error {
	if child == nil {
		return fmt.Errorf("add child to %q: %w", c.name, ErrNilNode)
	}
	base := child.controllerBase()
	if c.hasAncestor(base) {
		return fmt.Errorf("add child %q to %q: %w", base.name, c.name, ErrCycle)
	}
	if base.presenting != nil {
		return fmt.Errorf("add child %q to %q: %w", base.name, c.name, ErrAlreadyPresented)
	}
	base.RemoveFromParent()
	base.Bind(child)
	base.parent = c.node()
	c.children = append(c.children, child)
	return nil
}

// RemoveFromParent detaches c from its parent controller and removes its
// view from its superview.
func (c *Controller) RemoveFromParent() {
	if c.parent == nil {
		return
	}
	p := c.parent.controllerBase()
	for i, child := range p.children {
		if child.controllerBase() == c {
			p.children = append(p.children[:i], p.children[i+1:]...)
			break
		}
	}
	c.parent = nil
	if c.view != nil {
		c.view.viewBase().RemoveFromSuperview()
	}
}

// Present presents other modally from c.
func (c *Controller) Present(other ControllerNode) error {
	if other == nil {
		return fmt.Errorf("present from %q: %w", c.name, ErrNilNode)
	}
	base := other.controllerBase()
	if c.presented != nil {
		return fmt.Errorf("present %q from %q: %w", base.name, c.name, ErrAlreadyPresenting)
	}
	if base.presenting != nil || base.parent != nil {
		return fmt.Errorf("present %q from %q: %w", base.name, c.name, ErrAlreadyPresented)
	}
	if c.presentedWithin(base) {
		return fmt.Errorf("present %q from %q: %w", base.name, c.name, ErrCycle)
	}
	if base.view != nil {
		base.view.viewBase().RemoveFromSuperview()
	}
	base.Bind(other)
	base.presenting = c.node()
	c.presented = other
	return nil
}

// Dismiss dismisses the controller c presented along with everything it
// presented in turn. When c has presented nothing, c itself is dismissed by
// its presenter.
func (c *Controller) Dismiss() {
	target := c
	if c.presented == nil {
		if c.presenting == nil {
			return
		}
		target = c.presenting.controllerBase()
	}
	for p := target.presented; p != nil; {
		base := p.controllerBase()
		p = base.presented
		base.presenting = nil
		base.presented = nil
	}
	target.presented = nil
}

// hasAncestor reports whether ancestor is c or one of c's containers.
func (c *Controller) hasAncestor(ancestor *Controller) bool {
	for current := c; current != nil; {
		if current == ancestor {
			return true
		}
		if current.parent == nil {
			return false
		}
		current = current.parent.controllerBase()
	}
	return false
}

// presentedWithin reports whether c is root or lies below it through parent
// and presenting links.
func (c *Controller) presentedWithin(root *Controller) bool {
	for current := c; current != nil; {
		if current == root {
			return true
		}
		switch {
		case current.parent != nil:
			current = current.parent.controllerBase()
		case current.presenting != nil:
			current = current.presenting.controllerBase()
		default:
			return false
		}
	}
	return false
}
