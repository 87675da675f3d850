package env

// Base carries a node's attached environment. Host node types embed it:
//
//	type View struct {
//	    env.Base
//	    ...
//	}
//
// The zero value has no attachment. An attachment is created by the first
// [Set] on the node and is never cleared.
type Base struct {
	store *store
}

// store is the attachment object. It keeps its identity across Sets so that
// every holder of it observes updates.
type store struct {
	values Values
}

func (b *Base) environment() *Base {
	return b
}

// values returns the attached values, or an empty set.
func (b *Base) values() Values {
	if b.store == nil {
		return Values{}
	}
	return b.store.values
}

// Node is a unit of the hierarchy.
type Node interface {
	// Next returns the node's bottom-up neighbour: the superview for a view,
	// the owning controller for a controller's root view, and for a controller
	// the superview of its root view or its presenting controller. It returns
	// nil at the top of a chain.
	Next() Node

	environment() *Base
}

// View is a node with an ordered list of subviews.
type View interface {
	Node
	Subviews() []View
}

// Controller is a node that owns a root view and may contain child
// controllers and one presented controller.
type Controller interface {
	Node
	// RootView returns the controller's view, or nil.
	RootView() View
	// Children returns the child controllers in order.
	Children() []Controller
	// Parent returns the containing controller, or nil.
	Parent() Controller
	// Presented returns the controller this controller has presented, or nil.
	// A controller presented by an ancestor is not reported.
	Presented() Controller
}

// Presentation is implemented by non-controller nodes that root a
// presentation, such as windows.
type Presentation interface {
	Node
	IsPresentation() bool
}

// Updater is implemented by nodes that want to be told when an environment
// value set on them or on one of their ancestors changes.
type Updater interface {
	UpdateEnvironment()
}

// SameNode reports whether a and b are the same node. Wrapper types that
// embed a host node compare equal to the node they embed.
func SameNode(a, b Node) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.environment() == b.environment()
}

// next returns the bottom-up neighbour of n. A controller with no linear
// neighbour escalates to its parent.
func next(n Node) Node {
	if nx := n.Next(); nx != nil {
		return nx
	}
	if c, ok := n.(Controller); ok {
		if parent := c.Parent(); parent != nil {
			return parent
		}
	}
	return nil
}

// rootOf returns the controller whose root view is v, if any.
func rootOf(v View) (Controller, bool) {
	c, ok := v.Next().(Controller)
	if !ok || c == nil {
		return nil, false
	}
	if root := c.RootView(); root == nil || !SameNode(root, v) {
		return nil, false
	}
	return c, true
}

// isPresentationRoot reports whether n scopes a presentation.
func isPresentationRoot(n Node) bool {
	if _, ok := n.(Controller); ok {
		return true
	}
	p, ok := n.(Presentation)
	return ok && p.IsPresentation()
}
