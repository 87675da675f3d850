package env

// Minimal hierarchy used by the package tests. The real host lives in
// pkg/hierarchy.

type localeKey struct{}

func (localeKey) DefaultValue() string { return "en" }

type calendarKey struct{}

func (calendarKey) DefaultValue() string { return "gregorian" }

type scaleKey struct{}

func (scaleKey) DefaultValue() float64 { return 1 }

// recorder collects the names of nodes whose hook ran, in order.
type recorder struct {
	names []string
}

func (r *recorder) reset() { r.names = nil }

type testView struct {
	Base
	name      string
	superview *testView
	owner     *testController
	subviews  []*testView
	rec       *recorder
	window    bool
}

func newView(rec *recorder, name string) *testView {
	return &testView{name: name, rec: rec}
}

func newWindow(rec *recorder, name string) *testView {
	return &testView{name: name, rec: rec, window: true}
}

func (v *testView) add(children ...*testView) *testView {
	for _, child := range children {
		child.superview = v
		v.subviews = append(v.subviews, child)
	}
	return v
}

func (v *testView) Next() Node {
	if v.owner != nil {
		return v.owner
	}
	if v.superview != nil {
		return v.superview
	}
	return nil
}

func (v *testView) Subviews() []View {
	views := make([]View, len(v.subviews))
	for i, s := range v.subviews {
		views[i] = s
	}
	return views
}

func (v *testView) IsPresentation() bool { return v.window }

func (v *testView) UpdateEnvironment() {
	if v.rec != nil {
		v.rec.names = append(v.rec.names, v.name)
	}
}

type testController struct {
	Base
	name       string
	view       *testView
	parent     *testController
	children   []*testController
	presented  *testController
	presenting *testController
	rec        *recorder
}

func newController(rec *recorder, name string) *testController {
	c := &testController{name: name, rec: rec}
	c.view = newView(rec, name+".view")
	c.view.owner = c
	return c
}

// addChild makes child a child controller of c. With embed, the child's
// view is also added to c's view.
func (c *testController) addChild(child *testController, embed bool) {
	child.parent = c
	c.children = append(c.children, child)
	if embed {
		c.view.add(child.view)
	}
}

func (c *testController) present(other *testController) {
	c.presented = other
	other.presenting = c
}

func (c *testController) Next() Node {
	if c.view != nil && c.view.superview != nil {
		return c.view.superview
	}
	if c.presenting != nil {
		return c.presenting
	}
	return nil
}

func (c *testController) RootView() View {
	if c.view == nil {
		return nil
	}
	return c.view
}

func (c *testController) Children() []Controller {
	out := make([]Controller, len(c.children))
	for i, child := range c.children {
		out[i] = child
	}
	return out
}

func (c *testController) Parent() Controller {
	if c.parent == nil {
		return nil
	}
	return c.parent
}

func (c *testController) Presented() Controller {
	if c.presented == nil {
		return nil
	}
	return c.presented
}

func (c *testController) UpdateEnvironment() {
	if c.rec != nil {
		c.rec.names = append(c.rec.names, c.name)
	}
}

// plainView is a view without an update hook.
type plainView struct {
	Base
	superview View
	subviews  []View
}

func (v *plainView) Next() Node {
	if v.superview == nil {
		return nil
	}
	return v.superview
}

func (v *plainView) Subviews() []View { return v.subviews }

// nodeName returns the name of a test node.
func nodeName(n Node) string {
	switch n := n.(type) {
	case *testView:
		return n.name
	case *testController:
		return n.name
	case *plainView:
		return "plain"
	}
	return "?"
}
