package hierarchy

import "fmt"

// NavigationController manages a stack of child controllers and shows the
// view of the top one. Controllers below the top stay children, so they
// still receive environment updates.
type NavigationController struct {
	*Controller
}

// NewNavigationController creates a navigation controller with the given
// stack, bottom first.
func NewNavigationController(name string, controllers ...ControllerNode) (*NavigationController, error) {
	n := &NavigationController{Controller: NewController(name)}
	n.Bind(n)
	if err := n.SetControllers(controllers...); err != nil {
		return nil, err
	}
	return n, nil
}

// SetControllers replaces the stack.
func (n *NavigationController) SetControllers(controllers ...ControllerNode) error {
	if err := replaceChildren(n.Controller, controllers); err != nil {
		return fmt.Errorf("navigation %q: %w", n.name, err)
	}
	return showChild(n.Controller, n.Top())
}

// Push adds c on top of the stack.
func (n *NavigationController) Push(c ControllerNode) error {
	if err := n.AddChild(c); err != nil {
		return err
	}
	return showChild(n.Controller, c)
}

// Pop removes and returns the top controller. The root controller is never
// popped; Pop returns nil when only one controller is left. The popped
// controller is returned even when the new top cannot be shown.
func (n *NavigationController) Pop() (ControllerNode, error) {
	if len(n.children) <= 1 {
		return nil, nil
	}
	top := n.children[len(n.children)-1]
	top.controllerBase().RemoveFromParent()
	if err := showChild(n.Controller, n.Top()); err != nil {
		return top, fmt.Errorf("navigation %q: pop: %w", n.name, err)
	}
	return top, nil
}

// Top returns the top controller, or nil for an empty stack.
func (n *NavigationController) Top() ControllerNode {
	if len(n.children) == 0 {
		return nil
	}
	return n.children[len(n.children)-1]
}

// TabController manages child controllers and shows the view of the
// selected one.
type TabController struct {
	*Controller

	selected int
}

// NewTabController creates a tab controller with the first tab selected.
func NewTabController(name string, controllers ...ControllerNode) (*TabController, error) {
	t := &TabController{Controller: NewController(name)}
	t.Bind(t)
	if err := t.SetControllers(controllers...); err != nil {
		return nil, err
	}
	return t, nil
}

// SetControllers replaces the tabs and selects the first one.
func (t *TabController) SetControllers(controllers ...ControllerNode) error {
	if err := replaceChildren(t.Controller, controllers); err != nil {
		return fmt.Errorf("tabs %q: %w", t.name, err)
	}
	t.selected = 0
	return showChild(t.Controller, t.Selected())
}

// Select shows the tab at index.
func (t *TabController) Select(index int) error {
	if index < 0 || index >= len(t.children) {
		return fmt.Errorf("tabs %q: select %d: %w", t.name, index, ErrIndexOutOfRange)
	}
	t.selected = index
	return showChild(t.Controller, t.Selected())
}

// SelectedIndex returns the index of the selected tab.
func (t *TabController) SelectedIndex() int {
	return t.selected
}

// Selected returns the selected controller, or nil when there are no tabs.
func (t *TabController) Selected() ControllerNode {
	if t.selected >= len(t.children) {
		return nil
	}
	return t.children[t.selected]
}

func replaceChildren(c *Controller, controllers []ControllerNode) error {
	for _, old := range c.ChildControllers() {
		old.controllerBase().RemoveFromParent()
	}
	for _, child := range controllers {
		if err := c.AddChild(child); err != nil {
			return err
		}
	}
	return nil
}

// showChild makes visible the only child whose view sits in the container's
// view.
func showChild(container *Controller, visible ControllerNode) error {
	root := container.View()
	for _, child := range container.children {
		if child == visible {
			continue
		}
		if cv := child.controllerBase().view; cv != nil && cv.viewBase().superview != nil && cv.viewBase().superview.viewBase() == root {
			cv.viewBase().RemoveFromSuperview()
		}
	}
	if visible == nil {
		return nil
	}
	v := visible.controllerBase().loadView()
	if sv := v.viewBase().superview; sv != nil && sv.viewBase() == root {
		return nil
	}
	return root.AddSubview(v)
}
