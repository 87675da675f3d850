package env

// Ancestors walks the bottom-up chain starting at n itself. It stops when fn
// returns true or the chain ends.
func Ancestors(n Node, fn func(Node) bool) {
	for current := n; current != nil; current = next(current) {
		if fn(current) {
			return
		}
	}
}

// Walk visits n and every node below it, top-down.
//
// From a view, the view's subtree is visited in order. A descendant that is
// the root view of a controller hands its subtree to the controller walk.
//
// From a controller, the controller is visited, then its root view's
// subtree, then each child controller, then the presented controller.
//
// Each controller is walked at most once. A root view met inside a view
// subtree is skipped when its controller was already walked, or when one of
// its Parent ancestors was, since that ancestor's child recursion reaches it.
func Walk(n Node, visit func(Node)) {
	w := &walker{visit: visit, entered: make(map[*Base]bool)}
	switch n := n.(type) {
	case Controller:
		w.controller(n)
	case View:
		w.view(n, true)
	case nil:
	default:
		visit(n)
	}
}

type walker struct {
	visit   func(Node)
	entered map[*Base]bool
}

func (w *walker) view(v View, isStart bool) {
	if !isStart {
		if c, ok := rootOf(v); ok {
			w.handOff(c)
			return
		}
	}
	w.visit(v)
	for _, sub := range v.Subviews() {
		w.view(sub, false)
	}
}

func (w *walker) controller(c Controller) {
	if w.entered[c.environment()] {
		return
	}
	w.entered[c.environment()] = true
	w.visit(c)
	if root := c.RootView(); root != nil {
		w.view(root, true)
	}
	for _, child := range c.Children() {
		w.controller(child)
	}
	if presented := c.Presented(); presented != nil {
		w.controller(presented)
	}
}

// handOff walks c from the position of its root view, unless c is reached
// through the child recursion of a controller already walked.
func (w *walker) handOff(c Controller) {
	for p := c.Parent(); p != nil; p = p.Parent() {
		if w.entered[p.environment()] {
			return
		}
	}
	w.controller(c)
}
