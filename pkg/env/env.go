package env

// Set assigns value to key on n and notifies n and its descendants.
//
// The value is visible from n and from every descendant that has no nearer
// value of its own. Ancestors and siblings are unaffected. Set returns after
// every hook in the walk has returned.
func Set[T any](n Node, key Key[T], value T) {
	assign(n, key, value)
	Notify(n)
}

// assign stores value without notifying. An existing attachment is updated
// in place.
func assign[T any](n Node, key Key[T], value T) {
	b := n.environment()
	updated := With(b.values(), key, value)
	if b.store == nil {
		b.store = &store{values: updated}
		return
	}
	b.store.values = updated
}

// Environment returns the values set directly on n. Values inherited from
// ancestors are not included.
func Environment(n Node) Values {
	return n.environment().values()
}

// HasValue reports whether key was set directly on n.
func HasValue[T any](n Node, key Key[T]) bool {
	_, ok := Lookup(Environment(n), key)
	return ok
}

// SetPreferred sets a value for the presentation that encloses n.
//
// Walking up from n, the value is set on the nearest enclosing controller or
// presentation root and flows down to everything it presents. If an
// ancestor that already has its own value for key is reached first, the value
// is set on the node just below that ancestor instead, so that the ancestor
// keeps its value. The value is always set on n as well.
func SetPreferred[T any](n Node, key Key[T], value T) {
	var previous Node
	Ancestors(n, func(current Node) bool {
		defer func() { previous = current }()

		if HasValue(current, key) {
			if previous != nil && !SameNode(previous, n) {
				Set(previous, key, value)
			}
			return true
		}
		if isPresentationRoot(current) {
			if !SameNode(current, n) {
				Set(current, key, value)
			}
			return true
		}
		return false
	})
	Set(n, key, value)
}
