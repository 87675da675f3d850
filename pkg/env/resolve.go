package env

// Get returns the value of key visible at n: the value attached to the
// nearest node on n's bottom-up chain, n included, or key.DefaultValue() if
// no node on the chain has one.
func Get[T any](n Node, key Key[T]) T {
	value, _, _ := Resolve(n, key)
	return value
}

// Resolve is like [Get] but also returns the node that supplied the value.
// ok is false, and source nil, when the default was used.
func Resolve[T any](n Node, key Key[T]) (value T, source Node, ok bool) {
	value = key.DefaultValue()
	Ancestors(n, func(current Node) bool {
		found, has := Lookup(current.environment().values(), key)
		if !has {
			return false
		}
		value, source, ok = found, current, true
		return true
	})
	return value, source, ok
}
