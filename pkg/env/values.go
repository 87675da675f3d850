package env

import (
	"reflect"
	"sort"
)

// Values is a set of explicitly assigned environment values.
//
// Values has copy-on-write semantics: [With] returns a new Values and never
// touches the receiver, so a copy stored on a node is never changed by
// edits made to another copy. The zero value is an empty set.
type Values struct {
	values map[reflect.Type]any
}

// Read returns the value stored for key, or key.DefaultValue() if none is.
func Read[T any](v Values, key Key[T]) T {
	if value, ok := Lookup(v, key); ok {
		return value
	}
	return key.DefaultValue()
}

// Lookup returns the value stored for key and reports whether one was found.
// A stored value whose dynamic type is not T is treated as absent.
func Lookup[T any](v Values, key Key[T]) (T, bool) {
	raw, ok := v.values[keyID(key)]
	if !ok {
		var zero T
		return zero, false
	}
	value, ok := raw.(T)
	return value, ok
}

// With returns a copy of v with key set to value.
func With[T any](v Values, key Key[T], value T) Values {
	next := make(map[reflect.Type]any, len(v.values)+1)
	for k, existing := range v.values {
		next[k] = existing
	}
	next[keyID(key)] = value
	return Values{values: next}
}

// Has reports whether a value is stored for key. It reports the same result as
// the ok return of [Lookup] for keys whose stored value has the right type.
func (v Values) Has(key any) bool {
	_, ok := v.values[keyID(key)]
	return ok
}

// Len returns the number of explicitly stored keys.
func (v Values) Len() int {
	return len(v.values)
}

// Keys returns the names of the stored keys, sorted.
func (v Values) Keys() []string {
	names := make([]string, 0, len(v.values))
	for t := range v.values {
		names = append(names, t.String())
	}
	sort.Strings(names)
	return names
}
