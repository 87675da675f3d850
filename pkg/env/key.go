package env

import "reflect"

// Key identifies one environment entry and supplies its default value.
//
// Two keys are the same iff they have the same dynamic type. DefaultValue is
// expected to return the same value on every call for the life of the process.
type Key[T any] interface {
	DefaultValue() T
}

// keyID returns the identity of key.
func keyID(key any) reflect.Type {
	return reflect.TypeOf(key)
}

// KeyName returns a printable name for a key, used in diagnostics.
func KeyName(key any) string {
	t := keyID(key)
	if t == nil {
		return "<nil>"
	}
	return t.String()
}
