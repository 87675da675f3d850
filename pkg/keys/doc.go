// Package keys defines the predefined environment keys: locale, calendar,
// time zone, content size category and user interface style.
//
// Each key is a zero-size struct type usable with the env package:
//
//	env.Set(window, keys.LocaleKey{}, language.Polish)
//	tag := keys.LocaleOf(label)
//
// Defaults describe the process and are computed once, the first time they
// are needed. A platform bridge pushes later changes onto windows with
// env.Set; see package platform.
package keys
