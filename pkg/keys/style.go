package keys

import (
	"fmt"
	"strings"

	"github.com/go-drift/uienv/pkg/env"
)

// UserInterfaceStyle is the light or dark appearance.
type UserInterfaceStyle int

const (
	Unspecified UserInterfaceStyle = iota
	Light
	Dark
)

func (s UserInterfaceStyle) String() string {
	switch s {
	case Unspecified:
		return "unspecified"
	case Light:
		return "light"
	case Dark:
		return "dark"
	default:
		return fmt.Sprintf("UserInterfaceStyle(%d)", int(s))
	}
}

// ParseUserInterfaceStyle parses "unspecified", "light" or "dark".
func ParseUserInterfaceStyle(s string) (UserInterfaceStyle, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "unspecified", "":
		return Unspecified, nil
	case "light":
		return Light, nil
	case "dark":
		return Dark, nil
	}
	return Unspecified, fmt.Errorf("parse interface style %q: unknown style", s)
}

// UserInterfaceStyleKey is the key for the appearance views are drawn with.
//
// Setting it with env.Set changes a subtree only. To change the appearance
// of a whole presentation use [PreferUserInterfaceStyle].
type UserInterfaceStyleKey struct{}

// DefaultValue returns Light.
func (UserInterfaceStyleKey) DefaultValue() UserInterfaceStyle {
	return Light
}

// UserInterfaceStyleOf returns the style in effect at n.
func UserInterfaceStyleOf(n env.Node) UserInterfaceStyle {
	return env.Get(n, UserInterfaceStyleKey{})
}

// PreferUserInterfaceStyle sets style for the presentation enclosing n, such
// as the nearest controller or window, or up to the first ancestor that has
// its own style. The style also applies to n and flows down from where it was
// set.
func PreferUserInterfaceStyle(n env.Node, style UserInterfaceStyle) {
	env.SetPreferred(n, UserInterfaceStyleKey{}, style)
}
