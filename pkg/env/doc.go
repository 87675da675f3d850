// Package env propagates typed environment values through a view/controller
// hierarchy.
//
// A value set on a node with [Set] is visible from that node and every
// descendant through [Get], until a descendant sets its own value for the
// same key. After every Set, nodes reachable below the mutated node that
// implement [Updater] are told to refresh.
//
// # Keys
//
// A key is any type implementing [Key]. Identity is by the key's type, so
// keys are normally empty structs:
//
//	type themeNameKey struct{}
//
//	func (themeNameKey) DefaultValue() string { return "default" }
//
//	var ThemeName env.Key[string] = themeNameKey{}
//
// # Nodes
//
// The hierarchy is provided by the host. Views implement [View], controllers
// implement [Controller], and both embed [Base] to carry their attached
// values. The two traversal orders are:
//
//   - bottom-up, from a node toward its window. A root view escalates into its
//     owning controller, and a detached controller escalates into its parent or
//     presenting controller. [Get] uses it.
//   - top-down, from a node into its subviews, its child controllers and the
//     controller it presented. [Notify] uses it.
//
// # Threading
//
// All functions must be called from the UI thread. Nothing in this package
// locks. A hook that changes the hierarchy while a walk is in progress has
// undefined results.
package env
