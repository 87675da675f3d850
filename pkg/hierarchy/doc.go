// Package hierarchy provides the view and controller types that make up an
// environment hierarchy.
//
// A [Window] roots a tree of [View] values and hosts one root [Controller].
// Controllers own a root view, may contain child controllers, and may present
// one other controller modally. All types implement the node contracts of
// package env, so values set with env.Set flow through them:
//
//	window := hierarchy.NewWindow("main")
//	root := hierarchy.NewController("root")
//	window.SetRootController(root)
//
//	label := hierarchy.NewView("label")
//	root.View().AddSubview(label)
//
//	env.Set(window, keys.Locale, language.Polish)
//	keys.LocaleOf(label) // pl
//
// # Custom nodes
//
// Embed *View or *Controller to build custom nodes. Attaching a node with
// AddSubview, SetView, AddChild, Present or SetRootController records the
// outer value, so methods the outer type defines, such as its own
// UpdateEnvironment, are seen by the environment walks. Nodes used as
// top-level roots before they are attached anywhere should call Bind.
//
// # Threading
//
// Like package env, nothing here locks. Build and mutate the hierarchy on
// the UI thread, and never from inside an UpdateEnvironment hook.
package hierarchy
