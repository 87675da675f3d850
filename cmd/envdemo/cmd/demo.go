package cmd

import (
	"fmt"
	"sort"

	"github.com/go-drift/uienv/internal/config"
	"github.com/go-drift/uienv/pkg/env"
	"github.com/go-drift/uienv/pkg/errors"
	"github.com/go-drift/uienv/pkg/hierarchy"
)

// demo is the sample hierarchy shared by the commands:
//
//	Window(main)
//	  tabs
//	    feed (navigation): timeline, post[title, body]
//	    profile[avatar]
//	  compose, presented by tabs [editor]
type demo struct {
	app    *hierarchy.Application
	window *hierarchy.Window
	tabs   *hierarchy.TabController
	nodes  map[string]env.Node
	counts map[string]int
	order  []string
}

type named interface {
	env.Node
	Name() string
}

func buildDemo() (*demo, error) {
	d := &demo{
		app:    hierarchy.NewApplication(),
		window: hierarchy.NewWindow("main"),
		nodes:  make(map[string]env.Node),
		counts: make(map[string]int),
	}

	timeline := d.controller("timeline")
	post := d.controller("post")
	profile := d.controller("profile")
	compose := d.controller("compose")

	if err := d.addViews(timeline.View(), "list"); err != nil {
		return nil, err
	}
	if err := d.addViews(post.View(), "title", "body"); err != nil {
		return nil, err
	}
	if err := d.addViews(profile.View(), "avatar"); err != nil {
		return nil, err
	}
	if err := d.addViews(compose.View(), "editor"); err != nil {
		return nil, err
	}

	feed, err := hierarchy.NewNavigationController("feed", timeline, post)
	if err != nil {
		return nil, hierarchyError(err)
	}
	d.track(feed, &feed.OnEnvironmentUpdate)
	tabs, err := hierarchy.NewTabController("tabs", feed, profile)
	if err != nil {
		return nil, hierarchyError(err)
	}
	d.track(tabs, &tabs.OnEnvironmentUpdate)
	d.tabs = tabs

	if err := d.window.SetRootController(tabs); err != nil {
		return nil, hierarchyError(err)
	}
	if err := tabs.Present(compose); err != nil {
		return nil, hierarchyError(err)
	}
	if err := d.app.AddWindow(d.window); err != nil {
		return nil, hierarchyError(err)
	}
	d.track(d.window, &d.window.OnEnvironmentUpdate)
	for _, c := range []*hierarchy.Controller{timeline, post, profile, compose} {
		d.track(c.View(), &c.View().OnEnvironmentUpdate)
	}
	d.track(feed.View(), &feed.View().OnEnvironmentUpdate)
	d.track(tabs.View(), &tabs.View().OnEnvironmentUpdate)
	return d, nil
}

// applyConfig seeds the window with the values in dir/uienv.yaml.
func (d *demo) applyConfig(dir string) (*config.Resolved, error) {
	resolved, err := config.Resolve(dir)
	if err != nil {
		return nil, err
	}
	resolved.Apply(d.window)
	d.resetCounts()
	return resolved, nil
}

func (d *demo) controller(name string) *hierarchy.Controller {
	c := hierarchy.NewController(name)
	d.track(c, &c.OnEnvironmentUpdate)
	return c
}

func (d *demo) addViews(parent *hierarchy.View, names ...string) error {
	for _, name := range names {
		v := hierarchy.NewView(name)
		d.track(v, &v.OnEnvironmentUpdate)
		if err := parent.AddSubview(v); err != nil {
			return hierarchyError(err)
		}
	}
	return nil
}

// track registers n under its name and counts its environment updates.
func (d *demo) track(n named, hook *func()) {
	name := n.Name()
	if _, ok := d.nodes[name]; !ok {
		d.order = append(d.order, name)
	}
	d.nodes[name] = n
	*hook = func() { d.counts[name]++ }
}

func (d *demo) lookup(name string) (env.Node, error) {
	if n, ok := d.nodes[name]; ok {
		return n, nil
	}
	names := append([]string(nil), d.order...)
	sort.Strings(names)
	return nil, fmt.Errorf("no node named %q (have %v)", name, names)
}

func (d *demo) resetCounts() {
	clear(d.counts)
}

func hierarchyError(err error) error {
	return &errors.EnvError{
		Op:   "envdemo.buildDemo",
		Kind: errors.KindHierarchy,
		Err:  err,
	}
}
