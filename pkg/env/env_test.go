package env

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestGet_DefaultWhenNothingSet(t *testing.T) {
	rec := &recorder{}
	a := newView(rec, "A")
	b := newView(rec, "B")
	c := newView(rec, "C")
	a.add(b.add(c))

	for _, n := range []*testView{a, b, c} {
		if got := Get(n, localeKey{}); got != "en" {
			t.Errorf("Get(%s) = %q, want default %q", n.name, got, "en")
		}
	}
}

func TestSet_NestedViewsShadowing(t *testing.T) {
	rec := &recorder{}
	a := newView(rec, "A")
	b := newView(rec, "B")
	c := newView(rec, "C")
	a.add(b.add(c))

	Set(a, localeKey{}, "pl")
	for _, n := range []*testView{a, b, c} {
		if got := Get(n, localeKey{}); got != "pl" {
			t.Errorf("after Set(A): Get(%s) = %q, want %q", n.name, got, "pl")
		}
	}

	Set(b, localeKey{}, "fr")
	want := map[string]string{"A": "pl", "B": "fr", "C": "fr"}
	for _, n := range []*testView{a, b, c} {
		if got := Get(n, localeKey{}); got != want[n.name] {
			t.Errorf("after Set(B): Get(%s) = %q, want %q", n.name, got, want[n.name])
		}
	}
}

func TestSet_DoesNotOverrideChildOrLeakUpward(t *testing.T) {
	rec := &recorder{}
	parent := newView(rec, "parent")
	child := newView(rec, "child")
	sibling := newView(rec, "sibling")
	parent.add(child, sibling)

	Set(child, localeKey{}, "pl")
	if got := Get(parent, localeKey{}); got != "en" {
		t.Errorf("parent = %q, want default", got)
	}
	if got := Get(sibling, localeKey{}); got != "en" {
		t.Errorf("sibling = %q, want default", got)
	}

	Set(parent, localeKey{}, "uk")
	if got := Get(parent, localeKey{}); got != "uk" {
		t.Errorf("parent = %q, want %q", got, "uk")
	}
	if got := Get(child, localeKey{}); got != "pl" {
		t.Errorf("child = %q, want its own %q", got, "pl")
	}
	if got := Get(sibling, localeKey{}); got != "uk" {
		t.Errorf("sibling = %q, want inherited %q", got, "uk")
	}
}

func TestSet_KeyIndependence(t *testing.T) {
	rec := &recorder{}
	view := newView(rec, "view")
	child := newView(rec, "child")
	view.add(child)

	Set(view, localeKey{}, "pl")
	Set(child, localeKey{}, "fr")
	Set(view, calendarKey{}, "indian")

	tests := []struct {
		name string
		got  string
		want string
	}{
		{"view locale", Get(view, localeKey{}), "pl"},
		{"child locale", Get(child, localeKey{}), "fr"},
		{"view calendar", Get(view, calendarKey{}), "indian"},
		{"child calendar", Get(child, calendarKey{}), "indian"},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s = %q, want %q", tt.name, tt.got, tt.want)
		}
	}
}

func TestGet_ExplicitDefaultShadowsAncestor(t *testing.T) {
	rec := &recorder{}
	a := newView(rec, "A")
	b := newView(rec, "B")
	c := newView(rec, "C")
	a.add(b.add(c))

	Set(a, localeKey{}, "pl")
	Set(b, localeKey{}, "en")

	if got := Get(c, localeKey{}); got != "en" {
		t.Errorf("Get(C) = %q, want B's explicit %q", got, "en")
	}
	_, source, ok := Resolve(c, localeKey{})
	if !ok || !SameNode(source, b) {
		t.Errorf("Resolve(C) source = %v (ok=%v), want B", source, ok)
	}
}

func TestResolve_ReportsDefault(t *testing.T) {
	view := newView(nil, "view")
	value, source, ok := Resolve(view, scaleKey{})
	if ok || source != nil {
		t.Errorf("Resolve = (%v, %v, %v), want default with no source", value, source, ok)
	}
	if value != 1 {
		t.Errorf("value = %v, want 1", value)
	}
}

func TestSet_UpdatesAttachmentInPlace(t *testing.T) {
	view := newView(nil, "view")
	if view.store != nil {
		t.Fatal("store attached before first Set")
	}

	Set(view, localeKey{}, "pl")
	first := view.store
	Set(view, calendarKey{}, "iso8601")

	if view.store != first {
		t.Error("second Set replaced the attachment object")
	}
	if got := Read(first.values, localeKey{}); got != "pl" {
		t.Errorf("held attachment locale = %q, want %q", got, "pl")
	}
	if got := Read(first.values, calendarKey{}); got != "iso8601" {
		t.Errorf("held attachment calendar = %q, want %q", got, "iso8601")
	}
}

func TestEnvironment_OnlyExplicitValues(t *testing.T) {
	parent := newView(nil, "parent")
	child := newView(nil, "child")
	parent.add(child)
	Set(parent, localeKey{}, "pl")

	if Environment(child).Len() != 0 {
		t.Errorf("child environment has %d values, want 0", Environment(child).Len())
	}
	if !HasValue(parent, localeKey{}) {
		t.Error("HasValue(parent) = false")
	}
	if HasValue(child, localeKey{}) {
		t.Error("HasValue(child) = true for an inherited value")
	}

	// Mutating a snapshot does not reach the node.
	snapshot := With(Environment(parent), localeKey{}, "de")
	_ = snapshot
	if got := Get(parent, localeKey{}); got != "pl" {
		t.Errorf("parent = %q after editing a snapshot, want %q", got, "pl")
	}
}

func TestGet_ControllerHierarchy(t *testing.T) {
	rec := &recorder{}
	vc := newController(rec, "vc")
	view := newView(rec, "view")
	vc.view.add(view)

	Set(vc, localeKey{}, "se")
	if got := Get(vc, localeKey{}); got != "se" {
		t.Errorf("vc = %q, want %q", got, "se")
	}
	if got := Get(view, localeKey{}); got != "se" {
		t.Errorf("subview of vc.view = %q, want %q", got, "se")
	}
}

func TestGet_ChildControllersEscalateToParent(t *testing.T) {
	rec := &recorder{}
	vc := newController(rec, "vc")
	child1 := newController(rec, "child1")
	child2 := newController(rec, "child2")
	vc.addChild(child1, false)
	child1.addChild(child2, false)

	Set(vc, localeKey{}, "se")
	for _, c := range []*testController{vc, child1, child2} {
		if got := Get(c, localeKey{}); got != "se" {
			t.Errorf("Get(%s) = %q, want %q", c.name, got, "se")
		}
	}
	if got := Get(child2.view, localeKey{}); got != "se" {
		t.Errorf("Get(child2.view) = %q, want %q", got, "se")
	}
}

func TestGet_AcrossPresentation(t *testing.T) {
	rec := &recorder{}
	window := newWindow(rec, "window")
	vc1 := newController(rec, "vc1")
	vc2 := newController(rec, "vc2")
	window.add(vc1.view)
	vc1.present(vc2)
	s := newView(rec, "S")
	vc2.view.add(s)

	Set(window, localeKey{}, "pl")
	if got := Get(s, localeKey{}); got != "pl" {
		t.Errorf("Get(S) = %q, want window value %q", got, "pl")
	}

	Set(vc2, localeKey{}, "fr")
	if got := Get(vc1, localeKey{}); got != "pl" {
		t.Errorf("presenter = %q, want %q", got, "pl")
	}
	if got := Get(s, localeKey{}); got != "fr" {
		t.Errorf("Get(S) = %q, want %q", got, "fr")
	}
}

func TestAncestors_Order(t *testing.T) {
	rec := &recorder{}
	window := newWindow(rec, "window")
	vc1 := newController(rec, "vc1")
	vc2 := newController(rec, "vc2")
	child := newController(rec, "child")
	window.add(vc1.view)
	vc1.present(vc2)
	vc2.addChild(child, false)
	leaf := newView(rec, "leaf")
	child.view.add(leaf)

	var got []string
	Ancestors(leaf, func(n Node) bool {
		got = append(got, nodeName(n))
		return false
	})
	want := []string{"leaf", "child.view", "child", "vc2", "vc1", "window"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Ancestors mismatch (-want +got):\n%s", diff)
	}
}

func TestAncestors_Stop(t *testing.T) {
	a := newView(nil, "A")
	b := newView(nil, "B")
	c := newView(nil, "C")
	a.add(b.add(c))

	var got []string
	Ancestors(c, func(n Node) bool {
		got = append(got, nodeName(n))
		return nodeName(n) == "B"
	})
	if diff := cmp.Diff([]string{"C", "B"}, got); diff != "" {
		t.Errorf("Ancestors mismatch (-want +got):\n%s", diff)
	}
}
