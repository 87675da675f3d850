package hierarchy

import (
	"fmt"
	"io"
	"strings"

	"github.com/go-drift/uienv/pkg/env"
)

// Describe writes an outline of n and every node below it to w, in the order
// a change on n notifies them. Each line is indented by the node's distance
// from n along the bottom-up chain and lists the keys set directly on it.
func Describe(n env.Node, w io.Writer) error {
	var err error
	env.Walk(n, func(current env.Node) {
		if err != nil {
			return
		}
		var b strings.Builder
		b.WriteString(strings.Repeat("  ", depth(current, n)))
		b.WriteString(nodeLabel(current))
		if keys := env.Environment(current).Keys(); len(keys) > 0 {
			fmt.Fprintf(&b, " [%s]", strings.Join(keys, ", "))
		}
		b.WriteByte('\n')
		_, err = io.WriteString(w, b.String())
	})
	return err
}

func depth(n, start env.Node) int {
	steps, found := 0, false
	env.Ancestors(n, func(current env.Node) bool {
		if env.SameNode(current, start) {
			found = true
			return true
		}
		steps++
		return false
	})
	if !found {
		return 0
	}
	return steps
}

func nodeLabel(n env.Node) string {
	if s, ok := n.(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprintf("%T", n)
}
