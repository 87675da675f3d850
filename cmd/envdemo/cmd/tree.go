package cmd

import (
	"fmt"
	"time"

	"golang.org/x/image/math/fixed"

	"github.com/go-drift/uienv/pkg/env"
	"github.com/go-drift/uienv/pkg/hierarchy"
	"github.com/go-drift/uienv/pkg/keys"
)

func init() {
	RegisterCommand(&Command{
		Name:  "tree",
		Short: "Print the sample hierarchy",
		Long: `Print the sample hierarchy in notification order.

Each line is indented by its distance from the starting node and lists the
keys set directly on it. Values from uienv.yaml in --dir are applied to the
window first.

Usage:
  envdemo tree              # the whole window
  envdemo tree compose      # the modal and its views`,
		Usage: "envdemo tree [--dir DIR] [NODE]",
		Run:   runTree,
	})
	RegisterCommand(&Command{
		Name:  "resolve",
		Short: "Show the values in effect at a node",
		Long: `Show each predefined value in effect at a node of the sample
hierarchy and the node it was set on.

Usage:
  envdemo resolve title
  envdemo resolve --dir ./app editor`,
		Usage: "envdemo resolve [--dir DIR] NODE",
		Run:   runResolve,
	})
}

func runTree(args []string) error {
	dir, rest, err := dirFlag(args)
	if err != nil {
		return err
	}
	d, err := buildDemo()
	if err != nil {
		return err
	}
	if _, err := d.applyConfig(dir); err != nil {
		return err
	}

	var start env.Node = d.window
	if len(rest) > 0 {
		if start, err = d.lookup(rest[0]); err != nil {
			return err
		}
	}
	return hierarchy.Describe(start, stdout)
}

func runResolve(args []string) error {
	dir, rest, err := dirFlag(args)
	if err != nil {
		return err
	}
	if len(rest) != 1 {
		return fmt.Errorf("a node name is required\n\nUsage: envdemo resolve [--dir DIR] NODE")
	}
	d, err := buildDemo()
	if err != nil {
		return err
	}
	resolved, err := d.applyConfig(dir)
	if err != nil {
		return err
	}
	n, err := d.lookup(rest[0])
	if err != nil {
		return err
	}

	fmt.Fprintf(stdout, "%s in %s\n", rest[0], resolved.AppName)
	printResolved(n)
	return nil
}

func printResolved(n env.Node) {
	locale, localeFrom, _ := env.Resolve(n, keys.LocaleKey{})
	calendar, calendarFrom, _ := env.Resolve(n, keys.CalendarKey{})
	zone, zoneFrom, _ := env.Resolve(n, keys.TimeZoneKey{})
	size, sizeFrom, _ := env.Resolve(n, keys.SizeCategoryKey{})
	style, styleFrom, _ := env.Resolve(n, keys.UserInterfaceStyleKey{})

	row("locale", locale.String(), localeFrom)
	row("calendar", string(calendar), calendarFrom)
	row("time zone", zoneName(zone), zoneFrom)
	row("size category", size.String(), sizeFrom)
	row("interface style", style.String(), styleFrom)
	fmt.Fprintf(stdout, "  %-16s %s\n", "body font", bodyFont(size))
}

func row(name, value string, source env.Node) {
	from := "default"
	if source != nil {
		from = fmt.Sprint(source)
	}
	fmt.Fprintf(stdout, "  %-16s %-20s %s\n", name, value, from)
}

func zoneName(loc *time.Location) string {
	if loc == nil {
		return "<nil>"
	}
	return loc.String()
}

// bodyFont is the 17pt body size scaled to c.
func bodyFont(c keys.SizeCategory) string {
	size := c.ScaledFontSize(fixed.I(17))
	return fmt.Sprintf("%d.%02dpt", size.Floor(), (int(size)&0x3f)*100/64)
}
