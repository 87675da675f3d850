package cmd

import (
	"fmt"
	"strings"

	"github.com/go-drift/uienv/pkg/keys"
	"github.com/go-drift/uienv/pkg/platform"
)

func init() {
	RegisterCommand(&Command{
		Name:  "simulate",
		Short: "Replay platform events on the sample hierarchy",
		Long: `Replay a sequence of platform events on the sample hierarchy and
report which nodes were notified.

Each step is one of:
  {...}                 a settings payload, as sent on the uienv/settings channel
  override:STYLE        override the window's interface style
  prefer:NODE=STYLE     prefer STYLE for the presentation enclosing NODE

Usage:
  envdemo simulate '{"locale":"pl_PL","interfaceStyle":"dark"}'
  envdemo simulate override:dark prefer:editor=light`,
		Usage: "envdemo simulate [--dir DIR] STEP...",
		Run:   runSimulate,
	})
}

func runSimulate(args []string) error {
	dir, steps, err := dirFlag(args)
	if err != nil {
		return err
	}
	if len(steps) == 0 {
		return fmt.Errorf("at least one step is required\n\nUsage: envdemo simulate [--dir DIR] STEP...")
	}
	d, err := buildDemo()
	if err != nil {
		return err
	}
	if _, err := d.applyConfig(dir); err != nil {
		return err
	}

	platform.InstallEnvironmentListeners(d.app)
	var changed []platform.Field
	remove := platform.Settings.AddHandler(func(c platform.Change) {
		changed = append(changed, c.Fields...)
	})
	defer remove()

	for i, step := range steps {
		d.resetCounts()
		changed = nil
		if err := d.runStep(step); err != nil {
			return fmt.Errorf("step %d: %w", i+1, err)
		}
		logger.Debug("step done", "step", step, "notified", len(d.counts))

		fmt.Fprintf(stdout, "step %d: %s\n", i+1, step)
		if len(changed) > 0 {
			names := make([]string, len(changed))
			for j, f := range changed {
				names[j] = string(f)
			}
			fmt.Fprintf(stdout, "  changed: %s\n", strings.Join(names, ", "))
		}
		fmt.Fprintf(stdout, "  notified: %s\n", d.notified())
	}
	return nil
}

func (d *demo) runStep(step string) error {
	switch {
	case strings.HasPrefix(step, "{"):
		return platform.HandleEvent(platform.SettingsChannel, []byte(step))
	case strings.HasPrefix(step, "override:"):
		style, err := keys.ParseUserInterfaceStyle(strings.TrimPrefix(step, "override:"))
		if err != nil {
			return err
		}
		platform.OverrideUserInterfaceStyle(d.window, style)
		return nil
	case strings.HasPrefix(step, "prefer:"):
		name, value, ok := strings.Cut(strings.TrimPrefix(step, "prefer:"), "=")
		if !ok {
			return fmt.Errorf("prefer needs NODE=STYLE, got %q", step)
		}
		n, err := d.lookup(name)
		if err != nil {
			return err
		}
		style, err := keys.ParseUserInterfaceStyle(value)
		if err != nil {
			return err
		}
		keys.PreferUserInterfaceStyle(n, style)
		return nil
	default:
		return fmt.Errorf("unknown step %q", step)
	}
}

// notified lists the nodes updated since the last reset, in registration
// order, with their counts.
func (d *demo) notified() string {
	var parts []string
	for _, name := range d.order {
		if n := d.counts[name]; n > 0 {
			parts = append(parts, fmt.Sprintf("%s=%d", name, n))
		}
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, " ")
}
