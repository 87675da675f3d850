package config

import (
	stderrors "errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"golang.org/x/text/language"

	"github.com/go-drift/uienv/pkg/errors"
	"github.com/go-drift/uienv/pkg/hierarchy"
	"github.com/go-drift/uienv/pkg/keys"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
}

func TestLoadOptional_Missing(t *testing.T) {
	cfg, err := LoadOptional(t.TempDir())
	if err != nil {
		t.Fatalf("LoadOptional: %v", err)
	}
	if cfg.Schema != "" || cfg.App.Name != "" || cfg.Environment != (EnvironmentConfig{}) {
		t.Errorf("expected empty config, got %+v", cfg)
	}
}

func TestLoadOptional_Malformed(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, FileName, "environment: [unclosed")

	if _, err := LoadOptional(dir); err == nil || !strings.Contains(err.Error(), "failed to parse uienv.yaml") {
		t.Errorf("LoadOptional error = %v", err)
	}
}

func TestResolve(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, FileName, `schema: "1.2"
app:
  name: Showcase
environment:
  locale: pl_PL.UTF-8
  calendar: iso8601
  time_zone: UTC
  size_category: xxl
  interface_style: dark
`)

	r, err := Resolve(dir)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if r.Schema != "v1.2.0" {
		t.Errorf("Schema = %q, want v1.2.0", r.Schema)
	}
	if r.AppName != "Showcase" {
		t.Errorf("AppName = %q, want Showcase", r.AppName)
	}
	if r.Locale == nil || *r.Locale != language.MustParse("pl-PL") {
		t.Errorf("Locale = %v, want pl-PL", r.Locale)
	}
	if r.Calendar == nil || *r.Calendar != keys.ISO8601 {
		t.Errorf("Calendar = %v, want iso8601", r.Calendar)
	}
	if r.TimeZone != time.UTC {
		t.Errorf("TimeZone = %v, want UTC", r.TimeZone)
	}
	if r.SizeCategory == nil || *r.SizeCategory != keys.ExtraExtraLarge {
		t.Errorf("SizeCategory = %v, want xxl", r.SizeCategory)
	}
	if r.InterfaceStyle == nil || *r.InterfaceStyle != keys.Dark {
		t.Errorf("InterfaceStyle = %v, want dark", r.InterfaceStyle)
	}
}

func TestResolve_Defaults(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "go.mod", "module example.com/acme/settings-demo/v2\n\ngo 1.24\n")

	r, err := Resolve(dir)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if r.Schema != CurrentSchema {
		t.Errorf("Schema = %q, want %q", r.Schema, CurrentSchema)
	}
	if r.AppName != "settings-demo" {
		t.Errorf("AppName = %q, want settings-demo", r.AppName)
	}
	if r.Locale != nil || r.Calendar != nil || r.TimeZone != nil || r.SizeCategory != nil || r.InterfaceStyle != nil {
		t.Errorf("expected no configured values, got %+v", r)
	}

	bare := t.TempDir()
	r, err = Resolve(bare)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if r.AppName != filepath.Base(bare) {
		t.Errorf("AppName = %q, want %q", r.AppName, filepath.Base(bare))
	}
}

func TestResolve_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []string
	}{
		{"bad schema", "schema: banana\n", []string{`schema "banana" is not a semantic version`}},
		{"future schema", "schema: v2.0.0\n", []string{"schema v2.0.0 is not supported"}},
		{
			"bad values",
			"environment:\n  calendar: mayan\n  size_category: huge\n  interface_style: sepia\n",
			[]string{"environment.calendar", "environment.size_category", "environment.interface_style"},
		},
		{"bad zone", "environment:\n  time_zone: Nowhere/Special\n", []string{"environment.time_zone"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			writeFile(t, dir, FileName, tt.content)

			_, err := Resolve(dir)
			var envErr *errors.EnvError
			if !stderrors.As(err, &envErr) || envErr.Kind != errors.KindConfig {
				t.Fatalf("Resolve error = %v, want a config EnvError", err)
			}
			for _, want := range tt.want {
				if !strings.Contains(err.Error(), want) {
					t.Errorf("error %q should contain %q", err, want)
				}
			}
		})
	}
}

func TestResolved_Apply(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, FileName, "environment:\n  locale: de\n  interface_style: dark\n")
	r, err := Resolve(dir)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}

	window := hierarchy.NewWindow("main")
	root := hierarchy.NewController("root")
	if err := window.SetRootController(root); err != nil {
		t.Fatalf("SetRootController: %v", err)
	}
	updates := 0
	root.OnEnvironmentUpdate = func() { updates++ }

	r.Apply(window)

	if got := keys.LocaleOf(root); got != language.German {
		t.Errorf("LocaleOf(root) = %v, want de", got)
	}
	if got := keys.UserInterfaceStyleOf(root); got != keys.Dark {
		t.Errorf("UserInterfaceStyleOf(root) = %v, want dark", got)
	}
	if got := keys.CalendarOf(root); got != (keys.CalendarKey{}).DefaultValue() {
		t.Errorf("CalendarOf(root) = %v, want the default", got)
	}
	if updates != 2 {
		t.Errorf("root updated %d times, want 2", updates)
	}
}
