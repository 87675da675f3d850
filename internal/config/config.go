// Package config loads uienv.yaml, the optional file that seeds a window's
// environment with fixed values.
package config

import (
	stderrors "errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/mod/modfile"
	"golang.org/x/mod/module"
	"golang.org/x/mod/semver"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/go-drift/uienv/pkg/env"
	"github.com/go-drift/uienv/pkg/errors"
	"github.com/go-drift/uienv/pkg/keys"
)

// FileName is the configuration file looked up in a project directory.
const FileName = "uienv.yaml"

// CurrentSchema is written by tools and assumed when schema is omitted.
const CurrentSchema = "v1.0.0"

const supportedMajor = "v1"

// Config mirrors uienv.yaml.
type Config struct {
	Schema      string            `yaml:"schema,omitempty"`
	App         AppConfig         `yaml:"app"`
	Environment EnvironmentConfig `yaml:"environment"`
}

// AppConfig contains application metadata.
type AppConfig struct {
	Name string `yaml:"name,omitempty"`
}

// EnvironmentConfig lists values to set on the root of a window. Empty
// fields leave the platform value in effect.
type EnvironmentConfig struct {
	Locale         string `yaml:"locale,omitempty"`
	Calendar       string `yaml:"calendar,omitempty"`
	TimeZone       string `yaml:"time_zone,omitempty"`
	SizeCategory   string `yaml:"size_category,omitempty"`
	InterfaceStyle string `yaml:"interface_style,omitempty"`
}

// Resolved is a validated configuration. Nil value fields were not
// configured.
type Resolved struct {
	Root    string
	Schema  string
	AppName string

	Locale         *language.Tag
	Calendar       *keys.Calendar
	TimeZone       *time.Location
	SizeCategory   *keys.SizeCategory
	InterfaceStyle *keys.UserInterfaceStyle
}

// LoadOptional reads uienv.yaml from dir. A missing file yields an empty
// Config.
func LoadOptional(dir string) (*Config, error) {
	data, err := os.ReadFile(filepath.Join(dir, FileName))
	if err != nil {
		if stderrors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", FileName, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", FileName, err)
	}
	return &cfg, nil
}

// Resolve loads uienv.yaml from dir, if present, validates it and parses
// its values. Failures are returned as *errors.EnvError with KindConfig.
func Resolve(dir string) (*Resolved, error) {
	cfg, err := LoadOptional(dir)
	if err != nil {
		return nil, configError(err)
	}

	schema, err := checkSchema(cfg.Schema)
	if err != nil {
		return nil, configError(err)
	}

	r := &Resolved{
		Root:    dir,
		Schema:  schema,
		AppName: strings.TrimSpace(cfg.App.Name),
	}
	if r.AppName == "" {
		r.AppName = defaultAppName(dir)
	}
	if err := r.parseEnvironment(cfg.Environment); err != nil {
		return nil, configError(err)
	}
	return r, nil
}

// Apply sets every configured value on n.
func (r *Resolved) Apply(n env.Node) {
	if r.Locale != nil {
		env.Set(n, keys.LocaleKey{}, *r.Locale)
	}
	if r.Calendar != nil {
		env.Set(n, keys.CalendarKey{}, *r.Calendar)
	}
	if r.TimeZone != nil {
		env.Set(n, keys.TimeZoneKey{}, r.TimeZone)
	}
	if r.SizeCategory != nil {
		env.Set(n, keys.SizeCategoryKey{}, *r.SizeCategory)
	}
	if r.InterfaceStyle != nil {
		env.Set(n, keys.UserInterfaceStyleKey{}, *r.InterfaceStyle)
	}
}

func (r *Resolved) parseEnvironment(e EnvironmentConfig) error {
	var errs []error
	if v := strings.TrimSpace(e.Locale); v != "" {
		tag, err := keys.ParseLocale(v)
		errs = append(errs, fieldError("locale", err))
		if err == nil {
			r.Locale = &tag
		}
	}
	if v := strings.TrimSpace(e.Calendar); v != "" {
		c, err := keys.ParseCalendar(v)
		errs = append(errs, fieldError("calendar", err))
		if err == nil {
			r.Calendar = &c
		}
	}
	if v := strings.TrimSpace(e.TimeZone); v != "" {
		loc, err := keys.ParseTimeZone(v)
		errs = append(errs, fieldError("time_zone", err))
		r.TimeZone = loc
	}
	if v := strings.TrimSpace(e.SizeCategory); v != "" {
		c, err := keys.ParseSizeCategory(v)
		errs = append(errs, fieldError("size_category", err))
		if err == nil {
			r.SizeCategory = &c
		}
	}
	if v := strings.TrimSpace(e.InterfaceStyle); v != "" {
		s, err := keys.ParseUserInterfaceStyle(v)
		errs = append(errs, fieldError("interface_style", err))
		if err == nil {
			r.InterfaceStyle = &s
		}
	}
	return stderrors.Join(errs...)
}

func fieldError(field string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("environment.%s: %w", field, err)
}

// checkSchema normalizes schema to a canonical semantic version and rejects
// majors other than v1.
func checkSchema(schema string) (string, error) {
	s := strings.TrimSpace(schema)
	if s == "" {
		return CurrentSchema, nil
	}
	if !strings.HasPrefix(s, "v") {
		s = "v" + s
	}
	if !semver.IsValid(s) {
		return "", fmt.Errorf("schema %q is not a semantic version", schema)
	}
	if major := semver.Major(s); major != supportedMajor {
		return "", fmt.Errorf("schema %s is not supported (want %s.x)", semver.Canonical(s), supportedMajor)
	}
	return semver.Canonical(s), nil
}

func configError(err error) error {
	return &errors.EnvError{
		Op:   "config.Resolve",
		Kind: errors.KindConfig,
		Err:  err,
	}
}

// defaultAppName is the last element of the module path in dir/go.mod,
// without a major version suffix, or the directory name.
func defaultAppName(dir string) string {
	base := filepath.Base(dir)
	data, err := os.ReadFile(filepath.Join(dir, "go.mod"))
	if err != nil {
		return base
	}
	path := modfile.ModulePath(data)
	if path == "" {
		return base
	}
	if prefix, _, ok := module.SplitPathVersion(path); ok {
		path = prefix
	}
	if i := strings.LastIndex(path, "/"); i >= 0 {
		path = path[i+1:]
	}
	if path == "" {
		return base
	}
	return path
}
