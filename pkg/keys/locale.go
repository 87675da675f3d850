package keys

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"golang.org/x/text/language"

	"github.com/go-drift/uienv/pkg/env"
)

// FallbackLocale is used when the process locale is unset or unparseable.
var FallbackLocale = language.AmericanEnglish

// localeVars are consulted in order, as POSIX does for LC_MESSAGES.
var localeVars = []string{"LC_ALL", "LC_MESSAGES", "LANG"}

var defaultLocale = sync.OnceValue(func() language.Tag {
	return localeFromEnv(os.Getenv)
})

// LocaleKey is the key for the locale views should format text with.
type LocaleKey struct{}

// DefaultValue returns the process locale.
func (LocaleKey) DefaultValue() language.Tag {
	return defaultLocale()
}

// LocaleOf returns the locale in effect at n.
func LocaleOf(n env.Node) language.Tag {
	return env.Get(n, LocaleKey{})
}

// ParseLocale parses a BCP 47 tag or a POSIX locale name such as
// "pl_PL.UTF-8" or "sr_RS@latin".
func ParseLocale(s string) (language.Tag, error) {
	name := strings.TrimSpace(s)
	if i := strings.IndexAny(name, ".@"); i >= 0 {
		name = name[:i]
	}
	switch name {
	case "":
		return language.Und, fmt.Errorf("parse locale %q: empty", s)
	case "C", "POSIX":
		return language.Und, fmt.Errorf("parse locale %q: no language", s)
	}
	tag, err := language.Parse(strings.ReplaceAll(name, "_", "-"))
	if err != nil {
		return language.Und, fmt.Errorf("parse locale %q: %w", s, err)
	}
	return tag, nil
}

func localeFromEnv(getenv func(string) string) language.Tag {
	for _, name := range localeVars {
		value := getenv(name)
		if value == "" {
			continue
		}
		if tag, err := ParseLocale(value); err == nil {
			return tag
		}
	}
	return FallbackLocale
}
