package keys

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"golang.org/x/text/language"

	"github.com/go-drift/uienv/pkg/env"
)

// Calendar identifies a calendar system.
type Calendar string

// Supported calendars.
const (
	Gregorian Calendar = "gregorian"
	ISO8601   Calendar = "iso8601"
	Buddhist  Calendar = "buddhist"
	Chinese   Calendar = "chinese"
	Hebrew    Calendar = "hebrew"
	Indian    Calendar = "indian"
	Islamic   Calendar = "islamic"
	Japanese  Calendar = "japanese"
	Persian   Calendar = "persian"
)

var calendars = []Calendar{Gregorian, ISO8601, Buddhist, Chinese, Hebrew, Indian, Islamic, Japanese, Persian}

// bcp47Calendars maps Unicode "ca" extension values that differ from our
// identifiers.
var bcp47Calendars = map[string]Calendar{
	"gregory": Gregorian,
}

// defaultCalendar honours a "ca" extension on the process locale, such as
// "th-TH-u-ca-buddhist".
var defaultCalendar = sync.OnceValue(func() Calendar {
	return calendarForLocale(defaultLocale())
})

// CalendarKey is the key for the calendar views should use with dates.
type CalendarKey struct{}

// DefaultValue returns the calendar of the process locale.
func (CalendarKey) DefaultValue() Calendar {
	return defaultCalendar()
}

// CalendarOf returns the calendar in effect at n.
func CalendarOf(n env.Node) Calendar {
	return env.Get(n, CalendarKey{})
}

// ParseCalendar parses a calendar identifier. BCP 47 names such as
// "gregory" are accepted too.
func ParseCalendar(s string) (Calendar, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if c, ok := bcp47Calendars[name]; ok {
		return c, nil
	}
	for _, c := range calendars {
		if string(c) == name {
			return c, nil
		}
	}
	return "", fmt.Errorf("parse calendar %q: unknown calendar", s)
}

func calendarForLocale(tag language.Tag) Calendar {
	if ca := tag.TypeForKey("ca"); ca != "" {
		if c, err := ParseCalendar(ca); err == nil {
			return c
		}
	}
	return Gregorian
}

// TimeZoneKey is the key for the time zone views should use with dates.
type TimeZoneKey struct{}

// DefaultValue returns time.Local.
func (TimeZoneKey) DefaultValue() *time.Location {
	return time.Local
}

// TimeZoneOf returns the time zone in effect at n.
func TimeZoneOf(n env.Node) *time.Location {
	return env.Get(n, TimeZoneKey{})
}

// ParseTimeZone loads an IANA time zone such as "Europe/Warsaw". "Local"
// and "UTC" are accepted.
func ParseTimeZone(name string) (*time.Location, error) {
	loc, err := time.LoadLocation(strings.TrimSpace(name))
	if err != nil {
		return nil, fmt.Errorf("parse time zone %q: %w", name, err)
	}
	return loc, nil
}
