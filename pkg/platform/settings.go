package platform

import (
	"fmt"
	"sync"
	"time"

	"github.com/hashicorp/go-hclog"
	"golang.org/x/text/language"

	"github.com/go-drift/uienv/pkg/env"
	"github.com/go-drift/uienv/pkg/errors"
	"github.com/go-drift/uienv/pkg/hierarchy"
	"github.com/go-drift/uienv/pkg/keys"
)

// SettingsChannel is the channel system settings arrive on. Events are JSON
// objects with optional string fields named after the [Field] constants.
const SettingsChannel = "uienv/settings"

// Field names a system setting.
type Field string

const (
	FieldLocale         Field = "locale"
	FieldTimeZone       Field = "timeZone"
	FieldCalendar       Field = "calendar"
	FieldSizeCategory   Field = "sizeCategory"
	FieldInterfaceStyle Field = "interfaceStyle"
)

// Fields lists every field in the order changes are applied.
var Fields = []Field{FieldLocale, FieldTimeZone, FieldCalendar, FieldSizeCategory, FieldInterfaceStyle}

// Snapshot is the system settings as last reported by the platform.
type Snapshot struct {
	Locale         language.Tag
	TimeZone       *time.Location
	Calendar       keys.Calendar
	SizeCategory   keys.SizeCategory
	InterfaceStyle keys.UserInterfaceStyle
}

// DefaultSnapshot returns the key defaults.
func DefaultSnapshot() Snapshot {
	return Snapshot{
		Locale:         keys.LocaleKey{}.DefaultValue(),
		TimeZone:       keys.TimeZoneKey{}.DefaultValue(),
		Calendar:       keys.CalendarKey{}.DefaultValue(),
		SizeCategory:   keys.SizeCategoryKey{}.DefaultValue(),
		InterfaceStyle: keys.UserInterfaceStyleKey{}.DefaultValue(),
	}
}

// set parses value into field f and reports whether it changed.
func (s *Snapshot) set(f Field, value string) (bool, error) {
	switch f {
	case FieldLocale:
		tag, err := keys.ParseLocale(value)
		if err != nil || tag == s.Locale {
			return false, err
		}
		s.Locale = tag
	case FieldTimeZone:
		loc, err := keys.ParseTimeZone(value)
		if err != nil || (s.TimeZone != nil && loc.String() == s.TimeZone.String()) {
			return false, err
		}
		s.TimeZone = loc
	case FieldCalendar:
		c, err := keys.ParseCalendar(value)
		if err != nil || c == s.Calendar {
			return false, err
		}
		s.Calendar = c
	case FieldSizeCategory:
		c, err := keys.ParseSizeCategory(value)
		if err != nil || c == s.SizeCategory {
			return false, err
		}
		s.SizeCategory = c
	case FieldInterfaceStyle:
		style, err := keys.ParseUserInterfaceStyle(value)
		if err != nil || style == s.InterfaceStyle {
			return false, err
		}
		s.InterfaceStyle = style
	default:
		return false, fmt.Errorf("unknown field %q", f)
	}
	return true, nil
}

// Apply sets the given fields of s on n with env.Set, in [Fields] order.
// With no fields, every field is set.
func (s Snapshot) Apply(n env.Node, fields ...Field) {
	if len(fields) == 0 {
		fields = Fields
	}
	for _, f := range fields {
		switch f {
		case FieldLocale:
			env.Set(n, keys.LocaleKey{}, s.Locale)
		case FieldTimeZone:
			env.Set(n, keys.TimeZoneKey{}, s.TimeZone)
		case FieldCalendar:
			env.Set(n, keys.CalendarKey{}, s.Calendar)
		case FieldSizeCategory:
			env.Set(n, keys.SizeCategoryKey{}, s.SizeCategory)
		case FieldInterfaceStyle:
			env.Set(n, keys.UserInterfaceStyleKey{}, s.InterfaceStyle)
		}
	}
}

// Change describes one applied settings event.
type Change struct {
	// Fields lists the fields that changed, in [Fields] order.
	Fields []Field
	// Snapshot is the settings after the change.
	Snapshot Snapshot
}

// SettingsHandler is told about each change after it reaches the windows.
type SettingsHandler func(Change)

// Settings is the process-wide settings service.
var Settings = newSettingsService()

// SettingsService tracks system settings and pushes changes onto the windows
// of the installed application.
type SettingsService struct {
	events  *EventChannel
	methods *MethodChannel
	stream  *Stream[map[string]string]

	mu          sync.RWMutex
	current     Snapshot
	handlers    map[int]SettingsHandler
	order       []int
	nextID      int
	target      *hierarchy.Application
	unsubscribe func()
	logger      hclog.Logger
}

func newSettingsService() *SettingsService {
	s := &SettingsService{
		events:  NewEventChannel(SettingsChannel),
		methods: NewMethodChannel(SettingsChannel),
	}
	s.stream = NewStream(s.events, parseSettingsPayload)
	s.methods.SetHandler(s.handleCall)
	s.reset()
	return s
}

func (s *SettingsService) reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = DefaultSnapshot()
	s.handlers = make(map[int]SettingsHandler)
	s.order = nil
	s.target = nil
	s.unsubscribe = nil
	s.logger = hclog.NewNullLogger()
}

// Current returns the latest snapshot.
func (s *SettingsService) Current() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// SetLogger sets the logger applied changes are written to at Debug level.
// Pass nil to discard them.
func (s *SettingsService) SetLogger(logger hclog.Logger) {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	s.mu.Lock()
	s.logger = logger.Named("settings")
	s.mu.Unlock()
}

// AddHandler registers handler and returns a function that removes it.
func (s *SettingsService) AddHandler(handler SettingsHandler) (remove func()) {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.handlers[id] = handler
	s.order = append(s.order, id)
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.handlers, id)
		for i, existing := range s.order {
			if existing == id {
				s.order = append(s.order[:i], s.order[i+1:]...)
				break
			}
		}
	}
}

// Refresh asks the platform for the full current settings and applies them.
func (s *SettingsService) Refresh() error {
	result, err := s.methods.Invoke("getSettings", nil)
	if err != nil {
		return fmt.Errorf("refresh settings: %w", err)
	}
	raw, err := parseSettingsPayload(result)
	if err != nil {
		return fmt.Errorf("refresh settings: %w", err)
	}
	s.apply(raw)
	return nil
}

// install directs changes to app's windows and starts listening.
func (s *SettingsService) install(app *hierarchy.Application) {
	s.mu.Lock()
	s.target = app
	subscribed := s.unsubscribe != nil
	s.mu.Unlock()
	if subscribed {
		return
	}
	unsubscribe := s.stream.Listen(s.apply)
	s.mu.Lock()
	s.unsubscribe = unsubscribe
	s.mu.Unlock()
}

func (s *SettingsService) handleCall(method string, args any) (any, error) {
	switch method {
	case "settingsChanged":
		raw, err := parseSettingsPayload(args)
		if err != nil {
			return nil, err
		}
		s.apply(raw)
		return nil, nil
	case "currentSettings":
		return s.Current().encode(), nil
	default:
		return nil, ErrMethodNotFound
	}
}

// apply merges raw into the snapshot and pushes changed fields onto the
// target's windows on the UI goroutine.
func (s *SettingsService) apply(raw map[string]string) {
	change, failures := s.merge(raw)
	for _, err := range failures {
		errors.Report(&errors.EnvError{
			Op:      "platform.Settings.apply",
			Kind:    errors.KindParsing,
			Channel: SettingsChannel,
			Err:     err,
		})
	}
	if len(change.Fields) == 0 {
		return
	}

	s.mu.RLock()
	target := s.target
	logger := s.logger
	handlers := make([]SettingsHandler, 0, len(s.order))
	for _, id := range s.order {
		handlers = append(handlers, s.handlers[id])
	}
	s.mu.RUnlock()

	Dispatch(func() {
		windows := 0
		if target != nil {
			target.ForEachWindow(func(w *hierarchy.Window) {
				change.Snapshot.Apply(w, change.Fields...)
				windows++
			})
		}
		logger.Debug("applied settings", "fields", change.Fields, "windows", windows)
		for _, h := range handlers {
			h(change)
		}
	})
}

func (s *SettingsService) merge(raw map[string]string) (Change, []error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.current
	var change Change
	var failures []error
	for _, f := range Fields {
		value, ok := raw[string(f)]
		if !ok {
			continue
		}
		changed, err := next.set(f, value)
		if err != nil {
			failures = append(failures, &errors.ParseError{
				Channel: SettingsChannel,
				Field:   string(f),
				Got:     value,
				Err:     err,
			})
			continue
		}
		if changed {
			change.Fields = append(change.Fields, f)
		}
	}
	s.current = next
	change.Snapshot = next
	return change, failures
}

func (s Snapshot) encode() map[string]string {
	zone := ""
	if s.TimeZone != nil {
		zone = s.TimeZone.String()
	}
	return map[string]string{
		string(FieldLocale):         s.Locale.String(),
		string(FieldTimeZone):       zone,
		string(FieldCalendar):       string(s.Calendar),
		string(FieldSizeCategory):   s.SizeCategory.String(),
		string(FieldInterfaceStyle): s.InterfaceStyle.String(),
	}
}

// parseSettingsPayload accepts a JSON object whose values are strings.
// Unknown keys are kept and ignored by merge.
func parseSettingsPayload(data any) (map[string]string, error) {
	m, ok := data.(map[string]any)
	if !ok {
		return nil, &errors.ParseError{Channel: SettingsChannel, Field: "payload", Got: data, Err: ErrInvalidPayload}
	}
	out := make(map[string]string, len(m))
	for k, v := range m {
		str, ok := v.(string)
		if !ok {
			return nil, &errors.ParseError{Channel: SettingsChannel, Field: k, Got: v, Err: ErrInvalidPayload}
		}
		out[k] = str
	}
	return out, nil
}
