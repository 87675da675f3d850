package platform

import "github.com/go-drift/uienv/pkg/errors"

// Stream is a typed view of an EventChannel. Every listener receives every
// event.
type Stream[T any] struct {
	channel *EventChannel
	parser  func(data any) (T, error)
}

// NewStream wraps channel, converting raw events with parser.
func NewStream[T any](channel *EventChannel, parser func(data any) (T, error)) *Stream[T] {
	return &Stream[T]{channel: channel, parser: parser}
}

// Listen calls handler for each event that parses. Parse failures and
// stream errors are sent to errors.Report. Call the returned function to
// stop listening.
func (s *Stream[T]) Listen(handler func(T)) (unsubscribe func()) {
	name := s.channel.Name()
	sub := s.channel.Listen(EventHandler{
		OnEvent: func(data any) {
			val, err := s.parser(data)
			if err != nil {
				errors.Report(&errors.EnvError{
					Op:      "platform.Stream.parse",
					Kind:    errors.KindParsing,
					Channel: name,
					Err:     err,
				})
				return
			}
			handler(val)
		},
		OnError: func(err error) {
			errors.Report(&errors.EnvError{
				Op:      "platform.Stream.error",
				Kind:    errors.KindPlatform,
				Channel: name,
				Err:     err,
			})
		},
	})
	return sub.Cancel
}
