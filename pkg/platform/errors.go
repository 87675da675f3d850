package platform

import "errors"

// Sentinel errors for platform operations.
var (
	// ErrChannelNotFound is returned for a method call on an unknown channel.
	ErrChannelNotFound = errors.New("platform: channel not found")

	// ErrChannelNotRegistered is returned for an event on an unknown channel.
	ErrChannelNotRegistered = errors.New("platform: event channel not registered")

	// ErrMethodNotFound is returned when a channel does not handle a method.
	ErrMethodNotFound = errors.New("platform: method not implemented")

	// ErrPlatformUnavailable is returned when no native bridge is set.
	ErrPlatformUnavailable = errors.New("platform: bridge unavailable")

	// ErrInvalidPayload is returned when a payload has the wrong shape.
	ErrInvalidPayload = errors.New("platform: invalid payload")
)

// ChannelError is an error reported by native code.
type ChannelError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *ChannelError) Error() string {
	if e.Message != "" {
		return e.Code + ": " + e.Message
	}
	return e.Code
}

// NewChannelError creates a ChannelError.
func NewChannelError(code, message string) *ChannelError {
	return &ChannelError{Code: code, Message: message}
}
