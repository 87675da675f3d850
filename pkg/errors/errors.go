// Package errors provides structured error reporting for uienv.
//
// Core environment operations never fail. Errors come from the edges: a
// platform bridge delivering malformed settings, a configuration file that
// does not validate, or a hierarchy mutation that was refused. Those are
// wrapped in an [EnvError] and sent to the process-wide [ErrorHandler].
package errors

import (
	"fmt"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindPlatform indicates a platform channel or native bridge error.
	KindPlatform
	// KindParsing indicates a settings payload that could not be parsed.
	KindParsing
	// KindConfig indicates an invalid configuration file.
	KindConfig
	// KindHierarchy indicates a refused view or controller mutation.
	KindHierarchy
)

var kindNames = map[ErrorKind]string{
	KindPlatform:  "platform",
	KindParsing:   "parsing",
	KindConfig:    "config",
	KindHierarchy: "hierarchy",
}

func (k ErrorKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// EnvError is a structured error reported by uienv.
type EnvError struct {
	// Op is the operation that failed, such as "platform.Settings.apply".
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// Channel is the platform channel name, if any.
	Channel string
	// StackTrace is the call stack when the error was created, if captured.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *EnvError) Error() string {
	if e.Channel != "" {
		return fmt.Sprintf("%s [%s] channel=%s: %v", e.Op, e.Kind, e.Channel, e.Err)
	}
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *EnvError) Unwrap() error {
	return e.Err
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked.
	Op         string
	Value      any
	StackTrace string
	Timestamp  time.Time
}

func (e *PanicError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("panic in %s: %v", e.Op, e.Value)
	}
	return fmt.Sprintf("panic: %v", e.Value)
}

// ParseError reports a field of a platform payload that could not be
// parsed.
type ParseError struct {
	// Channel is the platform channel that delivered the payload.
	Channel string
	// Field is the payload field, such as "locale".
	Field string
	// Got is the raw value received.
	Got any
	// Err is the parser's error, if any.
	Err error
}

func (e *ParseError) Error() string {
	msg := fmt.Sprintf("failed to parse %s from channel %s: got %v (%T)", e.Field, e.Channel, e.Got, e.Got)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ErrorHandler receives errors reported through [Report] and [ReportPanic].
type ErrorHandler interface {
	HandleError(err *EnvError)
	HandlePanic(err *PanicError)
}
