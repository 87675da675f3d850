package errors

import (
	"os"
	"sync"

	"github.com/hashicorp/go-hclog"
)

var defaultLogger = sync.OnceValue(func() hclog.Logger {
	return hclog.New(&hclog.LoggerOptions{
		Name:   "uienv",
		Level:  hclog.Warn,
		Output: os.Stderr,
	})
})

// LogHandler is an ErrorHandler that writes to an hclog logger.
type LogHandler struct {
	// Logger receives the records. When nil a stderr logger named "uienv"
	// is used.
	Logger hclog.Logger
	// Verbose adds stack traces to the records.
	Verbose bool
}

func (h *LogHandler) logger() hclog.Logger {
	if h.Logger != nil {
		return h.Logger
	}
	return defaultLogger()
}

// HandleError logs err at Error level.
func (h *LogHandler) HandleError(err *EnvError) {
	if err == nil {
		return
	}
	args := []any{"op", err.Op, "kind", err.Kind.String()}
	if err.Channel != "" {
		args = append(args, "channel", err.Channel)
	}
	args = append(args, "error", err.Err)
	if h.Verbose && err.StackTrace != "" {
		args = append(args, "stack", err.StackTrace)
	}
	h.logger().Error("environment error", args...)
}

// HandlePanic logs err at Error level.
func (h *LogHandler) HandlePanic(err *PanicError) {
	if err == nil {
		return
	}
	args := []any{"value", err.Value}
	if err.Op != "" {
		args = append([]any{"op", err.Op}, args...)
	}
	if h.Verbose && err.StackTrace != "" {
		args = append(args, "stack", err.StackTrace)
	}
	h.logger().Error("recovered panic", args...)
}
