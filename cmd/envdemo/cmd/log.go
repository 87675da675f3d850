package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/hashicorp/go-hclog"

	"github.com/go-drift/uienv/pkg/errors"
	"github.com/go-drift/uienv/pkg/platform"
)

const logLevelEnv = "UIENV_LOG_LEVEL"

var logger hclog.Logger = hclog.NewNullLogger()

// setupLogging routes error reports and settings logs to a stderr logger at
// level. An empty level means warn.
func setupLogging(level string) error {
	lvl := hclog.Warn
	if level = strings.TrimSpace(level); level != "" {
		lvl = hclog.LevelFromString(level)
		if lvl == hclog.NoLevel {
			return fmt.Errorf("unknown log level %q", level)
		}
	}
	logger = hclog.New(&hclog.LoggerOptions{
		Name:   "envdemo",
		Level:  lvl,
		Output: os.Stderr,
	})
	errors.SetHandler(&errors.LogHandler{Logger: logger, Verbose: lvl <= hclog.Debug})
	platform.Settings.SetLogger(logger)
	return nil
}
