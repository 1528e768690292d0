package logsvc

import (
	"log"

	"github.com/medhistory/medhistory/core"
)

// NewLogger picks the logger for the current build: Rollbar-backed for a
// non-debug build with a token configured, the plain std logger otherwise.
func NewLogger(std *log.Logger, conf *core.Config) core.Logger {
	if !conf.Debug && conf.RollbarToken != "" {
		return NewRollbarLogger(std, conf)
	}
	return NewStdLogger(std, conf)
}
