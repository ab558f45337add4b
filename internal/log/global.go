package log

import "sync"

var (
	globalMu sync.Mutex
	global   *Logger
)

// SetDefaultLogger installs the logger returned by DefaultLogger. Command
// setup calls it once, after the configuration is known; packages built
// before that point pick up a plain stderr logger instead.
func SetDefaultLogger(logger *Logger) {
	globalMu.Lock()
	global = logger
	globalMu.Unlock()
}

// DefaultLogger returns the installed logger, creating a default stderr
// logger on first use when none has been installed.
func DefaultLogger() *Logger {
	globalMu.Lock()
	defer globalMu.Unlock()
	if global == nil {
		global = Default()
	}
	return global
}
