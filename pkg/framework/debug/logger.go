// Package debug provides logging and profiling for output plugins.
//
// Plugins run inside the host process with no console of their own, so the
// default logger writes to stderr, which is the only diagnostic channel the
// host leaves open.
package debug

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/hashicorp/go-hclog"
)

// EnvLogLevel overrides the default log level when set to a level name
// understood by hclog ("trace", "debug", "info", "warn", "error", "off").
const EnvLogLevel = "AVIUTLGO_LOG_LEVEL"

// DefaultName is the name of the root logger.
const DefaultName = "aviutlgo"

var (
	mu            sync.RWMutex
	defaultLogger hclog.Logger
	output        io.Writer = os.Stderr
	level                   = hclog.Info
)

func init() {
	if l := hclog.LevelFromString(os.Getenv(EnvLogLevel)); l != hclog.NoLevel {
		level = l
	}
	defaultLogger = newLogger(output, level)
}

func newLogger(w io.Writer, l hclog.Level) hclog.Logger {
	return hclog.New(&hclog.LoggerOptions{
		Name:   DefaultName,
		Level:  l,
		Output: w,
	})
}

// Default returns the root logger.
func Default() hclog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return defaultLogger
}

// Named returns a sub-logger of the root logger.
func Named(name string) hclog.Logger {
	return Default().Named(name)
}

// SetOutput redirects the root logger. Sub-loggers obtained earlier keep
// writing to the previous destination.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	output = w
	defaultLogger = newLogger(output, level)
}

// SetLevel changes the minimum level of the root logger.
func SetLevel(l hclog.Level) {
	mu.Lock()
	defer mu.Unlock()
	level = l
	defaultLogger.SetLevel(l)
}

// FatalError is the panic value raised by Fatal. Entry points recover
// ordinary panics but re-raise a FatalError, because it marks a broken
// contract with the host.
type FatalError struct {
	Msg  string
	Args []interface{}
}

func (e *FatalError) Error() string {
	if len(e.Args) == 0 {
		return e.Msg
	}
	return fmt.Sprintf("%s %v", e.Msg, e.Args)
}

// Fatal logs msg at error level and panics with a *FatalError.
func Fatal(msg string, args ...interface{}) {
	Default().Error(msg, args...)
	panic(&FatalError{Msg: msg, Args: args})
}

// IsFatal reports whether a recovered panic value came from Fatal.
func IsFatal(v interface{}) bool {
	_, ok := v.(*FatalError)
	return ok
}
