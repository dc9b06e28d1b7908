// Package logger provides the process-wide zerolog logger.
//
// Call Init once from main; packages receive a zerolog.Logger through their
// constructors and only main calls Get.
package logger

import (
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Options controls logger behaviour at initialisation time.
type Options struct {
	// Level is the minimum log level: trace, debug, info, warn, error.
	// Defaults to "info" when empty or unrecognised.
	Level string
	// Pretty switches to the coloured console writer (development only).
	Pretty bool
	// Service is attached to every entry as the "service" field when set.
	Service string
	// Output defaults to os.Stdout.
	Output io.Writer
}

var (
	mu          sync.Mutex
	instance    zerolog.Logger
	initialized bool
)

// Init builds the process logger. Only the first call has any effect until Reset.
func Init(opts Options) zerolog.Logger {
	mu.Lock()
	defer mu.Unlock()
	if initialized {
		return instance
	}

	lvl := ParseLevel(opts.Level)
	zerolog.TimeFieldFormat = time.RFC3339Nano
	zerolog.SetGlobalLevel(lvl)

	instance = New(opts)
	initialized = true
	return instance
}

// New builds a logger from opts without touching the process logger.
func New(opts Options) zerolog.Logger {
	out := opts.Output
	if out == nil {
		out = os.Stdout
	}
	if opts.Pretty {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}

	ctx := zerolog.New(out).Level(ParseLevel(opts.Level)).With().Timestamp()
	if opts.Service != "" {
		ctx = ctx.Str("service", opts.Service)
	}
	return ctx.Logger()
}

// Get returns the process logger. Panics if Init has not been called yet.
func Get() zerolog.Logger {
	mu.Lock()
	defer mu.Unlock()
	if !initialized {
		panic("logger: Get() called before Init()")
	}
	return instance
}

// Reset forgets the process logger so the next Init rebuilds it. Tests only.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	instance = zerolog.Logger{}
	initialized = false
}

// ParseLevel maps a level name to zerolog, defaulting to info.
func ParseLevel(s string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
