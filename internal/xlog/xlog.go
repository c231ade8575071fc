// Package xlog provides the package-scoped zerolog logger used across
// pangaea. Every package that needs to warn on recoverable anomalies or
// fail fatally on structural errors obtains its logger via Named.
package xlog

import (
	"io"
	"os"
	"sync/atomic"

	"github.com/rs/zerolog"
)

// level holds the process-wide minimum log level. It defaults to Info
// and is overridden by the CLI's -v/--verbose flag via SetLevel.
var level atomic.Int32

func init() {
	level.Store(int32(zerolog.InfoLevel))
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
}

// SetLevel sets the process-wide minimum severity. Called once from
// cmd/pangaea's root command before any subcommand runs; it also applies
// to loggers obtained from Named earlier, such as package-level ones.
func SetLevel(l zerolog.Level) {
	level.Store(int32(l))
	zerolog.SetGlobalLevel(l)
}

// SetVerbose maps a verbosity count (number of -v flags) to a zerolog
// level: 0 → Info, 1 → Debug, 2+ → Trace.
func SetVerbose(count int) {
	switch {
	case count <= 0:
		SetLevel(zerolog.InfoLevel)
	case count == 1:
		SetLevel(zerolog.DebugLevel)
	default:
		SetLevel(zerolog.TraceLevel)
	}
}

// base is the root logger, writing to stderr so stdout stays reserved
// for TSV/HTML output.
var base = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}).With().Timestamp().Logger()

// Named returns a logger scoped to pkg (added as a "pkg" field), honoring
// the process-wide level in force when each message is logged.
func Named(pkg string) zerolog.Logger {
	return base.With().Str("pkg", pkg).Logger()
}

// SetOutput redirects the base logger's writer. Only loggers obtained
// from Named after the call write to w; loggers created earlier keep
// writing to stderr.
func SetOutput(w io.Writer) {
	base = zerolog.New(w).With().Timestamp().Logger()
}
