package handler

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/ulogproject/ulog/alloc"
	"github.com/ulogproject/ulog/buffmt"
	"github.com/ulogproject/ulog/core"
	"github.com/ulogproject/ulog/formatter"
)

// messageBufferSize is the size of the fixed buffer the user message is
// rendered into before falling back to an allocation.
const messageBufferSize = 1024

// ConsoleConfig holds configuration for the console sink.
type ConsoleConfig struct {
	// Stdout receives DEBUG and INFO lines (default: os.Stdout).
	Stdout io.Writer
	// Stderr receives WARN, ERROR and FATAL lines and diagnostics
	// (default: os.Stderr).
	Stderr io.Writer
	// Template renders the final line (default: formatter.Default()).
	Template formatter.Template
	// Allocator serves message and line buffers (default: alloc.Default()).
	Allocator alloc.Allocator
}

// applyConsoleDefaults fills in zero-value fields with defaults.
func applyConsoleDefaults(cfg *ConsoleConfig) {
	if cfg.Stdout == nil {
		cfg.Stdout = os.Stdout
	}
	if cfg.Stderr == nil {
		cfg.Stderr = os.Stderr
	}
	if cfg.Template == (formatter.Template{}) {
		cfg.Template = formatter.Default()
	}
	if !cfg.Allocator.Valid() {
		cfg.Allocator = alloc.Default()
	}
}

// NewConsole returns the console sink for the given configuration.
func NewConsole(cfg ConsoleConfig) Func {
	applyConsoleDefaults(&cfg)
	return func(loc *core.Location, severity core.Severity, name, format string, args ...interface{}) {
		var stream io.Writer
		switch severity {
		case core.SeverityDebug, core.SeverityInfo:
			stream = cfg.Stdout
		case core.SeverityWarn, core.SeverityError, core.SeverityFatal:
			stream = cfg.Stderr
		default:
			fmt.Fprintf(cfg.Stderr, "unknown severity level: %d\n", int(severity))
			return
		}

		a := cfg.Allocator
		var fixed [messageBufferSize]byte
		message := fixed[:]
		written := buffmt.Format(message, format, args...)
		var dynamic []byte
		if written > len(fixed) {
			// The rendering was truncated; redo it into a buffer of
			// exactly the needed size.
			dynamic = a.Allocate(written, a.State)
			if dynamic == nil || len(dynamic) < written {
				fmt.Fprintf(cfg.Stderr,
					"failed to allocate memory for log message: '%s'\n", format)
				return
			}
			buffmt.Format(dynamic, format, args...)
			message = dynamic
		} else {
			message = fixed[:written]
		}

		rec := core.Record{
			Location: loc,
			Severity: severity,
			Name:     name,
			Message:  string(message),
			Time:     time.Now(),
		}
		if dynamic != nil {
			a.Deallocate(dynamic, a.State)
		}

		line, err := cfg.Template.Expand(&rec, a)
		if err != nil {
			fmt.Fprintf(cfg.Stderr, "failed to format log line: %v\n", err)
			return
		}
		if err := line.WriteByte('\n'); err != nil {
			fmt.Fprintf(cfg.Stderr, "failed to format log line: %v\n", err)
			line.Release()
			return
		}
		stream.Write(line.Bytes())
		line.Release()
	}
}
