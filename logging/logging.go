package logging

import (
	"fmt"
	"os"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"

	"github.com/ulogproject/ulog/alloc"
	"github.com/ulogproject/ulog/core"
	"github.com/ulogproject/ulog/envvar"
	"github.com/ulogproject/ulog/formatter"
	"github.com/ulogproject/ulog/handler"
)

// FormatEnvVar is the environment variable overriding the console output
// format. It is read once, during initialization.
const FormatEnvVar = "RCUTILS_CONSOLE_OUTPUT_FORMAT"

// Severity is re-exported for convenience; see package core.
type Severity = core.Severity

// Severity constants, re-exported for convenience.
const (
	Unset = core.SeverityUnset
	Debug = core.SeverityDebug
	Info  = core.SeverityInfo
	Warn  = core.SeverityWarn
	Error = core.SeverityError
	Fatal = core.SeverityFatal
)

// Process-wide state. Mutated only during initialization, shutdown and the
// configuration operations, which the caller must serialize externally.
var (
	initialized      bool
	defaultThreshold core.Severity
	thresholds       *severityMap
	outputHandler    handler.Func
	outputFormat     formatter.Template
	allocator        alloc.Allocator
)

// Initialize sets up the process-wide logging state with the default
// allocator. It is a no-op when already initialized.
func Initialize() error {
	return InitializeWithAllocator(alloc.Default())
}

// InitializeWithAllocator sets up the process-wide logging state: it stores
// the allocator, installs the console sink, sets the default threshold to
// INFO, creates the severity map, and reads FormatEnvVar for the output
// format (falling back to formatter.DefaultFormat).
//
// The system is marked initialized even when a step fails, so that a
// failing auto-initialization is not retried on every Log call; Shutdown
// resets the flag. Failures are accumulated and all returned.
func InitializeWithAllocator(a alloc.Allocator) error {
	if initialized {
		return nil
	}
	initialized = true
	if !a.Valid() {
		return errors.Wrap(ErrInvalidArgument, "initializing logging: invalid allocator")
	}

	var result *multierror.Error
	allocator = a
	defaultThreshold = core.SeverityInfo
	thresholds = newSeverityMap()

	format := formatter.DefaultFormat
	value, err := envvar.Get(FormatEnvVar)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to read %s, using the default output format: %v\n",
			FormatEnvVar, err)
		result = multierror.Append(result, err)
	} else if value != "" {
		format = value
	}
	outputFormat = formatter.New(format)
	outputHandler = handler.NewConsole(handler.ConsoleConfig{
		Template:  outputFormat,
		Allocator: a,
	})
	return result.ErrorOrNil()
}

// Shutdown releases the severity map and resets all process-wide state,
// returning the system to uninitialized.
func Shutdown() error {
	if !initialized {
		return nil
	}
	var err error
	if thresholds == nil {
		err = ErrSeverityMapInvalid
	} else {
		thresholds.clear()
	}
	thresholds = nil
	defaultThreshold = core.SeverityUnset
	outputHandler = nil
	outputFormat = formatter.Template{}
	allocator = alloc.Zero()
	initialized = false
	return err
}

// Initialized reports whether the process-wide state is set up.
func Initialized() bool {
	return initialized
}

// OutputHandler returns the active output handler.
func OutputHandler() handler.Func {
	return outputHandler
}

// SetOutputHandler installs h as the active output handler. A nil handler
// silences all output.
func SetOutputHandler(h handler.Func) {
	outputHandler = h
}

// OutputFormat returns the active console output format string.
func OutputFormat() string {
	return outputFormat.String()
}

// DefaultSeverityThreshold returns the process default threshold.
func DefaultSeverityThreshold() core.Severity {
	return defaultThreshold
}

// SetDefaultSeverityThreshold sets the process default threshold, the
// value inherited by loggers with no configured ancestor.
func SetDefaultSeverityThreshold(severity core.Severity) error {
	if !severity.Valid() {
		return errors.Wrapf(ErrInvalidArgument, "severity %d", int(severity))
	}
	defaultThreshold = severity
	return nil
}

// LoggerSeverityThreshold returns the threshold configured for name:
// SeverityUnset when none is, and the default threshold for the empty name.
func LoggerSeverityThreshold(name string) (core.Severity, error) {
	if name == "" {
		return defaultThreshold, nil
	}
	return thresholds.get(name)
}

// LoggerSeverityThresholdBytes is LoggerSeverityThreshold for a name held
// in a byte slice.
func LoggerSeverityThresholdBytes(name []byte) (core.Severity, error) {
	return LoggerSeverityThreshold(string(name))
}

// SetLoggerSeverityThreshold configures the threshold for name. The empty
// name updates the default threshold; SeverityUnset removes the logger's
// own value so it inherits again.
func SetLoggerSeverityThreshold(name string, severity core.Severity) error {
	if !severity.Valid() {
		return errors.Wrapf(ErrInvalidArgument, "severity %d", int(severity))
	}
	if name == "" {
		defaultThreshold = severity
		return nil
	}
	return thresholds.set(name, severity)
}

// EffectiveSeverityThreshold resolves the threshold that gates name: its
// own if configured, else the nearest configured ancestor at a '.'
// boundary, else the default threshold.
func EffectiveSeverityThreshold(name string) core.Severity {
	return thresholds.effective(name, defaultThreshold)
}

// IsEnabledFor reports whether a log call with the given severity and
// logger name would be emitted.
func IsEnabledFor(name string, severity core.Severity) bool {
	return severity >= EffectiveSeverityThreshold(name)
}

// Log is the log entry point. It auto-initializes on first use, gates the
// call against the logger's effective threshold, and dispatches to the
// active output handler. It never fails: internal errors either drop the
// line or leave a diagnostic on standard error.
func Log(loc *core.Location, severity core.Severity, name, format string, args ...interface{}) {
	if !initialized {
		// Gating falls back to defaults when auto-initialization fails.
		_ = Initialize()
	}
	if severity < EffectiveSeverityThreshold(name) {
		return
	}
	h := outputHandler
	if h == nil {
		return
	}
	h(loc, severity, name, format, args...)
}
