package core

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Severity represents the severity level of a log call.
type Severity int

const (
	// SeverityUnset means no configured value; defer to ancestor or default.
	SeverityUnset Severity = 0
	// SeverityDebug for detailed debugging information.
	SeverityDebug Severity = 10
	// SeverityInfo for general informational messages (default threshold).
	SeverityInfo Severity = 20
	// SeverityWarn for warning messages.
	SeverityWarn Severity = 30
	// SeverityError for error messages.
	SeverityError Severity = 40
	// SeverityFatal for fatal messages.
	SeverityFatal Severity = 50
)

// String returns the upper-case name of the severity, or its decimal value
// for severities outside the ladder.
func (s Severity) String() string {
	switch s {
	case SeverityUnset:
		return "UNSET"
	case SeverityDebug:
		return "DEBUG"
	case SeverityInfo:
		return "INFO"
	case SeverityWarn:
		return "WARN"
	case SeverityError:
		return "ERROR"
	case SeverityFatal:
		return "FATAL"
	}
	return strconv.Itoa(int(s))
}

// Valid reports whether s is one of the ladder values, including
// SeverityUnset.
func (s Severity) Valid() bool {
	switch s {
	case SeverityUnset, SeverityDebug, SeverityInfo, SeverityWarn,
		SeverityError, SeverityFatal:
		return true
	}
	return false
}

// ParseSeverity converts a severity name or decimal value to a Severity.
// Names are matched case-insensitively.
func ParseSeverity(s string) (Severity, error) {
	switch strings.ToUpper(s) {
	case "UNSET":
		return SeverityUnset, nil
	case "DEBUG":
		return SeverityDebug, nil
	case "INFO":
		return SeverityInfo, nil
	case "WARN", "WARNING":
		return SeverityWarn, nil
	case "ERROR":
		return SeverityError, nil
	case "FATAL":
		return SeverityFatal, nil
	}
	i, err := strconv.Atoi(s)
	if err != nil || !Severity(i).Valid() {
		return SeverityUnset, errors.Errorf("unknown severity level: %q", s)
	}
	return Severity(i), nil
}
