package core

import (
	"path/filepath"
	"runtime"
	"time"
)

// Location describes the source site of a log call. All fields are
// informational; string fields are borrowed from the caller and must not be
// retained past the call.
type Location struct {
	FunctionName string
	FileName     string
	LineNumber   uint64
}

// Caller returns the Location of a stack frame, with skip counted as in
// runtime.Caller. It returns nil when the frame cannot be resolved.
func Caller(skip int) *Location {
	pc, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return nil
	}
	loc := &Location{
		FileName:   filepath.Base(file),
		LineNumber: uint64(line),
	}
	if fn := runtime.FuncForPC(pc); fn != nil {
		loc.FunctionName = fn.Name()
	}
	return loc
}

// Record is the ephemeral tuple handed to the output pipeline for a single
// log call, after the user message has been rendered.
type Record struct {
	Location *Location
	Severity Severity
	Name     string
	Message  string
	Time     time.Time
}
