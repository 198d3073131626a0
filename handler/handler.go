package handler

import "github.com/ulogproject/ulog/core"

// Func is the wire contract for output handlers. The location may be nil
// and the name empty; format and args are the caller's printf input,
// unrendered so that handlers can decide how (and whether) to format.
type Func func(loc *core.Location, severity core.Severity, name, format string, args ...interface{})

// Handler is the interface form of Func.
type Handler interface {
	Handle(loc *core.Location, severity core.Severity, name, format string, args ...interface{})
}

// Adapt returns a Func dispatching to h.
func Adapt(h Handler) Func {
	return h.Handle
}
