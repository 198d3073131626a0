package logging

import (
	"github.com/pkg/errors"

	"github.com/ulogproject/ulog/alloc"
)

var (
	// ErrInvalidArgument reports an invalid allocator, severity or name.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrSeverityMapInvalid reports that the severity map is unusable;
	// it persists until the system is re-initialized.
	ErrSeverityMapInvalid = errors.New("severity map invalid")

	// ErrBadAlloc reports a failed required allocation.
	ErrBadAlloc = alloc.ErrBadAlloc
)
