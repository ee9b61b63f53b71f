package meter

import "errors"

var (
	// ErrUnsupportedCounter is returned when a counter name or unit outside
	// the recognized vocabulary is requested from a Context.
	ErrUnsupportedCounter = errors.New("unsupported counter")
)
