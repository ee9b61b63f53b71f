// Package meter provides metrics-instrumented decorators for seekable byte
// streams. It defines the counter vocabulary shared between stream wrappers
// and metrics consumers, the Context registry that produces counter handles,
// and the capability sets that wrapped streams must satisfy.
package meter

import "io"

//go:generate mockgen -destination mock/interface.go -package mock_meter . SeekableStream,WritableStream,Context,Counter

// Unit is the measurement unit tag attached to a counter at creation time.
type Unit string

const (
	// Bytes indicates a counter that accumulates a number of bytes.
	Bytes Unit = "bytes"

	// Count indicates a counter that accumulates a number of occurrences.
	Count Unit = "count"
)

// Counter names recognized by every Context implementation. The values form
// a fixed vocabulary shared between the producing stream wrappers and the
// consuming metrics export layer; requesting any other name fails with
// ErrUnsupportedCounter.
const (
	// ReadBytes counts bytes actually transferred by read operations.
	ReadBytes = "read.bytes"

	// ReadOperations counts successful read calls.
	ReadOperations = "read.operations"

	// WriteBytes counts bytes actually transferred by write operations.
	WriteBytes = "write.bytes"

	// WriteOperations counts successful write calls.
	WriteOperations = "write.operations"
)

// Counter is a named, monotonically non-decreasing accumulator. Increments
// are infallible and must be safe to invoke concurrently from independent
// goroutines sharing one Context.
type Counter interface {
	// Inc increments the counter by one.
	Inc()

	// Add increments the counter by n. Add panics if n is negative; no
	// decrement is ever exposed.
	Add(n int64)

	// Value returns the current accumulated total.
	Value() int64
}

// Context is a registry producing counter handles by name. It is created
// once per logical session and may be shared across concurrently active
// stream wrappers, all reporting into the same accumulated totals.
type Context interface {
	// Initialize configures the context from the given properties. A no-op
	// implementation is valid, and an empty or nil map must not fail.
	Initialize(properties map[string]string) error

	// Counter returns a handle to the named counter. Repeated calls with the
	// same name return handles over the same accumulated value. A name/unit
	// combination outside the recognized vocabulary fails fast with an error
	// wrapping ErrUnsupportedCounter; no default counter is substituted.
	Counter(name string, unit Unit) (Counter, error)
}

// SeekableStream is the capability set required of a wrapped stream and
// exposed by the decorators in the stream package, making a decorated stream
// substitutable anywhere the raw stream was used. End of stream is signaled
// with io.EOF; all other failures are ordinary errors.
type SeekableStream interface {
	io.Reader
	io.ByteReader
	io.Seeker
	io.Closer

	// Pos returns the current stream position in bytes from the start.
	Pos() int64
}

// WritableStream is the write-side capability set accepted by the metered
// writer decorator.
type WritableStream interface {
	io.Writer
	io.Closer
}
