package meter

import (
	"fmt"
	"sync/atomic"
)

// MemoryContext is the default in-process Context implementation. The four
// recognized counters are a closed set created with the context, each backed
// by an atomic accumulator, so handles may be incremented concurrently by
// independent stream wrappers sharing one context.
//
// The zero value is not usable; create instances with NewContext.
type MemoryContext struct {
	readBytes  counter
	readOps    counter
	writeBytes counter
	writeOps   counter

	properties map[string]string
}

var _ Context = (*MemoryContext)(nil)

// NewContext instantiates a MemoryContext with all counters at zero.
func NewContext() *MemoryContext {
	return &MemoryContext{}
}

// Initialize stores the given properties. It never fails; properties are
// retained only for inspection by the surrounding IO layer.
func (c *MemoryContext) Initialize(properties map[string]string) error {
	c.properties = properties
	return nil
}

// Counter returns the handle for the given name. Handles are views over
// shared backing state: repeated calls with the same name accumulate into
// the same value.
func (c *MemoryContext) Counter(name string, unit Unit) (Counter, error) {
	switch {
	case name == ReadBytes && unit == Bytes:
		return &c.readBytes, nil
	case name == ReadOperations && unit == Count:
		return &c.readOps, nil
	case name == WriteBytes && unit == Bytes:
		return &c.writeBytes, nil
	case name == WriteOperations && unit == Count:
		return &c.writeOps, nil
	}
	return nil, fmt.Errorf("%w: %s (%s)", ErrUnsupportedCounter, name, unit)
}

// counter is a monotonic atomic accumulator.
type counter struct {
	val atomic.Int64
}

func (c *counter) Inc() {
	c.val.Add(1)
}

func (c *counter) Add(n int64) {
	if n < 0 {
		panic("meter: counter cannot decrease in value")
	}
	c.val.Add(n)
}

func (c *counter) Value() int64 {
	return c.val.Load()
}
