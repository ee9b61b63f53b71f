package stream

import (
	"github.com/seekstream/meter"
)

var _ meter.SeekableStream = (*Metered)(nil)

// Metered decorates a seekable stream, delegating every call to the wrapped
// stream and recording byte- and operation-level counters into a shared
// meter.Context. The wrapper owns the wrapped stream for its lifetime and
// releases it on Close; it never owns the context, which may outlive it or
// be shared across wrappers.
//
// Counters reflect bytes actually transferred, taken from the return value
// of the delegated call, never from the requested length. A call that fails
// or signals end of stream without transferring bytes leaves the counters
// untouched, and the error is propagated to the caller unmodified: there are
// no retries and no error translation in this layer.
//
// A Metered instance is intended for single-goroutine, sequential use, the
// same as the stream it wraps. The counter handles it holds are safe against
// concurrent increments from other wrappers sharing the same context.
type Metered struct {
	src       meter.SeekableStream
	readBytes meter.Counter
	readOps   meter.Counter
	sizes     *SizeRecorder
	closed    bool
}

// NewMetered decorates src with read instrumentation reporting into mc. The
// read.bytes and read.operations counter handles are resolved once here, so
// an unsupported vocabulary surfaces immediately rather than on first read.
func NewMetered(src meter.SeekableStream, mc meter.Context, o ...Option) (*Metered, error) {
	opts, err := newOptions(o...)
	if err != nil {
		return nil, err
	}
	readBytes, err := mc.Counter(meter.ReadBytes, meter.Bytes)
	if err != nil {
		return nil, err
	}
	readOps, err := mc.Counter(meter.ReadOperations, meter.Count)
	if err != nil {
		return nil, err
	}
	return &Metered{
		src:       src,
		readBytes: readBytes,
		readOps:   readOps,
		sizes:     opts.sizes,
	}, nil
}

// ReadByte reads a single byte from the wrapped stream. On success it adds
// one to read.bytes and one to read.operations; on io.EOF or any other error
// no counter moves and the error propagates verbatim.
func (m *Metered) ReadByte() (byte, error) {
	b, err := m.src.ReadByte()
	if err != nil {
		return 0, err
	}
	m.readBytes.Inc()
	m.readOps.Inc()
	if m.sizes != nil {
		m.sizes.Record(1)
	}
	return b, nil
}

// Read reads up to len(p) bytes from the wrapped stream. If n bytes were
// transferred, read.bytes grows by n and read.operations by one; a short
// read is therefore recorded accurately, and a zero-byte successful read
// still counts as one operation. When a read returns bytes alongside an
// error, the bytes did transfer and are counted before the error propagates.
func (m *Metered) Read(p []byte) (int, error) {
	n, err := m.src.Read(p)
	if n > 0 || err == nil {
		m.readBytes.Add(int64(n))
		m.readOps.Inc()
		if m.sizes != nil {
			m.sizes.Record(n)
		}
	}
	return n, err
}

// Seek delegates to the wrapped stream with no metrics side effects.
func (m *Metered) Seek(offset int64, whence int) (int64, error) {
	return m.src.Seek(offset, whence)
}

// Pos delegates to the wrapped stream with no metrics side effects.
func (m *Metered) Pos() int64 {
	return m.src.Pos()
}

// Close releases the wrapped stream exactly once. Subsequent calls are
// no-ops. The shared context is never closed or reset.
func (m *Metered) Close() error {
	if m.closed {
		return nil
	}
	m.closed = true
	return m.src.Close()
}
