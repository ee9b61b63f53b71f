package stream

import (
	"github.com/seekstream/meter"
)

var _ meter.WritableStream = (*MeteredWriter)(nil)

// MeteredWriter is the write-side counterpart of Metered. It delegates every
// write to the wrapped stream and records write.bytes and write.operations
// into a shared meter.Context under the same rules: actual transferred bytes
// only, one operation per successful call, errors propagated verbatim.
type MeteredWriter struct {
	dst        meter.WritableStream
	writeBytes meter.Counter
	writeOps   meter.Counter
	closed     bool
}

// NewMeteredWriter decorates dst with write instrumentation reporting into
// mc, resolving both counter handles immediately.
func NewMeteredWriter(dst meter.WritableStream, mc meter.Context) (*MeteredWriter, error) {
	writeBytes, err := mc.Counter(meter.WriteBytes, meter.Bytes)
	if err != nil {
		return nil, err
	}
	writeOps, err := mc.Counter(meter.WriteOperations, meter.Count)
	if err != nil {
		return nil, err
	}
	return &MeteredWriter{
		dst:        dst,
		writeBytes: writeBytes,
		writeOps:   writeOps,
	}, nil
}

// Write writes p to the wrapped stream. Bytes actually accepted by the
// delegate are counted even when the call also returns an error.
func (w *MeteredWriter) Write(p []byte) (int, error) {
	n, err := w.dst.Write(p)
	if n > 0 || err == nil {
		w.writeBytes.Add(int64(n))
		w.writeOps.Inc()
	}
	return n, err
}

// Close releases the wrapped stream exactly once. Subsequent calls are
// no-ops.
func (w *MeteredWriter) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true
	return w.dst.Close()
}
