package stream_test

import (
	"bytes"

	meter "github.com/seekstream/meter"
)

var _ meter.SeekableStream = (*fakeStream)(nil)

// fakeStream is an in-memory SeekableStream used where a mock would be
// heavier than the test needs.
type fakeStream struct {
	r      *bytes.Reader
	closed int
}

func newFakeStream(data []byte) *fakeStream {
	return &fakeStream{r: bytes.NewReader(data)}
}

func (f *fakeStream) Read(p []byte) (int, error) {
	return f.r.Read(p)
}

func (f *fakeStream) ReadByte() (byte, error) {
	return f.r.ReadByte()
}

func (f *fakeStream) Seek(offset int64, whence int) (int64, error) {
	return f.r.Seek(offset, whence)
}

func (f *fakeStream) Pos() int64 {
	return f.r.Size() - int64(f.r.Len())
}

func (f *fakeStream) Close() error {
	f.closed++
	return nil
}

// countingStream counts delegated read calls to observe cache behavior.
type countingStream struct {
	meter.SeekableStream
	reads int
}

func (c *countingStream) Read(p []byte) (int, error) {
	c.reads++
	return c.SeekableStream.Read(p)
}
