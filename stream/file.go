package stream

import (
	"os"

	"github.com/seekstream/meter"
)

var (
	_ meter.SeekableStream = (*File)(nil)
	_ meter.WritableStream = (*FileWriter)(nil)
)

// File adapts an os.File to the meter.SeekableStream capability set, giving
// callers a conforming local stream to decorate.
type File struct {
	f   *os.File
	pos int64
}

// OpenFile opens the named file for reading as a seekable stream.
func OpenFile(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	return &File{f: f}, nil
}

func (s *File) Read(p []byte) (int, error) {
	n, err := s.f.Read(p)
	s.pos += int64(n)
	return n, err
}

func (s *File) ReadByte() (byte, error) {
	b := []byte{0}
	_, err := s.Read(b)
	return b[0], err
}

func (s *File) Seek(offset int64, whence int) (int64, error) {
	pos, err := s.f.Seek(offset, whence)
	if err != nil {
		return 0, err
	}
	s.pos = pos
	return pos, nil
}

func (s *File) Pos() int64 {
	return s.pos
}

func (s *File) Close() error {
	return s.f.Close()
}

// FileWriter adapts an os.File to the meter.WritableStream capability set.
type FileWriter struct {
	f *os.File
}

// CreateFile creates or truncates the named file for writing.
func CreateFile(path string) (*FileWriter, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	return &FileWriter{f: f}, nil
}

func (w *FileWriter) Write(p []byte) (int, error) {
	return w.f.Write(p)
}

func (w *FileWriter) Close() error {
	return w.f.Close()
}
