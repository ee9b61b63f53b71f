package stream

import (
	"fmt"
	"io"

	"github.com/golang/groupcache/lru"
	"github.com/seekstream/meter"
)

var _ meter.SeekableStream = (*BlockCached)(nil)

// BlockCached decorates a seekable stream with an LRU cache of fixed-size
// blocks. Reads are served from cached blocks; on a miss the whole
// containing block is fetched from the underlying stream with a seek and
// sequential reads, then retained until evicted. Repeated and backward reads
// over recently visited regions never touch the underlying stream again.
//
// BlockCached owns the position of the underlying stream; callers must not
// interleave direct access to the wrapped stream with access through the
// cache.
type BlockCached struct {
	src       meter.SeekableStream
	cache     *lru.Cache
	blockSize int64
	pos       int64
}

// NewBlockCached decorates src with a block cache. Block size and capacity
// are controlled with WithBlockSize and WithMaxBlocks.
func NewBlockCached(src meter.SeekableStream, o ...Option) (*BlockCached, error) {
	opts, err := newOptions(o...)
	if err != nil {
		return nil, err
	}
	return &BlockCached{
		src:       src,
		cache:     lru.New(opts.maxBlocks),
		blockSize: opts.blockSize,
	}, nil
}

func (b *BlockCached) Read(p []byte) (int, error) {
	idx := b.pos / b.blockSize
	data, err := b.block(idx)
	if err != nil {
		return 0, err
	}
	off := b.pos - idx*b.blockSize
	if off >= int64(len(data)) {
		// The block is shorter than blockSize only at end of stream.
		return 0, io.EOF
	}
	n := copy(p, data[off:])
	b.pos += int64(n)
	return n, nil
}

func (b *BlockCached) ReadByte() (byte, error) {
	p := []byte{0}
	if _, err := b.Read(p); err != nil {
		return 0, err
	}
	return p[0], nil
}

// block returns the content of the idx-th block, fetching and caching it if
// it is not resident. A block shorter than blockSize marks end of stream.
func (b *BlockCached) block(idx int64) ([]byte, error) {
	if v, ok := b.cache.Get(idx); ok {
		return v.([]byte), nil
	}
	if _, err := b.src.Seek(idx*b.blockSize, io.SeekStart); err != nil {
		return nil, err
	}
	buf := make([]byte, b.blockSize)
	var total int
	for total < len(buf) {
		n, err := b.src.Read(buf[total:])
		total += n
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
	}
	data := buf[:total]
	b.cache.Add(idx, data)
	return data, nil
}

func (b *BlockCached) Seek(offset int64, whence int) (int64, error) {
	var pos int64
	switch whence {
	case io.SeekStart:
		pos = offset
	case io.SeekCurrent:
		pos = b.pos + offset
	case io.SeekEnd:
		end, err := b.src.Seek(offset, io.SeekEnd)
		if err != nil {
			return 0, err
		}
		pos = end
	default:
		return 0, fmt.Errorf("invalid seek whence: %d", whence)
	}
	if pos < 0 {
		return 0, fmt.Errorf("negative seek position: %d", pos)
	}
	b.pos = pos
	return pos, nil
}

func (b *BlockCached) Pos() int64 {
	return b.pos
}

func (b *BlockCached) Close() error {
	return b.src.Close()
}
