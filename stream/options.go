package stream

import "fmt"

const (
	defaultBlockSize = 64 << 10
	defaultMaxBlocks = 16
)

type (
	// Option sets a configuration parameter for a stream decorator.
	Option func(*options) error

	options struct {
		sizes     *SizeRecorder
		blockSize int64
		maxBlocks int
	}
)

func newOptions(o ...Option) (*options, error) {
	opts := options{
		blockSize: defaultBlockSize,
		maxBlocks: defaultMaxBlocks,
	}
	for _, apply := range o {
		if err := apply(&opts); err != nil {
			return nil, err
		}
	}
	return &opts, nil
}

// WithSizeRecorder attaches a recorder that samples the size of every
// successful read passing through a metered stream.
//
// See: NewMetered, SizeRecorder.
func WithSizeRecorder(r *SizeRecorder) Option {
	return func(o *options) error {
		o.sizes = r
		return nil
	}
}

// WithBlockSize sets the size in bytes of the blocks fetched and cached by a
// block-caching stream. Defaults to 64 KiB.
//
// See: NewBlockCached.
func WithBlockSize(size int64) Option {
	return func(o *options) error {
		if size <= 0 {
			return fmt.Errorf("block size must be larger than zero; got %d", size)
		}
		o.blockSize = size
		return nil
	}
}

// WithMaxBlocks sets the maximum number of blocks retained by a
// block-caching stream before the least recently used block is evicted.
// Defaults to 16.
//
// See: NewBlockCached.
func WithMaxBlocks(count int) Option {
	return func(o *options) error {
		if count <= 0 {
			return fmt.Errorf("max blocks must be larger than zero; got %d", count)
		}
		o.maxBlocks = count
		return nil
	}
}
