package config

const (
	defaultBlockSize      = 64 << 10
	defaultCacheBlocks    = 16
	defaultReadBufferSize = 32 << 10
	defaultRateBurst      = 64 << 10
)

// Stream tracks the configuration of the stream decorator chain built by the
// CLI commands.
type Stream struct {
	// BlockSize is the size in bytes of the blocks fetched and cached by the
	// block cache.
	BlockSize int64
	// CacheBlocks is the number of blocks retained by the block cache. Zero
	// or negative disables block caching.
	CacheBlocks int
	// RateLimit is the sustained read throughput ceiling in bytes per
	// second. Zero means unlimited.
	RateLimit float64
	// RateBurst is the burst size in bytes allowed by the rate limiter.
	RateBurst int
	// ReadBufferSize is the buffer size in bytes used by commands when
	// draining a stream.
	ReadBufferSize int
}

// NewStream instantiates a new Stream config with default values.
func NewStream() Stream {
	return Stream{
		BlockSize:      defaultBlockSize,
		CacheBlocks:    defaultCacheBlocks,
		RateBurst:      defaultRateBurst,
		ReadBufferSize: defaultReadBufferSize,
	}
}

// populateUnset replaces zero-values in the config with default values.
func (c *Stream) populateUnset() {
	if c.BlockSize == 0 {
		c.BlockSize = defaultBlockSize
	}
	if c.RateBurst == 0 {
		c.RateBurst = defaultRateBurst
	}
	if c.ReadBufferSize == 0 {
		c.ReadBufferSize = defaultReadBufferSize
	}
}
