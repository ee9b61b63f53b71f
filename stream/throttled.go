package stream

import (
	"context"

	"github.com/seekstream/meter"
	"golang.org/x/time/rate"
)

var _ meter.SeekableStream = (*Throttled)(nil)

// Throttled decorates a seekable stream with a token-bucket rate limit on
// read throughput. Tokens are charged for bytes actually transferred, after
// the delegated read returns, so a short read is never over-charged. All
// other operations are pure delegation.
type Throttled struct {
	src     meter.SeekableStream
	limiter *rate.Limiter
	ctx     context.Context
}

// NewThrottled decorates src with the given limiter. The context bounds the
// waits introduced by the limiter; when it is canceled, in-flight and
// subsequent reads fail with the context's error.
func NewThrottled(ctx context.Context, src meter.SeekableStream, limiter *rate.Limiter) *Throttled {
	return &Throttled{
		src:     src,
		limiter: limiter,
		ctx:     ctx,
	}
}

func (t *Throttled) Read(p []byte) (int, error) {
	// A request larger than the burst can never acquire enough tokens in a
	// single wait, so cap it.
	if burst := t.limiter.Burst(); len(p) > burst {
		p = p[:burst]
	}
	n, err := t.src.Read(p)
	if n > 0 {
		if werr := t.limiter.WaitN(t.ctx, n); err == nil {
			err = werr
		}
	}
	return n, err
}

func (t *Throttled) ReadByte() (byte, error) {
	b, err := t.src.ReadByte()
	if err != nil {
		return 0, err
	}
	if werr := t.limiter.Wait(t.ctx); werr != nil {
		return 0, werr
	}
	return b, nil
}

func (t *Throttled) Seek(offset int64, whence int) (int64, error) {
	return t.src.Seek(offset, whence)
}

func (t *Throttled) Pos() int64 {
	return t.src.Pos()
}

func (t *Throttled) Close() error {
	return t.src.Close()
}
