// Package stream provides decorators over the meter.SeekableStream and
// meter.WritableStream capability sets: metered wrappers that record byte and
// operation counters into a shared meter.Context, a block-caching reader, a
// rate-limited reader, and an os.File adapter. Every decorator exposes the
// same capability set as the stream it wraps, so a decorated stream is
// substitutable anywhere the raw stream was used.
package stream
