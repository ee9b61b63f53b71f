package meter_test

import (
	"context"
	"io"
	"sync"
	"testing"

	meter "github.com/seekstream/meter"
	"github.com/seekstream/meter/stream"
	"github.com/seekstream/meter/testutil"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

// Reads two files through the full decorator chain concurrently, all
// reporting into one shared context.
func TestEndToEndSharedContextAcrossDecoratedStreams(t *testing.T) {
	mc := meter.NewContext()

	const fileSize = 10 << 10
	paths := []string{
		testutil.TempFileWith(t, testutil.RandomBytes(t, fileSize)),
		testutil.TempFileWith(t, testutil.RandomBytes(t, fileSize)),
	}

	var wg sync.WaitGroup
	for _, path := range paths {
		path := path
		wg.Add(1)
		go func() {
			defer wg.Done()

			f, err := stream.OpenFile(path)
			require.NoError(t, err)
			cached, err := stream.NewBlockCached(f, stream.WithBlockSize(1<<10), stream.WithMaxBlocks(4))
			require.NoError(t, err)
			throttled := stream.NewThrottled(context.Background(), cached,
				rate.NewLimiter(rate.Inf, 1<<10))
			ms, err := stream.NewMetered(throttled, mc)
			require.NoError(t, err)

			buf := make([]byte, 512)
			for {
				_, err := ms.Read(buf)
				if err == io.EOF {
					break
				}
				require.NoError(t, err)
			}
			require.NoError(t, ms.Close())
		}()
	}
	wg.Wait()

	readBytes, err := mc.Counter(meter.ReadBytes, meter.Bytes)
	require.NoError(t, err)
	readOps, err := mc.Counter(meter.ReadOperations, meter.Count)
	require.NoError(t, err)
	require.EqualValues(t, 2*fileSize, readBytes.Value())
	// 512-byte reads over two 10 KiB files; every read is full-size because
	// block and burst sizes are multiples of the buffer size.
	require.EqualValues(t, 2*fileSize/512, readOps.Value())
}

func TestEndToEndWriteCountersWithMemoryContext(t *testing.T) {
	mc := meter.NewContext()
	data := testutil.RandomBytes(t, 2048)

	src, err := stream.NewMetered(
		mustOpen(t, testutil.TempFileWith(t, data)), mc)
	require.NoError(t, err)
	dstPath := testutil.TempFileWith(t, nil)
	dst, err := stream.CreateFile(dstPath)
	require.NoError(t, err)
	mw, err := stream.NewMeteredWriter(dst, mc)
	require.NoError(t, err)

	n, err := io.Copy(mw, src)
	require.NoError(t, err)
	require.EqualValues(t, len(data), n)
	require.NoError(t, src.Close())
	require.NoError(t, mw.Close())

	writeBytes, err := mc.Counter(meter.WriteBytes, meter.Bytes)
	require.NoError(t, err)
	require.EqualValues(t, len(data), writeBytes.Value())

	round, err := stream.OpenFile(dstPath)
	require.NoError(t, err)
	defer round.Close()
	got, err := io.ReadAll(round)
	require.NoError(t, err)
	require.Equal(t, data, got)
}

func mustOpen(t *testing.T, path string) *stream.File {
	t.Helper()
	f, err := stream.OpenFile(path)
	require.NoError(t, err)
	return f
}
