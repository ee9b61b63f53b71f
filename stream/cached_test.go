package stream_test

import (
	"io"
	"testing"

	"github.com/seekstream/meter/stream"
	"github.com/seekstream/meter/testutil"
	"github.com/stretchr/testify/require"
)

func TestBlockCachedReadsMatchSource(t *testing.T) {
	data := testutil.RandomBytes(t, 1000)
	bc, err := stream.NewBlockCached(newFakeStream(data),
		stream.WithBlockSize(64),
		stream.WithMaxBlocks(4),
	)
	require.NoError(t, err)
	defer bc.Close()

	got, err := io.ReadAll(bc)
	require.NoError(t, err)
	require.Equal(t, data, got)
	require.EqualValues(t, len(data), bc.Pos())
}

func TestBlockCachedServesRepeatsFromCache(t *testing.T) {
	data := testutil.RandomBytes(t, 256)
	src := &countingStream{SeekableStream: newFakeStream(data)}
	bc, err := stream.NewBlockCached(src,
		stream.WithBlockSize(64),
		stream.WithMaxBlocks(8),
	)
	require.NoError(t, err)
	defer bc.Close()

	first, err := io.ReadAll(bc)
	require.NoError(t, err)
	require.Equal(t, data, first)
	fetches := src.reads
	require.NotZero(t, fetches)

	// Rewind and re-read: every block is resident, so the underlying stream
	// sees no further reads.
	_, err = bc.Seek(0, io.SeekStart)
	require.NoError(t, err)
	second, err := io.ReadAll(bc)
	require.NoError(t, err)
	require.Equal(t, data, second)
	require.Equal(t, fetches, src.reads)
}

func TestBlockCachedEvictsLeastRecentlyUsed(t *testing.T) {
	data := testutil.RandomBytes(t, 256)
	src := &countingStream{SeekableStream: newFakeStream(data)}
	bc, err := stream.NewBlockCached(src,
		stream.WithBlockSize(64),
		stream.WithMaxBlocks(1),
	)
	require.NoError(t, err)
	defer bc.Close()

	buf := make([]byte, 64)
	_, err = io.ReadFull(bc, buf)
	require.NoError(t, err)
	fetches := src.reads

	// Jump to the second block and back: with a single-block capacity the
	// first block has been evicted and must be fetched again.
	_, err = bc.Seek(64, io.SeekStart)
	require.NoError(t, err)
	_, err = io.ReadFull(bc, buf)
	require.NoError(t, err)
	_, err = bc.Seek(0, io.SeekStart)
	require.NoError(t, err)
	_, err = io.ReadFull(bc, buf)
	require.NoError(t, err)
	require.Equal(t, data[:64], buf)
	require.Greater(t, src.reads, fetches+1)
}

func TestBlockCachedSeekWhence(t *testing.T) {
	data := []byte("0123456789")
	bc, err := stream.NewBlockCached(newFakeStream(data), stream.WithBlockSize(4))
	require.NoError(t, err)
	defer bc.Close()

	pos, err := bc.Seek(4, io.SeekStart)
	require.NoError(t, err)
	require.EqualValues(t, 4, pos)

	b, err := bc.ReadByte()
	require.NoError(t, err)
	require.Equal(t, byte('4'), b)

	pos, err = bc.Seek(2, io.SeekCurrent)
	require.NoError(t, err)
	require.EqualValues(t, 7, pos)

	pos, err = bc.Seek(-1, io.SeekEnd)
	require.NoError(t, err)
	require.EqualValues(t, 9, pos)
	b, err = bc.ReadByte()
	require.NoError(t, err)
	require.Equal(t, byte('9'), b)

	_, err = bc.ReadByte()
	require.ErrorIs(t, err, io.EOF)

	_, err = bc.Seek(-1, io.SeekStart)
	require.Error(t, err)
}

func TestBlockCachedRejectsBadOptions(t *testing.T) {
	_, err := stream.NewBlockCached(newFakeStream(nil), stream.WithBlockSize(0))
	require.Error(t, err)
	_, err = stream.NewBlockCached(newFakeStream(nil), stream.WithMaxBlocks(-1))
	require.Error(t, err)
}
