package stream_test

import (
	"testing"

	meter "github.com/seekstream/meter"
	"github.com/seekstream/meter/stream"
	"github.com/stretchr/testify/require"
)

func TestSizeRecorderSummary(t *testing.T) {
	rec := stream.NewSizeRecorder(16)
	for _, n := range []int{2, 4, 6, 8} {
		rec.Record(n)
	}

	summary, err := rec.Summary()
	require.NoError(t, err)
	require.EqualValues(t, 4, summary.Count)
	require.Equal(t, 5.0, summary.Mean)
	require.Equal(t, 5.0, summary.Median)
	require.Equal(t, 2.0, summary.Min)
	require.Equal(t, 8.0, summary.Max)
}

func TestSizeRecorderEmpty(t *testing.T) {
	rec := stream.NewSizeRecorder(0)
	summary, err := rec.Summary()
	require.NoError(t, err)
	require.Zero(t, summary.Count)
	require.Zero(t, summary.Mean)
}

func TestSizeRecorderWindowRotates(t *testing.T) {
	rec := stream.NewSizeRecorder(2)
	rec.Record(100)
	rec.Record(1)
	rec.Record(1)

	summary, err := rec.Summary()
	require.NoError(t, err)
	// The oldest observation rotated out of the sample window, but the
	// total count keeps growing.
	require.EqualValues(t, 3, summary.Count)
	require.Equal(t, 1.0, summary.Max)
}

func TestSizeRecorderAttachesToMeteredStream(t *testing.T) {
	rec := stream.NewSizeRecorder(8)
	mc := meter.NewContext()
	ms, err := stream.NewMetered(newFakeStream([]byte("0123456789")), mc, stream.WithSizeRecorder(rec))
	require.NoError(t, err)
	defer ms.Close()

	_, err = ms.ReadByte()
	require.NoError(t, err)
	n, err := ms.Read(make([]byte, 4))
	require.NoError(t, err)
	require.Equal(t, 4, n)

	summary, err := rec.Summary()
	require.NoError(t, err)
	require.EqualValues(t, 2, summary.Count)
	require.Equal(t, 2.5, summary.Mean)
	require.Equal(t, 1.0, summary.Min)
	require.Equal(t, 4.0, summary.Max)
}
