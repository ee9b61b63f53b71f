package stream_test

import (
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	meter "github.com/seekstream/meter"
	mock_meter "github.com/seekstream/meter/mock"
	"github.com/seekstream/meter/stream"
	"github.com/stretchr/testify/require"
)

func requireWriteCounters(t *testing.T, mc meter.Context, wantBytes, wantOps int64) {
	t.Helper()
	writeBytes, err := mc.Counter(meter.WriteBytes, meter.Bytes)
	require.NoError(t, err)
	writeOps, err := mc.Counter(meter.WriteOperations, meter.Count)
	require.NoError(t, err)
	require.Equal(t, wantBytes, writeBytes.Value())
	require.Equal(t, wantOps, writeOps.Value())
}

func TestMeteredWriterTracking(t *testing.T) {
	gmc := gomock.NewController(t)
	t.Cleanup(gmc.Finish)

	dst := mock_meter.NewMockWritableStream(gmc)
	dst.EXPECT().Write(gomock.Len(10)).Return(10, nil)
	dst.EXPECT().Write(gomock.Len(5)).Return(5, nil)

	mc := meter.NewContext()
	mw, err := stream.NewMeteredWriter(dst, mc)
	require.NoError(t, err)

	n, err := mw.Write(make([]byte, 10))
	require.NoError(t, err)
	require.Equal(t, 10, n)
	n, err = mw.Write(make([]byte, 5))
	require.NoError(t, err)
	require.Equal(t, 5, n)

	requireWriteCounters(t, mc, 15, 2)
}

func TestMeteredWriterShortWriteWithError(t *testing.T) {
	gmc := gomock.NewController(t)
	t.Cleanup(gmc.Finish)

	dstErr := errors.New("stream closed")
	dst := mock_meter.NewMockWritableStream(gmc)
	dst.EXPECT().Write(gomock.Any()).Return(3, dstErr)

	mc := meter.NewContext()
	mw, err := stream.NewMeteredWriter(dst, mc)
	require.NoError(t, err)

	n, err := mw.Write(make([]byte, 10))
	require.Equal(t, 3, n)
	require.Same(t, dstErr, err)
	requireWriteCounters(t, mc, 3, 1)
}

func TestMeteredWriterFailedWriteLeavesCountersUntouched(t *testing.T) {
	gmc := gomock.NewController(t)
	t.Cleanup(gmc.Finish)

	dstErr := errors.New("stream closed")
	dst := mock_meter.NewMockWritableStream(gmc)
	dst.EXPECT().Write(gomock.Any()).Return(0, dstErr)

	mc := meter.NewContext()
	mw, err := stream.NewMeteredWriter(dst, mc)
	require.NoError(t, err)

	_, err = mw.Write(make([]byte, 10))
	require.Same(t, dstErr, err)
	requireWriteCounters(t, mc, 0, 0)
}

func TestMeteredWriterClosesOnce(t *testing.T) {
	gmc := gomock.NewController(t)
	t.Cleanup(gmc.Finish)

	dst := mock_meter.NewMockWritableStream(gmc)
	dst.EXPECT().Close().Return(nil).Times(1)

	mc := meter.NewContext()
	mw, err := stream.NewMeteredWriter(dst, mc)
	require.NoError(t, err)

	require.NoError(t, mw.Close())
	require.NoError(t, mw.Close())
}
