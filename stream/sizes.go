package stream

import (
	"sync"

	"github.com/montanaflynn/stats"
)

const defaultSampleCap = 1024

// SizeRecorder keeps a bounded sample of per-read sizes, retaining the most
// recent observations in a ring. It is safe for concurrent use, so one
// recorder may be shared by several metered streams.
type SizeRecorder struct {
	mu    sync.Mutex
	sizes []float64
	next  int
	full  bool
	count int64
}

// Summary describes the distribution of the sampled read sizes. Count is the
// total number of observations, including ones that have rotated out of the
// sample window.
type Summary struct {
	Count  int64
	Mean   float64
	Median float64
	P95    float64
	Min    float64
	Max    float64
}

// NewSizeRecorder creates a recorder retaining up to sampleCap observations.
// A sampleCap of zero or less selects the default of 1024.
func NewSizeRecorder(sampleCap int) *SizeRecorder {
	if sampleCap <= 0 {
		sampleCap = defaultSampleCap
	}
	return &SizeRecorder{
		sizes: make([]float64, sampleCap),
	}
}

// Record observes one read of n bytes.
func (r *SizeRecorder) Record(n int) {
	r.mu.Lock()
	r.sizes[r.next] = float64(n)
	r.next++
	if r.next == len(r.sizes) {
		r.next = 0
		r.full = true
	}
	r.count++
	r.mu.Unlock()
}

// Summary computes distribution statistics over the retained sample. With no
// observations it returns a zero Summary and no error.
func (r *SizeRecorder) Summary() (Summary, error) {
	r.mu.Lock()
	window := r.next
	if r.full {
		window = len(r.sizes)
	}
	sample := make([]float64, window)
	copy(sample, r.sizes[:window])
	count := r.count
	r.mu.Unlock()

	if len(sample) == 0 {
		return Summary{}, nil
	}

	mean, err := stats.Mean(sample)
	if err != nil {
		return Summary{}, err
	}
	median, err := stats.Median(sample)
	if err != nil {
		return Summary{}, err
	}
	p95, err := stats.Percentile(sample, 95)
	if err != nil {
		return Summary{}, err
	}
	min, err := stats.Min(sample)
	if err != nil {
		return Summary{}, err
	}
	max, err := stats.Max(sample)
	if err != nil {
		return Summary{}, err
	}
	return Summary{
		Count:  count,
		Mean:   mean,
		Median: median,
		P95:    p95,
		Min:    min,
		Max:    max,
	}, nil
}
