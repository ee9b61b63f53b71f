package command

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/hashicorp/go-multierror"
	"github.com/seekstream/meter"
	"github.com/seekstream/meter/config"
	"github.com/seekstream/meter/metrics"
	"github.com/seekstream/meter/stream"
	"github.com/urfave/cli/v2"
	"golang.org/x/time/rate"
)

// loadConfig reads the config file, falling back to defaults when the
// config has not been initialized.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configFlagValue)
	if err == nil {
		return cfg, nil
	}
	if errors.Is(err, config.ErrNotInitialized) {
		return &config.Config{
			Stream:  config.NewStream(),
			Metrics: config.NewMetrics(),
		}, nil
	}
	return nil, fmt.Errorf("cannot load config file: %w", err)
}

// newMetricsContext returns the metrics context shared by all streams a
// command opens. When a metrics listen address is set, a Prometheus export
// server is started first so the context's instruments register against the
// exporting provider; the returned shutdown function stops it.
func newMetricsContext(cctx *cli.Context, cfg *config.Config) (meter.Context, func() error, error) {
	listenAddr := metricsAddrFlagValue
	if listenAddr == "" {
		listenAddr = cfg.Metrics.ListenAddr
	}
	if listenAddr == "" {
		return meter.NewContext(), func() error { return nil }, nil
	}

	srv, err := metrics.NewServer(listenAddr)
	if err != nil {
		return nil, nil, err
	}
	if err = srv.Start(); err != nil {
		return nil, nil, err
	}
	mc, err := metrics.NewContext()
	if err != nil {
		shErr := srv.Shutdown(cctx.Context)
		if shErr != nil {
			err = multierror.Append(err, shErr)
		}
		return nil, nil, err
	}
	return mc, func() error { return srv.Shutdown(context.Background()) }, nil
}

// openSource opens path and stacks the configured decorators under the
// metered wrapper: file, then block cache, then rate limiter.
func openSource(ctx context.Context, cfg *config.Config, path string) (meter.SeekableStream, error) {
	file, err := stream.OpenFile(path)
	if err != nil {
		return nil, err
	}
	var src meter.SeekableStream = file

	if !noCacheFlagValue && cfg.Stream.CacheBlocks > 0 {
		cached, err := stream.NewBlockCached(src,
			stream.WithBlockSize(cfg.Stream.BlockSize),
			stream.WithMaxBlocks(cfg.Stream.CacheBlocks),
		)
		if err != nil {
			file.Close()
			return nil, err
		}
		src = cached
	}

	limit := rateLimitFlagValue
	if limit == 0 {
		limit = cfg.Stream.RateLimit
	}
	if limit > 0 {
		src = stream.NewThrottled(ctx, src, rate.NewLimiter(rate.Limit(limit), cfg.Stream.RateBurst))
	}
	return src, nil
}

// bufferSize resolves the read buffer size from the flag and config.
func bufferSize(cfg *config.Config) int {
	if bufferSizeFlagValue > 0 {
		return bufferSizeFlagValue
	}
	return cfg.Stream.ReadBufferSize
}

// drainAndClose reads s to end of stream, then closes it. The stream is
// closed exactly once even when a read fails partway.
func drainAndClose(s meter.SeekableStream, bufSize int) error {
	var errs error
	buf := make([]byte, bufSize)
	for {
		_, err := s.Read(buf)
		if err == io.EOF {
			break
		}
		if err != nil {
			errs = multierror.Append(errs, err)
			break
		}
	}
	if err := s.Close(); err != nil {
		errs = multierror.Append(errs, err)
	}
	return errs
}

// reportCounters prints the accumulated value of the named counters.
func reportCounters(w io.Writer, mc meter.Context, specs ...counterSpec) error {
	for _, spec := range specs {
		ctr, err := mc.Counter(spec.name, spec.unit)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s: %d\n", spec.name, ctr.Value())
	}
	return nil
}

type counterSpec struct {
	name string
	unit meter.Unit
}

var (
	readCounters = []counterSpec{
		{meter.ReadBytes, meter.Bytes},
		{meter.ReadOperations, meter.Count},
	}
	writeCounters = []counterSpec{
		{meter.WriteBytes, meter.Bytes},
		{meter.WriteOperations, meter.Count},
	}
)

// reportSizes prints distribution statistics for the recorded read sizes.
func reportSizes(w io.Writer, rec *stream.SizeRecorder) error {
	summary, err := rec.Summary()
	if err != nil {
		return err
	}
	if summary.Count == 0 {
		return nil
	}
	fmt.Fprintf(w, "read.size.mean: %.2f\n", summary.Mean)
	fmt.Fprintf(w, "read.size.median: %.2f\n", summary.Median)
	fmt.Fprintf(w, "read.size.p95: %.2f\n", summary.P95)
	fmt.Fprintf(w, "read.size.min: %.0f\n", summary.Min)
	fmt.Fprintf(w, "read.size.max: %.0f\n", summary.Max)
	return nil
}
