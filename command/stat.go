package command

import (
	"errors"

	"github.com/hashicorp/go-multierror"
	"github.com/seekstream/meter/stream"
	"github.com/urfave/cli/v2"
)

var StatCmd = &cli.Command{
	Name:      "stat",
	Usage:     "Read files through a metered stream and report transfer counters",
	ArgsUsage: "<file>...",
	Flags:     statFlags,
	Action:    statCommand,
}

func statCommand(cctx *cli.Context) error {
	if cctx.Args().Len() == 0 {
		return errors.New("at least one file argument is required")
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	mc, shutdown, err := newMetricsContext(cctx, cfg)
	if err != nil {
		return err
	}

	sizes := stream.NewSizeRecorder(0)
	bufSize := bufferSize(cfg)

	var errs error
	for _, path := range cctx.Args().Slice() {
		src, err := openSource(cctx.Context, cfg, path)
		if err != nil {
			errs = multierror.Append(errs, err)
			continue
		}
		ms, err := stream.NewMetered(src, mc, stream.WithSizeRecorder(sizes))
		if err != nil {
			src.Close()
			errs = multierror.Append(errs, err)
			continue
		}
		log.Debugw("Reading stream", "path", path)
		if err = drainAndClose(ms, bufSize); err != nil {
			errs = multierror.Append(errs, err)
		}
	}

	if err = reportCounters(cctx.App.Writer, mc, readCounters...); err != nil {
		errs = multierror.Append(errs, err)
	}
	if err = reportSizes(cctx.App.Writer, sizes); err != nil {
		errs = multierror.Append(errs, err)
	}
	if err = shutdown(); err != nil {
		errs = multierror.Append(errs, err)
	}
	return errs
}
