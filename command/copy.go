package command

import (
	"errors"
	"io"

	"github.com/hashicorp/go-multierror"
	"github.com/seekstream/meter/stream"
	"github.com/urfave/cli/v2"
)

var CopyCmd = &cli.Command{
	Name:      "copy",
	Usage:     "Copy a file through metered read and write streams and report transfer counters",
	ArgsUsage: "<source> <destination>",
	Flags:     copyFlags,
	Action:    copyCommand,
}

func copyCommand(cctx *cli.Context) error {
	if cctx.Args().Len() != 2 {
		return errors.New("exactly two arguments are required: source and destination")
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	mc, shutdown, err := newMetricsContext(cctx, cfg)
	if err != nil {
		return err
	}

	src, err := openSource(cctx.Context, cfg, cctx.Args().Get(0))
	if err != nil {
		return err
	}
	ms, err := stream.NewMetered(src, mc)
	if err != nil {
		src.Close()
		return err
	}

	dst, err := stream.CreateFile(cctx.Args().Get(1))
	if err != nil {
		ms.Close()
		return err
	}
	mw, err := stream.NewMeteredWriter(dst, mc)
	if err != nil {
		ms.Close()
		dst.Close()
		return err
	}

	var errs error
	buf := make([]byte, bufferSize(cfg))
	for {
		n, rerr := ms.Read(buf)
		if n > 0 {
			if _, werr := mw.Write(buf[:n]); werr != nil {
				errs = multierror.Append(errs, werr)
				break
			}
		}
		if rerr == io.EOF {
			break
		}
		if rerr != nil {
			errs = multierror.Append(errs, rerr)
			break
		}
	}
	if err = ms.Close(); err != nil {
		errs = multierror.Append(errs, err)
	}
	if err = mw.Close(); err != nil {
		errs = multierror.Append(errs, err)
	}

	if err = reportCounters(cctx.App.Writer, mc, readCounters...); err != nil {
		errs = multierror.Append(errs, err)
	}
	if err = reportCounters(cctx.App.Writer, mc, writeCounters...); err != nil {
		errs = multierror.Append(errs, err)
	}
	if err = shutdown(); err != nil {
		errs = multierror.Append(errs, err)
	}
	return errs
}
