package command

import (
	"github.com/urfave/cli/v2"
)

var initFlags = []cli.Flag{}

var statFlags = []cli.Flag{
	configFlag,
	metricsAddrFlag,
	rateLimitFlag,
	noCacheFlag,
	bufferSizeFlag,
}

var copyFlags = []cli.Flag{
	configFlag,
	metricsAddrFlag,
	rateLimitFlag,
	noCacheFlag,
	bufferSizeFlag,
}

var (
	configFlagValue string
	configFlag      = &cli.StringFlag{
		Name:        "config",
		Usage:       "Path to the config file. Defaults to the file under the config root.",
		Aliases:     []string{"c"},
		Required:    false,
		Destination: &configFlagValue,
	}
)

var (
	metricsAddrFlagValue string
	metricsAddrFlag      = &cli.StringFlag{
		Name:        "metrics-addr",
		Usage:       "Serve Prometheus metrics on this address for the duration of the command.",
		Required:    false,
		Destination: &metricsAddrFlagValue,
	}
)

var (
	rateLimitFlagValue float64
	rateLimitFlag      = &cli.Float64Flag{
		Name:        "rate-limit",
		Usage:       "Read throughput ceiling in bytes per second. Zero means unlimited.",
		Required:    false,
		Destination: &rateLimitFlagValue,
	}
)

var (
	noCacheFlagValue bool
	noCacheFlag      = &cli.BoolFlag{
		Name:        "no-cache",
		Usage:       "Disable the block cache in front of the metered stream.",
		Required:    false,
		Destination: &noCacheFlagValue,
	}
)

var (
	bufferSizeFlagValue int
	bufferSizeFlag      = &cli.IntFlag{
		Name:        "buffer-size",
		Usage:       "Read buffer size in bytes. Zero selects the configured default.",
		Required:    false,
		Destination: &bufferSizeFlagValue,
	}
)
