package command

import (
	"os"

	logging "github.com/ipfs/go-log/v2"
	"github.com/seekstream/meter/config"
	"github.com/urfave/cli/v2"
)

var log = logging.Logger("meter/command")

var InitCmd = &cli.Command{
	Name:   "init",
	Usage:  "Initialize the meter config file",
	Flags:  initFlags,
	Action: initCommand,
}

func initCommand(cctx *cli.Context) error {
	log.Info("Initializing meter config file")

	// Check that the config root exists and it writable.
	configRoot, err := config.PathRoot()
	if err != nil {
		return err
	}

	if err = checkWritable(configRoot); err != nil {
		return err
	}

	configFile, err := config.Filename(configRoot)
	if err != nil {
		return err
	}

	if fileExists(configFile) {
		return config.ErrInitialized
	}

	cfg, err := config.Init(os.Stderr)
	if err != nil {
		return err
	}

	return cfg.Save(configFile)
}
