package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	logging "github.com/ipfs/go-log/v2"
	meter "github.com/seekstream/meter"
	"github.com/seekstream/meter/command"
	"github.com/urfave/cli/v2"
)

var log = logging.Logger("meter")

func main() {
	os.Exit(run())
}

func run() int {
	// Set up a context that is canceled when the command is interrupted
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Set up a signal handler to cancel the context
	go func() {
		interrupt := make(chan os.Signal, 1)
		signal.Notify(interrupt, syscall.SIGTERM, syscall.SIGINT)
		select {
		case <-interrupt:
			cancel()
			fmt.Println("Received interrupt signal, shutting down...")
		case <-ctx.Done():
		}
		signal.Stop(interrupt)
	}()

	if _, set := os.LookupEnv("GOLOG_LOG_LEVEL"); !set {
		if err := logging.SetLogLevel("*", "info"); err != nil {
			log.Fatal(err)
		}
	}

	app := &cli.App{
		Name:    "meter",
		Usage:   "Metered access to seekable byte streams",
		Version: meter.Version,
		Commands: []*cli.Command{
			command.InitCmd,
			command.StatCmd,
			command.CopyCmd,
		},
	}

	if err := app.RunContext(ctx, os.Args); err != nil {
		log.Error(err)
		return 1
	}
	return 0
}
