package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/vk/recurrence/internal/app"
	"github.com/vk/recurrence/internal/cli"
	"github.com/vk/recurrence/internal/config"
	"github.com/vk/recurrence/internal/hcl"
	"github.com/vk/recurrence/internal/tomlconfig"
	"github.com/vk/recurrence/internal/yamlconfig"
)

// main is the entrypoint for the recurrence application.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})))

	// The real main function handles errors and exit codes.
	if err := run(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run encapsulates the main application logic for easier testing and error handling.
func run(outW, errW io.Writer, args []string) error {
	appConfig, shouldExit, err := cli.Parse(args, outW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	loader := config.NewMultiLoader(hcl.NewLoader(), yamlconfig.NewLoader(), tomlconfig.NewLoader())
	recurrenceApp := app.NewApp(outW, errW, appConfig, loader)

	return recurrenceApp.Run(context.Background())
}
