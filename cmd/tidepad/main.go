// cmd/tidepad/main.go
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/bethropolis/tidepad/internal/app"
	"github.com/bethropolis/tidepad/internal/config"
	"github.com/bethropolis/tidepad/internal/logger"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

// run returns the process exit code. Deferred cleanup, including closing
// the log file, happens before main exits.
func run(args []string) int {
	var flags config.Flags
	fs := flag.NewFlagSet(config.AppName, flag.ContinueOnError)
	if err := flags.Parse(fs, args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}
	if *flags.Version {
		fmt.Printf("%s %s\n", config.AppName, config.Version)
		return 0
	}

	cfg, undecoded, cfgErr := config.Load(*flags.ConfigFilePath, &flags)

	closeLog, err := openLog(cfg.Logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", config.AppName, err)
		return 1
	}
	defer closeLog()

	logger.Infof("Starting %s %s...", config.AppName, config.Version)
	if cfgErr != nil {
		logger.Warnf("Config: %v (using defaults)", cfgErr)
	}
	if len(undecoded) > 0 {
		logger.Warnf("Config: unknown keys ignored: %v", undecoded)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	tidepad, err := app.NewApp(cfg, app.Options{})
	if err != nil {
		logger.Errorf("Error initializing application: %v", err)
		fmt.Fprintf(os.Stderr, "%s: %v\n", config.AppName, err)
		return 1
	}

	if err := tidepad.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logger.Errorf("Application exited with error: %v", err)
		return 1
	}

	logger.Infof("%s finished.", config.AppName)
	return 0
}

// openLog starts the logger. The screen owns the terminal while running, so
// records go to a file unless the path is "-" (stderr).
func openLog(cfg logger.Config) (func() error, error) {
	logPath := cfg.LogFilePath
	if logPath == "" {
		logPath = config.DefaultLogFileName
	}
	if logPath == "-" {
		logger.Init(cfg, os.Stderr)
		return func() error { return nil }, nil
	}

	logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file '%s': %w", logPath, err)
	}
	logger.Init(cfg, logFile)
	return logFile.Close, nil
}
