// Package main is the entry point for the softwrap viewer.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/dshills/softwrap/internal/app"
	"github.com/dshills/softwrap/internal/config"
	"github.com/dshills/softwrap/internal/renderer/backend"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

type flags struct {
	configPath string
	logLevel   string
	logFile    string
	files      []string
}

func main() {
	os.Exit(run())
}

func run() int {
	f, ok := parseFlags()
	if !ok {
		return 0
	}

	cfg, err := config.Load(f.configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	if f.logLevel != "" {
		cfg.Logging.Level = f.logLevel
	}
	if f.logFile != "" {
		cfg.Logging.File = f.logFile
	}

	logger, closer, err := app.NewLogger(cfg.Logging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	defer closer.Close()

	application, err := app.New(app.Options{Config: cfg, Logger: logger, Files: f.files})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize: %v\n", err)
		return 1
	}
	defer application.Shutdown()

	term, err := backend.NewTerminal()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to create terminal: %v\n", err)
		return 1
	}
	if err := application.SetBackend(term); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to set backend: %v\n", err)
		return 1
	}

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-signals
		application.Quit()
	}()

	if err := application.Run(); err != nil {
		if errors.Is(err, app.ErrQuit) {
			return 0
		}
		logger.Error("run failed", "error", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// parseFlags reads the command line. ok is false when the process should
// exit without starting, as after -version.
func parseFlags() (f flags, ok bool) {
	var showVersion bool

	flag.StringVar(&f.configPath, "config", "", "Path to a TOML or YAML configuration file")
	flag.StringVar(&f.configPath, "c", "", "Path to configuration file (shorthand)")
	flag.StringVar(&f.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	flag.StringVar(&f.logFile, "log-file", "", "Write logs to this file")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "softwrap - soft-wrapping text viewer and editor\n\n")
		fmt.Fprintf(os.Stderr, "Usage: softwrap [options] [files...]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  softwrap                    Open a scratch buffer\n")
		fmt.Fprintf(os.Stderr, "  softwrap a.txt b.txt        Open two files side by side\n")
		fmt.Fprintf(os.Stderr, "  softwrap -c view.toml a.txt Open a file with custom settings\n")
	}
	flag.Parse()

	if showVersion {
		fmt.Printf("softwrap %s\n", version)
		fmt.Printf("Commit: %s\n", commit)
		fmt.Printf("Built: %s\n", date)
		return f, false
	}

	f.files = flag.Args()
	return f, true
}
