// Package main is the entry point for the lineview file viewer.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/dshills/lineview/internal/app"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	opts := parseFlags()

	application, err := app.New(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	defer application.Close()

	if err := application.Run(); err != nil {
		if errors.Is(err, app.ErrQuit) {
			return 0
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func parseFlags() app.Options {
	var opts app.Options
	var showVersion bool

	flag.StringVar(&opts.ConfigPath, "config", "", "Path to configuration file")
	flag.StringVar(&opts.ConfigPath, "c", "", "Path to configuration file (shorthand)")
	flag.StringVar(&opts.LogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	flag.StringVar(&opts.LogFile, "log-file", "", "Write logs to this file")
	flag.StringVar(&opts.StyleScript, "style", "", "Lua styling script")
	flag.BoolVar(&opts.Follow, "follow", false, "Reload when the file changes on disk")
	flag.BoolVar(&opts.Follow, "f", false, "Reload when the file changes on disk (shorthand)")
	flag.BoolVar(&showVersion, "version", false, "Show version information")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "lineview - terminal file viewer\n\n")
		fmt.Fprintf(os.Stderr, "Usage: lineview [options] <file>\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nKeys:\n")
		fmt.Fprintf(os.Stderr, "  Up/Down        Move the cursor, wrapping at the ends\n")
		fmt.Fprintf(os.Stderr, "  PgUp/PgDn      Move the cursor a page, without wrapping\n")
		fmt.Fprintf(os.Stderr, "  q, Esc         Quit\n")
	}

	flag.Parse()

	if showVersion {
		fmt.Printf("lineview %s (%s)\n", version, commit)
		os.Exit(0)
	}

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}
	opts.Path = flag.Arg(0)

	return opts
}
