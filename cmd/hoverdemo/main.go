// Package main is an interactive demo for the hoverkit widgets.
//
// It renders a small read-only buffer with a glyph margin, moves a
// cursor with the arrow keys, and toggles the two hover widgets:
//
//	h       toggle the content hover at the cursor position
//	g       toggle the glyph-margin indicator at the cursor line
//	Escape  dismiss the content hover (when it has focus)
//	PgUp/Dn scroll the viewport
//	q       quit
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/dshills/hoverkit/internal/config"
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
	var configPath string
	var showVersion bool

	flag.StringVar(&configPath, "config", "", "Path to configuration file")
	flag.StringVar(&configPath, "c", "", "Path to configuration file (shorthand)")
	flag.BoolVar(&showVersion, "version", false, "Print version and exit")
	flag.Parse()

	if showVersion {
		fmt.Printf("hoverdemo %s (%s)\n", version, commit)
		return 0
	}

	conf := config.DefaultConfig()
	if configPath != "" {
		var err error
		conf, err = config.Load(configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: loading config: %v\n", err)
			return 1
		}
	}

	demo, err := newDemo(conf)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize: %v\n", err)
		return 1
	}
	defer demo.Shutdown()

	// Live-reload the config while the demo runs.
	if configPath != "" {
		watcher, err := config.Watch(configPath, demo.ApplyConfig)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: watching config: %v\n", err)
			return 1
		}
		defer func() { _ = watcher.Close() }()
	}

	if err := demo.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}
