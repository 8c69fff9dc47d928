package main

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"github.com/handiism/lobbygen/internal/config"
	"github.com/handiism/lobbygen/internal/tui"
)

func main() {
	configPath := pflag.StringP("config", "c", "lobbygen.toml", "Path to configuration file")
	pflag.Parse()

	settings, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := tui.Run(settings); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
