// Package main is the entry point for the menu-autopilot CLI.
package main

import (
	"os"

	"github.com/clayparrish-cyber/menu-autopilot-sub001/cmd/cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
