// Package main is the entrypoint of Rawser.
package main

import (
	"os"

	"rawser/internal/cfg"
	"rawser/internal/utils/logging"
)

func main() {
	if err := cfg.Execute(); err != nil {
		logging.E("Rawser exiting with error: %v", err)
		os.Exit(1)
	}
}
