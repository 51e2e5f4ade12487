package main

import (
	"fmt"
	"os"

	"github.com/danmuck/fixwire/internal/logging"
)

func main() {
	logging.ConfigureRuntime()
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "fixwirectl: %v\n", err)
		os.Exit(1)
	}
}
