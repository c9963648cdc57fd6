package main

import (
	"fmt"
	"os"

	"memo2text/cmd/m2t/cmd"
	"memo2text/internal/config"
)

func main() {
	// Load .env early so every subcommand sees the same environment.
	if err := config.LoadEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "Configuration warning: %v\n", err)
	}

	cmd.Execute()
}
