package main

import (
	"fmt"
	"os"

	"github.com/avesong/perch-go/cmd"
	"github.com/avesong/perch-go/internal/conf"
	"github.com/avesong/perch-go/internal/logging"
)

func main() {
	logging.Init(false)

	settings, err := conf.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	rootCmd := cmd.RootCommand(settings)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
