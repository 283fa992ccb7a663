// Package main is the gmscreen terminal client.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/louisbranch/gmscreen/internal/cli"
	"github.com/louisbranch/gmscreen/internal/platform/config"
)

// Set via ldflags at build time.
var version = "dev"

func main() {
	root, err := cli.NewRootCommand(cli.Options{Version: version})
	if err != nil {
		config.Exitf("Error: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := root.ExecuteContext(ctx); err != nil {
		stop()
		config.Exitf("Error: %v", err)
	}
}
