/*
Package main is the entry point for the wpdocs CLI.

wpdocs answers WordPress documentation lookups from developer.wordpress.org
and docs.wpvip.com, from the terminal or as an MCP server.

Usage:

	wpdocs [command]

Examples:

	# Keyword search of the developer documentation
	wpdocs search "custom post types"

	# Exact reference lookup
	wpdocs lookup get_post

	# Run as MCP server over stdio
	wpdocs mcp serve
*/
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/custodia-labs/wpdocs/internal/adapters/driving/cli"
)

// Version information (set via ldflags during build)
var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cli.SetVersion(version)

	if err := cli.Execute(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}
