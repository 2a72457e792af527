// Package main provides the CLI entrypoint for ugc-mapper.
//
// ugc-mapper fills UGC structure templates from tabular data:
//   - imports structure definitions and templates into a local workspace
//   - derives a per-slot mapping configuration from slot types and headers
//   - lets humans review and edit the configuration as YAML
//   - generates the filled structure instance as JSON
package main

import (
	"context"
	"os"
	"os/signal"

	"ugc-mapper/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := cli.Execute(ctx)

	stop()
	os.Exit(code)
}
