// Command tz validates Israeli ID numbers and generates valid ranges.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"iltz/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := cli.Execute(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}
