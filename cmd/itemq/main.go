package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/tychoish/cmdr"

	"github.com/tychoish/itemq/operations"
)

func main() {
	// the run command blocks until the workers finish, so catch
	// interrupts here and let the workers see the cancellation.
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer cancel()

	cmd := operations.Commander()
	cmd.SetAppOptions(cmdr.AppOptions{
		Name:    "itemq",
		Usage:   "concurrent work-queue demonstration",
		Version: "v0.0.1-pre",
	})

	cmdr.Main(ctx, cmd)
}
