package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"dimred/cmd/dimred/commands"
	"dimred/internal/logging"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := commands.NewApp().Run(ctx, os.Args); err != nil {
		logging.L().Error("dimred", "err", err)
		stop()
		os.Exit(1)
	}
}
