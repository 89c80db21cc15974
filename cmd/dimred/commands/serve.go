package commands

import (
	"context"
	"fmt"

	"dimred/internal/config"
	"dimred/internal/engine"

	"github.com/urfave/cli/v3"
)

// ServeAction loads config and runs the engine until the process is
// signalled.
func ServeAction(ctx context.Context, cmd *cli.Command) error {
	cfg, err := config.Load(cmd.String("config"), cmd.String("env"))
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	e, err := engine.Bootstrap(ctx, cfg)
	if err != nil {
		return fmt.Errorf("bootstrap: %w", err)
	}
	return e.Run(ctx)
}
