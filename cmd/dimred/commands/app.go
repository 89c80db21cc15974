// Package commands holds the dimred CLI: the server and a thin client for
// each Reducer RPC.
package commands

import (
	"time"

	"github.com/urfave/cli/v3"
)

func NewApp() *cli.Command {
	return &cli.Command{
		Name:  "dimred",
		Usage: "dimensionality-reduction pipeline registry",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "addr",
				Usage:   "server address for client commands",
				Value:   "localhost:50051",
				Sources: cli.EnvVars("DIMRED_ADDR"),
			},
			&cli.DurationFlag{
				Name:  "timeout",
				Usage: "per-call deadline for client commands",
				Value: 30 * time.Second,
			},
		},
		Commands: []*cli.Command{
			{
				Name:  "serve",
				Usage: "run the gRPC server",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "config",
						Usage: "YAML config file (optional)",
						Value: "dimred.yml",
					},
					&cli.StringFlag{
						Name:  "env",
						Usage: "environment file loaded before the config",
						Value: ".env",
					},
				},
				Action: ServeAction,
			},
			{
				Name:   "fit",
				Usage:  "fit every catalog pipeline on a matrix and persist the registry",
				Flags:  []cli.Flag{inputFlag()},
				Action: FitAction,
			},
			{
				Name:  "transform",
				Usage: "apply a fitted pipeline; prints the reduced matrix as JSON",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "model",
						Usage:    "pipeline name",
						Required: true,
					},
					inputFlag(),
				},
				Action: TransformAction,
			},
			{
				Name:   "load",
				Usage:  "replace the live registry with the persisted snapshot",
				Action: LoadAction,
			},
			{
				Name:   "pipelines",
				Usage:  "list the fitted pipelines",
				Action: PipelinesAction,
			},
		},
	}
}

func inputFlag() cli.Flag {
	return &cli.StringFlag{
		Name:     "input",
		Usage:    "JSON array of rows, or - for stdin",
		Required: true,
	}
}
