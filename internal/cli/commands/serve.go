package commands

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/aksoydem/huntboard-cli/internal/api"
	"github.com/aksoydem/huntboard-cli/internal/config"
)

// NewServeCommand creates the serve command.
func NewServeCommand() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Serve a read-only board API for a browser view",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "addr",
				Aliases: []string{"a"},
				Usage:   "Listen address",
			},
		},
		Action: func(c *cli.Context) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return err
			}

			addr := c.String("addr")
			if addr == "" {
				addr = cfg.ListenAddr
			}
			if addr == "" {
				addr = config.DefaultListenAddr
			}

			engine, err := openEngine()
			if err != nil {
				return err
			}

			fmt.Printf("🌐 Board API listening on http://%s\n", addr)
			fmt.Println("💡 Read-only: GET /v1/terms, /v1/applications, /v1/timeline")
			return api.NewRouter(engine).Run(addr)
		},
	}
}
