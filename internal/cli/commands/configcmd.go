package commands

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/aksoydem/huntboard-cli/internal/config"
	"github.com/aksoydem/huntboard-cli/internal/store"
)

// NewConfigCommand creates the config command group.
func NewConfigCommand() *cli.Command {
	return &cli.Command{
		Name:  "config",
		Usage: "Show or change CLI configuration",
		Subcommands: []*cli.Command{
			{
				Name:  "show",
				Usage: "Print the current configuration",
				Action: func(c *cli.Context) error {
					path, err := config.GetConfigPath()
					if err != nil {
						return err
					}
					cfg, err := config.LoadConfig()
					if err != nil {
						return err
					}
					dbPath := cfg.DatabasePath
					if dbPath == "" {
						dbPath, _ = store.DefaultPath()
					}
					addr := cfg.ListenAddr
					if addr == "" {
						addr = config.DefaultListenAddr
					}

					fmt.Printf("Config file: %s\n", path)
					fmt.Printf("Database:    %s\n", dbPath)
					fmt.Printf("Listen addr: %s\n", addr)
					return nil
				},
			},
			{
				Name:      "set-db",
				Usage:     "Set the database path",
				ArgsUsage: "[path]",
				Action: func(c *cli.Context) error {
					if c.NArg() == 0 {
						return fmt.Errorf("database path is required")
					}
					cfg, err := config.LoadConfig()
					if err != nil {
						return err
					}
					cfg.DatabasePath = c.Args().First()
					if err := config.SaveConfig(cfg); err != nil {
						return err
					}
					fmt.Printf("✅ Database path set to %s\n", cfg.DatabasePath)
					return nil
				},
			},
			{
				Name:      "set-addr",
				Usage:     "Set the serve listen address",
				ArgsUsage: "[host:port]",
				Action: func(c *cli.Context) error {
					if c.NArg() == 0 {
						return fmt.Errorf("listen address is required")
					}
					cfg, err := config.LoadConfig()
					if err != nil {
						return err
					}
					cfg.ListenAddr = c.Args().First()
					if err := config.SaveConfig(cfg); err != nil {
						return err
					}
					fmt.Printf("✅ Listen address set to %s\n", cfg.ListenAddr)
					return nil
				},
			},
		},
	}
}
