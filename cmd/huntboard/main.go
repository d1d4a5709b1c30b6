package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"

	"github.com/aksoydem/huntboard-cli/internal/cli/commands"
)

// Version will be set during build with ldflags
var Version = "1.2.0"

func main() {
	_ = godotenv.Load()

	app := &cli.App{
		Name:    "huntboard",
		Usage:   "Job and internship application board for your terminal",
		Version: Version,
		Commands: []*cli.Command{
			// Core commands
			commands.NewAppCommand(),
			commands.NewTermCommand(),

			// Views
			commands.NewBoardCommand(),
			commands.NewTimelineCommand(),
			commands.NewSortCommand(),

			// Chat assistant
			commands.NewChatCommand(),

			// Browser view
			commands.NewServeCommand(),

			// Meta
			commands.NewConfigCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
