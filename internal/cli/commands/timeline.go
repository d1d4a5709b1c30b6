package commands

import (
	"fmt"

	"github.com/urfave/cli/v2"
)

// NewTimelineCommand creates the timeline command.
func NewTimelineCommand() *cli.Command {
	return &cli.Command{
		Name:  "timeline",
		Usage: "Show dated applications of the active term in order",
		Action: func(c *cli.Context) error {
			engine, err := openEngine()
			if err != nil {
				return err
			}

			term := engine.ActiveTerm()
			apps := engine.DatedApplications(term.ID)
			if len(apps) == 0 {
				fmt.Println("Add applications with dates to see your timeline...")
				return nil
			}

			fmt.Printf("🗓️  Timeline for '%s' (%s)\n\n", term.Name, engine.SortMode())
			for _, a := range apps {
				fmt.Printf("  %-12s ● %s\n", a.Date, a.Company)
				fmt.Printf("  %-12s   %s (%s)\n", "", a.Position, a.Status)
			}
			return nil
		},
	}
}
