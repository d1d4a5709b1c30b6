package commands

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/AlecAivazis/survey/v2"
	"github.com/urfave/cli/v2"
)

// NewTermCommand creates all subcommands for the 'term' command group.
func NewTermCommand() *cli.Command {
	return &cli.Command{
		Name:    "term",
		Aliases: []string{"t"},
		Usage:   "Manage application cycles (terms)",
		Subcommands: []*cli.Command{
			termListCmd(),
			termCreateCmd(),
			termUseCmd(),
			termDeleteCmd(),
		},
	}
}

// termListCmd lists all terms.
func termListCmd() *cli.Command {
	return &cli.Command{
		Name:    "list",
		Aliases: []string{"ls"},
		Usage:   "List all terms",
		Action: func(c *cli.Context) error {
			engine, err := openEngine()
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tAPPS\t")
			fmt.Fprintln(w, "--\t----\t----\t")
			for _, t := range engine.Terms() {
				marker := ""
				if t.ID == engine.ActiveTermID() {
					marker = "👈 active"
				}
				fmt.Fprintf(w, "%s\t%s\t%d\t%s\n",
					truncateString(t.ID, 8),
					t.Name,
					len(engine.ApplicationsInTerm(t.ID)),
					marker)
			}
			w.Flush()
			return nil
		},
	}
}

// termCreateCmd creates a new term and makes it active.
func termCreateCmd() *cli.Command {
	return &cli.Command{
		Name:      "create",
		Aliases:   []string{"add"},
		Usage:     "Create a new term and switch to it",
		ArgsUsage: "[name]",
		Action: func(c *cli.Context) error {
			if c.NArg() == 0 {
				return fmt.Errorf("term name is required")
			}

			engine, err := openEngine()
			if err != nil {
				return err
			}

			term, err := engine.AddTerm(c.Args().First())
			if err != nil {
				fmt.Printf("❌ %v\n", err)
				return err
			}

			fmt.Printf("✅ Term '%s' created and set as active!\n", term.Name)
			fmt.Printf("ID: %s\n", term.ID)
			return nil
		},
	}
}

// termUseCmd switches the active term.
func termUseCmd() *cli.Command {
	return &cli.Command{
		Name:      "use",
		Usage:     "Switch the active term",
		ArgsUsage: "[name-or-id]",
		Action: func(c *cli.Context) error {
			if c.NArg() == 0 {
				return fmt.Errorf("term name or ID is required")
			}

			engine, err := openEngine()
			if err != nil {
				return err
			}

			term, err := resolveTerm(engine, c.Args().First())
			if err != nil {
				fmt.Printf("❌ %v\n", err)
				fmt.Println("💡 Use 'huntboard term list' to see known terms")
				return err
			}

			engine.SetActiveTerm(term.ID)
			fmt.Printf("✅ Active term is now '%s'\n", term.Name)
			return nil
		},
	}
}

// termDeleteCmd deletes the active term and everything in it.
func termDeleteCmd() *cli.Command {
	return &cli.Command{
		Name:  "delete",
		Usage: "Delete the active term and all of its applications",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "yes",
				Aliases: []string{"y"},
				Usage:   "Skip the confirmation prompt",
			},
		},
		Action: func(c *cli.Context) error {
			engine, err := openEngine()
			if err != nil {
				return err
			}

			active := engine.ActiveTerm()
			count := len(engine.ApplicationsInTerm(active.ID))

			if !c.Bool("yes") {
				confirmed := false
				prompt := &survey.Confirm{
					Message: fmt.Sprintf("Delete '%s' and its %d application(s)?", active.Name, count),
				}
				if err := survey.AskOne(prompt, &confirmed); err != nil {
					return err
				}
				if !confirmed {
					fmt.Println("Cancelled.")
					return nil
				}
			}

			deleted, err := engine.DeleteActiveTerm()
			if err != nil {
				fmt.Printf("❌ %v\n", err)
				return err
			}

			fmt.Printf("🗑️ Term '%s' deleted.\n", deleted.Name)
			fmt.Printf("✅ Active term is now '%s'\n", engine.ActiveTerm().Name)
			return nil
		},
	}
}
