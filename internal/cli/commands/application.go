package commands

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/AlecAivazis/survey/v2"
	"github.com/atotto/clipboard"
	"github.com/urfave/cli/v2"

	"github.com/aksoydem/huntboard-cli/internal/board"
)

// NewAppCommand creates all subcommands for the 'app' command group.
func NewAppCommand() *cli.Command {
	return &cli.Command{
		Name:    "app",
		Aliases: []string{"a"},
		Usage:   "Manage job applications in the active term",
		Subcommands: []*cli.Command{
			appAddCmd(),
			appListCmd(),
			appShowCmd(),
			appEditCmd(),
			appMoveCmd(),
			appDeleteCmd(),
		},
	}
}

// app add
func appAddCmd() *cli.Command {
	return &cli.Command{
		Name:      "add",
		Aliases:   []string{"create"},
		Usage:     "Add a new application to the active term",
		ArgsUsage: "[company] [position]",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "interactive", Aliases: []string{"i"}, Usage: "Fill the application form interactively"},
			&cli.StringFlag{Name: "status", Aliases: []string{"s"}, Value: "wishlist", Usage: "Initial status"},
			&cli.StringFlag{Name: "date", Aliases: []string{"d"}, Usage: "Application date (free-form, used by the timeline)"},
			&cli.StringFlag{Name: "note", Aliases: []string{"n"}, Usage: "Free-form note"},
		},
		Action: func(c *cli.Context) error {
			engine, err := openEngine()
			if err != nil {
				return err
			}

			if c.Bool("interactive") {
				company := ""
				position := ""
				if c.NArg() >= 1 {
					company = c.Args().Get(0)
				}
				if c.NArg() >= 2 {
					position = c.Args().Get(1)
				}
				return runCreateForm(engine, company, position)
			}

			if c.NArg() < 2 {
				fmt.Println("❌ Company and position are required.")
				fmt.Println("💡 Use 'huntboard app add \"Acme\" \"Backend Intern\"' or 'huntboard app add -i'")
				return fmt.Errorf("company and position are required")
			}

			status, err := parseStatus(c.String("status"))
			if err != nil {
				fmt.Printf("❌ %v\n", err)
				return err
			}

			app, err := engine.AddApplication(board.NewApplication{
				Company:  c.Args().Get(0),
				Position: c.Args().Get(1),
				Status:   status,
				Date:     c.String("date"),
				Note:     c.String("note"),
			})
			if err != nil {
				fmt.Printf("❌ %v\n", err)
				return err
			}

			fmt.Printf("✅ Added %s at %s (%s)\n", app.Position, app.Company, app.Status)
			fmt.Printf("ID: %s\n", app.ID)
			return nil
		},
	}
}

// app list
func appListCmd() *cli.Command {
	return &cli.Command{
		Name:    "list",
		Aliases: []string{"ls"},
		Usage:   "List applications in the active term",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "status", Aliases: []string{"s"}, Usage: "Filter by status"},
		},
		Action: func(c *cli.Context) error {
			engine, err := openEngine()
			if err != nil {
				return err
			}

			term := engine.ActiveTerm()
			var apps = engine.ApplicationsInTerm(term.ID)
			if s := c.String("status"); s != "" {
				status, err := parseStatus(s)
				if err != nil {
					fmt.Printf("❌ %v\n", err)
					return err
				}
				apps = engine.ApplicationsByStatus(term.ID, status)
			}

			if len(apps) == 0 {
				fmt.Printf("📋 No applications in '%s'.\n", term.Name)
				fmt.Println("💡 Create one with 'huntboard app add -i'")
				return nil
			}

			fmt.Printf("Applications in '%s' (%s):\n", term.Name, engine.SortMode())
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tCOMPANY\tPOSITION\tSTATUS\tDATE")
			fmt.Fprintln(w, "--\t-------\t--------\t------\t----")
			for _, a := range apps {
				date := a.Date
				if date == "" {
					date = "-"
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
					shortID(a.ID),
					truncateString(a.Company, 24),
					truncateString(a.Position, 32),
					a.Status,
					date)
			}
			w.Flush()
			return nil
		},
	}
}

// app show
func appShowCmd() *cli.Command {
	return &cli.Command{
		Name:      "show",
		Usage:     "Show details for an application",
		ArgsUsage: "[id]",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "copy", Usage: "Copy the summary to the clipboard"},
		},
		Action: func(c *cli.Context) error {
			if c.NArg() == 0 {
				return fmt.Errorf("application ID is required")
			}

			engine, err := openEngine()
			if err != nil {
				return err
			}

			app, err := resolveApplication(engine, c.Args().First())
			if err != nil {
				fmt.Printf("❌ %v\n", err)
				return err
			}

			var b strings.Builder
			fmt.Fprintf(&b, "Application %s\n", shortID(app.ID))
			fmt.Fprintf(&b, "----------------------------------\n")
			fmt.Fprintf(&b, "Company:  %s\n", app.Company)
			fmt.Fprintf(&b, "Position: %s\n", app.Position)
			fmt.Fprintf(&b, "Status:   %s\n", app.Status)
			if app.Date != "" {
				fmt.Fprintf(&b, "Date:     %s\n", app.Date)
			}
			if app.Note != "" {
				fmt.Fprintf(&b, "Note:     %s\n", app.Note)
			}
			if app.ContactName != "" {
				fmt.Fprintf(&b, "Contact:  %s\n", app.ContactName)
			}
			if app.ContactEmail != "" {
				fmt.Fprintf(&b, "Email:    %s\n", app.ContactEmail)
			}
			if app.ContactLink != "" {
				fmt.Fprintf(&b, "Profile:  %s\n", app.ContactLink)
			}
			if app.FileName != "" {
				fmt.Fprintf(&b, "File:     %s\n", app.FileName)
			}
			fmt.Print(b.String())

			if c.Bool("copy") {
				if err := clipboard.WriteAll(b.String()); err != nil {
					fmt.Printf("⚠️  Could not copy to clipboard: %v\n", err)
				} else {
					fmt.Println("📋 Copied to clipboard.")
				}
			}
			return nil
		},
	}
}

// app edit
func appEditCmd() *cli.Command {
	return &cli.Command{
		Name:      "edit",
		Usage:     "Update fields of an application",
		ArgsUsage: "[id]",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "company"},
			&cli.StringFlag{Name: "position"},
			&cli.StringFlag{Name: "status", Aliases: []string{"s"}},
			&cli.StringFlag{Name: "date", Aliases: []string{"d"}},
			&cli.StringFlag{Name: "note", Aliases: []string{"n"}},
			&cli.StringFlag{Name: "contact-name"},
			&cli.StringFlag{Name: "contact-email"},
			&cli.StringFlag{Name: "contact-link"},
			&cli.StringFlag{Name: "file", Usage: "Attached file name (metadata only)"},
		},
		Action: func(c *cli.Context) error {
			if c.NArg() == 0 {
				return fmt.Errorf("application ID is required")
			}

			engine, err := openEngine()
			if err != nil {
				return err
			}

			app, err := resolveApplication(engine, c.Args().First())
			if err != nil {
				fmt.Printf("❌ %v\n", err)
				return err
			}

			var upd board.ApplicationUpdate
			if c.IsSet("company") {
				upd.Company = stringPtr(c.String("company"))
			}
			if c.IsSet("position") {
				upd.Position = stringPtr(c.String("position"))
			}
			if c.IsSet("status") {
				status, err := parseStatus(c.String("status"))
				if err != nil {
					fmt.Printf("❌ %v\n", err)
					return err
				}
				upd.Status = &status
			}
			if c.IsSet("date") {
				upd.Date = stringPtr(c.String("date"))
			}
			if c.IsSet("note") {
				upd.Note = stringPtr(c.String("note"))
			}
			if c.IsSet("contact-name") {
				upd.ContactName = stringPtr(c.String("contact-name"))
			}
			if c.IsSet("contact-email") {
				upd.ContactEmail = stringPtr(c.String("contact-email"))
			}
			if c.IsSet("contact-link") {
				upd.ContactLink = stringPtr(c.String("contact-link"))
			}
			if c.IsSet("file") {
				upd.FileName = stringPtr(c.String("file"))
			}

			if upd == (board.ApplicationUpdate{}) {
				fmt.Println("No update fields provided.")
				fmt.Println("💡 Use 'huntboard app edit <id> --status interviewing' or similar")
				return nil
			}

			if _, err := engine.UpdateApplication(app.ID, upd); err != nil {
				fmt.Printf("❌ %v\n", err)
				return err
			}

			fmt.Printf("✅ Application %s updated.\n", shortID(app.ID))
			return nil
		},
	}
}

// app move
func appMoveCmd() *cli.Command {
	return &cli.Command{
		Name:      "move",
		Aliases:   []string{"mv"},
		Usage:     "Move an application to another board column",
		ArgsUsage: "[id] [status]",
		Action: func(c *cli.Context) error {
			if c.NArg() < 2 {
				return fmt.Errorf("application ID and target status are required")
			}

			engine, err := openEngine()
			if err != nil {
				return err
			}

			app, err := resolveApplication(engine, c.Args().Get(0))
			if err != nil {
				fmt.Printf("❌ %v\n", err)
				return err
			}

			status, err := parseStatus(c.Args().Get(1))
			if err != nil {
				fmt.Printf("❌ %v\n", err)
				return err
			}

			moved, err := engine.MoveCard(app.ID, status)
			if err != nil {
				fmt.Printf("❌ %v\n", err)
				return err
			}
			if !moved {
				fmt.Printf("💤 %s at %s is already in %s.\n", app.Position, app.Company, status)
				return nil
			}

			fmt.Printf("✅ Moved %s at %s to %s.\n", app.Position, app.Company, status)
			return nil
		},
	}
}

// app delete
func appDeleteCmd() *cli.Command {
	return &cli.Command{
		Name:      "delete",
		Aliases:   []string{"rm"},
		Usage:     "Delete an application",
		ArgsUsage: "[id]",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "yes", Aliases: []string{"y"}, Usage: "Skip the confirmation prompt"},
		},
		Action: func(c *cli.Context) error {
			if c.NArg() == 0 {
				return fmt.Errorf("application ID is required")
			}

			engine, err := openEngine()
			if err != nil {
				return err
			}

			app, err := resolveApplication(engine, c.Args().First())
			if err != nil {
				fmt.Printf("❌ %v\n", err)
				return err
			}

			if !c.Bool("yes") {
				confirmed := false
				prompt := &survey.Confirm{
					Message: fmt.Sprintf("Delete %s at %s?", app.Position, app.Company),
				}
				if err := survey.AskOne(prompt, &confirmed); err != nil {
					return err
				}
				if !confirmed {
					fmt.Println("Cancelled.")
					return nil
				}
			}

			engine.DeleteApplication(app.ID)
			fmt.Printf("🗑️ Deleted %s at %s.\n", app.Position, app.Company)
			return nil
		},
	}
}
