package commands

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/urfave/cli/v2"
	"golang.org/x/term"

	"github.com/aksoydem/huntboard-cli/internal/board"
	"github.com/aksoydem/huntboard-cli/internal/models"
)

var columnStyles = map[models.Status]lipgloss.Style{
	models.StatusWishlist:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
	models.StatusApplied:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11")),
	models.StatusInterviewing: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("13")),
	models.StatusOffer:        lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10")),
	models.StatusRejected:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9")),
}

// NewBoardCommand creates the board command.
func NewBoardCommand() *cli.Command {
	return &cli.Command{
		Name:    "board",
		Aliases: []string{"kanban"},
		Usage:   "Display the active term as a kanban board",
		Action: func(c *cli.Context) error {
			engine, err := openEngine()
			if err != nil {
				return err
			}
			displayBoard(engine)
			return nil
		},
	}
}

// NewSortCommand creates the sort command.
func NewSortCommand() *cli.Command {
	return &cli.Command{
		Name:      "sort",
		Usage:     "Set the global sort mode for board and timeline views",
		ArgsUsage: "[created-asc|created-desc]",
		Action: func(c *cli.Context) error {
			if c.NArg() == 0 {
				return fmt.Errorf("sort mode is required (created-asc or created-desc)")
			}

			mode := models.SortMode(c.Args().First())
			switch c.Args().First() {
			case "asc":
				mode = models.SortCreatedAsc
			case "desc":
				mode = models.SortCreatedDesc
			}

			engine, err := openEngine()
			if err != nil {
				return err
			}
			if err := engine.SetSortMode(mode); err != nil {
				fmt.Printf("❌ %v\n", err)
				return err
			}

			fmt.Printf("✅ Sort mode set to %s\n", mode)
			return nil
		},
	}
}

func displayBoard(engine *board.Engine) {
	termRecord := engine.ActiveTerm()
	fmt.Printf("📋 %s\n", termRecord.Name)
	fmt.Println(strings.Repeat("=", 80))
	fmt.Println()

	colWidth := columnWidth(len(models.AllStatuses))

	columns := make([][]models.Application, len(models.AllStatuses))
	for i, status := range models.AllStatuses {
		columns[i] = engine.ApplicationsByStatus(termRecord.ID, status)
	}

	// Headers with per-column count badges
	headers := make([]string, len(models.AllStatuses))
	for i, status := range models.AllStatuses {
		title := fmt.Sprintf("%s (%d)", status.Title(), len(columns[i]))
		headers[i] = columnStyles[status].Render(title) + strings.Repeat(" ", maxInt(0, colWidth-len(title)))
	}
	fmt.Println(strings.Join(headers, " | "))

	separators := make([]string, len(models.AllStatuses))
	for i := range separators {
		separators[i] = strings.Repeat("-", colWidth)
	}
	fmt.Println(strings.Join(separators, "-+-"))

	maxRows := 0
	for _, col := range columns {
		if len(col) > maxRows {
			maxRows = len(col)
		}
	}

	for row := 0; row < maxRows; row++ {
		cells := make([]string, len(columns))
		for i, col := range columns {
			cell := ""
			if row < len(col) {
				app := col[row]
				cell = fmt.Sprintf("%s %s", shortID(app.ID), truncateString(app.Company, colWidth-10))
			}
			cells[i] = fmt.Sprintf("%-*s", colWidth, cell)
		}
		fmt.Println(strings.Join(cells, " | "))
	}

	total := 0
	summary := make([]string, 0, len(columns))
	for i, status := range models.AllStatuses {
		total += len(columns[i])
		summary = append(summary, fmt.Sprintf("%d %s", len(columns[i]), status))
	}
	fmt.Println()
	fmt.Printf("Summary: %d total (%s)\n", total, strings.Join(summary, ", "))
	fmt.Println("💡 Move cards with 'huntboard app move <id> <status>'")
}

// columnWidth sizes columns to the terminal, with a sane floor when the
// output is not a TTY.
func columnWidth(cols int) int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 22
	}
	w := (width - 3*(cols-1)) / cols
	if w < 14 {
		return 14
	}
	return w
}

func maxInt(a, b int) int {
	if a >= b {
		return a
	}
	return b
}
