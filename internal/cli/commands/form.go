package commands

import (
	"fmt"

	"github.com/AlecAivazis/survey/v2"

	"github.com/aksoydem/huntboard-cli/internal/board"
	"github.com/aksoydem/huntboard-cli/internal/models"
)

// runCreateForm walks through the application form interactively.
// company and position prefill the first two answers; nothing is created
// until the user confirms.
func runCreateForm(engine *board.Engine, company, position string) error {
	answers := struct {
		Company  string
		Position string
		Status   string
		Date     string
		Note     string
		Rejected bool
	}{}

	statusOptions := make([]string, 0, len(models.AllStatuses))
	for _, s := range models.AllStatuses {
		statusOptions = append(statusOptions, string(s))
	}

	qs := []*survey.Question{
		{
			Name:     "company",
			Prompt:   &survey.Input{Message: "Company:", Default: company},
			Validate: survey.Required,
		},
		{
			Name:     "position",
			Prompt:   &survey.Input{Message: "Position:", Default: position},
			Validate: survey.Required,
		},
		{
			Name: "status",
			Prompt: &survey.Select{
				Message: "Status:",
				Options: statusOptions,
				Default: string(models.StatusApplied),
			},
		},
		{
			Name:   "date",
			Prompt: &survey.Input{Message: "Date (optional, e.g. 2026-03-14):"},
		},
		{
			Name:   "note",
			Prompt: &survey.Input{Message: "Note (optional):"},
		},
		{
			Name:   "rejected",
			Prompt: &survey.Confirm{Message: "Mark as rejected?", Default: false},
		},
	}
	if err := survey.Ask(qs, &answers); err != nil {
		return err
	}

	status := models.Status(answers.Status)
	if answers.Rejected {
		status = models.StatusRejected
	}

	app, err := engine.AddApplication(board.NewApplication{
		Company:  answers.Company,
		Position: answers.Position,
		Status:   status,
		Date:     answers.Date,
		Note:     answers.Note,
	})
	if err != nil {
		fmt.Printf("❌ %v\n", err)
		return err
	}

	fmt.Printf("✅ Added %s at %s (%s) to '%s'\n", app.Position, app.Company, app.Status, engine.ActiveTerm().Name)
	fmt.Printf("ID: %s\n", app.ID)
	return nil
}
