package board

import (
	"sort"

	"github.com/aksoydem/huntboard-cli/internal/models"
)

// The query layer is pure: nothing here mutates its input, every function
// returns a fresh slice.

// FilterByTerm returns the applications belonging to termID.
func FilterByTerm(apps []models.Application, termID string) []models.Application {
	var out []models.Application
	for _, a := range apps {
		if a.TermID == termID {
			out = append(out, a)
		}
	}
	return out
}

// FilterByStatus returns the applications belonging to termID in the
// given status.
func FilterByStatus(apps []models.Application, termID string, status models.Status) []models.Application {
	var out []models.Application
	for _, a := range apps {
		if a.TermID == termID && a.Status == status {
			out = append(out, a)
		}
	}
	return out
}

// FilterDated returns the applications of termID that carry a date.
func FilterDated(apps []models.Application, termID string) []models.Application {
	var out []models.Application
	for _, a := range apps {
		if a.TermID == termID && a.Date != "" {
			out = append(out, a)
		}
	}
	return out
}

// SortApplications returns a copy of apps stably ordered by CreatedAt.
// A missing CreatedAt sorts as zero.
func SortApplications(apps []models.Application, mode models.SortMode) []models.Application {
	out := make([]models.Application, len(apps))
	copy(out, apps)
	sort.SliceStable(out, func(i, j int) bool {
		if mode == models.SortCreatedAsc {
			return out[i].CreatedAt < out[j].CreatedAt
		}
		return out[i].CreatedAt > out[j].CreatedAt
	})
	return out
}

// Terms returns a copy of the term collection in creation order.
func (e *Engine) Terms() []models.Term {
	out := make([]models.Term, len(e.terms))
	copy(out, e.terms)
	return out
}

// ActiveTermID returns the id of the currently active term.
func (e *Engine) ActiveTermID() string {
	return e.activeTermID
}

// ActiveTerm returns the currently active term.
func (e *Engine) ActiveTerm() models.Term {
	t, _ := e.findTerm(e.activeTermID)
	return t
}

// SortMode returns the current global sort mode.
func (e *Engine) SortMode() models.SortMode {
	return e.sortMode
}

// Applications returns a copy of every stored application, unsorted.
func (e *Engine) Applications() []models.Application {
	out := make([]models.Application, len(e.apps))
	copy(out, e.apps)
	return out
}

// Application returns a single record by id.
func (e *Engine) Application(id string) (models.Application, bool) {
	i := e.findApp(id)
	if i < 0 {
		return models.Application{}, false
	}
	return e.apps[i], true
}

// ApplicationsInTerm returns the term's applications in the current sort
// order.
func (e *Engine) ApplicationsInTerm(termID string) []models.Application {
	return SortApplications(FilterByTerm(e.apps, termID), e.sortMode)
}

// ApplicationsByStatus returns the term's applications in one column, in
// the current sort order.
func (e *Engine) ApplicationsByStatus(termID string, status models.Status) []models.Application {
	return SortApplications(FilterByStatus(e.apps, termID, status), e.sortMode)
}

// DatedApplications returns the term's dated applications for the
// timeline, in the current sort order.
func (e *Engine) DatedApplications(termID string) []models.Application {
	return SortApplications(FilterDated(e.apps, termID), e.sortMode)
}
