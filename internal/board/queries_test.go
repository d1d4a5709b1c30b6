package board

import (
	"testing"

	"github.com/aksoydem/huntboard-cli/internal/models"
)

func sampleApps() []models.Application {
	return []models.Application{
		{ID: "a", TermID: "t1", Company: "Acme", Position: "SWE", Status: models.StatusApplied, Date: "2026-02-01", CreatedAt: 30},
		{ID: "b", TermID: "t1", Company: "Globex", Position: "Data", Status: models.StatusWishlist, CreatedAt: 10},
		{ID: "c", TermID: "t2", Company: "Initech", Position: "QA", Status: models.StatusApplied, Date: "2026-03-15", CreatedAt: 20},
	}
}

func ids(apps []models.Application) []string {
	out := make([]string, len(apps))
	for i, a := range apps {
		out[i] = a.ID
	}
	return out
}

func equalIDs(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestSortApplications(t *testing.T) {
	apps := sampleApps()

	tests := []struct {
		name string
		mode models.SortMode
		want []string
	}{
		{"ascending", models.SortCreatedAsc, []string{"b", "c", "a"}},
		{"descending", models.SortCreatedDesc, []string{"a", "c", "b"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ids(SortApplications(apps, tt.mode))
			if !equalIDs(got, tt.want) {
				t.Errorf("SortApplications() order = %v, want %v", got, tt.want)
			}
		})
	}

	// The input slice must come back untouched.
	if !equalIDs(ids(apps), []string{"a", "b", "c"}) {
		t.Errorf("input mutated: %v", ids(apps))
	}
}

func TestSortApplicationsMissingCreatedAt(t *testing.T) {
	apps := []models.Application{
		{ID: "new", CreatedAt: 100},
		{ID: "legacy"}, // pre-migration record, no timestamp
	}
	got := ids(SortApplications(apps, models.SortCreatedAsc))
	if !equalIDs(got, []string{"legacy", "new"}) {
		t.Errorf("missing createdAt should sort as zero, got %v", got)
	}
}

func TestFilterByTerm(t *testing.T) {
	got := ids(FilterByTerm(sampleApps(), "t1"))
	if !equalIDs(got, []string{"a", "b"}) {
		t.Errorf("FilterByTerm() = %v", got)
	}
	if out := FilterByTerm(sampleApps(), "ghost"); len(out) != 0 {
		t.Errorf("unknown term returned %d records", len(out))
	}
}

func TestFilterByStatus(t *testing.T) {
	got := ids(FilterByStatus(sampleApps(), "t1", models.StatusApplied))
	if !equalIDs(got, []string{"a"}) {
		t.Errorf("FilterByStatus() = %v", got)
	}
}

func TestFilterDated(t *testing.T) {
	got := ids(FilterDated(sampleApps(), "t1"))
	if !equalIDs(got, []string{"a"}) {
		t.Errorf("FilterDated() = %v", got)
	}
}

func TestApplicationsInTermUsesSortMode(t *testing.T) {
	st := newMemStore()
	e := newTestEngine(t, st)

	for i, name := range []string{"First", "Second", "Third"} {
		e.now = func(ts int64) func() int64 { return func() int64 { return ts } }(int64((i + 1) * 10))
		if _, err := e.AddApplication(NewApplication{Company: name, Position: "SWE"}); err != nil {
			t.Fatalf("AddApplication() error = %v", err)
		}
	}

	apps := e.ApplicationsInTerm(e.ActiveTermID())
	if apps[0].Company != "Third" {
		t.Errorf("default desc order: first = %q, want Third", apps[0].Company)
	}

	if err := e.SetSortMode(models.SortCreatedAsc); err != nil {
		t.Fatalf("SetSortMode() error = %v", err)
	}
	apps = e.ApplicationsInTerm(e.ActiveTermID())
	if apps[0].Company != "First" {
		t.Errorf("asc order: first = %q, want First", apps[0].Company)
	}
}
